package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/feed"
	"github.com/Zachkp/portfolio/internal/ghapi"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// App carries the dependencies shared by the route handlers.
type App struct {
	feed   *feed.Service
	mailer Mailer
	logger *log.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           cfg.Level(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mounts, err := store.Open(cfg.Feed.DSN, cfg.Feed.MountTTL, logger.WithPrefix("store"))
	if err != nil {
		logger.Fatal("Failed to open mount store", "err", err)
	}
	defer mounts.Close()
	go mounts.Sweep(ctx, time.Minute)

	client, err := ghapi.NewClient(ghapi.Options{
		BaseURL: cfg.GitHub.BaseURL,
		Owner:   cfg.GitHub.Owner,
		PerPage: cfg.GitHub.PerPage,
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.Timeout,
		Logger:  logger.WithPrefix("github"),
	})
	if err != nil {
		logger.Fatal("Failed to create GitHub client", "err", err)
	}

	classifier := feed.Classifier{
		Policy:       cfg.Feed.Filter,
		Hosts:        cfg.Feed.Hosts,
		StatusBadges: cfg.Feed.StatusBadges,
	}
	logger.Info("Project feed", "owner", cfg.GitHub.Owner, "filter", classifier.Policy, "page_size", cfg.Feed.PageSize)

	app := &App{
		feed:   feed.NewService(client, classifier, mounts, cfg.Feed.PageSize, logger.WithPrefix("feed")),
		mailer: NewSMTPMailer(cfg.SMTP, logger.WithPrefix("contact")),
		logger: logger,
	}
	if !cfg.SMTPConfigured() {
		logger.Warn("SMTP credentials not configured; contact form will report errors")
	}

	r, err := setupRouter(app)
	if err != nil {
		logger.Fatal("Failed to build router", "err", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-serveErr:
		// Returning lets the deferred store close and signal reset run.
		logger.Error("Server failed", "err", err)
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown", "err", err)
	}
}

func setupRouter(app *App) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(app.logger.WithPrefix("http")))

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	// Home page route
	r.GET("/", app.home)

	r.GET("/timeline", app.timeline)
	r.GET("/skills", app.skills)

	// Projects grid: mount once, then expand/collapse from the snapshot
	r.GET("/projects/feed", app.mountFeed)
	r.GET("/projects/feed/:mount", app.viewFeed)
	r.GET("/api/projects/:mount", app.projectsJSON)

	// HTMX contact form
	r.GET("/contact-form", app.contactForm)
	r.POST("/contact", app.submitContact)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

func (a *App) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":    Me,
		"about":      AboutMe,
		"highlights": Highlights,
		"timeline":   Timeline,
		"skills":     Skills,
		"feed":       a.feed.Loading(),
		"form":       ContactForm{},
	})
}

func (a *App) timeline(c *gin.Context) {
	c.HTML(http.StatusOK, "timeline.html", gin.H{
		"timeline": timelineFor(c.Query("kind")),
	})
}

func (a *App) skills(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", gin.H{
		"skills": Skills,
	})
}
