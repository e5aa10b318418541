package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/feed"
)

// mountFeed is requested once by the loading skeleton. It performs the
// only GitHub fetch for this page view.
func (a *App) mountFeed(c *gin.Context) {
	v, err := a.feed.Mount(c.Request.Context())
	if errors.Is(err, feed.ErrUnmounted) {
		// Visitor left before the fetch settled; nothing to render into.
		c.Abort()
		return
	}
	c.HTML(http.StatusOK, "projects-feed.html", v)
}

// viewFeed expands or collapses a mounted feed without re-fetching.
// An expired mount falls back to the skeleton, which mounts again.
func (a *App) viewFeed(c *gin.Context) {
	v, err := a.feed.View(c.Request.Context(), c.Param("mount"), c.Query("all") == "true")
	if err != nil {
		if !errors.Is(err, feed.ErrMountNotFound) {
			a.logger.Error("Failed to load feed snapshot", "err", err)
		}
		c.HTML(http.StatusOK, "projects-feed.html", a.feed.Loading())
		return
	}
	c.HTML(http.StatusOK, "projects-feed.html", v)
}

// projectsJSON serves a mounted feed's snapshot as JSON. It never fetches.
func (a *App) projectsJSON(c *gin.Context) {
	id := c.Param("mount")
	res, err := a.feed.Snapshot(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, feed.ErrMountNotFound) {
			a.logger.Error("Failed to load feed snapshot", "err", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "mount not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mount":        id,
		"projects":     res.Projects,
		"using_sample": res.UsingSample,
		"reason":       res.Reason,
	})
}
