package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/smtp"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Zachkp/portfolio/internal/config"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

// ContactForm mirrors the fields of the contact section.
type ContactForm struct {
	Name    string `form:"name" binding:"required,min=2"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject" binding:"required,min=5"`
	Message string `form:"message" binding:"required,min=10"`
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(form ContactForm) error
}

// SMTPMailer sends mail with PLAIN auth.
type SMTPMailer struct {
	cfg    config.SMTP
	logger *log.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg config.SMTP, logger *log.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(form ContactForm) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	msg := composeMessage(m.cfg.ToEmail, m.cfg.User, form)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.ToEmail}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("contact email sent", "from", form.Email)
	return nil
}

func composeMessage(to, from string, form ContactForm) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Subject, form.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + stripNewlines(form.Subject) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + stripNewlines(form.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// stripNewlines keeps visitor input from injecting extra headers.
func stripNewlines(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != '\r' && r != '\n' {
			out = append(out, r)
		}
	}
	return string(out)
}

var fieldMessages = map[string]map[string]string{
	"Name":    {"required": "Name is required", "min": "Name must be at least 2 characters"},
	"Email":   {"required": "Email is required", "email": "Invalid email address"},
	"Subject": {"required": "Subject is required", "min": "Subject must be at least 5 characters"},
	"Message": {"required": "Message is required", "min": "Message must be at least 10 characters"},
}

// fieldErrors turns binding errors into per-field messages for the form.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Please check the form and try again."
		return out
	}
	for _, fe := range verrs {
		msg := fieldMessages[fe.Field()][fe.Tag()]
		if msg == "" {
			msg = fe.Field() + " is invalid"
		}
		out[fe.Field()] = msg
	}
	return out
}

func (a *App) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
		"form":  ContactForm{},
	})
}

func (a *App) submitContact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title":  "Contact Me",
			"form":   form,
			"errors": fieldErrors(err),
		})
		return
	}

	if err := a.mailer.Send(form); err != nil {
		a.logger.Error("contact email failed", "err", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for reaching out. I'll get back to you within 24 hours.",
	})
}
