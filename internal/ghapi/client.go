package ghapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v33/github"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	userAgent      = "samyog-portfolio/1.0"
)

// Options configures a Client.
type Options struct {
	BaseURL string
	Owner   string
	PerPage int
	Token   string // optional, raises the rate limit
	Timeout time.Duration
	Logger  *log.Logger
}

// Client lists the public repositories of a single fixed owner.
type Client struct {
	gh      *github.Client
	owner   string
	perPage int
	logger  *log.Logger
}

// NewClient creates a Client. Zero-valued options fall back to the public
// API, ten repositories per page and a ten second timeout.
func NewClient(opts Options) (*Client, error) {
	if opts.PerPage <= 0 {
		opts.PerPage = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	httpClient := &http.Client{}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = opts.Timeout

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent
	if opts.BaseURL != "" && opts.BaseURL != DefaultBaseURL {
		base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse GitHub API URL: %w", err)
		}
		gh.BaseURL = base
	}

	return &Client{
		gh:      gh,
		owner:   opts.Owner,
		perPage: opts.PerPage,
		logger:  opts.Logger,
	}, nil
}

// Owner returns the account whose repositories are listed.
func (c *Client) Owner() string {
	return c.owner
}

// ListRepositories issues exactly one request for the owner's most recently
// updated repositories. There is no retry and no pagination; callers
// decide what a failure means.
func (c *Client) ListRepositories(ctx context.Context) ([]*github.Repository, error) {
	opts := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: c.perPage},
	}

	c.logger.Debug("GET", "owner", c.owner, "per_page", c.perPage)

	repos, resp, err := c.gh.Repositories.List(ctx, c.owner, opts)
	if resp != nil {
		c.logger.Debug("rate limit",
			"remaining", resp.Rate.Remaining,
			"reset", resp.Rate.Reset.Time,
			"status", resp.StatusCode)
	}
	if err != nil {
		return nil, fmt.Errorf("list repositories for %s: %w", c.owner, err)
	}
	return repos, nil
}
