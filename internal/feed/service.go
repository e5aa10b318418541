package feed

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"

	"github.com/google/go-github/v33/github"
)

var (
	// ErrUnmounted is returned when the caller went away before the fetch
	// settled. The late result is dropped.
	ErrUnmounted = errors.New("feed: unmounted before fetch settled")

	// ErrMountNotFound means the snapshot expired or never existed.
	ErrMountNotFound = errors.New("feed: mount not found")
)

// Fetcher lists the owner's repositories with a single request.
type Fetcher interface {
	ListRepositories(ctx context.Context) ([]*github.Repository, error)
}

// Snapshots keeps settled results so expanding a feed never re-fetches.
type Snapshots interface {
	Save(ctx context.Context, id string, r Result) error
	Load(ctx context.Context, id string) (Result, error)
}

// Service wires fetcher, classifier and snapshots together.
type Service struct {
	fetcher    Fetcher
	classifier Classifier
	snapshots  Snapshots
	pageSize   int
	logger     *log.Logger
}

// NewService creates a Service. A nil logger discards output.
func NewService(f Fetcher, c Classifier, s Snapshots, pageSize int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		fetcher:    f,
		classifier: c,
		snapshots:  s,
		pageSize:   pageSize,
		logger:     logger,
	}
}

// PageSize is the collapsed card count.
func (s *Service) PageSize() int {
	return s.pageSize
}

// Loading is the view rendered before the feed is mounted.
func (s *Service) Loading() View {
	return NewView(s.pageSize)
}

// Resolve performs the one fetch and classifies the outcome. Every failure
// mode collapses into the fallback catalog; the returned error is non-nil
// only when ctx was cancelled.
func (s *Service) Resolve(ctx context.Context) (Result, error) {
	start := time.Now()
	repos, err := s.fetcher.ListRepositories(ctx)

	if ctx.Err() != nil {
		s.logger.Debug("dropping late response", "err", ctx.Err())
		return Result{}, ErrUnmounted
	}

	var res Result
	switch {
	case err != nil:
		res = fallbackResult(classifyError(err))
		s.logger.Warn("using sample projects", "reason", res.Reason, "err", err)
	case len(repos) == 0:
		res = fallbackResult(ReasonEmptyResult)
		s.logger.Warn("using sample projects", "reason", res.Reason)
	default:
		res = s.classifier.Classify(repos)
		if res.UsingSample {
			s.logger.Warn("using sample projects", "reason", res.Reason, "fetched", len(repos))
		}
	}

	s.logger.Info("feed resolved",
		"projects", len(res.Projects),
		"sample", res.UsingSample,
		"took", time.Since(start).Round(time.Millisecond))
	return res, nil
}

// Mount resolves the feed, stores a snapshot and returns the settled view.
func (s *Service) Mount(ctx context.Context) (View, error) {
	res, err := s.Resolve(ctx)
	if err != nil {
		return View{}, err
	}

	v := s.Loading().Settle(res)
	id := newMountID()
	if err := s.snapshots.Save(ctx, id, res); err != nil {
		// Without a snapshot there is nothing to toggle against, so show
		// every card up front.
		s.logger.Error("save snapshot", "err", err)
		return v.WithShowAll(true), nil
	}
	v.MountID = id
	return v, nil
}

// Snapshot returns the settled result of a mounted feed.
func (s *Service) Snapshot(ctx context.Context, mountID string) (Result, error) {
	if mountID == "" {
		return Result{}, ErrMountNotFound
	}
	res, err := s.snapshots.Load(ctx, mountID)
	if err != nil {
		return Result{}, fmt.Errorf("load snapshot %s: %w", mountID, err)
	}
	return res, nil
}

// View rebuilds a mounted feed from its snapshot with the given expansion.
func (s *Service) View(ctx context.Context, mountID string, showAll bool) (View, error) {
	res, err := s.Snapshot(ctx, mountID)
	if err != nil {
		return View{}, err
	}
	v := s.Loading().Settle(res).WithShowAll(showAll)
	v.MountID = mountID
	return v, nil
}

func classifyError(err error) Reason {
	var (
		er  *github.ErrorResponse
		rle *github.RateLimitError
		are *github.AbuseRateLimitError
	)
	if errors.As(err, &er) || errors.As(err, &rle) || errors.As(err, &are) {
		return ReasonNonSuccessStatus
	}
	// Transport and decode failures are both "the fetch threw".
	return ReasonNetworkFailure
}

func newMountID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
