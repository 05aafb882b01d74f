package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy is reported when every check passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy is reported when at least one check failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc checks one dependency.
type CheckFunc func(ctx context.Context) error

// Checks maps a check name to its function.
type Checks map[string]CheckFunc

// Report is the aggregated outcome of a readiness run.
type Report struct {
	Checks map[string]Result `json:"checks,omitempty"`
	Status string            `json:"status"`
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Result is the outcome of a single check.
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
	limit   int
}

// Option configures a readiness run.
type Option func(*config)

// WithTimeout bounds the whole run.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger that receives failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConcurrency caps the number of checks running at once.
// Zero or negative means no cap.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes all checks and aggregates their results.
// A failing check never cancels the others.
func Run(ctx context.Context, checks Checks, opts ...Option) *Report {
	return run(ctx, checks, newConfig(opts...))
}

func run(ctx context.Context, checks Checks, cfg *config) *Report {
	if len(checks) == 0 {
		return &Report{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]Result, len(checks))
		failed  bool
	)

	var g errgroup.Group
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	}

	for name, check := range checks {
		g.Go(func() error {
			res := Result{Status: StatusHealthy}
			if err := runCheck(ctx, check); err != nil {
				res = Result{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = res
			failed = failed || res.Status == StatusUnhealthy
			return nil
		})
	}
	_ = g.Wait()

	status := StatusHealthy
	if failed {
		status = StatusUnhealthy
	}
	return &Report{Status: status, Checks: results}
}

func runCheck(ctx context.Context, check CheckFunc) error {
	err := check(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCheckTimeout
	default:
		return fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
}
