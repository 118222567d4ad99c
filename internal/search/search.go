// Package search fans a skill list out to every job provider and gathers the results.
package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/careerconnect/internal/jobs"
	"github.com/spigell/careerconnect/internal/logger"
)

// MaxWorkers is the upper bound on providers queried at the same time.
const MaxWorkers = 3

// Results maps a provider name to the jobs it returned.
// Every configured provider is present, with an empty list when it failed.
type Results map[string][]jobs.Posting

// Total returns the number of jobs across all providers.
func (r Results) Total() int {
	total := 0
	for _, postings := range r {
		total += len(postings)
	}
	return total
}

// Empty reports whether no provider returned a job.
func (r Results) Empty() bool {
	return r.Total() == 0
}

// Aggregator queries a fixed set of providers concurrently.
type Aggregator struct {
	providers []jobs.Provider
	workers   int
	logger    *zap.Logger
}

type Option func(*Aggregator)

// WithWorkers sets how many providers may be queried at once.
// Values outside 1..MaxWorkers are clamped.
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		a.workers = n
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an aggregator over providers. Names must be unique.
func New(providers []jobs.Provider, opts ...Option) *Aggregator {
	a := &Aggregator{
		providers: providers,
		workers:   len(providers),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.workers > MaxWorkers {
		a.workers = MaxWorkers
	}
	if a.workers < 1 {
		a.workers = 1
	}

	return a
}

// Names returns the provider names in configuration order.
func (a *Aggregator) Names() []string {
	names := make([]string, 0, len(a.providers))
	for _, p := range a.providers {
		names = append(names, p.Name())
	}
	return names
}

// Workers returns the effective concurrency limit.
func (a *Aggregator) Workers() int {
	return a.workers
}

// FetchAll runs every provider and waits for all of them.
// Provider failures are logged and reported as empty lists.
func (a *Aggregator) FetchAll(ctx context.Context, skills []string) Results {
	collected := make([]jobs.Result, len(a.providers))

	var g errgroup.Group
	g.SetLimit(a.workers)

	for i, p := range a.providers {
		g.Go(func() error {
			collected[i] = jobs.Collect(ctx, p, skills)
			return nil
		})
	}

	// Tasks never return errors.
	_ = g.Wait()

	results := make(Results, len(collected))
	for _, res := range collected {
		l := logger.WithProvider(a.logger, res.Provider)
		if !res.OK() {
			l.Warn("provider failed", zap.Error(res.Err))
		} else {
			l.Info("provider finished", zap.Int("jobs", len(res.Jobs)))
		}

		results[res.Provider] = res.JobsOrEmpty()
	}

	return results
}
