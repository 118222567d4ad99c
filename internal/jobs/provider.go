// Package jobs fetches job postings from external job-search providers.
package jobs

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by providers that are not given their API credentials.
var ErrMissingCredentials = errors.New("missing provider credentials")

// Provider fetches jobs for a list of skills from one external service.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, skills []string) ([]Posting, error)
}

// FetchError reports why a provider returned no jobs.
type FetchError struct {
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching jobs from %s: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one provider call.
type Result struct {
	Provider string
	Jobs     []Posting
	Err      error
}

// OK reports whether the provider call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// JobsOrEmpty returns the fetched jobs, or an empty list when the call failed.
func (r Result) JobsOrEmpty() []Posting {
	if r.Err != nil || r.Jobs == nil {
		return []Posting{}
	}
	return r.Jobs
}

// Collect calls the provider and folds any failure, including a panic,
// into the returned Result. It never returns a nil Jobs slice.
func Collect(ctx context.Context, p Provider, skills []string) (res Result) {
	res.Provider = p.Name()

	defer func() {
		if r := recover(); r != nil {
			res.Jobs = []Posting{}
			res.Err = &FetchError{Provider: res.Provider, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	postings, err := p.Fetch(ctx, skills)
	if err != nil {
		res.Jobs = []Posting{}
		res.Err = &FetchError{Provider: res.Provider, Err: err}
		return res
	}

	if postings == nil {
		postings = []Posting{}
	}
	res.Jobs = postings

	return res
}
