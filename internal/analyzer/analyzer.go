// Package analyzer runs the résumé pipeline: extract text, match skills, search jobs.
package analyzer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/logger"
	"github.com/spigell/careerconnect/internal/resume"
	"github.com/spigell/careerconnect/internal/search"
	"github.com/spigell/careerconnect/internal/skills"
)

// Fetcher searches every provider for a skill list.
type Fetcher interface {
	Names() []string
	FetchAll(ctx context.Context, skills []string) search.Results
}

// Analysis is the outcome of one pipeline run.
type Analysis struct {
	RunID     string
	Skills    skills.Set
	Providers []string
	// Jobs is nil when no skills were detected and providers were not queried.
	Jobs search.Results
}

// Searched reports whether providers were queried.
func (a *Analysis) Searched() bool {
	return a.Jobs != nil
}

type Analyzer struct {
	vocabulary *skills.Vocabulary
	fetcher    Fetcher
	logger     *zap.Logger
}

// New returns an analyzer. A nil vocabulary means the built-in one.
func New(vocabulary *skills.Vocabulary, fetcher Fetcher, logger *zap.Logger) *Analyzer {
	if vocabulary == nil {
		vocabulary = skills.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		vocabulary: vocabulary,
		fetcher:    fetcher,
		logger:     logger,
	}
}

// Analyze extracts text from a PDF document and analyzes it.
// Extraction errors are returned as is and wrap resume.ErrUnreadableDocument.
func (a *Analyzer) Analyze(ctx context.Context, doc []byte) (*Analysis, error) {
	text, err := resume.ExtractBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("extract resume text: %w", err)
	}

	return a.AnalyzeText(ctx, text), nil
}

// AnalyzeText matches skills in text and, when any are found, searches for jobs.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) *Analysis {
	analysis := &Analysis{
		RunID:  uuid.NewString(),
		Skills: a.vocabulary.Match(text),
	}
	if a.fetcher != nil {
		analysis.Providers = a.fetcher.Names()
	}

	l := logger.WithRun(a.logger, analysis.RunID)
	l.Info("skills detected",
		zap.Int("text_length", len(text)),
		zap.Strings("skills", analysis.Skills.Slice()),
	)

	if analysis.Skills.Empty() {
		l.Info("skipping job search", zap.String("reason", "no skills detected"))
		return analysis
	}

	if a.fetcher == nil {
		return analysis
	}

	analysis.Jobs = a.fetcher.FetchAll(ctx, analysis.Skills.Slice())
	l.Info("job search finished", zap.Int("jobs", analysis.Jobs.Total()))

	return analysis
}
