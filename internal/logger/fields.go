package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Field keys shared by every package that logs about a provider or a run.
const (
	FieldProvider = "provider"
	FieldRunID    = "run_id"
)

// WithProvider tags entries with the job provider they concern.
func WithProvider(l *zap.Logger, provider string) *zap.Logger {
	return with(l, FieldProvider, provider)
}

// WithRun tags entries with the analysis run id so one résumé can be followed
// across the aggregator and every provider.
func WithRun(l *zap.Logger, runID string) *zap.Logger {
	return with(l, FieldRunID, runID)
}

// with adds key=value unless value is blank. A nil logger becomes a no-op one.
func with(l *zap.Logger, key, value string) *zap.Logger {
	if l == nil {
		l = zap.NewNop()
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return l
	}

	return l.With(zap.String(key, value))
}
