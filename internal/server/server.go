// Package server exposes résumé analysis over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/careerconnect/internal/analyzer"
	"github.com/spigell/careerconnect/internal/report"
	"github.com/spigell/careerconnect/internal/resume"
)

const (
	DefaultAddress   = ":8080"
	DefaultMaxUpload = 10 << 20

	formField = "resume"
	// Room for multipart boundaries and headers on top of the file itself.
	multipartOverhead = 1 << 20
	shutdownTimeout   = 15 * time.Second
)

// Analyzer analyzes an uploaded PDF document.
type Analyzer interface {
	Analyze(ctx context.Context, doc []byte) (*analyzer.Analysis, error)
}

type Config struct {
	Address string
	// MaxUploadBytes caps the size of an uploaded résumé.
	MaxUploadBytes int64
	// DisplayLimit caps the jobs returned per provider.
	DisplayLimit int
}

type Server struct {
	analyzer Analyzer
	config   Config
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds the router. Zero config values fall back to defaults.
func New(a Analyzer, cfg Config, logger *zap.Logger) *Server {
	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUpload
	}
	if cfg.DisplayLimit <= 0 {
		cfg.DisplayLimit = report.DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		analyzer: a,
		config:   cfg,
		logger:   logger,
	}

	engine := gin.New()
	engine.Use(
		requestID(),
		logging(logger),
		recovery(logger),
	)

	api := engine.Group("/api/v1")
	api.GET("/health", s.health)
	api.POST("/analyze", s.analyze)

	s.engine = engine

	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("address", s.config.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "too_large", "resume file is too large")
			return
		}
		respondError(c, http.StatusBadRequest, "validation_error", "resume file is required")
		return
	}

	if fileHeader.Size > s.config.MaxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "too_large", "resume file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "unable to read resume file")
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "unable to read resume file")
		return
	}

	doc := buf.Bytes()
	if !resume.IsPDF(doc) {
		respondError(c, http.StatusBadRequest, "validation_error", "resume must be a PDF document")
		return
	}

	analysis, err := s.analyzer.Analyze(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, resume.ErrUnreadableDocument) {
			s.logger.Warn("unreadable resume",
				zap.String("request_id", requestIDFromContext(c)),
				zap.String("filename", fileHeader.Filename),
				zap.Error(err),
			)
			respondError(c, http.StatusUnprocessableEntity, "unreadable_document", "resume could not be read")
			return
		}

		s.logger.Error("analyze resume", zap.String("request_id", requestIDFromContext(c)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal", "failed to analyze resume")
		return
	}

	c.JSON(http.StatusOK, report.Build(analysis, nil, s.config.DisplayLimit))
}
