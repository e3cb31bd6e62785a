package service

import (
	"bytes"
	"context"
	"log/slog"

	"fireReport/internal/domain"
	"fireReport/internal/metrics"
	"fireReport/internal/report"
	"fireReport/internal/store"
	"fireReport/internal/validation"
	"fireReport/pkg/e"
)

type ReportService struct {
	store  *store.Store
	engine *validation.Engine
	logger *slog.Logger
}

func NewReportService(st *store.Store, engine *validation.Engine, logger *slog.Logger) *ReportService {
	return &ReportService{store: st, engine: engine, logger: logger}
}

// Generate validates the current document and renders it as PDF. An invalid
// document yields ErrDocumentInvalid together with the validation result.
func (s *ReportService) Generate(ctx context.Context) ([]byte, domain.ValidationResult, error) {
	const op = "service.Report.Generate"

	doc := s.store.GetAll()
	res := s.engine.Validate(doc)
	if !res.Valid {
		metrics.RecordReport("invalid")
		s.logger.Info("report refused", slog.Int("errors", len(res.Errors)))
		return nil, res, e.Wrap(op, e.ErrDocumentInvalid)
	}

	if err := ctx.Err(); err != nil {
		metrics.RecordReport("error")
		return nil, res, e.WrapError(ctx, op, err)
	}

	var buf bytes.Buffer
	if err := report.Generate(doc, &buf); err != nil {
		metrics.RecordReport("error")
		s.logger.Error("report render failed", slog.Any("error", err))
		return nil, res, e.Wrap(op, err)
	}

	metrics.RecordReport("ok")
	s.logger.Info("report generated", slog.Int("bytes", buf.Len()))
	return buf.Bytes(), res, nil
}

// Preview composes the report tables without validating.
func (s *ReportService) Preview(ctx context.Context) (report.Report, domain.ValidationResult) {
	doc := s.store.GetAll()
	return report.Compose(doc), s.engine.Validate(doc)
}
