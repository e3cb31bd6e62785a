package service

import (
	"log/slog"

	"fireReport/internal/geocode"
	"fireReport/internal/store"
	"fireReport/internal/validation"
)

// Service bundles the use cases served over HTTP.
type Service struct {
	Form    *FormService
	Reports *ReportService
	Locator *Locator
}

func NewService(st *store.Store, engine *validation.Engine, geo geocode.Geocoder, logger *slog.Logger) *Service {
	return &Service{
		Form:    NewFormService(st, engine, logger),
		Reports: NewReportService(st, engine, logger),
		Locator: NewLocator(st, geo, logger),
	}
}
