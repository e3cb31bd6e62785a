package service

import (
	"context"
	"errors"
	"log/slog"

	"fireReport/internal/domain"
	"fireReport/internal/geocode"
	"fireReport/internal/store"
	"fireReport/pkg/e"
)

// Locator keeps the incident's address and coordinates in step with the map.
// The incident section is re-read after every lookup, so edits made while a
// request was in flight are kept.
type Locator struct {
	store  *store.Store
	geo    geocode.Geocoder
	logger *slog.Logger
}

func NewLocator(st *store.Store, geo geocode.Geocoder, logger *slog.Logger) *Locator {
	return &Locator{store: st, geo: geo, logger: logger}
}

// SearchAddress geocodes address and moves the incident coordinates there.
func (l *Locator) SearchAddress(ctx context.Context, address string) (domain.LocationResponse, error) {
	p, err := l.geo.Search(ctx, address)
	if err != nil {
		l.logger.Warn("address search failed", slog.String("address", address), slog.Any("error", err))
		return domain.LocationResponse{}, err
	}

	inc, err := l.setCoordinates(ctx, p)
	if err != nil {
		return domain.LocationResponse{}, err
	}
	return domain.LocationResponse{Address: inc.Address, Coordinates: inc.Coordinates}, nil
}

// Pin stores the clicked or dragged position, then fills the address from a
// reverse lookup. A failed lookup leaves the address untouched.
func (l *Locator) Pin(ctx context.Context, p domain.LatLng) (domain.LocationResponse, error) {
	if !p.Valid() {
		return domain.LocationResponse{}, e.Wrap("service.Locator.Pin", e.ErrInvalidCoordinates)
	}

	inc, err := l.setCoordinates(ctx, p)
	if err != nil {
		return domain.LocationResponse{}, err
	}

	addr, err := l.geo.Reverse(ctx, p)
	if err != nil {
		l.logger.Warn("reverse geocode failed", slog.Any("error", err))
		warning := "No se pudo obtener la dirección"
		if errors.Is(err, e.ErrNoResults) {
			warning = "No se encontraron resultados"
		}
		return domain.LocationResponse{Address: inc.Address, Coordinates: inc.Coordinates, Warning: warning}, nil
	}

	inc, err = l.incident()
	if err != nil {
		return domain.LocationResponse{}, err
	}
	inc.Address = addr
	if err := l.store.Update(ctx, domain.SectionIncident, inc); err != nil {
		return domain.LocationResponse{}, err
	}
	return domain.LocationResponse{Address: inc.Address, Coordinates: inc.Coordinates}, nil
}

func (l *Locator) setCoordinates(ctx context.Context, p domain.LatLng) (domain.IncidentInfo, error) {
	inc, err := l.incident()
	if err != nil {
		return domain.IncidentInfo{}, err
	}
	inc.Coordinates = &domain.LatLng{Lat: p.Lat, Lng: p.Lng}
	if err := l.store.Update(ctx, domain.SectionIncident, inc); err != nil {
		return domain.IncidentInfo{}, err
	}
	return inc, nil
}

func (l *Locator) incident() (domain.IncidentInfo, error) {
	v, err := l.store.GetSection(domain.SectionIncident)
	if err != nil {
		return domain.IncidentInfo{}, err
	}
	inc, ok := v.(domain.IncidentInfo)
	if !ok {
		return domain.IncidentInfo{}, e.Wrap("service.Locator", e.ErrInternal)
	}
	return inc, nil
}
