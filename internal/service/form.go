package service

import (
	"context"
	"log/slog"

	"fireReport/internal/domain"
	"fireReport/internal/store"
	"fireReport/internal/validation"
	"fireReport/pkg/e"

	"github.com/google/uuid"
)

type FormService struct {
	store  *store.Store
	engine *validation.Engine
	logger *slog.Logger
}

func NewFormService(st *store.Store, engine *validation.Engine, logger *slog.Logger) *FormService {
	return &FormService{store: st, engine: engine, logger: logger}
}

func (s *FormService) State(ctx context.Context) store.State {
	return s.store.State()
}

func (s *FormService) Section(ctx context.Context, section domain.Section) (any, error) {
	return s.store.GetSection(section)
}

func (s *FormService) UpdateSection(ctx context.Context, section domain.Section, raw []byte) error {
	return s.store.UpdateJSON(ctx, section, raw)
}

func (s *FormService) AddItem(ctx context.Context, section domain.Section, raw []byte) (uuid.UUID, error) {
	return s.store.AddJSON(ctx, section, raw)
}

func (s *FormService) RemoveItem(ctx context.Context, section domain.Section, id uuid.UUID) error {
	return s.store.Remove(ctx, section, id)
}

func (s *FormService) Undo(ctx context.Context) (store.State, error) {
	if !s.store.Undo(ctx) {
		return store.State{}, e.Wrap("service.Undo", e.ErrHistoryEdge)
	}
	return s.store.State(), nil
}

func (s *FormService) Redo(ctx context.Context) (store.State, error) {
	if !s.store.Redo(ctx) {
		return store.State{}, e.Wrap("service.Redo", e.ErrHistoryEdge)
	}
	return s.store.State(), nil
}

func (s *FormService) Reset(ctx context.Context, confirmed bool) error {
	if err := s.store.Reset(ctx, confirmed); err != nil {
		return err
	}
	s.logger.Info("form reset")
	return nil
}

func (s *FormService) SetStep(ctx context.Context, step domain.Step) error {
	return s.store.SetStep(ctx, step)
}

// Validate runs the whole-document rules against the current document.
func (s *FormService) Validate(ctx context.Context) domain.ValidationResult {
	return s.engine.Validate(s.store.GetAll())
}

func (s *FormService) CheckField(ctx context.Context, req domain.FieldCheckRequest) (domain.FieldCheckResponse, error) {
	return s.engine.CheckField(req)
}
