package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fireReport/internal/domain"
	"fireReport/internal/metrics"
	"fireReport/internal/storage"
	"fireReport/pkg/e"

	"github.com/goccy/go-json"
	"github.com/robfig/cron/v3"
)

// Save writes the document and form state under their fixed keys.
// Failures are logged and reported as false.
func (s *Store) Save(ctx context.Context) bool {
	const op = "store.Save"

	s.mu.Lock()
	docBytes, docErr := json.Marshal(s.doc)
	formBytes, formErr := json.Marshal(s.form)
	s.mu.Unlock()

	if err := errors.Join(docErr, formErr); err != nil {
		s.logger.Error("encode for save failed", slog.String("op", op), slog.Any("error", err))
		metrics.RecordSave(false)
		return false
	}

	if err := s.kv.Set(ctx, storage.KeyDocument, docBytes); err != nil {
		s.logger.Error("save failed", slog.String("op", op), slog.String("key", storage.KeyDocument), slog.Any("error", err))
		metrics.RecordSave(false)
		return false
	}
	if err := s.kv.Set(ctx, storage.KeyFormState, formBytes); err != nil {
		s.logger.Error("save failed", slog.String("op", op), slog.String("key", storage.KeyFormState), slog.Any("error", err))
		metrics.RecordSave(false)
		return false
	}

	metrics.RecordSave(true)
	return true
}

// Load replaces the live document and form state with the persisted ones.
// Missing keys keep the defaults. History is cleared.
func (s *Store) Load(ctx context.Context) bool {
	const op = "store.Load"

	doc := domain.NewDocument()
	form := domain.NewFormState()

	docBytes, err := s.kv.Get(ctx, storage.KeyDocument)
	switch {
	case errors.Is(err, e.ErrNotFound):
	case err != nil:
		s.logger.Error("load failed", slog.String("op", op), slog.String("key", storage.KeyDocument), slog.Any("error", err))
		return false
	default:
		if doc, err = decodeDocument(docBytes); err != nil {
			s.logger.Error("stored document is unreadable", slog.String("op", op), slog.Any("error", err))
			return false
		}
	}

	formBytes, err := s.kv.Get(ctx, storage.KeyFormState)
	switch {
	case errors.Is(err, e.ErrNotFound):
	case err != nil:
		s.logger.Error("load failed", slog.String("op", op), slog.String("key", storage.KeyFormState), slog.Any("error", err))
		return false
	default:
		if err := json.Unmarshal(formBytes, &form); err != nil {
			s.logger.Error("stored form state is unreadable", slog.String("op", op), slog.Any("error", err))
			return false
		}
		if !form.CurrentStep.Valid() {
			form.CurrentStep = domain.StepIncident
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.form = form
	s.history = nil
	s.cursor = -1
	s.version++
	s.mu.Unlock()

	s.logger.Info("form loaded", slog.Bool("dirty", form.IsDirty))
	return true
}

// Autosave saves only when the document changed since the last autosave.
func (s *Store) Autosave(ctx context.Context) bool {
	s.mu.Lock()
	dirty := s.form.IsDirty
	s.mu.Unlock()

	if !dirty {
		return false
	}
	return s.Flush(ctx)
}

// Flush saves unconditionally and clears the dirty flag unless the document
// changed while saving.
func (s *Store) Flush(ctx context.Context) bool {
	s.mu.Lock()
	version := s.version
	s.mu.Unlock()

	if !s.Save(ctx) {
		return false
	}

	s.mu.Lock()
	if s.version == version {
		s.form.IsDirty = false
	}
	s.mu.Unlock()
	return true
}

// StartAutosave schedules Autosave every interval. The caller stops the
// returned scheduler.
func (s *Store) StartAutosave(interval time.Duration, timeout time.Duration) (*cron.Cron, error) {
	c := cron.New()

	spec := fmt.Sprintf("@every %s", interval)
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if s.Autosave(ctx) {
			s.logger.Debug("autosave completed")
		}
	})
	if err != nil {
		return nil, e.Wrap("store.StartAutosave", err)
	}

	c.Start()
	s.logger.Info("autosave scheduled", slog.Duration("interval", interval))
	return c, nil
}
