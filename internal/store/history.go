package store

import (
	"context"
	"log/slog"

	"fireReport/internal/metrics"
)

// record pushes the post-update document. On an empty history the pre-update
// document is pushed first so the first update can be undone.
func (s *Store) record(pre, post []byte) {
	if len(s.history) == 0 {
		s.history = append(s.history, pre)
		s.cursor = 0
	}

	s.history = s.history[:s.cursor+1]
	s.history = append(s.history, post)

	if over := len(s.history) - s.maxHistory; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
	s.cursor = len(s.history) - 1
}

func (s *Store) Undo(ctx context.Context) bool {
	return s.move(ctx, -1, "undo")
}

func (s *Store) Redo(ctx context.Context) bool {
	return s.move(ctx, 1, "redo")
}

func (s *Store) move(ctx context.Context, step int, direction string) bool {
	s.mu.Lock()

	target := s.cursor + step
	if len(s.history) == 0 || target < 0 || target >= len(s.history) {
		s.mu.Unlock()
		metrics.RecordHistoryMove(direction, false)
		return false
	}

	doc, err := decodeDocument(s.history[target])
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("history entry decode failed",
			slog.String("direction", direction),
			slog.Int("index", target),
			slog.Any("error", err))
		metrics.RecordHistoryMove(direction, false)
		return false
	}

	s.cursor = target
	s.doc = doc
	s.touchLocked()
	s.mu.Unlock()

	metrics.RecordHistoryMove(direction, true)
	s.logger.Debug("history moved", slog.String("direction", direction), slog.Int("cursor", target))

	if s.saveOnUpdate {
		s.Save(ctx)
	}
	s.notifyDocument()
	return true
}
