package store

import (
	"fmt"
	"log/slog"

	"fireReport/internal/domain"
	"fireReport/pkg/e"

	"github.com/google/uuid"
)

// Listener receives the section that changed and its new value. Wildcard
// listeners receive the whole document; step listeners receive the Step.
type Listener func(section domain.Section, value any)

func (s *Store) Subscribe(section domain.Section, fn Listener) (uuid.UUID, error) {
	if !section.Valid() && section != domain.SectionAll && section != domain.SectionStep {
		return uuid.Nil, e.Wrap(fmt.Sprintf("store.Subscribe %q", section), e.ErrUnknownSection)
	}
	if fn == nil {
		return uuid.Nil, e.Wrap("store.Subscribe: nil listener", e.ErrInvalidInput)
	}

	id := uuid.New()

	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	if s.subs[section] == nil {
		s.subs[section] = make(map[uuid.UUID]Listener)
	}
	s.subs[section][id] = fn
	return id, nil
}

// Unsubscribe reports whether a listener was removed.
func (s *Store) Unsubscribe(section domain.Section, id uuid.UUID) bool {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	listeners, ok := s.subs[section]
	if !ok {
		return false
	}
	if _, ok := listeners[id]; !ok {
		return false
	}
	delete(listeners, id)
	if len(listeners) == 0 {
		delete(s.subs, section)
	}
	return true
}

func (s *Store) listeners(section domain.Section) []Listener {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()

	out := make([]Listener, 0, len(s.subs[section]))
	for _, fn := range s.subs[section] {
		out = append(out, fn)
	}
	return out
}

// notify runs section listeners, then wildcard listeners for document sections.
func (s *Store) notify(section domain.Section, value any) {
	for _, fn := range s.listeners(section) {
		s.call(fn, section, value)
	}
	if section == domain.SectionStep {
		return
	}

	wildcard := s.listeners(domain.SectionAll)
	if len(wildcard) == 0 {
		return
	}
	doc := s.GetAll()
	for _, fn := range wildcard {
		s.call(fn, section, doc)
	}
}

// notifyDocument fans a whole-document change out to every section channel
// and once to the wildcard channel.
func (s *Store) notifyDocument() {
	doc := s.GetAll()
	for _, section := range domain.Sections {
		for _, fn := range s.listeners(section) {
			s.call(fn, section, doc.Section(section))
		}
	}
	for _, fn := range s.listeners(domain.SectionAll) {
		s.call(fn, domain.SectionAll, doc)
	}
}

func (s *Store) call(fn Listener, section domain.Section, value any) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("listener panicked",
				slog.String("section", string(section)),
				slog.Any("panic", r))
		}
	}()
	fn(section, value)
}
