// Package store owns the single form document of the session: section reads
// and replaces, undo/redo history, change subscriptions and durable saving.
package store

import (
	"log/slog"
	"sync"
	"time"

	"fireReport/internal/domain"
	"fireReport/internal/storage"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

const DefaultMaxHistory = 50

type Options struct {
	MaxHistory   int
	SaveOnUpdate bool
	Now          func() time.Time
}

// State is the read model handed to callers.
type State struct {
	Data      domain.Document  `json:"data"`
	FormState domain.FormState `json:"formState"`
	CanUndo   bool             `json:"canUndo"`
	CanRedo   bool             `json:"canRedo"`
}

type Store struct {
	mu      sync.Mutex
	doc     domain.Document
	form    domain.FormState
	version uint64

	// history holds encoded whole documents; cursor is -1 while empty.
	history    [][]byte
	cursor     int
	maxHistory int

	kv           storage.KV
	saveOnUpdate bool
	now          func() time.Time
	logger       *slog.Logger

	subsMu sync.RWMutex
	subs   map[domain.Section]map[uuid.UUID]Listener
}

func New(kv storage.KV, logger *slog.Logger, opts Options) *Store {
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		doc:          domain.NewDocument(),
		form:         domain.NewFormState(),
		cursor:       -1,
		maxHistory:   opts.MaxHistory,
		kv:           kv,
		saveOnUpdate: opts.SaveOnUpdate,
		now:          opts.Now,
		logger:       logger,
		subs:         make(map[domain.Section]map[uuid.UUID]Listener),
	}
}

// GetAll returns a deep copy of the whole document.
func (s *Store) GetAll() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyDocLocked()
}

// GetSection returns a deep copy of one section.
func (s *Store) GetSection(section domain.Section) (any, error) {
	if !section.Valid() {
		return nil, unknownSection("store.GetSection", section)
	}

	doc := s.GetAll()
	return doc.Section(section), nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := s.form
	if form.LastUpdate != nil {
		ts := *form.LastUpdate
		form.LastUpdate = &ts
	}

	return State{
		Data:      s.copyDocLocked(),
		FormState: form,
		CanUndo:   s.cursor > 0,
		CanRedo:   s.cursor < len(s.history)-1,
	}
}

// HistoryPosition reports the number of history entries and the cursor.
func (s *Store) HistoryPosition() (length, cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.history), s.cursor
}

func (s *Store) copyDocLocked() domain.Document {
	var out domain.Document
	if err := deepcopy.Copy(&out, &s.doc); err != nil {
		// deepcopy only fails on unsupported kinds, which Document does not hold.
		s.logger.Error("document copy failed", slog.Any("error", err))
		return domain.NewDocument()
	}
	out.Normalize()
	return out
}
