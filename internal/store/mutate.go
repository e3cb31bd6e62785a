package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"fireReport/internal/domain"
	"fireReport/internal/metrics"
	"fireReport/pkg/e"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

type keyed interface {
	Key() uuid.UUID
	EnsureKey() uuid.UUID
}

func ensureKeys[T any, PT interface {
	*T
	keyed
}](items []T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	for i := range out {
		PT(&out[i]).EnsureKey()
	}
	return out
}

func appendUnique[T any, PT interface {
	*T
	keyed
}](items []T, item T) ([]T, error) {
	id := PT(&item).Key()
	for i := range items {
		if PT(&items[i]).Key() == id {
			return items, e.Wrap(fmt.Sprintf("store: duplicate id %s", id), e.ErrConflict)
		}
	}
	return append(items, item), nil
}

func removeByKey[T any, PT interface {
	*T
	keyed
}](items []T, id uuid.UUID) ([]T, bool) {
	for i := range items {
		if PT(&items[i]).Key() == id {
			return slices.Delete(slices.Clone(items), i, i+1), true
		}
	}
	return items, false
}

func unknownSection(op string, section domain.Section) error {
	return e.Wrap(fmt.Sprintf("%s %q", op, section), e.ErrUnknownSection)
}

func wrongType(op string, section domain.Section, value any) error {
	return e.Wrap(fmt.Sprintf("%s: section %q cannot hold %T", op, section, value), e.ErrInvalidInput)
}

// Update replaces a section wholesale. value must be the section's Go type:
// IncidentInfo for the incident section, a slice of the entity for the lists.
func (s *Store) Update(ctx context.Context, section domain.Section, value any) error {
	const op = "store.Update"

	return s.mutate(ctx, section, func(doc *domain.Document) error {
		switch section {
		case domain.SectionIncident:
			v, ok := value.(domain.IncidentInfo)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.Incident = v
		case domain.SectionPatients:
			v, ok := value.([]domain.Patient)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.Patients = ensureKeys(v)
		case domain.SectionVehicles:
			v, ok := value.([]domain.Vehicle)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.Vehicles = ensureKeys(v)
		case domain.SectionFireUnits:
			v, ok := value.([]domain.FireUnit)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.FireUnits = ensureKeys(v)
		case domain.SectionPoliceUnits:
			v, ok := value.([]domain.PoliceUnit)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.PoliceUnits = ensureKeys(v)
		case domain.SectionAmbulanceUnits:
			v, ok := value.([]domain.AmbulanceUnit)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.AmbulanceUnits = ensureKeys(v)
		case domain.SectionVolunteers:
			v, ok := value.([]domain.Volunteer)
			if !ok {
				return wrongType(op, section, value)
			}
			doc.Volunteers = ensureKeys(v)
		default:
			return unknownSection(op, section)
		}
		return nil
	})
}

// UpdateJSON decodes raw into the section's type and applies Update.
func (s *Store) UpdateJSON(ctx context.Context, section domain.Section, raw []byte) error {
	const op = "store.UpdateJSON"

	if !section.Valid() {
		return unknownSection(op, section)
	}

	var doc domain.Document
	wrapped := fmt.Sprintf(`{%q:%s}`, string(section), raw)
	if err := json.Unmarshal([]byte(wrapped), &doc); err != nil {
		return e.Wrap(fmt.Sprintf("%s: %v", op, err), e.ErrInvalidInput)
	}
	return s.Update(ctx, section, doc.Section(section))
}

// Add appends one entity to the list section matching its type and returns
// the store-assigned id.
func (s *Store) Add(ctx context.Context, item any) (uuid.UUID, error) {
	const op = "store.Add"

	var (
		id      uuid.UUID
		section domain.Section
		apply   func(doc *domain.Document) error
	)

	switch v := item.(type) {
	case domain.Patient:
		id, section = v.EnsureKey(), domain.SectionPatients
		apply = func(doc *domain.Document) (err error) {
			doc.Patients, err = appendUnique(doc.Patients, v)
			return err
		}
	case domain.Vehicle:
		id, section = v.EnsureKey(), domain.SectionVehicles
		apply = func(doc *domain.Document) (err error) {
			doc.Vehicles, err = appendUnique(doc.Vehicles, v)
			return err
		}
	case domain.FireUnit:
		id, section = v.EnsureKey(), domain.SectionFireUnits
		apply = func(doc *domain.Document) (err error) {
			doc.FireUnits, err = appendUnique(doc.FireUnits, v)
			return err
		}
	case domain.PoliceUnit:
		id, section = v.EnsureKey(), domain.SectionPoliceUnits
		apply = func(doc *domain.Document) (err error) {
			doc.PoliceUnits, err = appendUnique(doc.PoliceUnits, v)
			return err
		}
	case domain.AmbulanceUnit:
		id, section = v.EnsureKey(), domain.SectionAmbulanceUnits
		apply = func(doc *domain.Document) (err error) {
			doc.AmbulanceUnits, err = appendUnique(doc.AmbulanceUnits, v)
			return err
		}
	case domain.Volunteer:
		id, section = v.EnsureKey(), domain.SectionVolunteers
		apply = func(doc *domain.Document) (err error) {
			doc.Volunteers, err = appendUnique(doc.Volunteers, v)
			return err
		}
	default:
		return uuid.Nil, e.Wrap(fmt.Sprintf("%s: %T is not a list entity", op, item), e.ErrInvalidInput)
	}

	if err := s.mutate(ctx, section, apply); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// AddJSON decodes raw as one entity of the list section and adds it.
func (s *Store) AddJSON(ctx context.Context, section domain.Section, raw []byte) (uuid.UUID, error) {
	const op = "store.AddJSON"

	if !section.IsList() {
		return uuid.Nil, unknownSection(op, section)
	}

	// raw must be exactly one JSON object.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || probe == nil {
		return uuid.Nil, e.Wrap(fmt.Sprintf("%s: entity must be a JSON object", op), e.ErrInvalidInput)
	}

	var doc domain.Document
	wrapped := fmt.Sprintf(`{%q:[%s]}`, string(section), raw)
	if err := json.Unmarshal([]byte(wrapped), &doc); err != nil {
		return uuid.Nil, e.Wrap(fmt.Sprintf("%s: %v", op, err), e.ErrInvalidInput)
	}

	switch section {
	case domain.SectionPatients:
		return s.Add(ctx, doc.Patients[0])
	case domain.SectionVehicles:
		return s.Add(ctx, doc.Vehicles[0])
	case domain.SectionFireUnits:
		return s.Add(ctx, doc.FireUnits[0])
	case domain.SectionPoliceUnits:
		return s.Add(ctx, doc.PoliceUnits[0])
	case domain.SectionAmbulanceUnits:
		return s.Add(ctx, doc.AmbulanceUnits[0])
	default:
		return s.Add(ctx, doc.Volunteers[0])
	}
}

// Remove deletes the entity with id from a list section.
func (s *Store) Remove(ctx context.Context, section domain.Section, id uuid.UUID) error {
	const op = "store.Remove"

	if !section.IsList() {
		return unknownSection(op, section)
	}

	return s.mutate(ctx, section, func(doc *domain.Document) error {
		var found bool
		switch section {
		case domain.SectionPatients:
			doc.Patients, found = removeByKey(doc.Patients, id)
		case domain.SectionVehicles:
			doc.Vehicles, found = removeByKey(doc.Vehicles, id)
		case domain.SectionFireUnits:
			doc.FireUnits, found = removeByKey(doc.FireUnits, id)
		case domain.SectionPoliceUnits:
			doc.PoliceUnits, found = removeByKey(doc.PoliceUnits, id)
		case domain.SectionAmbulanceUnits:
			doc.AmbulanceUnits, found = removeByKey(doc.AmbulanceUnits, id)
		case domain.SectionVolunteers:
			doc.Volunteers, found = removeByKey(doc.Volunteers, id)
		}
		if !found {
			return e.Wrap(fmt.Sprintf("%s: %s %s", op, section, id), e.ErrNotFound)
		}
		return nil
	})
}

// mutate is the single write path: fn edits a private copy, and only a
// successful edit reaches history, the live document and subscribers.
func (s *Store) mutate(ctx context.Context, section domain.Section, fn func(*domain.Document) error) error {
	const op = "store.mutate"

	s.mu.Lock()

	var next domain.Document
	if err := deepcopy.Copy(&next, &s.doc); err != nil {
		s.mu.Unlock()
		return e.Wrap(op, err)
	}
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	next.Normalize()

	pre, err := json.Marshal(s.doc)
	if err != nil {
		s.mu.Unlock()
		return e.Wrap(op+".pre", err)
	}
	post, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return e.Wrap(op+".post", err)
	}
	doc, err := decodeDocument(post)
	if err != nil {
		s.mu.Unlock()
		return e.Wrap(op+".decode", err)
	}

	s.record(pre, post)
	s.doc = doc
	s.touchLocked()
	snapshot := s.copyDocLocked()
	value := snapshot.Section(section)
	s.mu.Unlock()

	metrics.RecordUpdate(string(section))
	s.logger.Debug("section updated", slog.String("section", string(section)))

	if s.saveOnUpdate {
		s.Save(ctx)
	}
	s.notify(section, value)
	return nil
}

func (s *Store) touchLocked() {
	now := s.now()
	s.form.IsDirty = true
	s.form.LastUpdate = &now
	s.version++
}

// SetStep records the page of the form the user is on.
func (s *Store) SetStep(ctx context.Context, step domain.Step) error {
	if !step.Valid() {
		return e.Wrap(fmt.Sprintf("store.SetStep %q", step), e.ErrInvalidInput)
	}

	s.mu.Lock()
	s.form.CurrentStep = step
	s.mu.Unlock()

	if s.saveOnUpdate {
		s.Save(ctx)
	}
	s.notify(domain.SectionStep, step)
	return nil
}

// Reset clears the document and history. It refuses to run unless confirmed.
func (s *Store) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return e.Wrap("store.Reset", e.ErrNotConfirmed)
	}

	s.mu.Lock()
	s.doc = domain.NewDocument()
	s.form.CurrentStep = domain.StepIncident
	s.history = nil
	s.cursor = -1
	s.touchLocked()
	s.mu.Unlock()

	s.logger.Info("form reset")

	s.Save(ctx)
	s.notifyDocument()
	return nil
}

func decodeDocument(b []byte) (domain.Document, error) {
	doc := domain.NewDocument()
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Document{}, err
	}
	doc.Normalize()
	return doc, nil
}
