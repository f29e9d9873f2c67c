package physics

import (
	"cmp"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
)

// PairKey identifies an unordered pair of entities. A is always the smaller id.
type PairKey struct {
	A, B arena.EntityId
}

// MakePairKey orders the two ids. A pair of an entity with itself is invalid.
func MakePairKey(a, b arena.EntityId) (PairKey, bool) {
	if a == b {
		return PairKey{}, false
	}

	if b < a {
		a, b = b, a
	}

	return PairKey{A: a, B: b}, true
}

// Contains returns true if the entity is part of the pair.
func (k PairKey) Contains(entityId arena.EntityId) bool {
	return k.A == entityId || k.B == entityId
}

func (k PairKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("a", k.A),
		slog.Any("b", k.B),
	)
}

func comparePairKeys(lhs, rhs PairKey) int {
	if lhs.A != rhs.A {
		return cmp.Compare(lhs.A, rhs.A)
	}

	return cmp.Compare(lhs.B, rhs.B)
}

// ContactRecord describes a live contact, as seen from entity A of the pair.
type ContactRecord struct {
	Point  gm.Vec
	Normal gm.Vec

	MassA, MassB float64

	// RelativeVelocity is the velocity of A minus the velocity of B.
	RelativeVelocity gm.Vec
}

// TOIRecord tracks a predicted impact of a fast moving body.
type TOIRecord struct {
	Mover     arena.EntityId
	Remaining float64
}

type Transition uint8

const (
	Unchanged Transition = iota
	Started
	Ended
)

// Registry remembers all contacts and predicted impacts across frames. At most one
// contact record and one impact record exists for each pair.
type Registry struct {
	logger   *slog.Logger
	contacts map[PairKey]ContactRecord
	impacts  map[PairKey]TOIRecord
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		logger:   logger,
		contacts: map[PairKey]ContactRecord{},
		impacts:  map[PairKey]TOIRecord{},
	}
}

// Key builds the pair key and reports an invalid pair to the log.
func (r *Registry) Key(a, b arena.EntityId) (PairKey, bool) {
	key, ok := MakePairKey(a, b)
	if !ok {
		r.logger.Error("Refusing to track a contact of an entity with itself", slog.Any("entity", a))
	}

	return key, ok
}

// Reconcile updates the contact state of a pair. Passing nil marks the pair as not touching.
// A new contact drops any pending impact prediction for the same pair. A contact that
// continues from an earlier step leaves the stored record untouched.
func (r *Registry) Reconcile(key PairKey, contact *ContactRecord) Transition {
	_, exists := r.contacts[key]

	switch {
	case contact != nil && !exists:
		r.contacts[key] = *contact
		delete(r.impacts, key)
		return Started

	case contact != nil:
		// the record keeps the state of the first detection
		return Unchanged

	case exists:
		delete(r.contacts, key)
		return Ended

	default:
		return Unchanged
	}
}

func (r *Registry) Contact(key PairKey) (ContactRecord, bool) {
	contact, ok := r.contacts[key]
	return contact, ok
}

// Contacts yields all contacts ordered by their key.
func (r *Registry) Contacts() iter.Seq2[PairKey, ContactRecord] {
	keys := slices.SortedFunc(maps.Keys(r.contacts), comparePairKeys)

	return func(yield func(PairKey, ContactRecord) bool) {
		for _, key := range keys {
			contact, ok := r.contacts[key]
			if !ok {
				continue
			}

			if !yield(key, contact) {
				return
			}
		}
	}
}

func (r *Registry) ContactCount() int {
	return len(r.contacts)
}

// PredictImpact stores a new impact prediction. An existing prediction
// for the same pair is kept and false is returned.
func (r *Registry) PredictImpact(key PairKey, record TOIRecord) bool {
	if _, exists := r.impacts[key]; exists {
		return false
	}

	r.impacts[key] = record
	return true
}

func (r *Registry) Impact(key PairKey) (TOIRecord, bool) {
	record, ok := r.impacts[key]
	return record, ok
}

func (r *Registry) ImpactCount() int {
	return len(r.impacts)
}

// CountDown advances the impact prediction of the pair by dt seconds. Once the predicted
// time has passed, the record is removed and the time since the impact is returned.
func (r *Registry) CountDown(key PairKey, dt float64) (overshoot float64, realized bool) {
	record, ok := r.impacts[key]
	if !ok {
		return 0, false
	}

	record.Remaining -= dt
	if record.Remaining > 0 {
		r.impacts[key] = record
		return 0, false
	}

	delete(r.impacts, key)
	return -record.Remaining, true
}

// Purge removes all records that refer to an entity that is not alive anymore.
// The keys of the removed contacts are returned in order.
func (r *Registry) Purge(isAlive func(arena.EntityId) bool) []PairKey {
	var ended []PairKey

	for key := range r.contacts {
		if !isAlive(key.A) || !isAlive(key.B) {
			delete(r.contacts, key)
			ended = append(ended, key)
		}
	}

	for key := range r.impacts {
		if !isAlive(key.A) || !isAlive(key.B) {
			delete(r.impacts, key)
		}
	}

	slices.SortFunc(ended, comparePairKeys)

	return ended
}

func (r *Registry) Clear() {
	clear(r.contacts)
	clear(r.impacts)
}
