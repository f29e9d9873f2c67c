package physics

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/stretchr/testify/require"
)

func TestMakePairKey(t *testing.T) {
	a, b := arena.EntityId(3), arena.EntityId(7)

	lhs, ok := MakePairKey(a, b)
	require.True(t, ok)

	rhs, ok := MakePairKey(b, a)
	require.True(t, ok)

	require.Equal(t, lhs, rhs)
	require.Equal(t, a, lhs.A)
	require.True(t, lhs.Contains(b))
	require.False(t, lhs.Contains(arena.EntityId(5)))

	_, ok = MakePairKey(a, a)
	require.False(t, ok)
}

func TestRegistryKeyLogsSelfPair(t *testing.T) {
	var buf bytes.Buffer
	registry := NewRegistry(slog.New(slog.NewTextHandler(&buf, nil)))

	_, ok := registry.Key(arena.EntityId(4), arena.EntityId(4))
	require.False(t, ok)
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestRegistryReconcile(t *testing.T) {
	registry := NewRegistry(nil)
	key, _ := MakePairKey(1, 2)

	contact := &ContactRecord{Point: gm.Vec{X: 1}, MassA: 1, MassB: 2}

	require.Equal(t, Unchanged, registry.Reconcile(key, nil))
	require.Equal(t, Started, registry.Reconcile(key, contact))

	// the pair stays in contact, the first record is kept
	for tick := range 5 {
		later := &ContactRecord{
			Point:            gm.Vec{X: 9, Y: float64(tick)},
			MassA:            1,
			MassB:            2,
			RelativeVelocity: gm.Vec{X: -3},
		}

		require.Equal(t, Unchanged, registry.Reconcile(key, later))
	}

	require.Equal(t, 1, registry.ContactCount())

	stored, ok := registry.Contact(key)
	require.True(t, ok)
	require.Equal(t, *contact, stored)

	require.Equal(t, Ended, registry.Reconcile(key, nil))
	require.Equal(t, 0, registry.ContactCount())
}

func TestRegistryContactDropsPrediction(t *testing.T) {
	registry := NewRegistry(nil)
	key, _ := MakePairKey(1, 2)

	require.True(t, registry.PredictImpact(key, TOIRecord{Mover: 1, Remaining: 0.1}))
	require.Equal(t, Started, registry.Reconcile(key, &ContactRecord{}))

	_, ok := registry.Impact(key)
	require.False(t, ok)
}

func TestRegistryCountDown(t *testing.T) {
	registry := NewRegistry(nil)
	key, _ := MakePairKey(1, 2)

	require.True(t, registry.PredictImpact(key, TOIRecord{Mover: 2, Remaining: 0.25}))

	// a second prediction does not replace the first
	require.False(t, registry.PredictImpact(key, TOIRecord{Mover: 1, Remaining: 1}))

	_, realized := registry.CountDown(key, 0.125)
	require.False(t, realized)

	record, ok := registry.Impact(key)
	require.True(t, ok)
	require.Equal(t, arena.EntityId(2), record.Mover)
	require.Equal(t, 0.125, record.Remaining)

	overshoot, realized := registry.CountDown(key, 0.5)
	require.True(t, realized)
	require.Equal(t, 0.375, overshoot)
	require.Equal(t, 0, registry.ImpactCount())

	// nothing left to count down
	_, realized = registry.CountDown(key, 0.5)
	require.False(t, realized)
}

func TestRegistryPurge(t *testing.T) {
	registry := NewRegistry(nil)

	ab, _ := MakePairKey(1, 2)
	ac, _ := MakePairKey(1, 3)
	bc, _ := MakePairKey(2, 3)

	registry.Reconcile(ab, &ContactRecord{})
	registry.Reconcile(bc, &ContactRecord{})
	registry.Reconcile(ac, &ContactRecord{})
	registry.PredictImpact(ab, TOIRecord{Mover: 1, Remaining: 1})

	alive := func(entityId arena.EntityId) bool { return entityId != 1 }

	ended := registry.Purge(alive)
	require.Equal(t, []PairKey{ab, ac}, ended)

	require.Equal(t, 1, registry.ContactCount())
	require.Equal(t, 0, registry.ImpactCount())

	var keys []PairKey
	for key := range registry.Contacts() {
		keys = append(keys, key)
	}

	require.Equal(t, []PairKey{bc}, keys)
}
