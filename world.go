package arena

import (
	"iter"
	"slices"
)

type entitySlot struct {
	generation uint32
	alive      bool
	reserved   bool
}

// World holds all movable bodies and static arena elements.
//
// A World must not be modified while one of its iterators is running. Systems
// use Commands to spawn and despawn entities, the commands are applied after
// the system returns.
type World struct {
	slots []entitySlot
	free  []uint32

	bodies    map[EntityId]*Body
	obstacles map[EntityId]*ArenaElement

	// live entities in spawn order
	order []EntityId

	activeIterators int
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		bodies:    map[EntityId]*Body{},
		obstacles: map[EntityId]*ArenaElement{},
	}
}

func (w *World) reserveEntityId() EntityId {
	var index uint32

	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, entitySlot{})
	}

	slot := &w.slots[index]

	// generation zero is never handed out, so NoEntityId stays invalid
	slot.generation += 1
	if slot.generation == 0 {
		slot.generation = 1
	}

	slot.reserved = true

	return makeEntityId(index, slot.generation)
}

func (w *World) slotOf(entityId EntityId) (*entitySlot, bool) {
	index := entityId.Index()
	if int(index) >= len(w.slots) {
		return nil, false
	}

	slot := &w.slots[index]
	if slot.generation != entityId.Generation() {
		return nil, false
	}

	return slot, true
}

func (w *World) activate(entityId EntityId) bool {
	w.assertNotIterating()

	slot, ok := w.slotOf(entityId)
	if !ok || !slot.reserved {
		// reservation was dropped before the spawn got applied
		return false
	}

	slot.reserved = false
	slot.alive = true

	w.order = append(w.order, entityId)
	return true
}

// SpawnBody spawns a new movable body and returns its id.
func (w *World) SpawnBody(body Body) EntityId {
	entityId := w.reserveEntityId()
	w.spawnBodyWithId(entityId, body)
	return entityId
}

func (w *World) spawnBodyWithId(entityId EntityId, body Body) {
	if !w.activate(entityId) {
		return
	}

	// a Bounce policy is stateful, never share it between two bodies
	if bounce, ok := body.RigidBody.Policy.(*Bounce); ok {
		cloned := *bounce
		body.RigidBody.Policy = &cloned
	}

	if body.RigidBody.Policy == nil {
		body.RigidBody.Policy = Through{}
	}

	w.bodies[entityId] = &body
}

// SpawnObstacle spawns a static arena element and returns its id.
func (w *World) SpawnObstacle(element ArenaElement) EntityId {
	entityId := w.reserveEntityId()
	w.activate(entityId)
	w.obstacles[entityId] = &element
	return entityId
}

// Despawn removes the entity from the world. Despawning an entity that
// is not alive is a no-op and returns false.
func (w *World) Despawn(entityId EntityId) bool {
	w.assertNotIterating()

	slot, ok := w.slotOf(entityId)
	if !ok {
		return false
	}

	if slot.reserved {
		// spawn was never applied, just hand the slot back
		slot.reserved = false
		w.free = append(w.free, entityId.Index())
		return true
	}

	if !slot.alive {
		return false
	}

	slot.alive = false
	w.free = append(w.free, entityId.Index())

	delete(w.bodies, entityId)
	delete(w.obstacles, entityId)

	if idx := slices.Index(w.order, entityId); idx >= 0 {
		w.order = slices.Delete(w.order, idx, idx+1)
	}

	return true
}

// IsAlive returns true if the entity has been spawned and not yet despawned.
func (w *World) IsAlive(entityId EntityId) bool {
	slot, ok := w.slotOf(entityId)
	return ok && slot.alive
}

func (w *World) Body(entityId EntityId) (*Body, bool) {
	body, ok := w.bodies[entityId]
	return body, ok
}

func (w *World) Obstacle(entityId EntityId) (*ArenaElement, bool) {
	element, ok := w.obstacles[entityId]
	return element, ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.order)
}

// Entities yields the ids of all live entities in spawn order.
func (w *World) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		w.activeIterators += 1
		defer func() { w.activeIterators -= 1 }()

		for _, entityId := range w.order {
			if !yield(entityId) {
				return
			}
		}
	}
}

// Bodies yields all movable bodies in spawn order.
func (w *World) Bodies() iter.Seq2[EntityId, *Body] {
	return func(yield func(EntityId, *Body) bool) {
		for entityId := range w.Entities() {
			body, ok := w.bodies[entityId]
			if !ok {
				continue
			}

			if !yield(entityId, body) {
				return
			}
		}
	}
}

// Obstacles yields all static arena elements in spawn order.
func (w *World) Obstacles() iter.Seq2[EntityId, *ArenaElement] {
	return func(yield func(EntityId, *ArenaElement) bool) {
		for entityId := range w.Entities() {
			element, ok := w.obstacles[entityId]
			if !ok {
				continue
			}

			if !yield(entityId, element) {
				return
			}
		}
	}
}

func (w *World) assertNotIterating() {
	if w.activeIterators > 0 {
		panic("world modified during iteration, use Commands instead")
	}
}
