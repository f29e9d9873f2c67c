package arena

import (
	"fmt"
	"log/slog"
)

// EntityId identifies an entity within a World. The lower 32 bits hold the index of the
// slot the entity lives in, the upper 32 bits hold the generation of that slot.
// A slot gets a new generation every time it is reused, so an EntityId of a despawned
// entity never refers to a newer entity.
type EntityId uint64

const NoEntityId = EntityId(0)

const entityIndexBits = 32

func makeEntityId(index, generation uint32) EntityId {
	return EntityId(uint64(generation)<<entityIndexBits | uint64(index))
}

// Index returns the slot index of the entity.
func (e EntityId) Index() uint32 {
	return uint32(e)
}

// Generation returns the generation of the slot at the time the entity was spawned.
func (e EntityId) Generation() uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

func (e EntityId) String() string {
	return fmt.Sprintf("%dv%d", e.Index(), e.Generation())
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}
