package physics

import (
	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
)

// ContactStarted is sent once when two entities start touching.
// A is always the entity with the smaller id.
type ContactStarted struct {
	A, B     arena.EntityId
	Position gm.Vec
	Normal   gm.Vec
}

// ContactEnded is sent when two entities stop touching or one of them is despawned.
type ContactEnded struct {
	A, B arena.EntityId
}
