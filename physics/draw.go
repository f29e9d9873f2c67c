package physics

import "github.com/jakecoffman/cp/v2"

// Draw renders the collider using the given chipmunk drawer.
func (c *Collider) Draw(drawer cp.Drawer) {
	cp.DrawShape(c.cpShape, drawer)
}
