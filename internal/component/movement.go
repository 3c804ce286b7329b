// component/movement.go
package component

import (
	"go-arena-survival/internal/types"

	"golang.org/x/image/math/f64"
)

// Transform — позиция сущности на арене и радиус её коллайдера.
type Transform struct {
	Pos    f64.Vec2
	Radius float64
}

// Body — компонент скорости. Velocity is integrated by the physics step and
// decays by Damping per second.
type Body struct {
	Velocity f64.Vec2
	Damping  float64
	Frozen   bool // true once the owner is dead; the physics step skips it
}

// Chaser is the autonomous movement controller of an enemy: it walks
// straight toward its target while Active.
type Chaser struct {
	Speed           float64
	Active          bool
	RefreshInterval float64 // how often a missing target is looked up again
	NextRefresh     float64 // game time of the next lookup
	Target          types.EntityID
}

// Enabled reports whether the controller is currently steering.
func (c *Chaser) Enabled() bool {
	return c.Active
}

// SetEnabled switches the controller on or off.
func (c *Chaser) SetEnabled(enabled bool) {
	c.Active = enabled
}
