// internal/component/projectile.go
package component

import "golang.org/x/image/math/f64"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Direction f64.Vec2 // unit vector
	Speed     float64
	Damage    int
	ExpiresAt float64 // game time
	HasHit    bool    // a projectile damages at most one target
}
