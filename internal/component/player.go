// internal/component/player.go
package component

import "golang.org/x/image/math/f64"

// Player хранит состояние, специфичное для игрока: ввод движения и атаку.
type Player struct {
	MoveSpeed    float64
	Input        f64.Vec2 // desired move direction, set by the input collaborator
	LastMoveDir  f64.Vec2 // last non-zero move direction, used as the aim fallback
	FireCooldown float64
	NextFireTime float64
	ShotSpeed    float64
	ShotLifetime float64
	ShotDamage   int
	ShotRadius   float64
	LastShootDir f64.Vec2
}
