// internal/system/player_system.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"golang.org/x/image/math/f64"
)

// DefaultAimDirection is used when the player fires before ever moving.
var DefaultAimDirection = f64.Vec2{1, 0}

// PlayerSystem отвечает за логику игрока: движение по вводу и стрельбу.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// SetInput stores the desired move direction of a player. It is normalized
// on use, so raw key axes are fine.
func (s *PlayerSystem) SetInput(id types.EntityID, dir f64.Vec2) {
	if p, ok := s.ecs.Players[id]; ok {
		p.Input = dir
	}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	for id, p := range s.ecs.Players {
		pos := s.ecs.Transforms[id]
		if pos == nil || !s.ecs.IsAlive(id) {
			continue
		}
		if utils.IsZero(p.Input) {
			continue
		}
		dir := utils.Normalize(p.Input)
		p.LastMoveDir = dir
		pos.Pos = utils.Add(pos.Pos, utils.Scale(dir, p.MoveSpeed*deltaTime))
	}
}

// TryFire shoots one projectile from player id toward dir. A zero dir
// reuses the last shot direction, then the last move direction. It fails
// while the fire cooldown runs or when the player is dead.
func (s *PlayerSystem) TryFire(id types.EntityID, dir f64.Vec2) (types.EntityID, bool) {
	p, ok := s.ecs.Players[id]
	if !ok || !s.ecs.IsAlive(id) {
		return 0, false
	}
	now := s.ecs.GameTime
	if now < p.NextFireTime {
		return 0, false
	}

	aim := utils.NormalizeOr(dir, utils.NormalizeOr(p.LastShootDir, utils.NormalizeOr(p.LastMoveDir, DefaultAimDirection)))
	p.LastShootDir = aim
	p.NextFireTime = now + p.FireCooldown

	origin := s.ecs.Transforms[id]
	projID := s.ecs.NewEntity()
	s.ecs.Transforms[projID] = &component.Transform{
		Pos:    utils.Add(origin.Pos, utils.Scale(aim, origin.Radius+p.ShotRadius)),
		Radius: p.ShotRadius,
	}
	s.ecs.Projectiles[projID] = &component.Projectile{
		Direction: aim,
		Speed:     p.ShotSpeed,
		Damage:    p.ShotDamage,
		ExpiresAt: now + p.ShotLifetime,
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: projID})
	return projID, true
}
