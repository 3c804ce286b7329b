// internal/system/movement.go
package system

import (
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"golang.org/x/image/math/f64"
)

// ChaseSystem ведёт врагов прямо на игрока.
type ChaseSystem struct {
	ecs *entity.ECS
}

func NewChaseSystem(ecs *entity.ECS) *ChaseSystem {
	return &ChaseSystem{ecs: ecs}
}

func (s *ChaseSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for id, chaser := range s.ecs.Chasers {
		if !chaser.Active {
			continue
		}
		pos, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			continue
		}

		if !s.ecs.IsAlive(chaser.Target) {
			chaser.Target = 0
			if now < chaser.NextRefresh {
				continue
			}
			chaser.NextRefresh = now + chaser.RefreshInterval
			chaser.Target = s.nearestPlayer(pos.Pos)
			if chaser.Target == 0 {
				continue
			}
		}

		target := s.ecs.Transforms[chaser.Target]
		toTarget := utils.Sub(target.Pos, pos.Pos)
		if utils.SqrLength(toTarget) < utils.Epsilon {
			continue
		}
		step := chaser.Speed * deltaTime
		if dist := utils.Length(toTarget); step > dist {
			step = dist
		}
		pos.Pos = utils.Add(pos.Pos, utils.Scale(utils.Normalize(toTarget), step))
	}
}

// nearestPlayer returns the closest live player, or 0.
func (s *ChaseSystem) nearestPlayer(from f64.Vec2) types.EntityID {
	var best types.EntityID
	bestDist := 0.0
	for id := range s.ecs.Players {
		if !s.ecs.IsAlive(id) {
			continue
		}
		d := utils.SqrLength(utils.Sub(s.ecs.Transforms[id].Pos, from))
		if best == 0 || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

// PhysicsSystem integrates velocities with linear damping and runs the
// knockback speed cap and suspension timers.
type PhysicsSystem struct {
	ecs        *entity.ECS
	halfExtent f64.Vec2 // arena half size; zero means unbounded
}

func NewPhysicsSystem(ecs *entity.ECS, halfExtent f64.Vec2) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, halfExtent: halfExtent}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	for id, body := range s.ecs.Bodies {
		if body.Frozen {
			body.Velocity = f64.Vec2{}
			continue
		}
		pos, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			continue
		}
		pos.Pos = utils.Add(pos.Pos, utils.Scale(body.Velocity, deltaTime))
		if body.Damping > 0 {
			body.Velocity = utils.Scale(body.Velocity, max(0, 1-body.Damping*deltaTime))
		}
	}

	now := s.ecs.GameTime
	for _, kb := range s.ecs.Knockbacks {
		kb.Step(now)
	}

	s.confine()
}

// confine keeps players and enemies inside the arena. Projectiles may leave
// it and expire on their own.
func (s *PhysicsSystem) confine() {
	if s.halfExtent == (f64.Vec2{}) {
		return
	}
	for id, pos := range s.ecs.Transforms {
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			continue
		}
		pos.Pos[0] = utils.Clamp(pos.Pos[0], -s.halfExtent[0], s.halfExtent[0])
		pos.Pos[1] = utils.Clamp(pos.Pos[1], -s.halfExtent[1], s.halfExtent[1])
	}
}
