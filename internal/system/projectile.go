// internal/system/projectile.go
package system

import (
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Transforms[id]
		if pos == nil || proj.HasHit || now >= proj.ExpiresAt {
			s.ecs.Destroy(id)
			continue
		}

		pos.Pos = utils.Add(pos.Pos, utils.Scale(proj.Direction, proj.Speed*deltaTime))

		if target, hit := s.findHit(id); hit {
			s.hitTarget(id, target)
		}
	}
}

// findHit returns the first live enemy the projectile overlaps.
func (s *ProjectileSystem) findHit(projectileID types.EntityID) (types.EntityID, bool) {
	pos := s.ecs.Transforms[projectileID]
	for enemyID := range s.ecs.Enemies {
		if !s.ecs.IsAlive(enemyID) {
			continue
		}
		if overlaps(pos, s.ecs.Transforms[enemyID]) {
			return enemyID, true
		}
	}
	return 0, false
}

// hitTarget damages the enemy once, knocks it back away from the projectile
// if it survived and removes the projectile.
func (s *ProjectileSystem) hitTarget(projectileID, targetID types.EntityID) {
	proj := s.ecs.Projectiles[projectileID]
	proj.HasHit = true
	hitPos := s.ecs.Transforms[projectileID].Pos

	target := s.ecs.Combatants[targetID]
	if target != nil {
		target.ApplyDamage(proj.Damage)
	}
	addHitFlash(s.ecs, targetID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: targetID})

	if target != nil && !target.IsDead() {
		if kb, ok := s.ecs.Knockbacks[targetID]; ok {
			force := kb.Force
			if enemy, isEnemy := s.ecs.Enemies[targetID]; isEnemy {
				force = enemy.KnockbackForce
			}
			kb.ApplyKnockback(s.ecs.GameTime, hitPos, force)
		}
	}

	s.ecs.Destroy(projectileID)
}
