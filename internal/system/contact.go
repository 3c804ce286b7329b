// internal/system/contact.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"
)

// ContactSystem hurts the player while a live enemy overlaps it. How often
// is up to each enemy's ContactGate.
type ContactSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewContactSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ContactSystem {
	return &ContactSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ContactSystem) Update() {
	now := s.ecs.GameTime
	for playerID := range s.ecs.Players {
		player, ok := s.ecs.Combatants[playerID]
		if !ok || player.IsDead() {
			continue
		}
		playerPos := s.ecs.Transforms[playerID]
		if playerPos == nil {
			continue
		}

		for enemyID, gate := range s.ecs.ContactGates {
			if !gate.Ready(now) || !s.ecs.IsAlive(enemyID) {
				continue
			}
			enemyPos := s.ecs.Transforms[enemyID]
			if !overlaps(playerPos, enemyPos) {
				continue
			}
			if gate.TryApplyDamage(now, player) {
				addHitFlash(s.ecs, playerID)
				s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: playerID})
			}
			if player.IsDead() {
				break
			}
		}
	}
}

// addHitFlash (re)starts the damage flash of id.
func addHitFlash(ecs *entity.ECS, id types.EntityID) {
	ecs.HitFlashes[id] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
}

func overlaps(a, b *component.Transform) bool {
	if a == nil || b == nil {
		return false
	}
	r := a.Radius + b.Radius
	return utils.SqrLength(utils.Sub(a.Pos, b.Pos)) <= r*r
}
