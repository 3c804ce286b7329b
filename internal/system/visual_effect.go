// internal/system/visual_effect.go
package system

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"

	"golang.org/x/image/math/f64"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и
// угасанием погибших, после которого сущность удаляется.
type VisualEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// HandleDeath takes a freshly dead entity out of gameplay right away: it
// stops chasing, exerts no contact damage and no longer moves. Enemies then
// fade out and are destroyed; the player's body stays where it fell.
// Repeated calls are no-ops.
func (s *VisualEffectSystem) HandleDeath(id types.EntityID, fadeDuration float64) {
	if _, fading := s.ecs.DeathFades[id]; fading || !s.ecs.Exists(id) {
		return
	}
	if chaser, ok := s.ecs.Chasers[id]; ok {
		chaser.SetEnabled(false)
		chaser.Target = 0
	}
	if gate, ok := s.ecs.ContactGates[id]; ok {
		gate.Disable()
	}
	if kb, ok := s.ecs.Knockbacks[id]; ok {
		kb.Cancel()
	}
	if body, ok := s.ecs.Bodies[id]; ok {
		body.Velocity = f64.Vec2{}
		body.Frozen = true
	}
	if p, ok := s.ecs.Players[id]; ok {
		p.Input = f64.Vec2{}
	} else {
		s.ecs.DeathFades[id] = &component.DeathFade{Duration: max(0, fadeDuration)}
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EntityDied, Data: id})
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.HitFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.HitFlashes, id)
		}
	}

	for id, fade := range s.ecs.DeathFades {
		fade.Timer += deltaTime
		if fade.Timer >= fade.Duration {
			s.ecs.Destroy(id)
		}
	}
}
