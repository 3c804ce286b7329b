// Package combat holds the damage, knockback and contact-damage rules shared
// by the player and the enemies.
package combat

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
)

// Kind tells the player and enemy variants apart. Observers differ per kind:
// enemy deaths feed the score, the player's death ends the session.
type Kind int

const (
	KindEnemy Kind = iota
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the health-bearing part of a player or enemy. It emits
// event.HealthChanged and event.Died on its own dispatcher, synchronously
// inside ApplyDamage.
type Entity struct {
	id     types.EntityID
	kind   Kind
	health component.Health
	events *event.Dispatcher
}

// NewEntity creates a live entity at full health. maxHealth below 1 is raised
// to 1.
func NewEntity(id types.EntityID, kind Kind, maxHealth int) *Entity {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return &Entity{
		id:   id,
		kind: kind,
		health: component.Health{
			Max:     maxHealth,
			Current: maxHealth,
		},
		events: event.NewDispatcher(),
	}
}

func (e *Entity) ID() types.EntityID { return e.id }
func (e *Entity) Kind() Kind { return e.kind }
func (e *Entity) CurrentHealth() int { return e.health.Current }
func (e *Entity) MaxHealth() int { return e.health.Max }
func (e *Entity) IsDead() bool { return e.health.Dead }

// Health returns a copy of the health component.
func (e *Entity) Health() component.Health { return e.health }

// Events exposes the entity's notification channel.
func (e *Entity) Events() *event.Dispatcher { return e.events }

// OnDied subscribes fn to the entity's death. The handle must be disposed
// by the subscriber once it no longer cares, typically inside fn itself.
func (e *Entity) OnDied(fn func(*Entity)) event.Subscription {
	if fn == nil {
		return event.Subscription{}
	}
	return e.events.SubscribeFunc(event.Died, func(ev event.Event) {
		if dead, ok := ev.Data.(*Entity); ok {
			fn(dead)
		}
	})
}

// OnHealthChanged subscribes fn to health changes.
func (e *Entity) OnHealthChanged(fn func(current, max int)) event.Subscription {
	if fn == nil {
		return event.Subscription{}
	}
	return e.events.SubscribeFunc(event.HealthChanged, func(ev event.Event) {
		if hc, ok := ev.Data.(event.HealthChange); ok {
			fn(hc.Current, hc.Max)
		}
	})
}

// ApplyDamage subtracts amount from the current health, floored at zero.
// Damage to a dead entity and non-positive amounts are no-ops, so several
// damage sources may race against one death. It reports whether health
// actually changed.
func (e *Entity) ApplyDamage(amount int) bool {
	if e.health.Dead || amount <= 0 {
		return false
	}

	newHealth := e.health.Current - amount
	if newHealth < 0 {
		newHealth = 0
	}
	if newHealth == e.health.Current {
		return false
	}

	e.health.Current = newHealth
	e.notifyHealthChanged()

	if e.health.Current <= 0 {
		e.die()
	}
	return true
}

// NotifyCurrentHealth re-emits HealthChanged with the current values so a
// freshly attached observer can sync up.
func (e *Entity) NotifyCurrentHealth() {
	e.notifyHealthChanged()
}

func (e *Entity) die() {
	if e.health.Dead {
		return
	}
	e.health.Dead = true
	e.events.Dispatch(event.Event{Type: event.Died, Data: e})
}

func (e *Entity) notifyHealthChanged() {
	e.events.Dispatch(event.Event{
		Type: event.HealthChanged,
		Data: event.HealthChange{Current: e.health.Current, Max: e.health.Max},
	})
}
