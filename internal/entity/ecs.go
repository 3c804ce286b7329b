// internal/entity/ecs.go
package entity

import (
	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/types"
)

// ECS holds every component of one arena run, keyed by entity id.
type ECS struct {
	GameTime     float64
	NextID       types.EntityID
	Transforms   map[types.EntityID]*component.Transform
	Bodies       map[types.EntityID]*component.Body
	Chasers      map[types.EntityID]*component.Chaser
	Combatants   map[types.EntityID]*combat.Entity
	Knockbacks   map[types.EntityID]*combat.Knockback
	ContactGates map[types.EntityID]*combat.ContactGate
	Enemies      map[types.EntityID]*component.Enemy
	Players      map[types.EntityID]*component.Player
	Projectiles  map[types.EntityID]*component.Projectile
	DeathFades   map[types.EntityID]*component.DeathFade
	HitFlashes   map[types.EntityID]*component.DamageFlash
}

func NewECS() *ECS {
	return &ECS{
		NextID:       1,
		Transforms:   make(map[types.EntityID]*component.Transform),
		Bodies:       make(map[types.EntityID]*component.Body),
		Chasers:      make(map[types.EntityID]*component.Chaser),
		Combatants:   make(map[types.EntityID]*combat.Entity),
		Knockbacks:   make(map[types.EntityID]*combat.Knockback),
		ContactGates: make(map[types.EntityID]*combat.ContactGate),
		Enemies:      make(map[types.EntityID]*component.Enemy),
		Players:      make(map[types.EntityID]*component.Player),
		Projectiles:  make(map[types.EntityID]*component.Projectile),
		DeathFades:   make(map[types.EntityID]*component.DeathFade),
		HitFlashes:   make(map[types.EntityID]*component.DamageFlash),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Destroy removes the entity from every component map. Destroying an
// unknown id is a no-op.
func (ecs *ECS) Destroy(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Bodies, id)
	delete(ecs.Chasers, id)
	delete(ecs.Combatants, id)
	delete(ecs.Knockbacks, id)
	delete(ecs.ContactGates, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DeathFades, id)
	delete(ecs.HitFlashes, id)
}

// Exists reports whether the entity still has a transform, i.e. is still
// part of the arena.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// IsAlive reports whether the entity exists and its combatant is not dead.
// Entities without a combatant (projectiles) count as alive while they exist.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if !ecs.Exists(id) {
		return false
	}
	if c, ok := ecs.Combatants[id]; ok {
		return !c.IsDead()
	}
	return true
}

// LiveEnemyCount counts enemies whose combatant is still alive.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for id := range ecs.Enemies {
		if c, ok := ecs.Combatants[id]; ok && !c.IsDead() {
			n++
		}
	}
	return n
}
