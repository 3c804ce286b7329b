package system

import (
	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"

	"golang.org/x/image/math/f64"
)

func addTestPlayer(ecs *entity.ECS, pos f64.Vec2, hp int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Pos: pos, Radius: 0.5}
	ecs.Bodies[id] = &component.Body{}
	ecs.Combatants[id] = combat.NewEntity(id, combat.KindPlayer, hp)
	ecs.Players[id] = &component.Player{
		MoveSpeed:    5,
		FireCooldown: 0.25,
		ShotSpeed:    10,
		ShotLifetime: 2,
		ShotDamage:   1,
		ShotRadius:   0.15,
	}
	return id
}

func addTestEnemy(ecs *entity.ECS, pos f64.Vec2, hp int) types.EntityID {
	id := ecs.NewEntity()
	tr := &component.Transform{Pos: pos, Radius: 0.4}
	body := &component.Body{Damping: 8}
	chaser := &component.Chaser{Speed: 2.5, Active: true, RefreshInterval: 0.5}
	ecs.Transforms[id] = tr
	ecs.Bodies[id] = body
	ecs.Chasers[id] = chaser
	ecs.Combatants[id] = combat.NewEntity(id, combat.KindEnemy, hp)
	ecs.Knockbacks[id] = combat.NewKnockback(tr, body, chaser, 4, 6, 0.12)
	ecs.ContactGates[id] = combat.NewContactGate(10, 0.5)
	ecs.Enemies[id] = &component.Enemy{ScoreOnDeath: 10, KnockbackForce: 4}
	return id
}
