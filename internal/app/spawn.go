// internal/app/spawn.go
package app

import (
	"errors"

	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
)

var errRunOver = errors.New("run is no longer active")

// SpawnEnemy is the scheduler's spawn prototype: it builds one enemy from
// the configured definition at point. Score and death handling are
// subscribed here, before the scheduler attaches its own death handler, so
// the last kill is scored before the win is stored.
func (g *Game) SpawnEnemy(point system.SpawnPoint) (*combat.Entity, error) {
	if g.tornDown {
		return nil, errRunOver
	}
	def := g.Config.Enemy
	id := g.ECS.NewEntity()

	transform := &component.Transform{Pos: point.Position, Radius: def.Radius}
	body := &component.Body{Damping: def.Damping}
	chaser := &component.Chaser{
		Speed:           def.Speed,
		Active:          true,
		RefreshInterval: def.TargetRefresh.Seconds(),
	}
	enemy := &component.Enemy{
		ScoreOnDeath:   def.ScoreOnDeath,
		KnockbackForce: def.KnockbackForce,
		Wave:           g.Session.CurrentWave(),
	}
	enemyEntity := combat.NewEntity(id, combat.KindEnemy, def.Health)

	g.ECS.Transforms[id] = transform
	g.ECS.Bodies[id] = body
	g.ECS.Chasers[id] = chaser
	g.ECS.Enemies[id] = enemy
	g.ECS.Combatants[id] = enemyEntity
	g.ECS.Knockbacks[id] = combat.NewKnockback(transform, body, chaser,
		def.KnockbackForce, def.KnockbackMaxSpeed, def.KnockbackLock.Seconds())
	g.ECS.ContactGates[id] = combat.NewContactGate(def.ContactDamage, def.ContactCooldown.Seconds())

	fade := def.DeathFade.Seconds()
	var deathSub event.Subscription
	deathSub = enemyEntity.OnDied(func(dead *combat.Entity) {
		// Died fires once; the handle is not needed afterwards.
		deathSub.Unsubscribe()
		delete(g.enemySubs, dead.ID())
		g.Session.AddScore(enemy.ScoreOnDeath)
		g.VisualEffectSystem.HandleDeath(dead.ID(), fade)
	})
	g.enemySubs[id] = deathSub

	return enemyEntity, nil
}

func (g *Game) createPlayerEntity() {
	def := g.Config.Player
	g.PlayerID = g.ECS.NewEntity()
	id := g.PlayerID

	g.ECS.Transforms[id] = &component.Transform{Radius: def.Radius}
	g.ECS.Bodies[id] = &component.Body{}
	g.ECS.Players[id] = &component.Player{
		MoveSpeed:    def.MoveSpeed,
		FireCooldown: def.FireCooldown.Seconds(),
		ShotSpeed:    def.ProjectileSpeed,
		ShotLifetime: def.ProjectileLifetime.Seconds(),
		ShotDamage:   def.ProjectileDamage,
		ShotRadius:   def.ProjectileRadius,
	}
	player := combat.NewEntity(id, combat.KindPlayer, def.Health)
	g.ECS.Combatants[id] = player

	g.subs = append(g.subs, player.OnDied(func(dead *combat.Entity) {
		g.onPlayerDied(dead.ID())
	}))
}

func (g *Game) onPlayerDied(id types.EntityID) {
	g.VisualEffectSystem.HandleDeath(id, 0)
	g.logger.Printf("Game: player %d died at %.2fs", id, g.gameTime)
	g.Session.EndSession(false)
}
