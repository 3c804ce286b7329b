// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/session"
	"go-arena-survival/internal/system"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"golang.org/x/image/math/f64"
)

// Options are the collaborators of one arena run.
type Options struct {
	Config  config.Config
	Results session.ResultSink
	Loader  session.SceneRequester
	Logger  *log.Logger
}

// Game holds one arena run: the world, the session, the wave scheduler and
// the systems that advance them.
type Game struct {
	Config             config.Config
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher // arena events for presentation
	Session            *session.Session
	Scheduler          *system.WaveScheduler
	ChaseSystem        *system.ChaseSystem
	PhysicsSystem      *system.PhysicsSystem
	ContactSystem      *system.ContactSystem
	ProjectileSystem   *system.ProjectileSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem
	Rng                *utils.PRNGService
	PlayerID           types.EntityID

	logger    *log.Logger
	subs      []event.Subscription
	enemySubs map[types.EntityID]event.Subscription // released when the enemy dies
	gameTime  float64
	started   bool
	tornDown  bool
}

// NewGame builds a run from a sanitized configuration. Nothing moves until
// Start is called.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(cfg.Arena.Seed),
		logger:          logger,
		enemySubs:       make(map[types.EntityID]event.Subscription),
	}

	g.Session = session.New(session.Options{
		Results:          opts.Results,
		Loader:           opts.Loader,
		TimeTickInterval: cfg.Session.TimeTickInterval.Seconds(),
		Logger:           logger,
	})

	g.ChaseSystem = system.NewChaseSystem(ecs)
	g.PhysicsSystem = system.NewPhysicsSystem(ecs, f64.Vec2{config.ArenaHalfWidth, config.ArenaHalfHeight})
	g.ContactSystem = system.NewContactSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)

	g.Scheduler = system.NewWaveScheduler(system.WaveSchedulerConfig{
		Plan:           cfg.Waves.Plan,
		SpawnPoints:    spawnPoints(cfg.Arena.SpawnPoints),
		Factory:        system.SpawnFactoryFunc(g.SpawnEnemy),
		Session:        g.Session,
		RNG:            g.Rng,
		InterWaveDelay: cfg.Waves.InterWaveDelay.Seconds(),
		Logger:         logger,
	})

	return g
}

// Start places the player, starts the session and arms the scheduler. A
// scheduler configuration error is returned; the run then goes on without
// waves.
func (g *Game) Start() error {
	if g.started {
		return nil
	}
	g.started = true
	g.createPlayerEntity()
	g.Session.OnStart()
	return g.Scheduler.OnStart()
}

// Update advances the run by deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	if !g.started || g.tornDown || deltaTime <= 0 {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	if g.Session.IsPlaying() {
		g.PlayerSystem.Update(deltaTime)
		g.ChaseSystem.Update(deltaTime)
		g.PhysicsSystem.Update(deltaTime)
		g.ProjectileSystem.Update(deltaTime)
		g.ContactSystem.Update()
	}
	g.VisualEffectSystem.Update(deltaTime)

	g.Session.OnTick(deltaTime)
	g.Scheduler.OnTick(deltaTime)
}

// Teardown stops the scheduler and drops every subscription the run made,
// including presentation listeners on the arena dispatcher.
func (g *Game) Teardown() {
	if g.tornDown {
		return
	}
	g.tornDown = true
	g.Scheduler.OnTeardown()
	for _, sub := range g.subs {
		sub.Unsubscribe()
	}
	g.subs = nil
	for id, sub := range g.enemySubs {
		sub.Unsubscribe()
		delete(g.enemySubs, id)
	}
	g.EventDispatcher.Clear()
}

// SetPlayerInput sets the player's move direction.
func (g *Game) SetPlayerInput(dir f64.Vec2) {
	g.PlayerSystem.SetInput(g.PlayerID, dir)
}

// Fire shoots toward dir if the run is live and the cooldown allows it.
func (g *Game) Fire(dir f64.Vec2) bool {
	if !g.Session.IsPlaying() {
		return false
	}
	_, ok := g.PlayerSystem.TryFire(g.PlayerID, dir)
	return ok
}

// Player returns the player's combat entity.
func (g *Game) Player() *combat.Entity {
	return g.ECS.Combatants[g.PlayerID]
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

var arenaEventTypes = []event.EventType{event.EnemyHit, event.PlayerHit, event.EntityDied, event.ProjectileFired}

// DebugInfo — строка для отладочного оверлея.
func (g *Game) DebugInfo() string {
	listeners := 0
	for _, t := range arenaEventTypes {
		listeners += g.EventDispatcher.ListenerCount(t)
	}
	return fmt.Sprintf("t=%.2f session=%s waves=%s tracked=%d live=%d spawned=%d enemySubs=%d listeners=%d",
		g.gameTime,
		g.Session.State(),
		g.Scheduler.State(),
		g.Scheduler.AliveCount(),
		g.ECS.LiveEnemyCount(),
		g.Scheduler.TotalSpawned(),
		len(g.enemySubs),
		listeners,
	)
}

func spawnPoints(points []config.SpawnPoint) []*system.SpawnPoint {
	out := make([]*system.SpawnPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &system.SpawnPoint{
			Position: f64.Vec2{p.X, p.Y},
			Rotation: p.Rotation,
		})
	}
	return out
}
