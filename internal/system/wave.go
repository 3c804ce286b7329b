// internal/system/wave.go
package system

import (
	"errors"
	"log"

	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"golang.org/x/image/math/f64"
)

// Configuration errors reported by WaveScheduler.Validate.
var (
	ErrNoSpawnPrototype = errors.New("spawn prototype is not configured")
	ErrEmptyWavePlan    = errors.New("wave plan is empty")
	ErrNoSpawnPoints    = errors.New("spawn points list is empty")
)

// SchedulerState — фаза планировщика волн.
type SchedulerState int

const (
	SchedulerIdle SchedulerState = iota
	SchedulerSpawning
	SchedulerAwaitingClear
	SchedulerInterWaveDelay
	SchedulerCompleted
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerIdle:
		return "Idle"
	case SchedulerSpawning:
		return "Spawning"
	case SchedulerAwaitingClear:
		return "AwaitingClear"
	case SchedulerInterWaveDelay:
		return "InterWaveDelay"
	case SchedulerCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// SpawnPoint is where and how an enemy enters the arena.
type SpawnPoint struct {
	Position f64.Vec2
	Rotation float64
}

// SpawnFactory creates one enemy at a spawn point. An error aborts that
// spawn attempt only.
type SpawnFactory interface {
	Spawn(point SpawnPoint) (*combat.Entity, error)
}

// SpawnFactoryFunc adapts a function to SpawnFactory.
type SpawnFactoryFunc func(point SpawnPoint) (*combat.Entity, error)

func (f SpawnFactoryFunc) Spawn(point SpawnPoint) (*combat.Entity, error) {
	return f(point)
}

// SessionControl is the part of the session the scheduler drives.
type SessionControl interface {
	IsPlaying() bool
	EndSession(won bool)
	SetCurrentWave(n int)
}

// WaveSchedulerConfig holds the dependencies of a WaveScheduler.
type WaveSchedulerConfig struct {
	Plan           []defs.WaveDefinition
	SpawnPoints    []*SpawnPoint // nil entries are skipped
	Factory        SpawnFactory
	Session        SessionControl
	RNG            *utils.PRNGService
	InterWaveDelay float64 // seconds
	Logger         *log.Logger
}

// WaveScheduler spawns the wave plan one wave at a time, waits for every
// spawned enemy to die before moving on and signals the win once the whole
// plan is cleared. All waits are deadlines on its own game clock, advanced
// by OnTick.
type WaveScheduler struct {
	plan           []defs.WaveDefinition
	spawnPoints    []*SpawnPoint
	factory        SpawnFactory
	session        SessionControl
	rng            *utils.PRNGService
	interWaveDelay float64
	logger         *log.Logger
	events         *event.Dispatcher

	state   SchedulerState
	started bool
	alive   bool // cleared by OnTeardown; pending waits check it
	now     float64

	waveIndex     int
	spawnedInWave int
	nextSpawnAt   float64
	nextWaveAt    float64
	totalSpawned  int

	aliveCount      int
	allWavesSpawned bool
	winSignaled     bool
	deathSubs       map[types.EntityID]event.Subscription
}

func NewWaveScheduler(cfg WaveSchedulerConfig) *WaveScheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := cfg.RNG
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	plan := make([]defs.WaveDefinition, len(cfg.Plan))
	for i, w := range cfg.Plan {
		plan[i] = w.Sanitized()
	}
	return &WaveScheduler{
		plan:           plan,
		spawnPoints:    cfg.SpawnPoints,
		factory:        cfg.Factory,
		session:        cfg.Session,
		rng:            rng,
		interWaveDelay: max(0, cfg.InterWaveDelay),
		logger:         logger,
		events:         event.NewDispatcher(),
		state:          SchedulerIdle,
		deathSubs:      make(map[types.EntityID]event.Subscription),
	}
}

// Events carries WaveStarted, EnemySpawned, WaveCleared, AllWavesCleared
// and WinSignaled.
func (s *WaveScheduler) Events() *event.Dispatcher { return s.events }

func (s *WaveScheduler) State() SchedulerState { return s.state }
func (s *WaveScheduler) AliveCount() int { return s.aliveCount }
func (s *WaveScheduler) AllWavesSpawned() bool { return s.allWavesSpawned }
func (s *WaveScheduler) WinSignaled() bool { return s.winSignaled }
func (s *WaveScheduler) TotalSpawned() int { return s.totalSpawned }
func (s *WaveScheduler) Started() bool { return s.started }

// CurrentWaveIndex is the 0-based index of the wave being spawned or
// awaited.
func (s *WaveScheduler) CurrentWaveIndex() int { return s.waveIndex }

// Validate checks the configuration and returns every problem found.
func (s *WaveScheduler) Validate() error {
	var errs []error
	if s.factory == nil {
		errs = append(errs, ErrNoSpawnPrototype)
	}
	if len(s.plan) == 0 {
		errs = append(errs, ErrEmptyWavePlan)
	}
	if !s.hasSpawnPoint() {
		errs = append(errs, ErrNoSpawnPoints)
	}
	return errors.Join(errs...)
}

// OnStart validates the configuration and arms the scheduler. An invalid
// configuration is logged and the scheduler never runs.
func (s *WaveScheduler) OnStart() error {
	if s.started {
		return nil
	}
	if err := s.Validate(); err != nil {
		s.logger.Printf("WaveScheduler.OnStart: invalid configuration, waves will not start: %v", err)
		return err
	}
	s.started = true
	s.alive = true
	s.state = SchedulerIdle
	return nil
}

// OnTick advances the scheduler clock by dt and runs every transition that
// became due.
func (s *WaveScheduler) OnTick(dt float64) {
	if !s.started || !s.alive {
		return
	}
	if dt > 0 {
		s.now += dt
	}
	s.advance()
}

// OnTeardown abandons any pending wait and drops every death subscription.
func (s *WaveScheduler) OnTeardown() {
	s.alive = false
	for id, sub := range s.deathSubs {
		sub.Unsubscribe()
		delete(s.deathSubs, id)
	}
}

// TryFinishWithWin signals the win if the plan is fully spawned, nothing is
// left alive and the session is still being played. It fires at most once.
func (s *WaveScheduler) TryFinishWithWin() bool {
	if s.winSignaled || !s.allWavesSpawned || s.aliveCount > 0 {
		return false
	}
	if s.session == nil {
		s.logger.Printf("WaveScheduler.TryFinishWithWin: no session, win not reported")
		return false
	}
	if !s.session.IsPlaying() {
		return false
	}
	s.winSignaled = true
	s.events.Dispatch(event.Event{Type: event.WinSignaled})
	s.session.EndSession(true)
	return true
}

func (s *WaveScheduler) advance() {
	// Zero-count waves can chain several transitions into one tick.
	for steps := 0; steps < 4*len(s.plan)+8; steps++ {
		if !s.alive || !s.sessionPlaying() {
			return
		}
		if !s.step() {
			return
		}
	}
}

// step runs one transition and reports whether another one may follow in
// the same tick.
func (s *WaveScheduler) step() bool {
	switch s.state {
	case SchedulerIdle:
		s.beginWave(0)
		return true

	case SchedulerSpawning:
		wave := s.plan[s.waveIndex]
		if s.spawnedInWave >= wave.Count {
			if s.isLastWave() {
				s.allWavesSpawned = true
			}
			s.state = SchedulerAwaitingClear
			return true
		}
		if s.now < s.nextSpawnAt {
			return false
		}
		s.spawnOne()
		s.spawnedInWave++
		s.nextSpawnAt = s.now + wave.SpawnInterval.Seconds()
		return true

	case SchedulerAwaitingClear:
		if s.aliveCount > 0 {
			return false
		}
		s.events.Dispatch(event.Event{Type: event.WaveCleared, Data: s.waveIndex + 1})
		if s.isLastWave() {
			s.complete()
			return false
		}
		s.state = SchedulerInterWaveDelay
		s.nextWaveAt = s.now + s.interWaveDelay
		return true

	case SchedulerInterWaveDelay:
		if s.now < s.nextWaveAt {
			return false
		}
		s.beginWave(s.waveIndex + 1)
		return true
	}
	return false
}

func (s *WaveScheduler) beginWave(index int) {
	s.waveIndex = index
	s.spawnedInWave = 0
	s.nextSpawnAt = s.now
	s.state = SchedulerSpawning
	if s.session != nil {
		s.session.SetCurrentWave(index + 1)
	}
	s.events.Dispatch(event.Event{Type: event.WaveStarted, Data: index + 1})
}

func (s *WaveScheduler) complete() {
	s.state = SchedulerCompleted
	s.allWavesSpawned = true
	s.events.Dispatch(event.Event{Type: event.AllWavesCleared})
	s.TryFinishWithWin()
}

func (s *WaveScheduler) spawnOne() {
	point := s.pickSpawnPoint()
	if point == nil {
		s.logger.Printf("WaveScheduler.spawnOne: no usable spawn point")
		return
	}

	e, err := s.factory.Spawn(*point)
	if err != nil {
		s.logger.Printf("WaveScheduler.spawnOne: spawn failed in wave %d: %v", s.waveIndex+1, err)
		return
	}
	if e == nil || e.IsDead() {
		s.logger.Printf("WaveScheduler.spawnOne: factory returned no live entity in wave %d", s.waveIndex+1)
		return
	}
	if _, dup := s.deathSubs[e.ID()]; dup {
		s.logger.Printf("WaveScheduler.spawnOne: entity %d is already tracked", e.ID())
		return
	}

	s.deathSubs[e.ID()] = e.OnDied(s.handleDeath)
	s.aliveCount++
	s.totalSpawned++
	s.events.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.ID()})
}

func (s *WaveScheduler) handleDeath(e *combat.Entity) {
	sub, tracked := s.deathSubs[e.ID()]
	if !tracked {
		return
	}
	sub.Unsubscribe()
	delete(s.deathSubs, e.ID())

	s.aliveCount--
	if s.aliveCount < 0 {
		s.aliveCount = 0
	}
	if s.aliveCount == 0 {
		if s.alive && s.sessionPlaying() && s.state == SchedulerAwaitingClear && s.isLastWave() {
			s.step() // completes the plan
		}
		s.TryFinishWithWin()
	}
}

// pickSpawnPoint starts at a random index and scans forward, wrapping
// around, for the first non-nil point.
func (s *WaveScheduler) pickSpawnPoint() *SpawnPoint {
	n := len(s.spawnPoints)
	if n == 0 {
		return nil
	}
	start := s.rng.Intn(n)
	for i := 0; i < n; i++ {
		if p := s.spawnPoints[(start+i)%n]; p != nil {
			return p
		}
	}
	return nil
}

func (s *WaveScheduler) hasSpawnPoint() bool {
	for _, p := range s.spawnPoints {
		if p != nil {
			return true
		}
	}
	return false
}

func (s *WaveScheduler) isLastWave() bool {
	return s.waveIndex == len(s.plan)-1
}

// sessionPlaying is true without a session so the scheduler still runs in
// isolation.
func (s *WaveScheduler) sessionPlaying() bool {
	return s.session == nil || s.session.IsPlaying()
}
