package system

import (
	"bytes"
	"errors"
	"log"
	"testing"
	"time"

	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/defs"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/types"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

type fakeSession struct {
	playing bool
	ended   []bool
	waves   []int
}

func (f *fakeSession) IsPlaying() bool { return f.playing }

func (f *fakeSession) EndSession(won bool) {
	f.ended = append(f.ended, won)
	f.playing = false
}

func (f *fakeSession) SetCurrentWave(n int) { f.waves = append(f.waves, n) }

type spawnRecord struct {
	at     float64
	point  SpawnPoint
	entity *combat.Entity
}

// recordingFactory hands out 1 HP enemies and remembers them.
type recordingFactory struct {
	nextID  types.EntityID
	clock   *float64
	spawned []spawnRecord
	failAt  map[int]bool // attempt numbers (0-based) that fail
	calls   int
}

func (f *recordingFactory) Spawn(point SpawnPoint) (*combat.Entity, error) {
	attempt := f.calls
	f.calls++
	if f.failAt[attempt] {
		return nil, errors.New("prefab missing")
	}
	f.nextID++
	e := combat.NewEntity(f.nextID, combat.KindEnemy, 1)
	f.spawned = append(f.spawned, spawnRecord{at: *f.clock, point: point, entity: e})
	return e, nil
}

func (f *recordingFactory) killAll() {
	for _, r := range f.spawned {
		r.entity.ApplyDamage(1)
	}
}

type schedulerFixture struct {
	scheduler *WaveScheduler
	session   *fakeSession
	factory   *recordingFactory
	clock     float64
	logs      *bytes.Buffer
}

func newSchedulerFixture(t *testing.T, plan []defs.WaveDefinition, interWave float64) *schedulerFixture {
	t.Helper()
	f := &schedulerFixture{
		session: &fakeSession{playing: true},
		logs:    &bytes.Buffer{},
	}
	f.factory = &recordingFactory{clock: &f.clock}
	f.scheduler = NewWaveScheduler(WaveSchedulerConfig{
		Plan:           plan,
		SpawnPoints:    []*SpawnPoint{{Position: f64.Vec2{3, 4}}},
		Factory:        f.factory,
		Session:        f.session,
		RNG:            utils.NewPRNGService(1),
		InterWaveDelay: interWave,
		Logger:         log.New(f.logs, "", 0),
	})
	require.NoError(t, f.scheduler.OnStart())
	return f
}

func (f *schedulerFixture) tick(dt float64) {
	f.clock += dt
	f.scheduler.OnTick(dt)
}

func TestWaveScheduler_SingleWaveScenario(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 3, SpawnInterval: 500 * time.Millisecond}}, 2)
	wins := 0
	f.scheduler.Events().SubscribeFunc(event.WinSignaled, func(event.Event) { wins++ })

	for i := 0; i < 20; i++ {
		f.tick(0.25)
	}

	require.Len(t, f.factory.spawned, 3)
	for i := 1; i < 3; i++ {
		gap := f.factory.spawned[i].at - f.factory.spawned[i-1].at
		assert.GreaterOrEqual(t, gap, 0.5)
	}
	assert.Equal(t, SchedulerAwaitingClear, f.scheduler.State())
	assert.Equal(t, 3, f.scheduler.AliveCount())
	assert.Empty(t, f.session.ended, "no win while enemies are alive")

	f.factory.killAll()

	assert.Zero(t, f.scheduler.AliveCount())
	assert.Equal(t, 1, wins)
	assert.Equal(t, []bool{true}, f.session.ended)
	assert.Equal(t, SchedulerCompleted, f.scheduler.State())

	for i := 0; i < 10; i++ {
		f.tick(0.25)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, []bool{true}, f.session.ended)
}

func TestWaveScheduler_SpawnsWholePlanAndClearsBetweenWaves(t *testing.T) {
	plan := []defs.WaveDefinition{
		{Count: 2, SpawnInterval: 250 * time.Millisecond},
		{Count: 0, SpawnInterval: 250 * time.Millisecond},
		{Count: 3, SpawnInterval: 125 * time.Millisecond},
	}
	f := newSchedulerFixture(t, plan, 0.5)

	var aliveAtWaveStart []int
	f.scheduler.Events().SubscribeFunc(event.WaveStarted, func(event.Event) {
		aliveAtWaveStart = append(aliveAtWaveStart, f.scheduler.AliveCount())
	})
	spawnEvents := 0
	f.scheduler.Events().SubscribeFunc(event.EnemySpawned, func(event.Event) { spawnEvents++ })

	for i := 0; i < 200 && len(f.session.ended) == 0; i++ {
		f.tick(0.125)
		// Enemies die one tick after they appear.
		if f.scheduler.State() == SchedulerAwaitingClear {
			f.factory.killAll()
		}
	}

	assert.Equal(t, defs.TotalEnemies(plan), len(f.factory.spawned))
	assert.Equal(t, 5, spawnEvents)
	assert.Equal(t, 5, f.scheduler.TotalSpawned())
	assert.Equal(t, []int{0, 0, 0}, aliveAtWaveStart)
	assert.Equal(t, []int{1, 2, 3}, f.session.waves)
	assert.Equal(t, []bool{true}, f.session.ended)
}

func TestWaveScheduler_InterWaveDelay(t *testing.T) {
	plan := []defs.WaveDefinition{
		{Count: 1, SpawnInterval: 100 * time.Millisecond},
		{Count: 1, SpawnInterval: 100 * time.Millisecond},
	}
	f := newSchedulerFixture(t, plan, 1)

	f.tick(0.25)
	require.Len(t, f.factory.spawned, 1)
	f.factory.killAll()

	f.tick(0.25) // wave 1 cleared, delay starts at 0.5
	assert.Equal(t, SchedulerInterWaveDelay, f.scheduler.State())

	f.tick(0.5)
	assert.Len(t, f.factory.spawned, 1, "still waiting")

	f.tick(0.5)
	assert.Len(t, f.factory.spawned, 2)
	assert.Equal(t, 1.5, f.factory.spawned[1].at)
}

func TestWaveScheduler_NoWinAfterLoss(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 2, SpawnInterval: 250 * time.Millisecond}}, 0)
	wins := 0
	f.scheduler.Events().SubscribeFunc(event.WinSignaled, func(event.Event) { wins++ })

	f.tick(0.25)
	f.tick(0.25)
	require.Len(t, f.factory.spawned, 2)

	f.session.EndSession(false)
	f.factory.killAll()
	for i := 0; i < 8; i++ {
		f.tick(0.25)
	}

	assert.Zero(t, wins)
	assert.Equal(t, []bool{false}, f.session.ended)
	assert.False(t, f.scheduler.WinSignaled())
}

func TestWaveScheduler_NoClearEventsAfterLoss(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 2, SpawnInterval: 250 * time.Millisecond}}, 0)
	var got []event.EventType
	for _, et := range []event.EventType{event.WaveCleared, event.AllWavesCleared, event.WinSignaled} {
		et := et
		f.scheduler.Events().SubscribeFunc(et, func(event.Event) { got = append(got, et) })
	}

	f.tick(0.25)
	f.tick(0.25)
	f.tick(0.25)
	require.Equal(t, SchedulerAwaitingClear, f.scheduler.State())

	f.session.EndSession(false)
	f.factory.killAll()

	assert.Empty(t, got)
	assert.Zero(t, f.scheduler.AliveCount())
	assert.Equal(t, SchedulerAwaitingClear, f.scheduler.State())
}

func TestWaveScheduler_NoSpawnsWhileSessionNotPlaying(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 5, SpawnInterval: 250 * time.Millisecond}}, 0)
	f.tick(0.25)
	require.Len(t, f.factory.spawned, 1)

	f.session.playing = false
	for i := 0; i < 10; i++ {
		f.tick(0.25)
	}
	assert.Len(t, f.factory.spawned, 1)
}

func TestWaveScheduler_DeathOrderBeforeLastSpawnDoesNotWin(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 2, SpawnInterval: 500 * time.Millisecond}}, 0)

	f.tick(0.25)
	f.factory.killAll()
	assert.Empty(t, f.session.ended, "plan not fully spawned yet")

	f.tick(0.5)
	require.Len(t, f.factory.spawned, 2)
	assert.True(t, f.scheduler.AllWavesSpawned())
	f.factory.spawned[1].entity.ApplyDamage(5)

	assert.Equal(t, []bool{true}, f.session.ended)
}

func TestWaveScheduler_FactoryFailureSkipsAttempt(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 3, SpawnInterval: 250 * time.Millisecond}}, 0)
	f.factory.failAt = map[int]bool{1: true}

	for i := 0; i < 6; i++ {
		f.tick(0.25)
	}

	assert.Equal(t, 3, f.factory.calls)
	assert.Len(t, f.factory.spawned, 2)
	assert.Equal(t, 2, f.scheduler.AliveCount())
	assert.Contains(t, f.logs.String(), "spawn failed")

	f.factory.killAll()
	assert.Equal(t, []bool{true}, f.session.ended)
}

func TestWaveScheduler_DoubleDeathDeliveryIsIgnored(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 2, SpawnInterval: 250 * time.Millisecond}}, 0)
	f.tick(0.25)
	f.tick(0.25)
	require.Len(t, f.factory.spawned, 2)

	first := f.factory.spawned[0].entity
	first.ApplyDamage(1)
	// Replaying the death notification must not count twice.
	first.Events().Dispatch(event.Event{Type: event.Died, Data: first})
	f.scheduler.handleDeath(first)

	assert.Equal(t, 1, f.scheduler.AliveCount())
	assert.Empty(t, f.session.ended)
}

func TestWaveScheduler_ValidationFailures(t *testing.T) {
	var buf bytes.Buffer
	s := NewWaveScheduler(WaveSchedulerConfig{
		SpawnPoints: []*SpawnPoint{nil, nil},
		Logger:      log.New(&buf, "", 0),
	})

	err := s.OnStart()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSpawnPrototype)
	assert.ErrorIs(t, err, ErrEmptyWavePlan)
	assert.ErrorIs(t, err, ErrNoSpawnPoints)
	assert.Contains(t, buf.String(), "invalid configuration")
	assert.False(t, s.Started())

	assert.NotPanics(t, func() { s.OnTick(1) })
	assert.Equal(t, SchedulerIdle, s.State())
}

func TestWaveScheduler_SpawnPointScanSkipsNilGaps(t *testing.T) {
	only := &SpawnPoint{Position: f64.Vec2{7, -2}, Rotation: 1.5}
	var clock float64
	factory := &recordingFactory{clock: &clock}
	s := NewWaveScheduler(WaveSchedulerConfig{
		Plan:        []defs.WaveDefinition{{Count: 6, SpawnInterval: 10 * time.Millisecond}},
		SpawnPoints: []*SpawnPoint{nil, only, nil, nil},
		Factory:     factory,
		Session:     &fakeSession{playing: true},
		RNG:         utils.NewPRNGService(99),
	})
	require.NoError(t, s.OnStart())

	for i := 0; i < 10; i++ {
		s.OnTick(0.125)
	}

	require.Len(t, factory.spawned, 6)
	for _, r := range factory.spawned {
		assert.Equal(t, *only, r.point)
	}
}

func TestWaveScheduler_TeardownStopsEverything(t *testing.T) {
	f := newSchedulerFixture(t, []defs.WaveDefinition{{Count: 3, SpawnInterval: 250 * time.Millisecond}}, 0)
	f.tick(0.25)
	require.Len(t, f.factory.spawned, 1)
	e := f.factory.spawned[0].entity

	f.scheduler.OnTeardown()
	assert.Zero(t, e.Events().ListenerCount(event.Died))

	for i := 0; i < 10; i++ {
		f.tick(0.25)
	}
	assert.Len(t, f.factory.spawned, 1)

	e.ApplyDamage(1)
	assert.Equal(t, 1, f.scheduler.AliveCount(), "deaths after teardown are not tracked")
	assert.Empty(t, f.session.ended)
}

func TestWaveScheduler_TryFinishWithWinWithoutSession(t *testing.T) {
	var buf bytes.Buffer
	var clock float64
	s := NewWaveScheduler(WaveSchedulerConfig{
		Plan:        []defs.WaveDefinition{{Count: 0, SpawnInterval: time.Second}},
		SpawnPoints: []*SpawnPoint{{}},
		Factory:     &recordingFactory{clock: &clock},
		Logger:      log.New(&buf, "", 0),
	})
	require.NoError(t, s.OnStart())

	s.OnTick(0.1)

	assert.Equal(t, SchedulerCompleted, s.State())
	assert.False(t, s.WinSignaled())
	assert.Contains(t, buf.String(), "no session")
}

func TestSchedulerState_String(t *testing.T) {
	assert.Equal(t, "InterWaveDelay", SchedulerInterWaveDelay.String())
	assert.Equal(t, "Unknown", SchedulerState(-1).String())
}
