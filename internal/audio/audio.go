// Package audio turns arena events into short sound effects.
package audio

import (
	"time"

	"go-arena-survival/internal/event"
)

// Sfx — звуковой эффект.
type Sfx int

const (
	SfxShoot Sfx = iota
	SfxEnemyHit
	SfxPlayerHit
	SfxDie
	SfxClick
	SfxWin
	SfxLose
)

func (s Sfx) String() string {
	switch s {
	case SfxShoot:
		return "shoot"
	case SfxEnemyHit:
		return "enemy_hit"
	case SfxPlayerHit:
		return "player_hit"
	case SfxDie:
		return "die"
	case SfxClick:
		return "click"
	case SfxWin:
		return "win"
	case SfxLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Tone describes the synthesized sound of one effect.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64 // 0..1
}

var tones = map[Sfx]Tone{
	SfxShoot:     {Frequency: 880, Duration: 40 * time.Millisecond, Volume: 0.25},
	SfxEnemyHit:  {Frequency: 660, Duration: 50 * time.Millisecond, Volume: 0.35},
	SfxPlayerHit: {Frequency: 220, Duration: 90 * time.Millisecond, Volume: 0.5},
	SfxDie:       {Frequency: 330, Duration: 120 * time.Millisecond, Volume: 0.4},
	SfxClick:     {Frequency: 1200, Duration: 25 * time.Millisecond, Volume: 0.2},
	SfxWin:       {Frequency: 1046, Duration: 400 * time.Millisecond, Volume: 0.5},
	SfxLose:      {Frequency: 147, Duration: 500 * time.Millisecond, Volume: 0.5},
}

// ToneFor returns the tone of s. Unknown effects are silent.
func ToneFor(s Sfx) (Tone, bool) {
	t, ok := tones[s]
	return t, ok
}

// Player plays sound effects. Implementations must not block the tick.
type Player interface {
	Play(s Sfx)
}

// NopPlayer plays nothing. Used when audio is disabled or unavailable.
type NopPlayer struct{}

func (NopPlayer) Play(Sfx) {}

var arenaSfx = map[event.EventType]Sfx{
	event.ProjectileFired: SfxShoot,
	event.EnemyHit:        SfxEnemyHit,
	event.PlayerHit:       SfxPlayerHit,
	event.EntityDied:      SfxDie,
}

// BindArena plays the matching effect for every arena event on d. The
// returned handles undo the binding.
func BindArena(d *event.Dispatcher, p Player) []event.Subscription {
	return bind(d, p, arenaSfx)
}

// BindSession plays the win or lose jingle when the session ends.
func BindSession(d *event.Dispatcher, p Player) []event.Subscription {
	if d == nil || p == nil {
		return nil
	}
	return []event.Subscription{
		d.SubscribeFunc(event.SessionEnded, func(e event.Event) {
			if won, ok := e.Data.(bool); ok && won {
				p.Play(SfxWin)
			} else {
				p.Play(SfxLose)
			}
		}),
	}
}

func bind(d *event.Dispatcher, p Player, table map[event.EventType]Sfx) []event.Subscription {
	if d == nil || p == nil {
		return nil
	}
	subs := make([]event.Subscription, 0, len(table))
	for t, sfx := range table {
		sfx := sfx
		subs = append(subs, d.SubscribeFunc(t, func(event.Event) { p.Play(sfx) }))
	}
	return subs
}
