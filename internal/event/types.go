// internal/event/types.go
package event

// Combat entity events, dispatched on the entity's own dispatcher.
const (
	HealthChanged EventType = "HealthChanged" // Data: HealthChange
	Died          EventType = "Died"          // Data: the dying entity (*combat.Entity)
)

// Session events.
const (
	ScoreChanged        EventType = "ScoreChanged"        // Data: int
	WaveChanged         EventType = "WaveChanged"         // Data: int, 1-based wave number
	TimeChanged         EventType = "TimeChanged"         // Data: float64 seconds
	SessionEnded        EventType = "SessionEnded"        // Data: bool, true on win
	SessionStateChanged EventType = "SessionStateChanged" // Data: session.State
)

// Wave scheduler events.
const (
	WaveStarted     EventType = "WaveStarted"     // Data: int, 1-based wave number
	EnemySpawned    EventType = "EnemySpawned"    // Data: types.EntityID
	WaveCleared     EventType = "WaveCleared"     // Data: int, 1-based wave number
	AllWavesCleared EventType = "AllWavesCleared" // Волны закончились
	WinSignaled     EventType = "WinSignaled"
)

// Arena events, consumed by presentation (audio, flashes).
const (
	EnemyHit        EventType = "EnemyHit"        // Data: types.EntityID
	PlayerHit       EventType = "PlayerHit"       // Data: types.EntityID
	EntityDied      EventType = "EntityDied"      // Data: types.EntityID
	ProjectileFired EventType = "ProjectileFired" // Data: types.EntityID of the projectile
)

// HealthChange is the payload of HealthChanged.
type HealthChange struct {
	Current int
	Max     int
}
