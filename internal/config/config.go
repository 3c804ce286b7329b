// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"go-arena-survival/internal/defs"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	MaxDeltaTime  = 0.06
	PixelsPerUnit = 40.0 // arena units are metres

	ArenaHalfWidth      = 14.0
	ArenaHalfHeight     = 10.5
	DamageFlashDuration = 0.1 // seconds

	MinTimeTickInterval = 200 * time.Millisecond
	MaxTimeTickInterval = time.Second
	MinDeathFade        = 200 * time.Millisecond
	MaxDeathFade        = 400 * time.Millisecond
	MinTargetRefresh    = 100 * time.Millisecond
	MinProjectileLife   = 50 * time.Millisecond

	EnvPrefix = "ARENA_"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	HitFlashColor   = color.RGBA{255, 255, 255, 255}
	SpawnPointColor = color.RGBA{70, 100, 120, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	WinColor        = color.RGBA{70, 130, 180, 255}
	LoseColor       = color.RGBA{220, 60, 60, 255}
)

// SpawnPoint is one configured enemy spawn location, in arena units.
type SpawnPoint struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

// WavesConfig is the wave plan plus scheduler tuning.
type WavesConfig struct {
	InterWaveDelay time.Duration         `yaml:"inter_wave_delay"`
	Plan           []defs.WaveDefinition `yaml:"plan"`
	PlanFile       string                `yaml:"plan_file"`
}

// SessionConfig tunes the session state machine.
type SessionConfig struct {
	TimeTickInterval time.Duration `yaml:"time_tick_interval"`
}

// ArenaConfig describes the playfield.
type ArenaConfig struct {
	Seed        int64        `yaml:"seed"`
	SpawnPoints []SpawnPoint `yaml:"spawn_points"`
}

// Config is the full game configuration.
type Config struct {
	Player  defs.PlayerDefinition `yaml:"player"`
	Enemy   defs.EnemyDefinition  `yaml:"enemy"`
	Waves   WavesConfig           `yaml:"waves"`
	Session SessionConfig         `yaml:"session"`
	Arena   ArenaConfig           `yaml:"arena"`
	Audio   bool                  `yaml:"audio"`
}

// envOverlay lists the settings that can be overridden from the
// environment. Lists (wave plan, spawn points) are file-only.
type envOverlay struct {
	Player           defs.PlayerDefinition `envPrefix:"PLAYER_"`
	Enemy            defs.EnemyDefinition  `envPrefix:"ENEMY_"`
	InterWaveDelay   time.Duration         `env:"WAVES_INTER_WAVE_DELAY"`
	PlanFile         string                `env:"WAVES_PLAN_FILE"`
	TimeTickInterval time.Duration         `env:"SESSION_TIME_TICK_INTERVAL"`
	Seed             int64                 `env:"SEED"`
	Audio            bool                  `env:"AUDIO"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Player: defs.DefaultPlayer(),
		Enemy:  defs.DefaultEnemy(),
		Waves: WavesConfig{
			InterWaveDelay: 2 * time.Second,
			Plan:           defs.DefaultWavePlan(),
		},
		Session: SessionConfig{
			TimeTickInterval: 500 * time.Millisecond,
		},
		Arena: ArenaConfig{
			SpawnPoints: []SpawnPoint{
				{X: -12, Y: -9},
				{X: 12, Y: -9},
				{X: -12, Y: 9},
				{X: 12, Y: 9},
			},
		},
		Audio: true,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then ARENA_* environment variables. The result is
// sanitized.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := ParseEnv(&cfg, nil); err != nil {
		return cfg, err
	}

	if cfg.Waves.PlanFile != "" {
		plan, err := defs.LoadWavePlan(cfg.Waves.PlanFile)
		if err != nil {
			return cfg, err
		}
		cfg.Waves.Plan = plan
	}

	cfg.Sanitize()
	return cfg, nil
}

// ParseEnv applies ARENA_* overrides to target. A nil environ reads the
// process environment.
func ParseEnv(target *Config, environ map[string]string) error {
	overlay := envOverlay{
		Player:           target.Player,
		Enemy:            target.Enemy,
		InterWaveDelay:   target.Waves.InterWaveDelay,
		PlanFile:         target.Waves.PlanFile,
		TimeTickInterval: target.Session.TimeTickInterval,
		Seed:             target.Arena.Seed,
		Audio:            target.Audio,
	}
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&overlay, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	target.Player = overlay.Player
	target.Enemy = overlay.Enemy
	target.Waves.InterWaveDelay = overlay.InterWaveDelay
	target.Waves.PlanFile = overlay.PlanFile
	target.Session.TimeTickInterval = overlay.TimeTickInterval
	target.Arena.Seed = overlay.Seed
	target.Audio = overlay.Audio
	return nil
}

// Sanitize clamps every value into the range the game logic accepts.
func (c *Config) Sanitize() {
	p := &c.Player
	p.Health = max(1, p.Health)
	p.MoveSpeed = max(0, p.MoveSpeed)
	p.Radius = max(0.01, p.Radius)
	p.FireCooldown = max(0, p.FireCooldown)
	p.ProjectileSpeed = max(0, p.ProjectileSpeed)
	p.ProjectileLifetime = max(MinProjectileLife, p.ProjectileLifetime)
	p.ProjectileDamage = max(0, p.ProjectileDamage)
	p.ProjectileRadius = max(0.01, p.ProjectileRadius)

	e := &c.Enemy
	e.Health = max(1, e.Health)
	e.Speed = max(0, e.Speed)
	e.Radius = max(0.01, e.Radius)
	e.ScoreOnDeath = max(0, e.ScoreOnDeath)
	e.ContactDamage = max(1, e.ContactDamage)
	e.ContactCooldown = max(50*time.Millisecond, e.ContactCooldown)
	e.KnockbackForce = max(0, e.KnockbackForce)
	e.KnockbackMaxSpeed = max(0, e.KnockbackMaxSpeed)
	e.KnockbackLock = max(0, e.KnockbackLock)
	e.Damping = max(0, e.Damping)
	e.TargetRefresh = max(MinTargetRefresh, e.TargetRefresh)
	e.DeathFade = min(max(MinDeathFade, e.DeathFade), MaxDeathFade)

	c.Waves.InterWaveDelay = max(0, c.Waves.InterWaveDelay)
	for i := range c.Waves.Plan {
		c.Waves.Plan[i] = c.Waves.Plan[i].Sanitized()
	}

	c.Session.TimeTickInterval = min(max(MinTimeTickInterval, c.Session.TimeTickInterval), MaxTimeTickInterval)
}

// Validate reports configuration errors that make a run impossible.
func (c Config) Validate() error {
	var errs []error
	if len(c.Waves.Plan) == 0 {
		errs = append(errs, errors.New("waves are not configured"))
	}
	if len(c.Arena.SpawnPoints) == 0 {
		errs = append(errs, errors.New("spawn points list is empty"))
	}
	return errors.Join(errs...)
}
