package defs

import "time"

// EnemyDefinition holds all the static data of the enemy prototype.
type EnemyDefinition struct {
	Health            int           `yaml:"health" env:"HEALTH"`
	Speed             float64       `yaml:"speed" env:"SPEED"`
	Radius            float64       `yaml:"radius" env:"RADIUS"`
	ScoreOnDeath      int           `yaml:"score_on_death" env:"SCORE_ON_DEATH"`
	ContactDamage     int           `yaml:"contact_damage" env:"CONTACT_DAMAGE"`
	ContactCooldown   time.Duration `yaml:"contact_cooldown" env:"CONTACT_COOLDOWN"`
	KnockbackForce    float64       `yaml:"knockback_force" env:"KNOCKBACK_FORCE"`
	KnockbackMaxSpeed float64       `yaml:"knockback_max_speed" env:"KNOCKBACK_MAX_SPEED"`
	KnockbackLock     time.Duration `yaml:"knockback_lock" env:"KNOCKBACK_LOCK"`
	Damping           float64       `yaml:"damping" env:"DAMPING"`
	TargetRefresh     time.Duration `yaml:"target_refresh" env:"TARGET_REFRESH"`
	DeathFade         time.Duration `yaml:"death_fade" env:"DEATH_FADE"`
}

// DefaultEnemy returns the stock chaser enemy.
func DefaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		Health:            3,
		Speed:             2.5,
		Radius:            0.4,
		ScoreOnDeath:      10,
		ContactDamage:     10,
		ContactCooldown:   500 * time.Millisecond,
		KnockbackForce:    4,
		KnockbackMaxSpeed: 6,
		KnockbackLock:     120 * time.Millisecond,
		Damping:           8,
		TargetRefresh:     500 * time.Millisecond,
		DeathFade:         300 * time.Millisecond,
	}
}
