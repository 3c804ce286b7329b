package defs

import "time"

// PlayerDefinition holds the static data of the player.
type PlayerDefinition struct {
	Health             int           `yaml:"health" env:"HEALTH"`
	MoveSpeed          float64       `yaml:"move_speed" env:"MOVE_SPEED"`
	Radius             float64       `yaml:"radius" env:"RADIUS"`
	FireCooldown       time.Duration `yaml:"fire_cooldown" env:"FIRE_COOLDOWN"`
	ProjectileSpeed    float64       `yaml:"projectile_speed" env:"PROJECTILE_SPEED"`
	ProjectileLifetime time.Duration `yaml:"projectile_lifetime" env:"PROJECTILE_LIFETIME"`
	ProjectileDamage   int           `yaml:"projectile_damage" env:"PROJECTILE_DAMAGE"`
	ProjectileRadius   float64       `yaml:"projectile_radius" env:"PROJECTILE_RADIUS"`
}

// DefaultPlayer returns the stock player.
func DefaultPlayer() PlayerDefinition {
	return PlayerDefinition{
		Health:             100,
		MoveSpeed:          5,
		Radius:             0.5,
		FireCooldown:       250 * time.Millisecond,
		ProjectileSpeed:    10,
		ProjectileLifetime: 2 * time.Second,
		ProjectileDamage:   1,
		ProjectileRadius:   0.15,
	}
}
