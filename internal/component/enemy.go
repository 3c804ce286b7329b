package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	ScoreOnDeath   int     // Очки за убийство
	KnockbackForce float64 // impulse applied by a projectile hit
	Wave           int     // 1-based wave that spawned it
}
