// internal/component/visual.go
package component

// DeathFade marks a dead entity that is still shown while it fades out.
// The entity is removed from the world once Timer reaches Duration.
type DeathFade struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Alpha returns the remaining opacity in [0, 1].
func (d *DeathFade) Alpha() float64 {
	if d.Duration <= 0 {
		return 0
	}
	a := 1 - d.Timer/d.Duration
	if a < 0 {
		return 0
	}
	return a
}

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}
