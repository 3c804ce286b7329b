package component

// Health — компонент здоровья.
// Mutated only through combat.Entity.ApplyDamage.
type Health struct {
	Max     int
	Current int
	Dead    bool
}
