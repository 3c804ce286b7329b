package combat

// Damageable is anything ContactGate can hurt.
type Damageable interface {
	ApplyDamage(amount int) bool
	IsDead() bool
}

// MinContactCooldown is the shortest cooldown a ContactGate accepts.
const MinContactCooldown = 0.05

// ContactGate rate-limits damage from continuous overlap. The cooldown is
// shared by every target of one gate, not tracked per target.
type ContactGate struct {
	Damage   int
	Cooldown float64

	nextReady float64
	disabled  bool
}

// NewContactGate builds a gate; damage is raised to at least 1 and cooldown
// to at least MinContactCooldown.
func NewContactGate(damage int, cooldown float64) *ContactGate {
	if damage < 1 {
		damage = 1
	}
	if cooldown < MinContactCooldown {
		cooldown = MinContactCooldown
	}
	return &ContactGate{Damage: damage, Cooldown: cooldown}
}

// TryApplyDamage hurts target if the cooldown has elapsed at now and resets
// the cooldown on success. Overlap frames before that are no-ops.
func (g *ContactGate) TryApplyDamage(now float64, target Damageable) bool {
	if g.disabled || target == nil || target.IsDead() {
		return false
	}
	if now < g.nextReady {
		return false
	}
	target.ApplyDamage(g.Damage)
	g.nextReady = now + g.Cooldown
	return true
}

// Ready reports whether a hit at now would go through.
func (g *ContactGate) Ready(now float64) bool {
	return !g.disabled && now >= g.nextReady
}

// Disable stops the gate for good; dead enemies exert no contact damage.
func (g *ContactGate) Disable() {
	g.disabled = true
}
