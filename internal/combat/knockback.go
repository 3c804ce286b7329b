package combat

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/utils"

	"golang.org/x/image/math/f64"
)

// DefaultKnockbackDirection is used when source and target positions coincide.
var DefaultKnockbackDirection = f64.Vec2{1, 0}

// MovementController is whatever steers an entity on its own (chase AI).
// Knockback switches it off for a short while.
type MovementController interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Knockback pushes an entity away from a hit and briefly suspends its
// movement controller. Times are game-time seconds.
type Knockback struct {
	Force        float64 // default impulse used by projectile hits
	MaxSpeed     float64 // speed cap enforced every physics step; <= 0 disables it
	LockDuration float64 // how long the controller stays suspended

	transform  *component.Transform
	body       *component.Body
	controller MovementController

	locked    bool
	lockUntil float64
}

// NewKnockback binds the resolver to an entity. controller may be nil, in
// which case only the impulse is applied.
func NewKnockback(transform *component.Transform, body *component.Body, controller MovementController, force, maxSpeed, lockDuration float64) *Knockback {
	if force < 0 {
		force = 0
	}
	if maxSpeed < 0 {
		maxSpeed = 0
	}
	if lockDuration < 0 {
		lockDuration = 0
	}
	return &Knockback{
		Force:        force,
		MaxSpeed:     maxSpeed,
		LockDuration: lockDuration,
		transform:    transform,
		body:         body,
		controller:   controller,
	}
}

// ApplyKnockback adds an impulse of the given magnitude pointing from
// source to the entity and (re)starts the controller suspension at now.
// Negative force is treated as zero.
func (k *Knockback) ApplyKnockback(now float64, source f64.Vec2, force float64) {
	if k.transform == nil || k.body == nil {
		return
	}

	direction := utils.NormalizeOr(utils.Sub(k.transform.Pos, source), DefaultKnockbackDirection)
	if force < 0 {
		force = 0
	}
	k.body.Velocity = utils.Add(k.body.Velocity, utils.Scale(direction, force))

	k.startLock(now)
	k.ClampVelocity()
}

// Step runs once per physics step: clamps the speed and resumes the
// controller when the suspension has elapsed.
func (k *Knockback) Step(now float64) {
	k.ClampVelocity()
	if k.locked && now >= k.lockUntil {
		k.locked = false
		if k.controller != nil {
			k.controller.SetEnabled(true)
		}
	}
}

// ClampVelocity caps the body speed at MaxSpeed.
func (k *Knockback) ClampVelocity() {
	if k.body == nil {
		return
	}
	k.body.Velocity = utils.ClampLength(k.body.Velocity, k.MaxSpeed)
}

// Cancel drops a pending suspension without resuming the controller. Used
// when the entity dies while knocked back.
func (k *Knockback) Cancel() {
	k.locked = false
}

// Suspended reports whether the controller is currently held off by this
// resolver.
func (k *Knockback) Suspended() bool {
	return k.locked
}

func (k *Knockback) startLock(now float64) {
	if k.controller == nil || k.LockDuration <= 0 {
		return
	}
	// A controller switched off by someone else (dead entity) stays off.
	if !k.locked && !k.controller.Enabled() {
		return
	}
	k.controller.SetEnabled(false)
	k.locked = true
	k.lockUntil = now + k.LockDuration
}
