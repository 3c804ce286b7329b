package combat

import (
	"testing"

	"go-arena-survival/internal/component"
	"go-arena-survival/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

func newKnockbackFixture(lock float64) (*Knockback, *component.Transform, *component.Body, *component.Chaser) {
	tr := &component.Transform{Pos: f64.Vec2{5, 0}}
	body := &component.Body{}
	chaser := &component.Chaser{Active: true}
	return NewKnockback(tr, body, chaser, 4, 6, lock), tr, body, chaser
}

func TestApplyKnockback_PushesAwayFromSource(t *testing.T) {
	kb, _, body, _ := newKnockbackFixture(0.12)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 4)

	assert.InDelta(t, 4, body.Velocity[0], 1e-9)
	assert.InDelta(t, 0, body.Velocity[1], 1e-9)
}

func TestApplyKnockback_DegenerateDirectionFallsBack(t *testing.T) {
	kb, tr, body, _ := newKnockbackFixture(0.12)

	kb.ApplyKnockback(0, tr.Pos, 3)

	assert.Equal(t, utils.Scale(DefaultKnockbackDirection, 3), body.Velocity)
}

func TestApplyKnockback_ClampsToMaxSpeed(t *testing.T) {
	kb, _, body, _ := newKnockbackFixture(0.12)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 50)
	assert.InDelta(t, 6, utils.Length(body.Velocity), 1e-9)

	body.Velocity = f64.Vec2{0, 20}
	kb.Step(0.01)
	assert.InDelta(t, 6, utils.Length(body.Velocity), 1e-9)
}

func TestApplyKnockback_NegativeForceIsZero(t *testing.T) {
	kb, _, body, _ := newKnockbackFixture(0.12)
	kb.ApplyKnockback(0, f64.Vec2{0, 0}, -10)
	assert.Equal(t, f64.Vec2{}, body.Velocity)
}

func TestApplyKnockback_SuspendsControllerForLockDuration(t *testing.T) {
	kb, _, _, chaser := newKnockbackFixture(0.5)

	kb.ApplyKnockback(1, f64.Vec2{0, 0}, 4)
	require.False(t, chaser.Enabled())
	assert.True(t, kb.Suspended())

	kb.Step(1.25)
	assert.False(t, chaser.Enabled())

	kb.Step(1.5)
	assert.True(t, chaser.Enabled())
	assert.False(t, kb.Suspended())
}

func TestApplyKnockback_RetriggerRestartsTimerWithoutStacking(t *testing.T) {
	kb, _, _, chaser := newKnockbackFixture(0.5)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 4)
	kb.Step(0.25)
	kb.ApplyKnockback(0.25, f64.Vec2{0, 0}, 4)
	assert.True(t, kb.Suspended())

	// Disabled continuously from the first hit until 0.5s after the second.
	for _, now := range []float64{0.375, 0.5, 0.625, 0.74} {
		kb.Step(now)
		assert.False(t, chaser.Enabled(), "controller re-enabled early at %v", now)
	}
	kb.Step(0.75)
	assert.True(t, chaser.Enabled())
}

func TestApplyKnockback_WithoutControllerOnlyImpulse(t *testing.T) {
	tr := &component.Transform{Pos: f64.Vec2{0, 2}}
	body := &component.Body{}
	kb := NewKnockback(tr, body, nil, 4, 6, 0.12)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 2)

	assert.InDelta(t, 2, body.Velocity[1], 1e-9)
	assert.False(t, kb.Suspended())
}

func TestKnockback_DisabledControllerIsNotHijacked(t *testing.T) {
	kb, _, _, chaser := newKnockbackFixture(0.12)
	chaser.SetEnabled(false)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 4)
	kb.Step(1)

	assert.False(t, chaser.Enabled())
}

func TestKnockback_CancelKeepsControllerOff(t *testing.T) {
	kb, _, _, chaser := newKnockbackFixture(0.12)

	kb.ApplyKnockback(0, f64.Vec2{0, 0}, 4)
	kb.Cancel()
	kb.Step(1)

	assert.False(t, chaser.Enabled())
}
