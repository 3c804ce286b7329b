package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity_StartsAtFullHealth(t *testing.T) {
	e := NewEntity(7, KindEnemy, 3)
	assert.Equal(t, 3, e.CurrentHealth())
	assert.Equal(t, 3, e.MaxHealth())
	assert.False(t, e.IsDead())

	clamped := NewEntity(8, KindEnemy, 0)
	assert.Equal(t, 1, clamped.MaxHealth())
}

func TestApplyDamage_NonPositiveAmountIsNoOp(t *testing.T) {
	for _, amount := range []int{0, -1, -100} {
		e := NewEntity(1, KindPlayer, 10)
		changes := 0
		e.OnHealthChanged(func(int, int) { changes++ })

		assert.False(t, e.ApplyDamage(amount))
		assert.Equal(t, 10, e.CurrentHealth())
		assert.False(t, e.IsDead())
		assert.Equal(t, 0, changes)
	}
}

func TestApplyDamage_FloorsAtZeroAndDiesOnce(t *testing.T) {
	e := NewEntity(1, KindEnemy, 3)
	var health []int
	deaths := 0
	e.OnHealthChanged(func(current, max int) {
		assert.Equal(t, 3, max)
		health = append(health, current)
	})
	e.OnDied(func(dead *Entity) {
		assert.Same(t, e, dead)
		assert.True(t, dead.IsDead(), "entity is marked dead before observers run")
		deaths++
	})

	require.True(t, e.ApplyDamage(1))
	require.True(t, e.ApplyDamage(50))

	assert.Equal(t, []int{2, 0}, health)
	assert.Equal(t, 0, e.CurrentHealth())
	assert.True(t, e.IsDead())
	assert.Equal(t, 1, deaths)
}

func TestApplyDamage_DeadEntityIgnoresEverything(t *testing.T) {
	e := NewEntity(1, KindEnemy, 1)
	deaths := 0
	e.OnDied(func(*Entity) { deaths++ })
	require.True(t, e.ApplyDamage(1))

	for _, amount := range []int{1, 5, 1000, 0, -3} {
		assert.False(t, e.ApplyDamage(amount))
	}
	assert.Equal(t, 0, e.CurrentHealth())
	assert.True(t, e.IsDead())
	assert.Equal(t, 1, deaths)
}

func TestApplyDamage_DiedDeliveredSynchronously(t *testing.T) {
	e := NewEntity(1, KindPlayer, 2)
	delivered := false
	e.OnDied(func(*Entity) { delivered = true })

	e.ApplyDamage(2)
	assert.True(t, delivered, "Died must fire inside ApplyDamage")
}

func TestOnDied_UnsubscribeInsideHandler(t *testing.T) {
	e := NewEntity(1, KindEnemy, 1)
	calls := 0
	var sub interface{ Unsubscribe() bool }
	s := e.OnDied(func(*Entity) {
		calls++
		sub.Unsubscribe()
		sub.Unsubscribe()
	})
	sub = s

	e.ApplyDamage(1)
	assert.Equal(t, 1, calls)
}

func TestNotifyCurrentHealth(t *testing.T) {
	e := NewEntity(1, KindPlayer, 100)
	var got [2]int
	e.OnHealthChanged(func(current, max int) { got = [2]int{current, max} })

	e.NotifyCurrentHealth()
	assert.Equal(t, [2]int{100, 100}, got)
}
