// internal/ui/arena_renderer.go
package ui

import (
	"image/color"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/entity"
	"go-arena-survival/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f64"
)

// ArenaRenderer рисует арену: границы, точки появления и сущности.
type ArenaRenderer struct {
	ecs         *entity.ECS
	spawnPoints []f64.Vec2
	originX     float32
	originY     float32
}

func NewArenaRenderer(ecs *entity.ECS, spawnPoints []config.SpawnPoint) *ArenaRenderer {
	points := make([]f64.Vec2, 0, len(spawnPoints))
	for _, p := range spawnPoints {
		points = append(points, f64.Vec2{p.X, p.Y})
	}
	return &ArenaRenderer{
		ecs:         ecs,
		spawnPoints: points,
		originX:     config.ScreenWidth / 2,
		originY:     config.ScreenHeight / 2,
	}
}

// toScreen converts arena units (y up) to screen pixels (y down).
func (r *ArenaRenderer) toScreen(p f64.Vec2) (float32, float32) {
	return r.originX + float32(p[0]*config.PixelsPerUnit), r.originY - float32(p[1]*config.PixelsPerUnit)
}

// ToArena is the inverse of toScreen, used for mouse aiming.
func (r *ArenaRenderer) ToArena(x, y int) f64.Vec2 {
	return f64.Vec2{
		(float64(x) - float64(r.originX)) / config.PixelsPerUnit,
		(float64(r.originY) - float64(y)) / config.PixelsPerUnit,
	}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	w := float32(config.ArenaHalfWidth * 2 * config.PixelsPerUnit)
	h := float32(config.ArenaHalfHeight * 2 * config.PixelsPerUnit)
	vector.StrokeRect(screen, r.originX-w/2, r.originY-h/2, w, h, 2, color.RGBA{90, 90, 110, 255}, true)

	for _, p := range r.spawnPoints {
		x, y := r.toScreen(p)
		vector.StrokeCircle(screen, x, y, 14, 2, config.SpawnPointColor, true)
	}

	for id, proj := range r.ecs.Projectiles {
		if proj.HasHit {
			continue
		}
		r.drawCircle(screen, id, config.ProjectileColor)
	}
	for id := range r.ecs.Enemies {
		r.drawCircle(screen, id, config.EnemyColor)
	}
	for id := range r.ecs.Players {
		r.drawCircle(screen, id, config.PlayerColor)
	}
}

func (r *ArenaRenderer) drawCircle(screen *ebiten.Image, id types.EntityID, base color.RGBA) {
	t, ok := r.ecs.Transforms[id]
	if !ok {
		return
	}
	c := base
	if _, flashing := r.ecs.HitFlashes[id]; flashing {
		c = config.HitFlashColor
	}
	if fade, ok := r.ecs.DeathFades[id]; ok {
		c = fadeColor(c, fade.Alpha())
	} else if combatant, ok := r.ecs.Combatants[id]; ok && combatant.IsDead() {
		c = fadeColor(c, 0.35)
	}
	x, y := r.toScreen(t.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(t.Radius*config.PixelsPerUnit), c, true)
}

// fadeColor scales a straight-alpha color into the premultiplied form
// ebiten expects.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
