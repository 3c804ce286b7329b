// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 200
	healthBarHeight = 14
	borderWidth     = 2
)

var (
	healthFillColor = color.RGBA{50, 205, 50, 255}
	healthLowColor  = color.RGBA{220, 60, 60, 255}
	healthBgColor   = color.RGBA{0, 0, 0, 180}
)

// PlayerHealthIndicator отображает здоровье игрока полосой с подписью.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

// Draw рисует полосу здоровья; ниже половины она красная.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	ratio := float32(health) / float32(maxHealth)
	if ratio < 0 {
		ratio = 0
	}

	fill := healthFillColor
	if health*2 <= maxHealth {
		fill = healthLowColor
	}

	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthBgColor, true)
	if ratio > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, (healthBarWidth-borderWidth*2)*ratio, healthBarHeight-borderWidth*2, fill, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, borderWidth, color.White, true)

	label := fmt.Sprintf("HP %d/%d", health, maxHealth)
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)-4, color.White)
}
