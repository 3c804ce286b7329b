// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-arena-survival/internal/config"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WinColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := utils.ToRoman(waveNumber)

	// Центрируем текст
	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2
	y := i.Y

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, y, i.Color)
}
