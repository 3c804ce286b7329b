// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-arena-survival/internal/combat"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const hudHeight = 48

// HUD показывает здоровье, волну, время и счет. Значения приходят только
// через события; сам HUD ничего не опрашивает.
type HUD struct {
	health    int
	maxHealth int
	wave      int
	elapsed   float64
	score     int

	healthIndicator *PlayerHealthIndicator
	waveIndicator   *WaveIndicator
	fontFace        font.Face
	subs            []event.Subscription
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		healthIndicator: NewPlayerHealthIndicator(16, 24, face),
		waveIndicator:   NewWaveIndicator(config.ScreenWidth/2, 30, face),
		fontFace:        face,
	}
}

// BindSession подписывается на ScoreChanged, WaveChanged и TimeChanged.
func (h *HUD) BindSession(events *event.Dispatcher) {
	h.subs = append(h.subs,
		events.SubscribeFunc(event.ScoreChanged, func(e event.Event) {
			if v, ok := e.Data.(int); ok {
				h.score = v
			}
		}),
		events.SubscribeFunc(event.WaveChanged, func(e event.Event) {
			if v, ok := e.Data.(int); ok {
				h.wave = v
			}
		}),
		events.SubscribeFunc(event.TimeChanged, func(e event.Event) {
			if v, ok := e.Data.(float64); ok {
				h.elapsed = v
			}
		}),
	)
}

// BindPlayer follows the player's health and pulls the current value once.
func (h *HUD) BindPlayer(player *combat.Entity) {
	if player == nil {
		return
	}
	h.subs = append(h.subs, player.OnHealthChanged(func(current, max int) {
		h.health = current
		h.maxHealth = max
	}))
	player.NotifyCurrentHealth()
}

// Unbind drops every subscription.
func (h *HUD) Unbind() {
	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
	h.subs = nil
}

func (h *HUD) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, hudHeight, color.RGBA{0, 0, 0, 140}, false)

	h.healthIndicator.Draw(screen, h.health, h.maxHealth)
	h.waveIndicator.Draw(screen, h.wave)

	status := fmt.Sprintf("Time %s   Score %d", utils.FormatClock(h.elapsed), h.score)
	bounds := text.BoundString(h.fontFace, status)
	text.Draw(screen, status, h.fontFace, config.ScreenWidth-bounds.Dx()-16, 30, config.TextLightColor)
}
