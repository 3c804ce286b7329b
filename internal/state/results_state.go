// internal/state/results_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/results"
	"go-arena-survival/internal/scene"
	"go-arena-survival/internal/ui"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ResultsState показывает итог последнего забега.
type ResultsState struct {
	sm          *StateMachine
	deps        Deps
	result      results.Result
	hasResult   bool
	againButton *ui.Button
	menuButton  *ui.Button
	hovered     *ui.Button
}

func NewResultsState(sm *StateMachine, deps Deps) *ResultsState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &ResultsState{
		sm:          sm,
		deps:        deps,
		againButton: ui.NewButton(image.Rect(cx-210, cy+80, cx-10, cy+130), "AGAIN (R)", deps.Font),
		menuButton:  ui.NewButton(image.Rect(cx+10, cy+80, cx+210, cy+130), "MENU (M)", deps.Font),
	}
}

func (r *ResultsState) Enter() {
	r.result, r.hasResult = r.deps.Results.TryGetResult()
	if !r.hasResult {
		r.deps.Logger.Printf("ResultsState.Enter: no result stored")
	}
}

func (r *ResultsState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	r.hovered = nil
	for _, b := range []*ui.Button{r.againButton, r.menuButton} {
		if b.Contains(x, y) {
			r.hovered = b
		}
	}
	clicked := r.hovered != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || (clicked && r.hovered == r.againButton):
		r.deps.Audio.Play(audio.SfxClick)
		r.deps.Results.Reset()
		r.deps.Loader.RequestTransition(scene.Game)
	case inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (clicked && r.hovered == r.menuButton):
		r.deps.Audio.Play(audio.SfxClick)
		r.deps.Results.Reset()
		r.deps.Loader.RequestTransition(scene.MainMenu)
	}
}

func (r *ResultsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	headline, c := "NO RESULT", config.TextLightColor
	if r.hasResult {
		if r.result.Won {
			headline, c = "VICTORY", config.WinColor
		} else {
			headline, c = "DEFEAT", config.LoseColor
		}
	}
	r.drawCentered(screen, headline, config.ScreenHeight/2-80, c)

	if r.hasResult {
		r.drawCentered(screen, fmt.Sprintf("Score: %d", r.result.Score), config.ScreenHeight/2-40, config.TextLightColor)
		r.drawCentered(screen, fmt.Sprintf("Wave: %d", r.result.Wave), config.ScreenHeight/2-20, config.TextLightColor)
		r.drawCentered(screen, "Time: "+utils.FormatClock(r.result.Elapsed), config.ScreenHeight/2, config.TextLightColor)
	}

	r.againButton.Draw(screen, r.hovered == r.againButton)
	r.menuButton.Draw(screen, r.hovered == r.menuButton)
}

func (r *ResultsState) drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	bounds := text.BoundString(r.deps.Font, s)
	text.Draw(screen, s, r.deps.Font, (config.ScreenWidth-bounds.Dx())/2, y, c)
}

func (r *ResultsState) Exit() {}
