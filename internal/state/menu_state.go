// internal/state/menu_state.go
package state

import (
	"image"

	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/scene"
	"go-arena-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const title = "ARENA SURVIVAL"

// MenuState — главное меню
type MenuState struct {
	sm          *StateMachine
	deps        Deps
	startButton *ui.Button
	hovered     bool
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	rect := image.Rect(config.ScreenWidth/2-100, config.ScreenHeight/2, config.ScreenWidth/2+100, config.ScreenHeight/2+50)
	return &MenuState{
		sm:          sm,
		deps:        deps,
		startButton: ui.NewButton(rect, "START", deps.Font),
	}
}

// Enter forgets the result of the previous run.
func (m *MenuState) Enter() {
	m.deps.Results.Reset()
}

func (m *MenuState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	m.hovered = m.startButton.Contains(x, y)

	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if m.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		start = true
	}
	if start {
		m.deps.Audio.Play(audio.SfxClick)
		m.deps.Loader.RequestTransition(scene.Game)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	bounds := text.BoundString(m.deps.Font, title)
	text.Draw(screen, title, m.deps.Font, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3, config.TextLightColor)

	hint := "WASD - move, arrows or mouse - shoot, P - pause, F3 - debug"
	bounds = text.BoundString(m.deps.Font, hint)
	text.Draw(screen, hint, m.deps.Font, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3+30, config.TextLightColor)

	m.startButton.Draw(screen, m.hovered)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
