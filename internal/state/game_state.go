// internal/state/game_state.go
package state

import (
	game "go-arena-survival/internal/app"
	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/ui"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/math/f64"
)

// GameState — состояние игры: одна попытка выжить на арене.
type GameState struct {
	sm       *StateMachine
	deps     Deps
	game     *game.Game
	renderer *ui.ArenaRenderer
	hud      *ui.HUD
	subs     []event.Subscription
	entered  bool
	pausing  bool
	debug    bool
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	gameLogic := game.NewGame(game.Options{
		Config:  deps.Config,
		Results: deps.Results,
		Loader:  deps.Loader,
		Logger:  deps.Logger,
	})
	return &GameState{
		sm:       sm,
		deps:     deps,
		game:     gameLogic,
		renderer: ui.NewArenaRenderer(gameLogic.ECS, deps.Config.Arena.SpawnPoints),
		hud:      ui.NewHUD(deps.Font),
	}
}

// Enter starts the run. Coming back from the pause screen resumes it.
func (g *GameState) Enter() {
	g.pausing = false
	if g.entered {
		return
	}
	g.entered = true

	g.hud.BindSession(g.game.Session.Events())
	g.subs = append(g.subs, audio.BindArena(g.game.EventDispatcher, g.deps.Audio)...)
	g.subs = append(g.subs, audio.BindSession(g.game.Session.Events(), g.deps.Audio)...)

	if err := g.game.Start(); err != nil {
		g.deps.Logger.Printf("GameState.Enter: run started without waves: %v", err)
	}
	g.hud.BindPlayer(g.game.Player())
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.Session.IsPlaying() && (inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		g.pausing = true
		g.sm.SetState(NewPauseState(g.sm, g, g.deps))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.game.SetPlayerInput(moveInput())
	if dir, ok := g.aimInput(); ok {
		g.game.Fire(dir)
	}
	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.hud.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.game.DebugInfo(), 8, config.ScreenHeight-20)
	}
}

// Exit tears the run down unless the game is only being paused.
func (g *GameState) Exit() {
	if g.pausing {
		return
	}
	g.hud.Unbind()
	for _, sub := range g.subs {
		sub.Unsubscribe()
	}
	g.subs = nil
	g.game.Teardown()
}

func moveInput() f64.Vec2 {
	var dir f64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir[0]--
	}
	return dir
}

// aimInput returns the shooting direction: arrows first, then the mouse.
func (g *GameState) aimInput() (f64.Vec2, bool) {
	var dir f64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir[0]--
	}
	if !utils.IsZero(dir) {
		return dir, true
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return f64.Vec2{}, false
	}
	t, ok := g.game.ECS.Transforms[g.game.PlayerID]
	if !ok {
		return f64.Vec2{}, false
	}
	target := g.renderer.ToArena(ebiten.CursorPosition())
	return utils.Sub(target, t.Pos), true
}
