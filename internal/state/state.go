// internal/state/state.go
package state

import (
	"log"

	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/results"
	"go-arena-survival/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Deps are the collaborators shared by every state.
type Deps struct {
	Config  config.Config
	Results *results.Store
	Loader  *scene.Loader
	Audio   audio.Player
	Logger  *log.Logger
	Font    font.Face
}

func (d *Deps) withDefaults() {
	if d.Results == nil {
		d.Results = results.Default
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Loader == nil {
		d.Loader = scene.NewLoader(d.Logger)
	}
	if d.Audio == nil {
		d.Audio = audio.NopPlayer{}
	}
	if d.Font == nil {
		d.Font = basicfont.Face7x13
	}
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	scenes  map[string]func() State
	logger  *log.Logger
}

var _ scene.Switcher = (*StateMachine)(nil)

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(logger *log.Logger) *StateMachine {
	if logger == nil {
		logger = log.Default()
	}
	return &StateMachine{scenes: make(map[string]func() State), logger: logger}
}

// NewArenaStateMachine registers the menu, game and results scenes.
func NewArenaStateMachine(deps Deps) *StateMachine {
	deps.withDefaults()
	sm := NewStateMachine(deps.Logger)
	sm.Register(scene.MainMenu, func() State { return NewMenuState(sm, deps) })
	sm.Register(scene.Game, func() State { return NewGameState(sm, deps) })
	sm.Register(scene.Results, func() State { return NewResultsState(sm, deps) })
	return sm
}

// Register binds a scene name to the constructor of its state.
func (sm *StateMachine) Register(name string, build func() State) {
	sm.scenes[name] = build
}

// SwitchScene builds a fresh state for the named scene and enters it.
func (sm *StateMachine) SwitchScene(name string) {
	build, ok := sm.scenes[name]
	if !ok {
		sm.logger.Printf("StateMachine.SwitchScene: unknown scene %q", name)
		return
	}
	sm.SetState(build())
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
