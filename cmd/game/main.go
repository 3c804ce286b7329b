// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-arena-survival/internal/audio"
	"go-arena-survival/internal/audio/synth"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/results"
	"go-arena-survival/internal/scene"
	"go-arena-survival/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	loader         *scene.Loader
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	// Переходы между сценами применяются только между кадрами.
	a.loader.Apply(a.stateMachine)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	startFromGame := flag.Bool("play", false, "skip the main menu")
	flag.Parse()

	logger := log.Default()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Printf("config: %v", err)
	}

	var player audio.Player = audio.NopPlayer{}
	if cfg.Audio {
		p, err := synth.NewPlayer()
		if err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer p.Close()
			player = p
		}
	}

	loader := scene.NewLoader(logger)
	sm := state.NewArenaStateMachine(state.Deps{
		Config:  cfg,
		Results: results.Default,
		Loader:  loader,
		Audio:   player,
		Logger:  logger,
	})
	if *startFromGame {
		sm.SwitchScene(scene.Game)
	} else {
		sm.SwitchScene(scene.MainMenu)
	}

	app := &AppGame{
		stateMachine:   sm,
		loader:         loader,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survival")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
