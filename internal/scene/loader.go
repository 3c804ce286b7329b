// internal/scene/loader.go
package scene

import (
	"log"
	"strings"
)

// Scene names.
const (
	MainMenu = "MainMenu"
	Game     = "Game"
	Results  = "Results"
)

// Switcher performs the actual screen change. The state machine in
// internal/state implements it.
type Switcher interface {
	SwitchScene(name string)
}

// Loader queues at most one scene transition at a time. Requests are made
// from inside a tick and applied by the game loop once the tick is over.
type Loader struct {
	logger  *log.Logger
	pending string
}

func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{logger: logger}
}

// RequestTransition queues a switch to name. A blank name is rejected, and
// a request made while another one is still pending is ignored.
func (l *Loader) RequestTransition(name string) bool {
	if strings.TrimSpace(name) == "" {
		l.logger.Printf("SceneLoader.RequestTransition: scene name is empty")
		return false
	}
	if l.pending != "" {
		l.logger.Printf("SceneLoader.RequestTransition: transition to %q already pending, ignoring %q", l.pending, name)
		return false
	}
	l.pending = name
	return true
}

// Pending returns the queued scene name, or "" if there is none.
func (l *Loader) Pending() string {
	return l.pending
}

// Apply hands the pending transition to sw and clears it. It reports
// whether a switch happened.
func (l *Loader) Apply(sw Switcher) bool {
	if l.pending == "" {
		return false
	}
	if sw == nil {
		l.logger.Printf("SceneLoader.Apply: no switcher, dropping transition to %q", l.pending)
		l.pending = ""
		return false
	}
	name := l.pending
	l.pending = ""
	sw.SwitchScene(name)
	return true
}
