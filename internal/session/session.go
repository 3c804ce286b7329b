// internal/session/session.go
package session

import (
	"log"

	"go-arena-survival/internal/event"
	"go-arena-survival/internal/scene"
)

// State — фаза игрового сеанса.
type State int

const (
	MainMenu State = iota
	Playing
	Win
	Lose
	Results
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Results:
		return "Results"
	default:
		return "Unknown"
	}
}

// ResultSink receives the final result of a run. Reset drops the result of
// a previous run when a new one starts.
type ResultSink interface {
	SetResult(won bool, score, wave int, elapsed float64)
	Reset()
}

// SceneRequester asks for a scene switch.
type SceneRequester interface {
	RequestTransition(name string) bool
}

// DefaultTimeTickInterval is how often TimeChanged fires while playing.
const DefaultTimeTickInterval = 0.5

// Options configures a Session. Nil collaborators are tolerated: the step
// that needs them is logged and skipped.
type Options struct {
	Results          ResultSink
	Loader           SceneRequester
	TimeTickInterval float64 // seconds; <= 0 means DefaultTimeTickInterval
	Logger           *log.Logger
}

// Session owns the score, the wave counter and the elapsed time of one
// run, and performs the single terminal transition to Win or Lose.
type Session struct {
	events  *event.Dispatcher
	results ResultSink
	loader  SceneRequester
	logger  *log.Logger

	timeTickInterval float64
	timeAccumulator  float64

	state       State
	score       int
	currentWave int
	elapsed     float64
	hasEnded    bool
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := opts.TimeTickInterval
	if interval <= 0 {
		interval = DefaultTimeTickInterval
	}
	return &Session{
		events:           event.NewDispatcher(),
		results:          opts.Results,
		loader:           opts.Loader,
		logger:           logger,
		timeTickInterval: interval,
		state:            MainMenu,
	}
}

// Events carries ScoreChanged, WaveChanged, TimeChanged, SessionEnded and
// SessionStateChanged.
func (s *Session) Events() *event.Dispatcher { return s.events }

func (s *Session) State() State { return s.state }
func (s *Session) Score() int { return s.score }
func (s *Session) CurrentWave() int { return s.currentWave }
func (s *Session) ElapsedTime() float64 { return s.elapsed }
func (s *Session) HasEnded() bool { return s.hasEnded }

// IsPlaying reports whether the run is live.
func (s *Session) IsPlaying() bool { return s.state == Playing }

// OnStart begins a fresh run and publishes the initial values so that
// listeners attached before the start can render them. A result left over
// from the previous run is cleared.
func (s *Session) OnStart() {
	if s.results != nil {
		s.results.Reset()
	}
	s.score = 0
	s.currentWave = 0
	s.elapsed = 0
	s.timeAccumulator = 0
	s.hasEnded = false
	s.setState(Playing)

	s.events.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.score})
	s.events.Dispatch(event.Event{Type: event.WaveChanged, Data: s.currentWave})
	s.events.Dispatch(event.Event{Type: event.TimeChanged, Data: s.elapsed})
}

// OnTick advances the elapsed time while playing. TimeChanged is emitted at
// most once per time tick interval.
func (s *Session) OnTick(dt float64) {
	if s.state != Playing || dt <= 0 {
		return
	}
	s.elapsed += dt
	s.timeAccumulator += dt
	if s.timeAccumulator >= s.timeTickInterval {
		s.timeAccumulator = 0
		s.events.Dispatch(event.Event{Type: event.TimeChanged, Data: s.elapsed})
	}
}

// AddScore adds a positive amount. Score is frozen once the run has ended.
func (s *Session) AddScore(amount int) {
	if amount <= 0 || s.hasEnded {
		return
	}
	s.score += amount
	s.events.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.score})
}

// SetCurrentWave sets the displayed wave number; negatives become 0. Only
// an actual change is published.
func (s *Session) SetCurrentWave(n int) {
	if n < 0 {
		n = 0
	}
	if n == s.currentWave {
		return
	}
	s.currentWave = n
	s.events.Dispatch(event.Event{Type: event.WaveChanged, Data: n})
}

// EndSession finishes the run once. The result is stored, the state goes
// through Win or Lose to Results and the results scene is requested. Later
// calls are ignored.
func (s *Session) EndSession(won bool) {
	if s.hasEnded {
		s.logger.Printf("Session.EndSession: already called, ignoring duplicate request (won=%v)", won)
		return
	}
	s.hasEnded = true

	if won {
		s.setState(Win)
	} else {
		s.setState(Lose)
	}
	s.events.Dispatch(event.Event{Type: event.SessionEnded, Data: won})

	if s.results != nil {
		s.results.SetResult(won, s.score, s.currentWave, s.elapsed)
	} else {
		s.logger.Printf("Session.EndSession: no result store, result not saved")
	}

	s.setState(Results)

	if s.loader != nil {
		s.loader.RequestTransition(scene.Results)
	} else {
		s.logger.Printf("Session.EndSession: no scene loader, staying on the current scene")
	}
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	s.state = next
	s.events.Dispatch(event.Event{Type: event.SessionStateChanged, Data: next})
}
