// internal/results/results.go
package results

import "sync"

// Result is the outcome of one finished run.
type Result struct {
	Won     bool
	Score   int
	Wave    int
	Elapsed float64 // seconds
}

// Store is a single-slot handoff between a finished run and the results
// screen. The zero value is empty and ready to use.
type Store struct {
	mu     sync.Mutex
	result Result
	has    bool
}

// Default is the process-wide store. It is reset whenever a new run is
// started from the main menu.
var Default = &Store{}

// SetResult overwrites the slot. Negative numbers are stored as zero.
func (s *Store) SetResult(won bool, score, wave int, elapsed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = Result{
		Won:     won,
		Score:   max(0, score),
		Wave:    max(0, wave),
		Elapsed: max(0, elapsed),
	}
	s.has = true
}

// TryGetResult returns the stored result, if any.
func (s *Store) TryGetResult() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.has
}

// Reset empties the slot.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = Result{}
	s.has = false
}
