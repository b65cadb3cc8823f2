// Package pomodoro implements the countdown state machine behind the timer widget.
//
// A State counts down the current phase one second per Tick. When the countdown
// is exhausted the phase flips between work and break, the new phase's full
// duration is loaded and the timer stops, so every phase is started by hand.
// All operations are total: there are no error returns in this package.
package pomodoro

import "fmt"

// Phase durations in whole seconds
const (
	WorkDuration  = 25 * 60
	BreakDuration = 5 * 60
)

// Phase is the current mode of the timer
type Phase int

const (
	Work Phase = iota
	Break
)

// Duration returns the full length of the phase in seconds.
// Unknown phases are treated as work.
func (p Phase) Duration() int {
	if p == Break {
		return BreakDuration
	}
	return WorkDuration
}

// Next returns the phase that follows p
func (p Phase) Next() Phase {
	if p == Break {
		return Work
	}
	return Break
}

// String returns the lowercase identifier used in logs
func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Label returns the heading shown above the countdown
func (p Phase) Label() string {
	if p == Break {
		return "Break"
	}
	return "Pomodoro"
}

// State is the countdown state of a single timer.
// The zero value is not useful; use New.
type State struct {
	phase     Phase
	remaining int
	running   bool
}

// New returns the state a freshly mounted timer starts with:
// a stopped work phase with its full duration remaining.
func New() State {
	return State{
		phase:     Work,
		remaining: WorkDuration,
	}
}

// NewState builds a state from explicit values. remaining is clamped to
// [0, phase.Duration()] so the returned state always holds the invariant.
func NewState(phase Phase, remaining int, running bool) State {
	if phase != Break {
		phase = Work
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > phase.Duration() {
		remaining = phase.Duration()
	}
	return State{
		phase:     phase,
		remaining: remaining,
		running:   running,
	}
}

// Phase returns the current phase
func (s State) Phase() Phase {
	return s.phase
}

// Remaining returns the seconds left in the current phase
func (s State) Remaining() int {
	return s.remaining
}

// Running reports whether the countdown is active
func (s State) Running() bool {
	return s.running
}

// Toggle flips between running and paused
func (s *State) Toggle() {
	s.running = !s.running
}

// Reset stops the timer and restores the full duration of the current phase.
// The phase itself is kept.
func (s *State) Reset() {
	s.running = false
	s.remaining = s.phase.Duration()
}

// Tick advances the countdown by one second. The tick that exhausts the
// countdown switches to the next phase, loads its full duration and stops
// the timer; Tick returns true in that case. A tick on a stopped timer is
// ignored.
func (s *State) Tick() bool {
	if !s.running {
		return false
	}

	s.remaining--
	if s.remaining > 0 {
		return false
	}

	s.phase = s.phase.Next()
	s.remaining = s.phase.Duration()
	s.running = false
	return true
}

// Progress returns the elapsed fraction of the current phase in [0, 1]
func (s State) Progress() float64 {
	total := s.phase.Duration()
	return float64(total-s.remaining) / float64(total)
}

// Clock returns the remaining time as MM:SS
func (s State) Clock() string {
	return FormatClock(s.remaining)
}

// FormatClock formats a number of seconds as zero-padded MM:SS.
// Negative values are shown as 00:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
