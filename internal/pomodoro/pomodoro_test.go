package pomodoro

import "testing"

func TestNew(t *testing.T) {
	s := New()

	if s.Phase() != Work {
		t.Errorf("New().Phase() = %v, expected %v", s.Phase(), Work)
	}
	if s.Remaining() != 1500 {
		t.Errorf("New().Remaining() = %d, expected 1500", s.Remaining())
	}
	if s.Running() {
		t.Error("New() should not be running")
	}
	if s.Clock() != "25:00" {
		t.Errorf("New().Clock() = %q, expected %q", s.Clock(), "25:00")
	}
}

func TestPhase(t *testing.T) {
	tests := []struct {
		phase    Phase
		duration int
		next     Phase
		str      string
		label    string
	}{
		{Work, 1500, Break, "work", "Pomodoro"},
		{Break, 300, Work, "break", "Break"},
		{Phase(42), 1500, Break, "work", "Pomodoro"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.phase.Duration(); got != tt.duration {
				t.Errorf("Duration() = %d, expected %d", got, tt.duration)
			}
			if got := tt.phase.Next(); got != tt.next {
				t.Errorf("Next() = %v, expected %v", got, tt.next)
			}
			if got := tt.phase.String(); got != tt.str {
				t.Errorf("String() = %q, expected %q", got, tt.str)
			}
			if got := tt.phase.Label(); got != tt.label {
				t.Errorf("Label() = %q, expected %q", got, tt.label)
			}
		})
	}
}

func TestNewState_Clamps(t *testing.T) {
	tests := []struct {
		name      string
		phase     Phase
		remaining int
		expected  int
		phaseOut  Phase
	}{
		{"negative remaining", Work, -5, 0, Work},
		{"over work duration", Work, 9999, 1500, Work},
		{"over break duration", Break, 301, 300, Break},
		{"in range", Break, 120, 120, Break},
		{"unknown phase becomes work", Phase(7), 100, 100, Work},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.phase, tt.remaining, true)
			if s.Remaining() != tt.expected {
				t.Errorf("Remaining() = %d, expected %d", s.Remaining(), tt.expected)
			}
			if s.Phase() != tt.phaseOut {
				t.Errorf("Phase() = %v, expected %v", s.Phase(), tt.phaseOut)
			}
			if !s.Running() {
				t.Error("expected running to be preserved")
			}
		})
	}
}

func TestToggle_Involutive(t *testing.T) {
	states := []State{
		New(),
		NewState(Work, 10, true),
		NewState(Break, 300, false),
		NewState(Break, 1, true),
	}

	for _, s := range states {
		before := s
		s.Toggle()
		if s.Running() == before.Running() {
			t.Errorf("Toggle() did not flip running for %+v", before)
		}
		s.Toggle()
		if s != before {
			t.Errorf("Toggle() twice = %+v, expected %+v", s, before)
		}
	}
}

func TestReset(t *testing.T) {
	states := []State{
		New(),
		NewState(Work, 10, true),
		NewState(Work, 0, false),
		NewState(Break, 17, true),
		NewState(Break, 300, false),
	}

	for _, s := range states {
		phase := s.Phase()
		s.Reset()
		if s.Phase() != phase {
			t.Errorf("Reset() changed phase from %v to %v", phase, s.Phase())
		}
		if s.Remaining() != phase.Duration() {
			t.Errorf("Reset() remaining = %d, expected %d", s.Remaining(), phase.Duration())
		}
		if s.Running() {
			t.Error("Reset() should stop the timer")
		}
	}
}

func TestTick_Decrements(t *testing.T) {
	s := NewState(Work, 100, true)

	flipped := s.Tick()
	if flipped {
		t.Error("Tick() should not report a phase change mid-countdown")
	}
	if s.Remaining() != 99 {
		t.Errorf("Remaining() = %d, expected 99", s.Remaining())
	}
	if !s.Running() {
		t.Error("Tick() should keep the timer running")
	}
}

func TestTick_IgnoredWhenStopped(t *testing.T) {
	s := NewState(Work, 100, false)

	if s.Tick() {
		t.Error("Tick() on a stopped timer should not report a phase change")
	}
	if s.Remaining() != 100 {
		t.Errorf("Remaining() = %d, expected 100", s.Remaining())
	}
}

func TestTick_PhaseBoundary(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		next  Phase
	}{
		{"work to break", Work, Break},
		{"break to work", Break, Work},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.phase, 1, true)

			if !s.Tick() {
				t.Fatal("Tick() should report the phase change")
			}
			if s.Phase() != tt.next {
				t.Errorf("Phase() = %v, expected %v", s.Phase(), tt.next)
			}
			if s.Remaining() != tt.next.Duration() {
				t.Errorf("Remaining() = %d, expected %d", s.Remaining(), tt.next.Duration())
			}
			if s.Running() {
				t.Error("timer should stop at the phase boundary")
			}
		})
	}
}

func TestTick_FromZero(t *testing.T) {
	s := NewState(Work, 0, true)

	if !s.Tick() {
		t.Fatal("Tick() from zero should cross the boundary")
	}
	if s.Phase() != Break || s.Remaining() != 300 || s.Running() {
		t.Errorf("unexpected state after boundary: %+v", s)
	}
}

func TestFullWorkSession(t *testing.T) {
	s := New()
	s.Toggle()
	if !s.Running() {
		t.Fatal("expected running after Toggle()")
	}

	for i := 1; i <= 1500; i++ {
		flipped := s.Tick()
		if flipped != (i == 1500) {
			t.Fatalf("tick %d: flipped = %v", i, flipped)
		}
	}

	if s.Phase() != Break {
		t.Errorf("Phase() = %v, expected %v", s.Phase(), Break)
	}
	if s.Remaining() != 300 {
		t.Errorf("Remaining() = %d, expected 300", s.Remaining())
	}
	if s.Running() {
		t.Error("expected timer to stop after the work phase")
	}

	// Extra ticks while stopped change nothing
	s.Tick()
	if s.Remaining() != 300 {
		t.Errorf("Remaining() after stopped tick = %d, expected 300", s.Remaining())
	}
}

func TestRemainingBounds(t *testing.T) {
	s := New()
	s.Toggle()

	// Run through two full phases, restarting at each boundary
	for i := 0; i < 1500+300+10; i++ {
		if s.Remaining() < 0 || s.Remaining() > s.Phase().Duration() {
			t.Fatalf("step %d: remaining %d out of [0, %d]", i, s.Remaining(), s.Phase().Duration())
		}
		if s.Tick() {
			s.Toggle()
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected float64
	}{
		{"fresh work", NewState(Work, 1500, false), 0},
		{"half work", NewState(Work, 750, true), 0.5},
		{"done work", NewState(Work, 0, true), 1},
		{"fresh break", NewState(Break, 300, false), 0},
		{"fifth of break", NewState(Break, 240, true), 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Progress(); got != tt.expected {
				t.Errorf("Progress() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestProgress_MonotonicWithinPhase(t *testing.T) {
	s := NewState(Break, 300, true)
	prev := s.Progress()

	for s.Remaining() > 1 {
		s.Tick()
		p := s.Progress()
		if p < prev {
			t.Fatalf("progress decreased from %v to %v at remaining %d", prev, p, s.Remaining())
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of range", p)
		}
		prev = p
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{299, "04:59"},
		{300, "05:00"},
		{1500, "25:00"},
		{1499, "24:59"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.expected {
				t.Errorf("FormatClock(%d) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}
