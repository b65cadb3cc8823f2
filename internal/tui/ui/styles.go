package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Timer widget
	PhaseWork     lipgloss.Style
	PhaseBreak    lipgloss.Style
	Clock         lipgloss.Style
	RingWork      lipgloss.Style
	RingBreak     lipgloss.Style
	RingTrack     lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	TimerRunning  lipgloss.Style
	TimerStopped  lipgloss.Style

	// Progress bar fill colors, used when the ring does not fit
	WorkColor  string
	BreakColor string
	TrackColor string

	// Config view
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Selected  lipgloss.Style
	// Hint is for free-running hint lines; unlike StatLabel it has no width
	Hint lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	errorC    lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	highlight lipgloss.TerminalColor
	work      lipgloss.TerminalColor
	rest      lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),  // Purple
		secondary: lipgloss.Color("39"),  // Cyan
		accent:    lipgloss.Color("212"), // Pink
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),  // Green
		warning:   lipgloss.Color("214"), // Orange
		errorC:    lipgloss.Color("196"), // Red
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		highlight: lipgloss.Color("237"),
		work:      lipgloss.Color("#ff5f87"),
		rest:      lipgloss.Color("#5fd787"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// This maps theme colors to semantic UI elements:
// - Primary: Purple (tabs, titles)
// - Secondary: Cyan (keys)
// - Work: Red (work phase ring and label)
// - Break: Green (break phase ring and label)
// - Muted: BrightBlack (ring track, inactive elements, labels)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		errorC:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		highlight: r.BrightBlack(),
		work:      r.Red(),
		rest:      r.Green(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),
		TabSeparator: lipgloss.NewStyle().
			Foreground(p.muted).
			SetString("|"),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(p.fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		// Timer widget
		PhaseWork: lipgloss.NewStyle().
			Foreground(p.work).
			Bold(true),
		PhaseBreak: lipgloss.NewStyle().
			Foreground(p.rest).
			Bold(true),
		Clock: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		RingWork: lipgloss.NewStyle().
			Foreground(p.work),
		RingBreak: lipgloss.NewStyle().
			Foreground(p.rest),
		RingTrack: lipgloss.NewStyle().
			Foreground(p.muted),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Foreground(p.fg).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		TimerRunning: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		TimerStopped: lipgloss.NewStyle().
			Foreground(p.muted),

		WorkColor:  ColorString(p.work),
		BreakColor: ColorString(p.rest),
		TrackColor: ColorString(p.muted),

		// Config view
		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(p.highlight).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(p.muted),

		// Help
		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(p.errorC),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}

// ColorString returns the color value behind c (hex or ANSI code), as
// expected by bubbles/progress. Unknown color types yield a neutral gray.
func ColorString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return v.Dark
	case lipgloss.CompleteColor:
		return v.TrueColor
	case lipgloss.CompleteAdaptiveColor:
		return v.Dark.TrueColor
	}
	return "#808080"
}
