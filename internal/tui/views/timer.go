package views

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/pomo/internal/config"
	"github.com/xolan/pomo/internal/logging"
	"github.com/xolan/pomo/internal/pomodoro"
	"github.com/xolan/pomo/internal/service"
	"github.com/xolan/pomo/internal/tui/ui"
)

// tickInterval is the period of the countdown
const tickInterval = time.Second

// Focusable buttons, left to right
const (
	buttonToggle = iota
	buttonReset
	buttonCount
)

// TimerModel is the Pomodoro widget: phase label, progress ring, MM:SS
// readout and the play/pause and reset buttons.
type TimerModel struct {
	styles ui.Styles
	keys   ui.KeyMap
	log    *slog.Logger

	// UI state
	width  int
	height int
	radius int
	focus  int

	state pomodoro.State

	// tickID identifies the live tick subscription. Ticks scheduled under
	// an older id are dropped.
	tickID int
}

// timerTickMsg is delivered once per second while the timer runs
type timerTickMsg struct {
	id int
	at time.Time
}

// NewTimerModel creates a new timer view model in its mount state:
// work phase, 25:00, stopped.
func NewTimerModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TimerModel {
	radius := config.DefaultRingRadius
	logger := logging.Discard().Logger
	if services != nil {
		radius = services.Config.Get().RingRadius
		logger = services.Log.Logger
	}

	return TimerModel{
		styles: styles,
		keys:   keys,
		log:    logger,
		radius: radius,
		state:  pomodoro.New(),
	}
}

// Init implements tea.Model. The timer starts stopped, so nothing is scheduled.
func (m TimerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.focus = (m.focus + buttonCount - 1) % buttonCount
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.focus = (m.focus + 1) % buttonCount
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.focus == buttonReset {
				m.reset()
				return m, nil
			}
			return m, m.toggle()
		}

	case timerTickMsg:
		return m.handleTick(msg)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleTick advances the countdown for a tick of the live subscription
// and schedules the next one.
func (m TimerModel) handleTick(msg timerTickMsg) (TimerModel, tea.Cmd) {
	if msg.id != m.tickID || !m.state.Running() {
		return m, nil
	}

	from := m.state.Phase()
	if m.state.Tick() {
		m.tickID++
		m.log.Info("phase complete",
			"phase", from.String(),
			"next", m.state.Phase().String(),
			"at", msg.at.Format(time.RFC3339))
		return m, nil
	}

	return m, m.scheduleTick()
}

// toggle flips running. Starting allocates a fresh subscription; pausing
// releases the current one.
func (m *TimerModel) toggle() tea.Cmd {
	m.state.Toggle()
	m.tickID++

	if m.state.Running() {
		m.log.Info("timer started", "phase", m.state.Phase().String(), "remaining", m.state.Clock())
		return m.scheduleTick()
	}

	m.log.Info("timer paused", "phase", m.state.Phase().String(), "remaining", m.state.Clock())
	return nil
}

func (m *TimerModel) reset() {
	m.state.Reset()
	m.tickID++
	m.log.Info("timer reset", "phase", m.state.Phase().String())
}

// Stop releases the tick subscription so no pending tick can change the
// state. Called when the widget is torn down.
func (m *TimerModel) Stop() {
	m.tickID++
	if m.state.Running() {
		m.state.Toggle()
	}
	m.log.Debug("timer unmounted", "phase", m.state.Phase().String(), "remaining", m.state.Clock())
}

// scheduleTick returns a command delivering one tick for the live id.
func (m TimerModel) scheduleTick() tea.Cmd {
	id := m.tickID
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg{id: id, at: t}
	})
}

// State returns the current countdown state
func (m TimerModel) State() pomodoro.State {
	return m.state
}

// View implements tea.Model
func (m TimerModel) View() string {
	phase := m.state.Phase()

	labelStyle, ringStyle, barColor := m.styles.PhaseWork, m.styles.RingWork, m.styles.WorkColor
	if phase == pomodoro.Break {
		labelStyle, ringStyle, barColor = m.styles.PhaseBreak, m.styles.RingBreak, m.styles.BreakColor
	}

	sections := []string{labelStyle.Render(phase.Label()), ""}

	if m.ringFits() {
		sections = append(sections, renderRing(m.radius, m.state.Progress(), m.state.Clock(),
			ringStyle, m.styles.RingTrack, m.styles.Clock))
	} else {
		bar := progress.New(progress.WithSolidFill(barColor), progress.WithoutPercentage())
		bar.EmptyColor = m.styles.TrackColor
		bar.Width = max(m.width-4, 10)
		sections = append(sections, m.styles.Clock.Render(m.state.Clock()), bar.ViewAs(m.state.Progress()))
	}

	sections = append(sections, "", m.renderButtons(), "", m.renderStatus())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

// ringFits reports whether the ring fits the available space. An unknown
// size (before the first WindowSizeMsg) assumes it does.
func (m TimerModel) ringFits() bool {
	if m.width == 0 && m.height == 0 {
		return true
	}
	width, height := ringSize(m.radius)
	// label, blank, buttons (3 rows with border), blank, status
	return m.width >= width+4 && m.height >= height+7
}

func (m TimerModel) renderButtons() string {
	icon, label := ui.IconPlay, "Start"
	if m.state.Running() {
		icon, label = ui.IconPause, "Pause"
	}

	buttons := []string{
		m.buttonStyle(buttonToggle).Render(icon + " " + label),
		"  ",
		m.buttonStyle(buttonReset).Render(ui.IconReset + " Reset"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m TimerModel) buttonStyle(button int) lipgloss.Style {
	if m.focus == button {
		return m.styles.ButtonFocused
	}
	return m.styles.Button
}

func (m TimerModel) renderStatus() string {
	var parts []string
	if m.state.Running() {
		parts = append(parts, m.styles.TimerRunning.Render("● running"))
	} else {
		parts = append(parts, m.styles.TimerStopped.Render("○ paused"))
	}
	parts = append(parts, m.styles.StatusHelp.Render("next: "+m.state.Phase().Next().Label()))
	return strings.Join(parts, m.styles.StatusHelp.Render("  ·  "))
}

// SetSize sets the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m TimerModel) IsInputMode() bool {
	return false
}
