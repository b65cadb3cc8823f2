package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/pomo/internal/config"
	"github.com/xolan/pomo/internal/pomodoro"
	"github.com/xolan/pomo/internal/service"
	"github.com/xolan/pomo/internal/tui/ui"
)

// ConfigModel is the model for the config view
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	// UI state
	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	themeName string
	saveErr   error
	saved     bool

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int // For scrolling
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		themes:        themeProvider.AvailableThemes(),
		themeName:     themeProvider.CurrentName(),
	}
	m.syncCursor()
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// configLoadedMsg is sent when config is loaded
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Theme) {
			m.selectingTheme = true
			m.saved = false
			m.saveErr = nil
			m.updateThemeOffset()
			return m, nil
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.syncCursor()
		return m, nil

	case ui.ConfigSavedMsg:
		m.saveErr = msg.Err
		m.saved = msg.Err == nil
		if m.saved {
			return m, m.loadConfig()
		}
		return m, nil
	}

	return m, nil
}

// handleThemeSelection handles keys when theme selector is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if len(m.themes) == 0 {
			m.selectingTheme = false
			return m, nil
		}
		selected := m.themes[m.themeCursor]
		m.selectingTheme = false
		return m, m.requestThemeChange(selected)

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.syncCursor()
		return m, nil
	}

	return m, nil
}

// syncCursor moves the selector cursor to the active theme
func (m *ConfigModel) syncCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
}

// updateThemeOffset adjusts scroll offset to keep cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// requestThemeChange creates a command to request a theme change by name
func (m ConfigModel) requestThemeChange(themeName string) tea.Cmd {
	return func() tea.Msg {
		return ui.ThemeChangeRequestMsg{ThemeName: themeName}
	}
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.renderConfigLine("Config file", m.path))

	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 10))))
	b.WriteString("\n\n")

	b.WriteString(m.renderConfigLine("work", pomodoro.FormatClock(pomodoro.WorkDuration)+" (fixed)"))
	b.WriteString(m.renderConfigLine("break", pomodoro.FormatClock(pomodoro.BreakDuration)+" (fixed)"))
	b.WriteString(m.renderConfigLine("log_level", m.config.LogLevel))
	b.WriteString(m.renderConfigLine("log_file", m.logFile()))
	b.WriteString(m.renderConfigLine("alt_screen", strconv.FormatBool(m.config.AltScreen)))
	b.WriteString(m.renderConfigLine("ring_radius", strconv.Itoa(m.config.RingRadius)))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}

	b.WriteString(m.renderConfigLine("theme", m.themeProvider.DisplayName(m.themeName)+" ("+m.themeName+")"))
	b.WriteString("\n")

	switch {
	case m.saveErr != nil:
		b.WriteString(m.styles.Error.Render("Could not save theme: " + m.saveErr.Error()))
		b.WriteString("\n")
	case m.saved:
		b.WriteString(m.styles.Success.Render("Theme saved"))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Hint.Render("Press Enter or 't' to change theme"))

	return b.String()
}

// logFile returns the configured log file, or a note about the default location
func (m ConfigModel) logFile() string {
	if m.config.LogFile != "" {
		return m.config.LogFile
	}
	return "(default: " + config.LogFile + " next to config)"
}

// renderThemeSelector renders the theme selection list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	endIdx := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.Hint.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < endIdx; i++ {
		theme := m.themes[i]
		name := m.themeProvider.DisplayName(theme)
		if i == m.themeCursor {
			b.WriteString(m.styles.Selected.Render("▸ " + name))
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(" (current)"))
			}
		} else {
			b.WriteString("  ")
			if theme == m.themeName {
				b.WriteString(m.styles.Success.Render(name + " (current)"))
			} else {
				b.WriteString(m.styles.StatValue.Render(name))
			}
		}
		b.WriteString("\n")
	}

	if endIdx < len(m.themes) {
		b.WriteString(m.styles.Hint.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("↑/↓ navigate  Enter select  Esc cancel"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the theme selector is open
func (m ConfigModel) IsInputMode() bool {
	return m.selectingTheme
}

// loadConfig creates a command to load config
func (m ConfigModel) loadConfig() tea.Cmd {
	return func() tea.Msg {
		return configLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}

func (m ConfigModel) renderConfigLine(key, value string) string {
	return m.styles.StatLabel.Render(key+":") + " " + m.styles.StatValue.Render(value) + "\n"
}
