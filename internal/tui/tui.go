// Package tui provides the terminal user interface for pomo.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/pomo/internal/service"
	"github.com/xolan/pomo/internal/tui/ui"
	"github.com/xolan/pomo/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabTimer Tab = iota
	TabConfig
)

var tabNames = []string{"Timer", "Config"}

// Options configures how the program is run
type Options struct {
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool
}

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	help      help.Model

	// View models
	timerView  views.TimerModel
	configView views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabTimer,
		help:          newHelp(styles),
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		timerView:     views.NewTimerModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

func newHelp(styles ui.Styles) help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = styles.StatusKey
	h.Styles.ShortDesc = styles.StatusHelp
	h.Styles.ShortSeparator = styles.StatusHelp
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpDesc
	return h
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.configView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The theme selector captures character keys but leaves ctrl+c alone
		capturingKeys := m.isCapturingKeys()

		switch {
		case msg.Type == tea.KeyCtrlC, key.Matches(msg, m.keys.Quit) && !capturingKeys:
			m.timerView.Stop()
			m.services.Log.Info("quit")
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturingKeys:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Back) && m.showHelp:
			m.showHelp = false
			return m, nil

		case m.showHelp:
			// The overlay hides the views, so their keys are dropped
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturingKeys:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturingKeys:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturingKeys:
			m.activeTab = TabTimer
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturingKeys:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

		// Keys go to the active view only
		switch m.activeTab {
		case TabTimer:
			m.timerView, cmd = m.timerView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Account for app padding, tabs and status bar
		contentWidth := max(m.width-4, 0)
		contentHeight := max(m.height-6, 0)
		m.timerView.SetSize(contentWidth, contentHeight)
		m.configView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		if !m.themeProvider.SetTheme(msg.ThemeName) {
			m.services.Log.Warn("unknown theme requested", "theme", msg.ThemeName)
			return m, nil
		}
		newTheme := m.themeProvider.CurrentName()
		m.services.Log.Info("theme changed", "theme", newTheme)

		m.styles = m.themeProvider.Styles()
		m.help = newHelp(m.styles)
		m.help.Width = m.width

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.timerView, _ = m.timerView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Everything else (ticks, load results) reaches every view so a
	// running timer keeps counting while another tab is shown.
	var timerCmd, configCmd tea.Cmd
	m.timerView, timerCmd = m.timerView.Update(msg)
	m.configView, configCmd = m.configView.Update(msg)
	return m, tea.Batch(timerCmd, configCmd)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabTimer:
		b.WriteString(m.timerView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var bindings []key.Binding
	switch {
	case m.isCapturingKeys():
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back}
	case m.activeTab == TabConfig:
		bindings = m.keys.ConfigHelp()
	default:
		bindings = m.keys.TimerHelp()
	}

	content := m.help.ShortHelpView(bindings)

	// Fill to width
	padding := m.width - 4 - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabTimer:
		return m.timerView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs.
// The timer is never re-initialised: its countdown survives tab switches.
func (m Model) initCurrentView() tea.Cmd {
	if m.activeTab == TabConfig {
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Config.SetTheme(themeName)
		if err != nil {
			m.services.Log.Error("failed to save theme", "theme", themeName, "error", err)
		}
		return ui.ConfigSavedMsg{Err: err}
	}
}

// renderHelpOverlay renders the keyboard shortcut overlay
func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press ? or Esc to close"))

	helpBox := m.styles.Dialog.Render(b.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application and blocks until it exits
func Run(services *service.Services, opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	services.Log.Debug("starting tui", "alt_screen", opts.AltScreen, "theme", services.Config.Get().Theme)

	p := tea.NewProgram(New(services), programOpts...)
	_, err := p.Run()
	return err
}
