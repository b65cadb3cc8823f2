package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured
const DefaultTheme = "dracula"

// ThemeProvider owns the bubbletint registry and builds Styles from the active tint.
type ThemeProvider struct {
	registry *tint.Registry
	names    map[string]string
}

// NewThemeProvider creates a ThemeProvider starting on initialTheme.
// An empty or unknown theme falls back to DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	allTints := tint.DefaultTints()

	var defaultTint tint.Tint
	names := make(map[string]string, len(allTints))
	for _, t := range allTints {
		names[t.ID()] = t.DisplayName()
		if t.ID() == DefaultTheme {
			defaultTint = t
		}
	}
	if defaultTint == nil && len(allTints) > 0 {
		defaultTint = allTints[0]
	}

	registry := tint.NewRegistry(defaultTint, allTints...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{
		registry: registry,
		names:    names,
	}
}

// SetTheme switches to the theme with the given ID.
// Returns false and keeps the current theme if the ID is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the ID of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human readable name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// DisplayName returns the human readable name for a theme ID, or the ID itself.
func (tp *ThemeProvider) DisplayName(id string) string {
	if name, ok := tp.names[id]; ok && name != "" {
		return name
	}
	return id
}

// AvailableThemes returns a sorted list of all theme IDs.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns Styles for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
