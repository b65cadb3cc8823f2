package ui

// Button glyphs
const (
	IconPlay  = "▶"
	IconPause = "⏸"
	IconReset = "↺"
)
