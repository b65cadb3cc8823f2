package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ringCell is one character cell of a rasterised ring
type ringCell int

const (
	cellEmpty ringCell = iota
	cellTrack
	cellLit
)

const (
	glyphLit   = "█"
	glyphTrack = "░"
)

// ringSize returns the width and height in cells of a ring of the given radius.
// Terminal cells are roughly twice as tall as they are wide, so columns are
// doubled to keep the ring round.
func ringSize(radius int) (width, height int) {
	return 4*radius + 1, 2*radius + 1
}

// rasterRing lays out a ring of the given radius and lights the cells whose
// angle, measured clockwise from 12 o'clock, falls below progress.
func rasterRing(radius int, progress float64) [][]ringCell {
	width, height := ringSize(radius)
	r := float64(radius)

	cells := make([][]ringCell, height)
	for row := range cells {
		cells[row] = make([]ringCell, width)
		y := float64(row - radius)
		for col := range cells[row] {
			x := float64(col-2*radius) / 2

			if math.Abs(math.Hypot(x, y)-r) >= 0.5 {
				continue
			}

			// y grows downwards, so (x, -y) is the usual orientation
			angle := math.Atan2(x, -y)
			if angle < 0 {
				angle += 2 * math.Pi
			}

			if angle/(2*math.Pi) < progress {
				cells[row][col] = cellLit
			} else {
				cells[row][col] = cellTrack
			}
		}
	}
	return cells
}

// renderRing draws the ring with label centred on its middle row.
func renderRing(radius int, progress float64, label string, lit, track, center lipgloss.Style) string {
	cells := rasterRing(radius, progress)
	width, _ := ringSize(radius)

	labelWidth := lipgloss.Width(label)
	labelStart := (width - labelWidth) / 2

	var b strings.Builder
	for row, line := range cells {
		if row > 0 {
			b.WriteString("\n")
		}

		col := 0
		for col < width {
			if row == radius && col == labelStart {
				b.WriteString(center.Render(label))
				col += labelWidth
				continue
			}

			kind := line[col]
			end := col
			for end < width && line[end] == kind && !(row == radius && end == labelStart) {
				end++
			}

			switch kind {
			case cellLit:
				b.WriteString(lit.Render(strings.Repeat(glyphLit, end-col)))
			case cellTrack:
				b.WriteString(track.Render(strings.Repeat(glyphTrack, end-col)))
			default:
				b.WriteString(strings.Repeat(" ", end-col))
			}
			col = end
		}
	}
	return b.String()
}
