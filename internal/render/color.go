package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/berlin-clock/internal/domain/clock"
)

var (
	colorYellow = lipgloss.Color("11") // bright yellow
	colorRed    = lipgloss.Color("9")  // bright red
	colorOff    = lipgloss.Color("8")  // dark gray
	colorLabel  = lipgloss.Color("0")  // black
)

// Color draws each lamp as a coloured cell and centres the rows like the
// physical clock face. Without colour support the cells degrade to their
// Y/R/O symbols.
type Color struct {
	// styles maps each lamp state to its cell style.
	styles map[clock.Lamp]lipgloss.Style
}

// NewColor creates a colour renderer for output written to w.
func NewColor(w io.Writer) *Color {
	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Padding(0, 1).Foreground(colorLabel)

	return &Color{
		styles: map[clock.Lamp]lipgloss.Style{
			clock.Off:    cell.Background(colorOff),
			clock.Yellow: cell.Background(colorYellow),
			clock.Red:    cell.Background(colorRed),
		},
	}
}

// Render implements Renderer.
func (c *Color) Render(d clock.Display) string {
	rows := d.Rows()
	lines := make([]string, len(rows))

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, lamp := range row {
			cells[j] = c.styles[lamp].Render(lamp.String())
		}

		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
