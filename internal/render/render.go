// Package render draws a cube as an unfolded net for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/config"
	"github.com/SeamusWaldron/cube/internal/grid"
)

// Renderer turns cube state into text. A plain renderer writes colour
// letters; a coloured one paints sticker backgrounds with lipgloss.
type Renderer struct {
	plain  bool
	styles map[cube.Color]lipgloss.Style
}

var (
	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	unsolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	unknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// New returns a coloured renderer using the scheme's terminal colours.
func New(scheme config.ColorScheme) *Renderer {
	styles := make(map[cube.Color]lipgloss.Style, len(cube.Faces))
	for _, f := range cube.Faces {
		c := cube.Color(f)
		styles[c] = lipgloss.NewStyle().Background(lipgloss.Color(scheme.ForColor(c)))
	}
	return &Renderer{styles: styles}
}

// Plain returns a renderer that writes one colour letter per sticker.
func Plain() *Renderer {
	return &Renderer{plain: true}
}

// sticker draws one cell, two columns wide.
func (r *Renderer) sticker(s cube.Sticker) string {
	if r.plain {
		return s.Color.String() + " "
	}
	style, ok := r.styles[s.Color]
	if !ok {
		return unknownStyle.Render(s.Color.String() + " ")
	}
	return style.Render("  ")
}

// face draws one face as a block of size rows.
func (r *Renderer) face(stickers []cube.Sticker) string {
	rows := grid.ChunkRows(stickers)
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, s := range row {
			b.WriteString(r.sticker(s))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Net renders U above, L F R B in a row, and D below.
func (r *Renderer) Net(state cube.State, size int) string {
	faces := make(map[cube.Face]string, len(cube.Faces))
	for _, f := range cube.Faces {
		faces[f] = r.face(state[f])
	}

	blank := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 2*size)+"\n", size), "\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, blank, faces[cube.FaceU])
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		faces[cube.FaceL], faces[cube.FaceF], faces[cube.FaceR], faces[cube.FaceB])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, blank, faces[cube.FaceD])

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// Cube renders a cube's current net.
func (r *Renderer) Cube(c *cube.Cube) string {
	return r.Net(c.State(), c.Size())
}

// Status renders a one-line solved indicator.
func (r *Renderer) Status(solved bool) string {
	if solved {
		return solvedStyle.Render("solved")
	}
	return unsolvedStyle.Render("not solved")
}
