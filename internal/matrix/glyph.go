package matrix

import "github.com/coreman2200/funtimes-genius/internal/render"

// Glyph is a 5x5 bitmap, one string per row, '#' lit. Rows and columns
// follow layout coordinates.
type Glyph [5]string

var (
	// ArrowA points at button A.
	ArrowA = Glyph{
		"..#..",
		"..##.",
		"..###",
		"..##.",
		"..#..",
	}
	// ArrowB points at button B.
	ArrowB = Glyph{
		"..#..",
		".##..",
		"###..",
		".##..",
		"..#..",
	}
	Check = Glyph{
		".....",
		"..#..",
		".#.#.",
		"#....",
		".....",
	}
	Cross = Glyph{
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
	}
)

// Lit returns the coordinates set in g.
func (g Glyph) Lit() [][2]int {
	var out [][2]int
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// DrawGlyph clears the buffer and draws g in c. Pixels outside the layout
// are skipped.
func (m *Matrix) DrawGlyph(g Glyph, c render.Color) {
	m.canvas.Clear()
	for _, p := range g.Lit() {
		_ = m.Set(p[0], p[1], c)
	}
}
