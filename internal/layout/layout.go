package layout

// Layout describes a rectangular LED matrix wired as one strip. With
// Serpentine set, odd rows run right to left.
type Layout struct {
	Width, Height int
	Serpentine    bool
}

// Index maps x,y -> linear LED index (0..N-1), or -1 off the matrix.
func (l Layout) Index(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return -1
	}
	xx := x
	if l.Serpentine && y%2 == 1 {
		xx = l.Width - 1 - x
	}
	return y*l.Width + xx
}

// XY is the inverse of Index.
func (l Layout) XY(i int) (x, y int) {
	if l.Width <= 0 {
		return -1, -1
	}
	y, x = i/l.Width, i%l.Width
	if l.Serpentine && y%2 == 1 {
		x = l.Width - 1 - x
	}
	return x, y
}

func (l Layout) Count() int {
	return l.Width * l.Height
}
