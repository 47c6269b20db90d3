// Package canvas rasterizes colored point clouds into Unicode braille
// frames. Each terminal cell is a 2x4 dot grid, so a cols x rows canvas
// addresses a (cols*2) x (rows*4) dot surface.
package canvas

import "strings"

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a dot-addressable drawing surface. Each cell carries one
// foreground color; the last dot plotted into a cell wins.
type Canvas struct {
	cols    int
	rows    int
	pattern []uint8
	colors  []RGB
	colored []bool
	profile colorProfile
}

// New builds an empty canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	c := &Canvas{profile: currentColorProfile()}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the canvas. Contents are cleared.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols = cols
	c.rows = rows
	c.pattern = make([]uint8, cols*rows)
	c.colors = make([]RGB, cols*rows)
	c.colored = make([]bool, cols*rows)
}

// Clear erases all dots.
func (c *Canvas) Clear() {
	for i := range c.pattern {
		c.pattern[i] = 0
		c.colored[i] = false
	}
}

// Size returns the dot-space dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.cols * 2, c.rows * 4
}

// Plot sets the dot at (x, y) in dot space. Out-of-range dots are dropped.
func (c *Canvas) Plot(x, y int, col RGB) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.pattern[cell] |= 1 << brailleBits[x%2][y%4]
	c.colors[cell] = col
	c.colored[cell] = true
}

// Rune returns the braille rune currently occupying cell (col, row).
func (c *Canvas) Rune(col, row int) rune {
	return rune(0x2800 + uint(c.pattern[row*c.cols+col]))
}

// String renders the canvas as rows of braille runes with ANSI foreground
// colors, one line per cell row.
func (c *Canvas) String() string {
	var out strings.Builder
	out.Grow(c.rows * (c.cols*3 + 1))

	color := newANSIState(c.profile)
	for r := range c.rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			cell := r*c.cols + col
			if c.pattern[cell] == 0 {
				color.reset(&out)
				out.WriteRune(' ')
				continue
			}
			if c.colored[cell] {
				color.set(&out, c.colors[cell])
			}
			out.WriteRune(c.Rune(col, r))
		}
		color.reset(&out)
	}
	return out.String()
}
