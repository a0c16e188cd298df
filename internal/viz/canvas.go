// Package viz renders the torus surface and trajectory paths as a
// braille wireframe for the terminal.
package viz

import "strings"

// Each cell packs a 2x4 block of braille dots starting at U+2800.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot grid. Dot coordinates run over a space twice
// as wide and four times as tall as the character grid.
type Canvas struct {
	cols, rows int
	cells      [][]rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
		for j := range c.cells[i] {
			c.cells[i][j] = 0x2800
		}
	}
	return c
}

// DotWidth and DotHeight bound the dot coordinate space.
func (c *Canvas) DotWidth() int  { return c.cols * 2 }
func (c *Canvas) DotHeight() int { return c.rows * 4 }

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

// Line draws with Bresenham stepping in dot space.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
