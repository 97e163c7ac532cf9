// Package viz draws orbit trajectories in the terminal using braille
// characters, and hosts the live simulation view.
package viz

import (
	"strings"

	"github.com/san-kum/solarsim/internal/gravity"
)

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights a sub-pixel; the canvas is (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a sub-pixel line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
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
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Projection maps world coordinates onto canvas sub-pixels with equal
// aspect ratio, so circular orbits stay round in the terminal.
type Projection struct {
	cx, cy float64
	scale  float64
	subW   int
	subH   int
}

// FitProjection builds a projection covering all trajectory points with a
// small margin.
func FitProjection(trajectories [][]gravity.Vec2, c *Canvas) Projection {
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	first := true
	for _, traj := range trajectories {
		for _, p := range traj {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	subW := c.Width * 2
	subH := c.Height * 4
	scale := float64(subW) * 0.9 / rangeX
	if s := float64(subH) * 0.9 / rangeY; s < scale {
		scale = s
	}

	return Projection{
		cx:    (minX + maxX) / 2,
		cy:    (minY + maxY) / 2,
		scale: scale,
		subW:  subW,
		subH:  subH,
	}
}

// ToPixel converts a world point into canvas sub-pixels.
func (p Projection) ToPixel(v gravity.Vec2) (int, int) {
	x := float64(p.subW)/2 + (v.X-p.cx)*p.scale
	y := float64(p.subH)/2 - (v.Y-p.cy)*p.scale
	return int(x), int(y)
}

// PlotOrbits renders all trajectories onto a fresh canvas.
func PlotOrbits(trajectories [][]gravity.Vec2, width, height int) *Canvas {
	c := NewCanvas(width, height)
	proj := FitProjection(trajectories, c)

	for _, traj := range trajectories {
		for i := 1; i < len(traj); i++ {
			x0, y0 := proj.ToPixel(traj[i-1])
			x1, y1 := proj.ToPixel(traj[i])
			c.DrawLine(x0, y0, x1, y1)
		}
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
