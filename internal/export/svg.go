// Package export renders simulation output as SVG files: an equal-aspect
// orbit plot and a stacked per-body time-series plot.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/solarsim/internal/gravity"
)

// palette cycles per body; index 0 suits the central star.
var palette = []string{
	"#ffd700", // Sun
	"#b0b0b0",
	"#e8a33c",
	"#3c78e8",
	"#e85a3c",
	"#d9b38c",
	"#e8d83c",
	"#7ce8e0",
	"#3c50e8",
}

func strokeColor(i int) string {
	return palette[i%len(palette)]
}

// Orbits renders all trajectories in the xy-plane with equal aspect ratio
// and a legend of body labels.
func Orbits(trajectories [][]gravity.Vec2, labels []string, width, height int) string {
	if len(trajectories) == 0 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(trajectories)

	// Equal aspect: one scale for both axes, trajectories centered.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	plotW := float64(width) * 0.9
	plotH := float64(height) * 0.9
	scale := plotW / rangeX
	if s := plotH / rangeY; s < scale {
		scale = s
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	toPx := func(p gravity.Vec2) (float64, float64) {
		x := float64(width)/2 + (p.X-cx)*scale
		y := float64(height)/2 - (p.Y-cy)*scale
		return x, y
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, traj := range trajectories {
		if len(traj) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.2" d="M`, strokeColor(i)))
		for j, p := range traj {
			x, y := toPx(p)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		// Mark the final position.
		x, y := toPx(traj[len(traj)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x, y, strokeColor(i)))
	}

	for i, label := range labels {
		if i >= len(trajectories) {
			break
		}
		y := 20 + i*16
		sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, y, strokeColor(i), label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteOrbits renders the orbit plot to path.
func WriteOrbits(path string, trajectories [][]gravity.Vec2, labels []string, width, height int) error {
	return os.WriteFile(path, []byte(Orbits(trajectories, labels, width, height)), 0644)
}

func bounds(trajectories [][]gravity.Vec2) (minX, maxX, minY, maxY float64) {
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
	return minX, maxX, minY, maxY
}
