package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/solarsim/internal/gravity"
)

const (
	xCurveColor   = "#3c78e8"
	yCurveColor   = "#e85a3c"
	cogCurveColor = "#b0b0b0"
)

// Timeseries renders one stacked panel per body showing its x(t) and y(t)
// coordinates, plus one extra panel for the centroid when it is non-nil.
func Timeseries(times []float64, trajectories [][]gravity.Vec2, labels []string, centroid []gravity.Vec2, width, panelHeight int) string {
	if len(trajectories) == 0 || len(times) == 0 {
		return ""
	}

	panels := len(trajectories)
	if centroid != nil {
		panels++
	}
	height := panels * panelHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, traj := range trajectories {
		label := fmt.Sprintf("body %d", i)
		if i < len(labels) {
			label = labels[i]
		}
		drawPanel(&sb, times, traj, label, i*panelHeight, width, panelHeight, xCurveColor, yCurveColor)
	}

	if centroid != nil {
		drawPanel(&sb, times, centroid, "Center of Gravity", len(trajectories)*panelHeight, width, panelHeight, cogCurveColor, yCurveColor)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTimeseries renders the time-series plot to path.
func WriteTimeseries(path string, times []float64, trajectories [][]gravity.Vec2, labels []string, centroid []gravity.Vec2, width, panelHeight int) error {
	return os.WriteFile(path, []byte(Timeseries(times, trajectories, labels, centroid, width, panelHeight)), 0644)
}

func drawPanel(sb *strings.Builder, times []float64, traj []gravity.Vec2, label string, top, width, height int, colX, colY string) {
	// Per-panel vertical bounds over both coordinates.
	minV, maxV := traj[0].X, traj[0].X
	for _, p := range traj {
		for _, v := range []float64{p.X, p.Y} {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}

	tMin, tMax := times[0], times[len(times)-1]
	rangeT := tMax - tMin
	if rangeT == 0 {
		rangeT = 1
	}

	margin := float64(height) * 0.15
	toPx := func(t, v float64) (float64, float64) {
		x := (t - tMin) / rangeT * float64(width)
		y := float64(top) + float64(height) - margin - (v-minV)/rangeV*(float64(height)-2*margin)
		return x, y
	}

	curve := func(color string, value func(gravity.Vec2) float64) {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1" d="M`, color))
		for j, p := range traj {
			x, y := toPx(times[j], value(p))
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	curve(colX, func(p gravity.Vec2) float64 { return p.X })
	curve(colY, func(p gravity.Vec2) float64 { return p.Y })

	sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="#cccccc" font-family="monospace" font-size="12">%s</text>
`, top+16, label))
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%d" x2="%d" y2="%d" stroke="#333333" stroke-width="1"/>
`, top+height, width, top+height))
}
