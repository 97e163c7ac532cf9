package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/solarsim/internal/gravity"
	"github.com/san-kum/solarsim/internal/integrators"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	trailLength  = 400
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the simulation on a timer and renders orbit trails on a
// braille canvas.
type Model struct {
	field   *gravity.Field
	stepper integrators.Stepper
	names   []string
	masses  []float64

	pos, vel         []gravity.Vec2
	initPos, initVel []gravity.Vec2

	dt            float64
	stepsPerFrame int
	fps           int

	t       float64
	step    int
	running bool
	err     error

	trails        [][]gravity.Vec2
	initialEnergy float64
}

func NewModel(field *gravity.Field, stepper integrators.Stepper, names []string, masses []float64, pos, vel []gravity.Vec2, dt float64, stepsPerFrame, fps int) Model {
	trails := make([][]gravity.Vec2, len(pos))
	for i := range trails {
		trails[i] = append(make([]gravity.Vec2, 0, trailLength), pos[i])
	}

	return Model{
		field:         field,
		stepper:       stepper,
		names:         names,
		masses:        masses,
		pos:           clonePoints(pos),
		vel:           clonePoints(vel),
		initPos:       clonePoints(pos),
		initVel:       clonePoints(vel),
		dt:            dt,
		stepsPerFrame: stepsPerFrame,
		fps:           fps,
		running:       true,
		trails:        trails,
		initialEnergy: field.Energy(pos, vel, masses),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	for i := 0; i < m.stepsPerFrame; i++ {
		newPos, newVel, err := m.stepper.Step(m.field, m.pos, m.vel, m.masses, m.dt)
		if err != nil {
			m.err = err
			m.running = false
			return
		}
		m.pos, m.vel = newPos, newVel
		m.t += m.dt
		m.step++
	}

	for i := range m.trails {
		m.trails[i] = append(m.trails[i], m.pos[i])
		if len(m.trails[i]) > trailLength {
			m.trails[i] = m.trails[i][1:]
		}
	}
}

func (m *Model) reset() {
	m.pos = clonePoints(m.initPos)
	m.vel = clonePoints(m.initVel)
	m.t = 0
	m.step = 0
	m.err = nil
	m.running = true
	for i := range m.trails {
		m.trails[i] = append(m.trails[i][:0], m.pos[i])
	}
}

func (m Model) View() string {
	canvas := PlotOrbits(m.trails, canvasWidth, canvasHeight)

	var b strings.Builder
	b.WriteString(headerStyle.Render("solarsim live"))
	b.WriteString("\n")
	b.WriteString(canvasStyle.Render(canvas.String()))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("bodies", fmt.Sprintf("%d (%s)", len(m.names), strings.Join(m.names, ", ")))
	row("integrator", m.stepper.Name())
	row("step", fmt.Sprintf("%d", m.step))
	row("time", fmt.Sprintf("%.1f days", m.t/86400))

	if m.initialEnergy != 0 {
		drift := math.Abs(m.field.Energy(m.pos, m.vel, m.masses)-m.initialEnergy) / math.Abs(m.initialEnergy)
		row("energy drift", fmt.Sprintf("%.3e", drift))
	}

	cog := gravity.Centroid(m.pos, m.masses)
	row("centroid", fmt.Sprintf("(%.3e, %.3e) m", cog.X, cog.Y))

	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunLive starts the interactive orbit view and blocks until it exits.
func RunLive(field *gravity.Field, stepper integrators.Stepper, names []string, masses []float64, pos, vel []gravity.Vec2, dt float64, stepsPerFrame, fps int) error {
	p := tea.NewProgram(NewModel(field, stepper, names, masses, pos, vel, dt, stepsPerFrame, fps))
	_, err := p.Run()
	return err
}

func clonePoints(vs []gravity.Vec2) []gravity.Vec2 {
	c := make([]gravity.Vec2, len(vs))
	copy(c, vs)
	return c
}
