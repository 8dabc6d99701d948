package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	canvasWidth     = 64
	canvasHeight    = 20
	historyCapacity = 400
)

type TickMsg time.Time

// Model is the bubbletea model for the live terminal view: it advances
// the simulation a batch of steps per frame and draws an xy scatter of
// the bodies next to the running energy history.
type Model struct {
	bodies  []body.Body
	initial []body.Body
	cfg     sim.Config

	step    int
	paused  bool
	done    bool
	fps     int
	batch   int
	canvas  *Canvas
	energy0 float64
	history []float64
}

func NewModel(bodies []body.Body, cfg sim.Config, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	batch := cfg.Steps / 600
	if batch < 1 {
		batch = 1
	}

	physics.Accelerations(bodies, cfg.Softening)

	return Model{
		bodies:  bodies,
		initial: body.CloneSet(bodies),
		cfg:     cfg,
		fps:     fps,
		batch:   batch,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		energy0: physics.Energy(bodies, cfg.Softening),
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.bodies = body.CloneSet(m.initial)
			physics.Accelerations(m.bodies, m.cfg.Softening)
			m.step = 0
			m.done = false
			m.history = m.history[:0]
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			for i := 0; i < m.batch && m.step < m.cfg.Steps; i++ {
				physics.Step(m.bodies, m.cfg.Dt, m.cfg.Softening)
				m.step++
			}
			m.history = append(m.history, physics.Energy(m.bodies, m.cfg.Softening))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
			if m.step >= m.cfg.Steps {
				m.done = true
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	m.drawBodies()

	status := "running"
	switch {
	case m.done:
		status = "done"
	case m.paused:
		status = "paused"
	}

	drift := 0.0
	if len(m.history) > 0 && m.energy0 != 0 {
		drift = math.Abs(m.history[len(m.history)-1]-m.energy0) / math.Abs(m.energy0)
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("gravsim live"),
		row("status", status),
		row("bodies", fmt.Sprintf("%d", len(m.bodies))),
		row("step", fmt.Sprintf("%d / %d", m.step, m.cfg.Steps)),
		row("time", fmt.Sprintf("%.3e s", float64(m.step)*m.cfg.Dt)),
		row("dt", fmt.Sprintf("%.3e s", m.cfg.Dt)),
		row("softening", fmt.Sprintf("%.3e m", m.cfg.Softening)),
		row("energy drift", fmt.Sprintf("%.3e", drift)),
	)

	graph := ""
	if len(m.history) >= 2 {
		graph = graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(7),
			asciigraph.Width(36),
			asciigraph.Caption("total energy"),
		))
	}

	right := statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats, graph))
	left := canvasStyle.Render(m.canvas.String())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		helpStyle.Render("space pause · r reset · q quit"),
	)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// drawBodies scatters the xy projection onto the braille canvas with
// bounds fitted to the current frame.
func (m Model) drawBodies() {
	m.canvas.Clear()
	if len(m.bodies) == 0 {
		return
	}

	minX, maxX := m.bodies[0].Pos.X, m.bodies[0].Pos.X
	minY, maxY := m.bodies[0].Pos.Y, m.bodies[0].Pos.Y
	for i := range m.bodies {
		p := m.bodies[i].Pos
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	subW := float64(canvasWidth*2 - 1)
	subH := float64(canvasHeight*4 - 1)
	for i := range m.bodies {
		p := m.bodies[i].Pos
		x := int((p.X - minX) / spanX * subW)
		y := int((maxY - p.Y) / spanY * subH)
		m.canvas.Set(x, y)
	}
}

// Run drives the live view until the user quits; the body slice is
// advanced in place.
func Run(bodies []body.Body, cfg sim.Config, fps int) error {
	_, err := tea.NewProgram(NewModel(bodies, cfg, fps)).Run()
	return err
}
