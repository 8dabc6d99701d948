// Package gui provides an interactive ebiten viewer: the simulation
// advances in real time with the bodies drawn as an autoscaled xy
// projection. Pause, single-step and reset are bound to keys.
package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	padding      = 40.0
)

var (
	backgroundColor = color.RGBA{8, 8, 16, 255}
	bodyColor       = color.RGBA{235, 235, 255, 255}
)

// Viewer implements ebiten.Game over a body set.
type Viewer struct {
	bodies  []body.Body
	initial []body.Body
	cfg     sim.Config

	step   int
	paused bool
	batch  int

	scale   float64
	offsetX float64
	offsetY float64
}

func NewViewer(bodies []body.Body, cfg sim.Config) *Viewer {
	batch := cfg.Steps / 1800 // finish in about a minute at 60 fps
	if batch < 1 {
		batch = 1
	}

	physics.Accelerations(bodies, cfg.Softening)

	return &Viewer{
		bodies:  bodies,
		initial: body.CloneSet(bodies),
		cfg:     cfg,
		batch:   batch,
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && v.paused && v.step < v.cfg.Steps {
		physics.Step(v.bodies, v.cfg.Dt, v.cfg.Softening)
		v.step++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.bodies = body.CloneSet(v.initial)
		physics.Accelerations(v.bodies, v.cfg.Softening)
		v.step = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if !v.paused {
		for i := 0; i < v.batch && v.step < v.cfg.Steps; i++ {
			physics.Step(v.bodies, v.cfg.Dt, v.cfg.Softening)
			v.step++
		}
	}

	v.fitTransform()
	return nil
}

// fitTransform rescales so every body's xy projection stays on screen.
func (v *Viewer) fitTransform() {
	if len(v.bodies) == 0 {
		v.scale = 1
		v.offsetX = screenWidth / 2
		v.offsetY = screenHeight / 2
		return
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i := range v.bodies {
		p := v.bodies[i].Pos
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

	sx := (screenWidth - 2*padding) / spanX
	sy := (screenHeight - 2*padding) / spanY
	v.scale = math.Min(sx, sy)
	v.offsetX = screenWidth/2 - v.scale*(minX+spanX/2)
	v.offsetY = screenHeight/2 + v.scale*(minY+spanY/2)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i := range v.bodies {
		p := v.bodies[i].Pos
		x := float32(v.offsetX + v.scale*p.X)
		y := float32(v.offsetY - v.scale*p.Y)
		vector.DrawFilledCircle(screen, x, y, 2, bodyColor, true)
	}

	status := "running"
	if v.paused {
		status = "paused"
	}
	if v.step >= v.cfg.Steps {
		status = "done"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  step %d/%d  t=%.3e s  bodies=%d\n[space] pause  [n] step  [r] reset  [q] quit",
		status, v.step, v.cfg.Steps, float64(v.step)*v.cfg.Dt, len(v.bodies)))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run opens the viewer window and blocks until it is closed.
func Run(bodies []body.Body, cfg sim.Config) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("gravsim")
	return ebiten.RunGame(NewViewer(bodies, cfg))
}
