package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/san-kum/gravsim/internal/body"
)

const (
	frameWidth  = 1024
	frameHeight = 768
	margin      = 32
	dotRadius   = 1
)

var (
	background = color.RGBA{0, 0, 0, 255}
	foreground = color.RGBA{255, 255, 255, 255}
)

// planeCoords extracts the two projected coordinates for a plane name.
var planeCoords = map[string]func(b body.Body) (float64, float64){
	"xy": func(b body.Body) (float64, float64) { return b.Pos.X, b.Pos.Y },
	"xz": func(b body.Body) (float64, float64) { return b.Pos.X, b.Pos.Z },
	"yz": func(b body.Body) (float64, float64) { return b.Pos.Y, b.Pos.Z },
}

// Projection renders density projections of the body set onto one or
// more coordinate planes, one PNG per plane per snapshot, into dir.
// It is a sim.Observer; register it at the plot cadence.
type Projection struct {
	dir    string
	planes []string
	err    error
}

// NewProjection creates the output directory and validates plane names
// ("xy", "xz", "yz").
func NewProjection(dir string, planes ...string) (*Projection, error) {
	for _, p := range planes {
		if _, ok := planeCoords[p]; !ok {
			return nil, fmt.Errorf("unknown projection plane: %s", p)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Projection{dir: dir, planes: planes}, nil
}

// OnSnapshot writes one frame per plane. Observers cannot return errors
// to the loop, so the first failure is kept and surfaced through Err.
func (p *Projection) OnSnapshot(step int, bodies []body.Body) {
	for _, plane := range p.planes {
		name := filepath.Join(p.dir, fmt.Sprintf("%s_proj_%04d.png", plane, step))
		if err := writeFrame(name, bodies, planeCoords[plane]); err != nil && p.err == nil {
			p.err = fmt.Errorf("frame %s: %w", name, err)
		}
	}
}

// Err reports the first rendering failure, if any. Check it after the run.
func (p *Projection) Err() error { return p.err }

func writeFrame(name string, bodies []body.Body, coords func(body.Body) (float64, float64)) error {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			img.SetRGBA(x, y, background)
		}
	}

	minX, maxX, minY, maxY := bounds(bodies, coords)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	for _, b := range bodies {
		cx, cy := coords(b)
		px := margin + int((cx-minX)/spanX*float64(frameWidth-2*margin))
		py := margin + int((maxY-cy)/spanY*float64(frameHeight-2*margin))
		dot(img, px, py)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func bounds(bodies []body.Body, coords func(body.Body) (float64, float64)) (minX, maxX, minY, maxY float64) {
	for i, b := range bodies {
		x, y := coords(b)
		if i == 0 {
			minX, maxX, minY, maxY = x, x, y, y
			continue
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return
}

func dot(img *image.RGBA, cx, cy int) {
	for dy := -dotRadius; dy <= dotRadius; dy++ {
		for dx := -dotRadius; dx <= dotRadius; dx++ {
			x, y := cx+dx, cy+dy
			if x >= 0 && x < frameWidth && y >= 0 && y < frameHeight {
				img.SetRGBA(x, y, foreground)
			}
		}
	}
}
