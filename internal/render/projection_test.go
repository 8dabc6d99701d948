package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
)

func testBodies() []body.Body {
	return []body.Body{
		body.New(5.972e24, r3.Vec{}, r3.Vec{}),
		body.New(7.348e22, r3.Vec{X: 3.844e8, Y: 1e7, Z: -2e7}, r3.Vec{}),
	}
}

func TestProjectionWritesFrames(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProjection(dir, "xy", "xz", "yz")
	if err != nil {
		t.Fatalf("new projection failed: %v", err)
	}

	p.OnSnapshot(10, testBodies())

	if p.Err() != nil {
		t.Fatalf("unexpected render error: %v", p.Err())
	}

	for _, plane := range []string{"xy", "xz", "yz"} {
		name := filepath.Join(dir, plane+"_proj_0010.png")
		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("expected frame %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %s is not a valid PNG: %v", name, err)
		}
		if img.Bounds().Dx() != frameWidth || img.Bounds().Dy() != frameHeight {
			t.Errorf("frame %s has size %v", name, img.Bounds())
		}
	}
}

func TestProjectionSingleBody(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProjection(dir, "xy")
	if err != nil {
		t.Fatal(err)
	}

	// Degenerate bounds (one point) must not divide by zero.
	p.OnSnapshot(0, testBodies()[:1])
	if p.Err() != nil {
		t.Fatalf("unexpected error: %v", p.Err())
	}

	if _, err := os.Stat(filepath.Join(dir, "xy_proj_0000.png")); err != nil {
		t.Errorf("expected frame: %v", err)
	}
}

func TestProjectionUnknownPlane(t *testing.T) {
	if _, err := NewProjection(t.TempDir(), "xw"); err == nil {
		t.Error("expected error for unknown plane")
	}
}
