package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 4)

	c.Set(0, 0)
	if c.grid[0][0] == 0x2800 {
		t.Error("pixel not set")
	}

	c.Clear()
	if c.grid[0][0] != 0x2800 {
		t.Error("clear did not reset the cell")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(10, 4)

	// Must not panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(10*2, 0)
	c.Set(0, 4*4)
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(10, 4)
	s := c.String()

	lines := strings.Split(s, "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 10 {
			t.Errorf("line %d: expected 10 cells, got %d", i, len([]rune(line)))
		}
	}
}
