package main

import (
	"fmt"
	"time"

	"github.com/san-kum/gravsim/internal/body"
)

// progressMeter prints a single updating progress line during a run.
type progressMeter struct {
	total int
	start time.Time
}

func newProgressMeter(total int) *progressMeter {
	return &progressMeter{total: total, start: time.Now()}
}

func (p *progressMeter) OnSnapshot(step int, bodies []body.Body) {
	done := step + 1
	elapsed := time.Since(p.start)
	perStep := elapsed / time.Duration(done)
	remaining := (perStep * time.Duration(p.total-done)).Truncate(time.Second)

	fmt.Printf("%5.1f%%  step %d/%d  %s/step  %s remaining   \r",
		100*float64(done)/float64(p.total),
		done, p.total,
		perStep.Truncate(time.Microsecond),
		remaining)
}
