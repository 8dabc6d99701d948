package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/gravsim/internal/body"
	"github.com/san-kum/gravsim/internal/sim"
)

type recordingObserver struct {
	steps     []int
	snapshots [][]body.Body
}

func (r *recordingObserver) OnSnapshot(step int, bodies []body.Body) {
	r.steps = append(r.steps, step)
	r.snapshots = append(r.snapshots, bodies)
}

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string                    { return "count" }
func (c *countingMetric) Observe(step int, _ []body.Body) { c.count++ }
func (c *countingMetric) Value() float64                  { return float64(c.count) }
func (c *countingMetric) Reset()                          { c.count = 0 }

func twoBodies() []body.Body {
	return []body.Body{
		body.New(5.972e24, r3.Vec{}, r3.Vec{}),
		body.New(7.348e22, r3.Vec{X: 3.844e8}, r3.Vec{}),
	}
}

var _ = Describe("Simulator", func() {
	var cfg sim.Config

	BeforeEach(func() {
		cfg = sim.Config{Dt: 1e3, Softening: 1e3, Steps: 10}
	})

	It("runs exactly the configured number of steps", func() {
		s := sim.New(twoBodies())
		result, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(Equal(10))
	})

	It("treats zero steps as a completed empty run", func() {
		s := sim.New(twoBodies())
		result, err := s.Run(context.Background(), sim.Config{Dt: 1e3, Softening: 1e3, Steps: 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(BeZero())
	})

	It("establishes accelerations before the first step", func() {
		s := sim.New(twoBodies())
		_, err := s.Run(context.Background(), sim.Config{Dt: 1e3, Softening: 1e3, Steps: 0})
		Expect(err).NotTo(HaveOccurred())

		snap := s.Snapshot()
		Expect(snap[0].Acc.X).To(BeNumerically(">", 0))
		Expect(snap[1].Acc.X).To(BeNumerically("<", 0))
	})

	It("notifies observers at their cadence", func() {
		s := sim.New(twoBodies())
		obs := &recordingObserver{}
		s.AddObserver(obs, 3)

		_, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.steps).To(Equal([]int{0, 3, 6, 9}))
	})

	It("ignores observers with a non-positive cadence", func() {
		s := sim.New(twoBodies())
		obs := &recordingObserver{}
		s.AddObserver(obs, 0)

		_, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.steps).To(BeEmpty())
	})

	It("hands observers snapshots the loop never reads back", func() {
		s := sim.New(twoBodies())
		obs := &recordingObserver{}
		s.AddObserver(obs, 1)

		_, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		obs.snapshots[0][0].Pos = r3.Vec{X: 1e99}
		final := s.Snapshot()
		Expect(final[0].Pos.X).NotTo(Equal(1e99))
	})

	It("observes metrics every step and reports them in the result", func() {
		s := sim.New(twoBodies())
		m := &countingMetric{}
		s.AddMetric(m)

		result, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.count).To(Equal(10))
		Expect(result.Metrics).To(HaveKeyWithValue("count", 10.0))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := sim.New(twoBodies())
		result, err := s.Run(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.StepsTaken).To(BeZero())
	})

	It("keeps the body count and masses constant across a run", func() {
		s := sim.New(twoBodies())
		before := s.Snapshot()

		_, err := s.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		after := s.Snapshot()
		Expect(after).To(HaveLen(len(before)))
		for i := range after {
			Expect(after[i].Mass).To(Equal(before[i].Mass))
		}
	})
})
