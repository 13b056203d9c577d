package animate_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/expr"
)

func runToEnd(s *animate.Session) []animate.State {
	var states []animate.State
	for i := 0; i < s.MaxSteps()+10 && s.Status() != animate.Finished; i++ {
		states = append(states, s.Step())
	}
	return states
}

var _ = Describe("Session", func() {
	var one expr.Func

	BeforeEach(func() {
		one = expr.MustParse("1")
	})

	Describe("New", func() {
		DescribeTable("rejects bad input",
			func(a, b, step float64, want error) {
				_, err := animate.New(one, a, b, step)
				Expect(err).To(MatchError(want))
			},
			Entry("a == b", 1.0, 1.0, 0.1, animate.ErrInvalidRange),
			Entry("a > b", 2.0, 1.0, 0.1, animate.ErrInvalidRange),
			Entry("nan bound", math.NaN(), 1.0, 0.1, animate.ErrInvalidRange),
			Entry("zero step", 0.0, 1.0, 0.0, animate.ErrInvalidStep),
			Entry("negative step", 0.0, 1.0, -0.1, animate.ErrInvalidStep),
			Entry("infinite step", 0.0, 1.0, math.Inf(1), animate.ErrInvalidStep),
		)

		It("rejects a nil function", func() {
			_, err := animate.New(nil, 0, 1, 0.1)
			Expect(err).To(MatchError(animate.ErrNilFunc))
		})

		It("starts running at a with no area", func() {
			s, err := animate.New(one, 0.5, 3.5, 0.02)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Status()).To(Equal(animate.Running))
			st := s.State()
			Expect(st.CurrentX).To(Equal(0.5))
			Expect(st.AccumulatedArea).To(BeZero())
			Expect(st.Paused).To(BeFalse())
			Expect(st.YOK).To(BeTrue())
			Expect(st.Y).To(Equal(1.0))
		})

		It("assigns distinct ids", func() {
			s1, _ := animate.New(one, 0, 1, 0.1)
			s2, _ := animate.New(one, 0, 1, 0.1)
			Expect(s1.ID()).NotTo(BeEmpty())
			Expect(s1.ID()).NotTo(Equal(s2.ID()))
		})
	})

	Describe("Step", func() {
		It("adds f(x) times the step width", func() {
			s, _ := animate.New(expr.MustParse("2*x"), 1, 2, 0.25)
			st := s.Step()
			Expect(st.CurrentX).To(Equal(1.25))
			Expect(st.AccumulatedArea).To(BeNumerically("~", 0.5, 1e-12))
			Expect(st.Steps).To(Equal(1))
			Expect(st.Y).To(BeNumerically("~", 2.5, 1e-12))
		})

		It("clamps the final partial step to b", func() {
			s, _ := animate.New(one, 0, 1, 0.3)
			Expect(s.MaxSteps()).To(Equal(4))
			states := runToEnd(s)
			Expect(states).To(HaveLen(4))
			last := states[len(states)-1]
			Expect(last.CurrentX).To(Equal(1.0))
			Expect(last.AccumulatedArea).To(BeNumerically("~", 1.0, 1e-12))
			Expect(s.Status()).To(Equal(animate.Finished))
		})

		It("finishes within ceil((b-a)/step) steps", func() {
			s, _ := animate.New(expr.MustParse("0.5*sin(x)+1"), 0.5, 3.5, 0.02)
			states := runToEnd(s)
			Expect(len(states)).To(BeNumerically("<=", int(math.Ceil(3.0/0.02))))
			Expect(s.Status()).To(Equal(animate.Finished))
			Expect(s.State().CurrentX).To(Equal(3.5))

			exact := 0.5*(math.Cos(0.5)-math.Cos(3.5)) + 3
			Expect(s.State().AccumulatedArea).To(BeNumerically("~", exact, 1e-2))
		})

		It("never decreases the area for a non-negative integrand", func() {
			s, _ := animate.New(expr.MustParse("x^2"), -1, 2, 0.07)
			prev := 0.0
			for _, st := range runToEnd(s) {
				Expect(st.AccumulatedArea).To(BeNumerically(">=", prev))
				Expect(st.CurrentX).To(BeNumerically("<=", 2.0))
				prev = st.AccumulatedArea
			}
		})

		It("skips contributions where f is undefined", func() {
			s, _ := animate.New(expr.MustParse("1/x"), -1, 1, 0.5)
			runToEnd(s)
			st := s.State()
			Expect(st.Skipped).To(Equal(1))
			Expect(math.IsNaN(st.AccumulatedArea)).To(BeFalse())
			Expect(st.AccumulatedArea).To(BeNumerically("~", -0.5, 1e-12))
		})

		It("is a no-op once finished", func() {
			s, _ := animate.New(one, 0, 1, 0.5)
			runToEnd(s)
			before := s.State()
			Expect(s.Step()).To(Equal(before))
			Expect(s.Status()).To(Equal(animate.Finished))
		})
	})

	Describe("Pause and Resume", func() {
		var s *animate.Session

		BeforeEach(func() {
			s, _ = animate.New(one, 0, 1, 0.1)
			s.Step()
		})

		It("freezes progress while paused", func() {
			Expect(s.Pause()).To(BeTrue())
			before := s.State()
			Expect(before.Paused).To(BeTrue())
			for i := 0; i < 5; i++ {
				Expect(s.Step()).To(Equal(before))
			}
			Expect(s.Status()).To(Equal(animate.Paused))
		})

		It("continues from where it stopped", func() {
			s.Pause()
			x := s.State().CurrentX
			Expect(s.Resume()).To(BeTrue())
			Expect(s.Step().CurrentX).To(BeNumerically(">", x))
		})

		It("ignores invalid transitions", func() {
			Expect(s.Resume()).To(BeFalse())
			s.Pause()
			Expect(s.Pause()).To(BeFalse())
			runToEnd(s)
			Expect(s.Status()).To(Equal(animate.Paused))

			s.Resume()
			runToEnd(s)
			Expect(s.Pause()).To(BeFalse())
			Expect(s.Resume()).To(BeFalse())
			Expect(s.Status()).To(Equal(animate.Finished))
		})

		It("toggles between running and paused", func() {
			Expect(s.Toggle()).To(BeTrue())
			Expect(s.Status()).To(Equal(animate.Paused))
			Expect(s.Toggle()).To(BeTrue())
			Expect(s.Status()).To(Equal(animate.Running))
		})
	})

	Describe("Restart", func() {
		It("returns to the initial state from any status", func() {
			s, _ := animate.New(one, 0, 1, 0.25)
			initial := s.State()

			runToEnd(s)
			s.Restart()
			Expect(s.Status()).To(Equal(animate.Running))
			Expect(s.State()).To(Equal(initial))

			s.Step()
			s.Pause()
			s.Restart()
			Expect(s.Status()).To(Equal(animate.Running))
			Expect(s.State()).To(Equal(initial))
		})

		It("is idempotent", func() {
			s, _ := animate.New(one, 0, 1, 0.25)
			s.Step()
			s.Restart()
			once := s.State()
			s.Restart()
			Expect(s.State()).To(Equal(once))
		})
	})

	Describe("frame callback", func() {
		It("fires after every tick, including ignored ones", func() {
			var frames []animate.Frame
			s, _ := animate.New(one, 0, 1, 0.5, animate.WithFrameFunc(func(f animate.Frame) {
				frames = append(frames, f)
			}))

			s.Step()
			s.Pause()
			s.Step()
			s.Resume()
			s.Step()
			s.Step()
			s.Restart()

			Expect(frames).To(HaveLen(5))
			Expect(frames[1].Status).To(Equal(animate.Paused))
			Expect(frames[2].Status).To(Equal(animate.Finished))
			Expect(frames[2].CurrentX).To(Equal(1.0))
			Expect(frames[4].Status).To(Equal(animate.Running))
			Expect(frames[4].A).To(Equal(0.0))
			Expect(frames[4].B).To(Equal(1.0))
		})
	})
})
