package cooling_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermdecay/internal/cooling"
)

const tol = 1e-9

var _ = Describe("Evaluate", func() {
	coffee := cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 60, Points: 100}

	It("returns exactly n samples", func() {
		for _, n := range []int{2, 3, 10, 100, 1001} {
			p := coffee
			p.Points = n
			samples, err := cooling.Evaluate(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(n))
		}
	})

	It("spans [0, t_max] with uniform spacing", func() {
		samples, err := cooling.Evaluate(coffee)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples[0].Time).To(Equal(0.0))
		Expect(samples[len(samples)-1].Time).To(BeNumerically("~", coffee.TMax, tol))

		step := coffee.TMax / float64(coffee.Points-1)
		for i := 1; i < len(samples); i++ {
			Expect(samples[i].Time - samples[i-1].Time).To(BeNumerically("~", step, tol))
		}
	})

	It("matches the hot coffee scenario", func() {
		samples, err := cooling.Evaluate(coffee)
		Expect(err).NotTo(HaveOccurred())
		Expect(samples[0].Temp).To(BeNumerically("~", 90.0, tol))

		last := samples[len(samples)-1]
		Expect(last.Time).To(BeNumerically("~", 60.0, tol))
		Expect(last.Temp).To(BeNumerically("~", 25+65*math.Exp(-4.2), tol))
	})

	It("keeps the initial temperature when k is zero", func() {
		p := coffee
		p.K = 0
		samples, err := cooling.Evaluate(p)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range samples {
			Expect(s.Temp).To(BeNumerically("~", p.T0, tol))
		}
	})

	It("stays at ambient when starting at ambient", func() {
		p := cooling.Params{T0: 21, Ambient: 21, K: 0.5, TMax: 10, Points: 50}
		samples, err := cooling.Evaluate(p)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range samples {
			Expect(s.Temp).To(BeNumerically("~", 21.0, tol))
		}
	})

	DescribeTable("is strictly monotonic for k > 0",
		func(p cooling.Params, decreasing bool) {
			samples, err := cooling.Evaluate(p)
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(samples); i++ {
				if decreasing {
					Expect(samples[i].Temp).To(BeNumerically("<", samples[i-1].Temp))
				} else {
					Expect(samples[i].Temp).To(BeNumerically(">", samples[i-1].Temp))
				}
			}
		},
		Entry("hot object cools", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 60, Points: 100}, true),
		Entry("cold object warms", cooling.Params{T0: 4, Ambient: 30, K: 0.05, TMax: 120, Points: 100}, false),
		Entry("quenching", cooling.Params{T0: 800, Ambient: 20, K: 0.2, TMax: 30, Points: 200}, true),
	)

	It("approaches ambient", func() {
		for _, p := range []cooling.Params{
			coffee,
			{T0: 4, Ambient: 30, K: 0.05, TMax: 120, Points: 100},
			{T0: 37, Ambient: 15, K: 0.03, TMax: 180, Points: 200},
		} {
			samples, err := cooling.Evaluate(p)
			Expect(err).NotTo(HaveOccurred())
			first := math.Abs(samples[0].Temp - p.Ambient)
			last := math.Abs(samples[len(samples)-1].Temp - p.Ambient)
			Expect(last).To(BeNumerically("<", first))
		}
	})

	It("lets exp overflow propagate", func() {
		p := cooling.Params{T0: 100, Ambient: 0, K: -1000, TMax: 10, Points: 2}
		samples, err := cooling.Evaluate(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(samples[1].Temp, 1)).To(BeTrue())
	})

	DescribeTable("rejects invalid parameters",
		func(p cooling.Params, field string) {
			samples, err := cooling.Evaluate(p)
			Expect(samples).To(BeNil())
			Expect(errors.Is(err, cooling.ErrInvalidParameter)).To(BeTrue())

			var perr *cooling.ParamError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Field).To(Equal(field))
		},
		Entry("one sample", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 60, Points: 1}, cooling.FieldPoints),
		Entry("no samples", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 60, Points: 0}, cooling.FieldPoints),
		Entry("zero time bound", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: 0, Points: 100}, cooling.FieldTMax),
		Entry("negative time bound", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: -5, Points: 100}, cooling.FieldTMax),
		Entry("NaN time bound", cooling.Params{T0: 90, Ambient: 25, K: 0.07, TMax: math.NaN(), Points: 100}, cooling.FieldTMax),
		Entry("infinite time bound", cooling.Params{T0: 90, Ambient: 25, K: 0.1, TMax: math.Inf(1), Points: 3}, cooling.FieldTMax),
	)
})

var _ = Describe("Compute", func() {
	It("keeps the parameters next to the samples", func() {
		p := cooling.Params{T0: 37, Ambient: 15, K: 0.03, TMax: 180, Points: 200}
		c, err := cooling.Compute(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Params).To(Equal(p))
		Expect(c.Times()).To(HaveLen(200))
		Expect(c.Temps()).To(HaveLen(200))
		Expect(c.Temps()[0]).To(BeNumerically("~", 37.0, tol))
	})

	It("returns no curve on bad input", func() {
		c, err := cooling.Compute(cooling.Params{TMax: 1, Points: 1})
		Expect(c).To(BeNil())
		Expect(err).To(MatchError(cooling.ErrInvalidParameter))
	})
})
