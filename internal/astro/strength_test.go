package astro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kundli.app/kundli/internal/astro"
)

var _ = Describe("House strength", func() {
	strengthOf := func(chart *astro.Chart, house int) astro.HouseStrength {
		return chart.Strengths[house-1]
	}

	// Aries ascendant. Sun exalted in house 1, Rahu in house 7, Ketu
	// derived into house 1. Hand-computed expectations:
	//   house 1: Sun 1.0 (neutral exalted) + Ketu -0.8 → avg 0.1, neutral
	//   house 7: Rahu -0.8 resident + Sun 7th aspect 0 → avg -0.4, weak
	//   houses 3/11 (Rahu aspects), 5/9 (Ketu aspects): -0.3 each, weak
	//   remaining houses: no contributions, 0, neutral
	var chart *astro.Chart

	BeforeEach(func() {
		var err error
		chart, err = astro.NewEngine().Build(astro.ChartD1, 0, []astro.BodyPosition{
			{Body: astro.Sun, Longitude: 10, Speed: 1.0},
			{Body: astro.Rahu, Longitude: 190, Speed: -0.05},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("averages resident and incoming aspect contributions", func() {
		first := strengthOf(chart, 1)
		Expect(first.Average).To(BeNumerically("~", 0.1, 1e-9))
		Expect(first.Bucket).To(Equal(astro.BucketNeutral))

		seventh := strengthOf(chart, 7)
		Expect(seventh.Average).To(BeNumerically("~", -0.4, 1e-9))
		Expect(seventh.Bucket).To(Equal(astro.BucketWeak))
	})

	It("counts neutral aspects toward the average without value", func() {
		// The Sun's 7th aspect is the second contribution diluting
		// Rahu's -0.8 to -0.4.
		seventh := strengthOf(chart, 7)
		Expect(seventh.Average).To(BeNumerically("~", -0.4, 1e-9))
	})

	It("scores pure node aspects as weak", func() {
		for _, house := range []int{3, 5, 9, 11} {
			hs := strengthOf(chart, house)
			Expect(hs.Average).To(BeNumerically("~", -0.3, 1e-9), "house %d", house)
			Expect(hs.Bucket).To(Equal(astro.BucketWeak))
		}
	})

	It("leaves untouched houses at zero, neutral", func() {
		for _, house := range []int{2, 4, 6, 8, 10, 12} {
			hs := strengthOf(chart, house)
			Expect(hs.Average).To(BeZero(), "house %d", house)
			Expect(hs.Bucket).To(Equal(astro.BucketNeutral))
		}
	})

	It("dampens combust and retrograde residents", func() {
		// Jupiter combust and retrograde in Gemini: 0.8 × 0.5 × 0.8 = 0.32.
		damped, err := astro.NewEngine().Build(astro.ChartD1, 60, []astro.BodyPosition{
			{Body: astro.Sun, Longitude: 65, Speed: 1.0},
			{Body: astro.Jupiter, Longitude: 70, Speed: -0.1},
			{Body: astro.Rahu, Longitude: 300, Speed: -0.05},
		})
		Expect(err).NotTo(HaveOccurred())

		// House 1 holds Sun (0.2 plain neutral) and Jupiter (0.32),
		// plus no incoming aspects: avg 0.26 → strong.
		first := strengthOf(damped, 1)
		Expect(first.Average).To(BeNumerically("~", 0.26, 1e-9))
		Expect(first.Bucket).To(Equal(astro.BucketStrong))
	})
})

var _ = Describe("DefaultStrengthPolicy", func() {
	It("keeps the parity constants", func() {
		p := astro.DefaultStrengthPolicy()
		Expect(p.Benefic).To(Equal(astro.BaseValues{Exalted: 1.5, Plain: 0.8, Debilitated: -0.5}))
		Expect(p.Malefic).To(Equal(astro.BaseValues{Exalted: 0.5, Plain: -0.8, Debilitated: -1.5}))
		Expect(p.Neutral).To(Equal(astro.BaseValues{Exalted: 1.0, Plain: 0.2, Debilitated: -1.0}))
		Expect(p.CombustFactor).To(Equal(0.5))
		Expect(p.RetrogradeFactor).To(Equal(0.8))
		Expect(p.BeneficAspect).To(Equal(0.3))
		Expect(p.MaleficAspect).To(Equal(-0.3))
		Expect(p.StrongAt).To(Equal(0.2))
		Expect(p.WeakAt).To(Equal(-0.2))
	})
})
