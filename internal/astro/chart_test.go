package astro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kundli.app/kundli/internal/astro"
)

var _ = Describe("Engine", func() {
	var engine *astro.Engine

	BeforeEach(func() {
		engine = astro.NewEngine()
	})

	// 125° = Leo 5°. Houses rotate from the ascendant: Leo is house 1,
	// Aries house 9, Taurus house 10, Capricorn house 6, Cancer house 12.
	positions := []astro.BodyPosition{
		{Body: astro.Sun, Longitude: 10, Speed: 1.0},
		{Body: astro.Moon, Longitude: 33, Speed: 13.1},
		{Body: astro.Mars, Longitude: 280, Speed: -0.2},
		{Body: astro.Mercury, Longitude: 12, Speed: 1.5},
		{Body: astro.Rahu, Longitude: 100, Speed: -0.05},
	}

	placementOf := func(chart *astro.Chart, b astro.Body) astro.Placement {
		for _, pl := range chart.Placements {
			if pl.Body == b {
				return pl
			}
		}
		Fail("placement not found")
		return astro.Placement{}
	}

	Describe("Build", func() {
		It("anchors the house rotation at the ascendant sign", func() {
			chart, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			Expect(chart.Ascendant).To(Equal(astro.Leo))
			Expect(chart.AscDegree).To(BeNumerically("~", 5.0, 1e-9))
			Expect(chart.HouseSigns[0]).To(Equal(astro.Leo))
			Expect(chart.HouseSigns[11]).To(Equal(astro.Cancer))

			seen := map[astro.Sign]bool{}
			for _, s := range chart.HouseSigns {
				seen[s] = true
			}
			Expect(seen).To(HaveLen(12), "each sign maps to exactly one house")
		})

		It("derives Ketu opposite Rahu with zero speed", func() {
			chart, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			ketu := placementOf(chart, astro.Ketu)
			Expect(ketu.Longitude).To(BeNumerically("~", 280.0, 1e-9))
			Expect(ketu.Sign).To(Equal(astro.Capricorn))
			Expect(ketu.House).To(Equal(6))
			Expect(ketu.Status.Has(astro.StatusRetrograde)).To(BeFalse())
		})

		It("flags exaltation with peak inside the 5 degree orb", func() {
			chart, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			sun := placementOf(chart, astro.Sun)
			Expect(sun.Sign).To(Equal(astro.Aries))
			Expect(sun.House).To(Equal(9))
			Expect(sun.Status.Has(astro.StatusExalted)).To(BeTrue())
			Expect(sun.Status.Has(astro.StatusPeak)).To(BeTrue())
			Expect(sun.Status.Has(astro.StatusDebilitated)).To(BeFalse())

			// Mars at Capricorn 10° is exalted but 18° from the 28° point.
			mars := placementOf(chart, astro.Mars)
			Expect(mars.Status.Has(astro.StatusExalted)).To(BeTrue())
			Expect(mars.Status.Has(astro.StatusPeak)).To(BeFalse())
			Expect(mars.Status.Has(astro.StatusRetrograde)).To(BeTrue())
		})

		It("flags debilitation with peak at the opposite point", func() {
			chart, err := engine.Build(astro.ChartD1, 0, []astro.BodyPosition{
				{Body: astro.Sun, Longitude: 190, Speed: 1.0},
				{Body: astro.Rahu, Longitude: 300, Speed: -0.05},
			})
			Expect(err).NotTo(HaveOccurred())

			sun := placementOf(chart, astro.Sun)
			Expect(sun.Sign).To(Equal(astro.Libra))
			Expect(sun.Status.Has(astro.StatusDebilitated)).To(BeTrue())
			Expect(sun.Status.Has(astro.StatusPeak)).To(BeTrue())
			Expect(sun.Status.Has(astro.StatusExalted)).To(BeFalse())
		})

		It("marks bodies inside their combustion orb, never the Sun", func() {
			chart, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			mercury := placementOf(chart, astro.Mercury)
			Expect(mercury.Status.Has(astro.StatusCombust)).To(BeTrue(), "2° from the Sun, orb 14°")

			moon := placementOf(chart, astro.Moon)
			Expect(moon.Status.Has(astro.StatusCombust)).To(BeFalse(), "23° from the Sun, orb 12°")

			sun := placementOf(chart, astro.Sun)
			Expect(sun.Status.Has(astro.StatusCombust)).To(BeFalse())
		})

		It("resolves dignity from the sign ruler, N/A for the nodes", func() {
			chart, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			Expect(placementOf(chart, astro.Sun).Dignity).To(Equal(astro.DignityFriend), "Mars rules Aries")
			Expect(placementOf(chart, astro.Moon).Dignity).To(Equal(astro.DignityNeutral), "Venus rules Taurus")
			Expect(placementOf(chart, astro.Rahu).Dignity).To(Equal(astro.DignityNone))
			Expect(placementOf(chart, astro.Ketu).Dignity).To(Equal(astro.DignityNone))
		})

		It("is deterministic for identical input", func() {
			first, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())
			second, err := engine.Build(astro.ChartD1, 125, positions)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("rejects input without Rahu", func() {
			_, err := engine.Build(astro.ChartD1, 0, []astro.BodyPosition{
				{Body: astro.Sun, Longitude: 10},
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects out-of-range longitudes", func() {
			_, err := engine.Build(astro.ChartD1, 400, positions)
			Expect(err).To(HaveOccurred())

			_, err = engine.Build(astro.ChartD1, 0, []astro.BodyPosition{
				{Body: astro.Sun, Longitude: 360},
				{Body: astro.Rahu, Longitude: 100},
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("WithUniformOrb", func() {
		It("replaces the per-body combustion table", func() {
			uniform := astro.NewEngine(astro.WithUniformOrb(8))
			chart, err := uniform.Build(astro.ChartD1, 0, []astro.BodyPosition{
				{Body: astro.Sun, Longitude: 10, Speed: 1.0},
				{Body: astro.Moon, Longitude: 19, Speed: 13.1},
				{Body: astro.Rahu, Longitude: 100, Speed: -0.05},
			})
			Expect(err).NotTo(HaveOccurred())

			// 9° separation: combust under the default 12° lunar orb but
			// not under a uniform 8°.
			moon := placementOf(chart, astro.Moon)
			Expect(moon.Status.Has(astro.StatusCombust)).To(BeFalse())
		})
	})
})

var _ = Describe("Separation", func() {
	It("measures the shorter arc between longitudes", func() {
		Expect(astro.Separation(10, 350)).To(BeNumerically("~", 20.0, 1e-9))
		Expect(astro.Separation(0, 180)).To(BeNumerically("~", 180.0, 1e-9))
		Expect(astro.Separation(5, 5)).To(BeZero())
	})
})
