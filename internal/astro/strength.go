package astro

// StrengthBucket is the qualitative house strength classification.
type StrengthBucket string

const (
	BucketStrong  StrengthBucket = "strong"
	BucketWeak    StrengthBucket = "weak"
	BucketNeutral StrengthBucket = "neutral"
)

// BaseValues holds a nature class's contribution for an exalted, plain and
// debilitated resident respectively.
type BaseValues struct {
	Exalted     float64
	Plain       float64
	Debilitated float64
}

// StrengthPolicy parameterizes the house strength heuristic. The default
// values must be kept as-is for output parity with existing consumers; a
// replacement methodology swaps the whole policy.
type StrengthPolicy struct {
	Benefic          BaseValues
	Malefic          BaseValues
	Neutral          BaseValues
	CombustFactor    float64
	RetrogradeFactor float64
	BeneficAspect    float64
	MaleficAspect    float64
	StrongAt         float64 // average at or above → strong
	WeakAt           float64 // average at or below → weak
}

// DefaultStrengthPolicy returns the parity scoring constants.
func DefaultStrengthPolicy() StrengthPolicy {
	return StrengthPolicy{
		Benefic:          BaseValues{Exalted: 1.5, Plain: 0.8, Debilitated: -0.5},
		Malefic:          BaseValues{Exalted: 0.5, Plain: -0.8, Debilitated: -1.5},
		Neutral:          BaseValues{Exalted: 1.0, Plain: 0.2, Debilitated: -1.0},
		CombustFactor:    0.5,
		RetrogradeFactor: 0.8,
		BeneficAspect:    0.3,
		MaleficAspect:    -0.3,
		StrongAt:         0.2,
		WeakAt:           -0.2,
	}
}

// HouseStrength is the aggregated influence landing on one house.
type HouseStrength struct {
	House   int
	Average float64
	Bucket  StrengthBucket
}

func (p StrengthPolicy) baseFor(pl Placement) float64 {
	var values BaseValues
	switch NatureOf(pl.Body) {
	case Benefic:
		values = p.Benefic
	case Malefic:
		values = p.Malefic
	default:
		values = p.Neutral
	}

	base := values.Plain
	if pl.Status.Has(StatusExalted) {
		base = values.Exalted
	} else if pl.Status.Has(StatusDebilitated) {
		base = values.Debilitated
	}

	if pl.Status.Has(StatusCombust) {
		base *= p.CombustFactor
	}
	if pl.Status.Has(StatusRetrograde) {
		base *= p.RetrogradeFactor
	}
	return base
}

func (p StrengthPolicy) aspectValue(a Aspect) float64 {
	switch a.Nature {
	case Benefic:
		return p.BeneficAspect
	case Malefic:
		return p.MaleficAspect
	default:
		return 0
	}
}

// score aggregates resident and incoming-aspect contributions per house.
// Houses with no contributions average to zero.
func (p StrengthPolicy) score(placements []Placement, aspects []Aspect) [12]HouseStrength {
	var sums [12]float64
	var counts [12]int

	for _, pl := range placements {
		idx := pl.House - 1
		sums[idx] += p.baseFor(pl)
		counts[idx]++
	}
	for _, a := range aspects {
		idx := a.ToHouse - 1
		sums[idx] += p.aspectValue(a)
		counts[idx]++
	}

	var strengths [12]HouseStrength
	for i := range strengths {
		avg := 0.0
		if counts[i] > 0 {
			avg = sums[i] / float64(counts[i])
		}

		bucket := BucketNeutral
		switch {
		case avg >= p.StrongAt:
			bucket = BucketStrong
		case avg <= p.WeakAt:
			bucket = BucketWeak
		}

		strengths[i] = HouseStrength{House: i + 1, Average: avg, Bucket: bucket}
	}
	return strengths
}
