package astro

// aspectOffsets lists the houses ahead (1-indexed offsets) each body casts
// an aspect on. Every body sees the 7th; Mars, Jupiter, Saturn and the
// nodes carry their special aspects.
var aspectOffsets = map[Body][]int{
	Sun:     {7},
	Moon:    {7},
	Mercury: {7},
	Venus:   {7},
	Mars:    {4, 7, 8},
	Jupiter: {5, 7, 9},
	Saturn:  {3, 7, 10},
	Rahu:    {5, 9},
	Ketu:    {5, 9},
	Uranus:  {7},
	Neptune: {7},
	Pluto:   {7},
}

var aspectLabels = map[int]string{
	3: "3rd", 4: "4th", 5: "5th", 7: "7th", 8: "8th", 9: "9th", 10: "10th",
}

// Aspect is a directional influence a body projects onto a house.
type Aspect struct {
	Body      Body
	FromHouse int
	ToHouse   int
	Label     string
	Nature    Nature
}

// AspectsFrom computes the aspects a body casts from its occupied house.
func AspectsFrom(b Body, house int) []Aspect {
	offsets := aspectOffsets[b]
	aspects := make([]Aspect, 0, len(offsets))
	for _, offset := range offsets {
		aspects = append(aspects, Aspect{
			Body:      b,
			FromHouse: house,
			ToHouse:   ((house + offset - 2) % 12) + 1,
			Label:     aspectLabels[offset],
			Nature:    NatureOf(b),
		})
	}
	return aspects
}
