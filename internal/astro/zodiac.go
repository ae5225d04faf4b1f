// Package astro derives a Vedic birth chart from sidereal positions:
// sign and house placement, dignity, combustion, retrogression, planetary
// aspects, house strength and the navamsa (D9) transform. All rules live
// in static tables so a rule change is a data edit.
package astro

import "math"

// Body is one of the tracked chart bodies. Ketu is never observed
// directly; the engine derives it from Rahu.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
	Uranus
	Neptune
	Pluto
)

var bodyCodes = map[Body]string{
	Sun: "Su", Moon: "Mo", Mars: "Ma", Mercury: "Me", Jupiter: "Ju",
	Venus: "Ve", Saturn: "Sa", Rahu: "Ra", Ketu: "Ke",
	Uranus: "Ur", Neptune: "Ne", Pluto: "Pl",
}

var bodyNames = map[Body]string{
	Sun: "Sun", Moon: "Moon", Mars: "Mars", Mercury: "Mercury",
	Jupiter: "Jupiter", Venus: "Venus", Saturn: "Saturn",
	Rahu: "Rahu", Ketu: "Ketu",
	Uranus: "Uranus", Neptune: "Neptune", Pluto: "Pluto",
}

// Code returns the two-letter chart abbreviation (e.g. "Su").
func (b Body) Code() string {
	return bodyCodes[b]
}

func (b Body) String() string {
	return bodyNames[b]
}

// Bodies lists every tracked body in chart order, Ketu included.
func Bodies() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu, Uranus, Neptune, Pluto}
}

// Sign is one of the 12 fixed 30°-wide zodiac sectors.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	return signNames[s]
}

// SignOf maps a normalized sidereal longitude in [0,360) to its sign.
func SignOf(lon float64) Sign {
	return Sign(int(math.Floor(lon/30)) % 12)
}

// DegreeInSign returns the degree offset within the occupied sign, in [0,30).
func DegreeInSign(lon float64) float64 {
	return math.Mod(lon, 30)
}

// signRulers maps each sign to its ruling body.
var signRulers = map[Sign]Body{
	Aries: Mars, Taurus: Venus, Gemini: Mercury, Cancer: Moon,
	Leo: Sun, Virgo: Mercury, Libra: Venus, Scorpio: Mars,
	Sagittarius: Jupiter, Capricorn: Saturn, Aquarius: Saturn, Pisces: Jupiter,
}

// Ruler returns the body ruling the sign.
func Ruler(s Sign) Body {
	return signRulers[s]
}

type friendship struct {
	friends []Body
	enemies []Body
	neutral []Body
}

// friendships covers the seven classical bodies plus the nodes. The nodes
// carry empty sets, so every node dignity resolves to N/A. Bodies absent
// from this table (outer planets) have no dignity at all.
var friendships = map[Body]friendship{
	Sun:     {friends: []Body{Moon, Mars, Jupiter}, enemies: []Body{Saturn, Venus}, neutral: []Body{Mercury}},
	Moon:    {friends: []Body{Sun, Mercury}, enemies: []Body{Rahu, Ketu}, neutral: []Body{Mars, Jupiter, Venus, Saturn}},
	Mars:    {friends: []Body{Sun, Moon, Jupiter}, enemies: []Body{Mercury}, neutral: []Body{Venus, Saturn}},
	Mercury: {friends: []Body{Sun, Venus}, enemies: []Body{Moon}, neutral: []Body{Mars, Jupiter, Saturn}},
	Jupiter: {friends: []Body{Sun, Moon, Mars}, enemies: []Body{Venus, Mercury}, neutral: []Body{Saturn}},
	Venus:   {friends: []Body{Mercury, Saturn}, enemies: []Body{Sun, Moon}, neutral: []Body{Mars, Jupiter}},
	Saturn:  {friends: []Body{Mercury, Venus}, enemies: []Body{Sun, Moon}, neutral: []Body{Mars, Jupiter}},
	Rahu:    {},
	Ketu:    {},
}

type exaltation struct {
	exaltSign Sign
	exaltDeg  float64
	debilSign Sign
	debilDeg  float64
}

// exaltations holds the fixed exaltation and debilitation points of the
// seven classical bodies. Signs are always opposite by construction, so a
// body can never be exalted and debilitated at once.
var exaltations = map[Body]exaltation{
	Sun:     {Aries, 10, Libra, 10},
	Moon:    {Taurus, 3, Scorpio, 3},
	Mars:    {Capricorn, 28, Cancer, 28},
	Mercury: {Virgo, 15, Pisces, 15},
	Jupiter: {Cancer, 5, Capricorn, 5},
	Venus:   {Pisces, 27, Virgo, 27},
	Saturn:  {Libra, 20, Aries, 20},
}

// peakOrb is the ±degree window around an exact exaltation or
// debilitation point that earns the "peak" status.
const peakOrb = 5.0

// defaultCombustOrbs gives per-body maximum separations from the Sun below
// which a body counts as combust.
var defaultCombustOrbs = map[Body]float64{
	Moon:    12,
	Mars:    17,
	Mercury: 14,
	Jupiter: 11,
	Venus:   10,
	Saturn:  15,
}

// Nature classifies a body's general influence.
type Nature string

const (
	Benefic Nature = "benefic"
	Malefic Nature = "malefic"
	Neutral Nature = "neutral"
)

// natures maps bodies to their influence class. Bodies absent from the
// table are neutral.
var natures = map[Body]Nature{
	Moon:    Benefic,
	Jupiter: Benefic,
	Venus:   Benefic,
	Mars:    Malefic,
	Saturn:  Malefic,
	Rahu:    Malefic,
	Ketu:    Malefic,
}

// NatureOf returns the influence class of a body.
func NatureOf(b Body) Nature {
	if n, ok := natures[b]; ok {
		return n
	}
	return Neutral
}
