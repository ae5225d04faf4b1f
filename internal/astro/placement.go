package astro

import (
	"encoding/json"
)

// Status is a closed set of placement flags.
type Status uint8

const (
	StatusRetrograde Status = 1 << iota
	StatusExalted
	StatusDebilitated
	StatusPeak
	StatusCombust
)

var statusTags = []struct {
	flag Status
	tag  string
}{
	{StatusExalted, "exalted"},
	{StatusDebilitated, "debilitated"},
	{StatusPeak, "peak"},
	{StatusCombust, "combust"},
	{StatusRetrograde, "retrograde"},
}

// Has reports whether every flag in f is set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// Tags returns the set flags as wire tags, in fixed display order.
func (s Status) Tags() []string {
	tags := []string{}
	for _, st := range statusTags {
		if s.Has(st.flag) {
			tags = append(tags, st.tag)
		}
	}
	return tags
}

// MarshalJSON encodes the status as a tag array, matching the wire format
// consumed by chart frontends.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

// Dignity classifies a body's relationship to the ruler of its sign.
type Dignity string

const (
	DignityOwn     Dignity = "Own"
	DignityFriend  Dignity = "Friend"
	DignityNeutral Dignity = "Neutral"
	DignityEnemy   Dignity = "Enemy"
	DignityNone    Dignity = "N/A"
)

// Placement is a body's fully derived position within one chart.
type Placement struct {
	Body      Body
	Longitude float64
	Degree    float64 // within the occupied sign, [0,30)
	Sign      Sign
	House     int // 1..12
	Status    Status
	Dignity   Dignity
}

// DignityOf resolves a body's dignity in the given sign. Only bodies with
// a friendship table entry carry dignity; the rest are N/A.
func DignityOf(b Body, s Sign) Dignity {
	fr, ok := friendships[b]
	if !ok {
		return DignityNone
	}

	lord := Ruler(s)
	if lord == b {
		return DignityOwn
	}
	if containsBody(fr.friends, lord) {
		return DignityFriend
	}
	if containsBody(fr.neutral, lord) {
		return DignityNeutral
	}
	if containsBody(fr.enemies, lord) {
		return DignityEnemy
	}
	return DignityNone
}

func containsBody(bodies []Body, b Body) bool {
	for _, candidate := range bodies {
		if candidate == b {
			return true
		}
	}
	return false
}
