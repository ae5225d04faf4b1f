package astro

// Each sign splits into nine navamsas of 3°20' (10/3 degrees). The divisor
// is kept rational: a 3.3333 approximation misclassifies longitudes that
// sit on a subdivision boundary.

// NavamsaLongitude maps a D1 longitude in [0,360) to its D9 longitude:
// the navamsa index within the sign selects an offset from the sign's
// triplicity group start, and the remainder stretches back to a full sign.
func NavamsaLongitude(lon float64) float64 {
	signIdx := int(lon / 30)
	deg := lon - float64(signIdx)*30

	navIdx := int(deg * 3 / 10)
	if navIdx > 8 {
		navIdx = 8
	}

	elementStart := (signIdx % 4) * 3
	newSignIdx := (elementStart + navIdx) % 12
	newDeg := (deg - float64(navIdx)*10/3) * 9

	return float64(newSignIdx)*30 + newDeg
}

// NavamsaPositions transforms an ascendant and body positions into their
// D9 equivalents. The nodes have no divisional chart and pass through
// unchanged; speeds carry over so retrogression survives the transform.
func NavamsaPositions(ascendant float64, positions []BodyPosition) (float64, []BodyPosition) {
	out := make([]BodyPosition, len(positions))
	for i, pos := range positions {
		out[i] = pos
		if pos.Body == Rahu || pos.Body == Ketu {
			continue
		}
		out[i].Longitude = NavamsaLongitude(pos.Longitude)
	}
	return NavamsaLongitude(ascendant), out
}
