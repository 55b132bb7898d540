package gift

// relationshipPriceFloor maps how close the giver is to the recipient
// (1 closest, 5 least close) to the minimum gift price.
var relationshipPriceFloor = map[int]float64{
	1: 150,
	2: 120,
	3: 100,
	4: 70,
	5: 40,
}

// ResolveMinPrice returns the floor for a known relationship level and the
// caller's own minimum otherwise. A nil result is unbounded.
func ResolveMinPrice(relationshipLevel *int, callerMinPrice *float64) *float64 {
	if relationshipLevel == nil {
		return callerMinPrice
	}

	floor, ok := relationshipPriceFloor[*relationshipLevel]
	if !ok {
		return callerMinPrice
	}

	return &floor
}
