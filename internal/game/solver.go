package game

// Solve returns the unique card that completes a matching set with a and b:
// for each attribute, equal values are kept and different values are replaced
// by the remaining value of the domain.
//
// Solve(a, a) is a itself.
func Solve(a, b Card) Card {
	return Card{
		Count: third(Counts, a.Count, b.Count),
		Shape: third(Shapes, a.Shape, b.Shape),
		Fill:  third(Fills, a.Fill, b.Fill),
		Color: third(Colors, a.Color, b.Color),
	}
}

// third returns x if x == y, otherwise the domain value different from both.
func third[T comparable](domain [3]T, x, y T) T {
	if x == y {
		return x
	}
	for _, v := range domain {
		if v != x && v != y {
			return v
		}
	}
	panic("values not in domain")
}

// IsSet reports whether the three cards form a matching set: for every
// attribute the three values are either all equal or all different.
func IsSet(a, b, c Card) bool {
	for _, attr := range Attributes {
		x, y, z := a.Value(attr), b.Value(attr), c.Value(attr)
		allEqual := x == y && y == z
		allDistinct := x != y && y != z && x != z
		if !allEqual && !allDistinct {
			return false
		}
	}
	return true
}
