package game

// distractorAttributes are the attributes a distractor may differ in.
// Count is left alone: it is the easiest attribute to tell apart.
var distractorAttributes = [3]Attribute{AttrShape, AttrFill, AttrColor}

// Distract returns a card equal to target except for exactly one of shape,
// fill or color, chosen uniformly, whose value is replaced by one of the two
// other values of its domain, also chosen uniformly.
//
// The result never equals target.
func (d *Dealer) Distract(target Card) Card {
	attr := distractorAttributes[d.rng.IntN(len(distractorAttributes))]
	// Skip 1 or 2 positions ahead in the 3-value domain: never lands on the current value.
	i := (target.Value(attr) + 1 + d.rng.IntN(2)) % 3
	return target.With(attr, i)
}

// Diff returns the attributes in which a and b differ.
func Diff(a, b Card) []Attribute {
	var attrs []Attribute
	for _, attr := range Attributes {
		if a.Value(attr) != b.Value(attr) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
