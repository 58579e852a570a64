package game

import (
	"fmt"
	"strconv"
)

// Attribute names one of the four features printed on a card.
type Attribute int

const (
	AttrCount Attribute = iota
	AttrShape
	AttrFill
	AttrColor
)

// Attributes lists all card attributes in canonical order.
var Attributes = [4]Attribute{AttrCount, AttrShape, AttrFill, AttrColor}

func (a Attribute) String() string {
	switch a {
	case AttrCount:
		return "count"
	case AttrShape:
		return "shape"
	case AttrFill:
		return "fill"
	case AttrColor:
		return "color"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// ParseAttribute returns the attribute with the given name.
func ParseAttribute(name string) (Attribute, error) {
	for _, a := range Attributes {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}

// Values returns the ordered list of legal values for the attribute, by name.
func (a Attribute) Values() []string {
	values := make([]string, 0, 3)
	switch a {
	case AttrCount:
		for _, c := range Counts {
			values = append(values, c.String())
		}
	case AttrShape:
		for _, s := range Shapes {
			values = append(values, s.String())
		}
	case AttrFill:
		for _, f := range Fills {
			values = append(values, f.String())
		}
	case AttrColor:
		for _, c := range Colors {
			values = append(values, c.String())
		}
	}
	return values
}

// Count is the number of symbols drawn on a card: 1, 2 or 3.
type Count uint8

// Shape of the symbols on a card.
type Shape uint8

const (
	Squiggle Shape = iota
	Oval
	Diamond
)

// Fill of the symbols on a card.
type Fill uint8

const (
	Empty Fill = iota
	Filled
	Hatched
)

// Color of the symbols on a card.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// Domains of each attribute. Each has exactly 3 values: Solve relies on it.
var (
	Counts = [3]Count{1, 2, 3}
	Shapes = [3]Shape{Squiggle, Oval, Diamond}
	Fills  = [3]Fill{Empty, Filled, Hatched}
	Colors = [3]Color{Red, Green, Blue}
)

var (
	shapeNames = [3]string{"squiggle", "oval", "diamond"}
	fillNames  = [3]string{"empty", "filled", "hatched"}
	colorNames = [3]string{"red", "green", "blue"}
)

func (c Count) String() string { return strconv.Itoa(int(c)) }

func (s Shape) String() string { return enumName(shapeNames, int(s), "Shape") }

func (f Fill) String() string { return enumName(fillNames, int(f), "Fill") }

func (c Color) String() string { return enumName(colorNames, int(c), "Color") }

func (s Shape) MarshalText() ([]byte, error) { return marshalEnum(shapeNames, int(s), "shape") }

func (f Fill) MarshalText() ([]byte, error) { return marshalEnum(fillNames, int(f), "fill") }

func (c Color) MarshalText() ([]byte, error) { return marshalEnum(colorNames, int(c), "color") }

func (s *Shape) UnmarshalText(text []byte) error {
	i, err := parseEnum(shapeNames, string(text), "shape")
	*s = Shape(i)
	return err
}

func (f *Fill) UnmarshalText(text []byte) error {
	i, err := parseEnum(fillNames, string(text), "fill")
	*f = Fill(i)
	return err
}

func (c *Color) UnmarshalText(text []byte) error {
	i, err := parseEnum(colorNames, string(text), "color")
	*c = Color(i)
	return err
}

func (c Count) valid() bool { return c >= 1 && c <= 3 }

func (s Shape) valid() bool { return int(s) < len(Shapes) }

func (f Fill) valid() bool { return int(f) < len(Fills) }

func (c Color) valid() bool { return int(c) < len(Colors) }

func enumName(names [3]string, i int, kind string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", kind, i)
}

func marshalEnum(names [3]string, i int, kind string) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("invalid %s %d", kind, i)
	}
	return []byte(names[i]), nil
}

func parseEnum(names [3]string, name, kind string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, name)
}
