package tree

import "fmt"

// Color identifies an entry in the fixed group palette.
type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorGray    Color = "gray"
)

// Palette lists every color in display order.
var Palette = []Color{
	ColorDefault, ColorRed, ColorOrange, ColorYellow, ColorGreen,
	ColorBlue, ColorPurple, ColorPink, ColorGray,
}

// ParseColor validates a palette identifier. The empty string maps to the default.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return ColorDefault, nil
	}
	for _, c := range Palette {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
