package render

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/image/colornames"
)

// ErrUnknownTheme reports a colour theme name that is not registered.
var ErrUnknownTheme = errors.New("unknown colour theme")

// Theme colours the edges and the three visible faces of the hex picture.
type Theme struct {
	Name  string
	Edges color.RGBA
	Top   color.RGBA
	Left  color.RGBA
	Right color.RGBA
}

// themeNames lists edge, top, left and right colours by CSS name.
var themeNames = map[string][4]string{
	"rgb":                  {"black", "orangered", "yellowgreen", "steelblue"},
	"cmy":                  {"dimgray", "lightcyan", "thistle", "khaki"},
	"noir_joke":            {"black", "whitesmoke", "dimgray", "silver"},
	"strawberry_explosion": {"darkred", "linen", "crimson", "lightpink"},
	"alien_vomit":          {"darkolivegreen", "palegreen", "darkseagreen", "chartreuse"},
	"frozen_tango":         {"darkslategray", "paleturquoise", "steelblue", "skyblue"},
	"cosmic_penguin":       {"darkcyan", "lightcyan", "darkturquoise", "cyan"},
	"magic_apocalypse":     {"purple", "lavenderblush", "orchid", "plum"},
	"eldorado_craze":       {"saddlebrown", "lemonchiffon", "darkgoldenrod", "gold"},
}

// DefaultTheme is used when no theme is requested.
const DefaultTheme = "rgb"

// Themes returns the registered theme names in sorted order.
func Themes() []string {
	out := make([]string, 0, len(themeNames))
	for name := range themeNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ThemeByName resolves a registered theme.
func ThemeByName(name string) (Theme, error) {
	names, ok := themeNames[name]
	if !ok {
		return Theme{}, fmt.Errorf("%q (want one of %v): %w", name, Themes(), ErrUnknownTheme)
	}
	return Theme{
		Name:  name,
		Edges: colornames.Map[names[0]],
		Top:   colornames.Map[names[1]],
		Left:  colornames.Map[names[2]],
		Right: colornames.Map[names[3]],
	}, nil
}
