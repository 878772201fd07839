package site

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Shade amounts used for the derived palette colors.
const (
	secondaryDarken = 0.2
	accentLighten   = 0.3
)

// Palette is a primary color with the darker secondary and lighter accent
// shades a converter site pairs with it.
type Palette struct {
	Primary   Color
	Secondary Color
	Accent    Color
}

// Palette derives the secondary and accent shades of c by blending towards
// black and white in CIE L*a*b* space.
func (c Color) Palette() (Palette, error) {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return Palette{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, c, err)
	}
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Palette{
		Primary:   c,
		Secondary: Color(base.BlendLab(black, secondaryDarken).Clamped().Hex()),
		Accent:    Color(base.BlendLab(white, accentLighten).Clamped().Hex()),
	}, nil
}
