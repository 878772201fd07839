package site

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func lightness(t *testing.T, c Color) float64 {
	t.Helper()
	col, err := colorful.Hex(string(c))
	if err != nil {
		t.Fatalf("colorful.Hex(%q) error = %v", c, err)
	}
	l, _, _ := col.Lab()
	return l
}

func TestPalette(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{"#cc7aaa", "#DD7230", "#3b82f6", "#808080"} {
		t.Run(string(c), func(t *testing.T) {
			t.Parallel()
			p, err := c.Palette()
			if err != nil {
				t.Fatalf("Palette() error = %v", err)
			}
			if p.Primary != c {
				t.Errorf("Primary = %q, want %q", p.Primary, c)
			}
			for _, shade := range []Color{p.Secondary, p.Accent} {
				if _, err := ValidateColor(string(shade)); err != nil {
					t.Errorf("derived shade %q is not #RRGGBB: %v", shade, err)
				}
			}
			if !(lightness(t, p.Secondary) < lightness(t, c)) {
				t.Errorf("Secondary %q should be darker than %q", p.Secondary, c)
			}
			if !(lightness(t, p.Accent) > lightness(t, c)) {
				t.Errorf("Accent %q should be lighter than %q", p.Accent, c)
			}
		})
	}
}

func TestPalette_Invalid(t *testing.T) {
	t.Parallel()
	if _, err := Color("nope").Palette(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Palette() error = %v, want ErrInvalidColor", err)
	}
}
