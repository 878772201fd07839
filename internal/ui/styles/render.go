package styles

import (
	"net/url"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Swatch renders a three-cell block filled with the hex color.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}

// DirLink renders path as an OSC 8 file:// hyperlink. Relative paths are
// made absolute first; on failure the plain path is returned.
func DirLink(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	u := url.URL{Scheme: "file", Path: abs}
	return ansi.SetHyperlink(u.String()) + path + ansi.ResetHyperlink()
}
