package site

import (
	"fmt"
	"regexp"
)

var (
	colorPattern  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	formatPattern = regexp.MustCompile(`^[a-z]+To[A-Z][a-z]+$`)
)

// Color is a primary color in #RRGGBB form.
type Color string

// Format is a conversion mode identifier such as "webpToJpg".
type Format string

// Params holds the validated inputs handed to the template script.
type Params struct {
	Folder      string
	DisplayName string
	Color       Color
	Format      Format
}

// Args returns the positional template script arguments:
// folder, display name, color, format.
func (p Params) Args() []string {
	return []string{p.Folder, p.DisplayName, string(p.Color), string(p.Format)}
}

// ValidateColor accepts "#" followed by exactly six hex digits, in any case.
func ValidateColor(raw string) (Color, error) {
	if !colorPattern.MatchString(raw) {
		return "", fmt.Errorf("%w %q: please use format #RRGGBB (e.g., #cc7aaa)", ErrInvalidColor, raw)
	}
	return Color(raw), nil
}

// ValidateFormat accepts camelCase conversion modes like "webpToJpg".
func ValidateFormat(raw string) (Format, error) {
	if !formatPattern.MatchString(raw) {
		return "", fmt.Errorf("%w %q: please use camelCase format like 'webpToJpg'", ErrInvalidFormat, raw)
	}
	return Format(raw), nil
}

// ValidateFolder rejects the empty folder name.
func ValidateFolder(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyFolder
	}
	return raw, nil
}

// DisplayName upper-cases the first character of folder when it is an ASCII
// lowercase letter. Every other byte is returned unchanged.
func DisplayName(folder string) string {
	if folder == "" {
		return ""
	}
	if c := folder[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + folder[1:]
	}
	return folder
}
