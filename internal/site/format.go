package site

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ShippedModes lists every conversion mode the converter client ships.
var ShippedModes = []string{
	"heicToJpg", "jpgToHeic",
	"pngToJpg", "jpgToPng",
	"webpToJpg", "jpgToWebp",
	"avifToJpg", "jpgToAvif",
	"mp4ToWebm", "webmToMp4",
	"movToMp4", "mp4ToMov",
	"aviToMp4", "mp4ToAvi",
	"mkvToMp4", "mp4ToMkv",
}

// KnownModes are the shipped modes ValidateFormat accepts. Modes naming a
// format with a digit, such as mp4, cannot be entered.
var KnownModes = enterable(ShippedModes)

func enterable(modes []string) []string {
	var out []string
	for _, m := range modes {
		if formatPattern.MatchString(m) {
			out = append(out, m)
		}
	}
	return out
}

// Media kinds a conversion mode can operate on.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

var (
	imageFormats = []string{"jpg", "jpeg", "png", "heic", "avif", "webp"}
	videoFormats = []string{"mp4", "webm", "mov", "avi", "mkv"}
)

// maxSuggestions caps the modes returned by Suggest.
const maxSuggestions = 3

// Split returns the lowercase input and output formats of f.
// "webpToJpg" yields ("webp", "jpg").
func (f Format) Split() (in, out string) {
	s := string(f)
	idx := strings.Index(s, "To")
	if idx <= 0 {
		return "", ""
	}
	return s[:idx], strings.ToLower(s[idx+2:])
}

// Known reports whether f is one of KnownModes.
func (f Format) Known() bool {
	return slices.Contains(KnownModes, string(f))
}

// Media returns MediaImage or MediaVideo when both sides of f are formats of
// that kind, and "" otherwise.
func (f Format) Media() string {
	in, out := f.Split()
	switch {
	case slices.Contains(imageFormats, in) && slices.Contains(imageFormats, out):
		return MediaImage
	case slices.Contains(videoFormats, in) && slices.Contains(videoFormats, out):
		return MediaVideo
	}
	return ""
}

// Suggest returns up to three known modes resembling f, best match first.
// Returns nil for known modes.
func Suggest(f Format) []string {
	if f.Known() {
		return nil
	}
	in, out := f.Split()
	var result []string
	for _, pattern := range []string{in, out} {
		if pattern == "" {
			continue
		}
		for _, m := range fuzzy.Find(pattern, KnownModes) {
			if !slices.Contains(result, m.Str) {
				result = append(result, m.Str)
			}
		}
	}
	if len(result) > maxSuggestions {
		result = result[:maxSuggestions]
	}
	return result
}
