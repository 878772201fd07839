// Package site validates and normalizes the parameters of a new converter
// site.
//
// Three raw inputs are checked against fixed grammars:
//
//   - [ValidateColor]: "#" followed by exactly six hex digits (#RRGGBB).
//   - [ValidateFormat]: a conversion mode like "webpToJpg", i.e.
//     lowercase letters, the literal "To", one uppercase letter and one or
//     more lowercase letters.
//   - [ValidateFolder]: any non-empty string.
//
// [DisplayName] derives the human-readable site name from the folder name.
// Validation is fail-fast: callers stop at the first error.
//
// Well-formed conversion modes that the converter client does not ship are
// still valid; [Format.Known] and [Suggest] let callers warn about them.
package site
