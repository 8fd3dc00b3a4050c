// Package dataset provides dataset validation helpers.
package dataset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

// Normalize trims every field, lower-cases readings and rejects tables with
// empty fields or duplicate glyphs.
func Normalize(entries []model.CharacterEntry) ([]model.CharacterEntry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.CharacterEntry, 0, len(entries))
	for i, e := range entries {
		e.Glyph = strings.TrimSpace(e.Glyph)
		e.Reading = NormalizeReading(e.Reading)
		e.Meaning = strings.TrimSpace(e.Meaning)
		if e.Glyph == "" {
			return nil, fmt.Errorf("entry %d: glyph is empty", i+1)
		}
		if e.Reading == "" {
			return nil, fmt.Errorf("entry %d (%s): reading is empty", i+1, e.Glyph)
		}
		if !validReading(e.Reading) {
			return nil, fmt.Errorf("entry %d (%s): reading %q must be latin letters", i+1, e.Glyph, e.Reading)
		}
		if _, ok := seen[e.Glyph]; ok {
			return nil, fmt.Errorf("entry %d: duplicate glyph %s", i+1, e.Glyph)
		}
		seen[e.Glyph] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

// NormalizeReading trims whitespace and case-folds an answer or reading.
func NormalizeReading(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// validReading accepts lower-case ASCII letters plus ü for readings like nü.
func validReading(reading string) bool {
	if !utf8.ValidString(reading) {
		return false
	}
	for _, r := range reading {
		if (r < 'a' || r > 'z') && r != 'ü' {
			return false
		}
	}
	return true
}
