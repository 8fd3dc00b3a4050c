// Package dataset loads character tables from TOML files.
package dataset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

type fileEntry struct {
	Glyph   string `toml:"glyph"`
	Reading string `toml:"reading"`
	Meaning string `toml:"meaning"`
}

type file struct {
	Chars []fileEntry `toml:"char"`
}

// Load returns the built-in table when path is empty, otherwise reads
// [[char]] tables from the TOML file at path.
func Load(path string) ([]model.CharacterEntry, error) {
	if path == "" {
		return Builtin(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	entries := make([]model.CharacterEntry, 0, len(f.Chars))
	for _, c := range f.Chars {
		entries = append(entries, model.CharacterEntry{
			Glyph:   c.Glyph,
			Reading: c.Reading,
			Meaning: c.Meaning,
		})
	}
	return Normalize(entries)
}
