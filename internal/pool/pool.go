// Package pool selects quiz characters without repetition.
package pool

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

// Pool picks entries uniformly among those not yet used.
type Pool struct {
	entries []model.CharacterEntry
	rnd     *rand.Rand
}

// New returns a Pool over entries. A zero seed uses the current time.
func New(entries []model.CharacterEntry, seed int64) *Pool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Pool{
		entries: append([]model.CharacterEntry(nil), entries...),
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Len reports the dataset size.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Pick returns a random entry whose glyph is not in excluding, or false when
// every entry has been used.
func (p *Pool) Pick(excluding map[string]struct{}) (model.CharacterEntry, bool) {
	available := p.available(excluding)
	if len(available) == 0 {
		return model.CharacterEntry{}, false
	}
	return available[p.rnd.Intn(len(available))], true
}

// Remaining counts entries whose glyph is not in excluding.
func (p *Pool) Remaining(excluding map[string]struct{}) int {
	return len(p.available(excluding))
}

func (p *Pool) available(excluding map[string]struct{}) []model.CharacterEntry {
	out := make([]model.CharacterEntry, 0, len(p.entries))
	for _, e := range p.entries {
		if _, used := excluding[e.Glyph]; used {
			continue
		}
		out = append(out, e)
	}
	return out
}
