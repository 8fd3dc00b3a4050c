// Package audio renders spoken game cues as short synthesized tones.
package audio

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

// Kind identifies a cue family.
type Kind int

const (
	KindGlyph Kind = iota
	KindStart
	KindCorrect
	KindTryAgain
	KindTimeUp
	KindPerfect
	KindGameOver
)

type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

// Classify maps a spoken text onto a cue family. Unknown text is treated as a
// character to announce.
func Classify(text string) Kind {
	switch {
	case text == model.CueStart:
		return KindStart
	case text == model.CueCorrect:
		return KindCorrect
	case text == model.CueTryAgain:
		return KindTryAgain
	case text == model.CueTimeUp:
		return KindTimeUp
	case text == model.CuePerfect:
		return KindPerfect
	case strings.HasPrefix(text, model.CueGameOverPrefix):
		return KindGameOver
	default:
		return KindGlyph
	}
}

func notesFor(text string) []note {
	switch Classify(text) {
	case KindStart:
		return []note{
			{freq: 523.25, dur: 120 * time.Millisecond, wave: waveSine},
			{freq: 783.99, dur: 180 * time.Millisecond, wave: waveSine},
		}
	case KindCorrect:
		return []note{
			{freq: 880, dur: 90 * time.Millisecond, wave: waveSine},
			{freq: 1318.51, dur: 160 * time.Millisecond, wave: waveSine},
		}
	case KindTryAgain:
		return []note{
			{freq: 220, dur: 140 * time.Millisecond, wave: waveSaw},
			{freq: 164.81, dur: 200 * time.Millisecond, wave: waveSaw},
		}
	case KindTimeUp:
		return []note{
			{freq: 440, dur: 80 * time.Millisecond, wave: waveSquare},
			{freq: 0, dur: 60 * time.Millisecond},
			{freq: 440, dur: 80 * time.Millisecond, wave: waveSquare},
			{freq: 0, dur: 60 * time.Millisecond},
			{freq: 330, dur: 200 * time.Millisecond, wave: waveSquare},
		}
	case KindPerfect:
		return []note{
			{freq: 523.25, dur: 110 * time.Millisecond, wave: waveSine},
			{freq: 659.25, dur: 110 * time.Millisecond, wave: waveSine},
			{freq: 783.99, dur: 110 * time.Millisecond, wave: waveSine},
			{freq: 1046.5, dur: 300 * time.Millisecond, wave: waveSine},
		}
	case KindGameOver:
		return []note{
			{freq: 659.25, dur: 150 * time.Millisecond, wave: waveSine},
			{freq: 523.25, dur: 150 * time.Millisecond, wave: waveSine},
			{freq: 392, dur: 260 * time.Millisecond, wave: waveSine},
		}
	default:
		return []note{{freq: glyphPitch(text), dur: 220 * time.Millisecond, wave: waveGlyph}}
	}
}

// glyphPitch gives every character a stable pitch within one octave above A4.
func glyphPitch(text string) float64 {
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return 440
	}
	semitone := float64(int(r) % 12)
	return 440 * math.Pow(2, semitone/12)
}
