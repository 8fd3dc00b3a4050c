package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	// waveGlyph uses beep's own sine generator.
	waveGlyph
)

const (
	attack  = 8 * time.Millisecond
	release = 40 * time.Millisecond
)

// oscillator generates a raw periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func renderNote(n note, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	var raw beep.Streamer
	if n.wave == waveGlyph {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return beep.Silence(samples)
		}
		raw = beep.Take(samples, tone)
	} else {
		raw = newOscillator(n.freq, n.dur, n.wave, rate)
	}
	return newEnvelope(raw, n.dur, rate)
}

// Streamer renders the cue for text at the given sample rate and volume.
func Streamer(text string, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := notesFor(text)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, renderNote(n, rate))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// Duration reports how long the cue for text plays.
func Duration(text string) time.Duration {
	var total time.Duration
	for _, n := range notesFor(text) {
		total += n.dur
	}
	return total
}
