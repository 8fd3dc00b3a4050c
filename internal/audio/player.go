package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// Player plays the cue for a spoken text without blocking.
type Player interface {
	Say(text string)
}

// Silent discards every cue.
type Silent struct{}

// Say implements Player.
func (Silent) Say(string) {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
}

// Open initializes the audio device. Only one Speaker may be open per process.
func Open(volume float64) (*Speaker, error) {
	rate := defaultSampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	s := &Speaker{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Say implements Player. Cues overlap rather than queue.
func (s *Speaker) Say(text string) {
	st := Streamer(text, s.rate, s.volume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close drops any cue still playing.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
