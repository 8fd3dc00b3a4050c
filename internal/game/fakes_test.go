package game

import (
	"fmt"
	"time"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

type fakeHandle struct {
	d         time.Duration
	fn        func()
	every     bool
	cancelled bool
}

func (h *fakeHandle) Cancel() {
	h.cancelled = true
}

// fakeScheduler hands callbacks back to the test instead of waiting.
type fakeScheduler struct {
	handles []*fakeHandle
}

func (s *fakeScheduler) Every(d time.Duration, fn func()) Handle {
	h := &fakeHandle{d: d, fn: fn, every: true}
	s.handles = append(s.handles, h)
	return h
}

func (s *fakeScheduler) After(d time.Duration, fn func()) Handle {
	h := &fakeHandle{d: d, fn: fn}
	s.handles = append(s.handles, h)
	return h
}

func (s *fakeScheduler) live(every bool) []*fakeHandle {
	var out []*fakeHandle
	for _, h := range s.handles {
		if !h.cancelled && h.every == every {
			out = append(out, h)
		}
	}
	return out
}

// tick fires the live ticker once and reports whether one existed.
func (s *fakeScheduler) tick() bool {
	live := s.live(true)
	if len(live) == 0 {
		return false
	}
	live[0].fn()
	return true
}

// flush fires the pending one-shot callback and returns its delay.
func (s *fakeScheduler) flush() (time.Duration, bool) {
	live := s.live(false)
	if len(live) == 0 {
		return 0, false
	}
	h := live[0]
	h.cancelled = true
	h.fn()
	return h.d, true
}

type recordingView struct {
	calls      []string
	shown      []model.CharacterEntry
	score      int
	round      int
	remaining  int
	feedback   []model.Outcome
	readings   []string
	audio      []string
	completion *model.Summary
	hidden     int
}

func (v *recordingView) ShowCharacter(entry model.CharacterEntry) {
	v.calls = append(v.calls, "character:"+entry.Glyph)
	v.shown = append(v.shown, entry)
}

func (v *recordingView) ShowHint(meaning string) {
	v.calls = append(v.calls, "hint:"+meaning)
}

func (v *recordingView) UpdateScore(total int) {
	v.calls = append(v.calls, fmt.Sprintf("score:%d", total))
	v.score = total
}

func (v *recordingView) UpdateRound(number, total int) {
	v.calls = append(v.calls, fmt.Sprintf("round:%d/%d", number, total))
	v.round = number
}

func (v *recordingView) UpdateCountdown(remaining, maxSeconds int) {
	v.remaining = remaining
}

func (v *recordingView) ShowFeedback(outcome model.Outcome, correctReading string) {
	v.calls = append(v.calls, "feedback:"+outcome.String())
	v.feedback = append(v.feedback, outcome)
	v.readings = append(v.readings, correctReading)
}

func (v *recordingView) PlayAudio(text string) {
	v.audio = append(v.audio, text)
}

func (v *recordingView) ShowCompletion(summary model.Summary) {
	v.calls = append(v.calls, "completion")
	v.completion = &summary
}

func (v *recordingView) HideCompletion() {
	v.calls = append(v.calls, "hide-completion")
	v.hidden++
	v.completion = nil
}

func (v *recordingView) lastAudio() string {
	if len(v.audio) == 0 {
		return ""
	}
	return v.audio[len(v.audio)-1]
}
