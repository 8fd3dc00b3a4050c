package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

type armCall struct {
	id uint64
	d  time.Duration
}

func TestTimerSetAfterFiresOnce(t *testing.T) {
	var armed []armCall
	set := NewTimerSet(func(id uint64, d time.Duration) {
		armed = append(armed, armCall{id, d})
	})
	calls := 0
	set.After(2*time.Second, func() { calls++ })
	require.Equal(t, []armCall{{1, 2 * time.Second}}, armed)

	require.True(t, set.Fire(1))
	require.False(t, set.Fire(1))
	require.Equal(t, 1, calls)
	require.Zero(t, set.Pending())
}

func TestTimerSetEveryRearms(t *testing.T) {
	var armed []armCall
	set := NewTimerSet(func(id uint64, d time.Duration) {
		armed = append(armed, armCall{id, d})
	})
	calls := 0
	h := set.Every(time.Second, func() { calls++ })
	for i := 0; i < 3; i++ {
		require.True(t, set.Fire(1))
	}
	require.Equal(t, 3, calls)
	require.Len(t, armed, 4)

	h.Cancel()
	require.False(t, set.Fire(1))
	require.Equal(t, 3, calls)
}

func TestTimerSetDropsStaleWakeups(t *testing.T) {
	set := NewTimerSet(func(uint64, time.Duration) {})
	var ticker Handle
	fired := 0
	ticker = set.Every(time.Second, func() {
		fired++
		ticker.Cancel()
	})
	require.True(t, set.Fire(1))
	// The re-armed wake-up arrives after the callback cancelled itself.
	require.False(t, set.Fire(1))
	require.Equal(t, 1, fired)
}

func TestTimerSetCancelAll(t *testing.T) {
	set := NewTimerSet(func(uint64, time.Duration) {})
	set.After(time.Second, func() { t.Fatalf("cancelled timer fired") })
	set.Every(time.Second, func() { t.Fatalf("cancelled ticker fired") })
	require.Equal(t, 2, set.Pending())
	set.CancelAll()
	require.False(t, set.Fire(1))
	require.False(t, set.Fire(2))
}

func TestControllerOnTimerSet(t *testing.T) {
	var armed []armCall
	set := NewTimerSet(func(id uint64, d time.Duration) {
		armed = append(armed, armCall{id, d})
	})
	view := &recordingView{}
	settings := DefaultSettings()
	settings.RoundSeconds = 2
	ctrl := New(settings, singleEntryPicker{}, view, set, nil)
	ctrl.Start()
	require.Equal(t, armCall{1, time.Second}, armed[0])

	ctrl.Submit("yi")
	require.Equal(t, PhaseRoundResolved, ctrl.Phase())
	// A tick armed before the answer must not touch the resolved round.
	require.False(t, set.Fire(1))
	require.Equal(t, 2, ctrl.State().SecondsRemaining)
	require.Equal(t, armCall{2, 1500 * time.Millisecond}, armed[len(armed)-1])
}

type singleEntryPicker struct{}

func (singleEntryPicker) Pick(map[string]struct{}) (entry model.CharacterEntry, ok bool) {
	return model.CharacterEntry{Glyph: "一", Reading: "yi", Meaning: "数字一"}, true
}
