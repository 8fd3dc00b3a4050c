package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuihanzi/internal/game"
	"github.com/verte-zerg/tuihanzi/internal/model"
	"github.com/verte-zerg/tuihanzi/internal/pool"
)

type recordingPlayer struct {
	said []string
}

func (p *recordingPlayer) Say(text string) {
	p.said = append(p.said, text)
}

func newTestModel(t *testing.T, rounds int) (*Model, *recordingPlayer) {
	t.Helper()
	settings := game.DefaultSettings()
	settings.TotalRounds = rounds
	entries := []model.CharacterEntry{{Glyph: "山", Reading: "shan", Meaning: "山"}}
	player := &recordingPlayer{}
	return NewModel(settings, pool.New(entries, 1), player, nil), player
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestRenderStatusFormats(t *testing.T) {
	m := &Model{round: 3, totalRounds: 10, score: 20}
	if got := m.renderStatus(); got != "Round 3/10  Score 20" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestIdleViewPromptsStart(t *testing.T) {
	m, _ := newTestModel(t, 1)
	if !containsAll(m.View(), []string{"Press Enter to start"}) {
		t.Fatalf("idle view missing prompt: %s", m.View())
	}
}

func TestPerfectGameFlow(t *testing.T) {
	m, player := newTestModel(t, 1)
	m.Update(key("enter"))
	if m.ctrl.Phase() != game.PhaseRoundActive {
		t.Fatalf("expected active round, got %s", m.ctrl.Phase())
	}
	if m.glyph != "山" || m.remaining != 20 {
		t.Fatalf("round not presented: glyph=%q remaining=%d", m.glyph, m.remaining)
	}

	// Ticker is the first timer armed by the controller.
	m.Update(timerMsg{id: 1})
	if m.remaining != 19 {
		t.Fatalf("expected countdown 19, got %d", m.remaining)
	}

	m.Update(key("SHAN"))
	m.Update(key("enter"))
	if m.score != 10 || m.outcome != model.OutcomeCorrect {
		t.Fatalf("expected correct answer, score=%d outcome=%s", m.score, m.outcome)
	}
	if !strings.Contains(m.View(), "正确") {
		t.Fatalf("feedback missing from view")
	}

	// The stale tick is dropped after the answer cancelled it.
	m.Update(timerMsg{id: 1})
	if m.remaining != 19 {
		t.Fatalf("stale tick changed countdown to %d", m.remaining)
	}

	m.Update(timerMsg{id: 2})
	if m.ctrl.Phase() != game.PhaseFinished {
		t.Fatalf("expected finished, got %s", m.ctrl.Phase())
	}
	if !containsAll(m.View(), []string{"太棒了", "Final score: 10"}) {
		t.Fatalf("completion view missing perfect message: %s", m.View())
	}
	if player.said[len(player.said)-1] != model.CuePerfect {
		t.Fatalf("expected perfect cue, got %v", player.said)
	}

	m.Update(key("esc"))
	if m.showCompletion {
		t.Fatalf("esc should dismiss completion")
	}
	if !strings.Contains(m.View(), "Last score: 10") {
		t.Fatalf("idle view should keep last score: %s", m.View())
	}
}

func TestTimeoutShowsReading(t *testing.T) {
	m, _ := newTestModel(t, 2)
	m.Update(key("enter"))
	for i := 0; i < 20; i++ {
		m.Update(timerMsg{id: 1})
	}
	if m.outcome != model.OutcomeTimeout {
		t.Fatalf("expected timeout, got %s", m.outcome)
	}
	if !strings.Contains(m.feedback, "shan") {
		t.Fatalf("timeout feedback should reveal reading: %q", m.feedback)
	}
	if m.ctrl.Phase() != game.PhaseRoundResolved {
		t.Fatalf("expected resolved round, got %s", m.ctrl.Phase())
	}
}

func TestCountdownTurnsRed(t *testing.T) {
	m, _ := newTestModel(t, 1)
	m.remaining, m.maxSeconds = 10, 20
	m.renderCountdown()
	if m.bar.FullColor != barColor {
		t.Fatalf("expected normal color, got %s", m.bar.FullColor)
	}
	m.remaining = 5
	m.renderCountdown()
	if m.bar.FullColor != barWarnColor {
		t.Fatalf("expected warning color, got %s", m.bar.FullColor)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
