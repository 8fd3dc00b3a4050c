// Package console runs the quiz as a line-oriented prompt for terminals
// where the full-screen interface is unavailable.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/tuihanzi/internal/audio"
	"github.com/verte-zerg/tuihanzi/internal/game"
	"github.com/verte-zerg/tuihanzi/internal/model"
	"github.com/verte-zerg/tuihanzi/internal/recap"
)

// Runner owns the event loop. Timer wake-ups and input lines are both
// handled on the goroutine that calls Run.
type Runner struct {
	out    io.Writer
	player audio.Player
	log    *zap.Logger
	ctrl   *game.Controller
	timers *game.TimerSet

	wakeups chan uint64
	done    chan struct{}
	err     error
}

// New constructs a Runner writing to out. A nil player is silent.
func New(out io.Writer, settings game.Settings, picker game.Picker, player audio.Player, log *zap.Logger) *Runner {
	if player == nil {
		player = audio.Silent{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		out:     out,
		player:  player,
		log:     log,
		wakeups: make(chan uint64),
		done:    make(chan struct{}),
	}
	r.timers = game.NewTimerSet(r.arm)
	r.ctrl = game.New(settings, picker, r, r.timers, log)
	return r
}

func (r *Runner) arm(id uint64, d time.Duration) {
	time.AfterFunc(d, func() {
		select {
		case r.wakeups <- id:
		case <-r.done:
		}
	})
}

// Run starts a game and processes answers read from in until the player
// quits, in reaches EOF, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	defer close(r.done)
	defer r.timers.CancelAll()

	lines := make(chan string)
	go r.scan(in, lines)

	r.printf("汉字拼音 · type the pinyin for each character and press Enter.\n")
	r.ctrl.Start()
	for r.err == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-r.wakeups:
			r.timers.Fire(id)
		case line, ok := <-lines:
			if !ok {
				r.log.Debug("input closed", zap.Stringer("phase", r.ctrl.Phase()))
				return r.err
			}
			if r.handleLine(line) {
				return r.err
			}
		}
	}
	return r.err
}

func (r *Runner) scan(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-r.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		r.log.Warn("failed to read input", zap.Error(err))
	}
}

// handleLine reports true when the player asked to quit.
func (r *Runner) handleLine(line string) bool {
	switch r.ctrl.Phase() {
	case game.PhaseRoundActive:
		r.ctrl.Submit(line)
	case game.PhaseFinished:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "r":
			r.ctrl.Start()
		default:
			return true
		}
	}
	return false
}

func (r *Runner) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write output: %w", err)
	}
}

// ShowCharacter implements game.Presenter.
func (r *Runner) ShowCharacter(entry model.CharacterEntry) {
	r.printf("\n    %s\n", entry.Glyph)
}

// ShowHint implements game.Presenter.
func (r *Runner) ShowHint(meaning string) {
	r.printf("    (%s)\n", meaning)
}

// UpdateScore implements game.Presenter.
func (r *Runner) UpdateScore(total int) {
	if total > 0 {
		r.printf("Score: %d\n", total)
	}
}

// UpdateRound implements game.Presenter.
func (r *Runner) UpdateRound(number, total int) {
	r.printf("\nRound %d/%d\n", number, total)
}

// UpdateCountdown implements game.Presenter.
func (r *Runner) UpdateCountdown(remaining, maxSeconds int) {
	if countdownVisible(remaining, maxSeconds) {
		r.printf("  %ds left\n", remaining)
	}
}

// countdownVisible limits line output to every fifth second and the last three.
func countdownVisible(remaining, maxSeconds int) bool {
	if remaining <= 0 || remaining >= maxSeconds {
		return false
	}
	return remaining%5 == 0 || remaining <= 3
}

// ShowFeedback implements game.Presenter.
func (r *Runner) ShowFeedback(outcome model.Outcome, correctReading string) {
	r.printf("%s\n", feedbackLine(outcome, correctReading))
}

func feedbackLine(outcome model.Outcome, correctReading string) string {
	switch outcome {
	case model.OutcomeCorrect:
		return "✓ 正确！"
	case model.OutcomeTimeout:
		return fmt.Sprintf("⏱ 时间到了 · 正确答案是: %s", correctReading)
	default:
		return fmt.Sprintf("✗ 正确答案是: %s", correctReading)
	}
}

// PlayAudio implements game.Presenter.
func (r *Runner) PlayAudio(text string) {
	r.player.Say(text)
}

// ShowCompletion implements game.Presenter.
func (r *Runner) ShowCompletion(summary model.Summary) {
	if summary.Perfect {
		r.printf("\n✿ 太棒了！你全部答对了！ ✿\n")
	} else {
		r.printf("\n✿ 游戏结束 ✿\n")
	}
	if r.err != nil {
		return
	}
	if err := recap.RenderSummary(r.out, summary); err != nil {
		r.err = fmt.Errorf("failed to write summary: %w", err)
		return
	}
	r.printf("\nPlay again? [Enter/y] or q to quit\n")
}

// HideCompletion implements game.Presenter.
func (r *Runner) HideCompletion() {}
