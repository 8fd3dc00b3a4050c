// Package game implements the round and countdown state machine of the quiz.
package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/tuihanzi/internal/dataset"
	"github.com/verte-zerg/tuihanzi/internal/model"
)

// PointsPerCorrect is awarded for every correct answer.
const PointsPerCorrect = 10

// Settings holds the timing and length of a game.
type Settings struct {
	TotalRounds  int
	RoundSeconds int
	TickInterval time.Duration
	CorrectDelay time.Duration
	WrongDelay   time.Duration
	TimeoutDelay time.Duration
}

// DefaultSettings returns ten rounds of twenty seconds each.
func DefaultSettings() Settings {
	return Settings{
		TotalRounds:  10,
		RoundSeconds: 20,
		TickInterval: time.Second,
		CorrectDelay: 1500 * time.Millisecond,
		WrongDelay:   2 * time.Second,
		TimeoutDelay: 2 * time.Second,
	}
}

// SettingsFromConfig maps user configuration onto Settings.
func SettingsFromConfig(cfg model.Config) Settings {
	s := DefaultSettings()
	if cfg.Rounds > 0 {
		s.TotalRounds = cfg.Rounds
	}
	if cfg.RoundSeconds > 0 {
		s.RoundSeconds = cfg.RoundSeconds
	}
	if cfg.CorrectDelay > 0 {
		s.CorrectDelay = cfg.CorrectDelay
	}
	if cfg.WrongDelay > 0 {
		s.WrongDelay = cfg.WrongDelay
	}
	if cfg.TimeoutDelay > 0 {
		s.TimeoutDelay = cfg.TimeoutDelay
	}
	return s
}

// Controller drives one quiz session at a time. All methods must be called
// from the goroutine that delivers the Scheduler's callbacks.
type Controller struct {
	settings Settings
	pool     Picker
	view     Presenter
	sched    Scheduler
	log      *zap.Logger

	state   GameState
	ticker  Handle
	pending Handle
}

// New constructs an idle Controller. A nil logger disables logging.
func New(settings Settings, pool Picker, view Presenter, sched Scheduler, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		settings: settings,
		pool:     pool,
		view:     view,
		sched:    sched,
		log:      log,
		state:    GameState{TotalRounds: settings.TotalRounds, Phase: PhaseIdle},
	}
}

// State returns a copy of the current game state.
func (c *Controller) State() GameState {
	return c.state.clone()
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Start begins a new game. It is ignored while a game is in progress.
func (c *Controller) Start() {
	if c.state.Phase != PhaseIdle && c.state.Phase != PhaseFinished {
		c.log.Debug("start ignored", zap.Stringer("phase", c.state.Phase))
		return
	}
	c.cancelTimers()
	c.state = GameState{
		Round:       1,
		TotalRounds: c.settings.TotalRounds,
		Used:        map[string]struct{}{},
		Playing:     true,
	}
	c.log.Info("game started", zap.Int("rounds", c.settings.TotalRounds))

	c.view.HideCompletion()
	c.view.UpdateScore(0)
	c.view.PlayAudio(model.CueStart)
	c.beginRound()
}

// Tick counts down one second of the active round.
func (c *Controller) Tick() {
	if c.state.Phase != PhaseRoundActive {
		return
	}
	c.state.SecondsRemaining--
	if c.state.SecondsRemaining < 0 {
		c.state.SecondsRemaining = 0
	}
	c.view.UpdateCountdown(c.state.SecondsRemaining, c.settings.RoundSeconds)
	if c.state.SecondsRemaining == 0 {
		c.resolve(model.OutcomeTimeout, "")
	}
}

// Submit judges an answer for the active round. Leading and trailing
// whitespace and letter case are ignored; anything else must match exactly.
func (c *Controller) Submit(answer string) {
	if c.state.Phase != PhaseRoundActive || c.state.Current == nil {
		return
	}
	if dataset.NormalizeReading(answer) == dataset.NormalizeReading(c.state.Current.Reading) {
		c.resolve(model.OutcomeCorrect, answer)
		return
	}
	c.resolve(model.OutcomeIncorrect, answer)
}

func (c *Controller) beginRound() {
	c.cancelTimers()
	if c.state.Round > c.state.TotalRounds {
		c.finish()
		return
	}
	entry, ok := c.pool.Pick(c.state.Used)
	if !ok {
		c.log.Info("character pool exhausted", zap.Int("round", c.state.Round))
		c.finish()
		return
	}
	c.state.Current = &entry
	c.state.Used[entry.Glyph] = struct{}{}
	c.state.SecondsRemaining = c.settings.RoundSeconds
	c.state.Phase = PhaseRoundActive
	c.log.Debug("round started", zap.Int("round", c.state.Round), zap.String("glyph", entry.Glyph))

	c.view.UpdateRound(c.state.Round, c.state.TotalRounds)
	c.view.ShowCharacter(entry)
	c.view.ShowHint(entry.Meaning)
	c.view.UpdateCountdown(c.state.SecondsRemaining, c.settings.RoundSeconds)
	c.view.PlayAudio(entry.Glyph)
	c.ticker = c.sched.Every(c.settings.TickInterval, c.Tick)
}

func (c *Controller) resolve(outcome model.Outcome, answer string) {
	c.stopTicker()
	c.state.Phase = PhaseRoundResolved

	entry := *c.state.Current
	result := model.RoundResult{
		Round:   c.state.Round,
		Entry:   entry,
		Answer:  answer,
		Outcome: outcome,
	}
	var (
		delay   time.Duration
		cue     string
		reading string
	)
	switch outcome {
	case model.OutcomeCorrect:
		result.Points = PointsPerCorrect
		c.state.Score += PointsPerCorrect
		delay = c.settings.CorrectDelay
		cue = model.CueCorrect
	case model.OutcomeIncorrect:
		delay = c.settings.WrongDelay
		cue = model.CueTryAgain
		reading = entry.Reading
	default:
		delay = c.settings.TimeoutDelay
		cue = model.CueTimeUp
		reading = entry.Reading
	}
	c.state.Results = append(c.state.Results, result)
	c.log.Debug("round resolved",
		zap.Int("round", c.state.Round),
		zap.Stringer("outcome", outcome),
		zap.Int("score", c.state.Score),
	)

	if outcome == model.OutcomeCorrect {
		c.view.UpdateScore(c.state.Score)
	}
	c.view.ShowFeedback(outcome, reading)
	c.view.PlayAudio(cue)
	c.pending = c.sched.After(delay, c.advanceRound)
}

func (c *Controller) advanceRound() {
	if c.state.Phase != PhaseRoundResolved {
		return
	}
	c.pending = nil
	c.state.Round++
	c.beginRound()
}

func (c *Controller) finish() {
	c.cancelTimers()
	c.state.Phase = PhaseFinished
	c.state.Playing = false

	perfect := c.state.Score == c.state.TotalRounds*PointsPerCorrect
	summary := model.Summary{
		Score:       c.state.Score,
		TotalRounds: c.state.TotalRounds,
		Perfect:     perfect,
		Results:     append([]model.RoundResult(nil), c.state.Results...),
	}
	c.log.Info("game finished", zap.Int("score", summary.Score), zap.Bool("perfect", perfect))

	c.view.ShowCompletion(summary)
	if perfect {
		c.view.PlayAudio(model.CuePerfect)
	} else {
		c.view.PlayAudio(model.GameOverCue(summary.Score))
	}
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Cancel()
		c.ticker = nil
	}
}

func (c *Controller) cancelTimers() {
	c.stopTicker()
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}
