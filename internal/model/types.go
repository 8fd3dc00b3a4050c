// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Config defines game settings.
type Config struct {
	Rounds       int
	RoundSeconds int
	CorrectDelay time.Duration
	WrongDelay   time.Duration
	TimeoutDelay time.Duration
	DatasetPath  string
	Seed         int64
	Mute         bool
	Volume       float64
}

// CharacterEntry is one quiz item.
type CharacterEntry struct {
	Glyph   string
	Reading string
	Meaning string
}

// Outcome classifies how a round was resolved.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// RoundResult captures a resolved round.
type RoundResult struct {
	Round   int
	Entry   CharacterEntry
	Answer  string
	Outcome Outcome
	Points  int
}

// Summary is handed to the completion screen when a game ends.
type Summary struct {
	Score       int
	TotalRounds int
	Perfect     bool
	Results     []RoundResult
}

// Spoken cue texts.
const (
	CueStart          = "游戏开始"
	CueCorrect        = "正确！"
	CueTryAgain       = "再试试"
	CueTimeUp         = "时间到了"
	CuePerfect        = "太棒了！你全部答对了！"
	CueGameOverPrefix = "游戏结束"
)

// GameOverCue returns the spoken text for a non-perfect finish.
func GameOverCue(score int) string {
	return fmt.Sprintf("%s，你的得分是%d分", CueGameOverPrefix, score)
}
