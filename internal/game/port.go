package game

import "github.com/verte-zerg/tuihanzi/internal/model"

// Presenter displays game progress. Implementations are sinks and must not
// call back into the Controller from these methods.
type Presenter interface {
	ShowCharacter(entry model.CharacterEntry)
	ShowHint(meaning string)
	UpdateScore(total int)
	UpdateRound(number, total int)
	UpdateCountdown(remaining, maxSeconds int)
	// ShowFeedback reports a resolved round. correctReading is empty for a
	// correct answer.
	ShowFeedback(outcome model.Outcome, correctReading string)
	PlayAudio(text string)
	ShowCompletion(summary model.Summary)
	HideCompletion()
}

// Picker supplies characters not yet used in the current game.
type Picker interface {
	Pick(excluding map[string]struct{}) (model.CharacterEntry, bool)
}
