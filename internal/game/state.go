package game

import "github.com/verte-zerg/tuihanzi/internal/model"

// Phase is the controller's position in the round state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRoundActive
	PhaseRoundResolved
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseRoundActive:
		return "round-active"
	case PhaseRoundResolved:
		return "round-resolved"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

// GameState is the mutable aggregate owned by a Controller.
type GameState struct {
	Score            int
	Round            int
	TotalRounds      int
	SecondsRemaining int
	Current          *model.CharacterEntry
	Used             map[string]struct{}
	Playing          bool
	Phase            Phase
	Results          []model.RoundResult
}

func (s GameState) clone() GameState {
	out := s
	if s.Current != nil {
		entry := *s.Current
		out.Current = &entry
	}
	if s.Used != nil {
		out.Used = make(map[string]struct{}, len(s.Used))
		for glyph := range s.Used {
			out.Used[glyph] = struct{}{}
		}
	}
	if s.Results != nil {
		out.Results = append([]model.RoundResult(nil), s.Results...)
	}
	return out
}
