// Package recap renders end-of-game and dataset tables.
package recap

import (
	"fmt"
	"io"

	"github.com/verte-zerg/tuihanzi/internal/model"
)

// Counts tallies round outcomes.
type Counts struct {
	Correct   int
	Incorrect int
	Timeout   int
}

// Tally counts outcomes across results.
func Tally(results []model.RoundResult) Counts {
	var c Counts
	for _, r := range results {
		switch r.Outcome {
		case model.OutcomeCorrect:
			c.Correct++
		case model.OutcomeIncorrect:
			c.Incorrect++
		case model.OutcomeTimeout:
			c.Timeout++
		}
	}
	return c
}

// RoundLines formats one row per resolved round.
func RoundLines(results []model.RoundResult) []string {
	headers := []string{"#", "Char", "Reading", "Answer", "Result", "Pts"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		answer := r.Answer
		if r.Outcome == model.OutcomeTimeout {
			answer = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Round),
			r.Entry.Glyph,
			r.Entry.Reading,
			answer,
			r.Outcome.String(),
			fmt.Sprintf("%d", r.Points),
		})
	}
	return formatTable(headers, rows, map[int]bool{0: true, 5: true})
}

// RenderSummary prints the final score followed by the round table.
func RenderSummary(w io.Writer, summary model.Summary) error {
	if _, err := fmt.Fprintf(w, "Final score: %d / %d\n", summary.Score, summary.TotalRounds*10); err != nil {
		return err
	}
	counts := Tally(summary.Results)
	if _, err := fmt.Fprintf(w, "Correct %d · Incorrect %d · Timeout %d\n", counts.Correct, counts.Incorrect, counts.Timeout); err != nil {
		return err
	}
	if len(summary.Results) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	for _, line := range RoundLines(summary.Results) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderEntries prints a dataset as a table.
func RenderEntries(w io.Writer, entries []model.CharacterEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No characters found.")
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Glyph, e.Reading, e.Meaning})
	}
	for _, line := range formatTable([]string{"Char", "Reading", "Meaning"}, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
