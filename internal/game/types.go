// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/elsewhere/absent).
//   - Game: state for a single in-progress or finished session.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":     letter is correct and in the correct position.
//   - "elsewhere": letter exists in the target but at a different position.
//   - "absent":    no unclaimed occurrence of the letter is left in the target.
type Mark string

const (
	MarkExact     Mark = "exact"
	MarkElsewhere Mark = "elsewhere"
	MarkAbsent    Mark = "absent"
)

// Game holds the state of a single session.
// There is no guess limit: play continues until the target is guessed
// or the player gives up.
type Game struct {
	ID       string // Unique game identifier (random hex string).
	Target   string // The word to find (always lowercase).
	Guesses  int    // Valid guesses made so far; invalid ones don't count.
	Finished bool   // True once the game is over (won or resigned).
	Won      bool   // True if the game finished with the target guessed.
}
