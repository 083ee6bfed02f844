// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create new games with a deterministic, seed-driven target.
//   - Validate and apply guesses (length, alphabet, word-list membership).
//   - Score guesses with the two-pass tie-consumption algorithm.
//   - Track state transitions: playing → won/resigned.
//
// Notes:
//   - The word list is an explicit *lexicon.Store handle, never a global;
//     one sorted store can be shared read-only across sessions.
//   - Invalid guesses are recoverable (ErrInvalidGuess) and do not count
//     toward Guesses; a corrupt word list never reaches this package.
//   - randomID() is a compact hex identifier for correlating sessions.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lexiconlab/wordle-cli/internal/lexicon"
)

// ErrInvalidGuess reports a malformed or out-of-list guess.
// The turn is retried; the session keeps going.
var ErrInvalidGuess = errors.New("invalid guess")

// ErrFinished reports a guess against a game that is already over.
var ErrFinished = errors.New("game finished")

// New constructs a game whose target is chosen deterministically from
// lex by seed. The store must be non-empty.
func New(lex *lexicon.Store, seed int64) (*Game, error) {
	target, err := lex.Choose(seed)
	if err != nil {
		return nil, err
	}
	return NewWithTarget(target), nil
}

// NewWithTarget constructs a game with a fixed target word.
// Used by tests and by API callers that pin the answer.
func NewWithTarget(target string) *Game {
	return &Game{ID: randomID(), Target: target}
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly the store's word length, all a–z.
//   - Guess must be present in the word list.
//
// A valid guess increments Guesses; an all-exact result wins the game.
func (g *Game) ApplyGuess(lex *lexicon.Store, guess string) ([]Mark, error) {
	if g.Finished {
		return nil, ErrFinished
	}
	if !lex.ValidWord(guess) {
		return nil, ErrInvalidGuess
	}
	if !lex.Contains(guess) {
		return nil, fmt.Errorf("not in word list: %w", ErrInvalidGuess)
	}

	marks := Evaluate(guess, g.Target)
	g.Guesses++

	if allExact(marks) {
		g.Finished, g.Won = true, true
	}
	return marks, nil
}

// Resign ends the session without a win, revealing the target to the caller.
func (g *Game) Resign() string {
	g.Finished = true
	return g.Target
}

// State reports a coarse string representation of the game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "resigned"
	}
	return "playing"
}

// Evaluate classifies each guess letter against the target.
//
// Pass 1:
//   - Mark positions where guess and target agree as exact, and record
//     those target positions as consumed.
//
// Pass 2:
//   - For each remaining guess letter, scan the target left to right for
//     the first unconsumed position holding that letter. Found: consume
//     it and mark elsewhere. Not found: mark absent.
//
// Consumption is a one-to-one tie between a guess letter occurrence and
// a target letter occurrence, so a letter guessed more times than it
// appears in the target never earns extra non-absent marks.
//
// Both words must have the same length; the caller validates that.
func Evaluate(guess, target string) []Mark {
	n := len(guess)
	marks := make([]Mark, n)
	consumed := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			marks[i] = MarkExact
			consumed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkExact {
			continue
		}
		marks[i] = MarkAbsent
		for j := 0; j < n; j++ {
			if !consumed[j] && target[j] == guess[i] {
				consumed[j] = true
				marks[i] = MarkElsewhere
				break
			}
		}
	}
	return marks
}

// allExact returns true if every mark is MarkExact.
func allExact(m []Mark) bool {
	for _, x := range m {
		if x != MarkExact {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
