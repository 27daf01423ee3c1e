// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Session: state for a single round (root word, used words, score).
//   - Reason: per-submission rejection tag.
//   - Result: outcome of a single submission.
//   - SpellChecker: the dictionary collaborator the engine depends on.

package game

import (
	"errors"

	"golang.org/x/text/language"
)

// ErrEmptyWordList is returned when a root word is requested from an empty list.
var ErrEmptyWordList = errors.New("game: empty word list")

// NotFound is the offset a SpellChecker reports when no misspelling exists.
const NotFound = -1

// SpellChecker reports the rune offset of the first misspelled word in text,
// or NotFound if every word is recognized in lang.
type SpellChecker interface {
	RangeOfMisspelledWord(text string, lang language.Tag) int
}

// Reason tags why a submission was rejected.
// Possible values:
//   - "too_short_or_root": fewer than 3 letters, or the root word itself.
//   - "already_used":      submitted earlier in this session.
//   - "not_constructible": needs letters the root does not have (or not enough of them).
//   - "not_a_word":        the dictionary does not know it.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonTooShortOrRoot   Reason = "too_short_or_root"
	ReasonAlreadyUsed      Reason = "already_used"
	ReasonNotConstructible Reason = "not_constructible"
	ReasonNotAWord         Reason = "not_a_word"
)

// Title is the short headline shown to a player for this rejection.
func (r Reason) Title() string {
	switch r {
	case ReasonTooShortOrRoot, ReasonNotConstructible:
		return "Invalid entry"
	case ReasonAlreadyUsed:
		return "Unoriginal"
	case ReasonNotAWord:
		return "Just guessing?"
	}
	return ""
}

// Message is the longer explanation shown under Title.
func (r Reason) Message() string {
	switch r {
	case ReasonTooShortOrRoot:
		return "This answer is either less than 3 letters or the same as the rootword."
	case ReasonAlreadyUsed:
		return "This has been used before"
	case ReasonNotConstructible:
		return "You can not use these letters to make this word"
	case ReasonNotAWord:
		return "This is not a real word!"
	}
	return ""
}

// Session holds the state of a single round.
type Session struct {
	ID        string   // Unique session identifier (random hex string).
	RootWord  string   // Letters available for this round (lowercase).
	UsedWords []string // Accepted words, most recent first.
	Score     int      // Running total; never decreases within a round.
}

// Result is the outcome of one submission.
type Result struct {
	Word     string // Normalized candidate.
	Accepted bool
	Points   int    // Points earned; zero on rejection.
	Reason   Reason // Empty when accepted.
}
