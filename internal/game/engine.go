// internal/game/engine.go
//
// Core engine for a single word scramble round.
// Responsibilities:
//   - Normalize raw player input (trim, NFC, lowercase).
//   - Validate candidates in a fixed order: length/novelty, uniqueness,
//     constructibility from the root's letters, dictionary lookup.
//   - Score accepted words (letter count plus an escalating bonus).
//   - Create and restart sessions with a randomly chosen root word.
//
// Notes:
//   - Every check here is a pure function; Submit returns a new Session
//     instead of mutating the caller's copy.
//   - The dictionary is injected as a SpellChecker (see types.go).
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"lukechampine.com/frand"
)

const (
	minLetters = 3

	smallBonusAfter = 5
	smallBonus      = 5
	bigBonusAfter   = 10
	bigBonus        = 10
)

// Picker returns an index in [0, n). n is always > 0.
type Picker func(n int) int

// DefaultPicker picks uniformly at random.
func DefaultPicker(n int) int { return frand.Intn(n) }

// Validator runs submissions against a session.
// Checker is consulted last and only for words that passed every other check.
type Validator struct {
	Checker  SpellChecker
	Language language.Tag
}

// NewValidator returns a Validator looking words up in lang.
func NewValidator(checker SpellChecker, lang language.Tag) *Validator {
	return &Validator{Checker: checker, Language: lang}
}

// Submit validates raw against s and, if accepted, returns the updated session.
//
// Validation order (first failure wins):
//   - at least 3 letters and not the root word itself
//   - not already in s.UsedWords
//   - buildable from the root's letters
//   - known to the dictionary
//
// A rejected submission returns s untouched. An accepted one is prepended
// to UsedWords in a fresh slice and its points are added to Score.
func (v *Validator) Submit(s Session, raw string) (Session, Result) {
	word := Normalize(raw)
	res := Result{Word: word}

	switch {
	case !IsLongEnoughAndNovelRoot(word, s.RootWord):
		res.Reason = ReasonTooShortOrRoot
	case !IsUnused(word, s.UsedWords):
		res.Reason = ReasonAlreadyUsed
	case !IsConstructible(word, s.RootWord):
		res.Reason = ReasonNotConstructible
	case !IsRealWord(word, v.Language, v.Checker):
		res.Reason = ReasonNotAWord
	}
	if res.Reason != ReasonNone {
		return s, res
	}

	res.Accepted = true
	res.Points = ScoreFor(word, len(s.UsedWords))

	used := make([]string, 0, len(s.UsedWords)+1)
	used = append(used, word)
	s.UsedWords = append(used, s.UsedWords...)
	s.Score += res.Points
	return s, res
}

// Normalize trims surrounding whitespace, composes the text to NFC and
// lowercases it using English casing rules.
func Normalize(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	return cases.Lower(language.English).String(s)
}

// IsLongEnoughAndNovelRoot reports whether word has at least 3 letters and
// is not the root word itself.
func IsLongEnoughAndNovelRoot(word, root string) bool {
	return utf8.RuneCountInString(word) >= minLetters && word != root
}

// IsUnused reports whether word has not been accepted yet.
func IsUnused(word string, used []string) bool {
	return !lo.Contains(used, word)
}

// IsConstructible reports whether word can be spelled with the root's
// letters, using each letter at most as many times as it appears in root.
//
// Letters of root are counted into a pool; every letter of word takes one
// from the pool and fails once that letter runs out.
func IsConstructible(word, root string) bool {
	pool := make(map[rune]int, len(root))
	for _, r := range root {
		pool[r]++
	}
	for _, r := range word {
		if pool[r] == 0 {
			return false
		}
		pool[r]--
	}
	return true
}

// IsRealWord reports whether checker finds no misspelling anywhere in word.
// A nil checker knows no words.
func IsRealWord(word string, lang language.Tag, checker SpellChecker) bool {
	if checker == nil {
		return false
	}
	return checker.RangeOfMisspelledWord(word, lang) == NotFound
}

// ScoreFor returns the points for word given how many words were accepted
// before it: one point per letter, +10 once 10 words are in, otherwise +5
// once 5 words are in.
func ScoreFor(word string, priorUsed int) int {
	points := utf8.RuneCountInString(word)
	switch {
	case priorUsed >= bigBonusAfter:
		points += bigBonus
	case priorUsed >= smallBonusAfter:
		points += smallBonus
	}
	return points
}

// StartNewRoot picks one word from list using pick and normalizes it.
// Returns ErrEmptyWordList when list is empty.
func StartNewRoot(list []string, pick Picker) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyWordList
	}
	if pick == nil {
		pick = DefaultPicker
	}
	i := pick(len(list))
	if i < 0 || i >= len(list) {
		return "", fmt.Errorf("game: picker returned %d for %d words", i, len(list))
	}
	return Normalize(list[i]), nil
}

// NewSession starts a round with a fresh ID and a root word drawn from list.
func NewSession(list []string, pick Picker) (Session, error) {
	return Restart(Session{ID: randomID()}, list, pick)
}

// Restart returns a fresh round for s: same ID, new root word, no used
// words, zero score. On error s is returned unchanged.
func Restart(s Session, list []string, pick Picker) (Session, error) {
	root, err := StartNewRoot(list, pick)
	if err != nil {
		return s, err
	}
	return Session{ID: s.ID, RootWord: root, UsedWords: []string{}}, nil
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
