// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the root word list and the dictionary from files or fall back to embedded defaults.
//   - Maintain a set for dictionary lookups (dictionary ∪ roots).
//   - Implement game.SpellChecker on top of that set.
//
// Word Lists:
//   - "roots":      candidate root words, one is picked per round.
//   - "dictionary": every word a player may submit (always includes roots).
//
// Load behavior:
//   1. Source.RootsFile set → roots come from that file, else from embedded start.txt.
//   2. Source.DictionaryFile set → dictionary comes from that file, else from embedded dictionary.txt.
//   3. Both lists are English; lookups in any other language are misspelled.
//   4. An empty root list is game.ErrEmptyWordList; callers may retry with LoadDefaults.
//
// Constraints:
//   • Words are trimmed, NFC-normalized and lowercased.
//   • Blank lines and lines starting with # are skipped; duplicates are dropped.

package words

import (
	"fmt"
	"os"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/game"
)

// Source names the files to load lists from. Empty paths use embedded defaults.
type Source struct {
	RootsFile      string
	DictionaryFile string
}

// Lists holds the loaded root words and dictionary.
type Lists struct {
	roots []string
	dict  *Dictionary
}

// Load reads both lists described by src.
func Load(src Source) (*Lists, error) {
	roots, err := loadList(src.RootsFile, assets.RootWords)
	if err != nil {
		return nil, fmt.Errorf("words: roots: %w", err)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("words: roots %s: %w", describe(src.RootsFile), game.ErrEmptyWordList)
	}

	dictWords, err := loadList(src.DictionaryFile, assets.DictionaryWords)
	if err != nil {
		return nil, fmt.Errorf("words: dictionary: %w", err)
	}

	return &Lists{
		roots: roots,
		dict:  NewDictionary(language.English, append(dictWords, roots...)),
	}, nil
}

// LoadDefaults reads the embedded lists only.
func LoadDefaults() (*Lists, error) {
	return Load(Source{})
}

// Roots returns the candidate root words.
func (l *Lists) Roots() []string { return l.roots }

// Dictionary returns the spellchecker built from the dictionary list.
func (l *Lists) Dictionary() *Dictionary { return l.dict }

// Stats returns counts of loaded words: (roots, dictionary).
func (l *Lists) Stats() (rootsCount int, dictionaryCount int) {
	return len(l.roots), l.dict.Len()
}

// loadList reads path, or calls fallback when path is empty, and cleans the result.
func loadList(path string, fallback func() ([]string, error)) ([]string, error) {
	var (
		raw []string
		err error
	)
	if path == "" {
		raw, err = fallback()
	} else {
		raw, err = readWordFile(path)
	}
	if err != nil {
		return nil, err
	}
	return normalizeLines(raw), nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalizeLines normalizes every entry, drops anything that is not a
// plain word, and removes duplicates keeping first occurrences.
func normalizeLines(lines []string) []string {
	out := lo.Map(lines, func(w string, _ int) string { return game.Normalize(w) })
	out = lo.Filter(out, func(w string, _ int) bool { return isWord(w) })
	return lo.Uniq(out)
}

// isWord reports whether s is non-empty and made of letters only.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func describe(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
