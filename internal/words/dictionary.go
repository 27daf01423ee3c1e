package words

import (
	"unicode"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
)

// Dictionary is a set-backed spellchecker for a single language.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	lang  language.Tag
	words map[string]struct{}
}

// NewDictionary builds a Dictionary for lang from list.
func NewDictionary(lang language.Tag, list []string) *Dictionary {
	d := &Dictionary{lang: lang, words: make(map[string]struct{}, len(list))}
	for _, w := range list {
		d.words[game.Normalize(w)] = struct{}{}
	}
	return d
}

// Contains reports whether w is a known word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.words[game.Normalize(w)]
	return ok
}

// Len returns the number of known words.
func (d *Dictionary) Len() int { return len(d.words) }

// Language returns the language the dictionary covers.
func (d *Dictionary) Language() language.Tag { return d.lang }

// RangeOfMisspelledWord returns the rune offset of the first unknown word in
// text, or game.NotFound. Words are maximal runs of letters.
// Text in another language is misspelled from its first rune.
func (d *Dictionary) RangeOfMisspelledWord(text string, lang language.Tag) int {
	if text == "" {
		return game.NotFound
	}
	if !d.speaks(lang) {
		return 0
	}

	start := -1
	var token []rune
	pos := 0
	flush := func() int {
		if start < 0 {
			return game.NotFound
		}
		at := start
		w := string(token)
		start, token = -1, token[:0]
		if !d.Contains(w) {
			return at
		}
		return game.NotFound
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = pos
			}
			token = append(token, r)
		} else if at := flush(); at != game.NotFound {
			return at
		}
		pos++
	}
	return flush()
}

// speaks reports whether lang shares the dictionary's base language.
func (d *Dictionary) speaks(lang language.Tag) bool {
	want, _ := d.lang.Base()
	got, _ := lang.Base()
	return want == got
}
