package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// wordSet is a SpellChecker backed by a fixed set of English words.
type wordSet map[string]bool

func (w wordSet) RangeOfMisspelledWord(text string, lang language.Tag) int {
	if lang != language.English || !w[text] {
		return 0
	}
	return NotFound
}

func newTestValidator(words ...string) *Validator {
	set := wordSet{}
	for _, w := range words {
		set[w] = true
	}
	return NewValidator(set, language.English)
}

func first(n int) int { return 0 }

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"Silent", "silent"},
		{"  LISTEN \n", "listen"},
		{"\tbake", "bake"},
		{"", ""},
		{"Café", "café"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestIsLongEnoughAndNovelRoot(t *testing.T) {
	assert.False(t, IsLongEnoughAndNovelRoot("", "listen"))
	assert.False(t, IsLongEnoughAndNovelRoot("li", "listen"))
	assert.False(t, IsLongEnoughAndNovelRoot("listen", "listen"))
	assert.True(t, IsLongEnoughAndNovelRoot("lit", "listen"))
	// three letters, six bytes
	assert.True(t, IsLongEnoughAndNovelRoot("été", "étés"))
}

func TestIsUnused(t *testing.T) {
	used := []string{"tin", "silent"}
	assert.False(t, IsUnused("tin", used))
	assert.True(t, IsUnused("list", used))
	assert.True(t, IsUnused("tin", nil))
}

func TestIsConstructible(t *testing.T) {
	testCases := []struct {
		word, root string
		ok         bool
	}{
		{"bake", "baker", true},
		{"bakers", "baker", false},
		{"aa", "apple", false},
		{"ppl", "apple", true},
		{"pppl", "apple", false},
		{"silent", "listen", true},
		{"", "listen", true},
		{"x", "", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.ok, IsConstructible(tc.word, tc.root), "%q from %q", tc.word, tc.root)
	}
}

func TestIsRealWord(t *testing.T) {
	set := wordSet{"silent": true}
	assert.True(t, IsRealWord("silent", language.English, set))
	assert.False(t, IsRealWord("slient", language.English, set))
	assert.False(t, IsRealWord("silent", language.French, set))
	assert.False(t, IsRealWord("silent", language.English, nil))
}

func TestScoreFor(t *testing.T) {
	testCases := []struct {
		word  string
		prior int
		pts   int
	}{
		{"silent", 0, 6},
		{"tin", 4, 3},
		{"tin", 5, 8},
		{"tin", 9, 8},
		{"tin", 10, 13},
		{"tin", 25, 13},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.pts, ScoreFor(tc.word, tc.prior), "%q after %d", tc.word, tc.prior)
	}
}

func TestSubmitAccepts(t *testing.T) {
	v := newTestValidator("silent", "tin")
	s := Session{ID: "abc", RootWord: "listen", UsedWords: []string{}}

	s, res := v.Submit(s, "  Silent ")
	assert.True(t, res.Accepted)
	assert.Equal(t, "silent", res.Word)
	assert.Equal(t, 6, res.Points)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 6, s.Score)
	assert.Equal(t, []string{"silent"}, s.UsedWords)

	s, res = v.Submit(s, "tin")
	require.True(t, res.Accepted)
	assert.Equal(t, []string{"tin", "silent"}, s.UsedWords)
	assert.Equal(t, 9, s.Score)
	assert.Equal(t, "abc", s.ID)
}

func TestSubmitRejections(t *testing.T) {
	v := newTestValidator("silent", "tin", "bake", "bakers", "aa", "lines")
	testCases := []struct {
		name   string
		root   string
		used   []string
		word   string
		reason Reason
	}{
		{"too short", "listen", nil, "ti", ReasonTooShortOrRoot},
		{"empty", "listen", nil, "   ", ReasonTooShortOrRoot},
		{"root itself", "listen", nil, "LISTEN", ReasonTooShortOrRoot},
		{"already used", "listen", []string{"tin"}, "tin", ReasonAlreadyUsed},
		{"used wins over unknown", "listen", []string{"zzz"}, "zzz", ReasonAlreadyUsed},
		{"extra letter", "baker", nil, "bakers", ReasonNotConstructible},
		{"double letter", "apple", nil, "aaa", ReasonNotConstructible},
		{"unknown word", "listen", nil, "nets", ReasonNotAWord},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Session{RootWord: tc.root, UsedWords: tc.used, Score: 7}
			out, res := v.Submit(s, tc.word)
			assert.False(t, res.Accepted)
			assert.Equal(t, tc.reason, res.Reason)
			assert.Zero(t, res.Points)
			assert.Equal(t, s, out)
			assert.NotEmpty(t, res.Reason.Title())
			assert.NotEmpty(t, res.Reason.Message())
		})
	}
}

func TestSubmitBaker(t *testing.T) {
	v := newTestValidator("bake", "bakers")
	s := Session{RootWord: "baker"}

	s, res := v.Submit(s, "bake")
	assert.True(t, res.Accepted)
	_, res = v.Submit(s, "bakers")
	assert.Equal(t, ReasonNotConstructible, res.Reason)
}

func TestSubmitDoesNotAliasInput(t *testing.T) {
	v := newTestValidator("tin", "net", "ten")
	used := make([]string, 1, 8)
	used[0] = "tin"
	orig := Session{RootWord: "listen", UsedWords: used, Score: 3}

	a, res := v.Submit(orig, "net")
	require.True(t, res.Accepted)
	b, res := v.Submit(orig, "ten")
	require.True(t, res.Accepted)

	assert.Equal(t, []string{"tin"}, orig.UsedWords)
	assert.Equal(t, 3, orig.Score)
	assert.Equal(t, []string{"net", "tin"}, a.UsedWords)
	assert.Equal(t, []string{"ten", "tin"}, b.UsedWords)
}

func TestSubmitBonus(t *testing.T) {
	words := []string{"abc", "abd", "abe", "abf", "abg", "abh", "abi", "abj", "abk", "abl", "abm", "abn"}
	v := newTestValidator(words...)
	s := Session{RootWord: "abcdefghijklmn"}

	var points []int
	for _, w := range words {
		var res Result
		s, res = v.Submit(s, w)
		require.True(t, res.Accepted, w)
		points = append(points, res.Points)
	}
	assert.Equal(t, []int{3, 3, 3, 3, 3, 8, 8, 8, 8, 8, 13, 13}, points)
	assert.Equal(t, 5*3+5*8+2*13, s.Score)
}

func TestStartNewRoot(t *testing.T) {
	_, err := StartNewRoot(nil, first)
	assert.ErrorIs(t, err, ErrEmptyWordList)

	root, err := StartNewRoot([]string{"Listen", "baker"}, first)
	require.NoError(t, err)
	assert.Equal(t, "listen", root)

	root, err = StartNewRoot([]string{"listen", "baker"}, func(n int) int { return n - 1 })
	require.NoError(t, err)
	assert.Equal(t, "baker", root)

	_, err = StartNewRoot([]string{"listen"}, func(n int) int { return n })
	assert.Error(t, err)
}

func TestStartNewRootDefaultPicker(t *testing.T) {
	list := []string{"listen", "baker", "apple"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		root, err := StartNewRoot(list, nil)
		require.NoError(t, err)
		seen[root] = true
	}
	for _, w := range list {
		assert.True(t, seen[w], w)
	}
}

func TestRestart(t *testing.T) {
	s := Session{ID: "abc", RootWord: "listen", UsedWords: []string{"tin", "silent"}, Score: 9}
	list := []string{"baker", "apple"}

	for i := 0; i < 20; i++ {
		fresh, err := Restart(s, list, nil)
		require.NoError(t, err)
		assert.Equal(t, "abc", fresh.ID)
		assert.Empty(t, fresh.UsedWords)
		assert.Zero(t, fresh.Score)
		assert.Contains(t, list, fresh.RootWord)
	}

	same, err := Restart(s, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyWordList)
	assert.Equal(t, s, same)
}

func TestNewSession(t *testing.T) {
	a, err := NewSession([]string{"listen"}, nil)
	require.NoError(t, err)
	b, err := NewSession([]string{"listen"}, nil)
	require.NoError(t, err)

	assert.Len(t, a.ID, 16)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "listen", a.RootWord)
	assert.NotNil(t, a.UsedWords)
}
