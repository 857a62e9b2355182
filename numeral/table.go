package numeral

import (
	"errors"
	"fmt"
	"sort"
)

// MaxWindow is the largest word length a WordTable accepts. Candidate windows
// live in a fixed array of this size.
const MaxWindow = 8

var (
	// ErrEmptyTable is returned when a table is built with no words.
	ErrEmptyTable = errors.New("numeral: word table is empty")
	// ErrInvalidWord is returned for words that cannot be scanned.
	ErrInvalidWord = errors.New("numeral: invalid digit word")
	// ErrInvalidValue is returned for values outside 1..9.
	ErrInvalidValue = errors.New("numeral: digit value out of range")
)

// defaultWords are the English spellings of 1 through 9. Zero has no entry.
var defaultWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

var defaultTable = mustTable(defaultWords)

// WordTable maps digit word spellings to their values.
// A WordTable is immutable once built and may be shared between goroutines.
type WordTable struct {
	forward  map[string]int
	reversed map[string]int
	words    []string
	maxLen   int
}

// DefaultTable returns the table of English digit words "one" through "nine".
// The same instance is returned on every call.
func DefaultTable() *WordTable {
	return defaultTable
}

// NewWordTable builds a table from spelling to value.
// Words must be non-empty ASCII, at most MaxWindow bytes, and must not contain
// digit characters. Values must be in 1..9.
func NewWordTable(words map[string]int) (*WordTable, error) {
	if len(words) == 0 {
		return nil, ErrEmptyTable
	}

	t := &WordTable{
		forward:  make(map[string]int, len(words)),
		reversed: make(map[string]int, len(words)),
		words:    make([]string, 0, len(words)),
	}

	for w, v := range words {
		if err := validateWord(w); err != nil {
			return nil, err
		}
		if v < 1 || v > 9 {
			return nil, fmt.Errorf("%w: %q has value %d", ErrInvalidValue, w, v)
		}
		t.forward[w] = v
		t.reversed[reverseString(w)] = v
		t.words = append(t.words, w)
		if len(w) > t.maxLen {
			t.maxLen = len(w)
		}
	}
	sort.Strings(t.words)

	return t, nil
}

func validateWord(w string) error {
	if w == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if len(w) > MaxWindow {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidWord, w, MaxWindow)
	}
	for i := 0; i < len(w); i++ {
		if w[i] >= 0x80 {
			return fmt.Errorf("%w: %q is not ASCII", ErrInvalidWord, w)
		}
		if isDigit(w[i]) {
			return fmt.Errorf("%w: %q contains a digit", ErrInvalidWord, w)
		}
	}
	return nil
}

func mustTable(words map[string]int) *WordTable {
	t, err := NewWordTable(words)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the value of the word spelled by window.
func (t *WordTable) Lookup(window []byte) (int, bool) {
	v, ok := t.forward[string(window)]
	return v, ok
}

// lookupReversed returns the value of the word whose reversed spelling is window.
func (t *WordTable) lookupReversed(window []byte) (int, bool) {
	v, ok := t.reversed[string(window)]
	return v, ok
}

// MaxLen returns the length of the longest word in the table.
func (t *WordTable) MaxLen() int {
	return t.maxLen
}

// Len returns the number of words in the table.
func (t *WordTable) Len() int {
	return len(t.words)
}

// Words returns the spellings in the table, sorted.
func (t *WordTable) Words() []string {
	return append([]string(nil), t.words...)
}

// Reversed returns a table whose spellings are this table's words reversed,
// with the same values. Scanning a reversed line forward against the reversed
// table gives the same digits as scanning the original line backward.
func (t *WordTable) Reversed() *WordTable {
	r := &WordTable{
		forward:  t.reversed,
		reversed: t.forward,
		words:    make([]string, 0, len(t.words)),
		maxLen:   t.maxLen,
	}
	for w := range r.forward {
		r.words = append(r.words, w)
	}
	sort.Strings(r.words)
	return r
}

func reverseString(s string) string {
	b := []byte(s)
	reverseInPlace(b)
	return string(b)
}

func reverseInPlace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Reverse returns a reversed copy of line.
func Reverse(line []byte) []byte {
	out := append([]byte(nil), line...)
	reverseInPlace(out)
	return out
}
