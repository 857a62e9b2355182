package numeral

// Kind records how a digit was recognized.
type Kind int

const (
	// Literal is an ASCII digit character.
	Literal Kind = iota
	// Word is a spelled-out digit word from the table.
	Word
)

// String returns "Literal" or "Word".
func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Word:
		return "Word"
	default:
		return "Unknown"
	}
}

// Match is a recognized digit and the byte span [Start, End) it occupies in
// the scanned line.
type Match struct {
	Value int
	Kind  Kind
	Start int
	End   int
}

// Scanner finds digits in a line. It holds no mutable state and is safe for
// concurrent use.
type Scanner struct {
	table *WordTable
}

// NewScanner returns a Scanner that recognizes literal digits and the words in
// table. A nil table recognizes literal digits only.
func NewScanner(table *WordTable) *Scanner {
	return &Scanner{table: table}
}

// NewLiteralScanner returns a Scanner that recognizes literal digits only.
func NewLiteralScanner() *Scanner {
	return &Scanner{}
}

// Table returns the scanner's word table, or nil for a literal-only scanner.
func (s *Scanner) Table() *WordTable {
	return s.table
}

// Scan returns the first digit met while moving through line in dir.
// Forward finds the digit with the smallest start; Backward finds the digit
// with the largest end. The second result is false when line holds no digit.
func (s *Scanner) Scan(line []byte, dir Direction) (Match, bool) {
	if dir == Backward {
		for i := len(line) - 1; i >= 0; i-- {
			if m, ok := s.matchEndingAt(line, i); ok {
				return m, true
			}
		}
		return Match{}, false
	}

	for i := 0; i < len(line); i++ {
		if m, ok := s.matchStartingAt(line, i); ok {
			return m, true
		}
	}
	return Match{}, false
}

// ScanString is Scan for a string line.
func (s *Scanner) ScanString(line string, dir Direction) (Match, bool) {
	return s.Scan([]byte(line), dir)
}

// Digit returns only the value of the digit Scan finds.
func (s *Scanner) Digit(line []byte, dir Direction) (int, bool) {
	m, ok := s.Scan(line, dir)
	return m.Value, ok
}

// All returns every digit in line in forward order, one per start position.
// Overlapping words are reported individually: "oneight" yields 1 at 0 and
// 8 at 2.
func (s *Scanner) All(line []byte) []Match {
	var out []Match
	for i := 0; i < len(line); i++ {
		if m, ok := s.matchStartingAt(line, i); ok {
			out = append(out, m)
		}
	}
	return out
}

// matchStartingAt tests cursor position i of a forward scan.
func (s *Scanner) matchStartingAt(line []byte, i int) (Match, bool) {
	if isDigit(line[i]) {
		return Match{Value: int(line[i] - '0'), Kind: Literal, Start: i, End: i + 1}, true
	}
	if s.table == nil {
		return Match{}, false
	}

	var window [MaxWindow]byte
	for n := 0; n < s.table.maxLen && i+n < len(line); n++ {
		window[n] = line[i+n]
		if v, ok := s.table.Lookup(window[:n+1]); ok {
			return Match{Value: v, Kind: Word, Start: i, End: i + n + 1}, true
		}
	}
	return Match{}, false
}

// matchEndingAt tests cursor position i of a backward scan. The window is
// filled right to left, so it holds the candidate spelled in reverse.
func (s *Scanner) matchEndingAt(line []byte, i int) (Match, bool) {
	if isDigit(line[i]) {
		return Match{Value: int(line[i] - '0'), Kind: Literal, Start: i, End: i + 1}, true
	}
	if s.table == nil {
		return Match{}, false
	}

	var window [MaxWindow]byte
	for n := 0; n < s.table.maxLen && i-n >= 0; n++ {
		window[n] = line[i-n]
		if v, ok := s.table.lookupReversed(window[:n+1]); ok {
			return Match{Value: v, Kind: Word, Start: i - n, End: i + 1}, true
		}
	}
	return Match{}, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
