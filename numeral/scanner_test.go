package numeral

import (
	"testing"
)

func TestScan_LiteralDigits(t *testing.T) {
	tests := []struct {
		line      string
		wantFirst int
		wantLast  int
	}{
		{"1abc2", 1, 2},
		{"pqr3stu8vwx", 3, 8},
		{"a1b2c3d4e5f", 1, 5},
		{"treb7uchet", 7, 7},
		{"9", 9, 9},
		{"123456789", 1, 9},
	}

	for _, scanner := range []*Scanner{NewLiteralScanner(), NewScanner(DefaultTable())} {
		for _, tt := range tests {
			first, ok := scanner.Digit([]byte(tt.line), Forward)
			if !ok || first != tt.wantFirst {
				t.Errorf("Digit(%q, Forward) = %d, %v; want %d", tt.line, first, ok, tt.wantFirst)
			}
			last, ok := scanner.Digit([]byte(tt.line), Backward)
			if !ok || last != tt.wantLast {
				t.Errorf("Digit(%q, Backward) = %d, %v; want %d", tt.line, last, ok, tt.wantLast)
			}
		}
	}
}

func TestScan_EachWordAlone(t *testing.T) {
	s := NewScanner(DefaultTable())
	for word, want := range defaultWords {
		t.Run(word, func(t *testing.T) {
			for _, dir := range []Direction{Forward, Backward} {
				m, ok := s.ScanString(word, dir)
				if !ok {
					t.Fatalf("ScanString(%q, %v) found nothing", word, dir)
				}
				if m.Value != want || m.Kind != Word {
					t.Errorf("ScanString(%q, %v) = %+v, want value %d kind Word", word, dir, m, want)
				}
				if m.Start != 0 || m.End != len(word) {
					t.Errorf("ScanString(%q, %v) span = [%d,%d), want [0,%d)", word, dir, m.Start, m.End, len(word))
				}
			}
		})
	}
}

func TestScan_Overlaps(t *testing.T) {
	tests := []struct {
		line      string
		wantFirst int
		wantLast  int
	}{
		{"eightwo", 8, 2},
		{"twone", 2, 1},
		{"oneight", 1, 8},
		{"sevenine", 7, 9},
		{"threeight", 3, 8},
		{"fiveight", 5, 8},
		{"nineight", 9, 8},
		{"eighthree", 8, 3},
	}

	s := NewScanner(DefaultTable())
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			first, ok := s.Digit([]byte(tt.line), Forward)
			if !ok || first != tt.wantFirst {
				t.Errorf("Forward = %d, %v; want %d", first, ok, tt.wantFirst)
			}
			last, ok := s.Digit([]byte(tt.line), Backward)
			if !ok || last != tt.wantLast {
				t.Errorf("Backward = %d, %v; want %d", last, ok, tt.wantLast)
			}
		})
	}
}

func TestScan_Spans(t *testing.T) {
	s := NewScanner(DefaultTable())

	m, ok := s.ScanString("xtwone3four", Forward)
	if !ok || m != (Match{Value: 2, Kind: Word, Start: 1, End: 4}) {
		t.Errorf("Forward = %+v, %v", m, ok)
	}

	m, ok = s.ScanString("xtwone3four", Backward)
	if !ok || m != (Match{Value: 4, Kind: Word, Start: 7, End: 11}) {
		t.Errorf("Backward = %+v, %v", m, ok)
	}

	m, ok = s.ScanString("ab5cd", Backward)
	if !ok || m != (Match{Value: 5, Kind: Literal, Start: 2, End: 3}) {
		t.Errorf("Backward literal = %+v, %v", m, ok)
	}
}

func TestScan_LiteralWinsAtSamePosition(t *testing.T) {
	s := NewScanner(DefaultTable())

	// The literal 3 is met before the word that starts after it.
	m, ok := s.ScanString("3one", Forward)
	if !ok || m.Value != 3 || m.Kind != Literal {
		t.Errorf("Forward = %+v, want literal 3", m)
	}

	// Backward, the word ending at the last byte is met first.
	m, ok = s.ScanString("3one", Backward)
	if !ok || m.Value != 1 || m.Kind != Word {
		t.Errorf("Backward = %+v, want word 1", m)
	}
}

func TestScan_NoDigit(t *testing.T) {
	lines := []string{"", "abc", "xyz", "on", "tw", "nin", "eigh", "enoowt", "ONE", "Two"}

	s := NewScanner(DefaultTable())
	for _, line := range lines {
		for _, dir := range []Direction{Forward, Backward} {
			if m, ok := s.ScanString(line, dir); ok {
				t.Errorf("ScanString(%q, %v) = %+v, want no match", line, dir, m)
			}
		}
	}
}

func TestScan_LiteralOnlyIgnoresWords(t *testing.T) {
	s := NewLiteralScanner()
	if _, ok := s.ScanString("onetwothree", Forward); ok {
		t.Error("literal scanner matched a word")
	}
	if d, ok := s.Digit([]byte("two1nine"), Backward); !ok || d != 1 {
		t.Errorf("Digit = %d, %v; want 1", d, ok)
	}
	if s.Table() != nil {
		t.Error("literal scanner has a table")
	}
}

func TestScan_Zero(t *testing.T) {
	s := NewScanner(DefaultTable())
	m, ok := s.ScanString("ab0cd", Forward)
	if !ok || m.Value != 0 || m.Kind != Literal {
		t.Errorf("ScanString = %+v, %v; want literal 0", m, ok)
	}
}

func TestScan_NonASCIIPassesThrough(t *testing.T) {
	s := NewScanner(DefaultTable())
	line := []byte("héllo\xfftwo\xfe")
	d, ok := s.Digit(line, Forward)
	if !ok || d != 2 {
		t.Errorf("Forward = %d, %v; want 2", d, ok)
	}
	d, ok = s.Digit(line, Backward)
	if !ok || d != 2 {
		t.Errorf("Backward = %d, %v; want 2", d, ok)
	}
}

func TestScan_WordAtLineEdges(t *testing.T) {
	s := NewScanner(DefaultTable())

	// A word cut off by the start of the line must not match backward.
	if m, ok := s.ScanString("ne", Backward); ok {
		t.Errorf("Backward on %q = %+v, want none", "ne", m)
	}
	// A word cut off by the end of the line must not match forward.
	if m, ok := s.ScanString("xsev", Forward); ok {
		t.Errorf("Forward on %q = %+v, want none", "xsev", m)
	}
}

func TestAll(t *testing.T) {
	s := NewScanner(DefaultTable())

	tests := []struct {
		line string
		want []Match
	}{
		{"", nil},
		{"abc", nil},
		{"oneight", []Match{
			{Value: 1, Kind: Word, Start: 0, End: 3},
			{Value: 8, Kind: Word, Start: 2, End: 7},
		}},
		{"twone3", []Match{
			{Value: 2, Kind: Word, Start: 0, End: 3},
			{Value: 1, Kind: Word, Start: 2, End: 5},
			{Value: 3, Kind: Literal, Start: 5, End: 6},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := s.All([]byte(tt.line))
			if len(got) != len(tt.want) {
				t.Fatalf("All(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("All(%q)[%d] = %+v, want %+v", tt.line, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAll_AgreesWithScan(t *testing.T) {
	s := NewScanner(DefaultTable())
	for _, line := range []string{"two1nine", "eightwothree", "abcone2threexyz", "zoneight234", "7pqrstsixteen"} {
		all := s.All([]byte(line))
		first, _ := s.ScanString(line, Forward)
		if all[0] != first {
			t.Errorf("%q: All()[0] = %+v, Scan Forward = %+v", line, all[0], first)
		}

		last, _ := s.ScanString(line, Backward)
		maxEnd := all[0]
		for _, m := range all {
			if m.End >= maxEnd.End {
				maxEnd = m
			}
		}
		if maxEnd.Value != last.Value || maxEnd.End != last.End {
			t.Errorf("%q: largest-end match %+v, Scan Backward = %+v", line, maxEnd, last)
		}
	}
}

func TestSymmetry_ReversedTable(t *testing.T) {
	table := DefaultTable()
	backward := NewScanner(table)
	reversed := NewScanner(table.Reversed())

	lines := []string{
		"eightwo", "twone", "oneight", "xtwone3four", "4nineeightseven2",
		"7pqrstsixteen", "abc", "", "sevenine", "nineeightsevensixfivefourthreetwoone",
	}
	for word := range defaultWords {
		lines = append(lines, word, "zz"+word, "1"+word)
	}

	for _, line := range lines {
		a, okA := backward.Scan([]byte(line), Backward)
		b, okB := reversed.Scan(Reverse([]byte(line)), Forward)
		if okA != okB || a.Value != b.Value {
			t.Errorf("%q: Backward = %d,%v; reversed Forward = %d,%v", line, a.Value, okA, b.Value, okB)
		}
		if okA && a.End != len(line)-b.Start {
			t.Errorf("%q: Backward end %d does not mirror reversed start %d", line, a.End, b.Start)
		}
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Forward, "Forward"},
		{Backward, "Backward"},
		{Direction(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
	if Forward.Reverse() != Backward || Backward.Reverse() != Forward {
		t.Error("Reverse did not flip direction")
	}
}

func TestKind_String(t *testing.T) {
	if Literal.String() != "Literal" || Word.String() != "Word" || Kind(9).String() != "Unknown" {
		t.Error("unexpected Kind strings")
	}
}

func TestScan_DoesNotAllocate(t *testing.T) {
	s := NewScanner(DefaultTable())
	line := []byte("xxxxxxxxxxxxxxxxxxxxtwonexxxxxxxxxxxxxxxxxxxx")
	allocs := testing.AllocsPerRun(100, func() {
		s.Scan(line, Forward)
		s.Scan(line, Backward)
	})
	if allocs != 0 {
		t.Errorf("Scan allocated %.1f times per run, want 0", allocs)
	}
}
