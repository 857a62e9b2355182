package numeral

import (
	"testing"
)

func FuzzScan(f *testing.F) {
	seeds := []string{
		"", "two1nine", "eightwothree", "abcone2threexyz", "xtwone3four",
		"4nineeightseven2", "zoneight234", "7pqrstsixteen", "oneight", "\xff\xfe",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	table := DefaultTable()
	s := NewScanner(table)
	reversed := NewScanner(table.Reversed())

	f.Fuzz(func(t *testing.T, line []byte) {
		first, okF := s.Scan(line, Forward)
		last, okB := s.Scan(line, Backward)

		if okF != okB {
			t.Fatalf("Forward found=%v but Backward found=%v", okF, okB)
		}
		if !okF {
			if all := s.All(line); len(all) != 0 {
				t.Fatalf("no scan match but All returned %v", all)
			}
			return
		}

		for _, m := range []Match{first, last} {
			if m.Start < 0 || m.End > len(line) || m.Start >= m.End {
				t.Fatalf("bad span %+v for line of length %d", m, len(line))
			}
			if m.Value < 0 || m.Value > 9 {
				t.Fatalf("bad value %+v", m)
			}
		}
		if first.Start > last.Start {
			t.Fatalf("first %+v starts after last %+v", first, last)
		}

		mirrored, ok := reversed.Scan(Reverse(line), Forward)
		if !ok || mirrored.Value != last.Value {
			t.Fatalf("reversed-table scan = %+v,%v; Backward = %+v", mirrored, ok, last)
		}
	})
}
