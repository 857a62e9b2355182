// Package numeral finds the first or last digit in a line of text, where a
// digit is either an ASCII digit character or a spelled-out English digit word.
//
// # Scanning
//
// A [Scanner] walks a line one byte at a time in a [Direction]:
//
//	s := numeral.NewScanner(numeral.DefaultTable())
//	first, ok := s.Scan([]byte("eightwo"), numeral.Forward)  // 8
//	last, ok := s.Scan([]byte("eightwo"), numeral.Backward)  // 2
//
// At every cursor position a literal digit is checked first. If there is none,
// a candidate window of up to [WordTable.MaxLen] bytes is grown from the cursor
// and compared against the word table. Forward scans match words starting at
// the cursor; backward scans match words ending at the cursor. The cursor only
// ever advances by one, so overlapping spellings such as "twone" or "oneight"
// are each discoverable.
//
// # Word Tables
//
// A [WordTable] is built once and shared read-only. [DefaultTable] holds
// "one" through "nine". Passing a nil table to [NewScanner] gives a scanner
// that only recognizes literal digits.
//
// # Direction Symmetry
//
// Scanning a line backward is equivalent to scanning the reversed line forward
// against the reversed table:
//
//	t := numeral.DefaultTable()
//	a, _ := numeral.NewScanner(t).Scan(line, numeral.Backward)
//	b, _ := numeral.NewScanner(t.Reversed()).Scan(numeral.Reverse(line), numeral.Forward)
//	// a.Value == b.Value
package numeral
