package numeral

// Direction is the order in which a Scanner visits cursor positions.
type Direction int

const (
	// Forward scans left to right and finds the first digit.
	Forward Direction = iota
	// Backward scans right to left and finds the last digit.
	Backward
)

// String returns a string representation of the direction ("Forward" or "Backward").
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}
