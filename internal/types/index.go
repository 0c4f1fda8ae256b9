package types

import "strconv"

// NegativeIndex is a line's position counted from the end of the input.
// It is only known for lines within the lookahead window of a drained
// stream, so absence is a state of its own rather than a sentinel value.
type NegativeIndex struct {
	Value int  // -1 is the last line, -2 the one before it
	Valid bool // false until the end of the input is within reach
}

// NoNegative is the absent negative index
var NoNegative = NegativeIndex{}

// Negative returns a present negative index
func Negative(n int) NegativeIndex {
	return NegativeIndex{Value: n, Valid: true}
}

// Is reports whether the index is present and equal to i
func (n NegativeIndex) Is(i int) bool {
	return n.Valid && n.Value == i
}

// String renders the index, or "nil" when absent
func (n NegativeIndex) String() string {
	if !n.Valid {
		return "nil"
	}
	return strconv.Itoa(n.Value)
}
