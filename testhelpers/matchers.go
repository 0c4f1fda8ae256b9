package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/line/internal/matcher"
	"github.com/standardbeagle/line/internal/types"
)

// Position is a (positive, negative) index pair handed to a matcher
type Position struct {
	Positive int
	Negative types.NegativeIndex
}

// At builds a position from a bare index. A positive index is used as the
// positive index with no negative index; a negative index is used as the
// negative index with a positive index of 0, which no positive matcher hits.
func At(index int) Position {
	if index < 0 {
		return Position{Positive: 0, Negative: types.Negative(index)}
	}
	return Position{Positive: index, Negative: types.NoNegative}
}

// Pair builds a position with both indexes set
func Pair(positive, negative int) Position {
	return Position{Positive: positive, Negative: types.Negative(negative)}
}

// Lines converts bare indexes with At
func Lines(indexes ...int) []Position {
	positions := make([]Position, len(indexes))
	for i, index := range indexes {
		positions[i] = At(index)
	}
	return positions
}

// AssertMatches checks that m matches every position
func AssertMatches(t *testing.T, m matcher.Matcher, positions ...Position) bool {
	t.Helper()
	ok := true
	for _, p := range positions {
		ok = assert.Truef(t, m.Matches("", p.Positive, p.Negative),
			"%s should match (%d, %s)", matcher.Inspect(m), p.Positive, p.Negative) && ok
	}
	return ok
}

// AssertNoMatches checks that m matches none of the positions
func AssertNoMatches(t *testing.T, m matcher.Matcher, positions ...Position) bool {
	t.Helper()
	ok := true
	for _, p := range positions {
		ok = assert.Falsef(t, m.Matches("", p.Positive, p.Negative),
			"%s should not match (%d, %s)", matcher.Inspect(m), p.Positive, p.Negative) && ok
	}
	return ok
}
