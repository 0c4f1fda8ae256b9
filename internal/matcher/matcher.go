package matcher

import (
	"math"

	lineerrors "github.com/standardbeagle/line/internal/errors"
	"github.com/standardbeagle/line/internal/types"
)

// Kind identifies the variant of a matcher node
type Kind int

const (
	KindIndex Kind = iota + 1
	KindRange
	KindNegativeRange
	KindMatchEverything
	KindMatchNothing
	KindNot
	KindAnd
	KindOr
)

// kindRoot is the parent passed when rendering the root of a tree. No node
// has it as its own kind.
const kindRoot Kind = 0

var kindNames = map[Kind]string{
	KindIndex:           "index",
	KindRange:           "range",
	KindNegativeRange:   "negative_range",
	KindMatchEverything: "match_everything",
	KindMatchNothing:    "match_nothing",
	KindNot:             "not",
	KindAnd:             "and",
	KindOr:              "or",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Matcher is a positional predicate over a line. The set of variants is
// closed: Index, Range, NegativeRange, MatchEverything, MatchNothing, Not,
// And and Or.
// Matchers hold no mutable state and may share sub-trees.
type Matcher interface {
	// Matches reports whether the line at the given one-based positive index
	// and optional negative index is selected. Content is never inspected.
	Matches(content string, positive int, negative types.NegativeIndex) bool

	Kind() Kind

	render(parent Kind) string
}

// Index matches a single position, counted from the start when positive
// and from the end when negative
type Index struct {
	Value int
}

// Range matches positions between two bounds. The sign of each bound picks
// whether it is compared against the positive or the negative index.
type Range struct {
	Lower int
	Upper int
}

// NegativeRange matches positions between two bounds counted from the end.
// Unlike a Range with two negative bounds it is total: a line whose negative
// index is not known yet does not match.
type NegativeRange struct {
	Lower int
	Upper int
}

// MatchEverything matches every line
type MatchEverything struct{}

// MatchNothing matches no line
type MatchNothing struct{}

// Not negates its inner matcher
type Not struct {
	Matcher Matcher
}

// And matches when both sides match
type And struct {
	Left  Matcher
	Right Matcher
}

// Or matches when either side matches
type Or struct {
	Left  Matcher
	Right Matcher
}

func (m Index) Kind() Kind           { return KindIndex }
func (m Range) Kind() Kind           { return KindRange }
func (m NegativeRange) Kind() Kind   { return KindNegativeRange }
func (m MatchEverything) Kind() Kind { return KindMatchEverything }
func (m MatchNothing) Kind() Kind    { return KindMatchNothing }
func (m Not) Kind() Kind             { return KindNot }
func (m And) Kind() Kind             { return KindAnd }
func (m Or) Kind() Kind              { return KindOr }

func (m Index) Matches(_ string, positive int, negative types.NegativeIndex) bool {
	return positive == m.Value || negative.Is(m.Value)
}

// Matches evaluates the sign cases in order, first match wins. A range whose
// bounds fall through every case can never have been built correctly, so it
// panics with an *errors.InternalError instead of quietly matching nothing.
func (m Range) Matches(_ string, positive int, negative types.NegativeIndex) bool {
	lower, upper := m.Lower, m.Upper
	switch {
	case negative.Valid && lower < 0 && upper < 0:
		return lower <= negative.Value && negative.Value <= upper
	case negative.Valid && lower < 0:
		return lower <= negative.Value && positive <= upper
	case negative.Valid && upper < 0:
		return lower <= positive && negative.Value <= upper
	case 0 < lower && 0 < upper:
		return lower <= positive && positive <= upper
	case 0 < lower:
		return lower <= positive
	case 0 < upper:
		return positive <= upper
	}
	panic(lineerrors.NewInternalError("matcher",
		"range %d..%d reached a case thought to be impossible (positive=%d, negative=%s)",
		lower, upper, positive, negative))
}

func (m NegativeRange) Matches(_ string, _ int, negative types.NegativeIndex) bool {
	return negative.Valid && m.Lower <= negative.Value && negative.Value <= m.Upper
}

func (m MatchEverything) Matches(string, int, types.NegativeIndex) bool { return true }

func (m MatchNothing) Matches(string, int, types.NegativeIndex) bool { return false }

func (m Not) Matches(content string, positive int, negative types.NegativeIndex) bool {
	return !m.Matcher.Matches(content, positive, negative)
}

func (m And) Matches(content string, positive int, negative types.NegativeIndex) bool {
	return m.Left.Matches(content, positive, negative) && m.Right.Matches(content, positive, negative)
}

func (m Or) Matches(content string, positive int, negative types.NegativeIndex) bool {
	return m.Left.Matches(content, positive, negative) || m.Right.Matches(content, positive, negative)
}

// Children returns the direct sub-trees of m, left to right
func Children(m Matcher) []Matcher {
	switch n := m.(type) {
	case Not:
		return []Matcher{n.Matcher}
	case And:
		return []Matcher{n.Left, n.Right}
	case Or:
		return []Matcher{n.Left, n.Right}
	}
	return nil
}

// Bounds returns every integer a matcher tree references, left to right
func Bounds(m Matcher) []int {
	switch n := m.(type) {
	case Index:
		return []int{n.Value}
	case Range:
		return []int{n.Lower, n.Upper}
	case NegativeRange:
		return []int{n.Lower, n.Upper}
	}

	var bounds []int
	for _, child := range Children(m) {
		bounds = append(bounds, Bounds(child)...)
	}
	return bounds
}

// BufferSize is the lookahead a tree needs so that every negative position
// it references can be resolved: the largest magnitude among its negative
// bounds, or zero.
func BufferSize(m Matcher) int {
	return BufferSizeFor(Bounds(m))
}

// BufferSizeFor computes the lookahead for a list of bounds. math.MinInt
// has no positive counterpart and asks for math.MaxInt.
func BufferSizeFor(bounds []int) int {
	lowest := 0
	for _, b := range bounds {
		lowest = min(lowest, b)
	}
	if lowest == math.MinInt {
		return math.MaxInt
	}
	return -lowest
}
