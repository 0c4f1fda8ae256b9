package matcher

import "strconv"

// Inspect renders a matcher tree in its canonical diagnostic form, e.g.
// Matcher((1 || 2) && (^5)). Rendering has no effect on matching.
func Inspect(m Matcher) string {
	return m.render(kindRoot)
}

// wrap decides how a node's rendering appears given the kind of its parent.
// Chains of the same kind print flat, other nodes with children are
// parenthesised, and the root is labelled.
func wrap(self, parent Kind, inspected string, hasChildren bool) string {
	switch {
	case parent == self:
		return inspected
	case parent != kindRoot && hasChildren:
		return "(" + inspected + ")"
	case parent != kindRoot:
		return inspected
	}
	return "Matcher(" + inspected + ")"
}

func (m Index) render(parent Kind) string {
	return wrap(KindIndex, parent, strconv.Itoa(m.Value), false)
}

func (m Range) render(parent Kind) string {
	return wrap(KindRange, parent, strconv.Itoa(m.Lower)+".."+strconv.Itoa(m.Upper), false)
}

func (m NegativeRange) render(parent Kind) string {
	return wrap(KindNegativeRange, parent, strconv.Itoa(m.Lower)+".."+strconv.Itoa(m.Upper), false)
}

func (m MatchEverything) render(parent Kind) string {
	return wrap(KindMatchEverything, parent, "MatchEverything", false)
}

func (m MatchNothing) render(parent Kind) string {
	return wrap(KindMatchNothing, parent, "MatchNothing", false)
}

func (m Not) render(parent Kind) string {
	return wrap(KindNot, parent, "^"+m.Matcher.render(KindNot), true)
}

func (m And) render(parent Kind) string {
	return wrap(KindAnd, parent, m.Left.render(KindAnd)+" && "+m.Right.render(KindAnd), true)
}

func (m Or) render(parent Kind) string {
	return wrap(KindOr, parent, m.Left.render(KindOr)+" || "+m.Right.render(KindOr), true)
}
