package matcher

// Combine builds the matcher for a run. Positive matchers are or-ed onto
// MatchNothing, negated matchers are and-ed onto MatchEverything, and when
// both groups have entries the two results are and-ed. With neither group
// everything matches.
func Combine(positive, negative []Matcher) Matcher {
	var positiveMatcher Matcher = MatchNothing{}
	for _, m := range positive {
		positiveMatcher = Or{Left: positiveMatcher, Right: m}
	}

	var negativeMatcher Matcher = MatchEverything{}
	for _, m := range negative {
		negativeMatcher = And{Left: negativeMatcher, Right: m}
	}

	switch {
	case len(positive) > 0 && len(negative) > 0:
		return And{Left: positiveMatcher, Right: negativeMatcher}
	case len(positive) > 0:
		return positiveMatcher
	case len(negative) > 0:
		return negativeMatcher
	}
	return MatchEverything{}
}
