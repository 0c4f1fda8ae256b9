package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"

	lineerrors "github.com/standardbeagle/line/internal/errors"
	"github.com/standardbeagle/line/internal/matcher"
)

// Problem keys
const (
	ProblemLineNumbers = "line_numbers"
	ProblemSuggestion  = "suggestion"
)

var (
	indexPattern        = regexp.MustCompile(`^-?\d+$`)
	rangePattern        = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)$`)
	negatedIndexPattern = regexp.MustCompile(`^\^(-?\d+)$`)
	negatedRangePattern = regexp.MustCompile(`^\^(-?\d+)\.\.(-?\d+)$`)
)

// LongFlags lists every long flag the command understands, used to suggest
// corrections for misspelled ones
var LongFlags = []string{
	"line-numbers", "help", "strip", "force", "chomp", "debug",
	"separator", "input", "config", "tree", "tree-format", "tree-depth",
	"tree-kinds", "version",
}

// maxSuggestionDistance is the largest edit distance worth suggesting
const maxSuggestionDistance = 2

// ParseArgs parses flags and matchers into base, which may already carry
// settings from config files and command line flags. A nil base starts from
// options with no streams.
//
// Matchers are `N` (line N, negative counts from the end), `^N` (every line
// but N), `L..U` (lines L through U) and `^L..U`. Zero is never a line.
func ParseArgs(args []string, base *Options) *Options {
	opts := base
	if opts == nil {
		opts = NewOptions(nil, nil, nil)
	}

	p := &argParser{opts: opts}
	for _, arg := range args {
		p.parse(arg)
	}

	if msg, ok := p.lineNumbersError(); ok {
		opts.AddProblem(ProblemLineNumbers, msg)
	}
	for _, suggestion := range p.suggestions() {
		opts.AddProblem(ProblemSuggestion, suggestion)
	}

	opts.LineMatcher = matcher.Combine(p.positive, p.negative)
	opts.BufferSize = matcher.BufferSizeFor(opts.Indexes)
	opts.HelpScreen = HelpScreen()
	return opts
}

type argParser struct {
	opts     *Options
	positive []matcher.Matcher
	negative []matcher.Matcher
	invalid  []string
}

func (p *argParser) parse(arg string) {
	opts := p.opts
	switch arg {
	case "-l", "--line-numbers":
		opts.LineNumbers = true
		return
	case "-h", "--help":
		opts.ShowHelp = true
		return
	case "-s", "--strip":
		opts.Strip = true
		return
	case "-f", "--force":
		opts.Force = true
		return
	case "-c", "--chomp":
		opts.Chomp = true
		return
	case "-d", "--debug":
		opts.Debug = true
		return
	}

	if m := rangePattern.FindStringSubmatch(arg); m != nil {
		if lower, upper, ok := p.bounds(arg, m[1], m[2]); ok {
			p.positive = append(p.positive, rangeMatcher(lower, upper))
		}
		return
	}
	if indexPattern.MatchString(arg) {
		if index, _, ok := p.bounds(arg, arg); ok {
			p.positive = append(p.positive, matcher.Index{Value: index})
		}
		return
	}
	if m := negatedIndexPattern.FindStringSubmatch(arg); m != nil {
		if index, _, ok := p.bounds(arg, m[1]); ok {
			p.negative = append(p.negative, matcher.Not{Matcher: matcher.Index{Value: index}})
		}
		return
	}
	if m := negatedRangePattern.FindStringSubmatch(arg); m != nil {
		if lower, upper, ok := p.bounds(arg, m[1], m[2]); ok {
			p.negative = append(p.negative, matcher.Not{Matcher: rangeMatcher(lower, upper)})
		}
		return
	}

	p.invalid = append(p.invalid, arg)
}

// bounds converts the numeric parts of arg, recording them as indexes. Zero
// or out of range numbers make the whole argument invalid.
func (p *argParser) bounds(arg string, parts ...string) (int, int, bool) {
	values := make([]int, 2)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v == 0 {
			p.invalid = append(p.invalid, arg)
			return 0, 0, false
		}
		values[i] = v
	}
	p.opts.Indexes = append(p.opts.Indexes, values[:len(parts)]...)
	return values[0], values[1], true
}

// rangeMatcher builds the matcher for L..U. A Range with two negative bounds
// cannot judge lines whose negative index is not known yet, so those spans
// get a NegativeRange.
func rangeMatcher(lower, upper int) matcher.Matcher {
	if lower < 0 && upper < 0 {
		return matcher.NegativeRange{Lower: lower, Upper: upper}
	}
	return matcher.Range{Lower: lower, Upper: upper}
}

func (p *argParser) lineNumbersError() (string, bool) {
	if len(p.invalid) > 0 {
		return lineerrors.NewArgumentError(p.invalid).Error(), true
	}
	if len(p.positive) == 0 && len(p.negative) == 0 && !p.opts.LineNumbers {
		return lineerrors.NewArgumentError(nil).Error(), true
	}
	return "", false
}

// suggestions proposes known flags for invalid arguments that look like
// misspelled long flags
func (p *argParser) suggestions() []string {
	var out []string
	for _, arg := range p.invalid {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[2:], "=")
		if best, ok := closestFlag(name); ok {
			out = append(out, fmt.Sprintf("Did you mean %q?", "--"+best))
		}
	}
	return out
}

func closestFlag(name string) (string, bool) {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, flag := range LongFlags {
		if d := edlib.LevenshteinDistance(name, flag); d < bestDistance {
			best, bestDistance = flag, d
		}
	}
	return best, best != ""
}

// SplitArgs separates command line flags from matcher arguments, so that
// matchers such as -2 never reach a flag parser. known maps each flag name,
// short or long and without dashes, to whether it takes a value. Unknown
// flag-like tokens are left with the matchers, where they are reported.
// Everything after "--" is a matcher.
func SplitArgs(args []string, known map[string]bool) (flags, matchers []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, append(matchers, args[i+1:]...)

		case len(arg) < 2 || arg[0] != '-' || isDigit(arg[1]):
			matchers = append(matchers, arg)

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			takesValue, ok := known[name]
			if !ok {
				matchers = append(matchers, arg)
				continue
			}
			flags = append(flags, arg)
			if takesValue && !hasValue && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}

		default:
			consumed, ok := shortCluster(arg[1:], known)
			if !ok {
				matchers = append(matchers, arg)
				continue
			}
			flags = append(flags, arg)
			if consumed && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return flags, matchers
}

// shortCluster checks a cluster of short flags such as "lsc". A flag that
// takes a value must come last; if nothing follows it in the cluster the
// value is the next argument.
func shortCluster(cluster string, known map[string]bool) (consumesNext bool, ok bool) {
	for i, r := range cluster {
		takesValue, isKnown := known[string(r)]
		if !isKnown {
			return false, false
		}
		if takesValue {
			return i == len(cluster)-1, true
		}
	}
	return false, true
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
