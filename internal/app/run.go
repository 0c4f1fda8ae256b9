// Package app turns parsed options into printed lines and an exit status.
package app

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/standardbeagle/line/internal/config"
	"github.com/standardbeagle/line/internal/debug"
	"github.com/standardbeagle/line/internal/display"
	lineerrors "github.com/standardbeagle/line/internal/errors"
	"github.com/standardbeagle/line/internal/indexer"
	"github.com/standardbeagle/line/internal/matcher"
	"github.com/standardbeagle/line/internal/types"
)

// Exit statuses
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInternal = 2
)

// stripCutset is the whitespace removed by --strip
const stripCutset = " \t\n\v\f\r\x00"

// Run prints the lines of opts.In selected by opts.LineMatcher and returns
// the exit status.
func Run(opts *config.Options) (status int) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(*lineerrors.InternalError)
			if !ok {
				panic(r)
			}
			fmt.Fprintln(opts.Err, err)
			status = ExitInternal
		}
	}()

	r := &runner{opts: opts, log: debug.New(opts.Err, opts.Debug)}
	return r.run()
}

type runner struct {
	opts     *config.Options
	log      *debug.Logger
	unseen   []int
	maxIndex int
}

func (r *runner) run() int {
	opts := r.opts

	if r.log.Enabled() {
		r.printMatcher()
	}

	if opts.ShowHelp {
		fmt.Fprintln(opts.Out, opts.HelpScreen)
		return ExitOK
	}

	if len(opts.Errors) > 0 {
		for _, problem := range opts.Errors {
			fmt.Fprintln(opts.Err, problem.Message)
		}
		return ExitFailure
	}

	if err := r.printLines(); err != nil {
		fmt.Fprintln(opts.Err, err)
		return ExitFailure
	}

	if len(r.unseen) > 0 && !opts.Force {
		fmt.Fprintln(opts.Err, lineerrors.NewUnseenIndexesError(r.maxIndex, r.unseen))
		return ExitFailure
	}

	return ExitOK
}

func (r *runner) printMatcher() {
	r.log.LogMatcher(matcher.Inspect(r.opts.LineMatcher))
	if !r.opts.Tree {
		return
	}
	formatter := display.NewTreeFormatter(display.FormatterOptions{
		Format:    r.opts.TreeFormat,
		ShowKinds: r.opts.TreeKinds,
		MaxDepth:  r.opts.TreeDepth,
	})
	r.log.LogBlock(terminate(formatter.Format(r.opts.LineMatcher)))
}

func (r *runner) printLines() error {
	opts := r.opts
	r.unseen = slices.Clone(opts.Indexes)

	reader := indexer.NewLineReader(opts.In)
	queue := indexer.NewQueue[string](opts.BufferSize, reader)

	for item := range queue.All() {
		positive := item.Positive + 1
		r.maxIndex = positive
		r.log.LogLine(item.Content, positive, item.Negative)
		r.see(positive, item.Negative)

		if !opts.LineMatcher.Matches(item.Content, positive, item.Negative) {
			continue
		}
		if err := r.printLine(item.Content, positive); err != nil {
			return err
		}
	}

	if err := reader.Err(); err != nil {
		return lineerrors.NewFileError("read", inputName(opts.InputPath), err)
	}
	return nil
}

// see removes the line's indexes from the ones still waited for
func (r *runner) see(positive int, negative types.NegativeIndex) {
	r.unseen = slices.DeleteFunc(r.unseen, func(index int) bool {
		return index == positive || negative.Is(index)
	})
}

func (r *runner) printLine(line string, positive int) error {
	opts := r.opts
	if opts.Strip {
		line = strings.Trim(line, stripCutset)
	}
	if opts.LineNumbers {
		line = strconv.Itoa(positive) + opts.Separator + line
	}

	var err error
	if opts.Chomp {
		_, err = io.WriteString(opts.Out, chomp(line))
	} else {
		_, err = io.WriteString(opts.Out, terminate(line))
	}
	if err != nil {
		return lineerrors.NewFileError("write", "output", err)
	}
	return nil
}

// chomp removes one trailing line terminator
func chomp(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2]
	case strings.HasSuffix(line, "\n"), strings.HasSuffix(line, "\r"):
		return line[:len(line)-1]
	}
	return line
}

// terminate ensures the line ends with a newline
func terminate(line string) string {
	if strings.HasSuffix(line, "\n") {
		return line
	}
	return line + "\n"
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
