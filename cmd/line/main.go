package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/line/internal/app"
	"github.com/standardbeagle/line/internal/config"
	"github.com/standardbeagle/line/internal/debug"
	lineerrors "github.com/standardbeagle/line/internal/errors"
	"github.com/standardbeagle/line/internal/version"
)

// boolFlags map each boolean flag to the option it sets. -h and --help are
// not among them: they reach config.ParseArgs with the matchers, so the help
// screen is printed by the run like any other outcome.
var boolFlags = []struct {
	flag *cli.BoolFlag
	set  func(*config.Options, bool)
}{
	{&cli.BoolFlag{Name: "line-numbers", Aliases: []string{"l"}, Usage: "show line numbers"},
		func(o *config.Options, v bool) { o.LineNumbers = v }},
	{&cli.BoolFlag{Name: "strip", Aliases: []string{"s"}, Usage: "strip leading and trailing whitespace"},
		func(o *config.Options, v bool) { o.Strip = v }},
	{&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "do not fail on lines that were never seen"},
		func(o *config.Options, v bool) { o.Force = v }},
	{&cli.BoolFlag{Name: "chomp", Aliases: []string{"c"}, Usage: "do not print the trailing newline"},
		func(o *config.Options, v bool) { o.Chomp = v }},
	{&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "print the matcher and each line's indexes"},
		func(o *config.Options, v bool) { o.Debug = v }},
	{&cli.BoolFlag{Name: "tree", Aliases: []string{"t"}, Usage: "with --debug, also print the matcher as a tree"},
		func(o *config.Options, v bool) { o.Tree = v }},
	{&cli.BoolFlag{Name: "tree-kinds", Usage: "label tree nodes with their kind"},
		func(o *config.Options, v bool) { o.TreeKinds = v }},
}

func flags() []cli.Flag {
	all := make([]cli.Flag, 0, len(boolFlags)+6)
	for _, b := range boolFlags {
		all = append(all, b.flag)
	}
	return append(all,
		&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "print the version and build details"},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "read `FILE` instead of standard input"},
		&cli.StringFlag{Name: "separator", Usage: "put `SEP` between a line number and its line"},
		&cli.StringFlag{Name: "config", Usage: "load settings from `FILE` instead of .line.kdl or .line.toml"},
		&cli.StringFlag{Name: "tree-format", Usage: "render the tree as `FORMAT`: " + strings.Join(config.TreeFormats, ", ")},
		&cli.IntFlag{Name: "tree-depth", Usage: "print at most `N` levels of the tree"},
	)
}

// knownFlags maps every flag name to whether it takes a value
func knownFlags(all []cli.Flag) map[string]bool {
	known := make(map[string]bool)
	for _, f := range all {
		_, isBool := f.(*cli.BoolFlag)
		for _, name := range f.Names() {
			known[name] = !isBool
		}
	}
	return known
}

// run is main without the process: it returns the exit status
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	status := app.ExitOK
	all := flags()

	cliApp := &cli.App{
		Name:                   "line",
		Usage:                  "print lines of input selected by position",
		Version:                version.Info(),
		HideVersion:            true,
		UseShortOptionHandling: true,
		HideHelp:               true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags:                  all,
		ExitErrHandler:         func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			status = runLines(c, stdin, stdout, stderr)
			return nil
		},
	}

	flagArgs, matchers := config.SplitArgs(args, knownFlags(all))
	argv := append([]string{"line"}, flagArgs...)
	argv = append(argv, "--")
	argv = append(argv, matchers...)

	if err := cliApp.Run(argv); err != nil {
		fmt.Fprintln(stderr, err)
		return app.ExitFailure
	}
	return status
}

func runLines(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	if c.Bool("version") {
		fmt.Fprintln(stdout, version.FullInfo())
		return app.ExitOK
	}

	opts := config.NewOptions(stdin, stdout, stderr)
	log := debug.New(stderr, c.Bool("debug"))
	var errs []error

	fileConfig, err := loadConfig(c.String("config"), log)
	if err != nil {
		errs = append(errs, err)
	}
	fileConfig.Apply(opts)

	for _, b := range boolFlags {
		if c.IsSet(b.flag.Name) {
			b.set(opts, c.Bool(b.flag.Name))
		}
	}
	if c.IsSet("separator") {
		opts.Separator = c.String("separator")
	}
	if c.IsSet("tree-format") {
		opts.TreeFormat = c.String("tree-format")
	}
	if c.IsSet("tree-depth") {
		opts.TreeDepth = c.Int("tree-depth")
	}

	opts = config.ParseArgs(c.Args().Slice(), opts)

	if path := c.String("input"); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			errs = append(errs, lineerrors.NewFileError("open", path, err))
		} else {
			defer file.Close()
			opts.In = file
			opts.InputPath = path
		}
	}

	if err := config.ValidateOptions(opts); err != nil {
		errs = append(errs, err)
	}

	if err := lineerrors.NewMultiError(errs).ErrorOrNil(); err != nil {
		fmt.Fprintln(stderr, err)
		return app.ExitFailure
	}

	return app.Run(opts)
}

func loadConfig(path string, log *debug.Logger) (*config.FileConfig, error) {
	if path != "" {
		return config.LoadFile(path, log)
	}
	return config.Load(".", log)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
