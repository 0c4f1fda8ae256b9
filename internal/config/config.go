package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/standardbeagle/line/internal/debug"
	"github.com/standardbeagle/line/internal/matcher"
)

// DefaultSeparator goes between the line number and the line with -l
const DefaultSeparator = "\t"

// TreeFormats are the renderings --tree-format accepts, the default first
var TreeFormats = []string{"text", "compact", "json"}

// Problem is a user-facing configuration problem, reported in order
type Problem struct {
	Key     string
	Message string
}

// Options is everything a run needs. Streams are explicit fields; nothing
// in here falls back to the process's standard streams on its own.
type Options struct {
	ShowHelp    bool
	Strip       bool
	Force       bool
	Chomp       bool
	LineNumbers bool
	Debug       bool
	Tree        bool // print the matcher tree along with the debug output
	TreeKinds   bool
	TreeDepth   int // 0 prints the whole tree
	TreeFormat  string

	Separator   string
	Indexes     []int // every bound named by the matchers, in argument order
	Errors      []Problem
	LineMatcher matcher.Matcher
	BufferSize  int
	HelpScreen  string

	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	InputPath string // "" or "-" for In as given
}

// NewOptions creates options with defaults bound to the given streams
func NewOptions(in io.Reader, out, errOut io.Writer) *Options {
	return &Options{
		Separator:   DefaultSeparator,
		TreeFormat:  TreeFormats[0],
		LineMatcher: matcher.MatchEverything{},
		In:          in,
		Out:         out,
		Err:         errOut,
	}
}

// AddProblem records a problem under key
func (o *Options) AddProblem(key, message string) {
	o.Errors = append(o.Errors, Problem{Key: key, Message: message})
}

// Problem returns the message recorded under key
func (o *Options) Problem(key string) (string, bool) {
	for _, p := range o.Errors {
		if p.Key == key {
			return p.Message, true
		}
	}
	return "", false
}

// FileConfig holds the settings a config file may provide. Nil fields were
// not set by the file.
type FileConfig struct {
	Strip       *bool   `toml:"strip"`
	Force       *bool   `toml:"force"`
	Chomp       *bool   `toml:"chomp"`
	LineNumbers *bool   `toml:"line_numbers"`
	Debug       *bool   `toml:"debug"`
	Separator   *string `toml:"separator"`
}

// Apply copies the settings the file provided onto o
func (fc *FileConfig) Apply(o *Options) {
	if fc == nil {
		return
	}
	applyBool(fc.Strip, &o.Strip)
	applyBool(fc.Force, &o.Force)
	applyBool(fc.Chomp, &o.Chomp)
	applyBool(fc.LineNumbers, &o.LineNumbers)
	applyBool(fc.Debug, &o.Debug)
	if fc.Separator != nil {
		o.Separator = *fc.Separator
	}
}

func applyBool(from *bool, to *bool) {
	if from != nil {
		*to = *from
	}
}

// Load finds the config for dir: the one in the home directory, overridden
// key by key by the one in dir. Either may be missing; with neither the
// result is an empty FileConfig. log receives warnings and, when enabled,
// the files loaded; it may be nil.
func Load(dir string, log *debug.Logger) (*FileConfig, error) {
	var baseConfig *FileConfig
	if homeDir, err := os.UserHomeDir(); err == nil {
		abs, _ := filepath.Abs(dir)
		if abs != homeDir {
			if cfg, err := loadDir(homeDir, log); err == nil {
				baseConfig = cfg
			}
		}
	}

	projectConfig, err := loadDir(dir, log)
	if err != nil {
		return nil, err
	}

	return mergeConfigs(baseConfig, projectConfig), nil
}

// LoadFile loads an explicitly named config file, KDL or TOML by extension
func LoadFile(path string, log *debug.Logger) (*FileConfig, error) {
	if filepath.Ext(path) == ".toml" {
		return loadTOMLFile(path, log)
	}
	return loadKDLFile(path, log)
}

// loadDir prefers .line.kdl over .line.toml
func loadDir(dir string, log *debug.Logger) (*FileConfig, error) {
	if cfg, err := LoadKDL(dir, log); err != nil || cfg != nil {
		return cfg, err
	}
	return LoadTOML(dir, log)
}

// mergeConfigs lets every key set in project override base
func mergeConfigs(base, project *FileConfig) *FileConfig {
	merged := &FileConfig{}
	for _, cfg := range []*FileConfig{base, project} {
		if cfg == nil {
			continue
		}
		if cfg.Strip != nil {
			merged.Strip = cfg.Strip
		}
		if cfg.Force != nil {
			merged.Force = cfg.Force
		}
		if cfg.Chomp != nil {
			merged.Chomp = cfg.Chomp
		}
		if cfg.LineNumbers != nil {
			merged.LineNumbers = cfg.LineNumbers
		}
		if cfg.Debug != nil {
			merged.Debug = cfg.Debug
		}
		if cfg.Separator != nil {
			merged.Separator = cfg.Separator
		}
	}
	return merged
}
