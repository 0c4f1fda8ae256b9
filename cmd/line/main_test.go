package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/line/internal/app"
	"github.com/standardbeagle/line/internal/version"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	stdout string
	stderr string
	status int
}

// runLine runs the command in a directory with no config files and a home
// directory with none either
func runLine(t *testing.T, input string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	status := run(args, strings.NewReader(input), &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), status: status}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSelectsLines(t *testing.T) {
	got := runLine(t, "a\nb\nc\n", "1", "-2")
	assert.Equal(t, "a\nb\n", got.stdout)
	assert.Empty(t, got.stderr)
	assert.Equal(t, app.ExitOK, got.status)
}

func TestRunNegativeMatchersAreNotFlags(t *testing.T) {
	got := runLine(t, "a\nb\nc\n", "-1", "-3..-2")
	assert.Equal(t, "a\nb\nc\n", got.stdout)
	assert.Equal(t, app.ExitOK, got.status)
}

func TestRunFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"long flags", "  a  \n", []string{"--line-numbers", "--strip", "1"}, "1\ta\n"},
		{"short flag cluster", "  a  \n", []string{"-ls", "1"}, "1\ta\n"},
		{"flags after matchers", "a\nb\n", []string{"2", "-c"}, "b"},
		{"separator", "a\nb\n", []string{"-l", "--separator", ": ", "2"}, "2: b\n"},
		{"separator with equals", "a\n", []string{"-l", "--separator=|", "1"}, "1|a\n"},
		{"matchers after a double dash", "a\nb\n", []string{"--", "-1"}, "b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runLine(t, tt.input, tt.args...)
			assert.Equal(t, tt.want, got.stdout)
			assert.Empty(t, got.stderr)
			assert.Equal(t, app.ExitOK, got.status)
		})
	}
}

func TestRunDebugTree(t *testing.T) {
	got := runLine(t, "a\n", "-d", "-t", "1")
	assert.Contains(t, got.stderr, "Matcher(MatchNothing || 1)")
	assert.Contains(t, got.stderr, "Matcher tree (3 nodes, depth 2)")
	assert.Contains(t, got.stderr, `"a\n", 1, nil`)
	assert.Equal(t, "a\n", got.stdout)
}

func TestRunHelp(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		got := runLine(t, "", flag)
		assert.Contains(t, got.stdout, "Usage: line")
		assert.Empty(t, got.stderr)
		assert.Equal(t, app.ExitOK, got.status)
	}
}

func TestRunVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		got := runLine(t, "", flag)
		assert.Equal(t, version.FullInfo()+"\n", got.stdout)
		assert.Equal(t, app.ExitOK, got.status)
	}
}

func TestRunTreeFlags(t *testing.T) {
	got := runLine(t, "a\n", "-d", "-t", "--tree-format", "json", "--tree-depth", "1", "1")
	assert.Contains(t, got.stderr, `"kind": "or"`)
	assert.NotContains(t, got.stderr, `"children"`)

	got = runLine(t, "a\n", "-dt", "--tree-kinds", "1")
	assert.Contains(t, got.stderr, "1 [index]")

	got = runLine(t, "a\n", "-d", "-t", "--tree-format=yaml", "1")
	assert.Contains(t, got.stderr, "config error for field tree_format")
	assert.Equal(t, app.ExitFailure, got.status)
}

func TestRunHugeNegativeIndexes(t *testing.T) {
	for _, index := range []string{"-50000000", "-9223372036854775807", "-9223372036854775808"} {
		t.Run(index, func(t *testing.T) {
			got := runLine(t, "a\nb\nc\n", "1", index, "-f")
			assert.Equal(t, "a\n", got.stdout)
			assert.Empty(t, got.stderr)
			assert.Equal(t, app.ExitOK, got.status)
		})
	}
}

func TestRunHugeTrailingRange(t *testing.T) {
	got := runLine(t, "a\nb\nc\n", "-f", "-3000000..-1")
	assert.Equal(t, "a\nb\nc\n", got.stdout)
	assert.Equal(t, app.ExitOK, got.status)

	got = runLine(t, "a\nb\nc\n", "-d", "-3..-2")
	assert.Contains(t, got.stderr, "Matcher(MatchNothing || -3..-2)\n")
	assert.Equal(t, "a\nb\n", got.stdout)
}

func TestRunReportsArgumentProblems(t *testing.T) {
	got := runLine(t, "a\n", "--strp", "1")
	assert.Contains(t, got.stderr, `"--strp" is not a valid line number`)
	assert.Contains(t, got.stderr, `Did you mean "--strip"?`)
	assert.Empty(t, got.stdout)
	assert.Equal(t, app.ExitFailure, got.status)
}

func TestRunUnseenLines(t *testing.T) {
	got := runLine(t, "a\n", "2")
	assert.Equal(t, "Only saw 1 lines of input, can't print lines: 2\n", got.stderr)
	assert.Equal(t, app.ExitFailure, got.status)

	got = runLine(t, "a\n", "-f", "2")
	assert.Empty(t, got.stderr)
	assert.Equal(t, app.ExitOK, got.status)
}

func TestRunInputFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "x\ny\nz\n")

	got := runLine(t, "ignored\n", "--input", path, "2")
	assert.Equal(t, "y\n", got.stdout)
	assert.Equal(t, app.ExitOK, got.status)

	got = runLine(t, "from stdin\n", "-i", "-", "1")
	assert.Equal(t, "from stdin\n", got.stdout)
}

func TestRunMissingInputFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	got := runLine(t, "", "--input", missing, "1")
	assert.Contains(t, got.stderr, "file open failed for "+missing)
	assert.Equal(t, app.ExitFailure, got.status)
}

func TestRunConfigFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "line.toml", "line_numbers = true\nseparator = \":\"\n")

	got := runLine(t, "a\nb\n", "--config", path, "2")
	assert.Equal(t, "2:b\n", got.stdout)

	// flags override the file
	got = runLine(t, "a\nb\n", "--config", path, "--separator", "=", "2")
	assert.Equal(t, "2=b\n", got.stdout)
}

func TestRunProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, ".line.kdl", "output {\n    chomp true\n}\n")
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	status := run([]string{"1", "2"}, strings.NewReader("a\nb\n"), &stdout, &stderr)
	assert.Equal(t, "ab", stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, app.ExitOK, status)
}

func TestRunConfigWarnings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, ".line.kdl", "strip \"yes\"\n")
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	status := run([]string{"1"}, strings.NewReader("  a\n"), &stdout, &stderr)
	assert.Equal(t, "  a\n", stdout.String())
	assert.Equal(t, "[WARN:config] invalid value for 'strip' in KDL config, expected true or false\n", stderr.String())
	assert.Equal(t, app.ExitOK, status)
}

func TestRunReportsEveryStartupError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.kdl")

	got := runLine(t, "a\n", "--config", missing, "--separator", "\n", "-l", "1")
	assert.Contains(t, got.stderr, "2 errors:")
	assert.Contains(t, got.stderr, "file read failed for "+missing)
	assert.Contains(t, got.stderr, "config error for field separator")
	assert.Equal(t, app.ExitFailure, got.status)
}

func TestRunBadConfig(t *testing.T) {
	got := runLine(t, "a\n", "--config", filepath.Join(t.TempDir(), "nope.kdl"), "1")
	assert.NotEmpty(t, got.stderr)
	assert.Equal(t, app.ExitFailure, got.status)
}

func TestRunInvalidSeparator(t *testing.T) {
	got := runLine(t, "a\n", "-l", "--separator", "\n", "1")
	assert.Contains(t, got.stderr, "config error for field separator")
	assert.Equal(t, app.ExitFailure, got.status)
}
