package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/line/internal/types"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState(t *testing.T) func() {
	t.Setenv("DEBUG", "")
	originalDebug := EnableDebug
	return func() {
		EnableDebug = originalDebug
	}
}

// TestIsDebugEnabled tests the is debug enabled.
func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState(t)()

	EnableDebug = "false"
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	// Test invalid value defaults to false
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())

	t.Setenv("DEBUG", "1")
	assert.True(t, IsDebugEnabled())
}

// TestLog tests the log.
func TestLog(t *testing.T) {
	defer saveAndRestoreState(t)()

	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Log("TEST", "Hello %s", "World")

	output := buf.String()
	assert.Contains(t, output, "[DEBUG:TEST]")
	assert.Contains(t, output, "Hello World")
}

// TestWarnf tests that warnings are written even when debugging is off.
func TestWarnf(t *testing.T) {
	defer saveAndRestoreState(t)()

	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Warnf("config", "ignored %q", "strip")

	assert.Equal(t, "[WARN:config] ignored \"strip\"\n", buf.String())

	var nilLogger *Logger
	assert.NotPanics(t, func() { nilLogger.Warnf("config", "x") })
	assert.NotPanics(t, func() { New(nil, false).Warnf("config", "x") })
}

// TestDisabled tests that a disabled logger writes nothing.
func TestDisabled(t *testing.T) {
	defer saveAndRestoreState(t)()
	EnableDebug = "false"

	var buf bytes.Buffer
	logger := New(&buf, false)
	assert.False(t, logger.Enabled())

	logger.Log("X", "x")
	logger.LogMatcher("Matcher(1)")
	logger.LogLine("a\n", 1, types.NoNegative)
	logger.LogBlock("tree\n")
	assert.Empty(t, buf.String())
}

// TestEnabledByBuildFlag tests that the build flag enables a logger.
func TestEnabledByBuildFlag(t *testing.T) {
	defer saveAndRestoreState(t)()
	EnableDebug = "true"

	assert.True(t, New(&bytes.Buffer{}, false).Enabled())
}

// TestNilLogger tests that nil loggers and writers are safe.
func TestNilLogger(t *testing.T) {
	var logger *Logger
	assert.False(t, logger.Enabled())
	assert.NotPanics(t, func() { logger.LogMatcher("Matcher(1)") })

	assert.False(t, New(nil, true).Enabled())
}

// TestLogLine tests the per-line dump format.
func TestLogLine(t *testing.T) {
	defer saveAndRestoreState(t)()

	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.LogMatcher("Matcher(-2)")
	logger.LogLine("a\n", 1, types.NoNegative)
	logger.LogLine("b\n", 2, types.Negative(-2))
	logger.LogBlock("→ or\n")

	assert.Equal(t, "Matcher(-2)\n\"a\\n\", 1, nil\n\"b\\n\", 2, -2\n→ or\n", buf.String())
}
