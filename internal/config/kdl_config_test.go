package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/line/internal/debug"
)

func TestParseKDL_Empty(t *testing.T) {
	cfg, err := parseKDL("", nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Nil(t, cfg.Strip)
	assert.Nil(t, cfg.Separator)
}

func TestParseKDL_TopLevel(t *testing.T) {
	kdlContent := `
strip true
chomp false
line_numbers true
separator ": "
`
	cfg, err := parseKDL(kdlContent, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.Strip)
	assert.True(t, *cfg.Strip)
	require.NotNil(t, cfg.Chomp)
	assert.False(t, *cfg.Chomp)
	require.NotNil(t, cfg.LineNumbers)
	assert.True(t, *cfg.LineNumbers)
	require.NotNil(t, cfg.Separator)
	assert.Equal(t, ": ", *cfg.Separator)
	assert.Nil(t, cfg.Force)
	assert.Nil(t, cfg.Debug)
}

func TestParseKDL_OutputBlock(t *testing.T) {
	kdlContent := `
output {
    force true
    debug true
}
`
	cfg, err := parseKDL(kdlContent, nil)
	require.NoError(t, err)

	require.NotNil(t, cfg.Force)
	assert.True(t, *cfg.Force)
	require.NotNil(t, cfg.Debug)
	assert.True(t, *cfg.Debug)
}

func TestParseKDL_WrongTypesAreIgnored(t *testing.T) {
	var warnings bytes.Buffer
	cfg, err := parseKDL(`strip "yes"
separator 3`, debug.New(&warnings, false))
	require.NoError(t, err)

	assert.Nil(t, cfg.Strip)
	assert.Nil(t, cfg.Separator)
	assert.Equal(t,
		"[WARN:config] invalid value for 'strip' in KDL config, expected true or false\n"+
			"[WARN:config] invalid value for 'separator' in KDL config, expected a string\n",
		warnings.String())
}

func TestLoadKDL_LogsLoadedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, KDLFileName)
	require.NoError(t, os.WriteFile(path, []byte("strip true\n"), 0644))

	var out bytes.Buffer
	_, err := LoadKDL(dir, debug.New(&out, true))
	require.NoError(t, err)
	assert.Equal(t, "[DEBUG:config] loaded "+path+"\n", out.String())
}

func TestParseKDL_Invalid(t *testing.T) {
	_, err := parseKDL(`strip {`, nil)
	assert.Error(t, err)
}

func TestLoadKDL(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadKDL(dir, nil)
	require.NoError(t, err)
	assert.Nil(t, cfg, "missing file yields no config")

	require.NoError(t, os.WriteFile(filepath.Join(dir, KDLFileName), []byte("force true\n"), 0644))
	cfg, err = LoadKDL(dir, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.Force)
	assert.True(t, *cfg.Force)
}
