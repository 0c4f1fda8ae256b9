package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/line/internal/debug"
	lineerrors "github.com/standardbeagle/line/internal/errors"
)

// TOMLFileName is the per-directory TOML config file
const TOMLFileName = ".line.toml"

// LoadTOML loads the .line.toml file in dir. A missing file yields nil and
// no error.
func LoadTOML(dir string, log *debug.Logger) (*FileConfig, error) {
	tomlPath := filepath.Join(dir, TOMLFileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		return nil, nil
	}
	return loadTOMLFile(tomlPath, log)
}

func loadTOMLFile(path string, log *debug.Logger) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lineerrors.NewFileError("read", path, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, lineerrors.NewConfigError("file", path, err)
	}
	log.Log("config", "loaded %s\n", path)
	return &cfg, nil
}
