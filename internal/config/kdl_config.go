package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/line/internal/debug"
	lineerrors "github.com/standardbeagle/line/internal/errors"
)

// KDLFileName is the per-directory KDL config file
const KDLFileName = ".line.kdl"

// LoadKDL attempts to load configuration from the .line.kdl file in dir.
// A missing file yields nil and no error. Ignored values are reported to log.
func LoadKDL(dir string, log *debug.Logger) (*FileConfig, error) {
	kdlPath := filepath.Join(dir, KDLFileName)
	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}
	return loadKDLFile(kdlPath, log)
}

func loadKDLFile(path string, log *debug.Logger) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lineerrors.NewFileError("read", path, err)
	}

	cfg, err := parseKDL(string(content), log)
	if err != nil {
		return nil, lineerrors.NewConfigError("file", path, err)
	}
	log.Log("config", "loaded %s\n", path)
	return cfg, nil
}

// parseKDL reads top level nodes such as `strip true` or `separator ": "`.
// Nodes may also be grouped under an `output { }` block.
func parseKDL(content string, log *debug.Logger) (*FileConfig, error) {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	cfg := &FileConfig{}
	for _, n := range doc.Nodes {
		if nodeName(n) == "output" {
			for _, cn := range n.Children {
				assignKDLNode(cfg, cn, log)
			}
			continue
		}
		assignKDLNode(cfg, n, log)
	}
	return cfg, nil
}

func assignKDLNode(cfg *FileConfig, n *document.Node, log *debug.Logger) {
	switch name := nodeName(n); name {
	case "strip":
		cfg.Strip = boolNode(n, log)
	case "force":
		cfg.Force = boolNode(n, log)
	case "chomp":
		cfg.Chomp = boolNode(n, log)
	case "line_numbers":
		cfg.LineNumbers = boolNode(n, log)
	case "debug":
		cfg.Debug = boolNode(n, log)
	case "separator":
		if s, ok := firstStringArg(n); ok {
			cfg.Separator = &s
		} else {
			log.Warnf("config", "invalid value for '%s' in KDL config, expected a string", name)
		}
	}
}

func boolNode(n *document.Node, log *debug.Logger) *bool {
	b, ok := firstBoolArg(n)
	if !ok {
		log.Warnf("config", "invalid value for '%s' in KDL config, expected true or false", nodeName(n))
		return nil
	}
	return &b
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
