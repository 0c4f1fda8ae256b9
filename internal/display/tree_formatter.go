package display

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/standardbeagle/line/internal/matcher"
)

// TreeFormatter formats matcher trees for display
type TreeFormatter struct {
	options FormatterOptions
}

// FormatterOptions controls tree formatting
type FormatterOptions struct {
	Format    string // "text", "json", "compact"
	ShowKinds bool   // Show node kinds next to labels
	MaxDepth  int    // Maximum depth to display, 0 for all
	Indent    string // Indentation string
}

// TreeNode is the JSON shape of a matcher node
type TreeNode struct {
	Kind     string      `json:"kind"`
	Label    string      `json:"label"`
	Children []*TreeNode `json:"children,omitempty"`
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(options FormatterOptions) *TreeFormatter {
	if options.Indent == "" {
		options.Indent = "  "
	}
	return &TreeFormatter{options: options}
}

// Format formats a matcher tree for display
func (tf *TreeFormatter) Format(m matcher.Matcher) string {
	if m == nil {
		return "No matcher available"
	}

	switch tf.options.Format {
	case "json":
		return tf.formatJSON(m)
	case "compact":
		return tf.formatCompact(m)
	default:
		return tf.formatText(m)
	}
}

// formatText formats tree as ASCII art
func (tf *TreeFormatter) formatText(m matcher.Matcher) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matcher tree (%d nodes, depth %d)\n", countNodes(m), depth(m)))
	tf.formatNode(&sb, m, "", true, true, 1)

	return sb.String()
}

// formatNode recursively formats a tree node
func (tf *TreeFormatter) formatNode(sb *strings.Builder, m matcher.Matcher, prefix string, isLast bool, isRoot bool, level int) {
	// Skip if beyond max depth
	if tf.options.MaxDepth > 0 && level > tf.options.MaxDepth {
		return
	}

	// Tree branch characters
	var branch string
	if isRoot {
		branch = "→ "
	} else if isLast {
		branch = "└─→ "
	} else {
		branch = "├─→ "
	}

	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(Label(m))
	if tf.options.ShowKinds {
		sb.WriteString(" [" + m.Kind().String() + "]")
	}
	sb.WriteString("\n")

	children := matcher.Children(m)
	for i, child := range children {
		var childPrefix string
		if isRoot || isLast {
			childPrefix = prefix + tf.options.Indent
		} else {
			childPrefix = prefix + "│" + tf.options.Indent[1:]
		}

		tf.formatNode(sb, child, childPrefix, i == len(children)-1, false, level+1)
	}
}

// formatCompact formats the tree on a single line
func (tf *TreeFormatter) formatCompact(m matcher.Matcher) string {
	return matcher.Inspect(m)
}

// formatJSON formats tree as JSON
func (tf *TreeFormatter) formatJSON(m matcher.Matcher) string {
	data, err := json.MarshalIndent(tf.toNode(m, 1), "", tf.options.Indent)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

func (tf *TreeFormatter) toNode(m matcher.Matcher, level int) *TreeNode {
	node := &TreeNode{Kind: m.Kind().String(), Label: Label(m)}
	if tf.options.MaxDepth > 0 && level >= tf.options.MaxDepth {
		return node
	}
	for _, child := range matcher.Children(m) {
		node.Children = append(node.Children, tf.toNode(child, level+1))
	}
	return node
}

// Label is the text shown for a single node
func Label(m matcher.Matcher) string {
	switch n := m.(type) {
	case matcher.Index:
		return strconv.Itoa(n.Value)
	case matcher.Range:
		return strconv.Itoa(n.Lower) + ".." + strconv.Itoa(n.Upper)
	case matcher.NegativeRange:
		return strconv.Itoa(n.Lower) + ".." + strconv.Itoa(n.Upper)
	case matcher.MatchEverything:
		return "MatchEverything"
	case matcher.MatchNothing:
		return "MatchNothing"
	case matcher.Not:
		return "^"
	case matcher.And:
		return "&&"
	case matcher.Or:
		return "||"
	}
	return "?"
}

func countNodes(m matcher.Matcher) int {
	n := 1
	for _, child := range matcher.Children(m) {
		n += countNodes(child)
	}
	return n
}

func depth(m matcher.Matcher) int {
	deepest := 0
	for _, child := range matcher.Children(m) {
		deepest = max(deepest, depth(child))
	}
	return deepest + 1
}
