// Package debug renders nested structures as indented outlines for debug
// reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indentUnit = "  "

// TreeWriter accumulates an outline, one entry per line. The zero value is
// ready to use.
type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

// Line writes a formatted entry at the given depth. Negative depth is
// treated as zero.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes a labelled character data entry. The value is always
// quoted so whitespace-only text stays visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(strconv.Quote(value))
	tw.b.WriteByte('\n')
}

func (tw *TreeWriter) indent(depth int) {
	tw.b.WriteString(strings.Repeat(indentUnit, max(depth, 0)))
}
