// Package markup materializes source documents into dom trees. It is the
// only place that knows about concrete parsers; the converter sees nothing
// but dom nodes.
package markup

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"h2jsx/dom"
)

// Parser turns source text into the children of a document fragment.
type Parser interface {
	Parse(r io.Reader) ([]dom.Node, error)
}

// Settings shared by all parsers.
type Settings struct {
	// KeepScripts leaves <script> elements in the tree. They are removed by
	// default because their content is not markup.
	KeepScripts bool
	// Charset forces the input encoding (IANA name). Empty means detect.
	Charset string
}

const (
	InputHTML = "html"
	InputXML  = "xml"
)

// New returns the parser for the requested input kind.
func New(input string, settings Settings, log *zap.Logger) (Parser, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch input {
	case InputHTML, "":
		return NewHTMLParser(settings, log), nil
	case InputXML:
		return NewXMLParser(settings, log), nil
	default:
		return nil, fmt.Errorf("unsupported input kind %q", input)
	}
}

// mergeText joins adjacent text nodes, which appear when elements between
// them are dropped.
func mergeText(nodes []dom.Node) []dom.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if t, ok := n.(*dom.Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*dom.Text); ok {
				out[len(out)-1] = dom.NewText(prev.Data + t.Data)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// frame surrounds fragment content with line breaks, the way the content
// would sit inside a container element, so the first and last lines of
// output are indented like every other line.
func frame(nodes []dom.Node) []dom.Node {
	out := make([]dom.Node, 0, len(nodes)+2)
	out = append(out, dom.NewText("\n"))
	out = append(out, nodes...)
	out = append(out, dom.NewText("\n"))
	return mergeText(out)
}
