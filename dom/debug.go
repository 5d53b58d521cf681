package dom

import (
	"h2jsx/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// Dump returns a readable tree of parsed nodes. It is stored in debug reports
// and exists solely for manual inspection.
func Dump(nodes []Node) string {
	tw := treeWriter{debug.NewTreeWriter()}
	tw.Line(0, "Fragment: %d node(s)", len(nodes))
	for _, n := range nodes {
		tw.node(1, n)
	}
	return tw.String()
}

func (tw treeWriter) node(depth int, n Node) {
	switch t := n.(type) {
	case *Element:
		tw.Line(depth, "Element <%s> attrs=%d children=%d", t.Tag, len(t.Attrs), len(t.Children))
		for _, a := range t.Attrs {
			if a.HasValue {
				tw.Line(depth+1, "@%s=%q", a.Name, a.Value)
			} else {
				tw.Line(depth+1, "@%s", a.Name)
			}
		}
		for _, c := range t.Children {
			tw.node(depth+1, c)
		}
	case *Text:
		tw.TextBlock(depth, "Text", t.Data)
	case *Comment:
		tw.TextBlock(depth, "Comment", t.Data)
	case nil:
		tw.Line(depth, "<nil>")
	}
}
