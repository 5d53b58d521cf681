package jsx

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"h2jsx/dom"
)

// frame is the traversal position handed down the recursion by value.
type frame struct {
	depth int
	mode  TextMode
}

func (f frame) child() frame {
	return frame{depth: f.depth + 1, mode: f.mode}
}

// walker serializes one tree. It owns its buffer and is discarded after a
// single conversion.
type walker struct {
	tables *Tables
	indent string
	log    *zap.Logger
	out    bytes.Buffer
}

func (w *walker) visit(n dom.Node, f frame) {
	switch t := n.(type) {
	case *dom.Element:
		w.element(t, f)
	case *dom.Text:
		w.out.WriteString(EscapeText(t.Data, TextContext{Mode: f.mode, Depth: f.depth, Indent: w.indent}))
	case *dom.Comment:
		w.out.WriteString("{/*" + strings.ReplaceAll(t.Data, "*/", "* /") + "*/}")
	default:
		w.log.Warn("Skipping node", zap.String("kind", fmt.Sprintf("%T", n)), zap.Error(dom.ErrUnrecognizedNodeKind))
	}
}

func (w *walker) traverse(children []dom.Node, f frame) {
	inner := f.child()
	for _, c := range children {
		w.visit(c, inner)
	}
}

func (w *walker) element(el *dom.Element, f frame) {
	tag := w.tables.TagName(el.Tag)

	attrs := make([]string, 0, len(el.Attrs)+1)
	for _, a := range el.Attrs {
		attrs = append(attrs, w.tables.Attribute(tag, a.Name, a.Value))
	}

	hoisted := true
	switch tag {
	case "textarea":
		attrs = append(attrs, "defaultValue={"+quote(el.TextContent())+"}")
	case "style":
		attrs = append(attrs, "dangerouslySetInnerHTML={{__html: "+quote(el.TextContent())+" }}")
	default:
		hoisted = false
	}

	switch {
	case hoisted:
		f.mode = TextSuppressed
	case tag == "pre" && f.mode == TextNormal:
		f.mode = TextPreformatted
	}

	w.out.WriteString("<" + tag)
	if len(attrs) > 0 {
		w.out.WriteString(" " + strings.Join(attrs, " "))
	}

	selfClosing := len(el.Children) == 0 || hoisted
	if !selfClosing {
		w.out.WriteByte('>')
		w.traverse(el.Children, f)
	}

	w.dedent()
	if selfClosing {
		w.out.WriteString(" />")
	} else {
		w.out.WriteString("</" + tag + ">")
	}
}

// dedent removes one trailing indentation unit so a closing tag lines up
// with its opening tag.
func (w *walker) dedent() {
	if w.indent != "" && bytes.HasSuffix(w.out.Bytes(), []byte(w.indent)) {
		w.out.Truncate(w.out.Len() - len(w.indent))
	}
}

// onlyOneTopLevel reports whether the fragment can be returned without a
// wrapper: a single element, possibly surrounded by whitespace text and
// comments.
func onlyOneTopLevel(nodes []dom.Node) bool {
	if len(nodes) == 1 {
		if _, ok := nodes[0].(*dom.Element); ok {
			return true
		}
	}
	found := false
	for _, n := range nodes {
		switch t := n.(type) {
		case *dom.Element:
			if found {
				return false
			}
			found = true
		case *dom.Text:
			if strings.TrimSpace(t.Data) != "" {
				return false
			}
		}
	}
	return true
}
