// Package dom defines the materialized document tree consumed by the JSX
// converter. Parsers in package markup produce it, package jsx walks it.
package dom

import "errors"

// ErrUnrecognizedNodeKind marks a source node outside Element, Text and
// Comment. Such nodes are skipped with a diagnostic, never fatal.
var ErrUnrecognizedNodeKind = errors.New("unrecognized node kind")

// Node is one of *Element, *Text or *Comment. The set is closed: the marker
// method is unexported so no other package can add a node kind.
type Node interface {
	node()
}

// Attr is a single element attribute as authored. HasValue is false for
// value-less (boolean) attributes such as <input disabled>.
type Attr struct {
	Name     string
	Value    string
	HasValue bool
}

// Element is a markup element. Tag keeps the case produced by the parser.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

// Text holds decoded character data.
type Text struct {
	Data string
}

// Comment holds raw comment content, terminator sequences included.
type Comment struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// TextContent concatenates all descendant text of the element in document
// order, the same value a browser reports as textContent.
func (e *Element) TextContent() string {
	var buf []byte
	var collect func(nodes []Node)
	collect = func(nodes []Node) {
		for _, n := range nodes {
			switch t := n.(type) {
			case *Text:
				buf = append(buf, t.Data...)
			case *Element:
				collect(t.Children)
			}
		}
	}
	collect(e.Children)
	return string(buf)
}

// Attr returns the attribute with the given name.
func (e *Element) Attr(name string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// NewText is a convenience constructor used by parsers and tests.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// NewComment is a convenience constructor used by parsers and tests.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// NewElement builds an element with the given children.
func NewElement(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}
