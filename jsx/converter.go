// Package jsx converts a parsed markup tree into JSX source text.
//
// Tag and attribute names are rewritten through immutable lookup tables,
// inline styles become object literals, and text is escaped according to the
// element it lives in: normal flow, preformatted blocks, or tags whose content
// is hoisted into an attribute (textarea, style).
package jsx

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"h2jsx/dom"
	"h2jsx/markup"
)

const (
	DefaultIndent       = "  "
	DefaultContainerTag = "div"
)

// Options controls a Converter.
type Options struct {
	// Indent is one level of indentation, two spaces by default.
	Indent string
	// ContainerTag wraps fragments with more than one top-level element.
	ContainerTag string
	// Scaffold wraps the output in a component declaration.
	Scaffold     bool
	ScaffoldName string
	// ScaffoldTemplate replaces DefaultScaffoldTemplate when not empty.
	ScaffoldTemplate string
}

// Option customizes converter collaborators.
type Option func(*Converter)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log.Named("jsx")
		}
	}
}

// WithTables replaces the default lookup tables.
func WithTables(t *Tables) Option {
	return func(c *Converter) {
		if t != nil {
			c.tables = t
		}
	}
}

// Converter turns node fragments into JSX. It holds no per-conversion state
// and may be used from several goroutines at once.
type Converter struct {
	opts      Options
	tables    *Tables
	assembler *Assembler
	log       *zap.Logger
}

// New creates a converter. It fails only when a custom scaffold template
// cannot be parsed.
func New(opts Options, options ...Option) (*Converter, error) {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	if opts.ContainerTag == "" {
		opts.ContainerTag = DefaultContainerTag
	}

	c := &Converter{opts: opts, log: zap.NewNop()}
	for _, o := range options {
		o(c)
	}
	if c.tables == nil {
		c.tables = DefaultTables()
	}

	a, err := NewAssembler(opts)
	if err != nil {
		return nil, err
	}
	c.assembler = a
	return c, nil
}

// Options returns the effective options, defaults applied.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert serializes the children of a document fragment. A fragment with a
// single element (ignoring whitespace-only text and comments) is emitted as
// is; anything else is wrapped in the container tag.
func (c *Converter) Convert(nodes []dom.Node) (string, error) {
	w := &walker{tables: c.tables, indent: c.opts.Indent, log: c.log}

	if onlyOneTopLevel(nodes) {
		w.traverse(nodes, frame{})
	} else {
		w.out.WriteString(strings.Repeat(c.opts.Indent, scaffoldDepth))
		w.element(&dom.Element{Tag: c.opts.ContainerTag, Children: nodes}, frame{depth: 1})
	}

	c.log.Debug("Fragment converted", zap.Int("nodes", len(nodes)), zap.Int("bytes", w.out.Len()))
	return c.assembler.Assemble(w.out.String())
}

// ConvertString parses html as a fragment and converts it. Scripts are
// removed and the encoding is assumed to be UTF-8.
func (c *Converter) ConvertString(html string) (string, error) {
	nodes, err := markup.NewHTMLParser(markup.Settings{Charset: "utf-8"}, c.log).Parse(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("unable to parse markup: %w", err)
	}
	return c.Convert(nodes)
}
