package markup

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"h2jsx/dom"
)

// HTMLParser parses HTML fragments the way a browser parses innerHTML of a
// <div>: implied elements are not added, tag and attribute names are lower
// cased and SVG names are restored to their canonical case.
type HTMLParser struct {
	settings Settings
	log      *zap.Logger
}

// NewHTMLParser creates an HTML fragment parser.
func NewHTMLParser(settings Settings, log *zap.Logger) *HTMLParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTMLParser{settings: settings, log: log.Named("html")}
}

// Parse reads the whole input and returns the fragment children.
func (p *HTMLParser) Parse(r io.Reader) ([]dom.Node, error) {
	r, err := Decode(r, p.settings.Charset)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(bytes.NewReader(bytes.TrimSpace(data)), context)
	if err != nil {
		return nil, fmt.Errorf("unable to parse html: %w", err)
	}

	// goquery wants a single root to query from
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	if !p.settings.KeepScripts {
		if removed := goquery.NewDocumentFromNode(root).Find("script").Remove(); removed.Length() > 0 {
			p.log.Debug("Removed script elements", zap.Int("count", removed.Length()))
		}
	}

	return frame(p.children(root)), nil
}

func (p *HTMLParser) children(parent *html.Node) []dom.Node {
	var out []dom.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if n := p.convert(c); n != nil {
			out = append(out, n)
		}
	}
	return mergeText(out)
}

func (p *HTMLParser) convert(n *html.Node) dom.Node {
	switch n.Type {
	case html.ElementNode:
		el := &dom.Element{Tag: n.Data, Attrs: make([]dom.Attr, 0, len(n.Attr))}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			// the tokenizer does not tell value-less attributes from empty ones
			el.Attrs = append(el.Attrs, dom.Attr{Name: name, Value: a.Val, HasValue: a.Val != ""})
		}
		el.Children = p.children(n)
		return el
	case html.TextNode:
		return dom.NewText(n.Data)
	case html.CommentNode:
		return dom.NewComment(n.Data)
	default:
		p.log.Warn("Skipping node", zap.String("kind", nodeTypeName(n.Type)), zap.String("data", n.Data), zap.Error(dom.ErrUnrecognizedNodeKind))
		return nil
	}
}

func nodeTypeName(t html.NodeType) string {
	switch t {
	case html.ErrorNode:
		return "error"
	case html.DocumentNode:
		return "document"
	case html.DoctypeNode:
		return "doctype"
	case html.RawNode:
		return "raw"
	default:
		return fmt.Sprintf("type(%d)", t)
	}
}
