package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"h2jsx/dom"
)

// XMLParser parses well-formed XHTML or SVG documents. Unlike HTMLParser it
// keeps names exactly as authored.
type XMLParser struct {
	settings Settings
	log      *zap.Logger
}

// NewXMLParser creates an XML document parser.
func NewXMLParser(settings Settings, log *zap.Logger) *XMLParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &XMLParser{settings: settings, log: log.Named("xml")}
}

// Parse reads a complete document and returns its top-level nodes.
func (p *XMLParser) Parse(r io.Reader) ([]dom.Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if len(p.settings.Charset) > 0 {
		dr, err := Decode(r, p.settings.Charset)
		if err != nil {
			return nil, err
		}
		r = dr
		// input is UTF-8 already, ignore the declaration
		doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	if err := doc.ReadFromBytes(bytes.TrimSpace(data)); err != nil {
		return nil, fmt.Errorf("unable to parse xml: %w", err)
	}
	return frame(p.children(doc.Child)), nil
}

func (p *XMLParser) children(tokens []etree.Token) []dom.Node {
	var out []dom.Node
	for _, t := range tokens {
		if n := p.convert(t); n != nil {
			out = append(out, n)
		}
	}
	return mergeText(out)
}

func (p *XMLParser) convert(t etree.Token) dom.Node {
	switch v := t.(type) {
	case *etree.Element:
		if !p.settings.KeepScripts && strings.EqualFold(v.Tag, "script") {
			p.log.Debug("Removed script element", zap.String("tag", v.FullTag()))
			return nil
		}
		el := &dom.Element{Tag: v.FullTag(), Attrs: make([]dom.Attr, 0, len(v.Attr))}
		for _, a := range v.Attr {
			el.Attrs = append(el.Attrs, dom.Attr{Name: a.FullKey(), Value: a.Value, HasValue: true})
		}
		el.Children = p.children(v.Child)
		return el
	case *etree.CharData:
		return dom.NewText(v.Data)
	case *etree.Comment:
		return dom.NewComment(v.Data)
	case *etree.ProcInst:
		if v.Target != "xml" {
			p.log.Warn("Skipping processing instruction", zap.String("target", v.Target), zap.Error(dom.ErrUnrecognizedNodeKind))
		}
		return nil
	default:
		p.log.Warn("Skipping node", zap.String("kind", fmt.Sprintf("%T", t)), zap.Error(dom.ErrUnrecognizedNodeKind))
		return nil
	}
}
