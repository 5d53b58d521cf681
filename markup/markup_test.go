package markup

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"h2jsx/dom"
)

// warnRecorder collects warning messages logged through the returned logger.
func warnRecorder(t *testing.T) (*zap.Logger, func() []string) {
	t.Helper()
	var (
		mu   sync.Mutex
		msgs []string
	)
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.Hooks(func(e zapcore.Entry) error {
		if e.Level == zapcore.WarnLevel {
			mu.Lock()
			msgs = append(msgs, e.Message)
			mu.Unlock()
		}
		return nil
	})))
	return log, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), msgs...)
	}
}

func TestNew(t *testing.T) {
	for _, input := range []string{"", InputHTML} {
		p, err := New(input, Settings{}, nil)
		if err != nil {
			t.Fatalf("New(%q) error = %v", input, err)
		}
		if _, ok := p.(*HTMLParser); !ok {
			t.Errorf("New(%q) = %T, want *HTMLParser", input, p)
		}
	}
	p, err := New(InputXML, Settings{}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*XMLParser); !ok {
		t.Errorf("New(xml) = %T, want *XMLParser", p)
	}
	if _, err := New("pdf", Settings{}, nil); err == nil {
		t.Error("expected error for unsupported input")
	}
}

func TestMergeText(t *testing.T) {
	p := dom.NewElement("p", nil)
	got := mergeText([]dom.Node{dom.NewText("a"), dom.NewText("b"), p, dom.NewText("c"), dom.NewComment("x"), dom.NewText("d"), dom.NewText("e")})
	want := []string{"ab", "<p>", "c", "<!--x-->", "de"}
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d: %s", len(got), len(want), dom.Dump(got))
	}
	for i, n := range got {
		var s string
		switch v := n.(type) {
		case *dom.Text:
			s = v.Data
		case *dom.Element:
			s = "<" + v.Tag + ">"
		case *dom.Comment:
			s = "<!--" + v.Data + "-->"
		}
		if s != want[i] {
			t.Errorf("node %d = %q, want %q", i, s, want[i])
		}
	}
}

func TestFrame(t *testing.T) {
	got := frame([]dom.Node{dom.NewText("x"), dom.NewElement("p", nil), dom.NewText("y")})
	if len(got) != 3 {
		t.Fatalf("got %d nodes: %s", len(got), dom.Dump(got))
	}
	if first := got[0].(*dom.Text).Data; first != "\nx" {
		t.Errorf("first = %q", first)
	}
	if last := got[2].(*dom.Text).Data; last != "y\n" {
		t.Errorf("last = %q", last)
	}

	empty := frame(nil)
	if len(empty) != 1 || empty[0].(*dom.Text).Data != "\n\n" {
		t.Errorf("frame(nil) = %s", dom.Dump(empty))
	}
}

func TestHTMLParser_Parse(t *testing.T) {
	p := NewHTMLParser(Settings{}, zaptest.NewLogger(t))
	nodes, err := p.Parse(strings.NewReader("  <DIV class=\"a\" hidden>x<!--c--></DIV>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes: %s", len(nodes), dom.Dump(nodes))
	}
	el, ok := nodes[1].(*dom.Element)
	if !ok {
		t.Fatalf("nodes[1] = %T", nodes[1])
	}
	if el.Tag != "div" {
		t.Errorf("Tag = %q", el.Tag)
	}
	if a, ok := el.Attr("class"); !ok || a.Value != "a" || !a.HasValue {
		t.Errorf("class = %+v, %v", a, ok)
	}
	if a, ok := el.Attr("hidden"); !ok || a.HasValue {
		t.Errorf("hidden = %+v, %v", a, ok)
	}
	if len(el.Children) != 2 {
		t.Fatalf("children: %s", dom.Dump(el.Children))
	}
	if c, ok := el.Children[1].(*dom.Comment); !ok || c.Data != "c" {
		t.Errorf("comment = %#v", el.Children[1])
	}
}

func TestHTMLParser_Scripts(t *testing.T) {
	src := "<div>foo<script>\nlol\n</script>bar</div><script>x()</script>"

	nodes, err := NewHTMLParser(Settings{}, zaptest.NewLogger(t)).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	dump := dom.Dump(nodes)
	if strings.Contains(dump, "script") {
		t.Errorf("scripts were not removed:\n%s", dump)
	}
	div := nodes[1].(*dom.Element)
	if len(div.Children) != 1 || div.TextContent() != "foobar" {
		t.Errorf("text around script not merged:\n%s", dump)
	}

	nodes, err = NewHTMLParser(Settings{KeepScripts: true}, zaptest.NewLogger(t)).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(dom.Dump(nodes), "<script>"); got != 2 {
		t.Errorf("KeepScripts: got %d scripts", got)
	}
}

func TestHTMLParser_SVG(t *testing.T) {
	src := `<svg viewbox="0 0 1 1"><clippath><use xlink:href="#a"/></clippath></svg>`
	nodes, err := NewHTMLParser(Settings{}, zaptest.NewLogger(t)).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	svg := nodes[1].(*dom.Element)
	if _, ok := svg.Attr("viewBox"); !ok {
		t.Errorf("viewBox not restored: %+v", svg.Attrs)
	}
	clip := svg.Children[0].(*dom.Element)
	if clip.Tag != "clipPath" {
		t.Errorf("Tag = %q, want clipPath", clip.Tag)
	}
	use := clip.Children[0].(*dom.Element)
	if a, ok := use.Attr("xlink:href"); !ok || a.Value != "#a" {
		t.Errorf("xlink:href = %+v, %v (attrs %+v)", a, ok, use.Attrs)
	}
}

func TestHTMLParser_Charset(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		src      []byte
		want     string
	}{
		{"utf-8 default", Settings{}, []byte("<p>Привет</p>"), "Привет"},
		{"forced windows-1251", Settings{Charset: "windows-1251"}, []byte{'<', 'p', '>', 0xcf, 0xf0, 0xe8, '<', '/', 'p', '>'}, "При"},
		{"meta declaration", Settings{}, []byte("<meta charset=\"iso-8859-1\"><p>caf\xe9</p>"), "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := NewHTMLParser(tt.settings, zaptest.NewLogger(t)).Parse(bytes.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			var p *dom.Element
			for _, n := range nodes {
				if el, ok := n.(*dom.Element); ok && el.Tag == "p" {
					p = el
				}
			}
			if p == nil {
				t.Fatalf("no <p> in %s", dom.Dump(nodes))
			}
			if got := p.TextContent(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := NewHTMLParser(Settings{Charset: "no-such-charset"}, nil).Parse(strings.NewReader("x")); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestXMLParser_Parse(t *testing.T) {
	log, warnings := warnRecorder(t)
	src := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 1 1">
  <!-- icon -->
  <linearGradient id="g"/>
  <script>alert(1)</script>
  <use xlink:href="#g" class=""/>
</svg>`
	nodes, err := NewXMLParser(Settings{}, log).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", warnings())
	}

	var svg *dom.Element
	for _, n := range nodes {
		if el, ok := n.(*dom.Element); ok {
			svg = el
		}
	}
	if svg == nil || svg.Tag != "svg" {
		t.Fatalf("no svg element:\n%s", dom.Dump(nodes))
	}
	if _, ok := svg.Attr("viewBox"); !ok {
		t.Errorf("attribute case not preserved: %+v", svg.Attrs)
	}
	if _, ok := svg.Attr("xmlns:xlink"); !ok {
		t.Errorf("namespace declaration missing: %+v", svg.Attrs)
	}

	dump := dom.Dump(nodes)
	for _, want := range []string{"Element <linearGradient>", "Comment: \" icon \"", "@xlink:href=\"#g\"", "@class=\"\""} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump is missing %q:\n%s", want, dump)
		}
	}
	if strings.Contains(dump, "script") {
		t.Errorf("script was not removed:\n%s", dump)
	}
}

func TestXMLParser_Warnings(t *testing.T) {
	log, warnings := warnRecorder(t)
	src := `<!DOCTYPE svg><?xml-stylesheet href="a.css"?><svg/>`
	nodes, err := NewXMLParser(Settings{KeepScripts: true}, log).Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(warnings()); got != 2 {
		t.Errorf("got %d warnings, want 2: %v", got, warnings())
	}
	if len(nodes) != 3 {
		t.Errorf("got %d nodes:\n%s", len(nodes), dom.Dump(nodes))
	}
}

func TestXMLParser_Errors(t *testing.T) {
	p := NewXMLParser(Settings{}, nil)
	if _, err := p.Parse(strings.NewReader("<a></b>")); err == nil {
		t.Error("expected error for mismatched tags")
	}
	if _, err := p.Parse(errReader{}); err == nil {
		t.Error("expected read error")
	}
}

func TestXMLParser_Charset(t *testing.T) {
	src := []byte("<?xml version=\"1.0\" encoding=\"windows-1251\"?><p>\xcf\xf0\xe8</p>")
	for _, settings := range []Settings{{}, {Charset: "windows-1251"}} {
		nodes, err := NewXMLParser(settings, zaptest.NewLogger(t)).Parse(bytes.NewReader(src))
		if err != nil {
			t.Fatalf("charset %q: %v", settings.Charset, err)
		}
		p := nodes[1].(*dom.Element)
		if got := p.TextContent(); got != "При" {
			t.Errorf("charset %q: text = %q", settings.Charset, got)
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
