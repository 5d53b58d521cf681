package jsx_test

import (
	"testing"

	"h2jsx/jsx"
)

func TestEscapeText(t *testing.T) {
	normal := func(depth int) jsx.TextContext {
		return jsx.TextContext{Mode: jsx.TextNormal, Depth: depth, Indent: "  "}
	}
	pre := jsx.TextContext{Mode: jsx.TextPreformatted, Depth: 3, Indent: "  "}

	tests := []struct {
		name string
		raw  string
		ctx  jsx.TextContext
		want string
	}{
		{"plain", "Hello world!", normal(1), "Hello world!"},
		{"markup characters", "a < b & c > d", normal(1), "a &lt; b &amp; c &gt; d"},
		{"non-breaking space", "a\u00a0b", normal(1), "a&nbsp;b"},
		{"other unicode untouched", "© 2014 – ✓", normal(1), "© 2014 – ✓"},
		{"quotes untouched", `"it's"`, normal(1), `"it's"`},
		{"braces", "{foo}", normal(1), "{'{'}foo{'}'}"},
		{"newline reflow", "foo\n      bar", normal(1), "foo\n      bar"},
		{"newline reflow deeper", "foo\nbar", normal(2), "foo\n        bar"},
		{"whitespace run after newline", "a\n \t\n  b", normal(0), "a\n    b"},
		{"single line whitespace kept", "a   b", normal(1), "a   b"},
		{"custom indent", "a\nb", jsx.TextContext{Mode: jsx.TextNormal, Depth: 1, Indent: "\t"}, "a\n\t\t\tb"},
		{"pre newline and braces", "hello\nworld{foo}", pre, `hello{"\n"}world{"{"}foo{"}"}`},
		{"pre spaces", "this   is a", pre, `this{"   "}is a`},
		{"pre tab", "a\tb", pre, `a{"\t"}b`},
		{"pre carriage return", "a\r\nb", pre, `a{"\n"}b`},
		{"pre markup characters", "<b>&", pre, "&lt;b&gt;&amp;"},
		{"suppressed", "anything\n{}", jsx.TextContext{Mode: jsx.TextSuppressed}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jsx.EscapeText(tt.raw, tt.ctx); got != tt.want {
				t.Errorf("EscapeText(%q, %s) = %q, want %q", tt.raw, tt.ctx.Mode, got, tt.want)
			}
		})
	}
}

func TestEscapeText_PreformattedRestartable(t *testing.T) {
	ctx := jsx.TextContext{Mode: jsx.TextPreformatted}
	first := jsx.EscapeText("x  {y}\n", ctx)
	second := jsx.EscapeText("x  {y}\n", ctx)
	if first != second {
		t.Errorf("calls disagree: %q != %q", first, second)
	}
}

func TestTextMode_String(t *testing.T) {
	tests := map[jsx.TextMode]string{
		jsx.TextNormal:       "normal",
		jsx.TextPreformatted: "preformatted",
		jsx.TextSuppressed:   "suppressed",
		jsx.TextMode(42):     "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("TextMode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
