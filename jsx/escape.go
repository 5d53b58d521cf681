package jsx

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// TextMode selects the whitespace policy applied to a text node.
type TextMode int

const (
	// TextNormal lets JSX collapse whitespace; multi-line text is re-indented.
	TextNormal TextMode = iota
	// TextPreformatted keeps every significant whitespace character.
	TextPreformatted
	// TextSuppressed drops the text, its owner already carries it in an
	// attribute.
	TextSuppressed
)

func (m TextMode) String() string {
	switch m {
	case TextNormal:
		return "normal"
	case TextPreformatted:
		return "preformatted"
	case TextSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// TextContext carries what EscapeText needs to know about the text position.
type TextContext struct {
	Mode   TextMode
	Depth  int
	Indent string
}

var (
	markupEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\u00a0", "&nbsp;",
	)
	braceEscaper = strings.NewReplacer(
		"{", "{'{'}",
		"}", "{'}'}",
	)
	newlineRun    = regexp.MustCompile(`\n\s*`)
	preformatRuns = regexp.MustCompile(`( {2,}|\n|\t|\{|\})`)
)

// EscapeText renders character data for the given context.
func EscapeText(raw string, ctx TextContext) string {
	if ctx.Mode == TextSuppressed {
		return ""
	}

	text := markupEscaper.Replace(raw)
	if ctx.Mode == TextPreformatted {
		text = strings.ReplaceAll(text, "\r", "")
		return preformatRuns.ReplaceAllStringFunc(text, func(run string) string {
			return "{" + quote(run) + "}"
		})
	}

	text = braceEscaper.Replace(text)
	if strings.Contains(text, "\n") {
		text = newlineRun.ReplaceAllLiteralString(text, indentedNewline(ctx.Indent, ctx.Depth))
	}
	return text
}

// indentedNewline returns a line break followed by indentation for the given
// depth. Two extra levels leave room for the component scaffold.
func indentedNewline(indent string, depth int) string {
	return "\n" + strings.Repeat(indent, depth+2)
}

// quote renders s as a double quoted string literal valid in both JSON and
// JavaScript. Markup characters are left alone.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
