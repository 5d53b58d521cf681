package jsx

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	sprig "github.com/go-task/slim-sprig/v3"
)

// DefaultScaffoldTemplate wraps converted markup in a React class component.
// Available values: .Name (may be empty), .Indent and .Body.
const DefaultScaffoldTemplate = `{{ with .Name }}var {{ . }} = {{ end }}React.createClass({
{{ .Indent }}render: function() {
{{ repeat 2 .Indent }}return (
{{ .Body }}
{{ repeat 2 .Indent }});
{{ .Indent }}}
});`

// scaffoldDepth is the number of indentation levels the scaffold places in
// front of converted markup.
const scaffoldDepth = 3

// ScaffoldValues is what the scaffold template is executed with.
type ScaffoldValues struct {
	Name   string
	Indent string
	Body   string
}

// Assembler turns the raw traversal buffer into final output.
type Assembler struct {
	indent   string
	name     string
	scaffold *template.Template
}

// NewAssembler prepares an assembler. A nil error and a nil scaffold template
// mean plain markup output.
func NewAssembler(opts Options) (*Assembler, error) {
	a := &Assembler{indent: opts.Indent, name: opts.ScaffoldName}
	if !opts.Scaffold {
		return a, nil
	}
	text := opts.ScaffoldTemplate
	if text == "" {
		text = DefaultScaffoldTemplate
	}
	tmpl, err := template.New("scaffold").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse scaffold template: %w", err)
	}
	a.scaffold = tmpl
	return a, nil
}

// Assemble finalizes a traversal buffer. The walker always indents as if the
// scaffold were present; without it that indentation is stripped from every
// line so both forms agree on relative indentation.
func (a *Assembler) Assemble(body string) (string, error) {
	if a.scaffold == nil {
		out := strings.TrimSpace(body) + "\n"
		if a.indent == "" {
			return out, nil
		}
		return strings.ReplaceAll(out, "\n"+strings.Repeat(a.indent, scaffoldDepth), "\n"), nil
	}

	values := ScaffoldValues{
		Name:   a.name,
		Indent: a.indent,
		Body:   strings.TrimRightFunc(body, unicode.IsSpace),
	}
	buf := new(bytes.Buffer)
	if err := a.scaffold.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand scaffold template: %w", err)
	}
	return buf.String(), nil
}
