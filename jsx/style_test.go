package jsx_test

import (
	"testing"

	"h2jsx/jsx"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single", "color: red", `{"color":"red"}`},
		{"hyphenated", "padding-left: 10px", `{"paddingLeft":"10px"}`},
		{"shorthand with trailing semicolon", "padding: 10px 15px 20px 25px;", `{"padding":"10px 15px 20px 25px"}`},
		{"ms prefix", "-ms-transform: rotate(1deg)", `{"msTransform":"rotate(1deg)"}`},
		{"ms flex", "-ms-flex: 1", `{"msFlex":"1"}`},
		{"webkit prefix", "-webkit-flex: 1", `{"WebkitFlex":"1"}`},
		{"moz prefix", "-moz-hyphens: auto; -webkit-hyphens: auto", `{"MozHyphens":"auto","WebkitHyphens":"auto"}`},
		{"upper case property", "COLOR: Red", `{"color":"Red"}`},
		{"value keeps colons", "background: url(http://foo.bar/img.jpg)", `{"background":"url(http://foo.bar/img.jpg)"}`},
		{"no colon dropped", "float", `{}`},
		{"no colon among others", "float; color: red", `{"color":"red"}`},
		{"empty property dropped", ": red; color: blue", `{"color":"blue"}`},
		{"empty value kept", "color:", `{"color":""}`},
		{"duplicate last wins", "color:red;color:blue", `{"color":"blue"}`},
		{"duplicate keeps position", "color: red; margin: 0; color: blue", `{"color":"blue","margin":"0"}`},
		{"empty", "", `{}`},
		{"only separators", " ; ;; ", `{}`},
		{"quotes in value", `font-family: "Roboto Slab"`, `{"fontFamily":"\"Roboto Slab\""}`},
		{"multi-line", "\n  color: red;\n  font-size: 12px;\n", `{"color":"red","fontSize":"12px"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := jsx.ParseStyle(tt.raw).Literal(); got != tt.want {
				t.Errorf("ParseStyle(%q).Literal() = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseStyle_Declarations(t *testing.T) {
	s := jsx.ParseStyle("color: red; -ms-flex: 1; color: blue; float")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	decls := s.Declarations()
	want := []jsx.Declaration{{Key: "color", Value: "blue"}, {Key: "msFlex", Value: "1"}}
	for i := range want {
		if decls[i] != want[i] {
			t.Errorf("decls[%d] = %+v, want %+v", i, decls[i], want[i])
		}
	}

	// returned slice is a copy
	decls[0].Value = "green"
	if v, _ := s.Get("color"); v != "blue" {
		t.Errorf("Get(color) = %q after modifying Declarations() result", v)
	}
	if _, ok := s.Get("float"); ok {
		t.Error("declaration without colon should be dropped")
	}
}

func TestParseStyle_Stable(t *testing.T) {
	first := jsx.ParseStyle("color: red")
	// re-serialize as CSS and parse again
	var css string
	for _, d := range first.Declarations() {
		css += d.Key + ": " + d.Value + ";"
	}
	second := jsx.ParseStyle(css)
	if first.Literal() != second.Literal() {
		t.Errorf("reparse changed association: %s != %s", first.Literal(), second.Literal())
	}
	if v, ok := second.Get("color"); !ok || v != "red" {
		t.Errorf("Get(color) = %q, %v", v, ok)
	}
}

func TestParseStyle_MalformedCSS(t *testing.T) {
	raw := `
color: rgb(209, 204, 189);
*border-bottom: .175em solid rgba( 209, 204, 189, 1);
float: left;
font-size: 590%;
font-family: 'Roboto Slab';
font-weight: bold;
*font-style: italic;
line-height: 80%;
font-weight: 700;
width: .8em;
padding-left: .1em;
margin-right: .1em;
*color: white;
`
	want := `{"color":"rgb(209, 204, 189)","*borderBottom":".175em solid rgba( 209, 204, 189, 1)","float":"left",` +
		`"fontSize":"590%","fontFamily":"'Roboto Slab'","fontWeight":"700","*fontStyle":"italic","lineHeight":"80%",` +
		`"width":".8em","paddingLeft":".1em","marginRight":".1em","*color":"white"}`
	if got := jsx.ParseStyle(raw).Literal(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
