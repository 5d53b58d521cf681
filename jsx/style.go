package jsx

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
)

// Declaration is a single inline style property with its JSX key.
type Declaration struct {
	Key   string
	Value string
}

// Style is an ordered set of inline style declarations keyed by JSX name.
type Style struct {
	decls []Declaration
	index map[string]int
}

// ParseStyle splits an inline style attribute into declarations.
//
// Each ';' separated clause is trimmed and split at its first ':'. Clauses
// without a colon or with an empty property name are dropped. Property names
// are lower-cased and converted to camelCase. When a property repeats, the
// last value wins and keeps the position of the first occurrence.
func ParseStyle(raw string) *Style {
	s := &Style{index: make(map[string]int)}
	for clause := range strings.SplitSeq(raw, ";") {
		decl := parse.TrimWhitespace([]byte(clause))
		colon := bytes.IndexByte(decl, ':')
		if colon < 0 {
			continue
		}
		prop := parse.TrimWhitespace(parse.ToLower(decl[:colon]))
		if len(prop) == 0 {
			continue
		}
		s.set(styleKey(string(prop)), string(parse.TrimWhitespace(decl[colon+1:])))
	}
	return s
}

func (s *Style) set(key, value string) {
	if i, ok := s.index[key]; ok {
		s.decls[i].Value = value
		return
	}
	s.index[key] = len(s.decls)
	s.decls = append(s.decls, Declaration{Key: key, Value: value})
}

// Declarations returns parsed declarations in output order.
func (s *Style) Declarations() []Declaration {
	return append([]Declaration(nil), s.decls...)
}

// Get returns the value stored under a JSX style key.
func (s *Style) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.decls[i].Value, true
}

// Len returns the number of distinct declarations.
func (s *Style) Len() int {
	return len(s.decls)
}

// Literal renders the declarations as an object literal with string keys and
// string values, e.g. {"color":"red","paddingLeft":"2px"}.
func (s *Style) Literal() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s.decls {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(d.Key))
		b.WriteByte(':')
		b.WriteString(quote(d.Value))
	}
	b.WriteByte('}')
	return b.String()
}

// styleKey converts a CSS property name to its JSX form. Only the Microsoft
// vendor prefix is lower-cased: -ms-transform becomes msTransform while
// -webkit-transition becomes WebkitTransition.
func styleKey(prop string) string {
	if strings.HasPrefix(prop, "-ms-") {
		prop = prop[1:]
	}
	return hyphenToCamelCase(prop)
}

// hyphenToCamelCase drops every hyphen that is followed by a character and
// upper-cases that character. Line breaks are not joined.
func hyphenToCamelCase(s string) string {
	if !strings.ContainsRune(s, '-') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '-' && i+1 < len(s) {
			r, size := utf8.DecodeRuneInString(s[i+1:])
			if !isLineTerminator(r) {
				b.WriteRune(unicode.ToUpper(r))
				i += 1 + size
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
