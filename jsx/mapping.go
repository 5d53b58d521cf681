package jsx

import (
	"strconv"
	"strings"
)

// TagName converts an element name to its JSX spelling: lower case unless
// the exception table says otherwise.
func (t *Tables) TagName(raw string) string {
	name := strings.ToLower(raw)
	if canonical, ok := t.tagNames[name]; ok {
		return canonical
	}
	return name
}

// Attribute renders one markup attribute as a JSX attribute token.
//
// Style attributes become an object literal. Whole base-10 integers are
// emitted as expressions, other non-empty values as string literals with
// quotes entity-escaped. Empty and value-less attributes both produce a bare
// name; the two cases are intentionally indistinguishable in the output.
func (t *Tables) Attribute(tag, name, value string) string {
	if name == "style" {
		return "style={" + ParseStyle(value).Literal() + "}"
	}

	out := t.AttributeName(tag, name)
	switch {
	case isNumeric(value):
		return out + "={" + value + "}"
	case len(value) > 0:
		return out + `="` + strings.ReplaceAll(value, `"`, "&quot;") + `"`
	}
	return out
}

// MapTagName resolves a tag name with the default tables.
func MapTagName(raw string) string {
	return DefaultTables().TagName(raw)
}

// MapAttribute resolves an attribute with the default tables.
func MapAttribute(tag, name, value string) string {
	return DefaultTables().Attribute(tag, name, value)
}

// isNumeric reports whether value is a base-10 integer that survives a round
// trip unchanged, so "2" and "-7" qualify while "02", "+2" and "2px" do not.
func isNumeric(value string) bool {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	return strconv.FormatInt(n, 10) == value
}
