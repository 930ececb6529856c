// Package naming derives Go identifiers from resource paths and names.
package naming

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier converts a resource name or path into an exported Go identifier.
// Template segments such as {id} are dropped and plural words are
// singularized: "/users/{id}/orders" becomes "UserOrder".
func Identifier(s string) string {
	title := cases.Title(language.English, cases.NoLower)
	var sb strings.Builder
	for _, segment := range strings.Split(s, "/") {
		if isTemplate(segment) {
			continue
		}
		for _, word := range strings.FieldsFunc(segment, isSeparator) {
			sb.WriteString(title.String(inflection.Singular(word)))
		}
	}
	out := sb.String()
	if out == "" {
		return "Root"
	}
	if r, _ := utf8.DecodeRuneInString(out); !unicode.IsLetter(r) {
		out = "R" + out
	}
	return out
}

func isTemplate(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Registry hands out unique identifiers, suffixing repeats with a counter.
type Registry struct {
	seen map[string]int
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]int)}
}

// Unique returns name, or name2, name3... if name was handed out before.
func (r *Registry) Unique(name string) string {
	r.seen[name]++
	n := r.seen[name]
	if n == 1 {
		return name
	}
	candidate := name + strconv.Itoa(n)
	for r.seen[candidate] > 0 {
		n++
		r.seen[name] = n
		candidate = name + strconv.Itoa(n)
	}
	r.seen[candidate]++
	return candidate
}
