package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// ExportedName converts a use case title to an exported identifier,
// e.g. "Ban subscriber" becomes "BanSubscriber".
func ExportedName(title string) string {
	return inflect.Camelize(underscore(title))
}

// FieldName converts a use case title to an unexported identifier,
// e.g. "Ban subscriber" becomes "banSubscriber".
func FieldName(title string) string {
	return inflect.CamelizeDownFirst(underscore(title))
}

// ModuleName derives a module name from arbitrary text, e.g. a file base
// name: "example-portal" becomes "ExamplePortal". Characters that cannot
// appear in a module name are treated as word separators.
func ModuleName(text string) string {
	var b strings.Builder
	for _, word := range splitWords(text) {
		b.WriteString(titleCaser.String(word))
	}
	return b.String()
}

// ValidModuleName reports whether name is usable as a generated module
// name: dot-separated segments, each starting with an uppercase letter
// followed by letters or digits.
func ValidModuleName(name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if !validModuleSegment(seg) {
			return false
		}
	}
	return true
}

func validModuleSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i, r := range seg {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validLowerIdent reports whether name is a lowercase-leading identifier,
// usable as a portal value name in the generated source.
func validLowerIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLower(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// underscore rewrites text into snake case so the inflect rules apply
// uniformly to titles containing spaces or punctuation.
func underscore(text string) string {
	return strings.Join(splitWords(text), "_")
}

func splitWords(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
