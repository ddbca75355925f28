// Identifier conversion for generated code: path parameter names arrive in
// snake_case or kebab-case and must become valid exported Go field names and
// unexported argument names, with reserved words escaped.

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go keywords that cannot be used as identifiers.
// Predeclared identifiers like "error" are omitted because they can be
// shadowed safely.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// escapeReservedWord appends an underscore when name is a Go keyword.
func escapeReservedWord(name string) string {
	if goReservedWords[name] {
		return name + "_"
	}
	return name
}

// exportedName converts an identifier like "thread_id" or "api-version" to
// an exported Go name ("ThreadId", "ApiVersion"). Characters that cannot
// appear in an identifier act as word separators.
func exportedName(s string) string {
	if s == "" {
		return "Param"
	}

	var b strings.Builder
	for _, word := range splitWords(s) {
		if isUpperWord(word) {
			b.WriteString(word)
			continue
		}
		b.WriteString(titleCaser.String(strings.ToLower(word)))
	}

	name := b.String()
	if name == "" {
		return "Param"
	}
	if !unicode.IsLetter(rune(name[0])) {
		name = "P" + name
	}
	return name
}

// argName converts an identifier to an unexported Go name for constructor
// arguments ("thread_id" becomes "threadId"), escaping reserved words.
func argName(s string) string {
	name := exportedName(s)
	return escapeReservedWord(lowerFirst(name))
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// splitWords splits on non-alphanumeric separators only; CamelCase runs are
// preserved as given.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isUpperWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
