package typescript

import (
	"strings"
	"unicode"
)

// TypeScript reserved words that cannot be used as declaration names.
var reservedWords = func() map[string]struct{} {
	words := strings.Fields(`
		break case catch class const continue debugger default delete do
		else enum export extends false finally for function if implements
		import in instanceof interface let new null package private
		protected public return static super switch this throw true try
		type typeof var void while with yield`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// escapeReserved makes a name usable as a declaration identifier by
// appending an underscore to reserved words.
func escapeReserved(name string) string {
	if _, ok := reservedWords[name]; ok {
		return name + "_"
	}
	return name
}

// needsQuoting reports whether a property name must be written as a
// string literal.
func needsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' || r == '$' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return true
	}
	return false
}
