// Package directive parses protots directives out of .proto comment text.
//
// Directives are inline markers embedded in documentation comments:
//
//	// The job finished without errors.
//	// @Translate: Finished
//	JOB_STATE_DONE = 3;
//
// The Translate directive overrides the display label derived from the
// member name. The grammar is deliberately narrow: the marker is
// case-sensitive and the override value is a single run of word
// characters, so the format can later be replaced by a structured
// option without touching any emitter code.
package directive

import "regexp"

// translatePattern matches "@Translate: <token>" where the token is a
// contiguous run of word characters. Quoted strings and embedded spaces
// are not supported.
var translatePattern = regexp.MustCompile(`@Translate: (\w+)`)

// Translation extracts a Translate override from comment text. It
// returns the captured token and true for the first occurrence, or
// ("", false) when the comment carries no well-formed directive. A bare
// "@Translate:" with no following token is treated as absent.
func Translation(comment string) (string, bool) {
	m := translatePattern.FindStringSubmatch(comment)
	if m == nil {
		return "", false
	}
	return m[1], true
}
