package typescript

import (
	"strings"
	"unicode"
)

// Humanize derives a display label from a symbolic member name.
// The name is lower-cased, the first letter of every underscore- or
// space-separated run is capitalized, and underscores become spaces:
// "READY_TO_START" yields "Ready To Start". The transform is total;
// an empty input yields an empty output.
func Humanize(name string) string {
	runes := []rune(strings.ToLower(name))
	for i, r := range runes {
		if i == 0 || runes[i-1] == '_' || runes[i-1] == ' ' {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return strings.ReplaceAll(string(runes), "_", " ")
}
