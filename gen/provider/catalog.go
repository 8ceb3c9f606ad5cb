package provider

import (
	"strings"
	"unicode"

	"protots/gen/ir"
)

// syntheticZeroBase is the preferred name for an inserted zero member.
const syntheticZeroBase = "UNSPECIFIED"

// ResolveCatalog resolves an enum descriptor to its emission-ready
// member list: declaration order preserved, aliased numbers collapsed
// to their first declaration, the shared enum-name prefix stripped, and
// a synthetic zero member prepended when the declaration has none.
func ResolveCatalog(desc *ir.EnumDescriptor) ir.EnumCatalog {
	catalog := make(ir.EnumCatalog, 0, len(desc.Values))
	seen := make(map[int32]bool, len(desc.Values))
	hasZero := false
	for _, v := range desc.Values {
		if seen[v.Number] {
			continue
		}
		seen[v.Number] = true
		if v.Number == 0 {
			hasZero = true
		}
		catalog = append(catalog, ir.CatalogEntry{Name: v.Name, Number: v.Number})
	}

	stripSharedPrefix(desc.Name, catalog)

	if !hasZero {
		zero := ir.CatalogEntry{Name: syntheticZeroName(catalog), Number: 0}
		catalog = append(ir.EnumCatalog{zero}, catalog...)
	}
	return catalog
}

// stripSharedPrefix removes the enum-name-derived prefix ("JobState"
// derives "JOB_STATE_") from every member, but only when all members
// carry it and every stripped remainder is still a valid member name.
// A nested enum flattens to "Parent_Leaf" while its members carry only
// the leaf's prefix, so the leaf name is tried when the full name does
// not match.
func stripSharedPrefix(enumName string, catalog ir.EnumCatalog) {
	if enumName == "" || len(catalog) == 0 {
		return
	}
	if stripPrefix(upperSnake(enumName)+"_", catalog) {
		return
	}
	if idx := strings.LastIndex(enumName, "_"); idx >= 0 && idx+1 < len(enumName) {
		stripPrefix(upperSnake(enumName[idx+1:])+"_", catalog)
	}
}

// stripPrefix removes prefix from every catalog entry, or from none
// when any entry lacks it or would be left invalid.
func stripPrefix(prefix string, catalog ir.EnumCatalog) bool {
	for _, entry := range catalog {
		rest := strings.TrimPrefix(entry.Name, prefix)
		if rest == entry.Name || !validMemberName(rest) {
			return false
		}
	}
	for i := range catalog {
		catalog[i].Name = strings.TrimPrefix(catalog[i].Name, prefix)
	}
	return true
}

// syntheticZeroName picks a zero-member name that does not collide with
// any existing catalog entry.
func syntheticZeroName(catalog ir.EnumCatalog) string {
	name := syntheticZeroBase
	for {
		collision := false
		for _, entry := range catalog {
			if entry.Name == name {
				collision = true
				break
			}
		}
		if !collision {
			return name
		}
		name += "_"
	}
}

// upperSnake converts an identifier to UPPER_SNAKE form, splitting at
// case boundaries: "JobState" becomes "JOB_STATE", "HTTPStatus"
// becomes "HTTP_STATUS".
func upperSnake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// validMemberName reports whether s can stand alone as a member
// identifier (letters, digits, underscore, no leading digit).
func validMemberName(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
