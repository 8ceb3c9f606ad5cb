package typescript

import (
	"fmt"
	"strings"

	"protots/gen/ir"
	"protots/internal/directive"
)

// syntheticZeroComment is attached to catalog entries that match no
// declared member: the zero value the resolver inserted because the
// emitted enum requires one.
const syntheticZeroComment = "Generated value. The source enum declares no zero member, and the emitted enum requires one."

// translationSuffix names the lookup table emitted next to an enum.
const translationSuffix = "Translation"

// EnumMember is one (name, number, comment) triple ready for declaration.
type EnumMember struct {
	Name    string
	Number  int32
	Comment string
}

// EmitEnum appends the enum declaration for desc to f.
//
// Members follow catalog order. Each member carries the leading comment
// of the declared value with the same number (first declaration-order
// match), or the synthetic-zero notice when no declared value matches.
// The enum's own comment is appended to the declaration's leading block
// after it is built.
func (e *Emitter) EmitEnum(f *File, desc *ir.EnumDescriptor, catalog ir.EnumCatalog) {
	members := make([]EnumMember, 0, len(catalog))
	for _, entry := range catalog {
		comment := syntheticZeroComment
		if v := desc.ValueByNumber(entry.Number); v != nil {
			comment = v.Documentation.Body
		}
		members = append(members, EnumMember{
			Name:    entry.Name,
			Number:  entry.Number,
			Comment: comment,
		})
	}

	decl := e.EnumDeclaration(e.declaredName(desc), members)
	f.Append(decl)
	if e.config.EmitComments {
		decl.AppendLeadingComment(desc.Documentation.Body)
	}
}

// EnumDeclaration renders an exported enum declaration from an ordered
// member list.
func (e *Emitter) EnumDeclaration(name string, members []EnumMember) *Statement {
	var b strings.Builder
	b.WriteString("export ")
	if e.config.ConstEnum {
		b.WriteString("const ")
	}
	b.WriteString("enum ")
	b.WriteString(escapeReserved(name))
	b.WriteString(" {\n")

	for _, m := range members {
		if e.config.EmitComments && m.Comment != "" {
			writeJSDoc(&b, e.config.Indent, m.Comment)
		}
		// Member names are property names; reserved words are legal
		// there and must stay verbatim so table references resolve.
		fmt.Fprintf(&b, "%s%s = %d,\n", e.config.Indent, m.Name, m.Number)
	}

	b.WriteString("}")
	return NewStatement(b.String())
}

// EmitTranslationTable appends the display-name lookup table for desc
// to f. The table holds one {id, name} entry per catalog member, in
// catalog order. The name is the member's humanized symbolic name
// unless the matching declared value's comment carries a Translate
// directive, in which case the directive token is used verbatim.
func (e *Emitter) EmitTranslationTable(f *File, desc *ir.EnumDescriptor, catalog ir.EnumCatalog) {
	enumName := escapeReserved(e.declaredName(desc))

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s%s = [\n", enumName, translationSuffix)
	for _, entry := range catalog {
		label := Humanize(entry.Name)
		if v := desc.ValueByNumber(entry.Number); v != nil {
			if override, ok := directive.Translation(v.Documentation.Body); ok {
				label = override
			}
		}
		fmt.Fprintf(&b, "%s{ id: %s.%s, name: %q },\n", e.config.Indent, enumName, entry.Name, label)
	}
	b.WriteString("] as const;")

	f.Append(NewStatement(b.String()))
}
