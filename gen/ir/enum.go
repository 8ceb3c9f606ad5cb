package ir

// EnumDescriptor represents one enum declaration from a .proto file.
type EnumDescriptor struct {
	// Name is the identifier the emitted declaration will use. Nested
	// enums arrive pre-flattened (e.g. "Job_Status"). May be empty for
	// malformed descriptors; emitters substitute a configured fallback.
	Name string

	// Values are the declared members in declaration order. Numbers may
	// repeat when the enum allows aliases.
	Values []EnumValue

	// Documentation for the enum type itself.
	Documentation Documentation
}

// EnumValue represents a single declared enum member.
type EnumValue struct {
	// Name is the member name as declared, e.g. "STATUS_ACTIVE".
	Name string

	// Number is the wire value.
	Number int32

	// Documentation is the member's leading comment.
	Documentation Documentation
}

// ValueByNumber returns the first declared value with the given number,
// in declaration order, or nil if none matches. Aliased numbers resolve
// to the first declaration.
func (d *EnumDescriptor) ValueByNumber(number int32) *EnumValue {
	for i := range d.Values {
		if d.Values[i].Number == number {
			return &d.Values[i]
		}
	}
	return nil
}

// EnumCatalog is the resolved, emission-ready member list for one enum:
// declaration order preserved, aliases dropped, shared prefix stripped,
// and a synthetic zero member inserted when the declaration had none.
type EnumCatalog []CatalogEntry

// CatalogEntry is one emission-ready (name, number) pair. The name may
// differ from the declared member name after prefix stripping, and a
// synthetic entry has no declared counterpart at all; consumers match
// entries back to declared values by number.
type CatalogEntry struct {
	Name   string
	Number int32
}
