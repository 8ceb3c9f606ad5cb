package ir

// MessageDescriptor represents one message declaration.
type MessageDescriptor struct {
	// Name is the identifier the emitted interface will use. Nested
	// messages arrive pre-flattened (e.g. "Job_Spec").
	Name string

	// Fields in declaration order. Map entry and group pseudo-messages
	// never appear as fields here.
	Fields []FieldDescriptor

	// Documentation for the message type.
	Documentation Documentation
}

// FieldDescriptor represents a single message field.
type FieldDescriptor struct {
	// Name is the field name as declared, e.g. "created_at".
	Name string

	// JSONName is the canonical JSON name, e.g. "createdAt".
	JSONName string

	// Type is the field's TypeScript-facing type.
	Type TypeRef

	// Optional is true for proto3 optional fields and oneof members.
	Optional bool

	// Documentation is the field's leading comment.
	Documentation Documentation
}
