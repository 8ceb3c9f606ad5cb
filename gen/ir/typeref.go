package ir

// TypeKind identifies the category of a type reference.
type TypeKind int

const (
	KindScalar TypeKind = iota // Built-in scalar type
	KindNamed                  // Reference to a message or enum
	KindList                   // Repeated field element type
	KindMap                    // Map field
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindNamed:
		return "Named"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// TypeRef is the base interface for field type references.
type TypeRef interface {
	// Kind returns the reference kind for type switching.
	Kind() TypeKind

	// Ensure only types in this package can implement TypeRef.
	sealed()
}

// ScalarKind identifies a protobuf scalar type family, already collapsed
// to the distinctions that matter for TypeScript emission.
type ScalarKind int

const (
	ScalarBool   ScalarKind = iota
	ScalarNumber            // int32, uint32, float, double, and friends
	ScalarBigInt            // int64, uint64 (exceed Number.MAX_SAFE_INTEGER)
	ScalarString
	ScalarBytes // base64 string on the wire
)

// ScalarRef references a built-in scalar type.
type ScalarRef struct {
	Scalar ScalarKind
}

// Kind returns KindScalar.
func (*ScalarRef) Kind() TypeKind { return KindScalar }

func (*ScalarRef) sealed() {}

// NamedRef references a message or enum by its flattened identifier.
type NamedRef struct {
	// Name is the flattened identifier, e.g. "Job_Status".
	Name string
}

// Kind returns KindNamed.
func (*NamedRef) Kind() TypeKind { return KindNamed }

func (*NamedRef) sealed() {}

// ListRef references a repeated field's element type.
type ListRef struct {
	Element TypeRef
}

// Kind returns KindList.
func (*ListRef) Kind() TypeKind { return KindList }

func (*ListRef) sealed() {}

// MapRef references a map field's key and value types.
type MapRef struct {
	Key   TypeRef
	Value TypeRef
}

// Kind returns KindMap.
func (*MapRef) Kind() TypeKind { return KindMap }

func (*MapRef) sealed() {}

// Scalar is a convenience constructor for ScalarRef.
func Scalar(k ScalarKind) *ScalarRef { return &ScalarRef{Scalar: k} }

// String returns a ScalarRef for the string type.
func String() *ScalarRef { return Scalar(ScalarString) }
