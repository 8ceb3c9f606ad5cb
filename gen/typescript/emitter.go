package typescript

import (
	"fmt"
	"strings"

	"protots/gen/ir"
)

// Config controls TypeScript emission.
type Config struct {
	// ConstEnum emits `const enum` declarations instead of `enum`.
	ConstEnum bool

	// EmitComments carries .proto doc comments into the output.
	EmitComments bool

	// TranslationTables emits a `<Name>Translation` lookup table
	// alongside each enum declaration.
	TranslationTables bool

	// AnonymousEnumName is the identifier substituted for enums whose
	// descriptor carries no name.
	AnonymousEnumName string

	// Indent is the indentation unit. Defaults to two spaces.
	Indent string

	// Header is the banner comment for each generated file.
	Header string
}

// CatalogResolver resolves a descriptor to its emission-ready member
// list. The resolver guarantees a non-empty catalog in declaration
// order, with aliases dropped and a zero member present.
type CatalogResolver func(*ir.EnumDescriptor) ir.EnumCatalog

// Emitter generates TypeScript declarations from IR descriptors.
type Emitter struct {
	config  Config
	resolve CatalogResolver
}

// NewEmitter creates an Emitter with the given configuration and
// catalog resolver.
func NewEmitter(cfg Config, resolve CatalogResolver) *Emitter {
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	if cfg.AnonymousEnumName == "" {
		cfg.AnonymousEnumName = "UnnamedEnum"
	}
	return &Emitter{config: cfg, resolve: resolve}
}

// EmitFile generates the full output file for one file schema: every
// enum (declaration first, then its translation table when enabled),
// then every message interface.
func (e *Emitter) EmitFile(fs *ir.FileSchema) *File {
	f := NewFile(OutputPath(fs.Path))
	header := e.config.Header
	if header == "" {
		header = "Code generated by protots from " + fs.Path + ". DO NOT EDIT."
	}
	f.SetHeader(header)

	for _, enum := range fs.Enums {
		catalog := e.resolve(enum)
		e.EmitEnum(f, enum, catalog)
		if e.config.TranslationTables {
			e.EmitTranslationTable(f, enum, catalog)
		}
	}
	for _, msg := range fs.Messages {
		e.EmitMessage(f, msg)
	}
	return f
}

// OutputPath maps a .proto path to its generated TypeScript path.
func OutputPath(protoPath string) string {
	return strings.TrimSuffix(protoPath, ".proto") + ".ts"
}

// declaredName returns the identifier to declare for an enum,
// substituting the configured fallback when the descriptor has no name.
func (e *Emitter) declaredName(desc *ir.EnumDescriptor) string {
	if desc.Name == "" {
		return e.config.AnonymousEnumName
	}
	return desc.Name
}

// typeExpr renders a field type reference.
func (e *Emitter) typeExpr(t ir.TypeRef) string {
	switch t := t.(type) {
	case *ir.ScalarRef:
		return scalarType(t.Scalar)
	case *ir.NamedRef:
		return escapeReserved(t.Name)
	case *ir.ListRef:
		return e.typeExpr(t.Element) + "[]"
	case *ir.MapRef:
		// Map keys always serialize to strings in JSON.
		return fmt.Sprintf("Record<string, %s>", e.typeExpr(t.Value))
	default:
		return "unknown"
	}
}

func scalarType(k ir.ScalarKind) string {
	switch k {
	case ir.ScalarBool:
		return "boolean"
	case ir.ScalarNumber:
		return "number"
	case ir.ScalarBigInt:
		return "bigint"
	case ir.ScalarString:
		return "string"
	case ir.ScalarBytes:
		return "string" // base64
	default:
		return "unknown"
	}
}
