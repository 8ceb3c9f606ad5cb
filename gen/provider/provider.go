// Package provider builds the IR schema from compiled protobuf
// descriptors. It is the only package that touches protoreflect; the
// emitter sees descriptors and catalogs, never the protobuf runtime.
package provider

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"protots/gen/ir"
)

// FromFiles builds the IR schema for the given compiled files. Nested
// declarations are flattened into top-level descriptors with
// underscore-joined names.
func FromFiles(files []protoreflect.FileDescriptor) *ir.Schema {
	s := &ir.Schema{}
	for _, fd := range files {
		s.Files = append(s.Files, fromFile(fd))
	}
	return s
}

func fromFile(fd protoreflect.FileDescriptor) *ir.FileSchema {
	fs := &ir.FileSchema{
		Path:    fd.Path(),
		Package: string(fd.Package()),
	}
	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		addEnum(fs, enums.Get(i))
	}
	messages := fd.Messages()
	for i := 0; i < messages.Len(); i++ {
		addMessage(fs, messages.Get(i))
	}
	return fs
}

func addEnum(fs *ir.FileSchema, ed protoreflect.EnumDescriptor) {
	desc := &ir.EnumDescriptor{
		Name:          flattenedName(ed),
		Documentation: docFor(ed),
	}
	values := ed.Values()
	for i := 0; i < values.Len(); i++ {
		vd := values.Get(i)
		doc := docFor(vd)
		if opts, ok := vd.Options().(*descriptorpb.EnumValueOptions); ok && opts.GetDeprecated() {
			doc.Deprecated = new(string)
		}
		desc.Values = append(desc.Values, ir.EnumValue{
			Name:          string(vd.Name()),
			Number:        int32(vd.Number()),
			Documentation: doc,
		})
	}
	fs.Enums = append(fs.Enums, desc)
}

func addMessage(fs *ir.FileSchema, md protoreflect.MessageDescriptor) {
	if md.IsMapEntry() {
		return
	}

	desc := &ir.MessageDescriptor{
		Name:          flattenedName(md),
		Documentation: docFor(md),
	}
	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		desc.Fields = append(desc.Fields, fieldDescriptor(fields.Get(i)))
	}
	fs.Messages = append(fs.Messages, desc)

	// Nested declarations flatten to the top level, after their parent.
	enums := md.Enums()
	for i := 0; i < enums.Len(); i++ {
		addEnum(fs, enums.Get(i))
	}
	nested := md.Messages()
	for i := 0; i < nested.Len(); i++ {
		addMessage(fs, nested.Get(i))
	}
}

func fieldDescriptor(fld protoreflect.FieldDescriptor) ir.FieldDescriptor {
	optional := fld.HasOptionalKeyword()
	if oneof := fld.ContainingOneof(); oneof != nil && !oneof.IsSynthetic() {
		optional = true
	}

	doc := docFor(fld)
	if opts, ok := fld.Options().(*descriptorpb.FieldOptions); ok && opts.GetDeprecated() {
		doc.Deprecated = new(string)
	}

	return ir.FieldDescriptor{
		Name:          string(fld.Name()),
		JSONName:      fld.JSONName(),
		Type:          typeRef(fld),
		Optional:      optional,
		Documentation: doc,
	}
}

func typeRef(fld protoreflect.FieldDescriptor) ir.TypeRef {
	if fld.IsMap() {
		return &ir.MapRef{
			Key:   singularTypeRef(fld.MapKey()),
			Value: singularTypeRef(fld.MapValue()),
		}
	}
	if fld.IsList() {
		return &ir.ListRef{Element: singularTypeRef(fld)}
	}
	return singularTypeRef(fld)
}

func singularTypeRef(fld protoreflect.FieldDescriptor) ir.TypeRef {
	switch fld.Kind() {
	case protoreflect.BoolKind:
		return ir.Scalar(ir.ScalarBool)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Uint32Kind,
		protoreflect.Sfixed32Kind, protoreflect.Fixed32Kind,
		protoreflect.FloatKind, protoreflect.DoubleKind:
		return ir.Scalar(ir.ScalarNumber)
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Uint64Kind,
		protoreflect.Sfixed64Kind, protoreflect.Fixed64Kind:
		return ir.Scalar(ir.ScalarBigInt)
	case protoreflect.StringKind:
		return ir.String()
	case protoreflect.BytesKind:
		return ir.Scalar(ir.ScalarBytes)
	case protoreflect.EnumKind:
		return &ir.NamedRef{Name: flattenedName(fld.Enum())}
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return &ir.NamedRef{Name: flattenedName(fld.Message())}
	default:
		return ir.String()
	}
}

// flattenedName returns the declaration identifier for a possibly
// nested descriptor: its full name relative to the file's package,
// with dots replaced by underscores ("Job.Status" becomes "Job_Status").
func flattenedName(d protoreflect.Descriptor) string {
	name := string(d.FullName())
	if pkg := string(d.ParentFile().Package()); pkg != "" {
		name = strings.TrimPrefix(name, pkg+".")
	}
	return strings.ReplaceAll(name, ".", "_")
}

// docFor extracts the leading comment block attached to a descriptor.
// Files compiled without source info yield empty documentation.
func docFor(d protoreflect.Descriptor) ir.Documentation {
	loc := d.ParentFile().SourceLocations().ByDescriptor(d)
	return ir.Documentation{Body: loc.LeadingComments}
}
