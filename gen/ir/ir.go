// Package ir defines the intermediate representation for protobuf
// descriptors. These types are a language-agnostic view of a compiled
// .proto file that the emitter transforms into TypeScript source.
package ir

// Documentation holds comment text extracted from .proto source.
type Documentation struct {
	// Body is the leading comment block attached to a declaration,
	// verbatim as the compiler reported it. Empty when the source
	// carried no comment (or was compiled without source info).
	Body string

	// Deprecated is non-nil if the declaration carries the deprecated
	// option. The string value is always empty for proto sources; it
	// exists so emitters can attach @deprecated annotations.
	Deprecated *string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Body == "" && d.Deprecated == nil
}

// Schema is the full set of files selected for generation.
type Schema struct {
	Files []*FileSchema
}

// FileSchema describes one .proto file's generatable contents.
// Nested declarations are flattened: an enum Status inside message Job
// appears here with Name "Job_Status".
type FileSchema struct {
	// Path is the .proto path as given to the compiler, e.g. "acme/v1/job.proto".
	Path string

	// Package is the proto package, e.g. "acme.v1".
	Package string

	// Documentation is the file-level comment, if any.
	Documentation Documentation

	Enums    []*EnumDescriptor
	Messages []*MessageDescriptor
}
