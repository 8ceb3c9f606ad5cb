// Package typescript transforms IR descriptors into TypeScript source.
package typescript

import (
	"bytes"
	"strings"
)

// File accumulates top-level statements for one generated TypeScript
// file. Statements render in append order; callers that share a File
// across generators must serialize their Append calls.
type File struct {
	// Path is the output path relative to the sink root, e.g. "acme/v1/job.ts".
	Path string

	header string
	stmts  []*Statement
}

// NewFile creates an empty File for the given output path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// SetHeader sets the banner emitted as line comments at the top of the file.
func (f *File) SetHeader(text string) {
	f.header = text
}

// Append adds a top-level statement to the end of the file.
func (f *File) Append(s *Statement) {
	f.stmts = append(f.stmts, s)
}

// Len returns the number of appended statements.
func (f *File) Len() int {
	return len(f.stmts)
}

// Render produces the file contents.
func (f *File) Render() []byte {
	var buf bytes.Buffer

	if f.header != "" {
		for _, line := range strings.Split(f.header, "\n") {
			buf.WriteString("// ")
			buf.WriteString(line)
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}

	for i, s := range f.stmts {
		if i > 0 {
			buf.WriteString("\n")
		}
		if s.comment != "" {
			writeJSDoc(&buf, "", s.comment)
		}
		buf.WriteString(s.body)
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Statement is one top-level declaration plus its leading comment block.
type Statement struct {
	comment string
	body    string
}

// NewStatement creates a statement with the given rendered body and no
// leading comment.
func NewStatement(body string) *Statement {
	return &Statement{body: body}
}

// AppendLeadingComment appends text to the statement's leading comment
// block, preserving any comment already attached.
func (s *Statement) AppendLeadingComment(text string) {
	if text == "" {
		return
	}
	if s.comment == "" {
		s.comment = text
		return
	}
	s.comment += "\n\n" + text
}

// stringWriter is satisfied by both bytes.Buffer and strings.Builder.
type stringWriter interface {
	WriteString(s string) (int, error)
}

// writeJSDoc writes a JSDoc comment block. Single-line comments collapse
// to the /** ... */ short form.
func writeJSDoc(buf stringWriter, indent, text string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 {
		buf.WriteString(indent)
		buf.WriteString("/** ")
		buf.WriteString(strings.TrimSpace(lines[0]))
		buf.WriteString(" */\n")
		return
	}

	buf.WriteString(indent)
	buf.WriteString("/**\n")
	for _, line := range lines {
		buf.WriteString(indent)
		buf.WriteString(" *")
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			buf.WriteString(" ")
			buf.WriteString(trimmed)
		}
		buf.WriteString("\n")
	}
	buf.WriteString(indent)
	buf.WriteString(" */\n")
}
