package typescript

import (
	"fmt"
	"strings"

	"protots/gen/ir"
)

// EmitMessage appends an exported interface declaration for desc to f.
// Fields follow declaration order and use their canonical JSON names.
func (e *Emitter) EmitMessage(f *File, desc *ir.MessageDescriptor) {
	var b strings.Builder
	b.WriteString("export interface ")
	b.WriteString(escapeReserved(desc.Name))
	b.WriteString(" {\n")

	for _, field := range desc.Fields {
		if e.config.EmitComments && !field.Documentation.IsZero() {
			writeJSDoc(&b, e.config.Indent, field.Documentation.Body)
		}

		name := field.JSONName
		if name == "" {
			name = field.Name
		}
		b.WriteString(e.config.Indent)
		if needsQuoting(name) {
			fmt.Fprintf(&b, "%q", name)
		} else {
			b.WriteString(name)
		}
		if field.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(e.typeExpr(field.Type))
		b.WriteString(";\n")
	}

	b.WriteString("}")
	stmt := NewStatement(b.String())
	f.Append(stmt)
	if e.config.EmitComments {
		stmt.AppendLeadingComment(desc.Documentation.Body)
	}
}
