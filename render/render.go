// Package render prints the public surface of a declaration tree as simplified
// Kotlin source, with function bodies elided
package render

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/ktsurface/decl"
	"github.com/NickyBoy89/ktsurface/keywords"
)

// Indent returns the prefix for a declaration nested n levels deep
func Indent(n int) string {
	return strings.Repeat("\t", n)
}

// Render renders a single declaration at the given depth, without a terminator.
// A declaration that is not public renders as the empty string
func Render(node decl.Node, indent int) string {
	return RenderTerminated(node, indent, "")
}

// RenderTerminated is Render, with `end` appended after the declaration's
// closing line. Nothing is appended when the declaration is skipped
func RenderTerminated(node decl.Node, indent int, end string) string {
	var b strings.Builder
	writeNode(&b, node, indent, end)
	return b.String()
}

// File renders every top-level declaration of a file, one after another
func File(file *decl.File) string {
	var b strings.Builder
	for _, d := range file.Declarations {
		writeNode(&b, d, 0, "\n")
	}
	return b.String()
}

// CountPublic counts the top-level declarations of a file that pass the
// visibility gate
func CountPublic(file *decl.File) int {
	var count int
	for _, d := range file.Declarations {
		if g, ok := d.(decl.Gated); ok && g.IsPublic() {
			count++
		}
	}
	return count
}

func writeNode(b *strings.Builder, node decl.Node, indent int, end string) {
	switch n := node.(type) {
	case *decl.Class:
		writeClass(b, n, indent, end)
	case *decl.Companion:
		writeCompanion(b, n, indent, end)
	case *decl.ClassBody:
		writeBody(b, n, indent)
	case *decl.Function:
		writeFunction(b, n, indent, end)
	case *decl.Property:
		if !n.IsPublic() {
			return
		}
		b.WriteString(Indent(indent))
		b.WriteString(n.Text)
		b.WriteString(end)
	case *decl.EnumEntry:
		b.WriteString(Indent(indent))
		b.WriteString(n.Text)
	default:
		panic(fmt.Sprintf("render: unknown declaration node %T", node))
	}
}

func writeClass(b *strings.Builder, class *decl.Class, indent int, end string) {
	// A hidden class hides everything declared inside of it
	if !class.IsPublic() {
		return
	}

	b.WriteString(Indent(indent))
	if class.Enum {
		b.WriteString(keywords.Enum + " ")
	}
	if class.Abstract {
		b.WriteString(keywords.Abstract + " ")
	}
	b.WriteString(class.Keyword)
	b.WriteString(" ")
	b.WriteString(class.Name)
	b.WriteString(class.Constructor)
	if len(class.Supertypes) > 0 {
		b.WriteString(" : ")
		b.WriteString(strings.Join(class.Supertypes, ", "))
	}
	b.WriteString(" {\n")

	for _, companion := range class.Companions {
		writeCompanion(b, companion, indent+1, "\n")
	}
	if class.Body != nil {
		writeBody(b, class.Body, indent+1)
	}

	b.WriteString(Indent(indent))
	b.WriteString("}")
	b.WriteString(end)
}

// Companions are not visibility-gated
func writeCompanion(b *strings.Builder, companion *decl.Companion, indent int, end string) {
	b.WriteString(Indent(indent))
	b.WriteString("companion object ")
	b.WriteString(companion.Name)
	b.WriteString(" {\n")
	if companion.Body != nil {
		writeBody(b, companion.Body, indent+1)
	}
	b.WriteString(Indent(indent))
	b.WriteString("}")
	b.WriteString(end)
}

// writeBody renders the members of a body at the body's own depth. The body
// does not add any lines of its own
func writeBody(b *strings.Builder, body *decl.ClassBody, indent int) {
	for _, member := range body.Members {
		if _, entry := member.(*decl.EnumEntry); entry {
			writeNode(b, member, indent, "")
			b.WriteString("\n")
			continue
		}
		writeNode(b, member, indent, "\n")
	}
}

func writeFunction(b *strings.Builder, fun *decl.Function, indent int, end string) {
	if !fun.IsPublic() {
		return
	}

	b.WriteString(Indent(indent))
	if fun.Override {
		b.WriteString(keywords.Override + " ")
	}
	b.WriteString("fun ")
	b.WriteString(fun.Name)
	b.WriteString("(")
	b.WriteString(strings.Join(fun.Parameters, ", "))
	b.WriteString(")")
	if fun.ReturnType != "" {
		b.WriteString(": ")
		b.WriteString(fun.ReturnType)
	}
	// Block bodies are never printed
	if fun.Body.Kind == decl.ExpressionBody {
		b.WriteString(" = ")
		b.WriteString(fun.Body.Expression)
	}
	b.WriteString(end)
}
