// Package decl holds the read-only declaration nodes that the renderer walks.
//
// Every node kind is its own struct, and the set of kinds is closed: only the
// types in this package implement Node.
package decl

import "github.com/NickyBoy89/ktsurface/keywords"

// Node is any declaration that can appear in the rendered surface
type Node interface {
	declNode()
}

// File is the list of top-level declarations of a single source file
type File struct {
	// The name the source was parsed under, usually its absolute path
	Name         string
	Declarations []Node
}

// Class represents a class, interface, enum class, or object declaration
type Class struct {
	Name string
	// The declaration keyword: `class`, `interface`, or `object`
	Keyword    string
	Visibility string
	Enum       bool
	Abstract   bool
	// Raw text of the primary constructor, including the parentheses
	Constructor string
	// Raw text of every supertype reference, in order
	Supertypes []string
	// Companion objects are lifted out of the body, since they are rendered
	// before any other member
	Companions []*Companion
	// The class body, nil if the class has none
	Body *ClassBody
}

// Companion is a `companion object` attached to a class
type Companion struct {
	// Empty for an unnamed companion
	Name string
	Body *ClassBody
}

// ClassBody is the ordered list of member declarations of a class or companion
type ClassBody struct {
	Members []Node
}

// Function represents a function declaration, at the top level or as a member
type Function struct {
	Name       string
	Visibility string
	Override   bool
	// Raw text of every parameter, in order
	Parameters []string
	// Raw text of the declared return type, empty if the type is inferred
	ReturnType string
	Body       FunctionBody
}

// BodyKind describes which of the two function body forms a function uses
type BodyKind int

const (
	// NoBody is used for abstract and interface functions
	NoBody BodyKind = iota
	BlockBody
	ExpressionBody
)

// FunctionBody is the body of a function. Only an expression body carries text
type FunctionBody struct {
	Kind       BodyKind
	Expression string
}

// Property is rendered from its raw source text, accessors included
type Property struct {
	Visibility string
	Text       string
}

// EnumEntry is a single entry of an enum class
type EnumEntry struct {
	Text string
}

func (*Class) declNode()     {}
func (*Companion) declNode() {}
func (*ClassBody) declNode() {}
func (*Function) declNode()  {}
func (*Property) declNode()  {}
func (*EnumEntry) declNode() {}

// Public reports whether a visibility modifier keeps a declaration visible.
// No modifier at all means the declaration is public
func Public(visibility string) bool {
	return visibility == "" || visibility == keywords.Public
}

func (c *Class) IsPublic() bool    { return Public(c.Visibility) }
func (f *Function) IsPublic() bool { return Public(f.Visibility) }
func (p *Property) IsPublic() bool { return Public(p.Visibility) }

// Gated is implemented by the node kinds that pass through the visibility gate
type Gated interface {
	Node
	IsPublic() bool
}
