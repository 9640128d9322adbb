package nodeutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Children returns all the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}

// UnnamedChildren returns every child of a node, including the anonymous
// keyword and punctuation tokens
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.Child(i)
	}
	return children
}

// ChildOfType returns the first named child with the given type, or nil
func ChildOfType(node *sitter.Node, childType string) *sitter.Node {
	for _, c := range Children(node) {
		if c.Type() == childType {
			return c
		}
	}
	return nil
}

// HasToken reports whether the node has a direct child token of the given type,
// for example the `interface` keyword of a class declaration
func HasToken(node *sitter.Node, token string) bool {
	for _, c := range UnnamedChildren(node) {
		if c.Type() == token {
			return true
		}
	}
	return false
}
