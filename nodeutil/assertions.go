package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node.Type() != expectedType {
		panic(fmt.Sprintf("assertion failed: Type of node differs from expected: %s, got: %s", expectedType, node.Type()))
	}
}

// MustChildOfType returns the first named child of the given type, and panics
// if the node does not have one
func MustChildOfType(node *sitter.Node, childType string) *sitter.Node {
	if child := ChildOfType(node, childType); child != nil {
		return child
	}
	panic(fmt.Sprintf("assertion failed: %s has no child of type %s", node.Type(), childType))
}
