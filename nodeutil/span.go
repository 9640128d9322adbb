package nodeutil

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Span returns the source text covered by a run of sibling nodes, from the
// start of the first one to the end of the last one
func Span(nodes []*sitter.Node, source []byte) string {
	if len(nodes) == 0 {
		return ""
	}
	return string(source[nodes[0].StartByte():nodes[len(nodes)-1].EndByte()])
}

// SplitOnToken splits a list of siblings into groups separated by the given
// token. The separators themselves, as well as any comments, are dropped
func SplitOnToken(nodes []*sitter.Node, token string) [][]*sitter.Node {
	var groups [][]*sitter.Node
	var current []*sitter.Node
	for _, n := range nodes {
		switch {
		case !n.IsNamed() && n.Type() == token:
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
		case IsComment(n):
		default:
			current = append(current, n)
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// IsComment reports whether the node is one of the grammar's comment extras
func IsComment(node *sitter.Node) bool {
	switch node.Type() {
	case "comment", "line_comment", "multiline_comment":
		return true
	}
	return false
}

// FirstError finds the first syntax error or missing node in a tree, in
// source order, or returns nil if the tree is well-formed
func FirstError(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for _, c := range UnnamedChildren(node) {
		if bad := FirstError(c); bad != nil {
			return bad
		}
	}
	return node
}
