package parsing

import (
	"github.com/NickyBoy89/ktsurface/decl"
	"github.com/NickyBoy89/ktsurface/keywords"
	"github.com/NickyBoy89/ktsurface/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// ExtractDeclarations collects the top-level classes, functions, and
// properties of a `source_file` node, in source order
func ExtractDeclarations(root *sitter.Node, source []byte, name string) *decl.File {
	nodeutil.AssertTypeIs(root, "source_file")

	file := &decl.File{Name: name}
	for _, c := range nodeutil.Children(root) {
		switch c.Type() {
		case "class_declaration", "object_declaration":
			file.Declarations = append(file.Declarations, parseClass(c, source))
		case "function_declaration":
			file.Declarations = append(file.Declarations, parseFunction(c, source))
		case "property_declaration":
			file.Declarations = append(file.Declarations, parseProperty(c, source))
		// Already part of the property declared before them
		case "getter", "setter":
		case "package_header", "import_list", "import_header", "shebang_line", "file_annotation":
		default:
			if !nodeutil.IsComment(c) {
				log.WithFields(log.Fields{
					"file": name,
					"type": c.Type(),
				}).Debug("Skipping top-level node")
			}
		}
	}
	return file
}

type modifiers struct {
	visibility string
	enum       bool
	abstract   bool
	override   bool
}

func parseModifiers(node *sitter.Node, source []byte) modifiers {
	var mods modifiers

	modifierList := nodeutil.ChildOfType(node, "modifiers")
	if modifierList == nil {
		return mods
	}

	for _, modifier := range nodeutil.Children(modifierList) {
		switch modifier.Type() {
		case "annotation":
		case "visibility_modifier":
			mods.visibility = modifier.Content(source)
		default:
			switch modifier.Content(source) {
			case keywords.Enum:
				mods.enum = true
			case keywords.Abstract:
				mods.abstract = true
			case keywords.Override:
				mods.override = true
			}
		}
	}
	return mods
}

// parseClass handles both classes (including interfaces and enums), and
// singleton `object` declarations
func parseClass(node *sitter.Node, source []byte) *decl.Class {
	mods := parseModifiers(node, source)

	class := &decl.Class{
		Name:       nodeutil.MustChildOfType(node, "type_identifier").Content(source),
		Keyword:    keywords.Class,
		Visibility: mods.visibility,
		Enum:       mods.enum,
		Abstract:   mods.abstract,
	}

	switch {
	case node.Type() == "object_declaration":
		class.Keyword = keywords.Object
	case nodeutil.HasToken(node, keywords.Interface):
		class.Keyword = keywords.Interface
	}

	for _, c := range nodeutil.Children(node) {
		switch c.Type() {
		case "primary_constructor":
			class.Constructor = constructorParameters(c, source)
		case "delegation_specifier":
			class.Supertypes = append(class.Supertypes, c.Content(source))
		case "delegation_specifiers":
			for _, spec := range nodeutil.Children(c) {
				class.Supertypes = append(class.Supertypes, spec.Content(source))
			}
		case "enum_class_body":
			class.Enum = true
			class.Body, class.Companions = parseBody(c, source)
		case "class_body":
			class.Body, class.Companions = parseBody(c, source)
		}
	}

	return class
}

// constructorParameters returns the parenthesized parameter list of a primary
// constructor, without any `constructor` keyword or modifiers before it
func constructorParameters(node *sitter.Node, source []byte) string {
	if params := nodeutil.ChildOfType(node, "class_parameters"); params != nil {
		return params.Content(source)
	}
	children := nodeutil.UnnamedChildren(node)
	for ind, c := range children {
		if c.Type() == "(" {
			return nodeutil.Span(children[ind:], source)
		}
	}
	return ""
}

// parseBody splits the members of a class body from its companion objects
func parseBody(node *sitter.Node, source []byte) (*decl.ClassBody, []*decl.Companion) {
	body := &decl.ClassBody{}
	var companions []*decl.Companion

	for _, c := range nodeutil.Children(node) {
		switch c.Type() {
		case "companion_object":
			companions = append(companions, parseCompanion(c, source))
		case "enum_entry":
			body.Members = append(body.Members, &decl.EnumEntry{Text: c.Content(source)})
		case "class_declaration", "object_declaration":
			body.Members = append(body.Members, parseClass(c, source))
		case "function_declaration":
			body.Members = append(body.Members, parseFunction(c, source))
		case "property_declaration":
			body.Members = append(body.Members, parseProperty(c, source))
		case "getter", "setter":
		default:
			if !nodeutil.IsComment(c) {
				log.WithField("type", c.Type()).Debug("Skipping class member")
			}
		}
	}

	return body, companions
}

func parseCompanion(node *sitter.Node, source []byte) *decl.Companion {
	companion := &decl.Companion{}
	if name := nodeutil.ChildOfType(node, "type_identifier"); name != nil {
		companion.Name = name.Content(source)
	}
	if body := nodeutil.ChildOfType(node, "class_body"); body != nil {
		// A companion object cannot declare a companion of its own
		companion.Body, _ = parseBody(body, source)
	}
	return companion
}

func parseFunction(node *sitter.Node, source []byte) *decl.Function {
	mods := parseModifiers(node, source)

	params := nodeutil.MustChildOfType(node, "function_value_parameters")

	fun := &decl.Function{
		// The receiver of an extension function is a type, so the only
		// `simple_identifier` directly under the declaration is its name
		Name:       nodeutil.MustChildOfType(node, "simple_identifier").Content(source),
		Visibility: mods.visibility,
		Override:   mods.override,
		Parameters: parameters(params, source),
		ReturnType: returnType(node, source),
	}

	if body := nodeutil.ChildOfType(node, "function_body"); body != nil {
		fun.Body = parseFunctionBody(body, source)
	}

	return fun
}

// parameters returns the raw text of every parameter, which includes its
// modifiers and default value
func parameters(node *sitter.Node, source []byte) []string {
	children := nodeutil.UnnamedChildren(node)
	// Strip off the surrounding parentheses
	if len(children) >= 2 {
		children = children[1 : len(children)-1]
	}

	var params []string
	for _, group := range nodeutil.SplitOnToken(children, ",") {
		params = append(params, nodeutil.Span(group, source))
	}
	return params
}

// returnType finds the type that follows the `:` after the parameter list
func returnType(node *sitter.Node, source []byte) string {
	var typeNodes []*sitter.Node
	var seenParams, inType bool

	for _, c := range nodeutil.UnnamedChildren(node) {
		switch c.Type() {
		case "function_value_parameters":
			seenParams = true
		case ":":
			inType = seenParams && len(typeNodes) == 0
		case "type_constraints", "function_body":
			inType = false
		default:
			if inType && !nodeutil.IsComment(c) {
				typeNodes = append(typeNodes, c)
			}
		}
	}

	return nodeutil.Span(typeNodes, source)
}

func parseFunctionBody(node *sitter.Node, source []byte) decl.FunctionBody {
	children := nodeutil.UnnamedChildren(node)
	if len(children) == 0 || children[0].Type() != "=" {
		return decl.FunctionBody{Kind: decl.BlockBody}
	}

	var expr []*sitter.Node
	for _, c := range children[1:] {
		if !nodeutil.IsComment(c) {
			expr = append(expr, c)
		}
	}
	return decl.FunctionBody{Kind: decl.ExpressionBody, Expression: nodeutil.Span(expr, source)}
}

// parseProperty takes the text of the property along with its accessors. The
// grammar places a getter or setter next to the declaration, not inside it
func parseProperty(node *sitter.Node, source []byte) *decl.Property {
	nodes := []*sitter.Node{node}
	for sibling := node.NextNamedSibling(); sibling != nil; sibling = sibling.NextNamedSibling() {
		if nodeutil.IsComment(sibling) {
			continue
		}
		if sibling.Type() != "getter" && sibling.Type() != "setter" {
			break
		}
		nodes = append(nodes, sibling)
	}

	return &decl.Property{
		Visibility: parseModifiers(node, source).visibility,
		Text:       nodeutil.Span(nodes, source),
	}
}
