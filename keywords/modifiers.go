package keywords

// List from https://kotlinlang.org/docs/visibility-modifiers.html
var VisibilityModifiers = []string{"public", "private", "protected", "internal"}

const (
	// Public is the only visibility marker that keeps a declaration in the
	// rendered surface. A declaration without a visibility modifier is public
	Public = "public"

	Enum     = "enum"
	Abstract = "abstract"
	Override = "override"
)

// Declaration keywords that introduce a class-like node
const (
	Class     = "class"
	Interface = "interface"
	Object    = "object"
)
