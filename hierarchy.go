package hierarchy

import "fmt"

// Output markers. Each dump is framed by StartMarker and EndMarker; every node
// line is Indent repeated depth times, then Branch, then the node name.
const (
	StartMarker = "--- Scene Hierarchy Start ---"
	EndMarker   = "--- Scene Hierarchy End ---"
	Indent      = "  "
	Branch      = "|-- "

	// TweenScriptSuffix is appended to a tween component's type name.
	TweenScriptSuffix = "-TweenScript"
)

// Graph is a rooted forest the printer can walk. Roots are visited in index
// order. Implementations must be acyclic and must not change during a walk.
type Graph interface {
	RootCount() int
	RootAt(index int) Object
}

// Object is a single named entry in a Graph.
type Object interface {
	Name() string
	ChildCount() int
	ChildAt(index int) Object
	Components() []Component
}

// ComponentKind distinguishes how a Component is described in a dump.
type ComponentKind uint8

const (
	ComponentGeneric ComponentKind = iota // described by its type name only
	ComponentTween                        // described with tween type and name
)

// String returns a short name for the kind.
func (k ComponentKind) String() string {
	switch k {
	case ComponentGeneric:
		return "generic"
	case ComponentTween:
		return "tween"
	default:
		return fmt.Sprintf("ComponentKind(%d)", uint8(k))
	}
}

// Component is a typed attachment on an Object. A single flat struct covers
// every kind; TweenType and TweenName are only meaningful for ComponentTween.
type Component struct {
	Kind      ComponentKind
	TypeName  string
	TweenType string
	TweenName string
}

// NewComponent returns a generic component of the given type.
func NewComponent(typeName string) Component {
	return Component{Kind: ComponentGeneric, TypeName: typeName}
}

// NewTweenComponent returns a tween component. Both tweenType and tweenName
// must be non-empty for the component to be describable.
func NewTweenComponent(typeName, tweenType, tweenName string) Component {
	return Component{
		Kind:      ComponentTween,
		TypeName:  typeName,
		TweenType: tweenType,
		TweenName: tweenName,
	}
}

// IsTween reports whether c is a tween component.
func (c Component) IsTween() bool {
	return c.Kind == ComponentTween
}

// Describe returns the text shown for c inside a node's component list.
// It fails with ErrMalformedComponent when the type name is empty, when a
// tween lacks its type or name, or when the kind is unknown.
func (c Component) Describe() (string, error) {
	if c.TypeName == "" {
		return "", fmt.Errorf("%w: empty type name", ErrMalformedComponent)
	}
	switch c.Kind {
	case ComponentGeneric:
		return c.TypeName, nil
	case ComponentTween:
		if c.TweenType == "" || c.TweenName == "" {
			return "", fmt.Errorf("%w: %s tween needs both type and name (type:%q, name:%q)",
				ErrMalformedComponent, c.TypeName, c.TweenType, c.TweenName)
		}
		return c.TypeName + TweenScriptSuffix +
			" (type:" + c.TweenType + ", name:" + c.TweenName + ")", nil
	default:
		return "", fmt.Errorf("%w: %s has unknown kind %v", ErrMalformedComponent, c.TypeName, c.Kind)
	}
}
