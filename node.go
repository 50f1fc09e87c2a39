package hierarchy

// objectIDCounter is a plain counter (no atomic: scenes are single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// SceneObject is the in-memory scene graph element. It implements Object.
type SceneObject struct {
	// Identity
	ID      uint32
	name    string
	Enabled bool

	// Hierarchy
	parent   *SceneObject
	scene    *Scene
	children []*SceneObject

	// Attachments
	components []Component
	tweens     []*TweenScript

	// Metadata
	UserData any

	destroyed bool
}

// NewSceneObject creates a detached, enabled object.
func NewSceneObject(name string) *SceneObject {
	return &SceneObject{ID: nextObjectID(), name: name, Enabled: true}
}

// Name returns the object's name.
func (o *SceneObject) Name() string {
	return o.name
}

// SetName renames the object.
func (o *SceneObject) SetName(name string) {
	o.name = name
}

// Parent returns the parent object, or nil for roots and detached objects.
func (o *SceneObject) Parent() *SceneObject {
	return o.parent
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent or is a scene root, it is detached first.
// Panics if child is nil or child is an ancestor of this object (cycle).
func (o *SceneObject) AddChild(child *SceneObject) {
	if child == nil {
		panic("hierarchy: cannot add nil child")
	}
	if globalDebug {
		debugCheckDestroyed(o, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, o) {
		panic("hierarchy: adding child would create a cycle")
	}
	child.detach()
	child.parent = o
	o.children = append(o.children, child)
	if globalDebug {
		debugCheckNesting(child)
		debugCheckFanout(o)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (o *SceneObject) AddChildAt(child *SceneObject, index int) {
	if child == nil {
		panic("hierarchy: cannot add nil child")
	}
	if globalDebug {
		debugCheckDestroyed(o, "AddChildAt (parent)")
		debugCheckDestroyed(child, "AddChildAt (child)")
	}
	if isAncestor(child, o) {
		panic("hierarchy: adding child would create a cycle")
	}
	if index < 0 || index > len(o.children) {
		panic("hierarchy: child index out of range")
	}
	child.detach()
	if index > len(o.children) {
		// child was one of ours and the list shrank.
		index = len(o.children)
	}
	child.parent = o
	o.children = append(o.children, nil)
	copy(o.children[index+1:], o.children[index:])
	o.children[index] = child
	if globalDebug {
		debugCheckNesting(child)
		debugCheckFanout(o)
	}
}

// RemoveChild detaches child from this object.
// Panics if child.Parent() != o.
func (o *SceneObject) RemoveChild(child *SceneObject) {
	if globalDebug {
		debugCheckDestroyed(o, "RemoveChild (parent)")
		debugCheckDestroyed(child, "RemoveChild (child)")
	}
	if child.parent != o {
		panic("hierarchy: child's parent is not this object")
	}
	o.removeChildByPtr(child)
	child.parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (o *SceneObject) RemoveChildAt(index int) *SceneObject {
	if globalDebug {
		debugCheckDestroyed(o, "RemoveChildAt")
	}
	if index < 0 || index >= len(o.children) {
		panic("hierarchy: child index out of range")
	}
	child := o.children[index]
	copy(o.children[index:], o.children[index+1:])
	o.children[len(o.children)-1] = nil
	o.children = o.children[:len(o.children)-1]
	child.parent = nil
	return child
}

// RemoveFromParent detaches this object from its parent or, for a root, from
// its scene. No-op if the object is already detached.
func (o *SceneObject) RemoveFromParent() {
	o.detach()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (o *SceneObject) Children() []*SceneObject {
	return o.children
}

// ChildCount returns the number of children.
func (o *SceneObject) ChildCount() int {
	return len(o.children)
}

// ChildAt returns the child at the given index as an Object.
func (o *SceneObject) ChildAt(index int) Object {
	return o.children[index]
}

// Child returns the concrete child at the given index.
func (o *SceneObject) Child(index int) *SceneObject {
	return o.children[index]
}

// --- Components ---

// AddComponent attaches c after any existing components.
func (o *SceneObject) AddComponent(c Component) {
	if globalDebug {
		debugCheckDestroyed(o, "AddComponent")
	}
	o.components = append(o.components, c)
}

// AddTween attaches a tween script and its ScriptComponent descriptor.
func (o *SceneObject) AddTween(t *TweenScript) {
	if t == nil {
		panic("hierarchy: cannot add nil tween")
	}
	o.AddComponent(t.Component())
	o.tweens = append(o.tweens, t)
}

// Components returns the attached components in attach order. The returned
// slice MUST NOT be mutated by the caller.
func (o *SceneObject) Components() []Component {
	return o.components
}

// Tweens returns the attached tween scripts. The returned slice MUST NOT be
// mutated by the caller.
func (o *SceneObject) Tweens() []*TweenScript {
	return o.tweens
}

// Find returns the first descendant (pre-order, excluding o) with the given
// name, or nil.
func (o *SceneObject) Find(name string) *SceneObject {
	for _, c := range o.children {
		if c.name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Destruction ---

// Destroy detaches this object, marks it destroyed, and recursively destroys
// all descendants.
func (o *SceneObject) Destroy() {
	if o.destroyed {
		return
	}
	o.detach()
	o.destroy()
}

func (o *SceneObject) destroy() {
	o.destroyed = true
	o.ID = 0
	for _, child := range o.children {
		child.parent = nil
		child.destroy()
	}
	o.children = nil
	o.components = nil
	o.tweens = nil
	o.UserData = nil
}

// IsDestroyed returns true if this object has been destroyed.
func (o *SceneObject) IsDestroyed() bool {
	return o.destroyed
}

// --- Helpers ---

// detach removes o from its parent's children or its scene's roots.
func (o *SceneObject) detach() {
	if o.parent != nil {
		o.parent.removeChildByPtr(o)
		o.parent = nil
	}
	if o.scene != nil {
		o.scene.removeRootByPtr(o)
		o.scene = nil
	}
}

// isAncestor reports whether candidate is obj or one of its ancestors.
func isAncestor(candidate, obj *SceneObject) bool {
	for p := obj; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from o.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (o *SceneObject) removeChildByPtr(child *SceneObject) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			return
		}
	}
}
