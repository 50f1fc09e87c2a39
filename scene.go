package hierarchy

import (
	"errors"
	"io"
	"os"
)

// Scene owns an ordered list of root objects and the start handlers the host
// fires once per session. It implements Graph.
type Scene struct {
	roots []*SceneObject
	debug bool

	startHandlers []func() error
	started       bool

	// Diagnostics receives debug warnings. Defaults to os.Stderr.
	Diagnostics io.Writer
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{Diagnostics: os.Stderr}
}

// CreateObject creates a new object and appends it as the last root.
func (s *Scene) CreateObject(name string) *SceneObject {
	o := NewSceneObject(name)
	s.AddRoot(o)
	return o
}

// AddRoot appends o to the root list, detaching it from any parent or other
// scene first. Panics if o is nil.
func (s *Scene) AddRoot(o *SceneObject) {
	if o == nil {
		panic("hierarchy: cannot add nil root")
	}
	if globalDebug {
		debugCheckDestroyed(o, "AddRoot")
	}
	o.detach()
	o.scene = s
	s.roots = append(s.roots, o)
}

// RemoveRoot detaches o from the root list.
// Panics if o is not a root of this scene.
func (s *Scene) RemoveRoot(o *SceneObject) {
	if o.scene != s {
		panic("hierarchy: object is not a root of this scene")
	}
	s.removeRootByPtr(o)
	o.scene = nil
}

// RootCount returns the number of root objects.
func (s *Scene) RootCount() int {
	return len(s.roots)
}

// RootAt returns the root at the given index as an Object.
func (s *Scene) RootAt(index int) Object {
	return s.roots[index]
}

// Roots returns the root list. The returned slice MUST NOT be mutated.
func (s *Scene) Roots() []*SceneObject {
	return s.roots
}

// Find returns the first object with the given name, searching each root and
// then its descendants in order, or nil.
func (s *Scene) Find(name string) *SceneObject {
	for _, r := range s.roots {
		if r.name == name {
			return r
		}
		if found := r.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// OnStart registers fn to run when the scene starts. Handlers run in
// registration order.
func (s *Scene) OnStart(fn func() error) {
	s.startHandlers = append(s.startHandlers, fn)
}

// Start runs every start handler once. Later calls are no-ops. Handler errors
// do not stop the remaining handlers and are returned joined.
func (s *Scene) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	var errs []error
	for _, fn := range s.startHandlers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Started reports whether Start has run.
func (s *Scene) Started() bool {
	return s.started
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-object
// access panics and nesting and fan-out warnings are written to Diagnostics.
// Enabling it also checks the objects already in the scene, so a scene built
// before the call is still reported.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugOut = os.Stderr
	if !enabled {
		return
	}
	if s.Diagnostics != nil {
		debugOut = s.Diagnostics
	}
	debugCheckScene(s)
}

// globalDebug mirrors the most recently set Scene debug flag so that object
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

func (s *Scene) removeRootByPtr(o *SceneObject) {
	for i, r := range s.roots {
		if r == o {
			copy(s.roots[i:], s.roots[i+1:])
			s.roots[len(s.roots)-1] = nil
			s.roots = s.roots[:len(s.roots)-1]
			return
		}
	}
}
