package hierarchy

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug-mode warnings.
var debugOut io.Writer = os.Stderr

// debugCheckDestroyed panics with a descriptive message when a destroyed object
// is used in a tree operation. Only called in debug mode.
func debugCheckDestroyed(o *SceneObject, op string) {
	if o.destroyed {
		panic(fmt.Sprintf("hierarchy debug: %s on destroyed object %q", op, o.name))
	}
}

// Past this nesting a dump line is indented beyond 64 columns.
const debugNestingLimit = 32

// debugCheckNesting warns when o sits deeper than debugNestingLimit levels.
// A root is level 1.
func debugCheckNesting(o *SceneObject) {
	level := 0
	for p := o; p != nil; p = p.parent {
		level++
	}
	if level > debugNestingLimit {
		_, _ = fmt.Fprintf(debugOut, "[hierarchy] warning: object %q is nested %d levels deep (limit %d); its dump line is hard to read\n",
			o.name, level, debugNestingLimit)
	}
}

const debugFanoutLimit = 1000

// debugCheckFanout warns when o has more than debugFanoutLimit children.
func debugCheckFanout(o *SceneObject) {
	if len(o.children) > debugFanoutLimit {
		_, _ = fmt.Fprintf(debugOut, "[hierarchy] warning: object %q has %d children (limit %d); the dump lists them all as siblings\n",
			o.name, len(o.children), debugFanoutLimit)
	}
}

// debugCheckScene runs the fan-out check on every object of s and the nesting
// check once, on the deepest object.
func debugCheckScene(s *Scene) {
	var (
		deepest      *SceneObject
		deepestLevel int
	)
	var walk func(o *SceneObject, level int)
	walk = func(o *SceneObject, level int) {
		if level > deepestLevel {
			deepestLevel, deepest = level, o
		}
		debugCheckFanout(o)
		for _, c := range o.children {
			walk(c, level+1)
		}
	}
	for _, r := range s.roots {
		walk(r, 1)
	}
	if deepest != nil {
		debugCheckNesting(deepest)
	}
}
