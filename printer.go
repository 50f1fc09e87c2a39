package hierarchy

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// DefaultMaxDepth bounds the walk through node types that cannot be compared
// for cycle detection. Comparable nodes are not depth-limited unless a limit
// is set with WithMaxDepth.
const DefaultMaxDepth = 256

// Format returns the dump of g as lines, including the start and end markers.
// Nothing is returned on error.
func Format(g Graph) ([]string, error) {
	return format(g, 0)
}

// Dump returns the dump of g as a single newline-joined string.
func Dump(g Graph) (string, error) {
	lines, err := Format(g)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Print formats g and emits every line to log in order. If formatting fails,
// nothing is emitted.
func Print(g Graph, log Logger) error {
	return NewPrinter(g, log).PrintHierarchy()
}

// Option configures a Printer.
type Option func(*Printer)

// WithPrintOnStart sets whether a bound Printer prints when its Scene starts.
func WithPrintOnStart(enabled bool) Option {
	return func(p *Printer) { p.printOnStart = enabled }
}

// WithMaxDepth sets a depth limit that applies to every node. Zero restores
// the default (DefaultMaxDepth for non-comparable nodes only); a negative
// value disables the limit entirely.
func WithMaxDepth(depth int) Option {
	return func(p *Printer) { p.maxDepth = depth }
}

// Printer prints one graph to one logger. It holds no state between calls.
type Printer struct {
	graph        Graph
	log          Logger
	printOnStart bool
	maxDepth     int
}

// NewPrinter creates a Printer for g. A nil log writes to os.Stdout.
func NewPrinter(g Graph, log Logger, opts ...Option) *Printer {
	if log == nil {
		log = WriterLogger(nil)
	}
	p := &Printer{graph: g, log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PrintOnStart reports whether the printer runs when a bound Scene starts.
func (p *Printer) PrintOnStart() bool {
	return p.printOnStart
}

// Dump returns the dump of the printer's graph as a single string, honoring
// the printer's depth limit.
func (p *Printer) Dump() (string, error) {
	lines, err := format(p.graph, p.maxDepth)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// PrintHierarchy emits the dump of the printer's graph.
func (p *Printer) PrintHierarchy() error {
	lines, err := format(p.graph, p.maxDepth)
	if err != nil {
		return err
	}
	for _, line := range lines {
		p.log.Emit(line)
	}
	return nil
}

// Bind registers a start handler on s that prints the hierarchy when
// print-on-start is enabled. The printer's own graph is printed, which is
// normally s itself.
func (p *Printer) Bind(s *Scene) {
	s.OnStart(func() error {
		if !p.printOnStart {
			return nil
		}
		return p.PrintHierarchy()
	})
}

func format(g Graph, maxDepth int) ([]string, error) {
	if isNilValue(g) {
		return nil, ErrNilGraph
	}
	w := walker{maxDepth: maxDepth}
	w.lines = append(w.lines, StartMarker)
	n := g.RootCount()
	for i := 0; i < n; i++ {
		root := g.RootAt(i)
		if isNilValue(root) {
			return nil, fmt.Errorf("%w: root %d", ErrNilNode, i)
		}
		if err := w.visit(root, 0); err != nil {
			return nil, err
		}
	}
	w.lines = append(w.lines, EndMarker)
	return w.lines, nil
}

// walker carries the output buffer and the chain of ancestors of the node
// being visited.
type walker struct {
	maxDepth int
	lines    []string
	path     []Object
	names    []string
}

func (w *walker) visit(n Object, depth int) error {
	if limit, ok := w.limit(n); ok && depth > limit {
		return fmt.Errorf("%w: depth %d exceeds %d at %s", ErrTooDeep, depth, limit, w.where(n.Name()))
	}
	if w.onPath(n) {
		return fmt.Errorf("%w: %q is its own ancestor at %s", ErrCycle, n.Name(), w.where(n.Name()))
	}

	suffix, err := componentSuffix(n.Components())
	if err != nil {
		return fmt.Errorf("node %s: %w", w.where(n.Name()), err)
	}

	var b strings.Builder
	b.Grow(len(Indent)*depth + len(Branch) + len(n.Name()) + len(suffix))
	for i := 0; i < depth; i++ {
		b.WriteString(Indent)
	}
	b.WriteString(Branch)
	b.WriteString(n.Name())
	b.WriteString(suffix)
	w.lines = append(w.lines, b.String())

	w.path = append(w.path, n)
	w.names = append(w.names, n.Name())
	count := n.ChildCount()
	for i := 0; i < count; i++ {
		child := n.ChildAt(i)
		if isNilValue(child) {
			return fmt.Errorf("%w: child %d of %s", ErrNilNode, i, w.where(""))
		}
		if err := w.visit(child, depth+1); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	w.names = w.names[:len(w.names)-1]
	return nil
}

// limit returns the depth bound that applies to n, if any.
func (w *walker) limit(n Object) (int, bool) {
	switch {
	case w.maxDepth > 0:
		return w.maxDepth, true
	case w.maxDepth < 0:
		return 0, false
	case !isComparable(n):
		return DefaultMaxDepth, true
	}
	return 0, false
}

// onPath reports whether n is already an ancestor on the current path. Node
// types that cannot be compared are never reported; the depth limit catches
// cycles through them.
func (w *walker) onPath(n Object) bool {
	if !isComparable(n) {
		return false
	}
	for _, a := range w.path {
		if a == n {
			return true
		}
	}
	return false
}

// where renders the ancestor names plus name as a slash-separated path.
func (w *walker) where(name string) string {
	parts := w.names
	if name != "" {
		parts = append(parts[:len(parts):len(parts)], name)
	}
	return fmt.Sprintf("%q", strings.Join(parts, "/"))
}

// componentSuffix renders " (a, b, c)" for a non-empty list and "" otherwise.
func componentSuffix(comps []Component) (string, error) {
	if len(comps) == 0 {
		return "", nil
	}
	descs := make([]string, len(comps))
	for i, c := range comps {
		d, err := c.Describe()
		if err != nil {
			return "", fmt.Errorf("component %d: %w", i, err)
		}
		descs[i] = d
	}
	return " (" + strings.Join(descs, ", ") + ")", nil
}

func isComparable(n Object) bool {
	return reflect.TypeOf(n).Comparable()
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsMalformed reports whether err came from a nil node or a component that
// could not be described.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrNilNode) || errors.Is(err, ErrMalformedComponent)
}
