package ecs

import (
	"sort"

	"github.com/phanxgames/hierarchy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ObjectData is the per-entity scene data read by WorldGraph.
type ObjectData struct {
	Name       string
	Children   []donburi.Entity
	Components []hierarchy.Component

	// seq orders roots by creation.
	seq uint64
}

// Object is the component type holding ObjectData.
var Object = donburi.NewComponentType[ObjectData]()

// Root tags entities that are roots of the scene.
var Root = donburi.NewTag()

// spawnSeq is a plain counter (no atomic: worlds are single-threaded).
var spawnSeq uint64

// Spawn creates a root entity with the given name and components.
func Spawn(world donburi.World, name string, comps ...hierarchy.Component) *donburi.Entry {
	entry := world.Entry(world.Create(Object, Root))
	spawnSeq++
	Object.SetValue(entry, ObjectData{Name: name, Components: comps, seq: spawnSeq})
	return entry
}

// SpawnChild creates an entity as the last child of parent.
func SpawnChild(world donburi.World, parent *donburi.Entry, name string, comps ...hierarchy.Component) *donburi.Entry {
	entry := world.Entry(world.Create(Object))
	spawnSeq++
	Object.SetValue(entry, ObjectData{Name: name, Components: comps, seq: spawnSeq})
	pd := Object.Get(parent)
	pd.Children = append(pd.Children, entry.Entity())
	return entry
}

// WorldGraph adapts a donburi world to hierarchy.Graph. Roots are collected
// on each RootCount call and ordered by spawn order.
type WorldGraph struct {
	world donburi.World
	query *donburi.Query
	roots []donburi.Entity
}

// NewWorldGraph wraps world.
func NewWorldGraph(world donburi.World) *WorldGraph {
	return &WorldGraph{
		world: world,
		query: donburi.NewQuery(filter.Contains(Object, Root)),
	}
}

// RootCount refreshes the root list and returns its length.
func (g *WorldGraph) RootCount() int {
	g.roots = g.roots[:0]
	seqs := make(map[donburi.Entity]uint64)
	g.query.Each(g.world, func(entry *donburi.Entry) {
		g.roots = append(g.roots, entry.Entity())
		seqs[entry.Entity()] = Object.Get(entry).seq
	})
	sort.Slice(g.roots, func(i, j int) bool {
		return seqs[g.roots[i]] < seqs[g.roots[j]]
	})
	return len(g.roots)
}

// RootAt returns the root at index from the list built by RootCount.
func (g *WorldGraph) RootAt(index int) hierarchy.Object {
	return objectAt(g.world, g.roots[index])
}

// entityObject is a comparable view of one entity, so the printer can detect
// cycles between entities.
type entityObject struct {
	world  donburi.World
	entity donburi.Entity
}

// objectAt returns nil for entities that were removed or lack ObjectData;
// the printer reports those as nil nodes.
func objectAt(world donburi.World, e donburi.Entity) hierarchy.Object {
	if !world.Valid(e) || !world.Entry(e).HasComponent(Object) {
		return nil
	}
	return entityObject{world: world, entity: e}
}

func (o entityObject) data() *ObjectData {
	return Object.Get(o.world.Entry(o.entity))
}

func (o entityObject) Name() string {
	return o.data().Name
}

func (o entityObject) ChildCount() int {
	return len(o.data().Children)
}

func (o entityObject) ChildAt(index int) hierarchy.Object {
	return objectAt(o.world, o.data().Children[index])
}

func (o entityObject) Components() []hierarchy.Component {
	return o.data().Components
}

// LineEventType is the Donburi event type for dump lines published by an
// EventLogger. Subscribe to it to consume the dump inside ECS systems.
var LineEventType = events.NewEventType[string]()

type eventLogger struct {
	world donburi.World
}

// NewEventLogger creates a hierarchy.Logger that publishes each line to
// LineEventType. Lines are queued until ProcessEvents runs.
func NewEventLogger(world donburi.World) hierarchy.Logger {
	return &eventLogger{world: world}
}

func (l *eventLogger) Emit(line string) {
	LineEventType.Publish(l.world, line)
}
