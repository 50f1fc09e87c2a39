package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/hierarchy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestWorldGraph_Dump(t *testing.T) {
	world := donburi.NewWorld()
	Spawn(world, "Camera", hierarchy.NewComponent("Camera"))
	lighting := Spawn(world, "Lighting")
	SpawnChild(world, lighting, "Envmap")
	SpawnChild(world, lighting, "Light", hierarchy.NewComponent("LightSource"))
	Spawn(world, "Intro Cta", hierarchy.NewTweenComponent("ScriptComponent", "alpha", "fadeIn"))

	got, err := hierarchy.Dump(NewWorldGraph(world))
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := "--- Scene Hierarchy Start ---\n" +
		"|-- Camera (Camera)\n" +
		"|-- Lighting\n" +
		"  |-- Envmap\n" +
		"  |-- Light (LightSource)\n" +
		"|-- Intro Cta (ScriptComponent-TweenScript (type:alpha, name:fadeIn))\n" +
		"--- Scene Hierarchy End ---"
	if got != want {
		t.Errorf("dump =\n%s\nwant\n%s", got, want)
	}
}

func TestWorldGraph_Empty(t *testing.T) {
	world := donburi.NewWorld()
	g := NewWorldGraph(world)
	if g.RootCount() != 0 {
		t.Errorf("RootCount = %d, want 0", g.RootCount())
	}
	lines, err := hierarchy.Format(g)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("lines = %v, want only markers", lines)
	}
}

func TestWorldGraph_RemovedChildIsNilNode(t *testing.T) {
	world := donburi.NewWorld()
	parent := Spawn(world, "parent")
	child := SpawnChild(world, parent, "child")
	world.Remove(child.Entity())

	_, err := hierarchy.Format(NewWorldGraph(world))
	if !errors.Is(err, hierarchy.ErrNilNode) {
		t.Errorf("err = %v, want ErrNilNode", err)
	}
}

func TestWorldGraph_CycleDetected(t *testing.T) {
	world := donburi.NewWorld()
	a := Spawn(world, "a")
	b := SpawnChild(world, a, "b")
	bd := Object.Get(b)
	bd.Children = append(bd.Children, a.Entity())

	_, err := hierarchy.Format(NewWorldGraph(world))
	if !errors.Is(err, hierarchy.ErrCycle) {
		t.Errorf("err = %v, want ErrCycle", err)
	}
}

func TestEventLogger_PublishesLines(t *testing.T) {
	world := donburi.NewWorld()
	Spawn(world, "Camera", hierarchy.NewComponent("Camera"))

	var received []string
	LineEventType.Subscribe(world, func(w donburi.World, line string) {
		received = append(received, line)
	})

	if err := hierarchy.Print(NewWorldGraph(world), NewEventLogger(world)); err != nil {
		t.Fatalf("Print: %v", err)
	}

	// Events are queued; process them.
	events.ProcessAllEvents(world)

	want := []string{hierarchy.StartMarker, "|-- Camera (Camera)", hierarchy.EndMarker}
	if len(received) != len(want) {
		t.Fatalf("received %d lines, want %d", len(received), len(want))
	}
	for i := range want {
		if received[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, received[i], want[i])
		}
	}
}

func TestEventLogger_ImplementsLogger(t *testing.T) {
	world := donburi.NewWorld()
	var log hierarchy.Logger = NewEventLogger(world)
	_ = log // compile-time interface check
}
