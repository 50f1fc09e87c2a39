// Package ecs exposes a [Donburi] world as a hierarchy graph.
//
// Entities spawned with [Spawn] and [SpawnChild] carry an [ObjectData]
// component; roots also carry the [Root] tag. [NewWorldGraph] wraps the world
// so it can be handed to hierarchy.Print like any other scene:
//
//	world := donburi.NewWorld()
//	cam := ecs.Spawn(world, "Camera", hierarchy.NewComponent("Camera"))
//	_ = cam
//	hierarchy.Print(ecs.NewWorldGraph(world), ecs.NewEventLogger(world))
//
// [NewEventLogger] publishes each dump line as a [LineEventType] event, for
// systems that want to consume the dump inside the ECS.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
