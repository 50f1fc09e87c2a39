// Package hierarchy prints a scene graph as an indented text dump for
// debugging.
//
// The printer walks a rooted forest depth-first, one line per node, indenting
// two spaces per level and annotating each node with the components attached
// to it. Tween components are expanded to show the tween type and name.
//
// # Quick start
//
// Any type that implements [Graph] and [Object] can be printed. The package
// ships a small in-memory tree, [Scene] and [SceneObject], for host code and
// tests:
//
//	scene := hierarchy.NewScene()
//	cam := scene.CreateObject("Camera")
//	cam.AddComponent(hierarchy.NewComponent("Camera"))
//
//	if err := hierarchy.Print(scene, hierarchy.WriterLogger(os.Stdout)); err != nil {
//		log.Fatal(err)
//	}
//
// which writes:
//
//	--- Scene Hierarchy Start ---
//	|-- Camera (Camera)
//	--- Scene Hierarchy End ---
//
// # Printing on start
//
// A [Printer] bundles a graph, a [Logger] and the print-on-start flag. Bind it
// to a [Scene] and the hierarchy is printed when the host calls [Scene.Start]:
//
//	p := hierarchy.NewPrinter(scene, hierarchy.ZapLogger(sugar),
//		hierarchy.WithPrintOnStart(true))
//	p.Bind(scene)
//	scene.Start()
//
// # Tweens
//
// [TweenScript] wraps a [gween] tween together with the type and name shown in
// the dump. Running the tween is left to the host loop.
//
// # Scene files
//
// [LoadScene], [LoadSceneYAML] and [LoadSceneFile] build a [Scene] from a JSON
// or YAML document; the scenedump command uses them.
//
// [gween]: https://github.com/tanema/gween
package hierarchy
