package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCmdStderr(t, args...)
	return out, err
}

func runCmdStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeChainScene writes a JSON scene that nests levels objects in one chain.
func writeChainScene(t *testing.T, levels int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(`{"roots":[`)
	for i := 0; i < levels; i++ {
		if i > 0 {
			b.WriteString(`,"children":[`)
		}
		fmt.Fprintf(&b, `{"name":"n%d"`, i)
	}
	for i := 0; i < levels; i++ {
		b.WriteString("}")
		if i < levels-1 {
			b.WriteString("]")
		}
	}
	b.WriteString("]}")
	path := filepath.Join(t.TempDir(), "deep.json")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScenedumpPrintsGolden(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("..", "..", "testdata", "scene.golden"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"scene.json", "scene.yaml"} {
		t.Run(name, func(t *testing.T) {
			out, err := runCmd(t, filepath.Join("..", "..", "testdata", name))
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if out != string(golden) {
				t.Errorf("output =\n%s\nwant\n%s", out, golden)
			}
		})
	}
}

func TestScenedumpPrintsOnceWithoutPrintOnStart(t *testing.T) {
	out, err := runCmd(t, "--print-on-start=false", filepath.Join("..", "..", "testdata", "scene.json"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if n := strings.Count(out, "--- Scene Hierarchy Start ---"); n != 1 {
		t.Errorf("start markers = %d, want 1", n)
	}
}

func TestScenedumpSceneFromConfig(t *testing.T) {
	scene, err := filepath.Abs(filepath.Join("..", "..", "testdata", "scene.json"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(t.TempDir(), "scenedump.yaml")
	if err := os.WriteFile(cfg, []byte("SCENE_FILE: "+scene+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCmd(t, "--config", cfg)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "|-- Camera (Camera)") {
		t.Errorf("output missing Camera line:\n%s", out)
	}
}

func TestScenedumpNoScene(t *testing.T) {
	if _, err := runCmd(t); err == nil {
		t.Error("expected error without a scene file")
	}
}

func TestScenedumpMaxDepth(t *testing.T) {
	out, err := runCmd(t, "--max-depth", "0", filepath.Join("..", "..", "testdata", "scene.json"))
	if err != nil {
		t.Fatalf("max-depth 0 restores the default: %v", err)
	}
	if out == "" {
		t.Error("expected output")
	}
}

func TestScenedumpSnapshot(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCmd(t, "--snapshot-dir", dir, filepath.Join("..", "..", "testdata", "scene.json")); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*_scene.json.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("snapshots = %v, want 1", matches)
	}
}

func TestScenedumpDebugWarnsOnDeepScene(t *testing.T) {
	scene := writeChainScene(t, 41)

	_, stderr, err := runCmdStderr(t, "--debug", scene)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stderr, `[hierarchy] warning: object "n40" is nested 41 levels deep`) {
		t.Errorf("stderr missing nesting warning: %q", stderr)
	}

	_, stderr, err = runCmdStderr(t, scene)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr without --debug = %q, want empty", stderr)
	}
}

func TestScenedumpSnapshotHonorsMaxDepth(t *testing.T) {
	scene := writeChainScene(t, 300)
	dir := t.TempDir()

	out, err := runCmd(t, "--max-depth", "-1", "--snapshot-dir", dir, scene)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "|-- n299") {
		t.Error("output missing deepest object")
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*_deep.json.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("snapshots = %v, want 1", matches)
	}

	if _, err := runCmd(t, "--max-depth", "10", "--snapshot-dir", t.TempDir(), scene); err == nil {
		t.Error("expected ErrTooDeep with --max-depth 10")
	}
}
