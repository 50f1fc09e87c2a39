package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestSetupDefaults(t *testing.T) {
	cfg, err := Setup("")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !cfg.PrintOnStart {
		t.Error("PrintOnStart should default to true")
	}
	if cfg.LogSink != SinkStdout {
		t.Errorf("LogSink = %q, want %q", cfg.LogSink, SinkStdout)
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0", cfg.MaxDepth)
	}
}

func TestSetupFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenedump.yaml")
	data := "PRINT_ON_START: false\nSCENE_FILE: scene.json\nLOG_SINK: zap\nMAX_DEPTH: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if cfg.PrintOnStart {
		t.Error("PrintOnStart should be false")
	}
	if cfg.SceneFile != "scene.json" {
		t.Errorf("SceneFile = %q, want %q", cfg.SceneFile, "scene.json")
	}
	if cfg.LogSink != SinkZap {
		t.Errorf("LogSink = %q, want %q", cfg.LogSink, SinkZap)
	}
	if cfg.MaxDepth != 12 {
		t.Errorf("MaxDepth = %d, want 12", cfg.MaxDepth)
	}
}

func TestSetupEnvOverride(t *testing.T) {
	t.Setenv("SCENEDUMP_PRINT_ON_START", "false")
	t.Setenv("SCENEDUMP_DEBUG", "true")

	cfg, err := Setup("")
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if cfg.PrintOnStart {
		t.Error("env should turn PrintOnStart off")
	}
	if !cfg.Debug {
		t.Error("env should turn Debug on")
	}
}

func TestSetupMissingFile(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidSink(t *testing.T) {
	v := viper.New()
	v.Set("LOG_SINK", "syslog")
	if _, err := Load(v, ""); err == nil {
		t.Error("expected error for invalid LOG_SINK")
	}
}
