// Scenedump loads a scene file (JSON or YAML) and prints its hierarchy.
//
//	scenedump testdata/scene.json
//	scenedump --log-sink zap --config scenedump.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/phanxgames/hierarchy"
	"github.com/phanxgames/hierarchy/internal/bootstrap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "scenedump [scene-file]",
		Short:        "Print a scene graph as an indented hierarchy",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.Load(v, cfgPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.SceneFile = args[0]
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "config file (.env, .yaml, .json, .toml)")
	flags.String("log-sink", bootstrap.SinkStdout, "where lines go: stdout or zap")
	flags.Bool("log-development", false, "use zap's development encoder")
	flags.Bool("debug", false, "enable scene debug warnings")
	flags.Int("max-depth", 0, "fail when the tree is deeper than this (0: cycle guard only, negative: no limit)")
	flags.Bool("print-on-start", true, "print when the scene starts")
	flags.String("snapshot-dir", "", "also write the dump to a timestamped file in this directory")

	_ = v.BindPFlag("LOG_SINK", flags.Lookup("log-sink"))
	_ = v.BindPFlag("LOG_DEVELOPMENT", flags.Lookup("log-development"))
	_ = v.BindPFlag("DEBUG", flags.Lookup("debug"))
	_ = v.BindPFlag("MAX_DEPTH", flags.Lookup("max-depth"))
	_ = v.BindPFlag("PRINT_ON_START", flags.Lookup("print-on-start"))
	_ = v.BindPFlag("SNAPSHOT_DIR", flags.Lookup("snapshot-dir"))

	return cmd
}

func run(cfg *bootstrap.Config, stdout, stderr io.Writer) error {
	if cfg.SceneFile == "" {
		return errors.New("no scene file: pass one as an argument or set SCENE_FILE")
	}
	scene, err := hierarchy.LoadSceneFile(cfg.SceneFile)
	if err != nil {
		return err
	}
	scene.Diagnostics = stderr
	scene.SetDebugMode(cfg.Debug)
	defer scene.SetDebugMode(false)

	logger, sync, err := newLogger(cfg, stdout)
	if err != nil {
		return err
	}
	defer sync()

	p := hierarchy.NewPrinter(scene, logger,
		hierarchy.WithPrintOnStart(cfg.PrintOnStart),
		hierarchy.WithMaxDepth(cfg.MaxDepth))
	p.Bind(scene)
	if err := scene.Start(); err != nil {
		return err
	}
	if !p.PrintOnStart() {
		// Nothing printed on start; print on demand instead.
		if err := p.PrintHierarchy(); err != nil {
			return err
		}
	}

	if cfg.SnapshotDir != "" {
		path, err := p.WriteSnapshot(cfg.SnapshotDir, filepath.Base(cfg.SceneFile))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stderr, "[hierarchy] snapshot written to %s\n", path)
	}
	return nil
}

func newLogger(cfg *bootstrap.Config, stdout io.Writer) (hierarchy.Logger, func(), error) {
	if cfg.LogSink != bootstrap.SinkZap {
		return hierarchy.WriterLogger(stdout), func() {}, nil
	}
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogDevelopment {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}
	return hierarchy.ZapLogger(logger.Sugar()), func() { _ = logger.Sync() }, nil
}
