package bootstrap

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCENEDUMP_PRINT_ON_START.
const EnvPrefix = "SCENEDUMP"

// Log sinks accepted in LOG_SINK.
const (
	SinkStdout = "stdout"
	SinkZap    = "zap"
)

type Config struct {
	PrintOnStart   bool   `mapstructure:"PRINT_ON_START"`
	SceneFile      string `mapstructure:"SCENE_FILE"`
	LogSink        string `mapstructure:"LOG_SINK"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
	Debug          bool   `mapstructure:"DEBUG"`
	MaxDepth       int    `mapstructure:"MAX_DEPTH"`
	SnapshotDir    string `mapstructure:"SNAPSHOT_DIR"`
}

// Defaults registers the default value of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("PRINT_ON_START", true)
	v.SetDefault("SCENE_FILE", "")
	v.SetDefault("LOG_SINK", SinkStdout)
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.SetDefault("DEBUG", false)
	v.SetDefault("MAX_DEPTH", 0)
	v.SetDefault("SNAPSHOT_DIR", "")
}

// Load reads cfgPath (if non-empty) into v, applies environment overrides and
// unmarshals the result.
func Load(v *viper.Viper, cfgPath string) (*Config, error) {
	Defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Setup(cfgPath string) (*Config, error) {
	return Load(viper.New(), cfgPath)
}

func (c *Config) Validate() error {
	switch c.LogSink {
	case SinkStdout, SinkZap:
	default:
		return fmt.Errorf("invalid LOG_SINK %q (want %s or %s)", c.LogSink, SinkStdout, SinkZap)
	}
	return nil
}
