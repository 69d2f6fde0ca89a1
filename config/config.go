// Package config loads foodpick settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const EnvPrefix = "FOODPICK"

type Config struct {
	DataDir         string        `mapstructure:"data_dir"`
	SaveDebounce    time.Duration `mapstructure:"save_debounce"`
	DoubleTapWindow time.Duration `mapstructure:"double_tap_window"`
	Lookup          LookupConfig  `mapstructure:"lookup"`
	Log             LogConfig     `mapstructure:"log"`
}

type LookupConfig struct {
	// MapCommand is tried before the platform opener, e.g. "gnome-maps".
	MapCommand string `mapstructure:"map_command"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DBPath is where the local store lives.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "foodpick.db")
}

func defaultDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil || dir == "" {
		return fallback
	}
	return filepath.Join(dir, "foodpick")
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	dataDir := defaultDir(userDataDir, ".foodpick")
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("save_debounce", 250*time.Millisecond)
	v.SetDefault("double_tap_window", 300*time.Millisecond)
	v.SetDefault("lookup.map_command", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
}

// Load reads the config file (explicit path, or config.{yaml,toml,json} in
// the user config dir), then FOODPICK_* environment variables. A missing
// config file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultDir(os.UserConfigDir, "."))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.DataDir == "" {
		return Config{}, errors.New("data_dir must not be empty")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, "foodpick.log")
	}
	return cfg, nil
}

// SetupLogging sends the standard logger to a rotating file. The returned
// closer releases the file.
func SetupLogging(c LogConfig) (io.Closer, error) {
	if c.File == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}
	log.SetOutput(lj)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return lj, nil
}

func userDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}
