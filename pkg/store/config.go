package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"

	sqliteFileName = "streamlist.db"
)

// Config locates the persisted watchlist.
type Config interface {
	BasePath() string
	Backend() string
	Key() string
	LogLevel() string
}

// LoadConfig reads .streamlist.{yaml,toml,json} from $STREAMLIST_CONFIG_PATH
// or the working directory, with STREAMLIST_* environment overrides. A
// missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.streamlist")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".streamlist")
	v.SetEnvPrefix("STREAMLIST")
	v.AutomaticEnv()

	if override := os.Getenv("STREAMLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	cfg := &fileConfig{
		Path:    path,
		Store:   strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		Name:    v.GetString("key"),
		Logging: v.GetString("log_level"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig builds a Config without reading any file; empty values take the
// defaults.
func NewConfig(path, backend, key string) Config {
	if backend == "" {
		backend = BackendDiskv
	}
	if key == "" {
		key = DefaultKey
	}
	return &fileConfig{Path: path, Store: backend, Name: key, Logging: "warn"}
}

type fileConfig struct {
	Path    string `json:"path"`
	Store   string `json:"backend"`
	Name    string `json:"key"`
	Logging string `json:"log_level"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Backend() string  { return f.Store }
func (f *fileConfig) Key() string      { return f.Name }
func (f *fileConfig) LogLevel() string { return f.Logging }

func (f *fileConfig) validate() error {
	if strings.TrimSpace(f.Path) == "" {
		return errors.New("store: path is empty")
	}
	switch f.Store {
	case BackendDiskv, BackendSQLite:
	default:
		return fmt.Errorf("store: unknown backend %q", f.Store)
	}
	return validKey(f.Name)
}

// Open returns the KV backend selected by cfg.
func Open(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch cfg.Backend() {
	case BackendSQLite:
		return NewSQLiteKV(filepath.Join(cfg.BasePath(), sqliteFileName))
	case BackendDiskv, "":
		return NewDiskvKV(cfg.BasePath())
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}
