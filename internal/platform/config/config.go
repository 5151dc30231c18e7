package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "applause"

type StorageBackend string

const (
	BackendMemory   StorageBackend = "memory"
	BackendBadger   StorageBackend = "badger"
	BackendPostgres StorageBackend = "postgres"
)

func (b StorageBackend) Valid() bool {
	switch b {
	case BackendMemory, BackendBadger, BackendPostgres:
		return true
	default:
		return false
	}
}

// Los nombres de env salen de split_words (APPLAUSE_STORAGE_TIMEOUT, ...).
// No usar tags envconfig:"X": envconfig cae a la variable X sin prefijo.
type Config struct {
	ListenAddress string        `yaml:"listenAddress" split_words:"true"`
	Storage       StorageConfig `yaml:"storage"       split_words:"true"`
	Notify        NotifyConfig  `yaml:"notify"        split_words:"true"`
	Log           LogConfig     `yaml:"log"           split_words:"true"`

	// SeedOnStart carga las personas de ejemplo si el store está vacío.
	SeedOnStart  bool `yaml:"seedOnStart"  split_words:"true"`
	HistoryLimit int  `yaml:"historyLimit" split_words:"true"`
}

type StorageConfig struct {
	Backend     StorageBackend `yaml:"backend"     split_words:"true"`
	BadgerPath  string         `yaml:"badgerPath"  split_words:"true"`
	PostgresDSN string         `yaml:"postgresDSN" split_words:"true"`
	Timeout     time.Duration  `yaml:"timeout"     split_words:"true"`
}

type NotifyConfig struct {
	WebhookURL string        `yaml:"webhookURL" split_words:"true"`
	Timeout    time.Duration `yaml:"timeout"    split_words:"true"`
	QueueSize  int           `yaml:"queueSize"  split_words:"true"`
	Workers    int           `yaml:"workers"    split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level"  split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
	App    string `yaml:"app"    split_words:"true"`
}

func Default() *Config {
	return &Config{
		ListenAddress: ":8080",
		Storage: StorageConfig{
			Backend:    BackendMemory,
			BadgerPath: "./data/badger",
			Timeout:    3 * time.Second,
		},
		Notify: NotifyConfig{
			Timeout:   5 * time.Second,
			QueueSize: 64,
			Workers:   1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "applause-ledger",
		},
		HistoryLimit: 20,
	}
}

// Load arma la config en capas: defaults -> YAML (opcional) -> env.
// Las env "legacy" (PORT, DB_DSN, MAKE_WEBHOOK_URL, LOG_LEVEL, LOG_FORMAT)
// se respetan si la variable con prefijo no está seteada.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	applyLegacyEnv(cfg)

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyLegacyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.ListenAddress = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		cfg.Storage.PostgresDSN = v
		if cfg.Storage.Backend == BackendMemory {
			cfg.Storage.Backend = BackendPostgres
		}
	}
	if v := strings.TrimSpace(os.Getenv("MAKE_WEBHOOK_URL")); v != "" {
		cfg.Notify.WebhookURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ListenAddress) == "" {
		return errors.New("listenAddress is required")
	}
	if !c.Storage.Backend.Valid() {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendBadger && strings.TrimSpace(c.Storage.BadgerPath) == "" {
		return errors.New("storage.badgerPath is required for badger backend")
	}
	if c.Storage.Backend == BackendPostgres && strings.TrimSpace(c.Storage.PostgresDSN) == "" {
		return errors.New("storage.postgresDSN is required for postgres backend")
	}
	if c.Storage.Timeout <= 0 {
		return errors.New("storage.timeout must be positive")
	}
	if c.Notify.Timeout <= 0 {
		return errors.New("notify.timeout must be positive")
	}
	if c.Notify.QueueSize <= 0 || c.Notify.Workers <= 0 {
		return errors.New("notify.queueSize and notify.workers must be positive")
	}
	if c.HistoryLimit <= 0 {
		return errors.New("historyLimit must be positive")
	}
	return nil
}
