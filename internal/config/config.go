package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"expirypicker/internal/eventbus"
)

const (
	appDirName     = "expirypicker"
	configFileName = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	Log     LogSettings `toml:"log"`
	State   State       `toml:"state"`
	UI      UISettings  `toml:"ui"`
}

// LogSettings controls where and how much the app logs
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// State controls where the expiration is persisted
type State struct {
	File     string `toml:"file"` // relative paths resolve against the config dir
	Autosave bool   `toml:"autosave"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen bool `toml:"alt_screen"`
	Mouse     bool `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the per-user config directory for the app
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appDirName)
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(Dir(), configFileName)}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus returns a copy of svc that publishes load/save events
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	cs, ok := svc.(*configService)
	if !ok {
		return svc
	}
	cp := *cs
	cp.bus = bus
	return &cp
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Fields missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(os.ErrNotExist, "config file not found: %s", path)
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// StatePath resolves the state file against the config file's directory
func (c *Config) StatePath(configPath string) string {
	if c.State.File == "" || filepath.IsAbs(c.State.File) {
		return c.State.File
	}
	return filepath.Join(filepath.Dir(configPath), c.State.File)
}

// LogPath resolves the log file against the config file's directory
func (c *Config) LogPath(configPath string) string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(filepath.Dir(configPath), c.Log.File)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Log: LogSettings{
			File:  "expirypicker.log",
			Level: "info",
		},
		State: State{
			File:     "expiration.toml",
			Autosave: true,
		},
		UI: UISettings{
			AltScreen: true,
			Mouse:     true,
		},
	}
}
