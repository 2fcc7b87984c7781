package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multipick/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	DataFile   string            `toml:"data_file"`
	Selection  SelectionSettings `toml:"selection"`
	UISettings UISettings        `toml:"ui"`
}

// SelectionSettings configures one selection controller. Resolved once at
// construction and passed by value into the core; never mutated afterwards.
type SelectionSettings struct {
	Mode          string `toml:"mode"`           // single, multi or additive
	TrackBy       string `toml:"track_by"`       // gjson path used as item identity
	Label         string `toml:"label"`          // gjson path rendered as the row text
	SelectedField string `toml:"selected_field"` // field name used when exporting records
	SelectedStyle string `toml:"selected_style"` // lipgloss color for selected rows
	Visual        string `toml:"visual"`         // highlight or checkbox
}

// Merged returns these settings with any non-zero field of override taking
// precedence, giving per-instance overrides priority over process defaults.
func (s SelectionSettings) Merged(override SelectionSettings) SelectionSettings {
	if override.Mode != "" {
		s.Mode = override.Mode
	}
	if override.TrackBy != "" {
		s.TrackBy = override.TrackBy
	}
	if override.Label != "" {
		s.Label = override.Label
	}
	if override.SelectedField != "" {
		s.SelectedField = override.SelectedField
	}
	if override.SelectedStyle != "" {
		s.SelectedStyle = override.SelectedStyle
	}
	if override.Visual != "" {
		s.Visual = override.Visual
	}
	return s
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatusBar  bool `toml:"show_status_bar"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	multipickDir := filepath.Join(configDir, "multipick")
	os.MkdirAll(multipickDir, 0755)

	return &configService{
		filePath: filepath.Join(multipickDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file leaves out
	cfg.Selection = DefaultConfig().Selection.Merged(cfg.Selection)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			DataFile: cfg.DataFile,
			Mode:     cfg.Selection.Mode,
		})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selection: SelectionSettings{
			Mode:          "multi",
			TrackBy:       "id",
			Label:         "name",
			SelectedField: "selected",
			SelectedStyle: "238",
			Visual:        "highlight",
		},
		UISettings: UISettings{
			ShowStatusBar:  true,
			AutosaveOnExit: false,
		},
	}
}
