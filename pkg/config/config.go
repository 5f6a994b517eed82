package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"eventick/pkg/keymaps"
)

// Storage backend names accepted in the config file.
const (
	StorageJSON     = "json"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	// Storage selects the persistence backend: json, sqlite or postgres.
	Storage string `mapstructure:"storage"`
	// DataDir is where the json backend keeps its files.
	DataDir string `mapstructure:"data_dir"`
	// Database is the SQLite database path for the sqlite backend.
	Database string `mapstructure:"database"`
	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string `mapstructure:"postgres_dsn"`

	KeyMap     map[string]string `mapstructure:"keymap"`
	StylesFile string            `mapstructure:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Countdown state colors
	CountdownColor string `json:"countdown_color"`
	UrgentColor    string `json:"urgent_color"`
	ExpiredColor   string `json:"expired_color"`

	// Calendar colors
	TodayBgColor string `json:"today_bg_color"`
	EventColor   string `json:"event_color"`
}

// DefaultStyles returns the stock color scheme.
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		CountdownColor:    "42",
		UrgentColor:       "208",
		ExpiredColor:      "9",
		TodayBgColor:      "39",
		EventColor:        "42",
	}
}

// Load loads the application configuration from the specified path, creating
// a default config file on first run.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "eventick")

	config := Config{
		Storage:    StorageJSON,
		DataDir:    configDir,
		Database:   filepath.Join(configDir, "eventick.db"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
	}

	v := viper.New()
	v.SetConfigType("json")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}
	v.SetDefault("storage", config.Storage)
	v.SetDefault("data_dir", config.DataDir)
	v.SetDefault("database", config.Database)
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("keymap", config.KeyMap)
	v.SetDefault("styles_file", config.StylesFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, Styles{}, err
	}

	// Now load the styles file
	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
