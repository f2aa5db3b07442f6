package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/task"
)

// EnvPrefix prefixes every environment override, e.g. JASKTODO_UI_TITLE.
const EnvPrefix = "JASKTODO"

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	REPL REPLConfig `mapstructure:"repl"`
}

// UIConfig holds presentation settings shared by the front ends.
type UIConfig struct {
	Title           string `mapstructure:"title"`
	Placeholder     string `mapstructure:"placeholder"`
	DefaultFilter   string `mapstructure:"default_filter"`
	KeybindingsPath string `mapstructure:"keybindings_path"`
}

// LogConfig holds logger settings. An empty Path disables file logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// REPLConfig holds line-editor settings.
type REPLConfig struct {
	HistoryPath string `mapstructure:"history_path"`
}

// Dir returns the directory for jasktodo config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "jasktodo"), nil
}

// New returns a viper instance with defaults and env overrides set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	dir, err := Dir()
	keysPath, historyPath := "", ""
	if err == nil {
		keysPath = filepath.Join(dir, "keys.toml")
		historyPath = filepath.Join(dir, "history")
	}

	// default values
	v.SetDefault("config", "")
	v.SetDefault("ui.title", "My Todo List")
	v.SetDefault("ui.placeholder", "Add a new task...")
	v.SetDefault("ui.default_filter", string(task.FilterAll))
	v.SetDefault("ui.keybindings_path", keysPath)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.path", "")
	v.SetDefault("repl.history_path", historyPath)

	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// Load reads the config file into v and unmarshals the result. The file is
// taken from the "config" key (the --config flag or JASKTODO_CONFIG) and
// otherwise looked up in Dir(). Only an explicitly named file must exist.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that the front ends would otherwise reject late.
func (c Config) Validate() error {
	if _, err := task.ParseFilter(c.UI.DefaultFilter); err != nil {
		return fmt.Errorf("ui.default_filter: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Filter returns the parsed default filter. Call after Validate.
func (c Config) Filter() task.Filter {
	f, err := task.ParseFilter(c.UI.DefaultFilter)
	if err != nil {
		return task.FilterAll
	}
	return f
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logging.Level {
	l, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelWarn
	}
	return l
}
