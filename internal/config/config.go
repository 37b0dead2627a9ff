package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

const (
	appName = "commitfmt"

	keyGitBinary = "git_binary"
	keyNoColor   = "no_color"
	keyDebug     = "debug"
)

type Config struct {
	GitBinary string `mapstructure:"git_binary"`
	NoColor   bool   `mapstructure:"no_color"`
	Debug     bool   `mapstructure:"debug"`
}

const defaultConfig = `# commitfmt configuration

# Program used to run the commit and shown in the generated command.
git_binary: git

# Disable coloured output.
no_color: false

# Print debug information to stderr.
debug: false
`

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetDefault(keyGitBinary, "git")
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyDebug, false)
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	return v
}

// Load reads the config at configPath, or at the default location when
// configPath is empty. A missing default file yields the defaults; a missing
// explicitly requested file is an error.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	v := newViper(configPath)

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && explicit:
		return nil, fmt.Errorf("config file not found at %s, run 'commitfmt config init' to create one", configPath)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.GitBinary == "" {
		cfg.GitBinary = "git"
	}

	return &cfg, nil
}

// Init writes a commented default config file to configPath, or to the
// default location when configPath is empty, and returns the path written.
func Init(configPath string) (string, error) {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}

// Show returns the raw contents of the config file.
func Show(configPath string) (string, error) {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return "", err
		}
	}

	if _, err := Load(configPath); err != nil {
		return "", err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	return string(data), nil
}

// Set updates a single known key in an existing config file.
func Set(configPath, key, value string) error {
	if configPath == "" {
		var err error
		configPath, err = GetConfigPath()
		if err != nil {
			return err
		}
	}

	var typed interface{}
	switch key {
	case keyGitBinary:
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		typed = value
	case keyNoColor, keyDebug:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		typed = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	v.Set(key, typed)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
