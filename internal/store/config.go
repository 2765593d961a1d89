package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/mapstructure"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "MDTODO"

func GetConfigPath() (string, error) {
	// `MDTODO_CONFIG` wins over the platform default
	if customConfig := os.Getenv(envPrefix + "_CONFIG"); customConfig != "" {
		return customConfig, nil
	}

	var configPath string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			configPath = filepath.Join(appData, "mdtodo", "config.yaml")
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", err)
			}
			configPath = filepath.Join(homeDir, "AppData", "Roaming", "mdtodo", "config.yaml")
		}

	default: // macOS / Linux
		configDir, err := os.UserConfigDir()
		if err != nil {
			homeDir, homeErr := os.UserHomeDir()
			if homeErr != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
			}
			configPath = filepath.Join(homeDir, ".mdtodo", "config.yaml")
			log.Warn("⚠️ Failed to get user config directory, using fallback", "path", configPath)
		} else {
			configPath = filepath.Join(configDir, "mdtodo", "config.yaml")
		}
	}

	return configPath, nil
}

// Expand `~` to the home directory (Windows included)
func expandHomeDir(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warn("⚠️ Failed to get home directory", "err", err)
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// LoadConfig layers the config file and MDTODO_* environment variables on
// top of the defaults. A missing config file is not an error.
func LoadConfig() (*model.Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

func LoadConfigFrom(configPath string) (*model.Config, error) {
	config := model.DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, config)

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("❌ Failed to read config file (%s): %w", configPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("❌ Failed to stat config file (%s): %w", configPath, err)
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		statusHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, hook); err != nil {
		return nil, fmt.Errorf("❌ Failed to parse config: %w", err)
	}

	config.TodoFile = expandHomeDir(config.TodoFile)
	return &config, nil
}

// bindDefaults registers every scalar key so AutomaticEnv can see it
// during Unmarshal.
func bindDefaults(v *viper.Viper, cfg model.Config) {
	v.SetDefault("todo_file", cfg.TodoFile)
	v.SetDefault("editor", cfg.Editor)
	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("sync.enable", cfg.Sync.Enable)
	v.SetDefault("sync.bucket", cfg.Sync.Bucket)
	v.SetDefault("sync.key", cfg.Sync.Key)
	v.SetDefault("sync.aws_profile", cfg.Sync.AWSProfile)
	v.SetDefault("sync.aws_region", cfg.Sync.AWSRegion)
}

// statusHook lowercases status names in keyword tables ("DONE" -> done).
func statusHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(model.Status("")) {
		return data, nil
	}
	status, ok := model.ParseStatus(strings.ToLower(strings.TrimSpace(fmt.Sprint(data))))
	if !ok {
		return nil, fmt.Errorf("unknown status %q", data)
	}
	return status, nil
}

func SaveConfig(configPath string, config *model.Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("❌ Failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to encode config: %w", err)
	}

	if err := (OSFileSystem{}).WriteFile(configPath, data); err != nil {
		return fmt.Errorf("❌ Failed to save config: %w", err)
	}
	return nil
}
