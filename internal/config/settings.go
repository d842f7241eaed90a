package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the CLI knobs that can come from flags, env or a config file.
type Settings struct {
	LogLevel  string `mapstructure:"logLevel"`
	LogPretty bool   `mapstructure:"logPretty"`
	Workers   int    `mapstructure:"workers"`
	Record    bool   `mapstructure:"record"`
	Output    string `mapstructure:"output"`
}

// Load sets defaults and reads npcombat.yaml from the working directory or
// $HOME/.npcombat, or from path when given. A missing default file is fine;
// a missing explicit file is not.
func Load(v *viper.Viper, path string) error {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", true)
	v.SetDefault("workers", 8)
	v.SetDefault("record", false)
	v.SetDefault("output", "")

	v.SetEnvPrefix("NPCOMBAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("npcombat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".npcombat"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %v", err)
	}
	return nil
}

// LoadSettings is Load followed by decoding into Settings.
func LoadSettings(v *viper.Viper, path string) (Settings, error) {
	var s Settings
	if err := Load(v, path); err != nil {
		return s, err
	}
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	return s, nil
}
