package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tripbook/pkg/timeutil"
)

// Config carries the store location and the fixed trip parameters
// every default document is synthesized from.
type Config struct {
	Path        string
	Start       time.Time
	End         time.Time
	Destination string
	Lat         float64
	Lng         float64
}

// LoadConfig reads .tripbook config (yaml implicit) from the current
// directory with TRIPBOOK_* env overrides, falling back to the Taipei
// trip defaults.
func LoadConfig() (*Config, error) {
	viper.SetDefault("path", "~/.tripbook.db")
	viper.SetDefault("start", "2025-12-15")
	viper.SetDefault("end", "2026-01-05")
	viper.SetDefault("destination", "Taipei, Taiwan")
	viper.SetDefault("lat", 25.0330)
	viper.SetDefault("lng", 121.5654)
	viper.SetConfigName(".tripbook") // .yaml is implicit
	viper.SetEnvPrefix("TRIPBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("TRIPBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	start, err := timeutil.ParseDay(viper.GetString("start"))
	if err != nil {
		return nil, err
	}
	end, err := timeutil.ParseDay(viper.GetString("end"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Path:        path,
		Start:       start,
		End:         end,
		Destination: viper.GetString("destination"),
		Lat:         viper.GetFloat64("lat"),
		Lng:         viper.GetFloat64("lng"),
	}, nil
}
