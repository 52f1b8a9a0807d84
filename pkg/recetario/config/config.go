// Package config loads the provider export settings. The provider workbook
// requires a handful of catalog values (category, difficulty, accessory,
// preparation times) that the recipe sources do not carry, so they live in
// configuration with defaults matching the current catalog submission.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Catalog defaults for the provider export. Times default to zero because
// the provider fills them in during catalog review.
const (
	DefaultCategory      = "Platillos Mexicanos"
	DefaultDifficulty    = "fácil"
	DefaultAccessoryNo   = 5
	DefaultAccessoryName = "Cuchilla"
)

// Config is the root configuration document.
type Config struct {
	Export ExportConfig `mapstructure:"export"`
}

// ExportConfig holds the values stamped onto every recipe list row.
type ExportConfig struct {
	Category      string `mapstructure:"category"`
	Difficulty    string `mapstructure:"difficulty"`
	AccessoryNo   int    `mapstructure:"accessory_no"`
	AccessoryName string `mapstructure:"accessory_name"`
	PrepHours     int    `mapstructure:"prep_hours"`
	PrepMinutes   int    `mapstructure:"prep_minutes"`
	CookHours     int    `mapstructure:"cook_hours"`
	CookMinutes   int    `mapstructure:"cook_minutes"`
	RestHours     int    `mapstructure:"rest_hours"`
	RestMinutes   int    `mapstructure:"rest_minutes"`
}

// SetDefaults registers the catalog defaults on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("export.category", DefaultCategory)
	v.SetDefault("export.difficulty", DefaultDifficulty)
	v.SetDefault("export.accessory_no", DefaultAccessoryNo)
	v.SetDefault("export.accessory_name", DefaultAccessoryName)
	v.SetDefault("export.prep_hours", 0)
	v.SetDefault("export.prep_minutes", 0)
	v.SetDefault("export.cook_hours", 0)
	v.SetDefault("export.cook_minutes", 0)
	v.SetDefault("export.rest_hours", 0)
	v.SetDefault("export.rest_minutes", 0)
}

// Load reads configuration in precedence order: defaults, then an optional
// recetario.yaml in the working directory (or the explicit file at path when
// non-empty), then RECETARIO_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("RECETARIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("recetario")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the catalog defaults without consulting files or the
// environment.
func Default() *Config {
	return &Config{Export: ExportConfig{
		Category:      DefaultCategory,
		Difficulty:    DefaultDifficulty,
		AccessoryNo:   DefaultAccessoryNo,
		AccessoryName: DefaultAccessoryName,
	}}
}
