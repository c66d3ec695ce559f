package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv  string        `mapstructure:"app_env"`
	API     APIConfig     `mapstructure:"api"`
	Cart    CartConfig    `mapstructure:"cart"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig points at the product listing endpoint.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Limit is the fixed page size requested from the listing endpoint.
	Limit int `mapstructure:"limit"`
}

type CartConfig struct {
	// Path is the durable slot the cart is serialized into.
	Path string `mapstructure:"path"`
}

type DisplayConfig struct {
	// CurrencySymbol prefixes every rendered price, e.g. "R" for R19.99.
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File receives the JSON log stream; empty discards logs, since the
	// TUI owns the terminal.
	File string `mapstructure:"file"`
}

// Load reads config.yaml from the user config dir, overlaid with TAMRIN_*
// environment variables. A missing config file is fine, defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TAMRIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "dev")
	v.SetDefault("api.base_url", "https://fakestoreapi.com")
	v.SetDefault("api.limit", 10)
	v.SetDefault("cart.path", filepath.Join(configDir(), "cart.json"))
	v.SetDefault("display.currency_symbol", "R")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tamrin-store")
}
