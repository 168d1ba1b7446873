package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Data  DataConfig
	Owner OwnerConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// DataConfig holds filesystem locations.
type DataConfig struct {
	Dir     string
	Catalog string
}

// OwnerConfig identifies whose portfolio this is.
type OwnerConfig struct {
	Name    string
	Tagline string
	Email   string
	Profile string
}

// Load reads configuration from file and env. Env var overrides use prefix FOLIO_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "folio")

	// default values
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("data.dir", dataDir)
	v.SetDefault("data.catalog", filepath.Join(dataDir, "catalog.yaml"))
	v.SetDefault("owner.name", "Adel Varga")
	v.SetDefault("owner.tagline", "Backend engineer who keeps ending up in the terminal")
	v.SetDefault("owner.email", "adel@adelv.dev")
	v.SetDefault("owner.profile", "https://github.com/adelv")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FOLIO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "folio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = NormalizeTheme(c.UI.Theme)
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the theme commands so the chosen theme survives restarts.
func Save(cfg Config) error {
	path := os.Getenv("FOLIO_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "folio", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", NormalizeTheme(cfg.UI.Theme))
	v.Set("data.dir", cfg.Data.Dir)
	v.Set("data.catalog", cfg.Data.Catalog)
	v.Set("owner.name", cfg.Owner.Name)
	v.Set("owner.tagline", cfg.Owner.Tagline)
	v.Set("owner.email", cfg.Owner.Email)
	v.Set("owner.profile", cfg.Owner.Profile)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NormalizeTheme maps any theme value onto the two supported themes,
// defaulting to dark.
func NormalizeTheme(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), "light") {
		return "light"
	}
	return "dark"
}
