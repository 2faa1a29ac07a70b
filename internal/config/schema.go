package config

import "path/filepath"

// Config is the top-level gamectl configuration.
type Config struct {
	DataDir      string         `mapstructure:"data_dir" yaml:"data_dir" validate:"required"`
	GamesFile    string         `mapstructure:"games_file" yaml:"games_file" validate:"required,nefield=WishlistFile"`
	WishlistFile string         `mapstructure:"wishlist_file" yaml:"wishlist_file" validate:"required"`
	Journal      JournalConfig  `mapstructure:"journal" yaml:"journal"`
	Purchase     PurchaseConfig `mapstructure:"purchase" yaml:"purchase"`
	Log          LogConfig      `mapstructure:"log" yaml:"log"`
}

// JournalConfig holds settings for the per-game daily logs.
type JournalConfig struct {
	Dir    string `mapstructure:"dir" yaml:"dir,omitempty"` // defaults to data_dir
	Suffix string `mapstructure:"suffix" yaml:"suffix" validate:"required,excludesall=/\\"`
}

// PurchaseConfig controls the wishlist → library move.
type PurchaseConfig struct {
	// Persist saves both data files as part of the move instead of waiting
	// for the next explicit save.
	Persist bool `mapstructure:"persist" yaml:"persist"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error off disabled"`
	File       string `mapstructure:"file" yaml:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// GamesPath returns the played-games file path. Relative file names resolve
// against DataDir.
func (c *Config) GamesPath() string {
	return c.resolve(c.GamesFile, "games.csv")
}

// WishlistPath returns the wishlist file path.
func (c *Config) WishlistPath() string {
	return c.resolve(c.WishlistFile, "wishlist.csv")
}

// StatePath returns the path of the small state file kept next to the data.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "state.yml")
}

// EffectiveJournalDir returns the log directory, falling back to DataDir.
func (j *JournalConfig) EffectiveJournalDir(dataDir string) string {
	if j.Dir != "" {
		return ExpandHome(j.Dir)
	}
	return dataDir
}

func (c *Config) resolve(name, def string) string {
	if name == "" {
		name = def
	}
	name = ExpandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
