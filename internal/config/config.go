package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gamectl", "config.yml")
}

// Path resolves the config file location: an explicit path wins, then
// GAMECTL_CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return ExpandHome(explicit)
	}
	if p := os.Getenv("GAMECTL_CONFIG"); p != "" {
		return ExpandHome(p)
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file is fine: defaults
// apply until `gamectl init` writes one.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("games_file", "games.csv")
	v.SetDefault("wishlist_file", "wishlist.csv")
	v.SetDefault("journal.dir", "")
	v.SetDefault("journal.suffix", "_log.txt")
	v.SetDefault("purchase.persist", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", false)

	v.SetEnvPrefix("GAMECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path(path))

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DataDir = ExpandHome(cfg.DataDir)
	cfg.Log.File = ExpandHome(cfg.Log.File)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration Load produces when nothing is set.
func Default() *Config {
	return &Config{
		DataDir:      defaultDataDir(),
		GamesFile:    "games.csv",
		WishlistFile: "wishlist.csv",
		Journal:      JournalConfig{Suffix: "_log.txt"},
		Purchase:     PurchaseConfig{Persist: true},
		Log:          LogConfig{Level: "warn", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 30},
	}
}

// Save writes the config to path (see Path for resolution).
func Save(path string, cfg *Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "gamectl")
}
