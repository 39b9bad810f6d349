package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"jot/internal/notes"
)

const (
	AppName               = "jot"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "jot.db"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Delete     string `toml:"delete"`
	Edit       string `toml:"edit"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Save       string `toml:"save"`
	NextFilter string `toml:"next_filter"`
	PrevFilter string `toml:"prev_filter"`
}

type Config struct {
	DBPath          string `toml:"db_path"`
	StorageKey      string `toml:"storage_key"`
	DefaultCategory string `toml:"default_category"`
	LogPath         string `toml:"log_path"`
	LogLevel        string `toml:"log_level"`
	Keys            Keymap `toml:"keys"`
}

// ResolveConfigPath returns $XDG_CONFIG_HOME/jot/config.toml, falling back to
// ~/.config/jot/config.toml, then to the working directory.
func ResolveConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, DefaultConfigFileName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

// LoadOrCreate reads path, writing the defaults there first if it does not
// exist. Relative db and log paths are resolved against the config directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.resolve(filepath.Dir(path)), nil
}

func (c Config) resolve(dir string) Config {
	if c.DBPath == "" {
		c.DBPath = DefaultDBName
	}
	if !filepath.IsAbs(c.DBPath) && !strings.HasPrefix(c.DBPath, "file:") {
		c.DBPath = filepath.Join(dir, c.DBPath)
	}
	if c.LogPath != "" && !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(dir, c.LogPath)
	}
	if c.StorageKey == "" {
		c.StorageKey = notes.DefaultKey
	}
	if _, err := notes.ParseCategory(c.DefaultCategory); err != nil {
		c.DefaultCategory = string(notes.Personal)
	}
	c.Keys = c.Keys.withDefaults(defaultConfig().Keys)
	return c
}

// Category returns the add form's preselected category.
func (c Config) Category() notes.Category {
	cat, err := notes.ParseCategory(c.DefaultCategory)
	if err != nil {
		return notes.Personal
	}
	return cat
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (k Keymap) withDefaults(d Keymap) Keymap {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Add, d.Add)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Delete, d.Delete)
	fill(&k.Edit, d.Edit)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
	fill(&k.Save, d.Save)
	fill(&k.NextFilter, d.NextFilter)
	fill(&k.PrevFilter, d.PrevFilter)
	return k
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:          DefaultDBName,
		StorageKey:      notes.DefaultKey,
		DefaultCategory: string(notes.Personal),
		LogLevel:        "info",
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Delete:     "d",
			Edit:       "e",
			Confirm:    "enter",
			Cancel:     "esc",
			Save:       "ctrl+s",
			NextFilter: "tab",
			PrevFilter: "shift+tab",
		},
	}
}
