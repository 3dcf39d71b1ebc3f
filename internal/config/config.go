// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/idilsaglam/todowidget/internal/model"
	"github.com/idilsaglam/todowidget/internal/ui"
)

// Default values.
const (
	DefaultSeedTitle   = "Sample TODO"
	DefaultEmptyText   = "No TODOs"
	DefaultPlaceholder = "New item title..."
	DefaultCharLimit   = 200
	DefaultTheme       = "classic"
	DefaultLocale      = "en"
	DefaultLogLevel    = "info"
)

// Config holds the full configuration for the widget.
type Config struct {
	Sort        model.SortOrder `toml:"sort"`
	Theme       string          `toml:"theme"`
	Locale      string          `toml:"locale"`
	SeedTitle   string          `toml:"seed_title"`
	EmptyText   string          `toml:"empty_text"`
	Placeholder string          `toml:"placeholder"`
	CharLimit   int             `toml:"char_limit"`
	LogLevel    string          `toml:"log_level"`
	LogFile     string          `toml:"log_file"`

	// Path of the file the config was read from, if any.
	File string `toml:"-"`
}

func Default() *Config {
	return &Config{
		Sort:        model.ByID,
		Theme:       DefaultTheme,
		Locale:      DefaultLocale,
		SeedTitle:   DefaultSeedTitle,
		EmptyText:   DefaultEmptyText,
		Placeholder: DefaultPlaceholder,
		CharLimit:   DefaultCharLimit,
		LogLevel:    DefaultLogLevel,
	}
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (--config, else $XDG_CONFIG_HOME/todo/config.toml)
// 3. Environment variables
// 4. CLI flags
// It returns the arguments left after flag parsing.
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := Default()

	var (
		configPath = fs.String("config", "", "path to a TOML config file")
		sortFlag   = fs.String("sort", "", "sort order: id or alpha")
		themeFlag  = fs.String("theme", "", "theme: classic, neon or mono")
		localeFlag = fs.String("locale", "", "BCP 47 locale used for alphabetical order")
		seedFlag   = fs.String("seed", "", "title of the item added at startup")
		noSeed     = fs.Bool("no-seed", false, "start with an empty list")
		levelFlag  = fs.String("log-level", "", "log level: debug, info, warn, error")
		logFlag    = fs.String("log-file", "", "write logs to this file")
		noColor    = fs.Bool("no-color", false, "disable colors")
	)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("parsing flags: %w", err)
	}

	path := *configPath
	if path == "" {
		path = findUserConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, nil, err
	}

	if *sortFlag != "" {
		o, err := model.ParseSortOrder(*sortFlag)
		if err != nil {
			return nil, nil, err
		}
		cfg.Sort = o
	}
	setIf(&cfg.Theme, *themeFlag)
	setIf(&cfg.Locale, *localeFlag)
	setIf(&cfg.SeedTitle, *seedFlag)
	setIf(&cfg.LogLevel, *levelFlag)
	setIf(&cfg.LogFile, *logFlag)
	if *noSeed {
		cfg.SeedTitle = ""
	}
	if *noColor {
		ui.DisableColor()
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	cfg.File = path
	return nil
}

func findUserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		d, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		dir = d
	}
	p := filepath.Join(dir, "todo", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_SORT"); v != "" {
		o, err := model.ParseSortOrder(v)
		if err != nil {
			return fmt.Errorf("TODO_SORT: %w", err)
		}
		cfg.Sort = o
	}
	setIf(&cfg.Theme, os.Getenv("TODO_THEME"))
	setIf(&cfg.Locale, os.Getenv("TODO_LOCALE"))
	setIf(&cfg.LogLevel, os.Getenv("TODO_LOG_LEVEL"))
	setIf(&cfg.LogFile, os.Getenv("TODO_LOG_FILE"))
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !slices.Contains(ui.ThemeNames(), strings.ToLower(c.Theme)) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", c.CharLimit)
	}
	return nil
}

// Language parses the configured locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
