package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DirEnv overrides the config directory, mostly for tests and scripts.
const DirEnv = "GYMLOG_HOME"

const devConnectionString = "file:./local.db"

type Config struct {
	DB       DBConfig       `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Calendar CalendarConfig `toml:"calendar"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Empty means stderr.
	JSON  bool   `toml:"json"`
}

type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

func Default() *Config {
	dsn := "file:gymlog.db"
	if dir, err := Dir(); err == nil {
		dsn = "file:" + filepath.Join(dir, "gymlog.db")
	}
	return &Config{
		DB:       DBConfig{ConnectionString: dsn},
		Log:      LogConfig{Level: "warn"},
		Calendar: CalendarConfig{Timezone: "Local"},
	}
}

// Dir returns the directory holding the config file, the draft session and
// the default database.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gymlog"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies .env and environment overrides.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// A missing .env is fine; the shell environment still applies.
	_ = godotenv.Load()
	cfg.applyEnv()

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		c.DB.ConnectionString = withAuthToken(url, os.Getenv("TURSO_AUTH_TOKEN"))
	}
	if os.Getenv("DEV_MODE") == "true" {
		c.DB.ConnectionString = devConnectionString
	}
}

func withAuthToken(url, token string) string {
	if token == "" || strings.Contains(url, "authToken=") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "authToken=" + token
}

// Location resolves the calendar timezone used for day and week boundaries.
func (c *Config) Location() (*time.Location, error) {
	switch c.Calendar.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Calendar.Timezone, err)
	}
	return loc, nil
}
