package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	LoginPath      string
	RegisterPath   string
	RequestTimeout time.Duration
	LogLevel       string
	LogPath        string
}

func Default() Config {
	dir := filepath.Join(userConfigDir(), "eventengine")
	return Config{
		APIBaseURL:   "http://127.0.0.1:8000",
		LoginPath:    "/user/login",
		RegisterPath: "/user/register",
		LogLevel:     "info",
		LogPath:      filepath.Join(dir, "debug.log"),
	}
}

// Load reads the dotenv file at path, if it exists, and applies EVENTENGINE_*
// environment overrides on top of Default. Variables already present in the
// environment win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := Default()
	cfg.APIBaseURL = strings.TrimRight(getEnv("EVENTENGINE_API_URL", cfg.APIBaseURL), "/")
	cfg.LoginPath = getEnv("EVENTENGINE_LOGIN_PATH", cfg.LoginPath)
	cfg.RegisterPath = getEnv("EVENTENGINE_REGISTER_PATH", cfg.RegisterPath)
	cfg.LogLevel = getEnv("EVENTENGINE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogPath = getEnv("EVENTENGINE_LOG_PATH", cfg.LogPath)

	if raw := getEnv("EVENTENGINE_REQUEST_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parsing EVENTENGINE_REQUEST_TIMEOUT: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("EVENTENGINE_REQUEST_TIMEOUT must not be negative, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

// LoginURL is the absolute login endpoint.
func (c Config) LoginURL() string {
	return c.APIBaseURL + c.LoginPath
}

// RegisterURL is the absolute registration endpoint.
func (c Config) RegisterURL() string {
	return c.APIBaseURL + c.RegisterPath
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
