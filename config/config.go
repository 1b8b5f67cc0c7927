// Package config loads config.ini and applies environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"cipher-backend/models"
)

const (
	DefaultPort          = "8080"
	DefaultMaxTextLength = 1 << 20
)

// Default returns the configuration used when no file is present.
func Default() *models.Config {
	return &models.Config{
		Server: models.ServerConfig{
			Port:          DefaultPort,
			Mode:          "release",
			AllowOrigins:  []string{"http://localhost:3000"},
			MaxTextLength: DefaultMaxTextLength,
		},
		Log: models.LogConfig{
			Level: "info",
		},
	}
}

// Load reads fileName on top of the defaults. A missing file is not an error.
func Load(fileName string) (*models.Config, error) {
	cfg := Default()

	iniFile, err := ini.Load(fileName)
	switch {
	case err == nil:
		if err := iniFile.MapTo(cfg); err != nil {
			return nil, fmt.Errorf("failed to map %s: %w", fileName, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to load %s: %w", fileName, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadBytes parses ini content directly, used for embedded or test configs.
func LoadBytes(content []byte) (*models.Config, error) {
	cfg := Default()
	iniFile, err := ini.Load(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("failed to map config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *models.Config) {
	overrideFromEnv(&cfg.Server.Port, "PORT")
	overrideFromEnv(&cfg.Log.Level, "LOG_LEVEL")
	overrideFromEnvInt(&cfg.Server.MaxTextLength, "MAX_TEXT_LENGTH")
	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		cfg.Server.AllowOrigins = strings.Split(origins, ",")
	}
	if cfg.Server.MaxTextLength <= 0 {
		cfg.Server.MaxTextLength = DefaultMaxTextLength
	}
	cfg.Server.AllowOrigins = cleanOrigins(cfg.Server.AllowOrigins)
}

// cleanOrigins drops blank entries; cors refuses an empty origin list so the
// default is restored when nothing is left.
func cleanOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 {
		return Default().Server.AllowOrigins
	}
	return cleaned
}

func overrideFromEnv(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
