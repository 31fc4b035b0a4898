package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration, loaded from a YAML file with
// environment-variable overrides for deployment-specific values.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	I18n struct {
		MessagesDir     string `yaml:"messagesDir"`
		DefaultLanguage string `yaml:"defaultLanguage"`
	} `yaml:"i18n"`

	Cache struct {
		UserCapacity        int `yaml:"userCapacity"`
		TranslationCapacity int `yaml:"translationCapacity"`
	} `yaml:"cache"`
}

// Default capacities match the facade sizing: translation volumes are
// higher-cardinality than identities (many keys x few languages).
const (
	DefaultUserCacheCapacity        = 1000
	DefaultTranslationCacheCapacity = 5000
)

// Load reads the YAML config at path, applies defaults for anything
// missing, then applies environment overrides. A missing file is not an
// error; defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8008
	}
	if c.Database.Path == "" {
		c.Database.Path = "user-directory.db"
	}
	if c.I18n.MessagesDir == "" {
		c.I18n.MessagesDir = "messages"
	}
	if c.I18n.DefaultLanguage == "" {
		c.I18n.DefaultLanguage = "en"
	}
	if c.Cache.UserCapacity == 0 {
		c.Cache.UserCapacity = DefaultUserCacheCapacity
	}
	if c.Cache.TranslationCapacity == 0 {
		c.Cache.TranslationCapacity = DefaultTranslationCacheCapacity
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("MESSAGES_DIR"); v != "" {
		c.I18n.MessagesDir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Cache.UserCapacity < 1 {
		return fmt.Errorf("invalid user cache capacity %d", c.Cache.UserCapacity)
	}
	if c.Cache.TranslationCapacity < 1 {
		return fmt.Errorf("invalid translation cache capacity %d", c.Cache.TranslationCapacity)
	}
	return nil
}

// Addr returns the listen address in the form expected by gin.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
