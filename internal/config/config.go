package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName     string `yaml:"app_name"`
	ServerPort  string `yaml:"server_port"`
	DatabaseURL string `yaml:"database_url"`
	Debug       bool   `yaml:"debug"`
	DefaultLang string `yaml:"default_lang"`
	MaxPageSize int    `yaml:"max_page_size"`
	TemplateDir string `yaml:"template_dir"`
}

// Load reads configuration from environment variables, then overlays the
// YAML file named by CONFIG_FILE when set.
func Load() (*Config, error) {
	cfg := &Config{
		AppName:     getEnv("APP_NAME", "Dashboard Analytics"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "./dashboard.db"),
		Debug:       getEnv("DEBUG", "false") == "true",
		DefaultLang: getEnv("DEFAULT_LANG", "en"),
		MaxPageSize: getEnvInt("MAX_PAGE_SIZE", 500),
		TemplateDir: getEnv("TEMPLATE_DIR", "web/templates"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
