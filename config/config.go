package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the service and client settings
type Config struct {
	Port           int           `yaml:"port"`
	LogLevel       string        `yaml:"log_level"`
	FontPath       string        `yaml:"font_path"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ServiceURL     string        `yaml:"service_url"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	ClientTimeout  time.Duration `yaml:"client_timeout"`
}

func defaults() Config {
	return Config{
		Port:           8000,
		LogLevel:       "INFO",
		FontPath:       "",
		AllowedOrigins: []string{"*"},
		ServiceURL:     "http://localhost:8000",
		MaxBodyBytes:   64 << 10,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		ClientTimeout:  20 * time.Second,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file at
// path (skipped when path is empty or the file does not exist), then
// environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT: %w", err)
		}
		cfg.Port = port
	}
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.FontPath = getEnv("FONT_PATH", cfg.FontPath)
	cfg.ServiceURL = getEnv("SERVICE_URL", cfg.ServiceURL)
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}

	for key, dst := range map[string]*time.Duration{
		"READ_TIMEOUT":   &cfg.ReadTimeout,
		"WRITE_TIMEOUT":  &cfg.WriteTimeout,
		"CLIENT_TIMEOUT": &cfg.ClientTimeout,
	} {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = d
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
