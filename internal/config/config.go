package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Wall struct {
		TTL string `yaml:"ttl"`
	} `yaml:"wall"`
	Admin struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"admin"`
	Blob struct {
		Dir string `yaml:"dir"`
	} `yaml:"blob"`
}

// Load reads YAML config from path. Secrets may be supplied via env
// instead of the file: ADMIN_JWT_SECRET and REDIS_PASSWORD win when set.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if secret := os.Getenv("ADMIN_JWT_SECRET"); secret != "" {
		cfg.Admin.JWTSecret = secret
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
