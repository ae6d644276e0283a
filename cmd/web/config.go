package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the web binary. Values come from
// built-in defaults, then an optional YAML file (COURSE_WEB_CONFIG), then
// environment overrides, in that order.
type Config struct {
	Addr         string `yaml:"addr"`
	APIBaseURL   string `yaml:"api_base_url"`
	DefaultSlug  string `yaml:"default_slug"`
	DefaultLang  string `yaml:"default_lang"`
	TemplatesDir string `yaml:"templates_dir"`
	PublicDir    string `yaml:"public_dir"`
	LocalesDir   string `yaml:"locales_dir"`
	Dev          bool   `yaml:"dev"`
	Warmup       bool   `yaml:"warmup"`
}

func defaultConfig() Config {
	return Config{
		Addr:         ":8080",
		APIBaseURL:   "https://api.10minuteschool.com",
		DefaultSlug:  "ielts-course",
		DefaultLang:  "en",
		TemplatesDir: "templates",
		PublicDir:    "public",
		LocalesDir:   "locales",
		Warmup:       true,
	}
}

func loadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("COURSE_WEB_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Port resolution: prefer COURSE_WEB_PORT, then Cloud Run's PORT
	if port := firstEnv("COURSE_WEB_PORT", "PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("COURSE_WEB_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("COURSE_WEB_DEFAULT_SLUG"); v != "" {
		cfg.DefaultSlug = v
	}
	if os.Getenv("COURSE_WEB_DEV") != "" || os.Getenv("DEV") != "" {
		cfg.Dev = true
	}
	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
