package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Addr        string
	Model       string
	TraitModel  string
	APIKey      string
	LogMode     string
	CORSOrigins string
}

func defaultConfig() Config {
	return Config{
		Addr:    ":8787",
		Model:   "gpt-5-mini",
		LogMode: "prod",
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address (host:port)")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model for the main analysis call (e.g. gpt-5-mini)")
	fs.StringVar(&cfg.TraitModel, "trait-model", cfg.TraitModel, "OpenAI model override for trait tagging/narratives (default: -model)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.StringVar(&cfg.LogMode, "log-mode", cfg.LogMode, "Logger mode: dev or prod")
	fs.StringVar(&cfg.CORSOrigins, "cors-origins", "", "Comma-separated CORS allow-list (empty allows all origins)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TraitModel == "" {
		cfg.TraitModel = cfg.Model
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("-addr is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("-model is required")
	}
	if c.LogMode != "dev" && c.LogMode != "prod" {
		return fmt.Errorf("-log-mode must be dev or prod, got %q", c.LogMode)
	}
	return nil
}

func (c *Config) Origins() []string {
	if strings.TrimSpace(c.CORSOrigins) == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
