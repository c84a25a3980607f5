package main

import (
	"flag"
	"io"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Addr != ":8787" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.TraitModel != cfg.Model {
		t.Fatalf("TraitModel = %q, want fallback to Model %q", cfg.TraitModel, cfg.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags(newFlagSet(), []string{
		"-addr", ":9000",
		"-model", "gpt-5",
		"-trait-model", "gpt-5-mini",
		"-log-mode", "dev",
		"-cors-origins", "https://star.example.com, http://localhost:5173,",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.TraitModel != "gpt-5-mini" {
		t.Fatalf("TraitModel = %q", cfg.TraitModel)
	}
	origins := cfg.Origins()
	if len(origins) != 2 || origins[0] != "https://star.example.com" || origins[1] != "http://localhost:5173" {
		t.Fatalf("Origins = %v", origins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []Config{
		{Addr: "", Model: "gpt-5-mini", LogMode: "prod"},
		{Addr: ":8787", Model: "  ", LogMode: "prod"},
		{Addr: ":8787", Model: "gpt-5-mini", LogMode: "verbose"},
	}
	for i, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
