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

	cfg, err := parseFlags(newFlagSet(), []string{"-text", "오늘의 기록"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Model != "gpt-5-mini" || cfg.TraitModel != "gpt-5-mini" {
		t.Fatalf("models = %q / %q", cfg.Model, cfg.TraitModel)
	}
	if cfg.Date == "" {
		t.Fatal("date default missing")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateInputRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"no input", Config{Model: "gpt-5-mini", Date: "2026-08-30"}},
		{"both inputs", Config{Text: "기록", JournalPath: "a.txt", Model: "gpt-5-mini", Date: "2026-08-30"}},
		{"bad date", Config{Text: "기록", Model: "gpt-5-mini", Date: "08/30/2026"}},
		{"no model", Config{Text: "기록", Model: "", Date: "2026-08-30"}},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestPreviousDatesExcludesToday(t *testing.T) {
	t.Parallel()

	recent := map[string]string{
		"2026-08-28": "긴 기록",
		"2026-08-29": "   ",
		"2026-08-30": "오늘",
	}
	got := previousDates(recent, "2026-08-30")
	if len(got) != 1 || got[0] != "2026-08-28" {
		t.Fatalf("previousDates = %v", got)
	}
}
