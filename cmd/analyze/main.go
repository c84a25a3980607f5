// Command analyze runs one journal analysis from the command line, without
// the HTTP server. Useful for prompt iteration and for inspecting the raw
// pipeline output.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/TAENNIE-create/star-bookmark/analysis"
	"github.com/TAENNIE-create/star-bookmark/fileutils"
	"github.com/TAENNIE-create/star-bookmark/journal"
)

type Config struct {
	Text        string
	JournalPath string
	ArchivePath string
	Date        string
	RecentPath  string
	OutPath     string
	Model       string
	TraitModel  string
	APIKey      string
	Pretty      bool
}

func defaultConfig() Config {
	return Config{
		Model: "gpt-5-mini",
		Date:  time.Now().Format("2006-01-02"),
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Text, "text", "", "Journal text to analyze (alternative to -journal)")
	fs.StringVar(&cfg.JournalPath, "journal", "", "Path to a UTF-8 text file holding the journal entry")
	fs.StringVar(&cfg.ArchivePath, "archive", "", "Optional path to a file holding the previous identity archive blob")
	fs.StringVar(&cfg.Date, "date", cfg.Date, "Date key for the entry (YYYY-MM-DD, default today)")
	fs.StringVar(&cfg.RecentPath, "recent", "", "Optional path to a JSON file mapping recent dates to journal text")
	fs.StringVar(&cfg.OutPath, "out", "", "Output path for the result JSON (default stdout)")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model for the main analysis call")
	fs.StringVar(&cfg.TraitModel, "trait-model", "", "OpenAI model override for trait calls (default: -model)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the result JSON")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TraitModel == "" {
		cfg.TraitModel = cfg.Model
	}
	if cfg.JournalPath != "" {
		cfg.JournalPath = filepath.Clean(cfg.JournalPath)
	}
	if cfg.ArchivePath != "" {
		cfg.ArchivePath = filepath.Clean(cfg.ArchivePath)
	}
	if cfg.RecentPath != "" {
		cfg.RecentPath = filepath.Clean(cfg.RecentPath)
	}
	if cfg.OutPath != "" {
		cfg.OutPath = filepath.Clean(cfg.OutPath)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Text) == "" && c.JournalPath == "" {
		return errors.New("one of -text or -journal is required")
	}
	if strings.TrimSpace(c.Text) != "" && c.JournalPath != "" {
		return errors.New("-text and -journal are mutually exclusive")
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return fmt.Errorf("-date must be YYYY-MM-DD, got %q", c.Date)
	}
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("-model is required")
	}
	return nil
}

// resultFile is the on-disk shape of one CLI run.
type resultFile struct {
	Date            string                   `json:"date"`
	Report          journal.Report           `json:"report"`
	StarPosition    journal.StarPosition     `json:"starPosition"`
	IdentityArchive string                   `json:"identityArchive"`
	Constellations  []journal.Constellation  `json:"constellations"`
	StarConnections []journal.StarConnection `json:"starConnections"`
	NewlyConfirmed  []journal.ConfirmedTrait `json:"newlyConfirmedTraits"`
	Incremented     []string                 `json:"incrementedTraitIds"`
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "missing OPENAI_API_KEY (or pass -api-key)")
		os.Exit(2)
	}

	text := cfg.Text
	if cfg.JournalPath != "" {
		b, err := os.ReadFile(cfg.JournalPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		text = string(b)
	}

	var previousArchive string
	if cfg.ArchivePath != "" && fileutils.FileExists(cfg.ArchivePath) {
		b, err := os.ReadFile(cfg.ArchivePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		previousArchive = string(b)
	}

	var recent map[string]string
	if cfg.RecentPath != "" {
		if err := fileutils.ReadJSONFile(cfg.RecentPath, &recent); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	client := openai.NewClient(option.WithAPIKey(apiKey))
	analyzer := &analysis.Analyzer{
		Completer:  &analysis.OpenAICompleter{Client: &client},
		Model:      cfg.Model,
		TraitModel: cfg.TraitModel,
		Log:        log.Sugar(),
	}

	res, err := analyzer.Analyze(ctx, analysis.Request{
		Journals:        []string{text},
		DateKey:         cfg.Date,
		PreviousArchive: previousArchive,
		RecentJournals:  recent,
		PreviousDates:   previousDates(recent, cfg.Date),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	out := resultFile{
		Date:            cfg.Date,
		Report:          res.Report,
		StarPosition:    res.Position,
		IdentityArchive: res.Archive.Encode(),
		Constellations:  res.Constellations,
		StarConnections: res.Connections,
		NewlyConfirmed:  res.NewlyConfirmed,
		Incremented:     res.IncrementedTraitIDs,
	}

	if cfg.OutPath == "" {
		var b []byte
		if cfg.Pretty {
			b, err = json.MarshalIndent(out, "", "  ")
		} else {
			b, err = json.Marshal(out)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, string(b))
		return
	}

	if err := fileutils.WriteJSONFileAtomic(cfg.OutPath, out, cfg.Pretty); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if cfg.ArchivePath != "" {
		if err := fileutils.WriteFileAtomicSameDir(cfg.ArchivePath, []byte(out.IdentityArchive), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stdout, "date=%s out=%s confirmed=%d incremented=%d constellations=%d\n",
		cfg.Date, cfg.OutPath, len(out.NewlyConfirmed), len(out.Incremented), len(out.Constellations))
}

func previousDates(recent map[string]string, today string) []string {
	var dates []string
	for d := range recent {
		if d != today && strings.TrimSpace(recent[d]) != "" {
			dates = append(dates, d)
		}
	}
	return dates
}
