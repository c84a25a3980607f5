package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/TAENNIE-create/star-bookmark/journal"
)

// ErrEmptyJournal is returned when the request carries no journal text at all.
var ErrEmptyJournal = errors.New("journal text is empty")

const (
	// Trait tagging on very short entries produces noise, so it is skipped
	// below this length. Clustering and continuity tolerate shorter text.
	minTraitTextRunes   = 50
	minClusterTextRunes = 20

	// At most this many recent dates are offered to the clustering call.
	maxClusterDates = 7

	maxTraitsPerCategory = 2

	reportMaxTokens     = 3000
	taggingMaxTokens    = 1200
	narrativeMaxTokens  = 800
	clusterMaxTokens    = 1500
	continuityMaxTokens = 400
)

// Analyzer runs the full per-entry pipeline: the mood report, trait tracking,
// and constellation assembly. Only the report call is load-bearing; trait and
// constellation steps are best-effort and never fail the request.
type Analyzer struct {
	Completer  Completer
	Model      string
	TraitModel string
	Log        *zap.SugaredLogger
	Tracker    journal.TrackerOptions
}

// Request carries one analysis invocation. PreviousArchive is the opaque blob
// the client stored from the prior response; it round-trips untouched except
// for the fields this call updates.
type Request struct {
	Journals        []string
	DateKey         string
	PreviousArchive string

	// ExistingReport, when set, switches the primary call into comprehensive
	// mode: the model re-reads the whole day instead of just the newest entry.
	ExistingReport *journal.Report

	// RecentJournals maps prior dates to their journal text, for clustering.
	RecentJournals map[string]string

	// PreviousDates are dates that already have stars, for continuity linking.
	PreviousDates []string

	PreviousConstellationName string
}

// Result is the assembled outcome of one analysis call.
type Result struct {
	Report              journal.Report
	Archive             journal.Archive
	Position            journal.StarPosition
	Constellations      []journal.Constellation
	Connections         []journal.StarConnection
	NewlyConfirmed      []journal.ConfirmedTrait
	IncrementedTraitIDs []string
}

// Analyze runs the pipeline. A transport or credential failure on the primary
// report call is returned as an error; a malformed model reply degrades to
// default report content instead of failing.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Result, error) {
	todayText := joinJournals(req.Journals)
	if todayText == "" {
		return Result{}, ErrEmptyJournal
	}
	if req.DateKey == "" {
		return Result{}, errors.New("date key is empty")
	}

	archive := journal.DecodeArchive(req.PreviousArchive)

	report, err := a.runReport(ctx, req, archive.Summary)
	if err != nil {
		return Result{}, err
	}
	archive.Summary = report.Summary

	res := Result{Report: report}

	if runeLen(todayText) >= minTraitTextRunes {
		a.runTraits(ctx, &archive, &res, req.DateKey, todayText)
	} else {
		journal.PruneEvents(&archive, req.DateKey, a.Tracker)
	}

	res.Constellations, res.Connections = a.runConstellations(ctx, req, todayText)

	res.Archive = archive
	res.Position = journal.Position(report.Scores)
	return res, nil
}

func (a *Analyzer) runReport(ctx context.Context, req Request, priorSummary string) (journal.Report, error) {
	instructions := firstAnalysisPrompt
	if req.ExistingReport != nil {
		instructions = comprehensivePrompt
	}

	out, err := a.Completer.Complete(ctx, CompletionRequest{
		Model:           a.Model,
		Instructions:    instructions,
		Input:           buildReportInput(req.Journals, req.DateKey, priorSummary, req.ExistingReport, req.PreviousConstellationName),
		SchemaName:      "journal_report",
		Schema:          reportSchema,
		MaxOutputTokens: reportMaxTokens,
	})
	if err != nil {
		return journal.Report{}, fmt.Errorf("report call: %w", err)
	}

	var raw map[string]any
	if err := decodeModelJSON(out, &raw); err != nil {
		a.logger().Warnw("report output unparseable, using defaults", "error", err, "date", req.DateKey)
		raw = nil
	}
	return journal.NormalizeReport(raw, priorSummary), nil
}

func (a *Analyzer) complete(ctx context.Context, model, instructions, input, name string, schema map[string]any, maxTokens int64, v any) error {
	out, err := a.Completer.Complete(ctx, CompletionRequest{
		Model:           model,
		Instructions:    instructions,
		Input:           input,
		SchemaName:      name,
		Schema:          schema,
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return err
	}
	return decodeModelJSON(out, v)
}

func (a *Analyzer) traitModel() string {
	if a.TraitModel != "" {
		return a.TraitModel
	}
	return a.Model
}

func (a *Analyzer) logger() *zap.SugaredLogger {
	if a.Log != nil {
		return a.Log
	}
	return zap.NewNop().Sugar()
}

func joinJournals(journals []string) string {
	var parts []string
	for _, j := range journals {
		if t := strings.TrimSpace(j); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

func runeLen(s string) int {
	return len([]rune(s))
}
