package analysis

import (
	"context"
	"sort"
	"strings"

	"github.com/TAENNIE-create/star-bookmark/journal"
)

func (a *Analyzer) runConstellations(ctx context.Context, req Request, todayText string) ([]journal.Constellation, []journal.StarConnection) {
	groups := a.runClustering(ctx, req)
	links := a.runContinuity(ctx, req, todayText)

	constellations := journal.AssembleConstellations(groups, links, req.DateKey)
	connections := journal.Connections(req.DateKey, links)
	return constellations, connections
}

func (a *Analyzer) runClustering(ctx context.Context, req Request) []journal.ClusterGroup {
	candidates := clusterCandidates(req.RecentJournals, req.DateKey)
	if len(candidates) < 2 {
		return nil
	}
	subset := make(map[string]string, len(candidates))
	for _, d := range candidates {
		subset[d] = req.RecentJournals[d]
	}

	var out clusterPayload
	err := a.complete(ctx, a.Model, clusteringPrompt, buildClusteringInput(subset),
		"journal_clusters", clusterSchema, clusterMaxTokens, &out)
	if err != nil {
		a.logger().Warnw("clustering skipped", "error", err, "date", req.DateKey)
		return nil
	}

	raw := make([]journal.RawGroup, 0, len(out.Groups))
	for _, g := range out.Groups {
		raw = append(raw, journal.RawGroup{
			Name:    g.Name,
			Meaning: g.Meaning,
			Style:   g.ConnectionStyle,
			Dates:   g.Dates,
		})
	}
	return journal.ValidateGroups(raw, candidates)
}

func (a *Analyzer) runContinuity(ctx context.Context, req Request, todayText string) []string {
	if len(req.PreviousDates) == 0 || runeLen(todayText) < minClusterTextRunes {
		return nil
	}

	var out continuityPayload
	err := a.complete(ctx, a.Model, continuityPrompt, buildContinuityInput(todayText, req.PreviousDates),
		"journal_continuity", continuitySchema, continuityMaxTokens, &out)
	if err != nil {
		a.logger().Warnw("continuity skipped", "error", err, "date", req.DateKey)
		return nil
	}
	return journal.ValidateLinks(out.Dates, req.PreviousDates)
}

// clusterCandidates picks the most recent dates with enough text, today
// excluded, newest first, capped.
func clusterCandidates(recent map[string]string, today string) []string {
	var dates []string
	for d, text := range recent {
		if d == today {
			continue
		}
		if runeLen(strings.TrimSpace(text)) < minClusterTextRunes {
			continue
		}
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > maxClusterDates {
		dates = dates[:maxClusterDates]
	}
	return dates
}
