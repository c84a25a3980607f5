package analysis

import (
	"context"

	"github.com/TAENNIE-create/star-bookmark/journal"
)

func (a *Analyzer) runTraits(ctx context.Context, archive *journal.Archive, res *Result, date, todayText string) {
	var tags traitTagPayload
	err := a.complete(ctx, a.traitModel(), traitTaggingPrompt, buildTraitTaggingInput(todayText),
		"trait_tags", traitTagSchema, taggingMaxTokens, &tags)
	if err != nil {
		a.logger().Warnw("trait tagging skipped", "error", err, "date", date)
		journal.PruneEvents(archive, date, a.Tracker)
		return
	}

	ids := validTraitIDs(tags.Selections)
	applied, due := journal.ApplyTraits(archive, date, ids, a.Tracker)
	res.IncrementedTraitIDs = applied

	for _, id := range due {
		tr, ok := journal.TraitByID(id)
		if !ok {
			continue
		}
		var nar traitNarrativePayload
		err := a.complete(ctx, a.traitModel(), traitNarrativePrompt, buildTraitNarrativeInput(tr, todayText),
			"trait_narrative", traitNarrativeSchema, narrativeMaxTokens, &nar)
		if err != nil {
			// Left unconfirmed; the counter stays over threshold so the
			// next analysis retries the narrative.
			a.logger().Warnw("trait narrative failed", "error", err, "trait", id)
			continue
		}
		ct := journal.ConfirmedTrait{
			ID:          tr.ID,
			Category:    tr.Category,
			Label:       tr.Label,
			Rationale:   nar.Rationale,
			Opening:     nar.Opening,
			Body:        nar.Body,
			Closing:     nar.Closing,
			ConfirmedAt: date,
		}
		if journal.ConfirmTrait(archive, ct) {
			res.NewlyConfirmed = append(res.NewlyConfirmed, ct)
		}
	}
}

// validTraitIDs flattens model selections, keeping only catalog IDs whose
// category matches the selection bucket. The per-category cap is counted
// across all buckets, so repeated buckets for one category cannot exceed it.
func validTraitIDs(selections []traitSelection) []string {
	var ids []string
	seen := make(map[string]struct{})
	perCategory := make(map[string]int)
	for _, sel := range selections {
		for _, id := range sel.TraitIDs {
			tr, ok := journal.TraitByID(id)
			if !ok || tr.Category != sel.Category {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			if perCategory[tr.Category] >= maxTraitsPerCategory {
				continue
			}
			seen[id] = struct{}{}
			perCategory[tr.Category]++
			ids = append(ids, id)
		}
	}
	return ids
}
