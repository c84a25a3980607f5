package journal

import (
	"encoding/json"
	"strings"
)

// Archive is the caller-persisted identity record for one user. It round-trips
// through the client as an opaque string blob; the server never stores it.
type Archive struct {
	// Summary is the cumulative free-text narrative of the user's self-understanding.
	Summary string `json:"summary"`

	// TraitCounts maps trait ID -> occurrence count. A counter decremented to 0 is removed.
	TraitCounts map[string]int `json:"traitCounts"`

	// ConfirmedTraits holds traits promoted past the confirmation threshold, unique by ID.
	ConfirmedTraits []ConfirmedTrait `json:"confirmedTraits"`

	// TraitEvents records when each increment happened, in insertion order.
	// Pruned to the trailing event window after every mutation.
	TraitEvents []TraitEvent `json:"traitEvents"`
}

// ConfirmedTrait is a trait promoted to "confirmed", with the narrative
// fragments the client renders on the unlock card.
type ConfirmedTrait struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Label       string `json:"label"`
	Rationale   string `json:"rationale"`
	Opening     string `json:"opening"`
	Body        string `json:"body"`
	Closing     string `json:"closing"`
	ConfirmedAt string `json:"confirmedAt,omitempty"`
}

// TraitEvent is one (date, trait) increment.
type TraitEvent struct {
	Date    string `json:"date"`
	TraitID string `json:"traitId"`
}

// archiveEnvelope defers confirmedTraits decoding so both the current list
// shape and the legacy per-category object shape can be accepted.
type archiveEnvelope struct {
	Summary         string          `json:"summary"`
	TraitCounts     map[string]int  `json:"traitCounts"`
	ConfirmedTraits json.RawMessage `json:"confirmedTraits"`
	TraitEvents     []TraitEvent    `json:"traitEvents"`
}

// DecodeArchive parses a client-supplied archive blob. It accepts the current
// JSON shape, the legacy shape with confirmedTraits keyed by category, and a
// bare free-text string (treated as summary only). It never fails: malformed
// JSON degrades to a plain-text summary.
func DecodeArchive(raw string) Archive {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return emptyArchive()
	}

	var env archiveEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		a := emptyArchive()
		a.Summary = raw
		return a
	}

	a := Archive{
		Summary:     env.Summary,
		TraitCounts: env.TraitCounts,
		TraitEvents: env.TraitEvents,
	}
	a.ConfirmedTraits = decodeConfirmedTraits(env.ConfirmedTraits)
	a.normalize()
	return a
}

func decodeConfirmedTraits(raw json.RawMessage) []ConfirmedTrait {
	if len(raw) == 0 {
		return nil
	}

	var list []ConfirmedTrait
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	// Legacy shape: {"category": [trait, ...], ...}. Walk categories in their
	// fixed order so migrated output stays stable, attaching the category key.
	var byCategory map[string][]ConfirmedTrait
	if err := json.Unmarshal(raw, &byCategory); err != nil {
		return nil
	}
	var out []ConfirmedTrait
	for _, cat := range CategoryOrder {
		for _, ct := range byCategory[cat] {
			ct.Category = cat
			out = append(out, ct)
		}
	}
	return out
}

// Encode serializes the archive in the current JSON shape. Nil fields are
// materialized first so the blob always carries all four keys.
func (a Archive) Encode() string {
	a.normalize()
	b, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// normalize materializes nil fields so every archive, decoded or fresh, has
// all four fields populated.
func (a *Archive) normalize() {
	if a.TraitCounts == nil {
		a.TraitCounts = map[string]int{}
	}
	if a.ConfirmedTraits == nil {
		a.ConfirmedTraits = []ConfirmedTrait{}
	}
	if a.TraitEvents == nil {
		a.TraitEvents = []TraitEvent{}
	}
}

func emptyArchive() Archive {
	a := Archive{}
	a.normalize()
	return a
}
