package journal

import (
	"time"
)

const (
	// DefaultConfirmThreshold is the occurrence count at which a tracked trait
	// is promoted to confirmed.
	DefaultConfirmThreshold = 7

	// DefaultEventWindowDays is how far back trait events are retained.
	DefaultEventWindowDays = 100
)

// TrackerOptions tunes the confirmation threshold and the event retention
// window. The zero value uses the defaults.
type TrackerOptions struct {
	ConfirmThreshold int
	EventWindowDays  int
}

func (o TrackerOptions) withDefaults() TrackerOptions {
	if o.ConfirmThreshold <= 0 {
		o.ConfirmThreshold = DefaultConfirmThreshold
	}
	if o.EventWindowDays <= 0 {
		o.EventWindowDays = DefaultEventWindowDays
	}
	return o
}

// ApplyTraits increments counters for the given trait IDs and records one
// (date, id) event each. IDs not in the catalog are skipped; duplicates within
// one call count once. It returns the IDs actually applied and the subset
// whose counter now sits at or past the threshold while still unconfirmed —
// those are due a confirmation narrative. Events are pruned afterwards.
func ApplyTraits(a *Archive, date string, traitIDs []string, opts TrackerOptions) (applied []string, due []string) {
	if a == nil {
		return nil, nil
	}
	opts = opts.withDefaults()
	a.normalize()

	seen := make(map[string]struct{}, len(traitIDs))
	for _, id := range traitIDs {
		if _, ok := TraitByID(id); !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a.TraitCounts[id]++
		a.TraitEvents = append(a.TraitEvents, TraitEvent{Date: date, TraitID: id})
		applied = append(applied, id)

		if a.TraitCounts[id] >= opts.ConfirmThreshold && !IsConfirmed(*a, id) {
			due = append(due, id)
		}
	}

	PruneEvents(a, date, opts)
	return applied, due
}

// IsConfirmed reports whether the trait already sits in the confirmed list.
func IsConfirmed(a Archive, traitID string) bool {
	for _, ct := range a.ConfirmedTraits {
		if ct.ID == traitID {
			return true
		}
	}
	return false
}

// ConfirmTrait appends a confirmed trait unless one with the same ID already
// exists. Reports whether the entry was added.
func ConfirmTrait(a *Archive, ct ConfirmedTrait) bool {
	if a == nil || ct.ID == "" {
		return false
	}
	a.normalize()
	if IsConfirmed(*a, ct.ID) {
		return false
	}
	a.ConfirmedTraits = append(a.ConfirmedTraits, ct)
	return true
}

// Rollback compensates for a deleted journal entry: each listed trait counter
// is decremented by one (the key is removed at zero), events matching that
// exact date and trait are removed, and confirmed traits whose counter drops
// below the threshold are demoted. Returns the demoted trait IDs.
func Rollback(a *Archive, date string, traitIDs []string, opts TrackerOptions) (demoted []string) {
	if a == nil {
		return nil
	}
	opts = opts.withDefaults()
	a.normalize()

	affected := make(map[string]struct{}, len(traitIDs))
	for _, id := range traitIDs {
		affected[id] = struct{}{}
		if c, ok := a.TraitCounts[id]; ok {
			if c <= 1 {
				delete(a.TraitCounts, id)
			} else {
				a.TraitCounts[id] = c - 1
			}
		}
	}

	events := a.TraitEvents[:0]
	for _, ev := range a.TraitEvents {
		if _, hit := affected[ev.TraitID]; hit && ev.Date == date {
			continue
		}
		events = append(events, ev)
	}
	a.TraitEvents = events

	confirmed := a.ConfirmedTraits[:0]
	for _, ct := range a.ConfirmedTraits {
		if _, hit := affected[ct.ID]; hit && a.TraitCounts[ct.ID] < opts.ConfirmThreshold {
			demoted = append(demoted, ct.ID)
			continue
		}
		confirmed = append(confirmed, ct)
	}
	a.ConfirmedTraits = confirmed
	return demoted
}

// PruneEvents drops trait events older than the retention window relative to
// the given date. Events whose dates cannot be parsed are kept.
func PruneEvents(a *Archive, today string, opts TrackerOptions) {
	if a == nil || len(a.TraitEvents) == 0 {
		return
	}
	opts = opts.withDefaults()

	ref, err := time.Parse(dateLayout, today)
	if err != nil {
		return
	}
	cutoff := ref.AddDate(0, 0, -opts.EventWindowDays)

	events := a.TraitEvents[:0]
	for _, ev := range a.TraitEvents {
		d, err := time.Parse(dateLayout, ev.Date)
		if err != nil || !d.Before(cutoff) {
			events = append(events, ev)
		}
	}
	a.TraitEvents = events
}

const dateLayout = "2006-01-02"
