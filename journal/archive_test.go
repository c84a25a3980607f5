package journal

import (
	"encoding/json"
	"testing"
)

func TestDecodeArchive_Empty(t *testing.T) {
	t.Parallel()

	a := DecodeArchive("")
	if a.Summary != "" {
		t.Fatalf("Summary=%q, want empty", a.Summary)
	}
	if a.TraitCounts == nil || a.ConfirmedTraits == nil || a.TraitEvents == nil {
		t.Fatalf("archive fields not materialized: %+v", a)
	}
}

func TestDecodeArchive_PlainText(t *testing.T) {
	t.Parallel()

	a := DecodeArchive("요즘은 산책이 위로가 된다.")
	if a.Summary != "요즘은 산책이 위로가 된다." {
		t.Fatalf("Summary=%q", a.Summary)
	}
	if len(a.TraitCounts) != 0 || len(a.ConfirmedTraits) != 0 || len(a.TraitEvents) != 0 {
		t.Fatalf("plain-text decode should leave other fields empty: %+v", a)
	}
}

func TestDecodeArchive_MalformedJSONFallsBackToSummary(t *testing.T) {
	t.Parallel()

	raw := `{"summary": "truncated`
	a := DecodeArchive(raw)
	if a.Summary != raw {
		t.Fatalf("Summary=%q, want raw input", a.Summary)
	}
}

func TestDecodeArchive_RoundTrip(t *testing.T) {
	t.Parallel()

	orig := Archive{
		Summary: "기록을 통해 스스로를 이해해 가는 중.",
		TraitCounts: map[string]int{
			"emotion-deep-feeler":       3,
			"habit-journal-keeper":      7,
			"relationship-deep-listener": 1,
		},
		ConfirmedTraits: []ConfirmedTrait{
			{ID: "habit-journal-keeper", Category: CategoryHabit, Label: "일기를 쓰는", Rationale: "꾸준한 기록", Opening: "o", Body: "b", Closing: "c", ConfirmedAt: "2026-08-20"},
		},
		TraitEvents: []TraitEvent{
			{Date: "2026-08-20", TraitID: "habit-journal-keeper"},
			{Date: "2026-08-21", TraitID: "emotion-deep-feeler"},
		},
	}

	decoded := DecodeArchive(orig.Encode())

	if decoded.Summary != orig.Summary {
		t.Fatalf("Summary=%q want %q", decoded.Summary, orig.Summary)
	}
	if len(decoded.TraitCounts) != len(orig.TraitCounts) {
		t.Fatalf("TraitCounts=%v want %v", decoded.TraitCounts, orig.TraitCounts)
	}
	for id, c := range orig.TraitCounts {
		if decoded.TraitCounts[id] != c {
			t.Fatalf("TraitCounts[%s]=%d want %d", id, decoded.TraitCounts[id], c)
		}
	}
	if len(decoded.ConfirmedTraits) != 1 || decoded.ConfirmedTraits[0] != orig.ConfirmedTraits[0] {
		t.Fatalf("ConfirmedTraits=%+v", decoded.ConfirmedTraits)
	}
	if len(decoded.TraitEvents) != 2 || decoded.TraitEvents[0] != orig.TraitEvents[0] {
		t.Fatalf("TraitEvents=%+v", decoded.TraitEvents)
	}
}

func TestDecodeArchive_LegacyPerCategoryConfirmedTraits(t *testing.T) {
	t.Parallel()

	legacy := map[string]any{
		"summary": "legacy",
		"traitCounts": map[string]int{
			"emotion-deep-feeler": 8,
			"work-deadline-keeper": 9,
		},
		"confirmedTraits": map[string]any{
			"work": []map[string]string{
				{"id": "work-deadline-keeper", "label": "마감을 지키는"},
			},
			"emotion": []map[string]string{
				{"id": "emotion-deep-feeler", "label": "감정을 깊이 느끼는"},
			},
		},
	}
	b, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}

	a := DecodeArchive(string(b))
	if len(a.ConfirmedTraits) != 2 {
		t.Fatalf("ConfirmedTraits=%+v, want 2 entries", a.ConfirmedTraits)
	}
	// Category order is fixed, so emotion migrates before work.
	if a.ConfirmedTraits[0].ID != "emotion-deep-feeler" || a.ConfirmedTraits[0].Category != "emotion" {
		t.Fatalf("first=%+v", a.ConfirmedTraits[0])
	}
	if a.ConfirmedTraits[1].ID != "work-deadline-keeper" || a.ConfirmedTraits[1].Category != "work" {
		t.Fatalf("second=%+v", a.ConfirmedTraits[1])
	}
}

func TestEncode_EmitsAllKeysForEmptyArchive(t *testing.T) {
	t.Parallel()

	var m map[string]any
	if err := json.Unmarshal([]byte(Archive{}.Encode()), &m); err != nil {
		t.Fatalf("unmarshal encoded archive: %v", err)
	}
	for _, key := range []string{"summary", "traitCounts", "confirmedTraits", "traitEvents"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %v", key, m)
		}
	}
}
