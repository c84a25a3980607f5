package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/TAENNIE-create/star-bookmark/journal"
)

// fakeCompleter routes calls by schema name, so each pipeline stage can be
// scripted independently.
type fakeCompleter struct {
	outputs map[string]string
	errs    map[string]error
	calls   []CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.errs[req.SchemaName]; ok {
		return "", err
	}
	out, ok := f.outputs[req.SchemaName]
	if !ok {
		return "", errors.New("unexpected call: " + req.SchemaName)
	}
	return out, nil
}

func (f *fakeCompleter) callCount(schemaName string) int {
	n := 0
	for _, c := range f.calls {
		if c.SchemaName == schemaName {
			n++
		}
	}
	return n
}

const longJournal = "오늘은 아침 일찍 일어나서 밀린 원고를 정리했다. 오후에는 친구와 오래 통화하면서 요즘 마음이 복잡했던 이유를 처음으로 소리 내어 말해 보았다. 말하고 나니 조금 가벼워졌다."

const shortJournal = "피곤한 하루."

func validReportJSON() string {
	payload := map[string]any{
		"todayFlow": "복잡했던 마음을 꺼내 놓은 하루였어요.",
		"insight":   "말로 꺼내는 순간 감정이 정리되는 패턴이 보여요. 혼자 품고 있던 시간과 대비돼요.",
		"quests":    []string{"아침에 물 마시기", "10분 산책하기", "감사한 일 적기", "책상 정리하기", "일찍 잠들기"},
		"summary":   "기록을 통해 감정을 언어화하는 힘이 자라고 있어요.",
		"keywords":  []string{"통화", "원고", "홀가분"},
		"moodScores": map[string]int{
			"resilience": 60, "selfAwareness": 80, "empathy": 70,
			"meaningOrientation": 65, "openness": 55, "selfAcceptance": 62, "selfDirection": 58,
		},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func emptyTagsJSON() string {
	return `{"selections": []}`
}

func newTestAnalyzer(f *fakeCompleter) *Analyzer {
	return &Analyzer{Completer: f, Model: "gpt-test"}
}

func TestAnalyzeEmptyJournal(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(&fakeCompleter{})
	_, err := a.Analyze(context.Background(), Request{Journals: []string{"  ", ""}, DateKey: "2026-08-30"})
	if !errors.Is(err, ErrEmptyJournal) {
		t.Fatalf("err = %v, want ErrEmptyJournal", err)
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags":     emptyTagsJSON(),
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals: []string{longJournal},
		DateKey:  "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Report.TodayFlow != "복잡했던 마음을 꺼내 놓은 하루였어요." {
		t.Fatalf("TodayFlow = %q", res.Report.TodayFlow)
	}
	if res.Report.Scores.SelfAwareness != 80 {
		t.Fatalf("SelfAwareness = %d", res.Report.Scores.SelfAwareness)
	}
	if res.Archive.Summary != res.Report.Summary {
		t.Fatalf("archive summary %q != report summary %q", res.Archive.Summary, res.Report.Summary)
	}
	// X from selfAwareness/openness/meaningOrientation, Y from the others.
	wantX := journal.Position(res.Report.Scores).X
	if res.Position.X != wantX {
		t.Fatalf("Position.X = %d, want %d", res.Position.X, wantX)
	}
	if len(res.Constellations) != 0 || len(res.Connections) != 0 {
		t.Fatalf("expected no constellations without recent journals, got %d/%d",
			len(res.Constellations), len(res.Connections))
	}
}

func TestAnalyzeComprehensiveUsesAllEntries(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags":     emptyTagsJSON(),
	}}
	a := newTestAnalyzer(f)

	existing := journal.NormalizeReport(nil, "")
	_, err := a.Analyze(context.Background(), Request{
		Journals:       []string{longJournal, "저녁에는 다시 마음이 가라앉아서 일찍 누웠다."},
		DateKey:        "2026-08-30",
		ExistingReport: &existing,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var reportCall *CompletionRequest
	for i := range f.calls {
		if f.calls[i].SchemaName == "journal_report" {
			reportCall = &f.calls[i]
		}
	}
	if reportCall == nil {
		t.Fatal("no report call made")
	}
	if reportCall.Instructions != comprehensivePrompt {
		t.Fatal("expected comprehensive instructions when a draft report exists")
	}
	if !strings.Contains(reportCall.Input, "entry 2") {
		t.Fatal("second journal entry missing from model input")
	}
	if !strings.Contains(reportCall.Input, "existing_report_draft") {
		t.Fatal("existing draft missing from model input")
	}
}

func TestAnalyzeGarbageReportFallsBack(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": "오늘도 수고 많으셨어요!",
		"trait_tags":     emptyTagsJSON(),
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals:        []string{longJournal},
		DateKey:         "2026-08-30",
		PreviousArchive: `{"summary": "이전까지의 요약이에요."}`,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Report.Quests) != 5 {
		t.Fatalf("quests = %d, want 5 defaults", len(res.Report.Quests))
	}
	if res.Report.Summary != "이전까지의 요약이에요." {
		t.Fatalf("Summary = %q, want prior summary preserved", res.Report.Summary)
	}
	if res.Report.Scores != journal.DefaultMoodScores() {
		t.Fatalf("Scores = %+v, want defaults", res.Report.Scores)
	}
}

func TestAnalyzeTransportErrorPropagates(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{errs: map[string]error{"journal_report": ErrMissingCredential}}
	a := newTestAnalyzer(f)

	_, err := a.Analyze(context.Background(), Request{Journals: []string{longJournal}, DateKey: "2026-08-30"})
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestAnalyzeTraitIncrement(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags": `{"selections": [
			{"category": "habit", "traitIds": ["habit-journal-keeper"]},
			{"category": "emotion", "traitIds": ["emotion-deep-feeler", "no-such-trait"]}
		]}`,
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals: []string{longJournal},
		DateKey:  "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.IncrementedTraitIDs) != 2 {
		t.Fatalf("IncrementedTraitIDs = %v, want 2 valid ids", res.IncrementedTraitIDs)
	}
	if res.Archive.TraitCounts["habit-journal-keeper"] != 1 {
		t.Fatalf("count = %d, want 1", res.Archive.TraitCounts["habit-journal-keeper"])
	}
	if _, ok := res.Archive.TraitCounts["no-such-trait"]; ok {
		t.Fatal("non-catalog id should not be counted")
	}
	if len(res.NewlyConfirmed) != 0 {
		t.Fatalf("NewlyConfirmed = %v, want none below threshold", res.NewlyConfirmed)
	}
	if f.callCount("trait_narrative") != 0 {
		t.Fatal("narrative should not run below threshold")
	}
}

func TestAnalyzeTraitCategoryCapAcrossBuckets(t *testing.T) {
	t.Parallel()

	// A reply may repeat a category across selection entries; the two-per
	// category cap still holds over the whole reply.
	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags": `{"selections": [
			{"category": "emotion", "traitIds": ["emotion-deep-feeler", "emotion-namer"]},
			{"category": "emotion", "traitIds": ["emotion-slow-burner", "emotion-quick-recovery"]},
			{"category": "emotion", "traitIds": ["emotion-deep-feeler"]}
		]}`,
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals: []string{longJournal},
		DateKey:  "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{"emotion-deep-feeler", "emotion-namer"}
	if len(res.IncrementedTraitIDs) != len(want) {
		t.Fatalf("IncrementedTraitIDs = %v, want %v", res.IncrementedTraitIDs, want)
	}
	for i, id := range want {
		if res.IncrementedTraitIDs[i] != id {
			t.Fatalf("IncrementedTraitIDs = %v, want %v", res.IncrementedTraitIDs, want)
		}
	}
	for _, id := range []string{"emotion-slow-burner", "emotion-quick-recovery"} {
		if _, ok := res.Archive.TraitCounts[id]; ok {
			t.Fatalf("%s counted past the category cap", id)
		}
	}
}

func TestAnalyzeTraitConfirmation(t *testing.T) {
	t.Parallel()

	prev := journal.Archive{
		TraitCounts: map[string]int{"habit-journal-keeper": 6},
	}
	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags":     `{"selections": [{"category": "habit", "traitIds": ["habit-journal-keeper"]}]}`,
		"trait_narrative": `{"rationale": "기록이 꾸준히 반복돼요.", "opening": "문장을 남기는 습관이 보여요.",
			"body": "하루를 글로 붙잡아 두는 모습이 자주 나타나요.", "closing": "이 습관이 어디로 이어질지 지켜봐요."}`,
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals:        []string{longJournal},
		DateKey:         "2026-08-30",
		PreviousArchive: prev.Encode(),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.NewlyConfirmed) != 1 {
		t.Fatalf("NewlyConfirmed = %d, want 1", len(res.NewlyConfirmed))
	}
	ct := res.NewlyConfirmed[0]
	if ct.ID != "habit-journal-keeper" || ct.ConfirmedAt != "2026-08-30" {
		t.Fatalf("confirmed trait = %+v", ct)
	}
	if ct.Opening == "" || ct.Body == "" || ct.Closing == "" {
		t.Fatalf("narrative fields missing: %+v", ct)
	}
	if !journal.IsConfirmed(res.Archive, "habit-journal-keeper") {
		t.Fatal("archive should record the confirmation")
	}
}

func TestAnalyzeTraitErrorsAreSwallowed(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{
		outputs: map[string]string{"journal_report": validReportJSON()},
		errs:    map[string]error{"trait_tags": errors.New("rate limited")},
	}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals: []string{longJournal},
		DateKey:  "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Analyze: %v, trait failures must not fail the request", err)
	}
	if len(res.IncrementedTraitIDs) != 0 {
		t.Fatalf("IncrementedTraitIDs = %v", res.IncrementedTraitIDs)
	}
}

func TestAnalyzeShortJournalSkipsTraits(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{"journal_report": validReportJSON()}}
	a := newTestAnalyzer(f)

	_, err := a.Analyze(context.Background(), Request{
		Journals: []string{shortJournal},
		DateKey:  "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if f.callCount("trait_tags") != 0 {
		t.Fatal("trait tagging should be skipped for short entries")
	}
}

func TestAnalyzeClusteringAndContinuity(t *testing.T) {
	t.Parallel()

	recent := map[string]string{
		"2026-08-27": strings.Repeat("긴 일기 ", 10),
		"2026-08-28": strings.Repeat("긴 일기 ", 10),
		"2026-08-29": "짧음",
	}
	f := &fakeCompleter{outputs: map[string]string{
		"journal_report": validReportJSON(),
		"trait_tags":     emptyTagsJSON(),
		"journal_clusters": `{"groups": [{"name": "느린 회복의 시간", "meaning": "무너진 마음을 천천히 일으킨 날들이에요.",
			"connectionStyle": "curve", "dates": ["2026-08-27", "2026-08-28", "2026-08-29"]}]}`,
		"journal_continuity": `{"dates": ["2026-08-28", "1999-01-01"]}`,
	}}
	a := newTestAnalyzer(f)

	res, err := a.Analyze(context.Background(), Request{
		Journals:       []string{longJournal},
		DateKey:        "2026-08-30",
		RecentJournals: recent,
		PreviousDates:  []string{"2026-08-27", "2026-08-28"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Constellations) != 1 {
		t.Fatalf("constellations = %d, want 1", len(res.Constellations))
	}
	c := res.Constellations[0]
	if c.Name != "느린 회복의 시간" || c.Style != journal.StyleCurve {
		t.Fatalf("constellation = %+v", c)
	}
	// 08-29 was too short to be a candidate, so it must not appear; today's
	// star joins because the continuity link overlaps the group.
	want := []string{journal.StarID("2026-08-27"), journal.StarID("2026-08-28"), journal.StarID("2026-08-30")}
	if len(c.StarIDs) != len(want) {
		t.Fatalf("StarIDs = %v, want %v", c.StarIDs, want)
	}
	for _, id := range want {
		found := false
		for _, got := range c.StarIDs {
			if got == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("StarIDs = %v, missing %s", c.StarIDs, id)
		}
	}
	if len(res.Connections) != 1 {
		t.Fatalf("connections = %d, want link to 08-28 only", len(res.Connections))
	}
	if res.Connections[0].From != journal.StarID("2026-08-30") || res.Connections[0].To != journal.StarID("2026-08-28") {
		t.Fatalf("connection = %+v", res.Connections[0])
	}
}

func TestAnalyzeSingleRecentSkipsClustering(t *testing.T) {
	t.Parallel()

	f := &fakeCompleter{outputs: map[string]string{
		"journal_report":     validReportJSON(),
		"trait_tags":         emptyTagsJSON(),
		"journal_continuity": `{"dates": []}`,
	}}
	a := newTestAnalyzer(f)

	_, err := a.Analyze(context.Background(), Request{
		Journals:       []string{longJournal},
		DateKey:        "2026-08-30",
		RecentJournals: map[string]string{"2026-08-29": strings.Repeat("긴 일기 ", 10)},
		PreviousDates:  []string{"2026-08-29"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if f.callCount("journal_clusters") != 0 {
		t.Fatal("clustering needs at least two qualifying dates")
	}
	if f.callCount("journal_continuity") != 1 {
		t.Fatal("continuity should still run with one previous date")
	}
}
