package journal

import (
	"strings"
	"testing"
)

func TestNormalizeReport_NilRawYieldsDefaults(t *testing.T) {
	t.Parallel()

	r := NormalizeReport(nil, "")
	if r.TodayFlow == "" || r.Insight == "" || r.Summary == "" {
		t.Fatalf("defaults must be non-empty: %+v", r)
	}
	if len(r.Quests) != 5 {
		t.Fatalf("quests=%v, want 5 defaults", r.Quests)
	}
	for _, q := range r.Quests {
		if !strings.HasSuffix(q, "하기") {
			t.Fatalf("default quest %q must end with the imperative suffix", q)
		}
	}
	if len(r.Keywords) != 3 {
		t.Fatalf("keywords=%v", r.Keywords)
	}
	if r.Scores != DefaultMoodScores() {
		t.Fatalf("scores=%+v", r.Scores)
	}
}

func TestNormalizeReport_PrefersPriorSummaryOverDefault(t *testing.T) {
	t.Parallel()

	r := NormalizeReport(map[string]any{}, "지난 여름의 기록들.")
	if r.Summary != "지난 여름의 기록들." {
		t.Fatalf("Summary=%q", r.Summary)
	}
}

func TestNormalizeReport_LegacyFieldAliases(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"mood":         "잔잔한 하루였어요.",
		"gardenerWord": "꾸준함이 보여요.",
		"growthSeeds":  []any{"산책 10분 하기", "일찍 잠들기"},
	}
	r := NormalizeReport(raw, "")
	if r.TodayFlow != "잔잔한 하루였어요." {
		t.Fatalf("TodayFlow=%q", r.TodayFlow)
	}
	if r.Insight != "꾸준함이 보여요." {
		t.Fatalf("Insight=%q", r.Insight)
	}
	if len(r.Quests) != 2 || r.Quests[0] != "산책 10분 하기" {
		t.Fatalf("Quests=%v", r.Quests)
	}
}

func TestNormalizeReport_CurrentFieldsWinOverAliases(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"todayFlow": "current",
		"mood":      "legacy",
	}
	if r := NormalizeReport(raw, ""); r.TodayFlow != "current" {
		t.Fatalf("TodayFlow=%q, want current scheme preferred", r.TodayFlow)
	}
}

func TestNormalizeReport_BoundsQuests(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("가", 150)
	raw := map[string]any{
		"quests": []any{"하나 하기", "  ", "둘 하기", "셋 하기", "넷 하기", "다섯 하기", "여섯 하기", long},
	}
	r := NormalizeReport(raw, "")
	if len(r.Quests) != 5 {
		t.Fatalf("quests=%v, want truncation to 5", r.Quests)
	}

	raw = map[string]any{"quests": []any{long}}
	r = NormalizeReport(raw, "")
	if got := len([]rune(r.Quests[0])); got > 101 {
		t.Fatalf("quest rune length=%d, want bounded", got)
	}
}

func TestNormalizeReport_FewerThanFiveQuestsAccepted(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"quests": []any{"혼자만의 시간 가지기"}}
	r := NormalizeReport(raw, "")
	if len(r.Quests) != 1 {
		t.Fatalf("quests=%v, must not be padded", r.Quests)
	}
}

func TestNormalizeReport_ScoreAliasKeys(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"metrics": map[string]any{"openness": float64(91)},
	}
	r := NormalizeReport(raw, "")
	if r.Scores.Openness != 91 {
		t.Fatalf("Openness=%d, want metrics alias honored", r.Scores.Openness)
	}
}

func TestTruncateRunes_KoreanSafe(t *testing.T) {
	t.Parallel()

	s := "가나다라마"
	if got := truncateRunes(s, 3); got != "가나다…" {
		t.Fatalf("got=%q", got)
	}
	if got := truncateRunes(s, 10); got != s {
		t.Fatalf("got=%q, want unchanged", got)
	}
}
