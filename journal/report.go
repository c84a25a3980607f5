package journal

import (
	"strings"
)

// Report is the normalized per-day analysis artifact. Alias JSON fields
// (mood/gardenerWord/growthSeeds) are produced at the transport layer; the
// domain type carries each value once.
type Report struct {
	// TodayFlow is the empathetic one/two-sentence restatement of the day.
	TodayFlow string `json:"todayFlow"`

	// Insight is the longer diagnostic reflection.
	Insight string `json:"insight"`

	// Quests are at most five short actionable suggestions.
	Quests []string `json:"quests"`

	// Summary is the updated cumulative archive narrative.
	Summary string `json:"summary"`

	// Keywords are up to three short keywords for the day.
	Keywords []string `json:"keywords"`

	Scores MoodScores `json:"moodScores"`
}

const (
	maxQuests       = 5
	maxQuestRunes   = 100
	maxKeywords     = 3
	maxKeywordRunes = 20
)

// Field defaults used when the model output is missing or unparseable, so the
// caller always receives non-empty user-facing text.
const (
	defaultTodayFlow = "오늘 하루의 마음을 천천히 들여다보았어요."
	defaultInsight   = "오늘의 기록에는 스스로를 돌보려는 마음이 담겨 있어요. 작은 감정 하나도 흘려보내지 않고 적어 둔 것만으로 자기 이해에 한 걸음 가까워졌어요."
	defaultSummary   = "아직 쌓인 기록이 많지 않지만, 오늘의 기록이 첫 번째 갈피가 되어 줄 거예요."
)

var defaultQuests = []string{
	"창문 열고 3분 환기하기",
	"물 한 잔 천천히 마시기",
	"지금 기분 한 단어로 적어 보기",
	"어깨 스트레칭 1분 하기",
	"내일 기대되는 일 하나 메모하기",
}

var defaultKeywords = []string{"기록", "마음", "하루"}

// NormalizeReport reconciles a decoded model payload into a fully-populated
// Report. Both historical field-name schemes are accepted (todayFlow|mood,
// insight|gardenerWord, quests|growthSeeds). String fields fall back to the
// Korean defaults, the summary falls back to the prior archive summary, quest
// and keyword lists are bounded, and every score is clamped. raw may be nil.
func NormalizeReport(raw map[string]any, prevSummary string) Report {
	r := Report{
		TodayFlow: firstString(raw, "todayFlow", "mood"),
		Insight:   firstString(raw, "insight", "gardenerWord"),
		Summary:   firstString(raw, "summary", "updatedSummary"),
		Quests:    firstStrings(raw, "quests", "growthSeeds"),
		Keywords:  firstStrings(raw, "keywords"),
	}

	if r.TodayFlow == "" {
		r.TodayFlow = defaultTodayFlow
	}
	if r.Insight == "" {
		r.Insight = defaultInsight
	}
	if r.Summary == "" {
		r.Summary = strings.TrimSpace(prevSummary)
	}
	if r.Summary == "" {
		r.Summary = defaultSummary
	}

	r.Quests = boundStrings(r.Quests, maxQuests, maxQuestRunes)
	if len(r.Quests) == 0 {
		r.Quests = append([]string(nil), defaultQuests...)
	}

	r.Keywords = boundStrings(r.Keywords, maxKeywords, maxKeywordRunes)
	if len(r.Keywords) == 0 {
		r.Keywords = append([]string(nil), defaultKeywords...)
	}

	var scoresRaw map[string]any
	if raw != nil {
		for _, key := range []string{"moodScores", "metrics", "scores"} {
			if m, ok := raw[key].(map[string]any); ok {
				scoresRaw = m
				break
			}
		}
	}
	r.Scores = MoodScoresFromRaw(scoresRaw)
	return r
}

func firstString(raw map[string]any, keys ...string) string {
	if raw == nil {
		return ""
	}
	for _, key := range keys {
		if s, ok := raw[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstStrings(raw map[string]any, keys ...string) []string {
	if raw == nil {
		return nil
	}
	for _, key := range keys {
		items, ok := raw[key].([]any)
		if !ok {
			continue
		}
		var out []string
		for _, it := range items {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func boundStrings(in []string, maxItems, maxRunes int) []string {
	var out []string
	for _, s := range in {
		s = truncateRunes(strings.TrimSpace(s), maxRunes)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// truncateRunes shortens s to at most max runes. Rune-based so multi-byte
// Korean text is never split mid-character.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
