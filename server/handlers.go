package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TAENNIE-create/star-bookmark/analysis"
	"github.com/TAENNIE-create/star-bookmark/journal"
)

// Handler owns the HTTP surface. The analyzer does the actual work; handlers
// only reshape JSON in and out.
type Handler struct {
	Analyzer *analysis.Analyzer
	Log      *zap.SugaredLogger
	Tracker  journal.TrackerOptions

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

type analyzeRequest struct {
	// Journal is the legacy single-entry field; Journals supersedes it.
	Journal  string   `json:"journal"`
	Journals []string `json:"journals"`

	DateKey         string `json:"dateKey"`
	PreviousArchive string `json:"previousArchive"`

	ExistingReport *journal.Report `json:"existingReport"`

	RecentJournals            map[string]string `json:"recentJournals"`
	PreviousDates             []string          `json:"previousDates"`
	PreviousConstellationName string            `json:"previousConstellationName"`
}

// analyzeResponse keeps the legacy field names (mood, gardenerWord,
// growthSeeds, metrics, constellation) alongside the current ones so older
// clients keep working.
type analyzeResponse struct {
	TodayFlow string `json:"todayFlow"`
	Mood      string `json:"mood"`

	Insight      string `json:"insight"`
	GardenerWord string `json:"gardenerWord"`

	Quests      []string `json:"quests"`
	GrowthSeeds []string `json:"growthSeeds"`

	Summary         string `json:"summary"`
	IdentityArchive string `json:"identityArchive"`

	Keywords []string `json:"keywords"`

	MoodScores journal.MoodScores `json:"moodScores"`
	Metrics    journal.MoodScores `json:"metrics"`

	StarPosition journal.StarPosition `json:"starPosition"`

	Constellations  []journal.Constellation  `json:"constellations"`
	Constellation   *journal.Constellation   `json:"constellation,omitempty"`
	StarConnections []journal.StarConnection `json:"starConnections"`

	NewlyConfirmedTrait *journal.ConfirmedTrait `json:"newlyConfirmedTrait,omitempty"`
	IncrementedTraitIDs []string                `json:"incrementedTraitIds"`
}

type rollbackRequest struct {
	PreviousArchive string   `json:"previousArchive"`
	DateKey         string   `json:"dateKey"`
	TraitIDs        []string `json:"traitIds"`
}

type rollbackResponse struct {
	IdentityArchive string   `json:"identityArchive"`
	DemotedTraitIDs []string `json:"demotedTraitIds"`
}

// errorResponse keeps error a plain string so clients can render it directly;
// code is machine-readable and sits alongside it.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Error: message, Code: code})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_BODY", "요청 본문을 읽을 수 없어요.")
		return
	}

	journals := req.Journals
	if len(journals) == 0 && strings.TrimSpace(req.Journal) != "" {
		journals = []string{req.Journal}
	}

	result, err := h.Analyzer.Analyze(c.Request.Context(), analysis.Request{
		Journals:                  journals,
		DateKey:                   h.dateKey(req.DateKey),
		PreviousArchive:           req.PreviousArchive,
		ExistingReport:            req.ExistingReport,
		RecentJournals:            req.RecentJournals,
		PreviousDates:             req.PreviousDates,
		PreviousConstellationName: req.PreviousConstellationName,
	})
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	resp := analyzeResponse{
		TodayFlow:           result.Report.TodayFlow,
		Mood:                result.Report.TodayFlow,
		Insight:             result.Report.Insight,
		GardenerWord:        result.Report.Insight,
		Quests:              result.Report.Quests,
		GrowthSeeds:         result.Report.Quests,
		Summary:             result.Report.Summary,
		IdentityArchive:     result.Archive.Encode(),
		Keywords:            result.Report.Keywords,
		MoodScores:          result.Report.Scores,
		Metrics:             result.Report.Scores,
		StarPosition:        result.Position,
		Constellations:      result.Constellations,
		StarConnections:     result.Connections,
		IncrementedTraitIDs: result.IncrementedTraitIDs,
	}
	if resp.Constellations == nil {
		resp.Constellations = []journal.Constellation{}
	}
	if resp.StarConnections == nil {
		resp.StarConnections = []journal.StarConnection{}
	}
	if resp.IncrementedTraitIDs == nil {
		resp.IncrementedTraitIDs = []string{}
	}
	if len(result.Constellations) > 0 {
		resp.Constellation = &result.Constellations[0]
	}
	if len(result.NewlyConfirmed) > 0 {
		resp.NewlyConfirmedTrait = &result.NewlyConfirmed[0]
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Rollback(c *gin.Context) {
	var req rollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_BODY", "요청 본문을 읽을 수 없어요.")
		return
	}
	if len(req.TraitIDs) == 0 {
		writeError(c, http.StatusBadRequest, "EMPTY_TRAIT_IDS", "되돌릴 특성이 없어요.")
		return
	}

	archive := journal.DecodeArchive(req.PreviousArchive)
	date := h.dateKey(req.DateKey)
	demoted := journal.Rollback(&archive, date, req.TraitIDs, h.Tracker)
	journal.PruneEvents(&archive, date, h.Tracker)
	if demoted == nil {
		demoted = []string{}
	}

	c.JSON(http.StatusOK, rollbackResponse{
		IdentityArchive: archive.Encode(),
		DemotedTraitIDs: demoted,
	})
}

func (h *Handler) writeAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrEmptyJournal):
		writeError(c, http.StatusBadRequest, "EMPTY_JOURNAL", "일기 내용이 비어 있어요. 오늘의 기록을 먼저 남겨 주세요.")
	case errors.Is(err, analysis.ErrMissingCredential), analysis.IsAuthError(err):
		h.logger().Errorw("model credential rejected", "error", err)
		writeError(c, http.StatusInternalServerError, "MODEL_AUTH",
			"분석 서버의 API 키 설정에 문제가 있어요. 관리자에게 문의해 주세요.")
	default:
		h.logger().Errorw("analysis failed", "error", err)
		writeError(c, http.StatusInternalServerError, "ANALYSIS_FAILED",
			"별을 읽는 중에 문제가 생겼어요. 잠시 후 다시 시도해 주세요.")
	}
}

func (h *Handler) dateKey(requested string) string {
	if requested != "" {
		return requested
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return now().Format("2006-01-02")
}

func (h *Handler) logger() *zap.SugaredLogger {
	if h.Log != nil {
		return h.Log
	}
	return zap.NewNop().Sugar()
}
