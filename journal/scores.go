package journal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MoodScores are the seven analysis dimensions, each an integer in [0,100].
// Every emitted instance carries all seven keys; missing or invalid upstream
// values default to the midpoint.
type MoodScores struct {
	Resilience         int `json:"resilience"`
	SelfAwareness      int `json:"selfAwareness"`
	Empathy            int `json:"empathy"`
	MeaningOrientation int `json:"meaningOrientation"`
	Openness           int `json:"openness"`
	SelfAcceptance     int `json:"selfAcceptance"`
	SelfDirection      int `json:"selfDirection"`
}

const scoreDefault = 50

// DefaultMoodScores returns all dimensions at the midpoint.
func DefaultMoodScores() MoodScores {
	return MoodScores{
		Resilience:         scoreDefault,
		SelfAwareness:      scoreDefault,
		Empathy:            scoreDefault,
		MeaningOrientation: scoreDefault,
		Openness:           scoreDefault,
		SelfAcceptance:     scoreDefault,
		SelfDirection:      scoreDefault,
	}
}

// ClampScore coerces an arbitrary decoded JSON value into [0,100]. Numbers are
// rounded to the nearest integer; strings are parsed if numeric; anything else
// falls back to the midpoint.
func ClampScore(v any) int {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return scoreDefault
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return scoreDefault
		}
		f = parsed
	default:
		return scoreDefault
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return scoreDefault
	}
	if f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return int(math.Round(f))
}

// MoodScoresFromRaw builds a fully-populated MoodScores from a decoded JSON
// object, clamping each dimension independently.
func MoodScoresFromRaw(raw map[string]any) MoodScores {
	get := func(key string) any {
		if raw == nil {
			return nil
		}
		return raw[key]
	}
	return MoodScores{
		Resilience:         ClampScore(get("resilience")),
		SelfAwareness:      ClampScore(get("selfAwareness")),
		Empathy:            ClampScore(get("empathy")),
		MeaningOrientation: ClampScore(get("meaningOrientation")),
		Openness:           ClampScore(get("openness")),
		SelfAcceptance:     ClampScore(get("selfAcceptance")),
		SelfDirection:      ClampScore(get("selfDirection")),
	}
}

// StarPosition is the 2-D display coordinate derived from the mood scores.
type StarPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Visual sub-range the averaged scores are remapped into.
const (
	positionMin = 10
	positionMax = 90
)

// Position maps the seven dimensions onto the display plane: X averages
// selfAwareness/openness/meaningOrientation, Y averages
// selfAcceptance/resilience/empathy, each remapped linearly from [0,100] to
// [positionMin,positionMax]. Deterministic and total over any MoodScores.
func Position(s MoodScores) StarPosition {
	x := float64(s.SelfAwareness+s.Openness+s.MeaningOrientation) / 3
	y := float64(s.SelfAcceptance+s.Resilience+s.Empathy) / 3
	return StarPosition{X: remapPosition(x), Y: remapPosition(y)}
}

func remapPosition(v float64) int {
	scaled := positionMin + v*(positionMax-positionMin)/100
	return int(math.Round(scaled))
}
