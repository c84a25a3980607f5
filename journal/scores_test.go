package journal

import (
	"testing"
)

func TestClampScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want int
	}{
		{name: "nil", in: nil, want: 50},
		{name: "in_range", in: float64(73), want: 73},
		{name: "negative", in: float64(-4), want: 0},
		{name: "over_100", in: float64(250), want: 100},
		{name: "rounding", in: 49.6, want: 50},
		{name: "int", in: 88, want: 88},
		{name: "numeric_string", in: "62", want: 62},
		{name: "garbage_string", in: "높음", want: 50},
		{name: "bool", in: true, want: 50},
		{name: "map", in: map[string]any{}, want: 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClampScore(tc.in); got != tc.want {
				t.Fatalf("ClampScore(%v)=%d want=%d", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoodScoresFromRaw_AllKeysAlwaysPresent(t *testing.T) {
	t.Parallel()

	s := MoodScoresFromRaw(map[string]any{
		"resilience": float64(80),
		"empathy":    "not a number",
	})
	if s.Resilience != 80 {
		t.Fatalf("Resilience=%d", s.Resilience)
	}
	if s.Empathy != 50 || s.SelfAwareness != 50 || s.SelfDirection != 50 {
		t.Fatalf("missing/invalid dimensions must default to 50: %+v", s)
	}

	if s := MoodScoresFromRaw(nil); s != DefaultMoodScores() {
		t.Fatalf("nil raw must yield defaults: %+v", s)
	}
}

func TestPosition_CornerValues(t *testing.T) {
	t.Parallel()

	all := func(v int) MoodScores {
		return MoodScores{
			Resilience: v, SelfAwareness: v, Empathy: v,
			MeaningOrientation: v, Openness: v, SelfAcceptance: v, SelfDirection: v,
		}
	}

	cases := []struct {
		name string
		in   MoodScores
		want StarPosition
	}{
		{name: "all_zero", in: all(0), want: StarPosition{X: 10, Y: 10}},
		{name: "all_fifty", in: all(50), want: StarPosition{X: 50, Y: 50}},
		{name: "all_hundred", in: all(100), want: StarPosition{X: 90, Y: 90}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Position(tc.in); got != tc.want {
				t.Fatalf("Position=%+v want=%+v", got, tc.want)
			}
		})
	}
}

func TestPosition_AxisAssignment(t *testing.T) {
	t.Parallel()

	// Only the X-axis dimensions are raised; Y must stay at its floor.
	s := MoodScores{SelfAwareness: 100, Openness: 100, MeaningOrientation: 100}
	p := Position(s)
	if p.X != 90 || p.Y != 10 {
		t.Fatalf("p=%+v, want X=90 Y=10", p)
	}
}

func TestPosition_StaysInRange(t *testing.T) {
	t.Parallel()

	for v := 0; v <= 100; v += 5 {
		s := MoodScores{
			Resilience: v, SelfAwareness: 100 - v, Empathy: v,
			MeaningOrientation: v, Openness: v, SelfAcceptance: 100 - v, SelfDirection: v,
		}
		p := Position(s)
		if p.X < 10 || p.X > 90 || p.Y < 10 || p.Y > 90 {
			t.Fatalf("v=%d p=%+v out of [10,90]", v, p)
		}
	}
}
