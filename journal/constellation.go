package journal

import (
	"fmt"
	"strings"
)

// ConnectionStyle is the visual layout hint for a constellation's star links.
type ConnectionStyle string

const (
	StyleStraight ConnectionStyle = "straight"
	StyleCurve    ConnectionStyle = "curve"
	StyleZigzag   ConnectionStyle = "zigzag"
)

// NormalizeStyle maps an arbitrary model-supplied style string onto the closed
// enum, defaulting to curve.
func NormalizeStyle(s string) ConnectionStyle {
	switch ConnectionStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleStraight:
		return StyleStraight
	case StyleZigzag:
		return StyleZigzag
	default:
		return StyleCurve
	}
}

// Constellation is a named cluster of at least two dated journal stars.
type Constellation struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Meaning string          `json:"meaning"`
	Style   ConnectionStyle `json:"connectionStyle"`
	StarIDs []string        `json:"starIds"`
}

// StarConnection is one continuity edge between two stars.
type StarConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// StarID derives the deterministic star identifier for a calendar date.
func StarID(date string) string {
	return "star-" + date
}

// ClusterGroup is a validated intermediate grouping of dates, before today's
// entry is merged in and IDs are assigned.
type ClusterGroup struct {
	Name    string
	Meaning string
	Style   ConnectionStyle
	Dates   []string
}

// RawGroup is a model-proposed grouping, prior to validation.
type RawGroup struct {
	Name    string   `json:"name"`
	Meaning string   `json:"meaning"`
	Style   string   `json:"connectionStyle"`
	Dates   []string `json:"dates"`
}

// Fallback group used when clustering produced nothing but continuity linking
// found prior dates today's entry carries on from.
const (
	fallbackGroupName    = "이어지는 마음"
	fallbackGroupMeaning = "오늘의 기록이 지난 날들의 감정과 맞닿아 있어요."
)

// ValidateGroups filters model-proposed groups: dates outside the candidate
// set are discarded, duplicates within a group are collapsed, groups left with
// fewer than two dates are dropped, and styles are normalized.
func ValidateGroups(raw []RawGroup, candidates []string) []ClusterGroup {
	allowed := make(map[string]struct{}, len(candidates))
	for _, d := range candidates {
		allowed[d] = struct{}{}
	}

	var out []ClusterGroup
	for _, g := range raw {
		seen := make(map[string]struct{}, len(g.Dates))
		var dates []string
		for _, d := range g.Dates {
			d = strings.TrimSpace(d)
			if _, ok := allowed[d]; !ok {
				continue
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
		if len(dates) < 2 {
			continue
		}
		out = append(out, ClusterGroup{
			Name:    strings.TrimSpace(g.Name),
			Meaning: strings.TrimSpace(g.Meaning),
			Style:   NormalizeStyle(g.Style),
			Dates:   dates,
		})
	}
	return out
}

// ValidateLinks keeps only links that refer to previously-seen dates, deduped,
// capped at three.
func ValidateLinks(links []string, previous []string) []string {
	allowed := make(map[string]struct{}, len(previous))
	for _, d := range previous {
		allowed[d] = struct{}{}
	}
	seen := make(map[string]struct{}, len(links))
	var out []string
	for _, d := range links {
		d = strings.TrimSpace(d)
		if _, ok := allowed[d]; !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
		if len(out) == 3 {
			break
		}
	}
	return out
}

// AssembleConstellations merges today's entry into the validated groups:
//
//   - zero groups but at least one continuity link synthesizes a single
//     fallback group of today plus the linked dates;
//   - otherwise today joins the first group sharing a linked date, or the
//     first group unconditionally when none overlap;
//   - a date's star belongs to at most one group (first group wins);
//   - groups left with fewer than two dates are dropped.
//
// Constellation IDs are derived from today's date and the group ordinal.
func AssembleConstellations(groups []ClusterGroup, links []string, today string) []Constellation {
	if len(groups) == 0 {
		if len(links) == 0 {
			return nil
		}
		groups = []ClusterGroup{{
			Name:    fallbackGroupName,
			Meaning: fallbackGroupMeaning,
			Style:   StyleCurve,
			Dates:   append([]string{today}, links...),
		}}
	} else {
		linked := make(map[string]struct{}, len(links))
		for _, d := range links {
			linked[d] = struct{}{}
		}
		target := 0
		for i, g := range groups {
			if overlaps(g.Dates, linked) {
				target = i
				break
			}
		}
		if !contains(groups[target].Dates, today) {
			groups[target].Dates = append(groups[target].Dates, today)
		}
	}

	used := make(map[string]struct{})
	var out []Constellation
	for _, g := range groups {
		var dates []string
		for _, d := range g.Dates {
			if _, taken := used[d]; taken {
				continue
			}
			dates = append(dates, d)
		}
		if len(dates) < 2 {
			continue
		}
		for _, d := range dates {
			used[d] = struct{}{}
		}

		stars := make([]string, 0, len(dates))
		for _, d := range dates {
			stars = append(stars, StarID(d))
		}
		out = append(out, Constellation{
			ID:      fmt.Sprintf("constellation-%s-%d", today, len(out)+1),
			Name:    g.Name,
			Meaning: g.Meaning,
			Style:   g.Style,
			StarIDs: stars,
		})
	}
	return out
}

// Connections builds the continuity edges from today's star to each linked star.
func Connections(today string, links []string) []StarConnection {
	var out []StarConnection
	for _, d := range links {
		out = append(out, StarConnection{From: StarID(today), To: StarID(d)})
	}
	return out
}

func overlaps(dates []string, set map[string]struct{}) bool {
	for _, d := range dates {
		if _, ok := set[d]; ok {
			return true
		}
	}
	return false
}

func contains(dates []string, d string) bool {
	for _, x := range dates {
		if x == d {
			return true
		}
	}
	return false
}
