package matching

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SkillOverlap struct {
	// Percent is |candidate ∩ required| / |required| * 100.
	Percent float64
	Matched []string
}

// ScoreSkillOverlap compares two comma-separated skill lists. Coverage is
// measured against the required side only, so a superset scores 100.
func ScoreSkillOverlap(candidateSkills, requiredSkills string) SkillOverlap {
	have := ParseSkillSet(candidateSkills)
	want := ParseSkillSet(requiredSkills)
	if len(have) == 0 || len(want) == 0 {
		return SkillOverlap{Matched: []string{}}
	}

	matched := make([]string, 0, len(want))
	for s := range want {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		}
	}
	sort.Strings(matched)

	caser := cases.Title(language.English)
	for i, s := range matched {
		matched[i] = caser.String(s)
	}

	return SkillOverlap{
		Percent: float64(len(matched)) / float64(len(want)) * 100,
		Matched: matched,
	}
}

// ParseSkillSet splits on commas, trims, lowercases and drops empty tokens.
func ParseSkillSet(raw string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}
