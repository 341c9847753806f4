package muscles

import (
	"strings"
	"unicode"
)

// ProgressGroup is the coarse push/pull/legs bucket a strength exercise
// contributes to.
type ProgressGroup string

const (
	ProgressGroupPush  ProgressGroup = "push"
	ProgressGroupPull  ProgressGroup = "pull"
	ProgressGroupLegs  ProgressGroup = "legs"
	ProgressGroupOther ProgressGroup = "other"
)

func (pg ProgressGroup) String() string {
	return string(pg)
}

// TrackedGroup is the finer muscle taxonomy used for the per-group trends.
type TrackedGroup string

const (
	TrackedBack      TrackedGroup = "back"
	TrackedBicep     TrackedGroup = "bicep"
	TrackedTricep    TrackedGroup = "tricep"
	TrackedChest     TrackedGroup = "chest"
	TrackedQuad      TrackedGroup = "quad"
	TrackedHamstring TrackedGroup = "hamstring"
	TrackedShoulder  TrackedGroup = "shoulder"
	TrackedAbs       TrackedGroup = "abs"
)

func (tg TrackedGroup) String() string {
	return string(tg)
}

// TrackedGroups lists every tracked group in display order.
var TrackedGroups = []TrackedGroup{
	TrackedBack,
	TrackedBicep,
	TrackedTricep,
	TrackedChest,
	TrackedQuad,
	TrackedHamstring,
	TrackedShoulder,
	TrackedAbs,
}

type progressRule struct {
	group    ProgressGroup
	keywords []string
}

// progressRules are checked top to bottom, first keyword hit wins.
var progressRules = []progressRule{
	{group: ProgressGroupPush, keywords: []string{"chest", "shoulder", "delt", "tricep"}},
	{group: ProgressGroupPull, keywords: []string{"back", "lat", "bicep"}},
	{group: ProgressGroupLegs, keywords: []string{"leg", "quad", "hamstring", "glute", "calf"}},
}

type trackedRule struct {
	group    TrackedGroup
	keywords []string
}

// trackedRules are checked top to bottom. Shoulder is checked before back so
// that "lateral delt" does not fall into back through the "lat" keyword.
var trackedRules = []trackedRule{
	{group: TrackedAbs, keywords: []string{"abs", "abdominal", "core"}},
	{group: TrackedBicep, keywords: []string{"bicep"}},
	{group: TrackedTricep, keywords: []string{"tricep"}},
	{group: TrackedChest, keywords: []string{"chest", "pec"}},
	{group: TrackedShoulder, keywords: []string{"shoulder", "delt"}},
	{group: TrackedHamstring, keywords: []string{"hamstring"}},
	{group: TrackedQuad, keywords: []string{"quad"}},
	{group: TrackedBack, keywords: []string{"back", "lat"}},
}

// NormalizeText lowercases the label, replaces every non-alphanumeric rune
// with a space and collapses the whitespace.
func NormalizeText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// ClassifyProgressGroup maps a free-text muscle group label to its progress
// group. It never fails: unknown labels are ProgressGroupOther.
func ClassifyProgressGroup(label string) ProgressGroup {
	normalized := NormalizeText(label)
	if normalized == "" {
		return ProgressGroupOther
	}
	for _, rule := range progressRules {
		if containsAny(normalized, rule.keywords) {
			return rule.group
		}
	}
	return ProgressGroupOther
}

// TrackedMuscleGroup maps a label to one of the tracked groups.
// The bool is false when nothing matched; such rows are left out of
// group-scoped views.
func TrackedMuscleGroup(label string) (TrackedGroup, bool) {
	normalized := NormalizeText(label)
	if normalized == "" {
		return "", false
	}
	for _, rule := range trackedRules {
		if containsAny(normalized, rule.keywords) {
			return rule.group, true
		}
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
