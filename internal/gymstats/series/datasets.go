package series

import (
	"sort"

	"github.com/2beens/fitstats/internal/gymstats/muscles"
	"github.com/2beens/fitstats/internal/gymstats/strength"
)

const DefaultMaxExercisesPerGroup = 3

type ProgressDatasets struct {
	Overall    []Point            `json:"overall"`
	Push       []Point            `json:"push"`
	Pull       []Point            `json:"pull"`
	Legs       []Point            `json:"legs"`
	ByExercise map[string][]Point `json:"byExercise"`
}

type MuscleGroupDataset struct {
	Group     muscles.TrackedGroup `json:"group"`
	Exercises []string             `json:"exercises"`
	Points    []Point              `json:"points"`
}

func filterScores(scores []strength.SessionScore, keep func(strength.SessionScore) bool) []strength.SessionScore {
	filtered := make([]strength.SessionScore, 0, len(scores))
	for _, s := range scores {
		if keep(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func inProgressGroup(group muscles.ProgressGroup) func(strength.SessionScore) bool {
	return func(s strength.SessionScore) bool {
		return s.ProgressGroup == group
	}
}

// BuildProgressDatasets derives the overall, push, pull, legs and per-exercise
// series from the same session scores.
func BuildProgressDatasets(scores []strength.SessionScore, mode Mode) ProgressDatasets {
	opts := AggregateOptions{Mode: mode}

	byExerciseScores := make(map[string][]strength.SessionScore)
	for _, s := range scores {
		byExerciseScores[s.ExerciseName] = append(byExerciseScores[s.ExerciseName], s)
	}
	byExercise := make(map[string][]Point, len(byExerciseScores))
	for name, exScores := range byExerciseScores {
		byExercise[name] = AggregateByDate(exScores, opts)
	}

	return ProgressDatasets{
		Overall:    AggregateByDate(scores, opts),
		Push:       AggregateByDate(filterScores(scores, inProgressGroup(muscles.ProgressGroupPush)), opts),
		Pull:       AggregateByDate(filterScores(scores, inProgressGroup(muscles.ProgressGroupPull)), opts),
		Legs:       AggregateByDate(filterScores(scores, inProgressGroup(muscles.ProgressGroupLegs)), opts),
		ByExercise: byExercise,
	}
}

// trackedGroupOf classifies the muscle group label first and falls back to
// the exercise name when the label matches nothing.
func trackedGroupOf(s strength.SessionScore) (muscles.TrackedGroup, bool) {
	if group, ok := muscles.TrackedMuscleGroup(s.MuscleGroup); ok {
		return group, true
	}
	return muscles.TrackedMuscleGroup(s.ExerciseName)
}

// BuildMuscleGroupDatasets returns one dataset per tracked group. Each group
// keeps at most maxExercisesPerGroup exercises, the most frequently trained
// ones, after dropping the group's excluded exercises. A non-positive max
// falls back to DefaultMaxExercisesPerGroup.
func BuildMuscleGroupDatasets(scores []strength.SessionScore, mode Mode, maxExercisesPerGroup int) []MuscleGroupDataset {
	if maxExercisesPerGroup <= 0 {
		maxExercisesPerGroup = DefaultMaxExercisesPerGroup
	}

	byGroup := make(map[muscles.TrackedGroup][]strength.SessionScore)
	for _, s := range scores {
		group, ok := trackedGroupOf(s)
		if !ok || muscles.IsExcluded(group, s.ExerciseName) {
			continue
		}
		byGroup[group] = append(byGroup[group], s)
	}

	datasets := make([]MuscleGroupDataset, 0, len(muscles.TrackedGroups))
	for _, group := range muscles.TrackedGroups {
		groupScores := byGroup[group]
		selected := topExercises(groupScores, maxExercisesPerGroup)

		selectedSet := make(map[string]struct{}, len(selected))
		for _, name := range selected {
			selectedSet[name] = struct{}{}
		}
		kept := filterScores(groupScores, func(s strength.SessionScore) bool {
			_, ok := selectedSet[s.ExerciseName]
			return ok
		})

		datasets = append(datasets, MuscleGroupDataset{
			Group:     group,
			Exercises: selected,
			Points: AggregateByDate(kept, AggregateOptions{
				Mode:      mode,
				NameOrder: selected,
			}),
		})
	}

	return datasets
}

// topExercises ranks exercises by number of sessions, ties alphabetically.
func topExercises(scores []strength.SessionScore, n int) []string {
	counts := make(map[string]int)
	for _, s := range scores {
		counts[s.ExerciseName]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > n {
		names = names[:n]
	}
	return names
}
