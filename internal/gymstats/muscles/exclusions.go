package muscles

import "strings"

// ExclusionPredicate reports whether a normalized exercise name must be
// left out of a tracked group's trend set.
type ExclusionPredicate func(normalizedExerciseName string) bool

// groupExclusions is curated content: exercises listed here never show up
// in the group's trend, no matter how often they are logged.
var groupExclusions = map[TrackedGroup]ExclusionPredicate{
	// pull-ups are bodyweight dominated and drown out the loaded back work
	TrackedBack: excludeNames("pull up", "pullup", "chin up", "chinup"),
}

// IsExcluded reports whether the exercise is denylisted for the group.
func IsExcluded(group TrackedGroup, exerciseName string) bool {
	predicate, ok := groupExclusions[group]
	if !ok {
		return false
	}
	return predicate(NormalizeText(exerciseName))
}

func excludeNames(names ...string) ExclusionPredicate {
	return func(normalizedExerciseName string) bool {
		for _, name := range names {
			if strings.Contains(normalizedExerciseName, name) {
				return true
			}
		}
		return false
	}
}
