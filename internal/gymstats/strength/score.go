package strength

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/exercises"
	"github.com/2beens/fitstats/internal/gymstats/muscles"
	"github.com/2beens/fitstats/pkg"
)

const (
	set1Weight = 0.4
	set2Weight = 0.6
)

// SessionScore is the strength score of one exercise on one date.
type SessionScore struct {
	Date            time.Time             `json:"date"`
	ExerciseName    string                `json:"exerciseName"`
	MuscleGroup     string                `json:"muscleGroup"`
	SessionStrength float64               `json:"sessionStrength"`
	ProgressGroup   muscles.ProgressGroup `json:"progressGroup"`
	SetSummaryLines []string              `json:"setSummaryLines"`
}

// RepMultiplier rewards the mid and high rep ranges. It is intentionally
// not monotonic.
func RepMultiplier(reps int) float64 {
	switch {
	case reps >= 1 && reps <= 3:
		return 0.80
	case reps >= 4 && reps <= 6:
		return 1.00
	case reps >= 7 && reps <= 9:
		return 1.15
	case reps >= 10 && reps <= 12:
		return 1.05
	default:
		return 1.00
	}
}

// SetScore returns kilos*reps*RepMultiplier(reps), or 0 for non-finite or
// negative input.
func SetScore(kilos float64, reps int) float64 {
	if math.IsNaN(kilos) || math.IsInf(kilos, 0) || kilos < 0 || reps < 0 {
		return 0
	}
	return kilos * float64(reps) * RepMultiplier(reps)
}

type sessionKey struct {
	date         string
	exerciseName string
}

type session struct {
	date         time.Time
	exerciseName string
	muscleGroup  string
	sets         []exercises.Set
}

// SessionScores groups the sets by (date, exercise) and scores every group.
// The result is sorted by date, then exercise name.
func SessionScores(sets []exercises.Set) []SessionScore {
	sessions := make(map[sessionKey]*session)
	for _, set := range sets {
		key := sessionKey{
			date:         pkg.DateKey(set.Date),
			exerciseName: set.ExerciseName,
		}
		s, ok := sessions[key]
		if !ok {
			s = &session{
				date:         pkg.Day(set.Date),
				exerciseName: set.ExerciseName,
			}
			sessions[key] = s
		}
		s.sets = append(s.sets, set)
	}

	scores := make([]SessionScore, 0, len(sessions))
	for _, s := range sessions {
		scores = append(scores, scoreSession(s))
	}

	sort.Slice(scores, func(i, j int) bool {
		if !scores[i].Date.Equal(scores[j].Date) {
			return scores[i].Date.Before(scores[j].Date)
		}
		return scores[i].ExerciseName < scores[j].ExerciseName
	})

	return scores
}

func scoreSession(s *session) SessionScore {
	sortSets(s.sets)
	for _, set := range s.sets {
		if set.MuscleGroup != "" {
			s.muscleGroup = set.MuscleGroup
			break
		}
	}

	var slot1, slot2 *float64
	canonical := true
	rawTotal := 0.0
	summary := make([]string, 0, len(s.sets))
	for _, set := range s.sets {
		score := SetScore(set.Kilos, set.Reps)
		rawTotal += score
		summary = append(summary, summaryLine(set))

		switch {
		case set.SetNumber == 1 && slot1 == nil:
			slot1 = &score
		case set.SetNumber == 2 && slot2 == nil:
			slot2 = &score
		default:
			// beyond slot 2, below slot 1 or a repeated slot
			canonical = false
		}
	}

	var strength float64
	switch {
	case !canonical:
		// Malformed session: the mean raw set score is used. This path looks
		// incidental rather than designed but is kept as is.
		strength = rawTotal / float64(len(s.sets))
	case slot1 != nil && slot2 != nil:
		strength = set1Weight*(*slot1) + set2Weight*(*slot2)
	case slot1 != nil:
		strength = *slot1
	case slot2 != nil:
		strength = *slot2
	}

	progressLabel := s.muscleGroup
	if progressLabel == "" {
		progressLabel = s.exerciseName
	}

	return SessionScore{
		Date:            s.date,
		ExerciseName:    s.exerciseName,
		MuscleGroup:     s.muscleGroup,
		SessionStrength: strength,
		ProgressGroup:   muscles.ClassifyProgressGroup(progressLabel),
		SetSummaryLines: summary,
	}
}

func sortSets(sets []exercises.Set) {
	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].SetNumber != sets[j].SetNumber {
			return sets[i].SetNumber < sets[j].SetNumber
		}
		if sets[i].ID != sets[j].ID {
			return sets[i].ID < sets[j].ID
		}
		if sets[i].Kilos != sets[j].Kilos {
			return sets[i].Kilos < sets[j].Kilos
		}
		return sets[i].Reps < sets[j].Reps
	})
}

func summaryLine(set exercises.Set) string {
	return fmt.Sprintf("S%d: %s×%d", set.SetNumber, strconv.FormatFloat(set.Kilos, 'f', -1, 64), set.Reps)
}
