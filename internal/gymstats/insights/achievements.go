package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitstats/pkg"
)

// DefaultWindows are the look-back windows, in days, used when the caller
// does not pass any.
var DefaultWindows = []int{7, 30}

type AchievementInput struct {
	AsOf     time.Time
	Strength Series
	Burn     Series
	Net      Series
}

// Achievement is one superlative day. Date and Value are nil when the
// window had no data, Text is always set.
type Achievement struct {
	Date  *time.Time `json:"date"`
	Value *float64   `json:"value"`
	Text  string     `json:"text"`
}

type AchievementSet struct {
	WindowDays   int         `json:"windowDays"`
	BestStrength Achievement `json:"bestStrength"`
	HighestBurn  Achievement `json:"highestBurn"`
	MostBalanced Achievement `json:"mostBalanced"`
}

// Achievements returns one set per window, each covering the window's days
// up to and including AsOf. Non-positive windows are skipped.
func Achievements(in AchievementInput, windows ...int) []AchievementSet {
	if len(windows) == 0 {
		windows = DefaultWindows
	}

	sets := make([]AchievementSet, 0, len(windows))
	for _, days := range windows {
		if days <= 0 {
			continue
		}
		to := pkg.Day(in.AsOf)
		from := to.AddDate(0, 0, -(days - 1))

		sets = append(sets, AchievementSet{
			WindowDays: days,
			BestStrength: superlative(
				window(in.Strength, from, to), days,
				func(v float64) float64 { return v },
				"Best strength day", "%.1f strength",
				"No strength sessions",
			),
			HighestBurn: superlative(
				window(in.Burn, from, to), days,
				func(v float64) float64 { return v },
				"Highest burn day", "%.0f kcal burned",
				"No calorie burn data",
			),
			// most balanced is the day whose net calories sit closest to zero
			MostBalanced: superlative(
				window(in.Net, from, to), days,
				func(v float64) float64 { return -math.Abs(v) },
				"Most balanced day", "%+.0f kcal net",
				"No energy balance data",
			),
		})
	}
	return sets
}

func window(s Series, from, to time.Time) Series {
	var in Series
	for _, sample := range s.Sorted() {
		if sample.Date.Before(from) || sample.Date.After(to) {
			continue
		}
		in = append(in, sample)
	}
	return in
}

// superlative picks the sample with the highest rank. Ties go to the most
// recent day.
func superlative(
	s Series,
	days int,
	rank func(float64) float64,
	title, valueFormat, emptyText string,
) Achievement {
	if len(s) == 0 {
		return Achievement{
			Text: fmt.Sprintf("%s in the last %d days.", emptyText, days),
		}
	}

	best := s[0]
	for _, sample := range s[1:] {
		// s is sorted oldest first, so >= lets later days win ties
		if rank(sample.Value) >= rank(best.Value) {
			best = sample
		}
	}

	date := best.Date
	value := best.Value
	return Achievement{
		Date:  &date,
		Value: &value,
		Text:  fmt.Sprintf("%s: %s (%s).", title, pkg.DateKey(date), fmt.Sprintf(valueFormat, value)),
	}
}
