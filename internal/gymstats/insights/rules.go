package insights

import "fmt"

// MaxInsights caps every improvements and suggestions list.
const MaxInsights = 6

const (
	trendDropRatio = 0.95
	trendGainRatio = 1.05

	surplusThreshold           = 500.0
	aggressiveDeficitThreshold = -1000.0
)

// Insight is one rule hit: the detected condition and what to do about it.
type Insight struct {
	Rule      string `json:"rule"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
}

func (i Insight) String() string {
	return i.Condition + " " + i.Action
}

// RuleInput carries the day-level series of one range.
type RuleInput struct {
	RangeDays int
	// Strength holds the summed session strength of each workout day.
	Strength Series
	Weight   Series
	Intake   Series
	Net      Series
}

// ExpectedWeightLogs is max(3, ceil(rangeDays * 0.4)).
func ExpectedWeightLogs(rangeDays int) int {
	return expectedCount(rangeDays, 2, 5, 3)
}

// ExpectedIntakeLogs is max(3, ceil(rangeDays * 0.6)).
func ExpectedIntakeLogs(rangeDays int) int {
	return expectedCount(rangeDays, 3, 5, 3)
}

// ExpectedWorkouts is max(2, ceil(rangeDays * 2/7)).
func ExpectedWorkouts(rangeDays int) int {
	return expectedCount(rangeDays, 2, 7, 2)
}

// expectedCount computes ceil(rangeDays * num / den) in integers.
func expectedCount(rangeDays, num, den, floor int) int {
	if rangeDays < 0 {
		rangeDays = 0
	}
	return max(floor, (rangeDays*num+den-1)/den)
}

// Adherence is observed / expected.
func Adherence(observed, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return float64(observed) / float64(expected)
}

// TrendRatio compares the average of the recent half of the series with the
// prior half. ok is false with fewer than four days or a non-positive prior.
func TrendRatio(s Series) (ratio float64, ok bool) {
	sorted := s.Sorted()
	if len(sorted) < 4 {
		return 0, false
	}
	mid := len(sorted) / 2
	prior := average(sorted[:mid])
	recent := average(sorted[mid:])
	if prior <= 0 {
		return 0, false
	}
	return recent / prior, true
}

func average(s Series) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, sample := range s {
		sum += sample.Value
	}
	return sum / float64(len(s))
}

type adherenceCheck struct {
	rule     string
	what     string
	observed int
	expected int
}

func (in RuleInput) adherenceChecks() []adherenceCheck {
	if in.RangeDays <= 0 {
		return nil
	}
	return []adherenceCheck{
		{rule: "workout_frequency", what: "workouts", observed: in.Strength.Days(), expected: ExpectedWorkouts(in.RangeDays)},
		{rule: "weight_logging", what: "weigh-ins", observed: in.Weight.Days(), expected: ExpectedWeightLogs(in.RangeDays)},
		{rule: "intake_logging", what: "days of food logging", observed: in.Intake.Days(), expected: ExpectedIntakeLogs(in.RangeDays)},
	}
}

// Improvements lists what went well in the range, most important first.
func Improvements(in RuleInput) []Insight {
	var found []Insight

	if ratio, ok := TrendRatio(in.Strength); ok && ratio >= trendGainRatio {
		found = append(found, Insight{
			Rule:      "strength_trend_up",
			Condition: fmt.Sprintf("Strength is up %.0f%% in the recent half of the range.", (ratio-1)*100),
			Action:    "Keep adding load or reps in small steps.",
		})
	}

	for _, check := range in.adherenceChecks() {
		if Adherence(check.observed, check.expected) < 1 {
			continue
		}
		found = append(found, Insight{
			Rule:      check.rule + "_on_track",
			Condition: fmt.Sprintf("%d %s logged, at or above the %d expected.", check.observed, check.what, check.expected),
			Action:    "Keep the same routine.",
		})
	}

	if in.Net.Days() > 0 {
		avgNet := average(in.Net.Sorted())
		if avgNet >= aggressiveDeficitThreshold && avgNet <= surplusThreshold {
			found = append(found, Insight{
				Rule:      "energy_balance_steady",
				Condition: fmt.Sprintf("Average net calories of %.0f kcal stay within a sustainable band.", avgNet),
				Action:    "Hold intake steady and review again next week.",
			})
		}
	}

	return capInsights(found)
}

// Suggestions lists the detected problems, most important first.
func Suggestions(in RuleInput) []Insight {
	var found []Insight

	if ratio, ok := TrendRatio(in.Strength); ok && ratio < trendDropRatio {
		found = append(found, Insight{
			Rule:      "strength_trend_down",
			Condition: fmt.Sprintf("Strength is down %.0f%% in the recent half of the range.", (1-ratio)*100),
			Action:    "Plan a lighter week and check sleep and protein intake.",
		})
	}

	if in.Net.Days() > 0 {
		avgNet := average(in.Net.Sorted())
		switch {
		case avgNet > surplusThreshold:
			found = append(found, Insight{
				Rule:      "calorie_surplus",
				Condition: fmt.Sprintf("Average net calories are +%.0f kcal, a surplus above %.0f kcal.", avgNet, surplusThreshold),
				Action:    "Trim portions by a few hundred kcal unless you are bulking on purpose.",
			})
		case avgNet < aggressiveDeficitThreshold:
			found = append(found, Insight{
				Rule:      "aggressive_deficit",
				Condition: fmt.Sprintf("Average net calories are %.0f kcal, a deficit beyond %.0f kcal.", avgNet, -aggressiveDeficitThreshold),
				Action:    "Add around 300 kcal a day to protect strength and recovery.",
			})
		}
	}

	for _, check := range in.adherenceChecks() {
		if Adherence(check.observed, check.expected) >= 1 {
			continue
		}
		found = append(found, Insight{
			Rule:      check.rule + "_low",
			Condition: fmt.Sprintf("Only %d %s logged, %d expected over %d days.", check.observed, check.what, check.expected, in.RangeDays),
			Action:    adherenceActions[check.rule],
		})
	}

	if ratio, ok := TrendRatio(in.Weight); ok && ratio < trendDropRatio {
		found = append(found, Insight{
			Rule:      "weight_dropping_fast",
			Condition: fmt.Sprintf("Bodyweight is down %.0f%% between the two halves of the range.", (1-ratio)*100),
			Action:    "Slow the cut down if that was not the plan.",
		})
	}

	return capInsights(found)
}

var adherenceActions = map[string]string{
	"workout_frequency": "Schedule at least two fixed training days a week.",
	"weight_logging":    "Weigh in each morning before breakfast.",
	"intake_logging":    "Log meals right after eating, even rough estimates.",
}

func capInsights(found []Insight) []Insight {
	if found == nil {
		return []Insight{}
	}
	if len(found) > MaxInsights {
		return found[:MaxInsights]
	}
	return found
}
