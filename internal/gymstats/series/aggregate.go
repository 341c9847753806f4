package series

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/strength"
	"github.com/2beens/fitstats/pkg"
)

type Mode string

const (
	ModeSum     Mode = "sum"
	ModeAverage Mode = "avg"
)

// ParseMode accepts "sum", "avg" and "average"; an empty string means sum.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", string(ModeSum):
		return ModeSum, nil
	case string(ModeAverage), "average":
		return ModeAverage, nil
	default:
		return "", fmt.Errorf("unknown aggregation mode: %q", s)
	}
}

// Point is one date of a derived series.
type Point struct {
	Date         time.Time `json:"date"`
	Score        float64   `json:"score"`
	SummaryLines []string  `json:"summaryLines"`
}

type AggregateOptions struct {
	Mode Mode
	// NameOrder, when set, fixes the order of the exercise summary lines.
	// Exercises missing from it follow, ranked by contribution.
	NameOrder []string
}

type exerciseSubtotal struct {
	name  string
	total float64
}

type dateBucket struct {
	date      time.Time
	total     float64
	count     int
	subtotals map[string]float64
}

// AggregateByDate reduces session scores to one point per date, oldest first.
// Every point carries a ranked per-exercise summary.
func AggregateByDate(scores []strength.SessionScore, opts AggregateOptions) []Point {
	buckets := make(map[string]*dateBucket)
	for _, s := range scores {
		key := pkg.DateKey(s.Date)
		b, ok := buckets[key]
		if !ok {
			b = &dateBucket{
				date:      pkg.Day(s.Date),
				subtotals: make(map[string]float64),
			}
			buckets[key] = b
		}
		b.total += s.SessionStrength
		b.count++
		b.subtotals[s.ExerciseName] += s.SessionStrength
	}

	rank := make(map[string]int, len(opts.NameOrder))
	for i, name := range opts.NameOrder {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}

	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		score := b.total
		if opts.Mode == ModeAverage && b.count > 0 {
			score = b.total / float64(b.count)
		}
		points = append(points, Point{
			Date:         b.date,
			Score:        score,
			SummaryLines: summaryLines(b.subtotals, rank),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

func summaryLines(subtotals map[string]float64, rank map[string]int) []string {
	ordered := make([]exerciseSubtotal, 0, len(subtotals))
	for name, total := range subtotals {
		ordered = append(ordered, exerciseSubtotal{name: name, total: total})
	}

	sort.Slice(ordered, func(i, j int) bool {
		ri, iRanked := rank[ordered[i].name]
		rj, jRanked := rank[ordered[j].name]
		switch {
		case iRanked && jRanked:
			return ri < rj
		case iRanked != jRanked:
			return iRanked
		}
		if ordered[i].total != ordered[j].total {
			return ordered[i].total > ordered[j].total
		}
		return ordered[i].name < ordered[j].name
	})

	lines := make([]string, 0, len(ordered))
	for _, st := range ordered {
		lines = append(lines, fmt.Sprintf("%s: %.1f", st.name, st.total))
	}
	return lines
}
