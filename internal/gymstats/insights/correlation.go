package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/fitstats/pkg"
)

// MinOverlapDays is the number of shared dates below which no correlation is reported.
const MinOverlapDays = 3

const InsufficientData = "insufficient data"

// Sample is one day-level value of a metric.
type Sample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is a date-keyed metric. Dates are compared at day precision and a
// later sample for the same day replaces an earlier one.
type Series []Sample

func (s Series) byDay() map[string]float64 {
	values := make(map[string]float64, len(s))
	for _, sample := range s {
		if math.IsNaN(sample.Value) || math.IsInf(sample.Value, 0) {
			continue
		}
		values[pkg.DateKey(sample.Date)] = sample.Value
	}
	return values
}

// Sorted returns a copy of the series, one sample per day, oldest first.
func (s Series) Sorted() Series {
	values := s.byDay()
	sorted := make(Series, 0, len(values))
	for key, v := range values {
		d, _ := pkg.ParseDate(key)
		sorted = append(sorted, Sample{Date: d, Value: v})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Days is the number of distinct days carrying a finite value.
func (s Series) Days() int {
	return len(s.byDay())
}

type Correlation struct {
	Label          string   `json:"label"`
	PearsonR       *float64 `json:"pearsonR"`
	OverlapDays    int      `json:"overlapDays"`
	Interpretation string   `json:"interpretation"`
}

// Pearson inner-joins both series on the exact day and returns the
// correlation coefficient with the overlap size. The coefficient is nil when
// fewer than MinOverlapDays days overlap or either side has no variance.
func Pearson(a, b Series) (*float64, int) {
	aByDay := a.byDay()
	bByDay := b.byDay()

	keys := make([]string, 0, len(aByDay))
	for key := range aByDay {
		if _, ok := bByDay[key]; ok {
			keys = append(keys, key)
		}
	}
	overlap := len(keys)
	if overlap < MinOverlapDays {
		return nil, overlap
	}
	sort.Strings(keys)

	var sumA, sumB float64
	for _, key := range keys {
		sumA += aByDay[key]
		sumB += bByDay[key]
	}
	n := float64(overlap)
	meanA, meanB := sumA/n, sumB/n

	var cov, varA, varB float64
	for _, key := range keys {
		da := aByDay[key] - meanA
		db := bByDay[key] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return nil, overlap
	}

	r := cov / math.Sqrt(varA*varB)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, overlap
	}
	r = math.Max(-1, math.Min(1, r))
	return &r, overlap
}

// Interpret describes the strength and direction of r.
func Interpret(r float64) string {
	var strength string
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		strength = "strong"
	case abs >= 0.35:
		strength = "moderate"
	default:
		strength = "weak"
	}
	if r < 0 {
		return fmt.Sprintf("%s inverse relationship", strength)
	}
	return fmt.Sprintf("%s positive relationship", strength)
}

func Correlate(label string, a, b Series) Correlation {
	r, overlap := Pearson(a, b)
	c := Correlation{
		Label:          label,
		PearsonR:       r,
		OverlapDays:    overlap,
		Interpretation: InsufficientData,
	}
	if r != nil {
		c.Interpretation = Interpret(*r)
	}
	return c
}
