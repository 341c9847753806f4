package energy

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/events"
	"github.com/2beens/fitstats/internal/gymstats/profile"
	"github.com/2beens/fitstats/pkg"
)

// Snapshot is the energy balance of one user on one date.
type Snapshot struct {
	UserID             int       `json:"userId"`
	Date               time.Time `json:"date"`
	WeightKg           *float64  `json:"weightKg"`
	CaloriesIn         *float64  `json:"caloriesIn"`
	ActiveCaloriesBurn *float64  `json:"activeCaloriesBurn"`
	MaintenanceForDay  *float64  `json:"maintenanceForDay"`
	TotalBurn          *float64  `json:"totalBurn"`
	NetCalories        *float64  `json:"netCalories"`
	BMI                *float64  `json:"bmi"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// HasSignal reports whether at least one input or derived figure is present.
func (s Snapshot) HasSignal() bool {
	return s.WeightKg != nil || s.CaloriesIn != nil || s.ActiveCaloriesBurn != nil || s.MaintenanceForDay != nil
}

// DayInputs are the raw energy inputs of a single date.
type DayInputs struct {
	WeightKg           *float64
	CaloriesIn         *float64
	ActiveCaloriesBurn *float64
}

func validPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// MaintenanceFromProfile is Mifflin-St Jeor BMR times the activity multiplier,
// rounded to whole kcal. Nil whenever an input is missing or invalid.
func MaintenanceFromProfile(ep EnergyProfile, weightKg *float64) *float64 {
	c, ok := ep.(Complete)
	if !ok || weightKg == nil || !validPositive(*weightKg) || !validPositive(c.HeightCm) {
		return nil
	}

	multiplier, ok := c.ActivityLevel.Multiplier()
	if !ok {
		return nil
	}

	bmr := 10*(*weightKg) + 6.25*c.HeightCm - 5*float64(c.Age)
	switch c.Sex {
	case profile.SexMale:
		bmr += 5
	case profile.SexFemale:
		bmr -= 161
	default:
		return nil
	}

	maintenance := roundTo(bmr*multiplier, 0)
	if maintenance <= 0 {
		return nil
	}
	return &maintenance
}

// BMI is weight / height(m)^2, rounded to one decimal.
func BMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || !validPositive(*weightKg) || !validPositive(*heightCm) {
		return nil
	}
	heightM := *heightCm / 100
	bmi := roundTo(*weightKg/(heightM*heightM), 1)
	return &bmi
}

// ReduceDay folds the events of one date: the latest weight report wins,
// intake and burn are summed.
func ReduceDay(dayEvents []events.Event) DayInputs {
	sorted := append([]events.Event(nil), dayEvents...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var in DayInputs
	for _, e := range sorted {
		v := e.Value
		switch e.Type {
		case events.EventTypeWeightReport:
			in.WeightKg = &v
		case events.EventTypeCalorieIntake:
			in.CaloriesIn = addTo(in.CaloriesIn, v)
		case events.EventTypeCalorieBurn:
			in.ActiveCaloriesBurn = addTo(in.ActiveCaloriesBurn, v)
		}
	}
	return in
}

func addTo(total *float64, v float64) *float64 {
	sum := v
	if total != nil {
		sum += *total
	}
	return &sum
}

// BuildSnapshot derives every figure of a date from its inputs. The profile
// may be nil. Total burn and net calories are only set when all of their
// operands are present.
func BuildSnapshot(userID int, date time.Time, in DayInputs, p *profile.Profile) Snapshot {
	date = pkg.Day(date)
	s := Snapshot{
		UserID:             userID,
		Date:               date,
		WeightKg:           in.WeightKg,
		CaloriesIn:         in.CaloriesIn,
		ActiveCaloriesBurn: in.ActiveCaloriesBurn,
		MaintenanceForDay:  MaintenanceFromProfile(ResolveProfile(p, date), in.WeightKg),
	}

	if p != nil {
		s.BMI = BMI(in.WeightKg, p.HeightCm)
	}

	if s.MaintenanceForDay != nil && s.ActiveCaloriesBurn != nil {
		total := *s.MaintenanceForDay + *s.ActiveCaloriesBurn
		s.TotalBurn = &total
	}
	if s.CaloriesIn != nil && s.TotalBurn != nil {
		net := *s.CaloriesIn - *s.TotalBurn
		s.NetCalories = &net
	}

	return s
}
