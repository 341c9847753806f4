package events

import (
	"errors"
	"math"
	"time"

	"github.com/2beens/fitstats/pkg"
)

var ErrInvalidValue = errors.New("invalid event value")

type WeightReport struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	WeightKg  float64   `json:"weightKg"`
}

type CalorieIntake struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Calories  float64   `json:"calories"`
	Meal      string    `json:"meal,omitempty"`
}

type CalorieBurn struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
	Calories  float64   `json:"calories"`
	Activity  string    `json:"activity,omitempty"`
}

// Event (DB level type) is a date-scoped energy input of a user:
//   - weight report (value in kilos)
//   - calorie intake (value in kcal)
//   - active calorie burn (value in kcal)
type Event struct {
	ID        int               `json:"id"`
	UserID    int               `json:"userId"`
	Type      EventType         `json:"type"`
	Date      time.Time         `json:"date"`
	Timestamp time.Time         `json:"timestamp"`
	Value     float64           `json:"value"`
	Data      map[string]string `json:"data"`
}

// Validate checks the value range of the event type.
func (e Event) Validate() error {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return ErrInvalidValue
	}
	switch e.Type {
	case EventTypeWeightReport:
		if e.Value <= 0 {
			return ErrInvalidValue
		}
	case EventTypeCalorieIntake, EventTypeCalorieBurn:
		if e.Value < 0 {
			return ErrInvalidValue
		}
	default:
		return errors.New("invalid event type")
	}
	return nil
}

// normalizeTimes fills a missing timestamp with now and a missing date with
// the timestamp's day.
func normalizeTimes(date, timestamp time.Time) (time.Time, time.Time) {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	if date.IsZero() {
		date = timestamp
	}
	return pkg.Day(date), timestamp
}

func NewWeightReportEvent(userID int, wr WeightReport) Event {
	date, ts := normalizeTimes(wr.Date, wr.Timestamp)
	return Event{
		ID:        wr.ID,
		UserID:    userID,
		Type:      EventTypeWeightReport,
		Date:      date,
		Timestamp: ts,
		Value:     wr.WeightKg,
		Data:      map[string]string{},
	}
}

func NewCalorieIntakeEvent(userID int, ci CalorieIntake) Event {
	date, ts := normalizeTimes(ci.Date, ci.Timestamp)
	data := map[string]string{}
	if ci.Meal != "" {
		data["meal"] = ci.Meal
	}
	return Event{
		ID:        ci.ID,
		UserID:    userID,
		Type:      EventTypeCalorieIntake,
		Date:      date,
		Timestamp: ts,
		Value:     ci.Calories,
		Data:      data,
	}
}

func NewCalorieBurnEvent(userID int, cb CalorieBurn) Event {
	date, ts := normalizeTimes(cb.Date, cb.Timestamp)
	data := map[string]string{}
	if cb.Activity != "" {
		data["activity"] = cb.Activity
	}
	return Event{
		ID:        cb.ID,
		UserID:    userID,
		Type:      EventTypeCalorieBurn,
		Date:      date,
		Timestamp: ts,
		Value:     cb.Calories,
		Data:      data,
	}
}

// EventType can be one of:
//   - weight_report
//   - calorie_intake
//   - calorie_burn
type EventType string

const (
	EventTypeWeightReport  EventType = "weight_report"
	EventTypeCalorieIntake EventType = "calorie_intake"
	EventTypeCalorieBurn   EventType = "calorie_burn"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeWeightReport,
		EventTypeCalorieIntake,
		EventTypeCalorieBurn:
		return true
	default:
		return false
	}
}
