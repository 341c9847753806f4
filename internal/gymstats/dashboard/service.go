package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/exercises"
	"github.com/2beens/fitstats/internal/gymstats/insights"
	"github.com/2beens/fitstats/internal/gymstats/series"
	"github.com/2beens/fitstats/internal/gymstats/strength"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard

const (
	DefaultInsightDays = 30
	MaxInsightDays     = 365
)

var ErrInvalidRange = errors.New("invalid range")

type setsReader interface {
	ListAll(ctx context.Context, params exercises.SetParams) ([]exercises.Set, error)
}

type snapshotsReader interface {
	List(ctx context.Context, userID int, from, to *time.Time) ([]energy.Snapshot, error)
}

type InsightsView struct {
	From         time.Time                 `json:"from"`
	To           time.Time                 `json:"to"`
	RangeDays    int                       `json:"rangeDays"`
	Correlations []insights.Correlation    `json:"correlations"`
	Improvements []insights.Insight        `json:"improvements"`
	Suggestions  []insights.Insight        `json:"suggestions"`
	Achievements []insights.AchievementSet `json:"achievements"`
}

// Service loads one user's raw rows for a window and runs them through the
// scorer, the aggregator and the insight rules.
type Service struct {
	sets      setsReader
	snapshots snapshotsReader
	now       func() time.Time
}

func NewService(sets setsReader, snapshots snapshotsReader) *Service {
	return &Service{
		sets:      sets,
		snapshots: snapshots,
		now:       time.Now,
	}
}

func (s *Service) sessionScores(ctx context.Context, userID int, from, to *time.Time) ([]strength.SessionScore, error) {
	sets, err := s.sets.ListAll(ctx, exercises.SetParams{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return strength.SessionScores(sets), nil
}

func (s *Service) Sessions(ctx context.Context, userID int, from, to *time.Time) (_ []strength.SessionScore, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return s.sessionScores(ctx, userID, from, to)
}

func (s *Service) Progress(ctx context.Context, userID int, from, to *time.Time, mode series.Mode) (_ *series.ProgressDatasets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("mode", string(mode)))

	scores, err := s.sessionScores(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	datasets := series.BuildProgressDatasets(scores, mode)
	return &datasets, nil
}

func (s *Service) MuscleGroups(
	ctx context.Context,
	userID int,
	from, to *time.Time,
	mode series.Mode,
	maxExercisesPerGroup int,
) (_ []series.MuscleGroupDataset, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.muscleGroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	scores, err := s.sessionScores(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return series.BuildMuscleGroupDatasets(scores, mode, maxExercisesPerGroup), nil
}

// Insights covers the last days days up to today. Achievements always look
// at their own windows, so the rows loaded span at least the longest of them.
func (s *Service) Insights(ctx context.Context, userID int, days int) (_ *InsightsView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.insights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("days", days))

	if days < 1 || days > MaxInsightDays {
		return nil, fmt.Errorf("%w: days must be within [1, %d]", ErrInvalidRange, MaxInsightDays)
	}

	now := s.now()
	to := pkg.Day(now)
	from := to.AddDate(0, 0, -(days - 1))
	loadFrom := from
	for _, w := range insights.DefaultWindows {
		if windowStart := to.AddDate(0, 0, -(w - 1)); windowStart.Before(loadFrom) {
			loadFrom = windowStart
		}
	}

	scores, err := s.sessionScores(ctx, userID, &loadFrom, &to)
	if err != nil {
		return nil, err
	}
	snapshots, err := s.snapshots.List(ctx, userID, &loadFrom, &to)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	all := newDailySeries(scores, snapshots)
	ranged := all.between(from, to)

	return &InsightsView{
		From:      from,
		To:        to,
		RangeDays: days,
		Correlations: []insights.Correlation{
			insights.Correlate("strength vs net calories", ranged.strength, ranged.net),
			insights.Correlate("bodyweight vs net calories", ranged.weight, ranged.net),
			insights.Correlate("strength vs calorie intake", ranged.strength, ranged.intake),
			insights.Correlate("strength vs active burn", ranged.strength, ranged.burn),
		},
		Improvements: insights.Improvements(ranged.ruleInput(days)),
		Suggestions:  insights.Suggestions(ranged.ruleInput(days)),
		Achievements: insights.Achievements(insights.AchievementInput{
			AsOf:     now,
			Strength: all.strength,
			Burn:     all.burn,
			Net:      all.net,
		}),
	}, nil
}

// dailySeries holds the day-level metrics the insight engine works on.
type dailySeries struct {
	strength insights.Series
	weight   insights.Series
	intake   insights.Series
	burn     insights.Series
	net      insights.Series
}

func newDailySeries(scores []strength.SessionScore, snapshots []energy.Snapshot) dailySeries {
	var ds dailySeries

	strengthByDay := make(map[string]float64)
	var days []time.Time
	for _, score := range scores {
		key := pkg.DateKey(score.Date)
		if _, ok := strengthByDay[key]; !ok {
			days = append(days, pkg.Day(score.Date))
		}
		strengthByDay[key] += score.SessionStrength
	}
	for _, d := range days {
		ds.strength = append(ds.strength, insights.Sample{Date: d, Value: strengthByDay[pkg.DateKey(d)]})
	}

	for _, snapshot := range snapshots {
		ds.weight = appendSample(ds.weight, snapshot.Date, snapshot.WeightKg)
		ds.intake = appendSample(ds.intake, snapshot.Date, snapshot.CaloriesIn)
		ds.burn = appendSample(ds.burn, snapshot.Date, snapshot.ActiveCaloriesBurn)
		ds.net = appendSample(ds.net, snapshot.Date, snapshot.NetCalories)
	}
	return ds
}

func appendSample(s insights.Series, date time.Time, value *float64) insights.Series {
	if value == nil {
		return s
	}
	return append(s, insights.Sample{Date: pkg.Day(date), Value: *value})
}

func (ds dailySeries) between(from, to time.Time) dailySeries {
	keep := func(s insights.Series) insights.Series {
		var kept insights.Series
		for _, sample := range s {
			if sample.Date.Before(from) || sample.Date.After(to) {
				continue
			}
			kept = append(kept, sample)
		}
		return kept
	}
	return dailySeries{
		strength: keep(ds.strength),
		weight:   keep(ds.weight),
		intake:   keep(ds.intake),
		burn:     keep(ds.burn),
		net:      keep(ds.net),
	}
}

func (ds dailySeries) ruleInput(days int) insights.RuleInput {
	return insights.RuleInput{
		RangeDays: days,
		Strength:  ds.strength,
		Weight:    ds.weight,
		Intake:    ds.intake,
		Net:       ds.net,
	}
}
