//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/events"
	"github.com/2beens/fitstats/internal/gymstats/profile"
)

func (s *IntegrationTestSuite) TestEnergySnapshotFromEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const userID = "/users/101"
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	sex := profile.Sex("male")
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	height := 180.0
	activity := "moderately_active"
	var gotProfile profile.Profile
	status, body := s.doJSON(ctx, http.MethodPut, userID+"/profile", profile.Profile{
		Sex:           &sex,
		BirthDate:     &birth,
		HeightCm:      &height,
		ActivityLevel: &activity,
	}, &gotProfile)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Require().NotNil(gotProfile.ActivityLevel)
	s.Equal("moderate", *gotProfile.ActivityLevel)

	status, body = s.doJSON(ctx, http.MethodPost, userID+"/events/weight", events.WeightReport{
		Date:      day,
		Timestamp: day.Add(8 * time.Hour),
		WeightKg:  80,
	}, nil)
	s.Require().Equal(http.StatusCreated, status, string(body))

	for _, calories := range []float64{2500, 300} {
		status, body = s.doJSON(ctx, http.MethodPost, userID+"/events/intake", events.CalorieIntake{
			Date:      day,
			Timestamp: day.Add(12 * time.Hour),
			Calories:  calories,
		}, nil)
		s.Require().Equal(http.StatusCreated, status, string(body))
	}

	status, body = s.doJSON(ctx, http.MethodPost, userID+"/events/burn", events.CalorieBurn{
		Date:      day,
		Timestamp: day.Add(18 * time.Hour),
		Calories:  400,
		Activity:  "run",
	}, nil)
	s.Require().Equal(http.StatusCreated, status, string(body))

	var snapshots []energy.Snapshot
	status, body = s.doJSON(ctx, http.MethodGet, userID+"/energy/snapshots?from=2024-03-10&to=2024-03-10", nil, &snapshots)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Require().Len(snapshots, 1)

	snapshot := snapshots[0]
	s.Require().NotNil(snapshot.WeightKg)
	s.Require().NotNil(snapshot.CaloriesIn)
	s.Require().NotNil(snapshot.ActiveCaloriesBurn)
	s.Require().NotNil(snapshot.MaintenanceForDay)
	s.Require().NotNil(snapshot.TotalBurn)
	s.Require().NotNil(snapshot.NetCalories)
	s.Require().NotNil(snapshot.BMI)
	s.InDelta(80, *snapshot.WeightKg, 0.001)
	s.InDelta(2800, *snapshot.CaloriesIn, 0.001)
	s.InDelta(400, *snapshot.ActiveCaloriesBurn, 0.001)
	s.InDelta(2728, *snapshot.MaintenanceForDay, 0.5)
	s.InDelta(3128, *snapshot.TotalBurn, 0.5)
	s.InDelta(-328, *snapshot.NetCalories, 0.5)
	s.InDelta(24.7, *snapshot.BMI, 0.05)

	var maintenance energy.CurrentMaintenance
	status, body = s.doJSON(ctx, http.MethodGet, userID+"/energy/maintenance", nil, &maintenance)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Require().NotNil(maintenance.WeightKg)
	s.InDelta(80, *maintenance.WeightKg, 0.001)
	s.NotNil(maintenance.Maintenance)
}

func (s *IntegrationTestSuite) TestEnergyRecomputeEmptyDay() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var resp energy.RecomputeResponse
	status, body := s.doJSON(ctx, http.MethodPost, "/users/102/energy/recompute?date=2024-01-05", nil, &resp)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Equal("2024-01-05", resp.Date)
	s.True(resp.Deleted)
	s.Nil(resp.Snapshot)

	var snapshots []energy.Snapshot
	status, body = s.doJSON(ctx, http.MethodGet, "/users/102/energy/snapshots", nil, &snapshots)
	s.Require().Equal(http.StatusOK, status, string(body))
	s.Empty(snapshots)
}

func (s *IntegrationTestSuite) TestInvalidEventRejected() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status, _ := s.doJSON(ctx, http.MethodPost, "/users/103/events/weight", events.WeightReport{
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		WeightKg: -5,
	}, nil)
	s.Equal(http.StatusBadRequest, status)

	status, _ = s.doJSON(ctx, http.MethodGet, "/users/103/profile", nil, nil)
	s.Equal(http.StatusNotFound, status)
}
