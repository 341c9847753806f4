package exercises

import "time"

// Set is one logged strength-training set.
// Date is the training day (UTC midnight); CreatedAt is when the row was logged.
type Set struct {
	ID           int               `json:"id"`
	UserID       int               `json:"userId"`
	Date         time.Time         `json:"date"`
	ExerciseName string            `json:"exerciseName"`
	MuscleGroup  string            `json:"muscleGroup"`
	SetNumber    int               `json:"setNumber"`
	Kilos        float64           `json:"kilos"`
	Reps         int               `json:"reps"`
	CreatedAt    time.Time         `json:"createdAt"`
	Metadata     map[string]string `json:"metadata"`
}
