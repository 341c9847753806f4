package profile

import (
	"strings"
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var activityAliases = map[string]ActivityLevel{
	"lightly_active":    ActivityLight,
	"lightly":           ActivityLight,
	"moderately_active": ActivityModerate,
	"moderately":        ActivityModerate,
	"extra_active":      ActivityVeryActive,
	"extremely_active":  ActivityVeryActive,
	"super_active":      ActivityVeryActive,
}

// ParseActivityLevel normalizes case, spaces and dashes and resolves aliases.
func ParseActivityLevel(s string) (ActivityLevel, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	level := ActivityLevel(key)
	if _, ok := activityMultipliers[level]; ok {
		return level, true
	}
	if alias, ok := activityAliases[key]; ok {
		return alias, true
	}
	return "", false
}

// Multiplier returns the TDEE coefficient of the level.
func (al ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[al]
	return m, ok
}

// Profile holds the biometrics the energy calculation needs. Every field is
// optional; a missing one makes maintenance unavailable, never guessed.
type Profile struct {
	UserID        int        `json:"userId"`
	Sex           *Sex       `json:"sex"`
	BirthDate     *time.Time `json:"birthDate"`
	HeightCm      *float64   `json:"heightCm"`
	ActivityLevel *string    `json:"activityLevel"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AgeAt returns the age in whole years on the given date.
func AgeAt(birthDate, asOf time.Time) int {
	age := asOf.Year() - birthDate.Year()
	if asOf.Before(birthDate.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
