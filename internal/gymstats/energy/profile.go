package energy

import (
	"time"

	"github.com/2beens/fitstats/internal/gymstats/profile"
)

const maxPlausibleAge = 130

// EnergyProfile is either Complete or Incomplete. Callers type-switch on it.
type EnergyProfile interface {
	isEnergyProfile()
}

// Complete carries every input the maintenance formula needs.
type Complete struct {
	Sex           profile.Sex
	Age           int
	HeightCm      float64
	ActivityLevel profile.ActivityLevel
}

// Incomplete lists the inputs that are missing or invalid.
type Incomplete struct {
	Missing []string
}

func (Complete) isEnergyProfile()   {}
func (Incomplete) isEnergyProfile() {}

// ResolveProfile turns the nullable profile fields into an EnergyProfile,
// computing the age as of the given date.
func ResolveProfile(p *profile.Profile, asOf time.Time) EnergyProfile {
	if p == nil {
		return Incomplete{Missing: []string{"sex", "birthDate", "heightCm", "activityLevel"}}
	}

	var missing []string
	var c Complete

	if p.Sex == nil || !p.Sex.IsValid() {
		missing = append(missing, "sex")
	} else {
		c.Sex = *p.Sex
	}

	if p.BirthDate == nil {
		missing = append(missing, "birthDate")
	} else {
		c.Age = profile.AgeAt(*p.BirthDate, asOf)
		if c.Age < 0 || c.Age > maxPlausibleAge {
			missing = append(missing, "age")
		}
	}

	if p.HeightCm == nil || !validPositive(*p.HeightCm) {
		missing = append(missing, "heightCm")
	} else {
		c.HeightCm = *p.HeightCm
	}

	if p.ActivityLevel == nil {
		missing = append(missing, "activityLevel")
	} else if level, ok := profile.ParseActivityLevel(*p.ActivityLevel); !ok {
		missing = append(missing, "activityLevel")
	} else {
		c.ActivityLevel = level
	}

	if len(missing) > 0 {
		return Incomplete{Missing: missing}
	}
	return c
}
