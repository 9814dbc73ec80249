// Package profile computes daily energy needs for the optional user
// profile shown beside an analysis. The profile is display-only context; it
// never feeds back into analysis or caching.
package profile

import (
	"fmt"
	"math"
)

// Gender as used by the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales basal metabolic rate to total daily expenditure.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "lightly_active"
	ActivityModerate  ActivityLevel = "moderately_active"
	ActivityVery      ActivityLevel = "very_active"
	ActivityExtra     ActivityLevel = "extra_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtra:     1.9,
}

// UserProfile carries the inputs for a TDEE estimate.
type UserProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// Validate checks ranges before computing.
func (p UserProfile) Validate() error {
	if p.Age <= 0 || p.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120")
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("gender must be %q or %q", GenderMale, GenderFemale)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("height must be positive")
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("unknown activity level: %q", p.ActivityLevel)
	}
	return nil
}

// BMR returns basal metabolic rate in kcal/day via Mifflin-St Jeor.
func (p UserProfile) BMR() float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE returns total daily energy expenditure in kcal/day, rounded to the
// nearest whole calorie.
func (p UserProfile) TDEE() int {
	return int(math.Round(p.BMR() * activityMultipliers[p.ActivityLevel]))
}
