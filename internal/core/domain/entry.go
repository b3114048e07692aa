package domain

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrEntryNotFound covers both a genuinely missing entry and an entry
	// owned by another user. Callers must not be able to tell the two apart.
	ErrEntryNotFound = errors.New("entry not found or unauthorized")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// activityBaseRates maps an activity name to calories burned per minute at
// medium intensity.
var activityBaseRates = map[string]float64{
	"Running":        5,
	"Cycling":        4.2,
	"Weight lifting": 3,
	"Jumping jacks":  6,
	"Plank":          2.5,
}

// intensityMultipliers scales the base rate by workout intensity.
var intensityMultipliers = map[string]float64{
	"slow":    0.8,
	"medium":  1,
	"intense": 2,
}

const (
	fallbackBaseRate   = 5
	fallbackMultiplier = 1
)

// Entry is one logged workout, owned by exactly one user.
type Entry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	ActivityName   string    `json:"activityName"`
	Duration       int       `json:"duration"` // minutes
	Intensity      string    `json:"intensity"`
	CaloriesBurned int       `json:"caloriesBurned"`
	ActivityDate   time.Time `json:"activityDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CalculateCalories derives calories burned from the activity, duration and
// intensity. Unknown activities or intensities fall back to defaults so the
// calculation degrades instead of failing on unexpected values.
func CalculateCalories(activityName string, duration int, intensity string) int {
	rate, ok := activityBaseRates[activityName]
	if !ok {
		rate = fallbackBaseRate
	}
	mult, ok := intensityMultipliers[intensity]
	if !ok {
		mult = fallbackMultiplier
	}
	return int(math.Round(rate * float64(duration) * mult))
}
