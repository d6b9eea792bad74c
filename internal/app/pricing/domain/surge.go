package domain

import (
	"math/big"
	"time"
)

// Surge adjustment constants.
var (
	surgeWeekendBonus = big.NewRat(3, 10) // Saturday or Sunday
	surgePeakBonus    = big.NewRat(2, 10) // 10:00-17:59
	surgeNightFactor  = big.NewRat(7, 10) // 00:00-06:59
	surgeCeiling      = big.NewRat(3, 2)
)

// SurgeCalculator derives a time-of-day/day-of-week price factor for a
// target service slot. Stateless and safe for concurrent use.
type SurgeCalculator struct{}

// NewSurgeCalculator creates a SurgeCalculator.
func NewSurgeCalculator() *SurgeCalculator {
	return &SurgeCalculator{}
}

// Multiplier computes the surge factor for the given service date and
// "HH:MM" time of day. The result is always within [0.7, 1.5].
//
// Weekend and peak-hour surcharges are additive and can stack to +0.50
// before the ceiling applies; the late-night discount is multiplicative
// on whatever has accumulated. A zero date or a missing/malformed time
// contributes nothing, so absent scheduling info degrades to 1.0
// rather than erroring.
func (s *SurgeCalculator) Multiplier(date time.Time, timeOfDay string) *big.Rat {
	factor := big.NewRat(1, 1)

	if !date.IsZero() {
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			factor.Add(factor, surgeWeekendBonus)
		}
	}

	if hour, ok := parseHour(timeOfDay); ok {
		if hour >= 10 && hour <= 17 {
			factor.Add(factor, surgePeakBonus)
		}
		if hour < 7 {
			factor.Mul(factor, surgeNightFactor)
		}
	}

	if factor.Cmp(surgeCeiling) > 0 {
		return new(big.Rat).Set(surgeCeiling)
	}
	return factor
}

// parseHour extracts the hour from an "HH:MM" string.
func parseHour(timeOfDay string) (int, bool) {
	if timeOfDay == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}
