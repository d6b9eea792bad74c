package domain

import "math/big"

// CleaningType classifies the kind of cleaning booked.
type CleaningType string

// Known cleaning types.
const (
	CleaningStandard   CleaningType = "standard"
	CleaningDeep       CleaningType = "deep"
	CleaningMoveInOut  CleaningType = "move_in_out"
	CleaningCommercial CleaningType = "commercial"
	CleaningWindow     CleaningType = "window"
	CleaningCarpet     CleaningType = "carpet"
)

// Frequency is how often the booking recurs.
type Frequency string

// Known frequencies.
const (
	FrequencyOnce     Frequency = "once"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Urgency is how soon the service is needed. "normal"/"standard" and
// "express"/"urgent" are accepted as aliases for the same levels.
type Urgency string

// Known urgency levels.
const (
	UrgencyNormal    Urgency = "normal"
	UrgencyStandard  Urgency = "standard"
	UrgencyExpress   Urgency = "express"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

var neutralMultiplier = big.NewRat(1, 1)

// Multiplier returns the price factor for the cleaning type.
// Unrecognized values fall back to the neutral 1.0 so a malformed enum
// degrades the quote gracefully instead of failing it.
func (t CleaningType) Multiplier() *big.Rat {
	switch t {
	case CleaningStandard:
		return big.NewRat(1, 1)
	case CleaningDeep:
		return big.NewRat(15, 10)
	case CleaningMoveInOut:
		return big.NewRat(18, 10)
	case CleaningCommercial:
		return big.NewRat(2, 1)
	case CleaningWindow:
		return big.NewRat(8, 10)
	case CleaningCarpet:
		return big.NewRat(9, 10)
	default:
		return neutralMultiplier
	}
}

// Multiplier returns the price factor for the booking frequency.
// Recurring bookings are discounted relative to one-off ones.
// Unrecognized values fall back to the neutral 1.0.
func (f Frequency) Multiplier() *big.Rat {
	switch f {
	case FrequencyOnce:
		return big.NewRat(1, 1)
	case FrequencyWeekly:
		return big.NewRat(8, 10)
	case FrequencyBiweekly:
		return big.NewRat(9, 10)
	case FrequencyMonthly:
		return big.NewRat(95, 100)
	default:
		return neutralMultiplier
	}
}

// Multiplier returns the price factor for the urgency level.
// Unrecognized values fall back to the neutral 1.0.
func (u Urgency) Multiplier() *big.Rat {
	switch u {
	case UrgencyNormal, UrgencyStandard:
		return big.NewRat(1, 1)
	case UrgencyExpress, UrgencyUrgent:
		return big.NewRat(13, 10)
	case UrgencyEmergency:
		return big.NewRat(15, 10)
	default:
		return neutralMultiplier
	}
}
