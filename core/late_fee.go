package core

import (
	"fmt"
	"math"
)

// FeeRatePerDay is the flat charge per day late, in currency units.
const FeeRatePerDay = 2

// MaxDaysLate is the largest daysLate whose fee still fits into an int.
const MaxDaysLate = math.MaxInt / FeeRatePerDay

// LateFee computes the non-compounding late fee for a check-in.
// daysLate outside [0, MaxDaysLate] is rejected with ErrInvalidInput.
func LateFee(daysLate int) (int, error) {
	if daysLate < 0 {
		return 0, fmt.Errorf("%w: days late must not be negative, got %d", ErrInvalidInput, daysLate)
	}

	if daysLate > MaxDaysLate {
		return 0, fmt.Errorf("%w: days late must not exceed %d, got %d", ErrInvalidInput, MaxDaysLate, daysLate)
	}

	return daysLate * FeeRatePerDay, nil
}
