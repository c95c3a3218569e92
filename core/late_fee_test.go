package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeenath1324/Mini-project/core"
)

func Test_LateFee(t *testing.T) {
	testCases := []struct {
		name        string
		daysLate    int
		expectedFee int
	}{
		{name: "on time", daysLate: 0, expectedFee: 0},
		{name: "one day late", daysLate: 1, expectedFee: 2},
		{name: "five days late", daysLate: 5, expectedFee: 10},
		{name: "flat rate does not compound", daysLate: 100, expectedFee: 200},
		{name: "largest accepted days late", daysLate: core.MaxDaysLate, expectedFee: core.MaxDaysLate * 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			fee, err := core.LateFee(tc.daysLate)

			// assert
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFee, fee)
		})
	}
}

func Test_LateFee_RejectsDaysLateOutOfRange(t *testing.T) {
	for _, daysLate := range []int{-1, math.MinInt, core.MaxDaysLate + 1, math.MaxInt} {
		// act
		fee, err := core.LateFee(daysLate)

		// assert
		assert.ErrorIs(t, err, core.ErrInvalidInput, "days late %d", daysLate)
		assert.Zero(t, fee, "days late %d", daysLate)
	}
}
