package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOf(t *testing.T) {
	period := PeriodOf(time.Date(2024, time.May, 17, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), period)
}

func TestDueDateFor(t *testing.T) {
	period := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), DueDateFor(period))

	// Year rollover
	december := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), DueDateFor(december))
}

func TestValidatePeriod(t *testing.T) {
	assert.NoError(t, ValidatePeriod(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))

	assert.Error(t, ValidatePeriod(time.Time{}))
	assert.Error(t, ValidatePeriod(time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)))
	assert.Error(t, ValidatePeriod(time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)))
}
