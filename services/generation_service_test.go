package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clublibertad/clubfees-backend/models"
)

func TestGenerateForPeriodCreatesOneFeePerActiveEnrollment(t *testing.T) {
	store := newMemStore()
	football := seedSport(store, "Football", 1000, 200, 300)
	tennis := seedSport(store, "Tennis", 800, 100, 100)
	alice := seedMember(store, "30111222", nil)
	bob := seedMember(store, "30111223", nil)
	seedEnrollment(store, alice.ID, football.ID)
	seedEnrollment(store, alice.ID, tennis.ID)
	seedEnrollment(store, bob.ID, football.ID)
	cancelled := seedEnrollment(store, bob.ID, tennis.ID)
	require.NoError(t, store.CancelEnrollment(cancelled.ID, time.Now().UTC()))

	service := NewGenerationService(store)
	created, err := service.GenerateForPeriod(period(2024, time.May))

	require.NoError(t, err)
	assert.Equal(t, 3, created)

	fees, err := store.ListFees()
	require.NoError(t, err)
	require.Len(t, fees, 3)
	for _, fee := range fees {
		assert.Equal(t, models.FeeStatePending, fee.State)
		assert.Equal(t, period(2024, time.May), fee.Period)
		assert.Equal(t, period(2024, time.June), fee.DueDate)
	}
}

func TestGenerateForPeriodIsIdempotent(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Football", 1000, 200, 300)
	member := seedMember(store, "30111224", nil)
	seedEnrollment(store, member.ID, sport.ID)
	service := NewGenerationService(store)

	created, err := service.GenerateForPeriod(period(2024, time.May))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = service.GenerateForPeriod(period(2024, time.May))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	fees, err := store.ListFees()
	require.NoError(t, err)
	assert.Len(t, fees, 1)
}

func TestGenerateForPeriodOnlySkipsExistingTriples(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Football", 1000, 200, 300)
	alice := seedMember(store, "30111225", nil)
	seedEnrollment(store, alice.ID, sport.ID)
	service := NewGenerationService(store)

	_, err := service.GenerateForPeriod(period(2024, time.May))
	require.NoError(t, err)

	// A new enrollment appearing between runs still gets its fee
	bob := seedMember(store, "30111226", nil)
	seedEnrollment(store, bob.ID, sport.ID)

	created, err := service.GenerateForPeriod(period(2024, time.May))
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestGenerateForPeriodAppliesMemberPromotions(t *testing.T) {
	store := newMemStore()
	promotion := seedPromotion(store, models.DiscountFixedAmount, 500, true)
	sport := seedSport(store, "Football", 1000, 200, 300)
	member := seedMember(store, "30111227", &promotion.ID)
	seedEnrollment(store, member.ID, sport.ID)
	service := NewGenerationService(store)

	_, err := service.GenerateForPeriod(period(2024, time.May))
	require.NoError(t, err)

	fees, err := store.ListFeesByMember(member.ID)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.True(t, fees[0].FinalAmount.Equal(dec(1000)), "expected 1000, got %s", fees[0].FinalAmount)
}

func TestGenerateForPeriodRejectsMidMonthPeriod(t *testing.T) {
	store := newMemStore()
	service := NewGenerationService(store)

	_, err := service.GenerateForPeriod(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC))

	assert.Error(t, err)
}
