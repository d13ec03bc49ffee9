package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

func period(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateFeeAppliesPromotionToComponentSum(t *testing.T) {
	store := newMemStore()
	promotion := seedPromotion(store, models.DiscountPercentage, 10, true)
	sport := seedSport(store, "Football", 1000, 200, 300)
	member := seedMember(store, "40111222", &promotion.ID)
	service := NewFeeService(store)

	fee, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID,
		SportID:  sport.ID,
		Period:   period(2024, time.May),
	})

	require.NoError(t, err)
	assert.Equal(t, models.FeeStatePending, fee.State)
	assert.True(t, fee.TrainerAmount.Equal(dec(1000)))
	assert.True(t, fee.InsuranceAmount.Equal(dec(200)))
	assert.True(t, fee.SocialAmount.Equal(dec(300)))
	assert.True(t, fee.FinalAmount.Equal(dec(1350)), "expected 1350, got %s", fee.FinalAmount)
	assert.Equal(t, period(2024, time.June), fee.DueDate)
	assert.Nil(t, fee.PaymentID)
}

func TestCreateFeeDuplicatePeriodConflicts(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Tennis", 800, 100, 100)
	member := seedMember(store, "40111223", nil)
	service := NewFeeService(store)

	req := &models.CreateFeeRequest{
		MemberID: member.ID,
		SportID:  sport.ID,
		Period:   period(2024, time.May),
	}
	_, err := service.CreateFee(req)
	require.NoError(t, err)

	_, err = service.CreateFee(req)
	assert.True(t, utils.IsConflict(err), "expected conflict, got %v", err)
}

func TestCreateFeeSamePairDifferentPeriodSucceeds(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Tennis", 800, 100, 100)
	member := seedMember(store, "40111224", nil)
	service := NewFeeService(store)

	_, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID, SportID: sport.ID, Period: period(2024, time.May),
	})
	require.NoError(t, err)

	_, err = service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID, SportID: sport.ID, Period: period(2024, time.June),
	})
	assert.NoError(t, err)
}

func TestCreateFeeRejectsMidMonthPeriod(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Swimming", 500, 50, 50)
	member := seedMember(store, "40111225", nil)
	service := NewFeeService(store)

	_, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID,
		SportID:  sport.ID,
		Period:   time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
}

func TestCreateFeeUnknownMemberOrSport(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Swimming", 500, 50, 50)
	member := seedMember(store, "40111226", nil)
	service := NewFeeService(store)

	_, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: 9999, SportID: sport.ID, Period: period(2024, time.May),
	})
	assert.True(t, utils.IsNotFound(err))

	_, err = service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID, SportID: 9999, Period: period(2024, time.May),
	})
	assert.True(t, utils.IsNotFound(err))
}

func TestCreateFeeHonorsExplicitDueDate(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Chess", 200, 0, 50)
	member := seedMember(store, "40111227", nil)
	service := NewFeeService(store)

	dueDate := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	fee, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID,
		SportID:  sport.ID,
		Period:   period(2024, time.May),
		DueDate:  dueDate,
	})

	require.NoError(t, err)
	assert.Equal(t, dueDate, fee.DueDate)
}

func TestCreateFeeCapturesComponentsAtCreationTime(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Football", 1000, 200, 300)
	member := seedMember(store, "40111228", nil)
	service := NewFeeService(store)

	fee, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID, SportID: sport.ID, Period: period(2024, time.May),
	})
	require.NoError(t, err)

	// Raising the sport's price later must not rewrite the generated fee
	sportService := NewSportService(store, store)
	newTrainer := dec(2000)
	_, err = sportService.UpdateSport(sport.ID, &models.UpdateSportRequest{TrainerFee: &newTrainer})
	require.NoError(t, err)

	kept, err := store.GetFee(fee.ID)
	require.NoError(t, err)
	assert.True(t, kept.TrainerAmount.Equal(dec(1000)))
	assert.True(t, kept.FinalAmount.Equal(dec(1500)))
}

func TestChangeFeeStateRejectsUnknownState(t *testing.T) {
	store := newMemStore()
	service := NewFeeService(store)

	err := service.ChangeFeeState(1, models.FeeState("CANCELLED"))

	assert.Error(t, err)
}

func TestChangeFeeStateIsAnUnguardedOverride(t *testing.T) {
	store := newMemStore()
	sport := seedSport(store, "Football", 1000, 200, 300)
	member := seedMember(store, "40111229", nil)
	service := NewFeeService(store)

	fee, err := service.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID, SportID: sport.ID, Period: period(2024, time.May),
	})
	require.NoError(t, err)

	// The manual override may move a fee backwards to correct mistakes
	require.NoError(t, service.ChangeFeeState(fee.ID, models.FeeStatePaid))
	require.NoError(t, service.ChangeFeeState(fee.ID, models.FeeStatePending))

	kept, err := store.GetFee(fee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FeeStatePending, kept.State)
}

func TestListFeesByMemberUnknownMember(t *testing.T) {
	store := newMemStore()
	service := NewFeeService(store)

	_, err := service.ListFeesByMember(42)

	assert.True(t, utils.IsNotFound(err))
}
