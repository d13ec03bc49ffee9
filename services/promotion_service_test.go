package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clublibertad/clubfees-backend/models"
)

func TestApplyDiscountPercentage(t *testing.T) {
	promotion := &models.Promotion{Kind: models.DiscountPercentage, Value: dec(10), Active: true}

	final := ApplyDiscount(dec(1500), promotion)

	assert.True(t, final.Equal(dec(1350)), "expected 1350, got %s", final)
}

func TestApplyDiscountFixedAmount(t *testing.T) {
	promotion := &models.Promotion{Kind: models.DiscountFixedAmount, Value: dec(200), Active: true}

	final := ApplyDiscount(dec(1500), promotion)

	assert.True(t, final.Equal(dec(1300)), "expected 1300, got %s", final)
}

func TestApplyDiscountNeverGoesBelowZero(t *testing.T) {
	promotion := &models.Promotion{Kind: models.DiscountFixedAmount, Value: dec(150), Active: true}

	final := ApplyDiscount(dec(100), promotion)

	assert.True(t, final.Equal(decimal.Zero), "expected 0, got %s", final)
}

func TestApplyDiscountWithoutPromotion(t *testing.T) {
	final := ApplyDiscount(dec(1500), nil)

	assert.True(t, final.Equal(dec(1500)))
}

func TestApplyDiscountInactivePromotionIsIgnored(t *testing.T) {
	promotion := &models.Promotion{Kind: models.DiscountPercentage, Value: dec(50), Active: false}

	final := ApplyDiscount(dec(1500), promotion)

	assert.True(t, final.Equal(dec(1500)))
}

func TestApplyDiscountRoundsToTwoDecimals(t *testing.T) {
	promotion := &models.Promotion{Kind: models.DiscountPercentage, Value: dec(33.33), Active: true}

	final := ApplyDiscount(dec(100), promotion)

	assert.True(t, final.Equal(dec(66.67)), "expected 66.67, got %s", final)
}

func TestCreatePromotionRejectsUnknownKind(t *testing.T) {
	store := newMemStore()
	service := NewPromotionService(store, store)

	_, err := service.CreatePromotion(&models.CreatePromotionRequest{
		Name:  "Bad kind",
		Kind:  models.DiscountKind("RAFFLE"),
		Value: dec(10),
	})

	assert.Error(t, err)
}

func TestCreatePromotionRejectsNegativeValue(t *testing.T) {
	store := newMemStore()
	service := NewPromotionService(store, store)

	_, err := service.CreatePromotion(&models.CreatePromotionRequest{
		Name:  "Negative",
		Kind:  models.DiscountPercentage,
		Value: dec(-5),
	})

	assert.Error(t, err)
}

func TestSetPromotionActiveDoesNotRewriteExistingFees(t *testing.T) {
	store := newMemStore()
	promotion := seedPromotion(store, models.DiscountPercentage, 10, true)
	sport := seedSport(store, "Basketball", 1000, 200, 300)
	member := seedMember(store, "11222333", &promotion.ID)

	feeService := NewFeeService(store)
	fee, err := feeService.CreateFee(&models.CreateFeeRequest{
		MemberID: member.ID,
		SportID:  sport.ID,
		Period:   period(2024, 5),
	})
	require.NoError(t, err)

	promotionService := NewPromotionService(store, store)
	require.NoError(t, promotionService.SetActive(promotion.ID, false))

	kept, err := store.GetFee(fee.ID)
	require.NoError(t, err)
	assert.True(t, kept.FinalAmount.Equal(dec(1350)))
}
