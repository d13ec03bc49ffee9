package services

import (
	"github.com/shopspring/decimal"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

var oneHundred = decimal.NewFromInt(100)

// ApplyDiscount applies a promotion to a base amount. An absent or inactive
// promotion leaves the amount unchanged, and the result never goes below
// zero no matter how large the discount is.
func ApplyDiscount(base decimal.Decimal, promotion *models.Promotion) decimal.Decimal {
	if promotion == nil || !promotion.Active {
		return base
	}

	var discount decimal.Decimal
	switch promotion.Kind {
	case models.DiscountPercentage:
		discount = base.Mul(promotion.Value).Div(oneHundred)
	case models.DiscountFixedAmount:
		discount = promotion.Value
	default:
		// Unknown kinds are rejected at creation time; treat as no discount
		return base
	}

	final := base.Sub(discount).Round(utils.MoneyScale)
	if final.Sign() < 0 {
		return decimal.Zero
	}
	return final
}

// PromotionService handles promotion rules and their lifecycle
type PromotionService struct {
	store      Store
	membership MembershipStore
}

// NewPromotionService creates a new promotion service
func NewPromotionService(store Store, membership MembershipStore) *PromotionService {
	return &PromotionService{store: store, membership: membership}
}

// CreatePromotion creates a new promotion rule
func (s *PromotionService) CreatePromotion(req *models.CreatePromotionRequest) (*models.Promotion, error) {
	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, utils.NewValidationError("kind must be PERCENTAGE or FIXED_AMOUNT")
	}
	if err := utils.ValidateNonNegativeAmount(req.Value, "value"); err != nil {
		return nil, err
	}

	promotion := &models.Promotion{
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		Value:       req.Value.Round(utils.MoneyScale),
		Active:      true,
	}
	if err := s.membership.CreatePromotion(promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// GetPromotion retrieves a promotion by ID
func (s *PromotionService) GetPromotion(id int64) (*models.Promotion, error) {
	return s.store.GetPromotion(id)
}

// ListPromotions retrieves all promotions
func (s *PromotionService) ListPromotions() ([]models.Promotion, error) {
	return s.membership.ListPromotions()
}

// SetActive toggles a promotion's active flag. Historical fees keep the
// amounts they were generated with; the change only affects future
// calculations.
func (s *PromotionService) SetActive(id int64, active bool) error {
	return s.membership.SetPromotionActive(id, active)
}

// promotionForMember resolves the promotion a member currently has attached,
// or nil when none is set
func promotionForMember(store Store, member *models.Member) (*models.Promotion, error) {
	if member.PromotionID == nil {
		return nil, nil
	}
	return store.GetPromotion(*member.PromotionID)
}
