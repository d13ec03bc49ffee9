package services

import (
	"github.com/shopspring/decimal"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

// SportService handles sports and their fee components
type SportService struct {
	store      Store
	membership MembershipStore
}

// NewSportService creates a new sport service
func NewSportService(store Store, membership MembershipStore) *SportService {
	return &SportService{store: store, membership: membership}
}

// CreateSport creates a sport. The monthly amount is always the sum of the
// three fee components.
func (s *SportService) CreateSport(req *models.CreateSportRequest) (*models.Sport, error) {
	if err := validateComponents(req.TrainerFee, req.InsuranceFee, req.SocialFee); err != nil {
		return nil, err
	}

	sport := &models.Sport{
		Name:         req.Name,
		Description:  req.Description,
		TrainerFee:   req.TrainerFee.Round(utils.MoneyScale),
		InsuranceFee: req.InsuranceFee.Round(utils.MoneyScale),
		SocialFee:    req.SocialFee.Round(utils.MoneyScale),
	}
	sport.MonthlyAmount = ComponentsOf(sport).Base()

	if err := s.membership.CreateSport(sport); err != nil {
		return nil, err
	}
	return sport, nil
}

// UpdateSport applies a partial update and recomputes the monthly amount.
// Fees generated earlier keep the components they captured.
func (s *SportService) UpdateSport(id int64, req *models.UpdateSportRequest) (*models.Sport, error) {
	sport, err := s.store.GetSport(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sport.Name = *req.Name
	}
	if req.Description != nil {
		sport.Description = *req.Description
	}
	if req.TrainerFee != nil {
		sport.TrainerFee = req.TrainerFee.Round(utils.MoneyScale)
	}
	if req.InsuranceFee != nil {
		sport.InsuranceFee = req.InsuranceFee.Round(utils.MoneyScale)
	}
	if req.SocialFee != nil {
		sport.SocialFee = req.SocialFee.Round(utils.MoneyScale)
	}
	if err := validateComponents(sport.TrainerFee, sport.InsuranceFee, sport.SocialFee); err != nil {
		return nil, err
	}
	sport.MonthlyAmount = ComponentsOf(sport).Base()

	if err := s.membership.UpdateSport(sport); err != nil {
		return nil, err
	}
	return sport, nil
}

// GetSport retrieves a sport by ID
func (s *SportService) GetSport(id int64) (*models.Sport, error) {
	return s.store.GetSport(id)
}

// ListSports retrieves all sports
func (s *SportService) ListSports() ([]models.Sport, error) {
	return s.membership.ListSports()
}

func validateComponents(trainer, insurance, social decimal.Decimal) error {
	if err := utils.ValidateNonNegativeAmount(trainer, "trainerFee"); err != nil {
		return err
	}
	if err := utils.ValidateNonNegativeAmount(insurance, "insuranceFee"); err != nil {
		return err
	}
	return utils.ValidateNonNegativeAmount(social, "socialFee")
}
