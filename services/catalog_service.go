package services

import (
	"github.com/shopspring/decimal"

	"github.com/clublibertad/clubfees-backend/models"
)

// CatalogService exposes the read-only view of a sport's fee structure
type CatalogService struct {
	store Store
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{store: store}
}

// FeeComponents is the breakdown of a sport's monthly fee
type FeeComponents struct {
	Trainer   decimal.Decimal
	Insurance decimal.Decimal
	Social    decimal.Decimal
}

// Base returns the sum of the three components
func (c FeeComponents) Base() decimal.Decimal {
	return c.Trainer.Add(c.Insurance).Add(c.Social)
}

// ComponentsOf extracts the fee components of a sport
func ComponentsOf(sport *models.Sport) FeeComponents {
	return FeeComponents{
		Trainer:   sport.TrainerFee,
		Insurance: sport.InsuranceFee,
		Social:    sport.SocialFee,
	}
}

// ComponentsFor resolves a sport and returns its fee components
func (s *CatalogService) ComponentsFor(sportID int64) (FeeComponents, error) {
	sport, err := s.store.GetSport(sportID)
	if err != nil {
		return FeeComponents{}, err
	}
	return ComponentsOf(sport), nil
}
