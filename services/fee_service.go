package services

import (
	"time"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

// FeeService owns the fee entity's lifecycle: creation with the
// one-fee-per-member/sport/period identity, reads, and the manual state
// override.
type FeeService struct {
	store Store
}

// NewFeeService creates a new fee service
func NewFeeService(store Store) *FeeService {
	return &FeeService{store: store}
}

// CreateFee creates a single fee for a member, sport and period. The amount
// breakdown is captured from the sport's current fee components and the
// member's active promotion, so later catalog changes do not rewrite history.
// Returns a Conflict error if a fee for the triple already exists.
func (s *FeeService) CreateFee(req *models.CreateFeeRequest) (*models.Fee, error) {
	if err := utils.ValidatePeriod(req.Period); err != nil {
		return nil, err
	}
	period := req.Period.UTC()

	member, err := s.store.GetMember(req.MemberID)
	if err != nil {
		return nil, err
	}
	sport, err := s.store.GetSport(req.SportID)
	if err != nil {
		return nil, err
	}
	promotion, err := promotionForMember(s.store, member)
	if err != nil {
		return nil, err
	}

	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = utils.DueDateFor(period)
	}

	fee := buildFee(member.ID, sport, promotion, period, dueDate, req.Note)
	if err := s.store.CreateFee(fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// ChangeFeeState sets a fee's state directly. This is the administrative
// escape hatch: it does not enforce the forward-only transition order, so
// callers can correct data-entry mistakes. The engine paths never move a fee
// backwards.
func (s *FeeService) ChangeFeeState(id int64, state models.FeeState) error {
	if !state.Valid() {
		return utils.NewValidationError("state must be PENDING, OVERDUE or PAID")
	}
	return s.store.UpdateFeeState(id, state)
}

// GetFee retrieves a fee by ID
func (s *FeeService) GetFee(id int64) (*models.Fee, error) {
	return s.store.GetFee(id)
}

// ListFees retrieves all fees
func (s *FeeService) ListFees() ([]models.Fee, error) {
	return s.store.ListFees()
}

// ListFeesByMember retrieves the fees owned by one member
func (s *FeeService) ListFeesByMember(memberID int64) ([]models.Fee, error) {
	if _, err := s.store.GetMember(memberID); err != nil {
		return nil, err
	}
	return s.store.ListFeesByMember(memberID)
}

// buildFee assembles a PENDING fee from a sport's components and an optional
// promotion
func buildFee(memberID int64, sport *models.Sport, promotion *models.Promotion, period, dueDate time.Time, note string) *models.Fee {
	components := ComponentsOf(sport)
	return &models.Fee{
		MemberID:        memberID,
		SportID:         sport.ID,
		Period:          period,
		TrainerAmount:   components.Trainer,
		InsuranceAmount: components.Insurance,
		SocialAmount:    components.Social,
		FinalAmount:     ApplyDiscount(components.Base(), promotion),
		State:           models.FeeStatePending,
		DueDate:         dueDate,
		GeneratedDate:   time.Now().UTC(),
		Note:            note,
	}
}
