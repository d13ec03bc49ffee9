package services

import (
	"log"
	"time"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

// MemberService handles member records and the referential cleanup when one
// is removed
type MemberService struct {
	store      Store
	membership MembershipStore
}

// NewMemberService creates a new member service
func NewMemberService(store Store, membership MembershipStore) *MemberService {
	return &MemberService{store: store, membership: membership}
}

// CreateMember creates a member record
func (s *MemberService) CreateMember(req *models.CreateMemberRequest) (*models.Member, error) {
	if err := utils.ValidateRequired(req.Document, "document"); err != nil {
		return nil, err
	}
	if req.PromotionID != nil {
		if _, err := s.store.GetPromotion(*req.PromotionID); err != nil {
			return nil, err
		}
	}
	if req.ResponsibleMemberID != nil {
		if _, err := s.store.GetMember(*req.ResponsibleMemberID); err != nil {
			return nil, err
		}
	}

	member := &models.Member{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Document:            req.Document,
		Email:               req.Email,
		Phone:               req.Phone,
		Active:              true,
		PromotionID:         req.PromotionID,
		ResponsibleMemberID: req.ResponsibleMemberID,
		RegisteredAt:        time.Now().UTC(),
	}
	if err := s.membership.CreateMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetMember retrieves a member by ID
func (s *MemberService) GetMember(id int64) (*models.Member, error) {
	return s.store.GetMember(id)
}

// ListMembers retrieves all members
func (s *MemberService) ListMembers() ([]models.Member, error) {
	return s.membership.ListMembers()
}

// SetActive updates a member's active flag
func (s *MemberService) SetActive(id int64, active bool) error {
	return s.membership.SetMemberActive(id, active)
}

// DeleteMember removes a member and everything that references it: fees,
// enrollments, payments made by the member and their allocation rows, the
// promotion reference, and responsible-member references from dependents.
// Everything happens in one transaction; a failure at any step leaves no
// partial deletion behind. The order differs from the reader-facing contract
// only to satisfy foreign keys (allocations before payments and fees).
func (s *MemberService) DeleteMember(id int64, note string) error {
	if _, err := s.store.GetMember(id); err != nil {
		return err
	}

	err := s.store.InTx(func(tx Store) error {
		if err := tx.DeleteAllocationsByMember(id); err != nil {
			return err
		}
		if err := tx.DeletePaymentsByPayer(id); err != nil {
			return err
		}
		if err := tx.DeleteFeesByMember(id); err != nil {
			return err
		}
		if err := tx.DeleteEnrollmentsByMember(id); err != nil {
			return err
		}
		if err := tx.ClearPromotionReference(id); err != nil {
			return err
		}
		if err := tx.ClearResponsibleReferences(id); err != nil {
			return err
		}
		return tx.DeleteMember(id)
	})
	if err != nil {
		return err
	}

	if note != "" {
		log.Printf("Member %d removed: %s", id, note)
	} else {
		log.Printf("Member %d removed", id)
	}
	return nil
}
