package services

import (
	"time"

	"github.com/clublibertad/clubfees-backend/models"
)

// Store is the persistence surface the fee engine works against. Entities
// reference each other by id only; relationships are resolved through these
// lookups rather than held as live object references.
//
// InTx runs fn against a transaction-scoped Store: every write made through
// it becomes visible together on commit, or not at all.
type Store interface {
	InTx(fn func(Store) error) error

	// Membership reads
	GetMember(id int64) (*models.Member, error)
	GetSport(id int64) (*models.Sport, error)
	GetPromotion(id int64) (*models.Promotion, error)
	ListActiveEnrollments() ([]models.Enrollment, error)

	// Fees
	CreateFee(fee *models.Fee) error
	GetFee(id int64) (*models.Fee, error)
	ListFees() ([]models.Fee, error)
	ListFeesByMember(memberID int64) ([]models.Fee, error)
	ListPendingFeesDueBy(asOf time.Time) ([]models.Fee, error)
	UpdateFeeState(id int64, state models.FeeState) error
	MarkFeeOverdueIfPending(id int64) (bool, error)
	MarkFeePaid(id int64, paymentID int64) error
	DeleteFeesByMember(memberID int64) error

	// Payments and allocations
	CreatePayment(payment *models.Payment) error
	GetPayment(id int64) (*models.Payment, error)
	ListPayments() ([]models.Payment, error)
	CreateAllocation(allocation *models.PaymentAllocation) error
	ListAllocationsByPayment(paymentID int64) ([]models.PaymentAllocation, error)
	DeleteAllocationsByMember(memberID int64) error
	DeletePaymentsByPayer(payerID int64) error

	// Member cascade cleanup
	DeleteEnrollmentsByMember(memberID int64) error
	ClearPromotionReference(memberID int64) error
	ClearResponsibleReferences(memberID int64) error
	DeleteMember(id int64) error
}

// MembershipStore is the persistence surface for membership CRUD, implemented
// alongside Store by the repository layer.
type MembershipStore interface {
	CreateMember(member *models.Member) error
	ListMembers() ([]models.Member, error)
	SetMemberActive(id int64, active bool) error

	CreateSport(sport *models.Sport) error
	UpdateSport(sport *models.Sport) error
	ListSports() ([]models.Sport, error)

	CreateEnrollment(enrollment *models.Enrollment) error
	CancelEnrollment(id int64, cancelledAt time.Time) error
	ListEnrollments() ([]models.Enrollment, error)

	CreatePromotion(promotion *models.Promotion) error
	ListPromotions() ([]models.Promotion, error)
	SetPromotionActive(id int64, active bool) error
}
