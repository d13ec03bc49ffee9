// models/models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeState is the lifecycle state of a fee.
// Transitions only move forward: PENDING -> OVERDUE -> PAID, or PENDING -> PAID.
type FeeState string

const (
	FeeStatePending FeeState = "PENDING"
	FeeStateOverdue FeeState = "OVERDUE"
	FeeStatePaid    FeeState = "PAID"
)

// Valid reports whether s is one of the known fee states.
func (s FeeState) Valid() bool {
	switch s {
	case FeeStatePending, FeeStateOverdue, FeeStatePaid:
		return true
	}
	return false
}

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "CASH"
	PaymentMethodTransfer    PaymentMethod = "TRANSFER"
	PaymentMethodDirectDebit PaymentMethod = "DIRECT_DEBIT"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodDirectDebit:
		return true
	}
	return false
}

// DiscountKind is the kind of discount a promotion applies.
type DiscountKind string

const (
	DiscountPercentage  DiscountKind = "PERCENTAGE"
	DiscountFixedAmount DiscountKind = "FIXED_AMOUNT"
)

// Valid reports whether k is one of the known discount kinds.
func (k DiscountKind) Valid() bool {
	switch k {
	case DiscountPercentage, DiscountFixedAmount:
		return true
	}
	return false
}

// Member represents a club member
type Member struct {
	ID                  int64     `json:"id"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Document            string    `json:"document"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Active              bool      `json:"active"`
	PromotionID         *int64    `json:"promotionId,omitempty"`
	ResponsibleMemberID *int64    `json:"responsibleMemberId,omitempty"`
	RegisteredAt        time.Time `json:"registeredAt"`
}

// Sport represents a sport offered by the club with its fee components
type Sport struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TrainerFee    decimal.Decimal `json:"trainerFee"`
	InsuranceFee  decimal.Decimal `json:"insuranceFee"`
	SocialFee     decimal.Decimal `json:"socialFee"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
}

// Enrollment links a member to a sport; it is active while CancelledAt is unset
type Enrollment struct {
	ID          int64      `json:"id"`
	MemberID    int64      `json:"memberId"`
	SportID     int64      `json:"sportId"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// Active reports whether the enrollment has not been cancelled.
func (e *Enrollment) Active() bool {
	return e.CancelledAt == nil
}

// Promotion is a discount rule optionally attached to a member
type Promotion struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Kind        DiscountKind    `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Active      bool            `json:"active"`
}

// Fee is one member's billing obligation for one sport for one calendar period.
// The period is the first day of the month the fee covers, and the
// (MemberID, SportID, Period) triple is unique.
type Fee struct {
	ID              int64           `json:"id"`
	MemberID        int64           `json:"memberId"`
	SportID         int64           `json:"sportId"`
	Period          time.Time       `json:"period"`
	TrainerAmount   decimal.Decimal `json:"trainerAmount"`
	InsuranceAmount decimal.Decimal `json:"insuranceAmount"`
	SocialAmount    decimal.Decimal `json:"socialAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	State           FeeState        `json:"state"`
	DueDate         time.Time       `json:"dueDate"`
	GeneratedDate   time.Time       `json:"generatedDate"`
	Note            string          `json:"note,omitempty"`
	PaymentID       *int64          `json:"paymentId,omitempty"`
}

// BaseAmount returns the sum of the three fee components before any discount.
func (f *Fee) BaseAmount() decimal.Decimal {
	return f.TrainerAmount.Add(f.InsuranceAmount).Add(f.SocialAmount)
}

// Payment is a single monetary transaction by a member, settling one or more fees
type Payment struct {
	ID             int64           `json:"id"`
	ReceiptNumber  string          `json:"receiptNumber"`
	PayerID        int64           `json:"payerId"`
	PaymentDate    time.Time       `json:"paymentDate"`
	Method         PaymentMethod   `json:"method"`
	TrainerTotal   decimal.Decimal `json:"trainerTotal"`
	InsuranceTotal decimal.Decimal `json:"insuranceTotal"`
	SocialTotal    decimal.Decimal `json:"socialTotal"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PaymentAllocation records how much of a payment settled a specific fee.
// A fee is settled by at most one payment, so FeeID is unique.
type PaymentAllocation struct {
	ID            int64           `json:"id"`
	PaymentID     int64           `json:"paymentId"`
	FeeID         int64           `json:"feeId"`
	AppliedAmount decimal.Decimal `json:"appliedAmount"`
}
