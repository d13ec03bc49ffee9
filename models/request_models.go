// models/request_models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFeeRequest request model
type CreateFeeRequest struct {
	MemberID int64     `json:"memberId" binding:"required"`
	SportID  int64     `json:"sportId" binding:"required"`
	Period   time.Time `json:"period" binding:"required"`
	DueDate  time.Time `json:"dueDate"`
	Note     string    `json:"note"`
}

// ChangeFeeStateRequest request model
type ChangeFeeStateRequest struct {
	State FeeState `json:"state" binding:"required"`
}

// GenerateFeesRequest request model; Period defaults to the current month
type GenerateFeesRequest struct {
	Period time.Time `json:"period"`
}

// GenerateFeesResponse response model
type GenerateFeesResponse struct {
	Period  time.Time `json:"period"`
	Created int       `json:"created"`
}

// SweepOverdueRequest request model; AsOf defaults to today
type SweepOverdueRequest struct {
	AsOf time.Time `json:"asOf"`
}

// SweepOverdueResponse response model
type SweepOverdueResponse struct {
	AsOf         time.Time `json:"asOf"`
	Transitioned int       `json:"transitioned"`
}

// AllocatePaymentRequest request model
type AllocatePaymentRequest struct {
	PayerID     int64         `json:"payerId" binding:"required"`
	PaymentDate time.Time     `json:"paymentDate"`
	Method      PaymentMethod `json:"method" binding:"required"`
	FeeIDs      []int64       `json:"feeIds" binding:"required,min=1"`
	Notes       string        `json:"notes"`
}

// PaymentDetail is a payment together with its allocations
type PaymentDetail struct {
	Payment     Payment             `json:"payment"`
	Allocations []PaymentAllocation `json:"allocations"`
}

// DeleteMemberRequest request model
type DeleteMemberRequest struct {
	Note string `json:"note"`
}

// CreateMemberRequest request model
type CreateMemberRequest struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Document            string `json:"document" binding:"required"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	PromotionID         *int64 `json:"promotionId"`
	ResponsibleMemberID *int64 `json:"responsibleMemberId"`
}

// CreateSportRequest request model
type CreateSportRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	TrainerFee   decimal.Decimal `json:"trainerFee"`
	InsuranceFee decimal.Decimal `json:"insuranceFee"`
	SocialFee    decimal.Decimal `json:"socialFee"`
}

// UpdateSportRequest request model; nil fields are left unchanged
type UpdateSportRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	TrainerFee   *decimal.Decimal `json:"trainerFee"`
	InsuranceFee *decimal.Decimal `json:"insuranceFee"`
	SocialFee    *decimal.Decimal `json:"socialFee"`
}

// CreateEnrollmentRequest request model
type CreateEnrollmentRequest struct {
	MemberID   int64     `json:"memberId" binding:"required"`
	SportID    int64     `json:"sportId" binding:"required"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

// CreatePromotionRequest request model
type CreatePromotionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Kind        DiscountKind    `json:"kind" binding:"required"`
	Value       decimal.Decimal `json:"value"`
}

// SetPromotionActiveRequest request model
type SetPromotionActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
