package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

// PaymentService creates payments and settles the fees they cover
type PaymentService struct {
	store Store
}

// NewPaymentService creates a new payment service
func NewPaymentService(store Store) *PaymentService {
	return &PaymentService{store: store}
}

// AllocatePayment creates a payment for the given fees and marks them PAID,
// all inside one transaction. The policy for bad fee references is fail-fast:
// an unknown fee id aborts the whole allocation with NotFound, and a fee that
// is already paid aborts it with Conflict. Totals are always computed from
// the settled fees, never taken from the caller.
func (s *PaymentService) AllocatePayment(req *models.AllocatePaymentRequest) (*models.Payment, error) {
	if !req.Method.Valid() {
		return nil, utils.NewValidationError("method must be CASH, TRANSFER or DIRECT_DEBIT")
	}
	if err := utils.ValidateNotEmpty(req.FeeIDs, "feeIds"); err != nil {
		return nil, err
	}

	if _, err := s.store.GetMember(req.PayerID); err != nil {
		return nil, err
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	var payment *models.Payment
	err := s.store.InTx(func(tx Store) error {
		fees := make([]*models.Fee, 0, len(req.FeeIDs))
		seen := make(map[int64]bool, len(req.FeeIDs))
		trainerTotal, insuranceTotal, socialTotal, grandTotal := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero

		for _, feeID := range req.FeeIDs {
			if seen[feeID] {
				return utils.NewValidationError(fmt.Sprintf("fee %d listed twice", feeID))
			}
			seen[feeID] = true

			fee, err := tx.GetFee(feeID)
			if err != nil {
				return err
			}
			if fee.State == models.FeeStatePaid {
				return utils.NewConflictError(fmt.Sprintf("fee %d is already paid", feeID))
			}

			fees = append(fees, fee)
			trainerTotal = trainerTotal.Add(fee.TrainerAmount)
			insuranceTotal = insuranceTotal.Add(fee.InsuranceAmount)
			socialTotal = socialTotal.Add(fee.SocialAmount)
			grandTotal = grandTotal.Add(fee.FinalAmount)
		}

		created := &models.Payment{
			ReceiptNumber:  uuid.NewString(),
			PayerID:        req.PayerID,
			PaymentDate:    paymentDate,
			Method:         req.Method,
			TrainerTotal:   trainerTotal,
			InsuranceTotal: insuranceTotal,
			SocialTotal:    socialTotal,
			GrandTotal:     grandTotal,
			Notes:          req.Notes,
			CreatedAt:      time.Now().UTC(),
		}
		if err := tx.CreatePayment(created); err != nil {
			return err
		}

		for _, fee := range fees {
			if err := tx.MarkFeePaid(fee.ID, created.ID); err != nil {
				return err
			}
			allocation := &models.PaymentAllocation{
				PaymentID:     created.ID,
				FeeID:         fee.ID,
				AppliedAmount: fee.FinalAmount,
			}
			if err := tx.CreateAllocation(allocation); err != nil {
				return err
			}
		}

		payment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a payment together with its allocation rows
func (s *PaymentService) GetPayment(id int64) (*models.PaymentDetail, error) {
	payment, err := s.store.GetPayment(id)
	if err != nil {
		return nil, err
	}
	allocations, err := s.store.ListAllocationsByPayment(id)
	if err != nil {
		return nil, err
	}
	return &models.PaymentDetail{Payment: *payment, Allocations: allocations}, nil
}

// ListPayments retrieves all payments
func (s *PaymentService) ListPayments() ([]models.Payment, error) {
	return s.store.ListPayments()
}
