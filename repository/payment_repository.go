// repository/payment_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

const paymentColumns = `id, receipt_number, payer_id, payment_date, method,
		trainer_total, insurance_total, social_total, grand_total, notes, created_at`

// CreatePayment inserts a payment record
func (s *Store) CreatePayment(payment *models.Payment) error {
	query := `
		INSERT INTO payments (receipt_number, payer_id, payment_date, method,
			trainer_total, insurance_total, social_total, grand_total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := s.q.QueryRow(query, payment.ReceiptNumber, payment.PayerID, payment.PaymentDate,
		payment.Method, payment.TrainerTotal, payment.InsuranceTotal, payment.SocialTotal,
		payment.GrandTotal, payment.Notes, payment.CreatedAt).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}

	return nil
}

// GetPayment retrieves a payment by its ID
func (s *Store) GetPayment(id int64) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	payment, err := scanPayment(s.q.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Payment")
		}
		return nil, fmt.Errorf("failed to get payment: %v", err)
	}
	return payment, nil
}

// ListPayments retrieves all payments, newest first
func (s *Store) ListPayments() ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC, id DESC`
	rows, err := s.q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %v", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %v", err)
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

// CreateAllocation inserts a payment allocation row. The unique constraint on
// fee_id guarantees a fee is settled by at most one payment.
func (s *Store) CreateAllocation(allocation *models.PaymentAllocation) error {
	query := `
		INSERT INTO payment_allocations (payment_id, fee_id, applied_amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.q.QueryRow(query, allocation.PaymentID, allocation.FeeID,
		allocation.AppliedAmount).Scan(&allocation.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return utils.NewConflictError("fee is already settled by another payment")
		}
		return fmt.Errorf("failed to insert payment allocation: %v", err)
	}

	return nil
}

// ListAllocationsByPayment retrieves the allocation rows of a payment
func (s *Store) ListAllocationsByPayment(paymentID int64) ([]models.PaymentAllocation, error) {
	query := `
		SELECT id, payment_id, fee_id, applied_amount
		FROM payment_allocations
		WHERE payment_id = $1
		ORDER BY id
	`
	rows, err := s.q.Query(query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment allocations: %v", err)
	}
	defer rows.Close()

	var allocations []models.PaymentAllocation
	for rows.Next() {
		var allocation models.PaymentAllocation
		err := rows.Scan(&allocation.ID, &allocation.PaymentID, &allocation.FeeID,
			&allocation.AppliedAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment allocation: %v", err)
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

// DeleteAllocationsByMember deletes allocation rows attached to a member's
// payments or to a member's fees, ahead of deleting the payments and fees
// themselves.
func (s *Store) DeleteAllocationsByMember(memberID int64) error {
	query := `
		DELETE FROM payment_allocations
		WHERE payment_id IN (SELECT id FROM payments WHERE payer_id = $1)
		   OR fee_id IN (SELECT id FROM fees WHERE member_id = $1)
	`
	_, err := s.q.Exec(query, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete payment allocations: %v", err)
	}
	return nil
}

// DeletePaymentsByPayer deletes every payment made by a member. Fees settled
// by those payments are detached first so the payment rows can go; a payer's
// own fees are deleted separately by the cascade.
func (s *Store) DeletePaymentsByPayer(payerID int64) error {
	_, err := s.q.Exec(
		`UPDATE fees SET payment_id = NULL WHERE payment_id IN (SELECT id FROM payments WHERE payer_id = $1)`,
		payerID,
	)
	if err != nil {
		return fmt.Errorf("failed to detach fees from payments: %v", err)
	}

	_, err = s.q.Exec(`DELETE FROM payments WHERE payer_id = $1`, payerID)
	if err != nil {
		return fmt.Errorf("failed to delete payments: %v", err)
	}
	return nil
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(&payment.ID, &payment.ReceiptNumber, &payment.PayerID, &payment.PaymentDate,
		&payment.Method, &payment.TrainerTotal, &payment.InsuranceTotal, &payment.SocialTotal,
		&payment.GrandTotal, &payment.Notes, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
