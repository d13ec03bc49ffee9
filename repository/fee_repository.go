// repository/fee_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

const feeColumns = `id, member_id, sport_id, period, trainer_amount, insurance_amount,
		social_amount, final_amount, state, due_date, generated_date, note, payment_id`

// CreateFee inserts a fee. The unique constraint on (member_id, sport_id,
// period) turns a concurrent duplicate insert into a Conflict error.
func (s *Store) CreateFee(fee *models.Fee) error {
	query := `
		INSERT INTO fees (member_id, sport_id, period, trainer_amount, insurance_amount,
			social_amount, final_amount, state, due_date, generated_date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := s.q.QueryRow(query, fee.MemberID, fee.SportID, fee.Period, fee.TrainerAmount,
		fee.InsuranceAmount, fee.SocialAmount, fee.FinalAmount, fee.State,
		fee.DueDate, fee.GeneratedDate, fee.Note).Scan(&fee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return utils.NewConflictError("fee already exists for this member, sport and period")
		}
		return fmt.Errorf("failed to insert fee: %v", err)
	}

	return nil
}

// GetFee retrieves a fee by its ID
func (s *Store) GetFee(id int64) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE id = $1`
	fee, err := scanFee(s.q.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Fee")
		}
		return nil, fmt.Errorf("failed to get fee: %v", err)
	}
	return fee, nil
}

// ListFees retrieves all fees ordered by period
func (s *Store) ListFees() ([]models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees ORDER BY period DESC, id`
	return s.queryFees(query)
}

// ListFeesByMember retrieves all fees owned by a member
func (s *Store) ListFeesByMember(memberID int64) ([]models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE member_id = $1 ORDER BY period DESC, id`
	return s.queryFees(query, memberID)
}

// ListPendingFeesDueBy retrieves pending fees whose due date has passed
func (s *Store) ListPendingFeesDueBy(asOf time.Time) ([]models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE state = $1 AND due_date <= $2 ORDER BY due_date, id`
	return s.queryFees(query, models.FeeStatePending, asOf)
}

// UpdateFeeState sets a fee's state without checking the current state.
// Reserved for the manual correction path; the engine uses the guarded
// MarkFeeOverdueIfPending / MarkFeePaid updates instead.
func (s *Store) UpdateFeeState(id int64, state models.FeeState) error {
	result, err := s.q.Exec(`UPDATE fees SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return fmt.Errorf("failed to update fee state: %v", err)
	}
	return requireRowAffected(result, "Fee")
}

// MarkFeeOverdueIfPending transitions a fee to OVERDUE only if it is still
// PENDING, and reports whether the transition happened. A fee that became
// PAID in the meantime is left untouched.
func (s *Store) MarkFeeOverdueIfPending(id int64) (bool, error) {
	result, err := s.q.Exec(
		`UPDATE fees SET state = $1 WHERE id = $2 AND state = $3`,
		models.FeeStateOverdue, id, models.FeeStatePending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark fee overdue: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}
	return affected > 0, nil
}

// MarkFeePaid transitions a fee to PAID and links it to its payment
func (s *Store) MarkFeePaid(id int64, paymentID int64) error {
	result, err := s.q.Exec(
		`UPDATE fees SET state = $1, payment_id = $2 WHERE id = $3`,
		models.FeeStatePaid, paymentID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark fee paid: %v", err)
	}
	return requireRowAffected(result, "Fee")
}

// DeleteFeesByMember deletes every fee owned by a member
func (s *Store) DeleteFeesByMember(memberID int64) error {
	_, err := s.q.Exec(`DELETE FROM fees WHERE member_id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete fees: %v", err)
	}
	return nil
}

func (s *Store) queryFees(query string, args ...interface{}) ([]models.Fee, error) {
	rows, err := s.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fees: %v", err)
	}
	defer rows.Close()

	var fees []models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee: %v", err)
		}
		fees = append(fees, *fee)
	}
	return fees, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFee(row rowScanner) (*models.Fee, error) {
	var fee models.Fee
	var paymentID sql.NullInt64
	err := row.Scan(&fee.ID, &fee.MemberID, &fee.SportID, &fee.Period,
		&fee.TrainerAmount, &fee.InsuranceAmount, &fee.SocialAmount, &fee.FinalAmount,
		&fee.State, &fee.DueDate, &fee.GeneratedDate, &fee.Note, &paymentID)
	if err != nil {
		return nil, err
	}
	if paymentID.Valid {
		fee.PaymentID = &paymentID.Int64
	}
	return &fee, nil
}

func requireRowAffected(result sql.Result, resource string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return utils.NewNotFoundError(resource)
	}
	return nil
}
