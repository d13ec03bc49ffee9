// repository/membership_queries.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

const memberColumns = `id, first_name, last_name, document, email, phone, active,
		promotion_id, responsible_member_id, registered_at`

// GetMember retrieves a member by its ID
func (s *Store) GetMember(id int64) (*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	member, err := scanMember(s.q.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Member")
		}
		return nil, fmt.Errorf("failed to get member: %v", err)
	}
	return member, nil
}

// GetSport retrieves a sport by its ID
func (s *Store) GetSport(id int64) (*models.Sport, error) {
	query := `
		SELECT id, name, description, trainer_fee, insurance_fee, social_fee, monthly_amount
		FROM sports
		WHERE id = $1
	`
	var sport models.Sport
	err := s.q.QueryRow(query, id).Scan(&sport.ID, &sport.Name, &sport.Description,
		&sport.TrainerFee, &sport.InsuranceFee, &sport.SocialFee, &sport.MonthlyAmount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Sport")
		}
		return nil, fmt.Errorf("failed to get sport: %v", err)
	}
	return &sport, nil
}

// GetPromotion retrieves a promotion by its ID
func (s *Store) GetPromotion(id int64) (*models.Promotion, error) {
	query := `SELECT id, name, description, kind, value, active FROM promotions WHERE id = $1`
	var promotion models.Promotion
	err := s.q.QueryRow(query, id).Scan(&promotion.ID, &promotion.Name, &promotion.Description,
		&promotion.Kind, &promotion.Value, &promotion.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Promotion")
		}
		return nil, fmt.Errorf("failed to get promotion: %v", err)
	}
	return &promotion, nil
}

// ListActiveEnrollments retrieves all enrollments without a cancellation date
func (s *Store) ListActiveEnrollments() ([]models.Enrollment, error) {
	query := `
		SELECT id, member_id, sport_id, enrolled_at, cancelled_at
		FROM enrollments
		WHERE cancelled_at IS NULL
		ORDER BY id
	`
	rows, err := s.q.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %v", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %v", err)
		}
		enrollments = append(enrollments, *enrollment)
	}
	return enrollments, rows.Err()
}

// DeleteEnrollmentsByMember deletes every enrollment of a member
func (s *Store) DeleteEnrollmentsByMember(memberID int64) error {
	_, err := s.q.Exec(`DELETE FROM enrollments WHERE member_id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete enrollments: %v", err)
	}
	return nil
}

// ClearPromotionReference removes a member's promotion reference
func (s *Store) ClearPromotionReference(memberID int64) error {
	_, err := s.q.Exec(`UPDATE members SET promotion_id = NULL WHERE id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("failed to clear promotion reference: %v", err)
	}
	return nil
}

// ClearResponsibleReferences nulls out other members' responsible-member
// references pointing at the given member
func (s *Store) ClearResponsibleReferences(memberID int64) error {
	_, err := s.q.Exec(
		`UPDATE members SET responsible_member_id = NULL WHERE responsible_member_id = $1`,
		memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear responsible member references: %v", err)
	}
	return nil
}

// DeleteMember deletes the member record itself
func (s *Store) DeleteMember(id int64) error {
	result, err := s.q.Exec(`DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %v", err)
	}
	return requireRowAffected(result, "Member")
}

func scanMember(row rowScanner) (*models.Member, error) {
	var member models.Member
	var promotionID, responsibleID sql.NullInt64
	err := row.Scan(&member.ID, &member.FirstName, &member.LastName, &member.Document,
		&member.Email, &member.Phone, &member.Active, &promotionID, &responsibleID,
		&member.RegisteredAt)
	if err != nil {
		return nil, err
	}
	if promotionID.Valid {
		member.PromotionID = &promotionID.Int64
	}
	if responsibleID.Valid {
		member.ResponsibleMemberID = &responsibleID.Int64
	}
	return &member, nil
}

func scanEnrollment(row rowScanner) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var cancelledAt sql.NullTime
	err := row.Scan(&enrollment.ID, &enrollment.MemberID, &enrollment.SportID,
		&enrollment.EnrolledAt, &cancelledAt)
	if err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		enrollment.CancelledAt = &cancelledAt.Time
	}
	return &enrollment, nil
}
