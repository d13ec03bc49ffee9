// repository/membership_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

// MembershipRepository handles the plain CRUD side of members, sports,
// enrollments and promotions. The fee engine reads these entities through
// the Store instead.
type MembershipRepository struct {
	DB *sql.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *sql.DB) *MembershipRepository {
	return &MembershipRepository{DB: db}
}

// CreateMember inserts a member record
func (r *MembershipRepository) CreateMember(member *models.Member) error {
	query := `
		INSERT INTO members (first_name, last_name, document, email, phone, active,
			promotion_id, responsible_member_id, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRow(query, member.FirstName, member.LastName, member.Document,
		member.Email, member.Phone, member.Active, member.PromotionID,
		member.ResponsibleMemberID, member.RegisteredAt).Scan(&member.ID)
	if err != nil {
		return fmt.Errorf("failed to insert member: %v", err)
	}
	return nil
}

// ListMembers retrieves all members
func (r *MembershipRepository) ListMembers() ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY last_name, first_name, id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %v", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		members = append(members, *member)
	}
	return members, rows.Err()
}

// SetMemberActive updates a member's active flag
func (r *MembershipRepository) SetMemberActive(id int64, active bool) error {
	result, err := r.DB.Exec(`UPDATE members SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update member: %v", err)
	}
	return requireRowAffected(result, "Member")
}

// CreateSport inserts a sport record
func (r *MembershipRepository) CreateSport(sport *models.Sport) error {
	query := `
		INSERT INTO sports (name, description, trainer_fee, insurance_fee, social_fee, monthly_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRow(query, sport.Name, sport.Description, sport.TrainerFee,
		sport.InsuranceFee, sport.SocialFee, sport.MonthlyAmount).Scan(&sport.ID)
	if err != nil {
		return fmt.Errorf("failed to insert sport: %v", err)
	}
	return nil
}

// UpdateSport saves a sport's fields, including its recomputed monthly amount
func (r *MembershipRepository) UpdateSport(sport *models.Sport) error {
	query := `
		UPDATE sports
		SET name = $1, description = $2, trainer_fee = $3, insurance_fee = $4,
			social_fee = $5, monthly_amount = $6
		WHERE id = $7
	`
	result, err := r.DB.Exec(query, sport.Name, sport.Description, sport.TrainerFee,
		sport.InsuranceFee, sport.SocialFee, sport.MonthlyAmount, sport.ID)
	if err != nil {
		return fmt.Errorf("failed to update sport: %v", err)
	}
	return requireRowAffected(result, "Sport")
}

// ListSports retrieves all sports
func (r *MembershipRepository) ListSports() ([]models.Sport, error) {
	query := `
		SELECT id, name, description, trainer_fee, insurance_fee, social_fee, monthly_amount
		FROM sports
		ORDER BY name, id
	`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %v", err)
	}
	defer rows.Close()

	var sports []models.Sport
	for rows.Next() {
		var sport models.Sport
		err := rows.Scan(&sport.ID, &sport.Name, &sport.Description, &sport.TrainerFee,
			&sport.InsuranceFee, &sport.SocialFee, &sport.MonthlyAmount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sport: %v", err)
		}
		sports = append(sports, sport)
	}
	return sports, rows.Err()
}

// CreateEnrollment inserts an enrollment record
func (r *MembershipRepository) CreateEnrollment(enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (member_id, sport_id, enrolled_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRow(query, enrollment.MemberID, enrollment.SportID,
		enrollment.EnrolledAt).Scan(&enrollment.ID)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %v", err)
	}
	return nil
}

// CancelEnrollment sets an enrollment's cancellation date if not already set
func (r *MembershipRepository) CancelEnrollment(id int64, cancelledAt time.Time) error {
	result, err := r.DB.Exec(
		`UPDATE enrollments SET cancelled_at = $1 WHERE id = $2 AND cancelled_at IS NULL`,
		cancelledAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to cancel enrollment: %v", err)
	}
	return requireRowAffected(result, "Enrollment")
}

// ListEnrollments retrieves all enrollments, active and cancelled
func (r *MembershipRepository) ListEnrollments() ([]models.Enrollment, error) {
	query := `SELECT id, member_id, sport_id, enrolled_at, cancelled_at FROM enrollments ORDER BY id`
	rows, err := r.DB.Query(query)
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

// CreatePromotion inserts a promotion record
func (r *MembershipRepository) CreatePromotion(promotion *models.Promotion) error {
	query := `
		INSERT INTO promotions (name, description, kind, value, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRow(query, promotion.Name, promotion.Description, promotion.Kind,
		promotion.Value, promotion.Active).Scan(&promotion.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return utils.NewConflictError("promotion name already exists")
		}
		return fmt.Errorf("failed to insert promotion: %v", err)
	}
	return nil
}

// ListPromotions retrieves all promotions
func (r *MembershipRepository) ListPromotions() ([]models.Promotion, error) {
	query := `SELECT id, name, description, kind, value, active FROM promotions ORDER BY name, id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query promotions: %v", err)
	}
	defer rows.Close()

	var promotions []models.Promotion
	for rows.Next() {
		var promotion models.Promotion
		err := rows.Scan(&promotion.ID, &promotion.Name, &promotion.Description,
			&promotion.Kind, &promotion.Value, &promotion.Active)
		if err != nil {
			return nil, fmt.Errorf("failed to scan promotion: %v", err)
		}
		promotions = append(promotions, promotion)
	}
	return promotions, rows.Err()
}

// SetPromotionActive updates a promotion's active flag
func (r *MembershipRepository) SetPromotionActive(id int64, active bool) error {
	result, err := r.DB.Exec(`UPDATE promotions SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update promotion: %v", err)
	}
	return requireRowAffected(result, "Promotion")
}
