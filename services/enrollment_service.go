package services

import (
	"time"

	"github.com/clublibertad/clubfees-backend/models"
)

// EnrollmentService handles member registrations in sports
type EnrollmentService struct {
	store      Store
	membership MembershipStore
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(store Store, membership MembershipStore) *EnrollmentService {
	return &EnrollmentService{store: store, membership: membership}
}

// CreateEnrollment registers a member in a sport
func (s *EnrollmentService) CreateEnrollment(req *models.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if _, err := s.store.GetMember(req.MemberID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetSport(req.SportID); err != nil {
		return nil, err
	}

	enrolledAt := req.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = time.Now().UTC()
	}

	enrollment := &models.Enrollment{
		MemberID:   req.MemberID,
		SportID:    req.SportID,
		EnrolledAt: enrolledAt,
	}
	if err := s.membership.CreateEnrollment(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// CancelEnrollment sets the cancellation date; the enrollment stops feeding
// fee generation from then on
func (s *EnrollmentService) CancelEnrollment(id int64) error {
	return s.membership.CancelEnrollment(id, time.Now().UTC())
}

// ListEnrollments retrieves all enrollments
func (s *EnrollmentService) ListEnrollments() ([]models.Enrollment, error) {
	return s.membership.ListEnrollments()
}

// ListActiveEnrollments retrieves the enrollments without a cancellation date
func (s *EnrollmentService) ListActiveEnrollments() ([]models.Enrollment, error) {
	return s.store.ListActiveEnrollments()
}
