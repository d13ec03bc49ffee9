package services

import (
	"log"
	"time"

	"github.com/clublibertad/clubfees-backend/utils"
)

// GenerationService creates the month's fees for every active enrollment.
// The operation is idempotent: fees that already exist for the period are
// skipped, so it can be re-run safely at any time.
type GenerationService struct {
	store Store
}

// NewGenerationService creates a new generation service
func NewGenerationService(store Store) *GenerationService {
	return &GenerationService{store: store}
}

// GenerateForPeriod creates a fee for every active enrollment that does not
// have one for the period yet, and returns the number of fees created. A
// zero period means the current month.
func (s *GenerationService) GenerateForPeriod(period time.Time) (int, error) {
	if period.IsZero() {
		period = utils.CurrentPeriod()
	}
	if err := utils.ValidatePeriod(period); err != nil {
		return 0, err
	}
	period = period.UTC()
	dueDate := utils.DueDateFor(period)

	enrollments, err := s.store.ListActiveEnrollments()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, enrollment := range enrollments {
		member, err := s.store.GetMember(enrollment.MemberID)
		if err != nil {
			return created, err
		}
		sport, err := s.store.GetSport(enrollment.SportID)
		if err != nil {
			return created, err
		}
		promotion, err := promotionForMember(s.store, member)
		if err != nil {
			return created, err
		}

		fee := buildFee(member.ID, sport, promotion, period, dueDate, "")
		if err := s.store.CreateFee(fee); err != nil {
			if utils.IsConflict(err) {
				// Already generated for this enrollment and period
				continue
			}
			return created, err
		}
		created++
	}

	log.Printf("Fee generation for period %s created %d fees", period.Format("2006-01"), created)
	return created, nil
}
