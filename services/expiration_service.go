package services

import (
	"log"
	"time"
)

// ExpirationService ages unpaid fees: pending fees whose due date has passed
// become overdue.
type ExpirationService struct {
	store Store
}

// NewExpirationService creates a new expiration service
func NewExpirationService(store Store) *ExpirationService {
	return &ExpirationService{store: store}
}

// SweepOverdue transitions every PENDING fee with dueDate <= asOf to OVERDUE
// and returns the number of fees transitioned. A zero asOf means today. Fees
// already OVERDUE or PAID are untouched, so sweeping twice in a row is a
// no-op the second time.
func (s *ExpirationService) SweepOverdue(asOf time.Time) (int, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	fees, err := s.store.ListPendingFeesDueBy(asOf)
	if err != nil {
		return 0, err
	}

	transitioned := 0
	for _, fee := range fees {
		// Guarded update: a fee paid between the read and this write stays PAID
		ok, err := s.store.MarkFeeOverdueIfPending(fee.ID)
		if err != nil {
			return transitioned, err
		}
		if ok {
			transitioned++
		}
	}

	if transitioned > 0 {
		log.Printf("Overdue sweep as of %s transitioned %d fees", asOf.Format("2006-01-02"), transitioned)
	}
	return transitioned, nil
}
