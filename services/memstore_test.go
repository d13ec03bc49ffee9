package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clublibertad/clubfees-backend/models"
	"github.com/clublibertad/clubfees-backend/utils"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// memStore is an in-memory Store and MembershipStore so the engine tests run
// without a database. InTx snapshots the maps and restores them when fn
// fails, matching the all-or-nothing behavior of the real transactions.
type memStore struct {
	members     map[int64]*models.Member
	sports      map[int64]*models.Sport
	promotions  map[int64]*models.Promotion
	enrollments map[int64]*models.Enrollment
	fees        map[int64]*models.Fee
	payments    map[int64]*models.Payment
	allocations map[int64]*models.PaymentAllocation
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		members:     make(map[int64]*models.Member),
		sports:      make(map[int64]*models.Sport),
		promotions:  make(map[int64]*models.Promotion),
		enrollments: make(map[int64]*models.Enrollment),
		fees:        make(map[int64]*models.Fee),
		payments:    make(map[int64]*models.Payment),
		allocations: make(map[int64]*models.PaymentAllocation),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) snapshot() *memStore {
	s := newMemStore()
	s.nextID = m.nextID
	for k, v := range m.members {
		cp := *v
		s.members[k] = &cp
	}
	for k, v := range m.sports {
		cp := *v
		s.sports[k] = &cp
	}
	for k, v := range m.promotions {
		cp := *v
		s.promotions[k] = &cp
	}
	for k, v := range m.enrollments {
		cp := *v
		s.enrollments[k] = &cp
	}
	for k, v := range m.fees {
		cp := *v
		s.fees[k] = &cp
	}
	for k, v := range m.payments {
		cp := *v
		s.payments[k] = &cp
	}
	for k, v := range m.allocations {
		cp := *v
		s.allocations[k] = &cp
	}
	return s
}

func (m *memStore) InTx(fn func(Store) error) error {
	before := m.snapshot()
	if err := fn(m); err != nil {
		*m = *before
		return err
	}
	return nil
}

// Membership reads

func (m *memStore) GetMember(id int64) (*models.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, utils.NewNotFoundError("Member")
	}
	cp := *member
	return &cp, nil
}

func (m *memStore) GetSport(id int64) (*models.Sport, error) {
	sport, ok := m.sports[id]
	if !ok {
		return nil, utils.NewNotFoundError("Sport")
	}
	cp := *sport
	return &cp, nil
}

func (m *memStore) GetPromotion(id int64) (*models.Promotion, error) {
	promotion, ok := m.promotions[id]
	if !ok {
		return nil, utils.NewNotFoundError("Promotion")
	}
	cp := *promotion
	return &cp, nil
}

func (m *memStore) ListActiveEnrollments() ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range m.enrollments {
		if e.CancelledAt == nil {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Fees

func (m *memStore) CreateFee(fee *models.Fee) error {
	for _, existing := range m.fees {
		if existing.MemberID == fee.MemberID && existing.SportID == fee.SportID &&
			existing.Period.Equal(fee.Period) {
			return utils.NewConflictError("fee already exists for this member, sport and period")
		}
	}
	fee.ID = m.id()
	cp := *fee
	m.fees[fee.ID] = &cp
	return nil
}

func (m *memStore) GetFee(id int64) (*models.Fee, error) {
	fee, ok := m.fees[id]
	if !ok {
		return nil, utils.NewNotFoundError("Fee")
	}
	cp := *fee
	return &cp, nil
}

func (m *memStore) ListFees() ([]models.Fee, error) {
	var out []models.Fee
	for _, f := range m.fees {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ListFeesByMember(memberID int64) ([]models.Fee, error) {
	var out []models.Fee
	for _, f := range m.fees {
		if f.MemberID == memberID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ListPendingFeesDueBy(asOf time.Time) ([]models.Fee, error) {
	var out []models.Fee
	for _, f := range m.fees {
		if f.State == models.FeeStatePending && !f.DueDate.After(asOf) {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) UpdateFeeState(id int64, state models.FeeState) error {
	fee, ok := m.fees[id]
	if !ok {
		return utils.NewNotFoundError("Fee")
	}
	fee.State = state
	return nil
}

func (m *memStore) MarkFeeOverdueIfPending(id int64) (bool, error) {
	fee, ok := m.fees[id]
	if !ok || fee.State != models.FeeStatePending {
		return false, nil
	}
	fee.State = models.FeeStateOverdue
	return true, nil
}

func (m *memStore) MarkFeePaid(id int64, paymentID int64) error {
	fee, ok := m.fees[id]
	if !ok {
		return utils.NewNotFoundError("Fee")
	}
	pid := paymentID
	fee.State = models.FeeStatePaid
	fee.PaymentID = &pid
	return nil
}

func (m *memStore) DeleteFeesByMember(memberID int64) error {
	for id, f := range m.fees {
		if f.MemberID == memberID {
			delete(m.fees, id)
		}
	}
	return nil
}

// Payments and allocations

func (m *memStore) CreatePayment(payment *models.Payment) error {
	payment.ID = m.id()
	cp := *payment
	m.payments[payment.ID] = &cp
	return nil
}

func (m *memStore) GetPayment(id int64) (*models.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return nil, utils.NewNotFoundError("Payment")
	}
	cp := *payment
	return &cp, nil
}

func (m *memStore) ListPayments() ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateAllocation(allocation *models.PaymentAllocation) error {
	for _, existing := range m.allocations {
		if existing.FeeID == allocation.FeeID {
			return utils.NewConflictError("fee is already settled by another payment")
		}
	}
	allocation.ID = m.id()
	cp := *allocation
	m.allocations[allocation.ID] = &cp
	return nil
}

func (m *memStore) ListAllocationsByPayment(paymentID int64) ([]models.PaymentAllocation, error) {
	var out []models.PaymentAllocation
	for _, a := range m.allocations {
		if a.PaymentID == paymentID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) DeleteAllocationsByMember(memberID int64) error {
	for id, a := range m.allocations {
		payment, hasPayment := m.payments[a.PaymentID]
		fee, hasFee := m.fees[a.FeeID]
		if (hasPayment && payment.PayerID == memberID) || (hasFee && fee.MemberID == memberID) {
			delete(m.allocations, id)
		}
	}
	return nil
}

func (m *memStore) DeletePaymentsByPayer(payerID int64) error {
	for id, p := range m.payments {
		if p.PayerID != payerID {
			continue
		}
		for _, f := range m.fees {
			if f.PaymentID != nil && *f.PaymentID == id {
				f.PaymentID = nil
			}
		}
		delete(m.payments, id)
	}
	return nil
}

// Member cascade cleanup

func (m *memStore) DeleteEnrollmentsByMember(memberID int64) error {
	for id, e := range m.enrollments {
		if e.MemberID == memberID {
			delete(m.enrollments, id)
		}
	}
	return nil
}

func (m *memStore) ClearPromotionReference(memberID int64) error {
	if member, ok := m.members[memberID]; ok {
		member.PromotionID = nil
	}
	return nil
}

func (m *memStore) ClearResponsibleReferences(memberID int64) error {
	for _, member := range m.members {
		if member.ResponsibleMemberID != nil && *member.ResponsibleMemberID == memberID {
			member.ResponsibleMemberID = nil
		}
	}
	return nil
}

func (m *memStore) DeleteMember(id int64) error {
	delete(m.members, id)
	return nil
}

// MembershipStore

func (m *memStore) CreateMember(member *models.Member) error {
	member.ID = m.id()
	cp := *member
	m.members[member.ID] = &cp
	return nil
}

func (m *memStore) ListMembers() ([]models.Member, error) {
	var out []models.Member
	for _, v := range m.members {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SetMemberActive(id int64, active bool) error {
	member, ok := m.members[id]
	if !ok {
		return utils.NewNotFoundError("Member")
	}
	member.Active = active
	return nil
}

func (m *memStore) CreateSport(sport *models.Sport) error {
	sport.ID = m.id()
	cp := *sport
	m.sports[sport.ID] = &cp
	return nil
}

func (m *memStore) UpdateSport(sport *models.Sport) error {
	if _, ok := m.sports[sport.ID]; !ok {
		return utils.NewNotFoundError("Sport")
	}
	cp := *sport
	m.sports[sport.ID] = &cp
	return nil
}

func (m *memStore) ListSports() ([]models.Sport, error) {
	var out []models.Sport
	for _, v := range m.sports {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateEnrollment(enrollment *models.Enrollment) error {
	enrollment.ID = m.id()
	cp := *enrollment
	m.enrollments[enrollment.ID] = &cp
	return nil
}

func (m *memStore) CancelEnrollment(id int64, cancelledAt time.Time) error {
	enrollment, ok := m.enrollments[id]
	if !ok {
		return utils.NewNotFoundError("Enrollment")
	}
	if enrollment.CancelledAt == nil {
		at := cancelledAt
		enrollment.CancelledAt = &at
	}
	return nil
}

func (m *memStore) ListEnrollments() ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, v := range m.enrollments {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreatePromotion(promotion *models.Promotion) error {
	promotion.ID = m.id()
	cp := *promotion
	m.promotions[promotion.ID] = &cp
	return nil
}

func (m *memStore) ListPromotions() ([]models.Promotion, error) {
	var out []models.Promotion
	for _, v := range m.promotions {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SetPromotionActive(id int64, active bool) error {
	promotion, ok := m.promotions[id]
	if !ok {
		return utils.NewNotFoundError("Promotion")
	}
	promotion.Active = active
	return nil
}

// Seed helpers

func seedSport(store *memStore, name string, trainer, insurance, social float64) *models.Sport {
	sport := &models.Sport{
		Name:         name,
		TrainerFee:   dec(trainer),
		InsuranceFee: dec(insurance),
		SocialFee:    dec(social),
	}
	sport.MonthlyAmount = ComponentsOf(sport).Base()
	_ = store.CreateSport(sport)
	return sport
}

func seedMember(store *memStore, document string, promotionID *int64) *models.Member {
	member := &models.Member{
		FirstName:    "Test",
		LastName:     "Member",
		Document:     document,
		Active:       true,
		PromotionID:  promotionID,
		RegisteredAt: time.Now().UTC(),
	}
	_ = store.CreateMember(member)
	return member
}

func seedEnrollment(store *memStore, memberID, sportID int64) *models.Enrollment {
	enrollment := &models.Enrollment{
		MemberID:   memberID,
		SportID:    sportID,
		EnrolledAt: time.Now().UTC(),
	}
	_ = store.CreateEnrollment(enrollment)
	return enrollment
}

func seedPromotion(store *memStore, kind models.DiscountKind, value float64, active bool) *models.Promotion {
	promotion := &models.Promotion{
		Name:   "Test promotion",
		Kind:   kind,
		Value:  dec(value),
		Active: active,
	}
	_ = store.CreatePromotion(promotion)
	return promotion
}
