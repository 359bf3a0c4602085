package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	bookingRepo "swimly/database/repository/booking"
	paymentRepo "swimly/database/repository/payment"
	timeslotRepo "swimly/database/repository/timeslot"
	"swimly/models"
	"swimly/services/gateway"

	"github.com/google/uuid"
)

// In-memory stores mirroring the conditional-write semantics of the Mongo
// repositories, so the engine's concurrency behavior can be exercised
// without a database.

type memSlotStore struct {
	mu    sync.Mutex
	slots map[string]*models.Timeslot
}

func newMemSlotStore(slots ...models.Timeslot) *memSlotStore {
	s := &memSlotStore{slots: make(map[string]*models.Timeslot)}
	for i := range slots {
		slot := slots[i]
		if slot.Capacity <= 0 {
			slot.Capacity = 1
		}
		s.slots[slot.ID] = &slot
	}
	return s
}

func (s *memSlotStore) CreateMany(_ context.Context, slots []models.Timeslot) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(slots))
	for i := range slots {
		slot := slots[i]
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		s.slots[slot.ID] = &slot
		ids = append(ids, slot.ID)
	}
	return ids, nil
}

func (s *memSlotStore) GetByID(_ context.Context, slotID string) (*models.Timeslot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return nil, timeslotRepo.ErrNotFound
	}
	cp := *slot
	cp.ClaimRefs = append([]string(nil), slot.ClaimRefs...)
	return &cp, nil
}

func (s *memSlotStore) ListAvailable(_ context.Context, from, until time.Time) ([]models.Timeslot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Timeslot
	for _, slot := range s.slots {
		if slot.Start.After(from) && !slot.Start.After(until) && slot.Booked < slot.Capacity {
			out = append(out, *slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// Claim applies the compare-and-set under a single lock, the in-memory
// equivalent of the atomic conditional UpdateOne.
func (s *memSlotStore) Claim(_ context.Context, slotID, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotID]
	if !ok {
		return timeslotRepo.ErrNotFound
	}
	if slot.HasClaim(reference) {
		return nil
	}
	if slot.Booked >= slot.Capacity {
		return timeslotRepo.ErrSlotFull
	}
	slot.Booked++
	slot.Version++
	slot.ClaimRefs = append(slot.ClaimRefs, reference)
	return nil
}

func (s *memSlotStore) EnsureIndexes(context.Context) error { return nil }

type memPaymentStore struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{payments: make(map[string]*models.Payment)}
}

func (s *memPaymentStore) Create(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.payments[payment.Reference]; exists {
		return paymentRepo.ErrDuplicateReference
	}
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	cp := *payment
	s.payments[payment.Reference] = &cp
	return nil
}

func (s *memPaymentStore) GetByReference(_ context.Context, reference string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[reference]
	if !ok {
		return nil, paymentRepo.ErrNotFound
	}
	cp := *payment
	return &cp, nil
}

func (s *memPaymentStore) MarkPaid(_ context.Context, reference string, raw map[string]interface{}) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[reference]
	if !ok {
		return nil, paymentRepo.ErrNotFound
	}
	switch payment.Status {
	case models.PaymentStatusInitiated:
		payment.Status = models.PaymentStatusPaid
		payment.GatewayResponse = raw
	case models.PaymentStatusPaid:
		// idempotent
	default:
		return nil, fmt.Errorf("payment %s is %s, cannot mark paid", reference, payment.Status)
	}
	cp := *payment
	return &cp, nil
}

func (s *memPaymentStore) MarkFailed(_ context.Context, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[reference]
	if !ok {
		return paymentRepo.ErrNotFound
	}
	if payment.Status == models.PaymentStatusInitiated {
		payment.Status = models.PaymentStatusFailed
	}
	return nil
}

func (s *memPaymentStore) EnsureIndexes(context.Context) error { return nil }

type memBookingStore struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: make(map[string]*models.Booking)}
}

func (s *memBookingStore) Create(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.bookings[booking.Reference]; ok {
		cp := *existing
		return &cp, nil
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = time.Now().UTC()
	cp := *booking
	s.bookings[booking.Reference] = &cp
	return booking, nil
}

func (s *memBookingStore) GetByReference(_ context.Context, reference string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[reference]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *booking
	return &cp, nil
}

func (s *memBookingStore) EnsureIndexes(context.Context) error { return nil }

func (s *memBookingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// stubGateway lets each test script the provider's answers.
type stubGateway struct {
	mu          sync.Mutex
	initErr     error
	authURL     string
	status      string
	amount      int64
	verifyErr   error
	verifyCalls int
}

func (g *stubGateway) Initialize(_ context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.initErr != nil {
		return nil, g.initErr
	}
	url := g.authURL
	if url == "" {
		url = "https://checkout.paystack.test/" + req.Reference
	}
	return &gateway.InitializeResult{
		AuthorizationURL:  url,
		AccessCode:        "ac_" + req.Reference,
		ProviderReference: req.Reference,
	}, nil
}

func (g *stubGateway) Verify(_ context.Context, reference string) (*gateway.VerifyResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verifyCalls++
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return &gateway.VerifyResult{
		Status: g.status,
		Amount: g.amount,
		Raw:    map[string]interface{}{"reference": reference, "status": g.status},
	}, nil
}

func (g *stubGateway) setStatus(status string, amount int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = status
	g.amount = amount
}

func (g *stubGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.verifyCalls
}

// recordingNotifier captures what the engine fires off.
type recordingNotifier struct {
	mu            sync.Mutex
	confirmations []string // booking references
	alerts        []string // alert subjects
}

func (n *recordingNotifier) SendBookingConfirmation(_ context.Context, booking models.Booking, _ models.Timeslot) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = append(n.confirmations, booking.Reference)
	return nil
}

func (n *recordingNotifier) SendOpsAlert(_ context.Context, subject, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, subject)
	return nil
}

func (n *recordingNotifier) alertCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.alerts)
}
