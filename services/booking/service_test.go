package booking

import (
	"context"
	"testing"

	"hoofline/models"
	"hoofline/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	schedule models.DayScheduleResponse
	err      error
}

func (s *stubEngine) ResolveDay(ctx context.Context, providerID, date string) (models.ResolvedDayAvailability, error) {
	return s.schedule.Availability, s.err
}

func (s *stubEngine) DaySchedule(ctx context.Context, providerID, date string, durationMin int, customerLoc *models.Location) (models.DayScheduleResponse, error) {
	return s.schedule, s.err
}

type memBookingRepo struct {
	bookings   map[string]*models.Booking
	reserved   []models.Booking
	reserveErr error
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, assert.AnError
	}
	return b, nil
}

func (r *memBookingRepo) GetBlocking(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return nil, nil
}

func (r *memBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.reserved, nil
}

func (r *memBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.reserved, nil
}

func (r *memBookingRepo) ReserveSlot(ctx context.Context, b models.Booking) error {
	if r.reserveErr != nil {
		return r.reserveErr
	}
	b.ID = "bk-1"
	b.Status = models.BookingPending
	r.reserved = append(r.reserved, b)
	return nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, assert.AnError
	}
	b.Status = status
	return b, nil
}

type stubCustomerRepo struct{ customer *models.Customer }

func (r *stubCustomerRepo) Create(ctx context.Context, c models.Customer) error { return nil }
func (r *stubCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.customer, nil
}
func (r *stubCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return nil, nil
}
func (r *stubCustomerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }
func (r *stubCustomerRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

type stubProviderRepo struct{ provider *models.Provider }

func (r *stubProviderRepo) Create(ctx context.Context, p models.Provider) error { return nil }
func (r *stubProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.provider, nil
}
func (r *stubProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return nil, nil
}
func (r *stubProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }
func (r *stubProviderRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

func openSchedule(slots ...models.Slot) models.DayScheduleResponse {
	open, close := "09:00", "17:00"
	return models.DayScheduleResponse{
		ProviderID:   "p1",
		Date:         "2026-09-10",
		Availability: models.ResolvedDayAvailability{OpeningTime: &open, ClosingTime: &close},
		Slots:        slots,
	}
}

func newTestService(schedule models.DayScheduleResponse) (*DefaultBookingService, *memBookingRepo) {
	repo := newMemBookingRepo()
	yard := models.Location{Latitude: 51.5, Longitude: -0.1}
	svc := &DefaultBookingService{
		Engine:   &stubEngine{schedule: schedule},
		Bookings: repo,
		Customers: &stubCustomerRepo{customer: &models.Customer{
			ID: "c1", Name: "Jo", YardLocation: &yard,
		}},
		Providers: &stubProviderRepo{provider: &models.Provider{
			ID: "p1", ServiceType: models.ServiceFarrier, Mobile: true, ServiceDurationMin: 30,
		}},
	}
	return svc, repo
}

func TestCreateBookingReservesAvailableSlot(t *testing.T) {
	svc, repo := newTestService(openSchedule(
		models.Slot{StartTime: "09:00", EndTime: "09:30", IsAvailable: true},
		models.Slot{StartTime: "09:30", EndTime: "10:00", IsAvailable: true},
	))

	b, err := svc.CreateBooking(context.Background(), "c1", models.CreateBookingRequest{
		ProviderID:  "p1",
		BookingDate: "2026-09-10",
		StartTime:   "09:30",
	})
	require.NoError(t, err)
	require.NotNil(t, b)

	require.Len(t, repo.reserved, 1)
	got := repo.reserved[0]
	assert.Equal(t, "09:30", got.StartTime)
	assert.Equal(t, "10:00", got.EndTime)
	assert.Equal(t, models.BookingPending, got.Status)
	assert.Equal(t, models.ServiceFarrier, got.ServiceType)
	// A mobile provider visit carries the customer's yard location.
	require.NotNil(t, got.Location)
	assert.Equal(t, 51.5, got.Location.Latitude)
}

func TestCreateBookingRejectsUnavailableSlot(t *testing.T) {
	svc, repo := newTestService(openSchedule(
		models.Slot{StartTime: "09:00", EndTime: "09:30", IsAvailable: false, UnavailableReason: models.SlotReasonBooked},
	))

	_, err := svc.CreateBooking(context.Background(), "c1", models.CreateBookingRequest{
		ProviderID:  "p1",
		BookingDate: "2026-09-10",
		StartTime:   "09:00",
	})
	require.Error(t, err)
	var serr *SlotError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, models.SlotReasonBooked, serr.Reason)
	assert.Empty(t, repo.reserved)
}

func TestCreateBookingRejectsStartOutsideHours(t *testing.T) {
	svc, _ := newTestService(openSchedule(
		models.Slot{StartTime: "09:00", EndTime: "09:30", IsAvailable: true},
	))

	_, err := svc.CreateBooking(context.Background(), "c1", models.CreateBookingRequest{
		ProviderID:  "p1",
		BookingDate: "2026-09-10",
		StartTime:   "08:00",
	})
	require.Error(t, err)
	var serr *SlotError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "outside-hours", serr.Reason)
}

func TestCreateBookingRejectsMalformedStartTime(t *testing.T) {
	svc, _ := newTestService(openSchedule())

	_, err := svc.CreateBooking(context.Background(), "c1", models.CreateBookingRequest{
		ProviderID:  "p1",
		BookingDate: "2026-09-10",
		StartTime:   "half nine",
	})
	require.Error(t, err)
	var verr *scheduling.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateBookingStationaryProviderHasNoVisitLocation(t *testing.T) {
	svc, repo := newTestService(openSchedule(
		models.Slot{StartTime: "09:00", EndTime: "09:30", IsAvailable: true},
	))
	svc.Providers = &stubProviderRepo{provider: &models.Provider{
		ID: "p1", ServiceType: models.ServiceMassage, Mobile: false, ServiceDurationMin: 30,
	}}

	b, err := svc.CreateBooking(context.Background(), "c1", models.CreateBookingRequest{
		ProviderID:  "p1",
		BookingDate: "2026-09-10",
		StartTime:   "09:00",
	})
	require.NoError(t, err)
	assert.Nil(t, b.Location)
	require.Len(t, repo.reserved, 1)
	assert.Nil(t, repo.reserved[0].Location)
}

func TestUpdateStatusAllowedTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingPending, models.BookingNoShow, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingNoShow, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingNoShow, models.BookingConfirmed, false},
	}

	for _, tc := range cases {
		svc, repo := newTestService(openSchedule())
		repo.bookings["bk-1"] = &models.Booking{
			ID: "bk-1", CustomerID: "c1", ProviderID: "p1",
			BookingDate: "2026-09-10", StartTime: "09:00",
			Status: tc.from,
		}

		actor := Actor{Role: ActorProvider, ID: "p1"}
		updated, err := svc.UpdateStatus(context.Background(), actor, "bk-1", tc.to)
		if tc.ok {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, updated.Status)
		} else {
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
			var verr *scheduling.ValidationError
			assert.ErrorAs(t, err, &verr, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateStatusRequiresPartyToBooking(t *testing.T) {
	newBooking := func() *models.Booking {
		return &models.Booking{
			ID: "bk-1", CustomerID: "c1", ProviderID: "p1",
			BookingDate: "2026-09-10", StartTime: "09:00",
			Status: models.BookingPending,
		}
	}

	cases := []struct {
		name  string
		actor Actor
		to    string
		ok    bool
	}{
		{"owning customer cancels", Actor{ActorCustomer, "c1"}, models.BookingCancelled, true},
		{"owning provider confirms", Actor{ActorProvider, "p1"}, models.BookingConfirmed, true},
		{"other customer cancels", Actor{ActorCustomer, "c2"}, models.BookingCancelled, false},
		{"customer confirms own booking", Actor{ActorCustomer, "c1"}, models.BookingConfirmed, false},
		{"other provider confirms", Actor{ActorProvider, "p2"}, models.BookingConfirmed, false},
		{"unknown role", Actor{"admin", "a1"}, models.BookingCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(openSchedule())
			repo.bookings["bk-1"] = newBooking()

			updated, err := svc.UpdateStatus(context.Background(), tc.actor, "bk-1", tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)
				return
			}
			require.Error(t, err)
			var ferr *scheduling.ForbiddenError
			assert.ErrorAs(t, err, &ferr)
			assert.Equal(t, models.BookingPending, repo.bookings["bk-1"].Status)
		})
	}
}

func TestTransitionAllowedTable(t *testing.T) {
	assert.True(t, transitionAllowed(models.BookingPending, models.BookingConfirmed))
	assert.False(t, transitionAllowed(models.BookingCompleted, models.BookingPending))
	assert.False(t, transitionAllowed("nonsense", models.BookingConfirmed))
}
