package scheduling

import (
	"context"
	"testing"
	"time"

	"hoofline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	weekly     map[int]*models.WeeklyAvailability       // keyed by dayOfWeek
	exceptions map[string]*models.AvailabilityException // keyed by date
}

func (f *fakeAvailabilityRepo) GetActiveWeekly(ctx context.Context, providerID string, dayOfWeek int) (*models.WeeklyAvailability, error) {
	return f.weekly[dayOfWeek], nil
}

func (f *fakeAvailabilityRepo) ListWeekly(ctx context.Context, providerID string) ([]models.WeeklyAvailability, error) {
	return nil, nil
}

func (f *fakeAvailabilityRepo) UpsertWeekly(ctx context.Context, w models.WeeklyAvailability) error {
	return nil
}

func (f *fakeAvailabilityRepo) GetException(ctx context.Context, providerID, date string) (*models.AvailabilityException, error) {
	return f.exceptions[date], nil
}

func (f *fakeAvailabilityRepo) ListExceptions(ctx context.Context, providerID, fromDate, toDate string) ([]models.AvailabilityException, error) {
	return nil, nil
}

func (f *fakeAvailabilityRepo) UpsertException(ctx context.Context, e models.AvailabilityException) error {
	return nil
}

func (f *fakeAvailabilityRepo) DeleteException(ctx context.Context, providerID, date string) error {
	return nil
}

type fakeBookingRepo struct {
	blocking []models.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetBlocking(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return f.blocking, nil
}

func (f *fakeBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ReserveSlot(ctx context.Context, b models.Booking) error { return nil }

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	return nil, nil
}

type fakeProviderRepo struct {
	provider *models.Provider
}

func (f *fakeProviderRepo) Create(ctx context.Context, p models.Provider) error { return nil }

func (f *fakeProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return f.provider, nil
}

func (f *fakeProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }

func (f *fakeProviderRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

func newTestEngine() *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Availability: &fakeAvailabilityRepo{
			// 2026-09-10 is a Thursday, dayOfWeek 3.
			weekly: map[int]*models.WeeklyAvailability{
				3: {ProviderID: "p1", DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00", IsActive: true},
			},
			exceptions: map[string]*models.AvailabilityException{},
		},
		Bookings:  &fakeBookingRepo{},
		Providers: &fakeProviderRepo{provider: &models.Provider{ID: "p1", ServiceDurationMin: 30}},
		Now:       func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func TestResolveDayRejectsBadDate(t *testing.T) {
	se := newTestEngine()
	_, err := se.ResolveDay(context.Background(), "p1", "10/09/2026")
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestResolveDayUsesWeeklySchedule(t *testing.T) {
	se := newTestEngine()
	got, err := se.ResolveDay(context.Background(), "p1", "2026-09-10")
	require.NoError(t, err)
	require.False(t, got.IsClosed)
	assert.Equal(t, "09:00", *got.OpeningTime)
	assert.Equal(t, "17:00", *got.ClosingTime)

	// A day with no weekly record resolves closed. 2026-09-13 is a Sunday.
	got, err = se.ResolveDay(context.Background(), "p1", "2026-09-13")
	require.NoError(t, err)
	assert.True(t, got.IsClosed)
}

func TestResolveDayExceptionOverridesWeekly(t *testing.T) {
	se := newTestEngine()
	repo := se.Availability.(*fakeAvailabilityRepo)
	repo.exceptions["2026-09-10"] = &models.AvailabilityException{
		ProviderID: "p1", Date: "2026-09-10", StartTime: "10:00", EndTime: "14:00",
	}

	got, err := se.ResolveDay(context.Background(), "p1", "2026-09-10")
	require.NoError(t, err)
	require.False(t, got.IsClosed)
	assert.Equal(t, "10:00", *got.OpeningTime)
	assert.Equal(t, "14:00", *got.ClosingTime)
}

func TestDayScheduleUnknownProvider(t *testing.T) {
	se := newTestEngine()
	se.Providers = &fakeProviderRepo{}

	_, err := se.DaySchedule(context.Background(), "ghost", "2026-09-10", 0, nil)
	require.Error(t, err)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestDayScheduleDefaultsDurationFromProvider(t *testing.T) {
	se := newTestEngine()
	resp, err := se.DaySchedule(context.Background(), "p1", "2026-09-10", 0, nil)
	require.NoError(t, err)

	// 09:00 to 17:00 at the provider's 30 minute duration.
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "p1", resp.ProviderID)
	assert.Equal(t, "2026-09-10", resp.Date)
	assert.False(t, resp.Availability.IsClosed)
}

func TestDayScheduleExplicitDurationWins(t *testing.T) {
	se := newTestEngine()
	resp, err := se.DaySchedule(context.Background(), "p1", "2026-09-10", 60, nil)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
}

func TestDayScheduleMarksBookedSlots(t *testing.T) {
	se := newTestEngine()
	se.Bookings = &fakeBookingRepo{blocking: []models.Booking{
		{ID: "b1", StartTime: "10:00", EndTime: "10:30"},
	}}

	resp, err := se.DaySchedule(context.Background(), "p1", "2026-09-10", 30, nil)
	require.NoError(t, err)

	var booked int
	for _, s := range resp.Slots {
		if s.UnavailableReason == models.SlotReasonBooked {
			booked++
			assert.Equal(t, "10:00", s.StartTime)
		}
	}
	assert.Equal(t, 1, booked)
}

func TestDayScheduleClosedDayHasNoSlots(t *testing.T) {
	se := newTestEngine()
	resp, err := se.DaySchedule(context.Background(), "p1", "2026-09-13", 30, nil)
	require.NoError(t, err)
	assert.True(t, resp.Availability.IsClosed)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}
