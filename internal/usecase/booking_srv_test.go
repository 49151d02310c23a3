package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/entity"
	"teide-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type bookingFixture struct {
	svc       BookingService
	bookings  *fakeBookingRepo
	overrides *fakeOverrideRepo
	publisher *recordingPublisher
}

func newBookingFixture(t *testing.T, opts ...BookingOption) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookings:  newFakeBookingRepo(),
		overrides: newFakeOverrideRepo(),
		publisher: &recordingPublisher{},
	}
	resolver := NewResolverService(catalog.Default(), f.overrides, zap.NewNop())
	opts = append([]BookingOption{WithClock(func() time.Time { return bookingNow })}, opts...)
	f.svc = NewBookingService(f.bookings, resolver, f.publisher, zap.NewNop(), opts...)
	return f
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceSlug: "teide-cable-car",
		Date:        "2026-04-02",
		Adults:      2,
		Children:    1,
		FirstName:   "Ana",
		LastName:    "García",
		Email:       "ana@example.com",
		Phone:       "+34 600 000 000",
		AcceptTerms: true,
	}
}

// sequenceGenerator hands out refs in order, then repeats the last one.
func sequenceGenerator(refs ...string) (ReferenceGenerator, *int) {
	var mu sync.Mutex
	calls := 0
	return func(time.Time) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		i := calls
		calls++
		if i >= len(refs) {
			i = len(refs) - 1
		}
		return refs[i], nil
	}, &calls
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		adults   int
		children int
		want     float64
	}{
		{"adults only", 19.99, 2, 0, 39.98},
		{"children at half price", 23.5, 2, 1, 58.75},
		{"rounded to cents", 12.34, 1, 1, 18.51},
		{"even split", 10, 3, 3, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.price, tt.adults, tt.children))
		})
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture(t)

	resp, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^TE-2026-[A-HJ-NP-Z2-9]{5}$`, resp.Reference)
	assert.Equal(t, 58.75, resp.TotalPrice)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)

	stored, err := f.bookings.FindByReference(context.Background(), resp.Reference)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.PaymentStatusPending, stored.PaymentStatus)
	assert.Equal(t, entity.DefaultPaymentMethod, stored.PaymentMethod)
	assert.Equal(t, bookingNow, stored.CreatedAt)
	assert.Equal(t, "2026-04-02", stored.Date.Format("2006-01-02"))
	assert.Nil(t, stored.PaymentID)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, resp.Reference, f.publisher.events[0].Reference)
	assert.Equal(t, 58.75, f.publisher.events[0].TotalPrice)
	assert.Equal(t, "EUR", f.publisher.events[0].Currency)
}

func TestCreateBookingUsesOverridePrice(t *testing.T) {
	f := newBookingFixture(t)
	price := 19.99
	f.overrides.byslug["teide-cable-car"] = &entity.ServiceOverride{Slug: "teide-cable-car", Price: &price}

	req := validBookingRequest()
	req.Children = 0

	resp, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 39.98, resp.TotalPrice)
}

func TestCreateBookingUnknownService(t *testing.T) {
	f := newBookingFixture(t)
	req := validBookingRequest()
	req.ServiceSlug = "volcano-bungee"

	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.bookings.creates)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{ServiceSlug: "teide-cable-car"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"date", "adults", "first_name", "last_name", "email", "phone", "accept_terms"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.Zero(t, f.bookings.creates)
}

func TestCreateBookingRejectsBlankFields(t *testing.T) {
	f := newBookingFixture(t)
	req := validBookingRequest()
	req.FirstName = "   "
	req.LastName = "\t"
	req.Phone = "  "
	req.Email = " "

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{"first_name", "last_name", "phone", "email"} {
		assert.Equal(t, "This field is required", verr.Fields[field], field)
	}
	assert.Zero(t, f.bookings.creates)
}

func TestCreateBookingStoresTrimmedContact(t *testing.T) {
	f := newBookingFixture(t)
	req := validBookingRequest()
	req.FirstName = "  Ana "
	req.Email = " ana@example.com  "

	resp, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	stored := f.bookings.byRef[resp.Reference]
	assert.Equal(t, "Ana", stored.FirstName)
	assert.Equal(t, "ana@example.com", stored.Email)
}

func TestCreateBookingRejectsOversizedParty(t *testing.T) {
	f := newBookingFixture(t)
	req := validBookingRequest()
	req.Adults = 1_000_000
	req.Children = 51

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Must be at most 50", verr.Fields["adults"])
	assert.Equal(t, "Must be at most 50", verr.Fields["children"])
	assert.Zero(t, f.bookings.creates)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	f := newBookingFixture(t)
	req := validBookingRequest()
	req.Date = "02/04/2026"

	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingRetriesOnCollision(t *testing.T) {
	gen, calls := sequenceGenerator("TE-2026-AAAAA", "TE-2026-AAAAA", "TE-2026-BBBBB")
	f := newBookingFixture(t, WithReferenceGenerator(gen))
	f.bookings.byRef["TE-2026-AAAAA"] = &entity.Booking{Reference: "TE-2026-AAAAA"}

	resp, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, "TE-2026-BBBBB", resp.Reference)
	assert.Equal(t, 3, *calls)
}

func TestCreateBookingGivesUpAfterMaxAttempts(t *testing.T) {
	gen, calls := sequenceGenerator("TE-2026-AAAAA")
	f := newBookingFixture(t, WithReferenceGenerator(gen))
	f.bookings.byRef["TE-2026-AAAAA"] = &entity.Booking{Reference: "TE-2026-AAAAA"}

	_, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, MaxReferenceAttempts, *calls)
	assert.Empty(t, f.publisher.events)
}

func TestCreateBookingStoreFailureIsNotRetried(t *testing.T) {
	f := newBookingFixture(t)
	f.bookings.err = errStoreDown

	_, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, f.bookings.creates)
}

func TestCreateBookingSurvivesPublisherFailure(t *testing.T) {
	f := newBookingFixture(t)
	f.publisher.err = errors.New("broker unreachable")

	resp, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
}

func TestConcurrentBookingsGetDistinctReferences(t *testing.T) {
	// the first draws all hand out the same reference so goroutines collide
	var mu sync.Mutex
	next := 0
	gen := func(time.Time) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		next++
		if next <= MaxReferenceAttempts {
			return "TE-2026-SAME0", nil
		}
		return fmt.Sprintf("TE-2026-%05d", next), nil
	}
	f := newBookingFixture(t, WithReferenceGenerator(gen))

	const n = 20
	refs := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
			errs[i] = err
			if err == nil {
				refs[i] = resp.Reference
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[refs[i]], "duplicate reference %s", refs[i])
		seen[refs[i]] = true
	}
	assert.Len(t, f.bookings.byRef, n)
}

func TestGetBooking(t *testing.T) {
	f := newBookingFixture(t)
	created, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	t.Run("matching email", func(t *testing.T) {
		b, err := f.svc.GetBooking(context.Background(), created.Reference, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "teide-cable-car", b.ServiceSlug)
		assert.Equal(t, "2026-04-02", b.Date)
	})

	t.Run("wrong email looks like a missing booking", func(t *testing.T) {
		_, err := f.svc.GetBooking(context.Background(), created.Reference, "eve@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := f.svc.GetBooking(context.Background(), created.Reference, " ")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestListBookings(t *testing.T) {
	f := newBookingFixture(t)
	first, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	_, err = f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), first.Reference, &request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	all, err := f.svc.ListBookings(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)
	assert.EqualValues(t, 2, all.Stats.TotalBookings)
	assert.Equal(t, 58.75, all.Stats.TotalRevenue)

	cancelled, err := f.svc.ListBookings(context.Background(), "cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled.Bookings, 1)
	assert.Equal(t, first.Reference, cancelled.Bookings[0].Reference)

	_, err = f.svc.ListBookings(context.Background(), "refunded")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus(t *testing.T) {
	f := newBookingFixture(t)
	created, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	resp, err := f.svc.UpdateStatus(context.Background(), created.Reference, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	_, err = f.svc.UpdateStatus(context.Background(), "TE-2026-ZZZZZ", &request.UpdateBookingStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateStatus(context.Background(), created.Reference, &request.UpdateBookingStatusRequest{Status: "paid"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePaymentKeepsPaymentID(t *testing.T) {
	f := newBookingFixture(t)
	created, err := f.svc.CreateBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)

	id := "pi_123"
	found, err := f.svc.UpdatePayment(context.Background(), created.Reference, entity.PaymentStatusCompleted, &id)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = f.svc.UpdatePayment(context.Background(), created.Reference, entity.PaymentStatusFailed, nil)
	require.NoError(t, err)
	assert.True(t, found)

	admin, err := f.svc.GetBookingByReference(context.Background(), created.Reference)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, admin.PaymentStatus)
	require.NotNil(t, admin.PaymentID)
	assert.Equal(t, "pi_123", *admin.PaymentID)

	found, err = f.svc.UpdatePayment(context.Background(), "TE-2026-ZZZZZ", entity.PaymentStatusCompleted, nil)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = f.svc.UpdatePayment(context.Background(), created.Reference, "refunded", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatsUsesUTCDay(t *testing.T) {
	f := newBookingFixture(t)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBookings)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), f.bookings.dayStart)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), f.bookings.dayEnd)
}

func TestGetBookingByReferenceNotFound(t *testing.T) {
	f := newBookingFixture(t)
	_, err := f.svc.GetBookingByReference(context.Background(), "TE-2026-ZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, strings.Contains(err.Error(), "TE-2026-ZZZZZ"))
}
