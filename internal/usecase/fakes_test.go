package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/events"
)

var errStoreDown = errors.New("store down")

// ==================== BOOKINGS ====================

type fakeBookingRepo struct {
	mu       sync.Mutex
	byRef    map[string]*entity.Booking
	nextID   int64
	creates  int
	err      error
	dayStart time.Time
	dayEnd   time.Time
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byRef: map[string]*entity.Booking{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byRef[b.Reference]; ok {
		return repository.ErrDuplicateReference
	}
	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.byRef[b.Reference] = &stored
	return nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, ref string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.byRef[ref]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) FindByReferenceAndEmail(ctx context.Context, ref, email string) (*entity.Booking, error) {
	b, err := f.FindByReference(ctx, ref)
	if err != nil || b == nil || b.Email != email {
		return nil, err
	}
	return b, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, status *entity.BookingStatus) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Booking
	for _, b := range f.byRef {
		if status == nil || b.Status == *status {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, ref string, status entity.BookingStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.byRef[ref]
	if !ok {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (f *fakeBookingRepo) UpdatePayment(_ context.Context, ref string, status entity.PaymentStatus, paymentID *string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.byRef[ref]
	if !ok {
		return false, nil
	}
	b.PaymentStatus = status
	if paymentID != nil {
		b.PaymentID = paymentID
	}
	return true, nil
}

func (f *fakeBookingRepo) Stats(_ context.Context, dayStart, dayEnd time.Time) (*entity.BookingStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.dayStart, f.dayEnd = dayStart, dayEnd

	stats := &entity.BookingStats{}
	for _, b := range f.byRef {
		stats.TotalBookings++
		if b.Status != entity.BookingStatusCancelled {
			stats.TotalRevenue += b.TotalPrice
		}
		if !b.CreatedAt.Before(dayStart) && b.CreatedAt.Before(dayEnd) {
			stats.TodayBookings++
		}
	}
	return stats, nil
}

// ==================== OVERRIDES ====================

type fakeOverrideRepo struct {
	mu      sync.Mutex
	byslug  map[string]*entity.ServiceOverride
	upserts []repository.ServiceOverrideUpsert
	err     error
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{byslug: map[string]*entity.ServiceOverride{}}
}

func (f *fakeOverrideRepo) Find(_ context.Context, slug string) (*entity.ServiceOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.byslug[slug], nil
}

func (f *fakeOverrideRepo) FindAll(context.Context) (map[string]*entity.ServiceOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]*entity.ServiceOverride, len(f.byslug))
	for k, v := range f.byslug {
		out[k] = v
	}
	return out, nil
}

// Upsert keeps stored columns the edit leaves nil, like the SQL COALESCE.
func (f *fakeOverrideRepo) Upsert(_ context.Context, in repository.ServiceOverrideUpsert, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, in)

	o, ok := f.byslug[in.Slug]
	if !ok {
		o = &entity.ServiceOverride{Slug: in.Slug}
		f.byslug[in.Slug] = o
	}
	if in.Price != nil {
		o.Price = in.Price
	}
	if in.Images != nil {
		o.Images = in.Images
	}
	if in.Data != nil {
		o.Data = in.Data
	}
	o.UpdatedAt = now
	return nil
}

// ==================== ADMIN USERS & SESSIONS ====================

type fakeAdminUserRepo struct {
	users    map[string]*entity.AdminUser
	countErr error
}

func newFakeAdminUserRepo(users ...*entity.AdminUser) *fakeAdminUserRepo {
	f := &fakeAdminUserRepo{users: map[string]*entity.AdminUser{}}
	for _, u := range users {
		f.users[u.Username] = u
	}
	return f
}

func (f *fakeAdminUserRepo) Upsert(_ context.Context, u *entity.AdminUser) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeAdminUserRepo) FindByUsername(_ context.Context, username string) (*entity.AdminUser, error) {
	return f.users[username], nil
}

func (f *fakeAdminUserRepo) FindByID(_ context.Context, id int64) (*entity.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminUserRepo) Count(context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.users)), nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := *s
	f.sessions[s.Token] = &cp
	return nil
}

func (f *fakeSessionRepo) FindValid(ctx context.Context, token string, now time.Time) (*entity.Session, error) {
	if _, err := f.DeleteExpired(ctx, now); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[token], nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for token, s := range f.sessions {
		if s.Expired(now) {
			delete(f.sessions, token)
			n++
		}
	}
	return n, nil
}

// ==================== EVENTS ====================

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.BookingCreated
	err    error
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, e events.BookingCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// ==================== CLOCK ====================

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
