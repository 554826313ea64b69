package service

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/infra"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users     map[primitive.ObjectID]*model.User
	insertErr error
}

func newStubUserRepo(seed ...*model.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[primitive.ObjectID]*model.User)}
	for _, u := range seed {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Insert(_ context.Context, u *model.User) (primitive.ObjectID, error) {
	if r.insertErr != nil {
		return primitive.NilObjectID, r.insertErr
	}
	u.ID = primitive.NewObjectID()
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, 0, nil
	}
	if u.Role == role {
		return 1, 0, nil
	}
	u.Role = role
	return 1, 1, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

func (r *stubUserRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubCartRepo records deletes for assertion.
type stubCartRepo struct {
	items          map[primitive.ObjectID]*model.CartItem
	insertErr      error
	deleteByIDsErr error
	deletedSets    [][]primitive.ObjectID
}

func newStubCartRepo(seed ...*model.CartItem) *stubCartRepo {
	r := &stubCartRepo{items: make(map[primitive.ObjectID]*model.CartItem)}
	for _, it := range seed {
		if it.ID.IsZero() {
			it.ID = primitive.NewObjectID()
		}
		r.items[it.ID] = it
	}
	return r
}

func (r *stubCartRepo) Insert(_ context.Context, item *model.CartItem) (primitive.ObjectID, error) {
	if r.insertErr != nil {
		return primitive.NilObjectID, r.insertErr
	}
	item.ID = primitive.NewObjectID()
	r.items[item.ID] = item
	return item.ID, nil
}

func (r *stubCartRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.CartItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return it, nil
}

func (r *stubCartRepo) List(_ context.Context, email string) ([]model.CartItem, error) {
	out := []model.CartItem{}
	for _, it := range r.items {
		if email == "" || it.Email == email {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubCartRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *stubCartRepo) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	if r.deleteByIDsErr != nil {
		return 0, r.deleteByIDsErr
	}
	r.deletedSets = append(r.deletedSets, ids)
	var n int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

var _ repository.CartRepository = (*stubCartRepo)(nil)

// stubBookingRepo is an in-memory BookingRepository.
type stubBookingRepo struct {
	bookings map[primitive.ObjectID]*model.Booking
}

func newStubBookingRepo(seed ...*model.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: make(map[primitive.ObjectID]*model.Booking)}
	for _, b := range seed {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		r.bookings[b.ID] = b
	}
	return r
}

func (r *stubBookingRepo) Insert(_ context.Context, b *model.Booking) (primitive.ObjectID, error) {
	b.ID = primitive.NewObjectID()
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (r *stubBookingRepo) ListByEmail(_ context.Context, email string) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range r.bookings {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListAll(_ context.Context) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := r.bookings[id]; !ok {
		return 0, nil
	}
	delete(r.bookings, id)
	return 1, nil
}

var _ repository.BookingRepository = (*stubBookingRepo)(nil)

// stubPaymentRepo is an in-memory PaymentRepository.
type stubPaymentRepo struct {
	payments  map[primitive.ObjectID]*model.Payment
	insertErr error
}

func newStubPaymentRepo(seed ...*model.Payment) *stubPaymentRepo {
	r := &stubPaymentRepo{payments: make(map[primitive.ObjectID]*model.Payment)}
	for _, p := range seed {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		r.payments[p.ID] = p
	}
	return r
}

func (r *stubPaymentRepo) Insert(_ context.Context, p *model.Payment) (primitive.ObjectID, error) {
	if r.insertErr != nil {
		return primitive.NilObjectID, r.insertErr
	}
	p.ID = primitive.NewObjectID()
	r.payments[p.ID] = p
	return p.ID, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (r *stubPaymentRepo) ListByEmail(_ context.Context, email string) ([]model.Payment, error) {
	out := []model.Payment{}
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) ListAll(_ context.Context) ([]model.Payment, error) {
	out := []model.Payment{}
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPaymentRepo) ListUncleared(_ context.Context, limit int64) ([]model.Payment, error) {
	out := []model.Payment{}
	for _, p := range r.payments {
		if !p.CartsCleared && int64(len(out)) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) MarkCartsCleared(_ context.Context, id primitive.ObjectID) error {
	p, ok := r.payments[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.CartsCleared = true
	return nil
}

func (r *stubPaymentRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

// stubMenuRepo is an in-memory MenuRepository.
type stubMenuRepo struct {
	items map[primitive.ObjectID]*model.MenuItem
}

func newStubMenuRepo(seed ...*model.MenuItem) *stubMenuRepo {
	r := &stubMenuRepo{items: make(map[primitive.ObjectID]*model.MenuItem)}
	for _, it := range seed {
		if it.ID.IsZero() {
			it.ID = primitive.NewObjectID()
		}
		r.items[it.ID] = it
	}
	return r
}

func (r *stubMenuRepo) List(_ context.Context) ([]model.MenuItem, error) {
	out := []model.MenuItem{}
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return it, nil
}

func (r *stubMenuRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.MenuItem, error) {
	out := []model.MenuItem{}
	for _, id := range ids {
		if it, ok := r.items[id]; ok {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Insert(_ context.Context, item *model.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	r.items[item.ID] = item
	return item.ID, nil
}

func (r *stubMenuRepo) UpdateFields(_ context.Context, id primitive.ObjectID, set bson.M) (int64, int64, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, 0, nil
	}
	if price, ok := set["price"].(float64); ok {
		it.Price = price
	}
	if name, ok := set["name"].(string); ok {
		it.Name = name
	}
	if category, ok := set["category"].(string); ok {
		it.Category = category
	}
	return 1, 1, nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *stubMenuRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

var _ repository.MenuRepository = (*stubMenuRepo)(nil)

// stubGateway fakes the card processor.
type stubGateway struct {
	calls      int
	lastAmount int64
	secret     string
	err        error
}

func (g *stubGateway) CreateIntent(_ context.Context, amountCents int64) (*infra.IntentResponse, error) {
	g.calls++
	g.lastAmount = amountCents
	if g.err != nil {
		return nil, g.err
	}
	return &infra.IntentResponse{ClientSecret: g.secret, Amount: amountCents}, nil
}

var _ CardGateway = (*stubGateway)(nil)

// stubDispatcher records enqueued receipt jobs.
type stubDispatcher struct {
	paymentIDs []string
	err        error
}

func (d *stubDispatcher) EnqueueReceipt(_ context.Context, paymentID string) error {
	if d.err != nil {
		return d.err
	}
	d.paymentIDs = append(d.paymentIDs, paymentID)
	return nil
}

var _ ReceiptDispatcher = (*stubDispatcher)(nil)

var errStore = errors.New("store unavailable")
