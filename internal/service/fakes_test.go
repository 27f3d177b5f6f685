package service

import (
	"context"
	"errors"

	"github.com/rakhigifts/shop-service/internal/domain"
	"github.com/rakhigifts/shop-service/internal/payment"
)

var errStoreDown = errors.New("store unavailable")

type fakeProductRepo struct {
	products map[string]*domain.Product
	getCalls int
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	m := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListActive(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.IsActive != nil {
		p.IsActive = *upd.IsActive
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.products, id)
	return nil
}

type fakeCartRepo struct {
	items       map[string]*domain.CartItem
	puts        int
	updateCalls int
	deleteErr   error
}

func newFakeCartRepo(items ...*domain.CartItem) *fakeCartRepo {
	m := make(map[string]*domain.CartItem, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakeCartRepo{items: m}
}

func (f *fakeCartRepo) Put(_ context.Context, item *domain.CartItem) error {
	f.puts++
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCartRepo) Get(_ context.Context, id string) (*domain.CartItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) UpdateQuantity(_ context.Context, id string, quantity int) (*domain.CartItem, error) {
	f.updateCalls++
	it, ok := f.items[id]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	it.Quantity = quantity
	cp := *it
	return &cp, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.items, id)
	return nil
}

type fakeOrderRepo struct {
	orders        map[string]*domain.Order
	putErr        error
	markPaidCalls int
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	m := make(map[string]*domain.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) Put(_ context.Context, order *domain.Order) error {
	if f.putErr != nil {
		return f.putErr
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, id string) error {
	f.markPaidCalls++
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.PaymentStatus = domain.PaymentStatusPaid
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status, trackingNumber string) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	cp := *o
	return &cp, nil
}

type fakeBlogRepo struct {
	posts map[string]*domain.BlogPost
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: map[string]*domain.BlogPost{}}
}

func (f *fakeBlogRepo) Put(_ context.Context, post *domain.BlogPost) error {
	cp := *post
	f.posts[post.Slug] = &cp
	return nil
}

func (f *fakeBlogRepo) Get(_ context.Context, slug string) (*domain.BlogPost, error) {
	p, ok := f.posts[slug]
	if !ok {
		return nil, domain.ErrBlogPostNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeGateway struct {
	created   []payment.SessionParams
	createErr error
	event     *payment.WebhookEvent
	verifyErr error
}

func (f *fakeGateway) CreateSession(_ context.Context, p payment.SessionParams) (*payment.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, p)
	return &payment.Session{
		ID:              "cs_test_123",
		URL:             "https://pay.example.com/cs_test_123",
		PaymentIntentID: "pi_test_123",
	}, nil
}

func (f *fakeGateway) VerifyWebhook(_ []byte, _ string) (*payment.WebhookEvent, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.event, nil
}

type fakePublisher struct {
	created []string
	paid    []string
}

func (f *fakePublisher) OrderCreated(_ context.Context, order *domain.Order) error {
	f.created = append(f.created, order.ID)
	return nil
}

func (f *fakePublisher) OrderPaid(_ context.Context, orderID string) error {
	f.paid = append(f.paid, orderID)
	return nil
}

type fakeChat struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeChat) Complete(_ context.Context, _, prompt string, _ int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prompts = append(f.prompts, prompt)
	return f.response, nil
}
