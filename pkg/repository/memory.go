package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/example/cravecurve/pkg/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a mutex-guarded in-memory stand-in for the Mongo
// collections, used by tests. Ids are real ObjectIDs so handler-level code
// behaves identically against either implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
	cart     map[primitive.ObjectID]models.CartItem // keyed by product id
	orders   map[primitive.ObjectID]models.Order
	comments map[primitive.ObjectID][]models.Comment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[primitive.ObjectID]models.Product),
		cart:     make(map[primitive.ObjectID]models.CartItem),
		orders:   make(map[primitive.ObjectID]models.Order),
		comments: make(map[primitive.ObjectID][]models.Comment),
	}
}

var _ ProductRepository = (*MemoryStore)(nil)

func (m *MemoryStore) Create(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.products[p.ID] = *p
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.ProductName != nil {
		p.ProductName = *upd.ProductName
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.RestaurantName != nil {
		p.RestaurantName = *upd.RestaurantName
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	p.UpdatedAt = time.Now()
	m.products[id] = p
	cp := p
	return &cp, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

// MemoryCart implements CartRepository on top of the shared store.
type MemoryCart struct{ store *MemoryStore }

func NewMemoryCart(store *MemoryStore) *MemoryCart { return &MemoryCart{store: store} }

var _ CartRepository = (*MemoryCart)(nil)

func (mc *MemoryCart) AddOrIncrement(ctx context.Context, productID primitive.ObjectID, quantity int64) (*models.CartItem, bool, error) {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	if item, ok := mc.store.cart[productID]; ok {
		item.Quantity += quantity
		mc.store.cart[productID] = item
		cp := item
		return &cp, false, nil
	}
	item := models.CartItem{
		ID:        primitive.NewObjectID(),
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	mc.store.cart[productID] = item
	cp := item
	return &cp, true, nil
}

func (mc *MemoryCart) List(ctx context.Context) ([]models.CartItem, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	out := make([]models.CartItem, 0, len(mc.store.cart))
	for _, item := range mc.store.cart {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out, nil
}

func (mc *MemoryCart) RemoveByProduct(ctx context.Context, productID primitive.ObjectID) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	if _, ok := mc.store.cart[productID]; !ok {
		return ErrNotFound
	}
	delete(mc.store.cart, productID)
	return nil
}

// MemoryOrders implements OrderRepository on top of the shared store.
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *models.Order) error {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	o.ID = primitive.NewObjectID()
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	mo.store.orders[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) List(ctx context.Context) ([]models.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	out := make([]models.Order, 0, len(mo.store.orders))
	for _, o := range mo.store.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.Before(out[j].OrderDate) })
	return out, nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	mo.store.mu.RLock()
	defer mo.store.mu.RUnlock()
	o, ok := mo.store.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (mo *MemoryOrders) SetStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	mo.store.mu.Lock()
	defer mo.store.mu.Unlock()
	o, ok := mo.store.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	mo.store.orders[id] = o
	cp := o
	return &cp, nil
}

// MemoryComments implements CommentRepository on top of the shared store.
type MemoryComments struct{ store *MemoryStore }

func NewMemoryComments(store *MemoryStore) *MemoryComments { return &MemoryComments{store: store} }

var _ CommentRepository = (*MemoryComments)(nil)

func (mc *MemoryComments) Create(ctx context.Context, c *models.Comment) error {
	mc.store.mu.Lock()
	defer mc.store.mu.Unlock()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	mc.store.comments[c.ProductID] = append(mc.store.comments[c.ProductID], *c)
	return nil
}

func (mc *MemoryComments) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	mc.store.mu.RLock()
	defer mc.store.mu.RUnlock()
	out := make([]models.Comment, 0, len(mc.store.comments[productID]))
	out = append(out, mc.store.comments[productID]...)
	return out, nil
}
