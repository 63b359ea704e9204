package usecase_test

import (
	"context"
	"sort"

	"sneakershop/internal/domain/model"
	repo "sneakershop/internal/repository"
)

// =====================
// インメモリのTxRepos
// 仕様上、在庫系のエラーは変更前に検出されるので、
// rollbackの再現なしでも失敗時の「無変更」をそのまま検証できる。
// =====================

type fakeStore struct {
	sneakers   map[int64]model.Sneaker
	sizes      map[int64]model.SneakerSize
	cartItems  map[int64]model.CartItem
	orders     map[int64]model.Order
	orderItems map[int64][]model.OrderItem
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sneakers:   map[int64]model.Sneaker{},
		sizes:      map[int64]model.SneakerSize{},
		cartItems:  map[int64]model.CartItem{},
		orders:     map[int64]model.Order{},
		orderItems: map[int64][]model.OrderItem{},
	}
}

func (s *fakeStore) newID() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addSneaker(name string, brand string, price float64) model.Sneaker {
	sn := model.Sneaker{
		ID:    s.newID(),
		Name:  name,
		Brand: brand,
		Price: price,
	}
	s.sneakers[sn.ID] = sn
	return sn
}

func (s *fakeStore) addSize(sneakerID int64, euSize int, stock int64) model.SneakerSize {
	row := model.SneakerSize{
		ID:        s.newID(),
		SneakerID: sneakerID,
		EUSize:    euSize,
		Stock:     stock,
	}
	s.sizes[row.ID] = row
	return row
}

func (s *fakeStore) stockOf(sneakerID int64, euSize int) int64 {
	for _, row := range s.sizes {
		if row.SneakerID == sneakerID && row.EUSize == euSize {
			return row.Stock
		}
	}
	return -1
}

// ---- TxRepos ----

func (s *fakeStore) Sneakers() repo.SneakerRepository     { return &fakeSneakerRepo{s} }
func (s *fakeStore) Inventory() repo.InventoryRepository  { return &fakeInventoryRepo{s} }
func (s *fakeStore) CartItems() repo.CartItemRepository   { return &fakeCartItemRepo{s} }
func (s *fakeStore) Orders() repo.OrderRepository         { return &fakeOrderRepo{s} }
func (s *fakeStore) OrderItems() repo.OrderItemRepository { return &fakeOrderItemRepo{s} }

// WithinTxは同じストアをそのまま渡す
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.store)
}

// ---- SneakerRepository ----

type fakeSneakerRepo struct{ s *fakeStore }

func (r *fakeSneakerRepo) List(ctx context.Context, q repo.SneakerListQuery) ([]model.Sneaker, error) {
	var out []model.Sneaker
	for _, sn := range r.s.sneakers {
		if q.Gender == "men" || q.Gender == "women" {
			if sn.Gender != q.Gender {
				continue
			}
		}
		out = append(out, sn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSneakerRepo) FindByID(ctx context.Context, id int64) (model.Sneaker, error) {
	sn, ok := r.s.sneakers[id]
	if !ok {
		return model.Sneaker{}, repo.ErrNotFound
	}
	return sn, nil
}

func (r *fakeSneakerRepo) Create(ctx context.Context, sn model.Sneaker) (model.Sneaker, error) {
	sn.ID = r.s.newID()
	r.s.sneakers[sn.ID] = sn
	return sn, nil
}

func (r *fakeSneakerRepo) Update(ctx context.Context, sn model.Sneaker) error {
	if _, ok := r.s.sneakers[sn.ID]; !ok {
		return repo.ErrNotFound
	}
	r.s.sneakers[sn.ID] = sn
	return nil
}

func (r *fakeSneakerRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, ok := r.s.sneakers[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.sneakers, id)
	return nil
}

// ---- InventoryRepository ----

type fakeInventoryRepo struct{ s *fakeStore }

func (r *fakeInventoryRepo) find(sneakerID int64, euSize int) (model.SneakerSize, bool) {
	for _, row := range r.s.sizes {
		if row.SneakerID == sneakerID && row.EUSize == euSize {
			return row, true
		}
	}
	return model.SneakerSize{}, false
}

func (r *fakeInventoryRepo) FindSize(ctx context.Context, sneakerID int64, euSize int) (model.SneakerSize, error) {
	row, ok := r.find(sneakerID, euSize)
	if !ok {
		return model.SneakerSize{}, repo.ErrNotFound
	}
	return row, nil
}

func (r *fakeInventoryRepo) ListBySneakerID(ctx context.Context, sneakerID int64) ([]model.SneakerSize, error) {
	var out []model.SneakerSize
	for _, row := range r.s.sizes {
		if row.SneakerID == sneakerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EUSize < out[j].EUSize })
	return out, nil
}

func (r *fakeInventoryRepo) UpsertSize(ctx context.Context, sneakerID int64, euSize int, stock int64) (model.SneakerSize, error) {
	if row, ok := r.find(sneakerID, euSize); ok {
		row.Stock = stock
		r.s.sizes[row.ID] = row
		return row, nil
	}
	return r.s.addSize(sneakerID, euSize, stock), nil
}

func (r *fakeInventoryRepo) DecreaseStockIfEnough(ctx context.Context, sneakerID int64, euSize int, qty int64) (bool, error) {
	row, ok := r.find(sneakerID, euSize)
	if !ok || row.Stock < qty {
		return false, nil
	}
	row.Stock -= qty
	r.s.sizes[row.ID] = row
	return true, nil
}

func (r *fakeInventoryRepo) IncreaseStock(ctx context.Context, sneakerID int64, euSize int, qty int64) error {
	row, ok := r.find(sneakerID, euSize)
	if !ok {
		return repo.ErrNotFound
	}
	row.Stock += qty
	r.s.sizes[row.ID] = row
	return nil
}

func (r *fakeInventoryRepo) DeleteBySneakerID(ctx context.Context, sneakerID int64) error {
	for id, row := range r.s.sizes {
		if row.SneakerID == sneakerID {
			delete(r.s.sizes, id)
		}
	}
	return nil
}

// ---- CartItemRepository ----

type fakeCartItemRepo struct{ s *fakeStore }

func (r *fakeCartItemRepo) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, it := range r.s.cartItems {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCartItemRepo) FindByUserSneakerSize(ctx context.Context, userID int64, sneakerID int64, size int) (model.CartItem, error) {
	for _, it := range r.s.cartItems {
		if it.UserID == userID && it.SneakerID == sneakerID && it.Size == size {
			return it, nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

func (r *fakeCartItemRepo) FindOwnedByID(ctx context.Context, cartItemID int64, userID int64) (model.CartItem, error) {
	it, ok := r.s.cartItems[cartItemID]
	if !ok || it.UserID != userID {
		return model.CartItem{}, repo.ErrNotFound
	}
	return it, nil
}

func (r *fakeCartItemRepo) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	item.ID = r.s.newID()
	r.s.cartItems[item.ID] = item
	return item, nil
}

func (r *fakeCartItemRepo) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	it, ok := r.s.cartItems[cartItemID]
	if !ok {
		return repo.ErrNotFound
	}
	it.Quantity = qty
	r.s.cartItems[cartItemID] = it
	return nil
}

func (r *fakeCartItemRepo) DeleteByID(ctx context.Context, cartItemID int64) error {
	if _, ok := r.s.cartItems[cartItemID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.cartItems, cartItemID)
	return nil
}

func (r *fakeCartItemRepo) DeleteAllByUserID(ctx context.Context, userID int64) error {
	for id, it := range r.s.cartItems {
		if it.UserID == userID {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

// ---- OrderRepository ----

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	order.ID = r.s.newID()
	r.s.orders[order.ID] = order
	return order.ID, nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	o, ok := r.s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	for _, o := range r.s.orders {
		if o.UserID == userID && o.IdempotencyKey == key {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

// ---- OrderItemRepository ----

type fakeOrderItemRepo struct{ s *fakeStore }

func (r *fakeOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	for _, it := range items {
		it.ID = r.s.newID()
		it.OrderID = orderID
		r.s.orderItems[orderID] = append(r.s.orderItems[orderID], it)
	}
	return nil
}

func (r *fakeOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return r.s.orderItems[orderID], nil
}
