// Package memstore is an in-memory store.Store. It mirrors the Mongo
// implementation's semantics — version-checked cart writes, atomic
// checkout — so service behavior can be tested without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/models"
	"campus-eats/store"
)

// Store holds all documents behind one mutex.
type Store struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]*models.User
	menus  map[primitive.ObjectID]*models.MenuItem
	orders map[primitive.ObjectID]*models.Order
	seq    []primitive.ObjectID // insertion order of orders
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:  make(map[primitive.ObjectID]*models.User),
		menus:  make(map[primitive.ObjectID]*models.MenuItem),
		orders: make(map[primitive.ObjectID]*models.Order),
	}
}

func (s *Store) Users() store.UserStore   { return (*userStore)(s) }
func (s *Store) Menus() store.MenuStore   { return (*menuStore)(s) }
func (s *Store) Orders() store.OrderStore { return (*orderStore)(s) }

// Checkout applies both writes under one lock.
func (s *Store) Checkout(_ context.Context, user *models.User, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return store.ErrNotFound
	}
	if stored.Version != user.Version {
		return store.ErrVersionConflict
	}

	order.ID = primitive.NewObjectID()
	clone := cloneOrder(order)
	s.orders[order.ID] = clone
	s.seq = append(s.seq, order.ID)

	stored.Cart = []models.CartItem{}
	stored.Version++
	return nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Cart = append([]models.CartItem(nil), u.Cart...)
	return &c
}

func cloneOrder(o *models.Order) *models.Order {
	c := *o
	c.Items = append([]models.OrderItem(nil), o.Items...)
	return &c
}

type userStore Store

func (s *userStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *userStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) ReplaceCart(_ context.Context, id primitive.ObjectID, version int64, cart []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if user.Version != version {
		return store.ErrVersionConflict
	}
	user.Cart = append([]models.CartItem(nil), cart...)
	user.Version++
	return nil
}

func (s *userStore) UpdateProfile(_ context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	user.Name = name
	user.Email = email
	return cloneUser(user), nil
}

func (s *userStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type menuStore Store

func (s *menuStore) Insert(_ context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	clone := *item
	s.menus[item.ID] = &clone
	return nil
}

func (s *menuStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menus[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (s *menuStore) List(_ context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.MenuItem, 0, len(s.menus))
	for _, item := range s.menus {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *menuStore) Update(_ context.Context, id primitive.ObjectID, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.menus[id]
	if !ok {
		return store.ErrNotFound
	}
	existing.Name = item.Name
	existing.Price = item.Price
	existing.Category = item.Category
	existing.Stock = item.Stock
	existing.ImageURL = item.ImageURL
	return nil
}

func (s *menuStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menus[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.menus, id)
	return nil
}

func (s *menuStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.menus)), nil
}

func (s *menuStore) CountByCategory(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64)
	for _, item := range s.menus {
		counts[item.Category]++
	}
	return counts, nil
}

type orderStore Store

func (s *orderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (s *orderStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	// newest first, matching the Mongo sort on created_at
	for i := len(s.seq) - 1; i >= 0; i-- {
		if order := s.orders[s.seq[i]]; order != nil && order.UserID == userID {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

func (s *orderStore) List(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, id := range s.seq {
		if order := s.orders[id]; order != nil {
			orders = append(orders, *cloneOrder(order))
		}
	}
	return orders, nil
}

func (s *orderStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	order.Status = status
	return cloneOrder(order), nil
}

func (s *orderStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64)
	for _, order := range s.orders {
		counts[order.Status]++
	}
	return counts, nil
}

func (s *orderStore) CountByPaymentStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64)
	for _, order := range s.orders {
		counts[order.PaymentStatus]++
	}
	return counts, nil
}

func (s *orderStore) TotalByPaymentStatus(_ context.Context) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[string]float64)
	for _, order := range s.orders {
		totals[order.PaymentStatus] += order.TotalAmount
	}
	return totals, nil
}

func (s *orderStore) BestSellers(_ context.Context, limit int) ([]store.ItemCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64)
	for _, order := range s.orders {
		for _, item := range order.Items {
			counts[item.Name]++
		}
	}
	rows := make([]store.ItemCount, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, store.ItemCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *orderStore) RevenueSince(_ context.Context, since primitive.DateTime) ([]store.DailyRevenue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := since.Time()
	byDay := make(map[string]float64)
	for _, order := range s.orders {
		if order.CreatedAt.Before(cutoff) {
			continue
		}
		byDay[order.CreatedAt.Format(time.DateOnly)] += order.TotalAmount
	}
	rows := make([]store.DailyRevenue, 0, len(byDay))
	for day, revenue := range byDay {
		rows = append(rows, store.DailyRevenue{Date: day, Revenue: revenue})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}
