package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/payments"
)

// In-memory stores used by the usecase tests. They mirror the database
// guarantees that matter: map keys stand in for uniqueness constraints,
// and a mutex stands in for the engine's write atomicity.

type fakeItemStore struct {
	mu        sync.Mutex
	items     map[string]*model.Item
	lastLimit int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: map[string]*model.Item{}}
}

func (s *fakeItemStore) add(item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := item
	s.items[item.ID] = &cp
}

func (s *fakeItemStore) Insert(_ context.Context, item *model.Item) error {
	s.add(*item)
	return nil
}

func (s *fakeItemStore) GetByID(_ context.Context, id string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (s *fakeItemStore) Publish(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		item.Published = true
		item.UpdatedAt = time.Now()
	}
	return nil
}

func (s *fakeItemStore) ListPublished(_ context.Context, after *model.FeedKey, limit int) ([]model.Item, error) {
	return s.list(after, limit, func(item *model.Item) bool { return item.Published })
}

func (s *fakeItemStore) ListPublishedByOwner(_ context.Context, ownerUID string, after *model.FeedKey, limit int) ([]model.Item, error) {
	return s.list(after, limit, func(item *model.Item) bool {
		return item.Published && item.OwnerUID == ownerUID
	})
}

func (s *fakeItemStore) list(after *model.FeedKey, limit int, match func(*model.Item) bool) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit

	var out []model.Item
	for _, item := range s.items {
		if !match(item) {
			continue
		}
		if after != nil && !beforeKey(item, after) {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// beforeKey reports whether the item sorts strictly after the cursor
// boundary in (created_at DESC, id DESC) order.
func beforeKey(item *model.Item, after *model.FeedKey) bool {
	if item.CreatedAt.Before(after.CreatedAt) {
		return true
	}
	return item.CreatedAt.Equal(after.CreatedAt) && item.ID < after.ID
}

func (s *fakeItemStore) IncrementLikeCount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		item.LikeCount++
	}
	return nil
}

func (s *fakeItemStore) DecrementLikeCount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok && item.LikeCount > 0 {
		item.LikeCount--
	}
	return nil
}

func (s *fakeItemStore) LikeCount(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		return item.LikeCount, nil
	}
	return 0, nil
}

type fakeEdge struct {
	id      int64
	userUID string
	itemID  string
	likedAt time.Time
}

type fakeLikeStore struct {
	mu    sync.Mutex
	seq   int64
	edges map[string]fakeEdge
	items *fakeItemStore
}

func newFakeLikeStore(items *fakeItemStore) *fakeLikeStore {
	return &fakeLikeStore{edges: map[string]fakeEdge{}, items: items}
}

func edgeKey(userUID, itemID string) string { return userUID + "|" + itemID }

func (s *fakeLikeStore) Insert(_ context.Context, userUID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edgeKey(userUID, itemID)
	if _, ok := s.edges[key]; ok {
		return false, nil
	}
	s.seq++
	s.edges[key] = fakeEdge{id: s.seq, userUID: userUID, itemID: itemID, likedAt: time.Now()}
	return true, nil
}

func (s *fakeLikeStore) Delete(_ context.Context, userUID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := edgeKey(userUID, itemID)
	if _, ok := s.edges[key]; !ok {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *fakeLikeStore) ListByUser(_ context.Context, userUID string, afterEdgeID int64, limit int) ([]model.LikedEdge, error) {
	s.mu.Lock()
	var mine []fakeEdge
	for _, e := range s.edges {
		if e.userUID != userUID {
			continue
		}
		if afterEdgeID > 0 && e.id >= afterEdgeID {
			continue
		}
		mine = append(mine, e)
	}
	s.mu.Unlock()

	sort.Slice(mine, func(i, j int) bool { return mine[i].id > mine[j].id })
	if len(mine) > limit {
		mine = mine[:limit]
	}

	out := make([]model.LikedEdge, 0, len(mine))
	for _, e := range mine {
		edge := model.LikedEdge{EdgeID: e.id, LikedAt: e.likedAt}
		if item, _ := s.items.GetByID(context.Background(), e.itemID); item != nil && item.Published {
			edge.Item = item
		}
		out = append(out, edge)
	}
	return out, nil
}

func (s *fakeLikeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.edges)
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]model.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]model.Order{}}
}

func (s *fakeOrderStore) Insert(_ context.Context, order *model.Order) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.SessionID]; ok {
		return false, nil
	}
	s.orders[order.SessionID] = *order
	return true, nil
}

type fakeProvider struct {
	lastParams payments.SessionParams
	session    *payments.Session
	err        error
}

func (p *fakeProvider) CreateCheckoutSession(_ context.Context, params payments.SessionParams) (*payments.Session, error) {
	p.lastParams = params
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

type fakeParser struct {
	event payments.Event
	err   error
}

func (p *fakeParser) ParseEvent(_ []byte, _ string) (payments.Event, error) {
	if p.err != nil {
		return payments.Event{}, p.err
	}
	return p.event, nil
}
