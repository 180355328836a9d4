package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/auth"
	"github.com/Waseemalame/unwokeai/pkg/payments"
	"github.com/Waseemalame/unwokeai/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubVerifier accepts any token except "bad-token".
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	if token == "bad-token" {
		return auth.Identity{}, errors.New("token rejected")
	}
	return auth.Identity{UID: "user-1", Email: "user@example.com"}, nil
}

type memStores struct {
	mu     sync.Mutex
	items  map[string]*model.Item
	edges  map[string]int64
	seq    int64
	orders map[string]model.Order
	users  map[string]model.User
}

func newMemStores() *memStores {
	return &memStores{
		items:  map[string]*model.Item{},
		edges:  map[string]int64{},
		orders: map[string]model.Order{},
		users:  map[string]model.User{},
	}
}

func (s *memStores) Insert(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *memStores) GetByID(_ context.Context, id string) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (s *memStores) Publish(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		item.Published = true
	}
	return nil
}

func (s *memStores) ListPublished(_ context.Context, _ *model.FeedKey, limit int) ([]model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Item
	for _, item := range s.items {
		if item.Published && len(out) < limit {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memStores) ListPublishedByOwner(ctx context.Context, _ string, key *model.FeedKey, limit int) ([]model.Item, error) {
	return s.ListPublished(ctx, key, limit)
}

func (s *memStores) IncrementLikeCount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		item.LikeCount++
	}
	return nil
}

func (s *memStores) DecrementLikeCount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok && item.LikeCount > 0 {
		item.LikeCount--
	}
	return nil
}

func (s *memStores) LikeCount(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		return item.LikeCount, nil
	}
	return 0, nil
}

func (s *memStores) InsertEdge(_ context.Context, userUID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userUID + "|" + itemID
	if _, ok := s.edges[key]; ok {
		return false, nil
	}
	s.seq++
	s.edges[key] = s.seq
	return true, nil
}

func (s *memStores) DeleteEdge(_ context.Context, userUID, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userUID + "|" + itemID
	if _, ok := s.edges[key]; !ok {
		return false, nil
	}
	delete(s.edges, key)
	return true, nil
}

func (s *memStores) ListByUser(_ context.Context, _ string, _ int64, _ int) ([]model.LikedEdge, error) {
	return nil, nil
}

func (s *memStores) InsertOrder(_ context.Context, order *model.Order) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.SessionID]; ok {
		return false, nil
	}
	s.orders[order.SessionID] = *order
	return true, nil
}

func (s *memStores) Upsert(_ context.Context, uid, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[uid]
	if !ok {
		user = model.User{UID: uid, CreatedAt: time.Now()}
	}
	user.Email = email
	s.users[uid] = user
	return &user, nil
}

// likeStoreAdapter and orderStoreAdapter give memStores the method names
// the usecase interfaces expect.
type likeStoreAdapter struct{ *memStores }

func (a likeStoreAdapter) Insert(ctx context.Context, userUID, itemID string) (bool, error) {
	return a.InsertEdge(ctx, userUID, itemID)
}

func (a likeStoreAdapter) Delete(ctx context.Context, userUID, itemID string) (bool, error) {
	return a.DeleteEdge(ctx, userUID, itemID)
}

type orderStoreAdapter struct{ *memStores }

func (a orderStoreAdapter) Insert(ctx context.Context, order *model.Order) (bool, error) {
	return a.InsertOrder(ctx, order)
}

type stubProvider struct{}

func (stubProvider) CreateCheckoutSession(_ context.Context, _ payments.SessionParams) (*payments.Session, error) {
	return &payments.Session{ID: "cs_test", URL: "https://pay.example/cs_test"}, nil
}

type stubParser struct {
	event payments.Event
	err   error
}

func (p *stubParser) ParseEvent(_ []byte, _ string) (payments.Event, error) {
	if p.err != nil {
		return payments.Event{}, p.err
	}
	return p.event, nil
}

func newTestRouter(stores *memStores, parser usecase.EventParser) *gin.Engine {
	logger := testLogger()
	likeUC := usecase.NewLikeUsecase(stores, likeStoreAdapter{stores}, logger)
	feedUC := usecase.NewFeedUsecase(stores, likeStoreAdapter{stores})
	itemUC := usecase.NewItemUsecase(stores)
	userUC := usecase.NewUserUsecase(stores)
	checkoutUC := usecase.NewCheckoutUsecase(stores, stubProvider{}, "https://shop.example", logger)
	settlementUC := usecase.NewSettlementUsecase(orderStoreAdapter{stores}, parser, logger)

	return NewRouter(
		stubVerifier{},
		NewItemController(itemUC, logger),
		NewLikeController(likeUC, logger),
		NewFeedController(feedUC, logger),
		NewUserController(userUC, logger),
		NewCheckoutController(checkoutUC, logger),
		NewWebhookController(settlementUC, logger),
	)
}
