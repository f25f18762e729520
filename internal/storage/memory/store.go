// Package memory provides a mutex-guarded in-memory order store. It backs
// DSN-less runs and tests; the postgres store is the production counterpart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

// Store keeps orders in a map keyed by identifier. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	orders map[string]model.Order
	now    func() time.Time
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		orders: make(map[string]model.Order),
		now:    time.Now,
	}
}

// Create assigns a fresh identifier, stamps timestamps and stores the record.
func (s *Store) Create(_ context.Context, draft model.OrderDraft) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	order := model.Order{
		ID:             uuid.NewString(),
		Name:           draft.Name,
		Phone:          draft.Phone,
		DeliveryMethod: draft.DeliveryMethod,
		StreetAddress:  draft.StreetAddress,
		City:           draft.City,
		State:          draft.State,
		Zip:            draft.Zip,
		ModelFileName:  draft.ModelFileName,
		WeightGrams:    draft.WeightGrams,
		PrintTime:      draft.PrintTime,
		BaseCost:       draft.BaseCost,
		SupportRemoval: draft.SupportRemoval,
		SupportCost:    draft.SupportCost,
		TotalCost:      draft.TotalCost,
		Status:         model.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.orders[order.ID] = order

	result := order
	return &result, nil
}

// Get returns the order with the given identifier or ErrNotFound.
func (s *Store) Get(_ context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	result := order
	return &result, nil
}

// Update merges the patch over the stored record and refreshes UpdatedAt.
func (s *Store) Update(_ context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if patch.Name != nil {
		order.Name = *patch.Name
	}
	if patch.Phone != nil {
		order.Phone = *patch.Phone
	}
	if patch.DeliveryMethod != nil {
		order.DeliveryMethod = *patch.DeliveryMethod
	}
	if patch.StreetAddress != nil {
		order.StreetAddress = patch.StreetAddress
	}
	if patch.City != nil {
		order.City = patch.City
	}
	if patch.State != nil {
		order.State = patch.State
	}
	if patch.Zip != nil {
		order.Zip = patch.Zip
	}
	if patch.SupportRemoval != nil {
		order.SupportRemoval = *patch.SupportRemoval
	}
	if patch.SupportCost != nil {
		order.SupportCost = *patch.SupportCost
	}
	if patch.TotalCost != nil {
		order.TotalCost = *patch.TotalCost
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	order.UpdatedAt = s.now().UTC()

	s.orders[id] = order

	result := order
	return &result, nil
}

// List returns all stored orders. Insertion order is not guaranteed.
func (s *Store) List(_ context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	return result, nil
}
