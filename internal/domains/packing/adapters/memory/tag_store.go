package memory

import (
	"context"
	"sync"

	"github.com/Apurer/scanpack-api/internal/domains/packing/ports"
)

var _ ports.TagGateway = (*TagStore)(nil)

// TagStore is an in-memory TagGateway for development and tests.
type TagStore struct {
	mu       sync.RWMutex
	tags     map[int64]string
	getErr   error
	writeErr error
	writes   int
}

// NewTagStore constructs an empty in-memory tag store.
func NewTagStore() *TagStore {
	return &TagStore{tags: map[int64]string{}}
}

// SeedTags sets the stored tag string for an order.
func (s *TagStore) SeedTags(orderID int64, tags string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[orderID] = tags
}

// FailReads makes GetOrderTags return the given error.
func (s *TagStore) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailWrites makes UpdateOrderTags return the given error.
func (s *TagStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Writes reports how many tag updates were applied.
func (s *TagStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Tags returns the stored tag string for an order.
func (s *TagStore) Tags(orderID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags[orderID]
}

// GetOrderTags returns the stored tag string.
func (s *TagStore) GetOrderTags(_ context.Context, orderID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.tags[orderID], nil
}

// UpdateOrderTags replaces the stored tag string.
func (s *TagStore) UpdateOrderTags(_ context.Context, orderID int64, tags string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.tags[orderID] = tags
	s.writes++
	return nil
}
