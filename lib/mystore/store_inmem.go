package mystore

import (
	"context"
	"sync"
)

// inMemoryStore is the process-local backing store used outside google cloud.
// A transaction is modelled as holding the store-wide lock for the duration
// of the callback, so callers never observe a half-updated entity.
type inMemoryStore[T any] struct {
	sync.Mutex
	items map[string]T
}

func newInMemoryStore[T any](c context.Context) (*inMemoryStore[T], func(), error) {
	return &inMemoryStore[T]{
		items: make(map[string]T),
	}, func() {}, nil
}

func (s *inMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()
	defer s.Unlock()

	// Within this block everything is transactional
	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	return f(ctx)
}

func (s *inMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	s.items[uid] = value

	return nil
}

func (s *inMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.items[uid]

	return result, exists, nil
}

func (s *inMemoryStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result := make([]T, 0, len(s.items))
	for _, v := range s.items {
		result = append(result, v)
	}

	return result, nil
}

func (s *inMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	// The in-memory store does not index fields: callers filter in memory.
	return s.List(c)
}
