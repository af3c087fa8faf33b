package calendar

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu     sync.RWMutex
	items  map[int]Event
	nextId int
	err    error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		items:  make(map[int]Event),
		nextId: 1,
	}
}

// SetError makes every following call fail with err (nil clears it).
func (r *RepositoryStub) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *RepositoryStub) StoreEvent(ctx context.Context, event Event) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}

	event.Id = r.nextId
	r.items[event.Id] = event
	r.nextId++
	return event.Id, nil
}

func (r *RepositoryStub) UpdateEvent(ctx context.Context, event Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}

	if _, exists := r.items[event.Id]; !exists {
		return false, nil
	}
	r.items[event.Id] = event
	return true, nil
}

func (r *RepositoryStub) DeleteEvent(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}

	if _, exists := r.items[id]; !exists {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *RepositoryStub) GetEvent(ctx context.Context, id int) (Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return Event{}, r.err
	}

	event, exists := r.items[id]
	if !exists {
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (r *RepositoryStub) GetAllEvents(ctx context.Context) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return nil, r.err
	}

	result := make([]Event, 0, len(r.items))
	for _, event := range r.items {
		result = append(result, event)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Id < result[j].Id
	})
	return result, nil
}
