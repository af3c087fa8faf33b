package settings

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu    sync.RWMutex
	title string
	found bool
	err   error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *RepositoryStub) GetTitle(ctx context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.err != nil {
		return "", false, r.err
	}
	return r.title, r.found, nil
}

func (r *RepositoryStub) SetTitle(ctx context.Context, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.title = title
	r.found = true
	return nil
}
