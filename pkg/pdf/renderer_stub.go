package pdf

import (
	"context"
	"sync"
)

// RendererStub records the markup it receives and returns a fixed document.
type RendererStub struct {
	mu       sync.Mutex
	Document []byte
	Err      error
	Received []string
}

func NewRendererStub() *RendererStub {
	return &RendererStub{Document: []byte("%PDF-1.4 stub")}
}

func (r *RendererStub) Render(ctx context.Context, html string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Received = append(r.Received, html)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Document, nil
}
