// internal/storage/memory/memory.go
package memory

import (
	"fmt"
	"sync"

	"github.com/touchline/goalviz/internal/storage"
)

// Backend keeps rendered diagrams in memory
type Backend struct {
	artifacts []storage.Artifact
	mu        sync.RWMutex
}

// New creates a new memory backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close drops every stored artifact
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.artifacts = nil
	return nil
}

// Save stores a copy of the artifact
func (b *Backend) Save(a *storage.Artifact) error {
	if a == nil {
		return fmt.Errorf("nil artifact")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	stored := *a
	stored.SVG = append([]byte(nil), a.SVG...)
	if a.Scene != nil {
		s := *a.Scene
		s.Elements = append(s.Elements[:0:0], a.Scene.Elements...)
		stored.Scene = &s
	}
	b.artifacts = append(b.artifacts, stored)
	return nil
}

// Artifacts returns the stored artifacts in save order
func (b *Backend) Artifacts() []storage.Artifact {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]storage.Artifact, len(b.artifacts))
	copy(out, b.artifacts)
	return out
}

// Last returns the most recent artifact
func (b *Backend) Last() (storage.Artifact, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.artifacts) == 0 {
		return storage.Artifact{}, false
	}
	return b.artifacts[len(b.artifacts)-1], true
}
