package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryTree is an in-process Tree used by tests and local development.
// Values are normalized through JSON on write so the tree holds the same
// shapes a remote database would return.
type MemoryTree struct {
	mu   sync.RWMutex
	root map[string]interface{}
}

func NewMemoryTree() *MemoryTree {
	return &MemoryTree{root: make(map[string]interface{})}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func (t *MemoryTree) Get(ctx context.Context, path string, dest interface{}) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var node interface{} = t.root
	for _, seg := range splitPath(path) {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil
		}
		node, ok = m[seg]
		if !ok {
			return nil
		}
	}

	raw, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Push allocates keys that sort in creation order, like the push ids the
// remote database hands out.
func (t *MemoryTree) Push(ctx context.Context, path string) (string, error) {
	key := fmt.Sprintf("%013d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	return key, nil
}

// Update applies every write under one lock, so concurrent readers observe
// either all paths or none of them.
func (t *MemoryTree) Update(ctx context.Context, writes map[string]interface{}) error {
	normalized := make(map[string]interface{}, len(writes))
	for path, value := range writes {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		normalized[path] = v
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for path, value := range normalized {
		t.set(splitPath(path), value)
	}
	return nil
}

// Set writes a single raw value, bypassing atomicity. Test seam for
// planting malformed records and dangling index entries.
func (t *MemoryTree) Set(ctx context.Context, path string, value interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.set(splitPath(path), value)
	return nil
}

func (t *MemoryTree) set(segs []string, value interface{}) {
	m := t.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := m[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			m[seg] = child
		}
		m = child
	}
	m[segs[len(segs)-1]] = value
}
