// Package tokenize implements the tokenization stage: BPE token counts per
// file, for the full rendered output, and for each git section, backed by
// a single process-wide encoder instance (spec.md §4.8, §5).
package tokenize

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Counter wraps a single tiktoken encoding. It is safe for concurrent use;
// calls are serialized internally since the underlying BPE tables are not
// documented as goroutine-safe for concurrent Encode calls.
type Counter struct {
	mu  sync.Mutex
	enc *tiktoken.Tiktoken
}

var (
	instances   = map[string]*Counter{}
	instancesMu sync.Mutex
)

// ForEncoding returns the process-wide Counter for the named encoding
// (e.g. "o200k_base", "cl100k_base"), creating it on first use.
func ForEncoding(name string) (*Counter, error) {
	instancesMu.Lock()
	defer instancesMu.Unlock()

	if c, ok := instances[name]; ok {
		return c, nil
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("tokenize: load encoding %q: %w", name, err)
	}
	c := &Counter{enc: enc}
	instances[name] = c
	return c, nil
}

// Count returns the BPE token count for text.
func (c *Counter) Count(text string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.enc.Encode(text, nil, nil))
}

// Release drops the process-wide instance for name, forcing a fresh load
// on next ForEncoding call (spec.md §5 teardown contract).
func Release(name string) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, name)
}
