package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Registry is the central metrics facade
// Producers cache pointers once at construction; hot paths write directly to atomics
type Registry struct {
	mu      sync.RWMutex
	ints    map[string]*atomic.Int64
	floats  map[string]*AtomicFloat
	strings map[string]*AtomicString
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		ints:    make(map[string]*atomic.Int64),
		floats:  make(map[string]*AtomicFloat),
		strings: make(map[string]*AtomicString),
	}
}

// lookup returns the metric pointer for key, creating it if absent
func lookup[T any](mu *sync.RWMutex, items map[string]*T, key string) *T {
	mu.RLock()
	if ptr, ok := items[key]; ok {
		mu.RUnlock()
		return ptr
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr := new(T)
	items[key] = ptr
	return ptr
}

// Int returns the integer counter for key
func (r *Registry) Int(key string) *atomic.Int64 {
	return lookup(&r.mu, r.ints, key)
}

// Float returns the float gauge for key
func (r *Registry) Float(key string) *AtomicFloat {
	return lookup(&r.mu, r.floats, key)
}

// String returns the short label for key
func (r *Registry) String(key string) *AtomicString {
	return lookup(&r.mu, r.strings, key)
}

// Count returns total metrics across all types
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ints) + len(r.floats) + len(r.strings)
}

// Format renders selected metrics as "key=value" pairs in sorted key order
// Keys not registered are skipped
func (r *Registry) Format(keys ...string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	parts := make([]string, 0, len(sorted))
	for _, k := range sorted {
		short := k[strings.LastIndexByte(k, '.')+1:]
		if v, ok := r.ints[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", short, v.Load()))
		} else if v, ok := r.floats[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%.1f", short, v.Get()))
		} else if v, ok := r.strings[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", short, v.Load()))
		}
	}
	return strings.Join(parts, " ")
}
