// Package registry holds the matrix kernel backends available to the
// running binary.
//
// Backends register themselves from init functions in the arch packages.
// Lookup picks the highest-priority backend the CPU can run; the generic
// backend is always compatible, so Lookup only returns nil when nothing
// has been registered at all.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-matrix/internal/cpu"
)

// VectorFn applies an elementwise update a[i] op= b[i] for i in [0, len(a)).
type VectorFn func(a, b []float32)

// MultiplyFn computes result = a × b for row-major a (m×k) and b (k×n),
// tiling all three loop dimensions by block.
type MultiplyFn func(result, a, b []float32, m, n, k, block int)

// OpEntry is one registered kernel backend.
type OpEntry struct {
	// Name identifies the backend ("generic", "sse2", "avx2", "neon").
	Name string

	// SIMDLevel is the instruction set the backend needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible backends; higher wins.
	//   generic 0, sse2 10, neon 15, avx2 20
	Priority int

	// Lanes is the number of float32 elements processed per vector step.
	Lanes int

	VectorAdd       VectorFn
	VectorSubtract  VectorFn
	BlockedMultiply MultiplyFn
}

// OpRegistry is a priority-ordered set of backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the kernel package dispatches through.
var Global = &OpRegistry{}

// Register adds a backend. All registration should finish before the
// first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSorted()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the backend registered under name, regardless of CPU
// support. Used by tests that compare backends against each other.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}
	return nil
}

// ensureSorted orders entries by descending priority once per batch of
// registrations. Caller holds r.mu for writing.
func (r *OpRegistry) ensureSorted() {
	if r.sorted {
		return
	}
	r.sortByPriority()
	r.sorted = true
}

// sortByPriority is a stable insertion sort by descending priority.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries, highest priority
// first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSorted()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
