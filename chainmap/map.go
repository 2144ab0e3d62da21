// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ SEPARATE-CHAINING HASH MAP
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generic Container Library
// Component: Resizable Chained Hash Map Implementation
//
// Description:
//   Growable hash table using per-bucket singly linked chains. Keys and values are
//   generic; hashing and equality are caller-supplied, with optional release hooks
//   for payloads whose lifetime the map is asked to own.
//
// Design Principles:
//   - Head insertion keeps chains most-recent-first with O(1) linking
//   - Growth doubles the bucket array before the load factor is breached
//   - Rehash builds the replacement bucket array fully, then swaps it in
//   - Single-goroutine contract; no internal locking
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

// Package chainmap implements a resizable associative container with separate
// chaining, parameterized by caller-supplied hash and equality functions.
package chainmap

import (
	"iter"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ERRORS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Sentinel outcomes. Callers branch with errors.Is; every operation either
// completes fully or reports one of these with the map unchanged.
var (
	// ErrInvalidArgument reports a nil map, a nil visitor, or a Config
	// missing its mandatory hash/equality functions.
	ErrInvalidArgument = errors.New("chainmap: invalid argument")

	// ErrNotFound reports a delete of an absent key. Absence on lookup is
	// signalled by Get's boolean instead, so callers can branch on it
	// without error plumbing.
	ErrNotFound = errors.New("chainmap: key not found")

	// ErrAborted reports iteration halted early by the visitor. It is not a
	// failure of the map itself.
	ErrAborted = errors.New("chainmap: iteration aborted")
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Defaults applied by New for zero-valued Config knobs.
const (
	DefaultCapacity     = 16   // bucket count when InitialCapacity is 0
	DefaultLoadFactor   = 0.75 // size/capacity ceiling before growth
	DefaultGrowthFactor = 2    // bucket array multiplier on growth
)

// Config carries everything New needs to build a Map. Hash and Equal are
// mandatory; the rest default when zero-valued.
//
// Hash must be deterministic for keys that Equal considers equal, and Equal
// must be a valid equivalence relation. Neither needs cryptographic strength.
type Config[K, V any] struct {
	InitialCapacity int     // bucket count at construction; 0 → DefaultCapacity
	LoadFactor      float64 // growth trigger in (0, 1); 0 → DefaultLoadFactor
	GrowthFactor    int     // capacity multiplier ≥ 2; 0 → DefaultGrowthFactor

	Hash  func(K) uint64    // required
	Equal func(a, b K) bool // required; true iff a and b are the same key

	// ReleaseKey and ReleaseValue, when set, transfer payload ownership to
	// the map: each runs exactly once per payload at the moment its entry
	// stops being reachable (delete, overwrite, Clear, Close). When nil,
	// payload lifetime stays with the caller and the map never touches it.
	ReleaseKey   func(K)
	ReleaseValue func(V)

	// SameKey reports whether two keys share the same underlying storage.
	// On overwrite the old key's ReleaseKey is skipped when SameKey(old,
	// incoming) is true, so a caller re-inserting the exact same key
	// storage does not have it released out from under the entry. Identity
	// here is storage identity, not content equality — Equal already holds
	// whenever SameKey is consulted. When nil, keys are treated as never
	// identical and a configured ReleaseKey always sees the old key.
	SameKey func(old, incoming K) bool
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE DATA STRUCTURES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// entry is one key/value pair in a bucket chain. The chain owns it: it is
// released when unlinked, overwritten, or when the map is torn down.
type entry[K, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Map is a growable chained hash table. The zero value is not usable; build
// one with New. A Map is not safe for concurrent use — callers in concurrent
// settings must serialize access externally.
type Map[K, V any] struct {
	buckets []*entry[K, V] // chain heads; index = hash(key) mod len
	size    int            // live entry count across all chains

	loadFactor float64
	growth     int

	hash    func(K) uint64
	equal   func(a, b K) bool
	relKey  func(K)
	relVal  func(V)
	sameKey func(a, b K) bool
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSTRUCTOR
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// New validates cfg, applies defaults, and allocates the bucket array. It
// never returns a partially built map: on error the result is nil.
func New[K, V any](cfg Config[K, V]) (*Map[K, V], error) {
	if cfg.Hash == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "hash function is required")
	}
	if cfg.Equal == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "equality function is required")
	}

	capacity := cfg.InitialCapacity
	switch {
	case capacity == 0:
		capacity = DefaultCapacity
	case capacity < 0:
		return nil, errors.Wrap(ErrInvalidArgument, "negative initial capacity")
	}

	loadFactor := cfg.LoadFactor
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		return nil, errors.Wrap(ErrInvalidArgument, "load factor outside (0, 1)")
	}

	growth := cfg.GrowthFactor
	if growth == 0 {
		growth = DefaultGrowthFactor
	}
	if growth < 2 {
		return nil, errors.Wrap(ErrInvalidArgument, "growth factor below 2")
	}

	return &Map[K, V]{
		buckets:    make([]*entry[K, V], capacity),
		loadFactor: loadFactor,
		growth:     growth,
		hash:       cfg.Hash,
		equal:      cfg.Equal,
		relKey:     cfg.ReleaseKey,
		relVal:     cfg.ReleaseValue,
		sameKey:    cfg.SameKey,
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INTERNAL HELPERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// bucketIndex maps a key to its chain under the current capacity. Indices
// are recomputed wholesale on growth; no index is stable across a resize.
func (m *Map[K, V]) bucketIndex(key K) uint64 {
	return m.hash(key) % uint64(len(m.buckets))
}

// release runs the configured hooks for one entry's payload. Call exactly
// once, at the moment the entry leaves the map.
func (m *Map[K, V]) release(e *entry[K, V]) {
	if m.relKey != nil {
		m.relKey(e.key)
	}
	if m.relVal != nil {
		m.relVal(e.val)
	}
}

// grow rehashes every entry into a bucket array scaled by the growth factor.
// The replacement array is fully built before the single swap below, so the
// caller never observes a half-resized map.
func (m *Map[K, V]) grow() {
	next := make([]*entry[K, V], len(m.buckets)*m.growth)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			after := e.next
			i := m.hash(e.key) % uint64(len(next))
			e.next = next[i]
			next[i] = e
			e = after
		}
	}
	m.buckets = next
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CORE OPERATIONS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Insert stores val under key, overwriting any existing entry for an equal
// key. New entries are pushed to the head of their chain, so chains run
// most-recently-inserted-first.
//
// Growth runs before the chain scan whenever one more entry would push
// size/capacity past the load factor, so the bound holds at every return.
//
// On overwrite the old value is released first (hook set ⇒ exactly once),
// then the old key unless Config.SameKey reports it shares storage with the
// incoming key. The entry is then rewritten in place; size is unchanged.
func (m *Map[K, V]) Insert(key K, val V) error {
	if m == nil || m.buckets == nil {
		return errors.Wrap(ErrInvalidArgument, "insert on nil map")
	}

	if float64(m.size+1)/float64(len(m.buckets)) > m.loadFactor {
		m.grow()
	}

	i := m.bucketIndex(key)
	for e := m.buckets[i]; e != nil; e = e.next {
		if !m.equal(e.key, key) {
			continue
		}
		if m.relVal != nil {
			m.relVal(e.val)
		}
		if m.relKey != nil && (m.sameKey == nil || !m.sameKey(e.key, key)) {
			m.relKey(e.key)
		}
		e.key = key
		e.val = val
		return nil
	}

	m.buckets[i] = &entry[K, V]{key: key, val: val, next: m.buckets[i]}
	m.size++
	return nil
}

// Get returns the live value stored under key. It never mutates the map. A
// nil map reports absence rather than an error.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil || len(m.buckets) == 0 {
		var zero V
		return zero, false
	}
	for e := m.buckets[m.bucketIndex(key)]; e != nil; e = e.next {
		if m.equal(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete unlinks the entry for key, releases its payload, and shrinks size
// by one. An absent key reports ErrNotFound so callers can branch on
// absence without treating it as a failure; a nil map is ErrInvalidArgument,
// a distinct outcome.
func (m *Map[K, V]) Delete(key K) error {
	if m == nil || m.buckets == nil {
		return errors.Wrap(ErrInvalidArgument, "delete on nil map")
	}

	i := m.bucketIndex(key)
	var prev *entry[K, V]
	for e := m.buckets[i]; e != nil; prev, e = e, e.next {
		if !m.equal(e.key, key) {
			continue
		}
		if prev == nil {
			m.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		m.release(e)
		m.size--
		return nil
	}
	return ErrNotFound
}

// Len returns the live entry count; 0 for a nil map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Capacity returns the current bucket count. It only ever grows, by the
// configured factor; 0 for a nil or closed map.
func (m *Map[K, V]) Capacity() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ITERATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Range visits every live entry: buckets in increasing index order, each
// chain most-recently-inserted-first. That ordering is an artifact of the
// storage layout — callers must not read meaning into it.
//
// The visitor returns false to stop; Range then reports ErrAborted, distinct
// from the nil of a completed walk. The visitor must not insert into,
// delete from, or otherwise resize the map it is walking; that is a usage
// contract, not a checked error.
func (m *Map[K, V]) Range(visit func(key K, val V) bool) error {
	if m == nil || visit == nil {
		return errors.Wrap(ErrInvalidArgument, "range needs a map and a visitor")
	}
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !visit(e.key, e.val) {
				return ErrAborted
			}
		}
	}
	return nil
}

// All returns a restartable sequence over the map's entries in Range order.
// Breaking out of the loop is the early-stop mechanism; each call yields a
// fresh walk from the first bucket. The same no-mutation contract as Range
// applies while a walk is live.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns a restartable sequence over keys in Range order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a restartable sequence over values in Range order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TEARDOWN
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Clear releases every live entry exactly once and empties all chains while
// keeping the bucket array, so the map is immediately reusable at its
// current capacity.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	for i, head := range m.buckets {
		for e := head; e != nil; {
			after := e.next
			e.next = nil
			m.release(e)
			e = after
		}
		m.buckets[i] = nil
	}
	m.size = 0
}

// Close tears the map down: every remaining entry's hooks run exactly once,
// then all storage is dropped. Safe to call on a nil map, and calling it
// twice is harmless; any other use after Close reports ErrInvalidArgument
// or absence.
func (m *Map[K, V]) Close() {
	if m == nil || m.buckets == nil {
		return
	}
	m.Clear()
	m.buckets = nil
}
