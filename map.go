// Copyright 2024 The Bucketmap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bucketmap implements a hash table that resolves collisions by
// composition: every slot of a fixed-length bucket array holds an
// independent associative container (the Bucket interface) rather than a
// chain of linked entries. Keys are routed to exactly one bucket by
// reducing hash(key) into [0, N) where N is the bucket count chosen at
// construction time.
//
// The bucket array never grows or shrinks. The cost of an operation is
// therefore proportional to the occupancy of a single bucket (assuming a
// reasonably distributing hash function), not to N or to the total number
// of pairs, with two exceptions: RemoveAny and iterator advancement may
// skip over empty buckets, which is bounded by N.
//
// Unlike Go's builtin map, Add rejects a key that is already present and
// Remove and Value report an error for an absent key. All precondition
// violations surface as sentinel errors (see errors.go) that can be
// tested with errors.Is; none of them are recoverable states that the
// map tolerates internally.
//
// Hashing follows the hash/maphash model: the caller supplies a seeded
// hash function when constructing a Map. For string keys maphash.String
// can be passed directly. As with any hash table, equal keys must hash
// equally; for a comparable K and a deterministic hash function this
// holds by construction.
//
// A Map is NOT goroutine-safe, and an Iterator is invalidated by
// structural mutation of its Map.
package bucketmap

import "hash/maphash"

// DefaultBucketCount is the bucket array length used when no
// WithBucketCount option is given. Clear also resets a Map to this
// length.
const DefaultBucketCount = 100

// Map is an unordered collection of key-value pairs with unique keys. It
// routes every key-based operation to one of a fixed number of delegate
// Bucket containers.
//
// The zero value of a Map is not usable; construct one with New.
type Map[K comparable, V any] struct {
	// The seeded hash function supplied to New. The same function and
	// seed are used for every routing decision over the Map's lifetime,
	// which is what keeps the placement invariant (every pair lives in
	// the bucket its key hashes to) stable without rehashing.
	hash func(maphash.Seed, K) uint64
	seed maphash.Seed
	// Factory for empty bucket containers, used at construction and by
	// Clear and TransferFrom when reinitializing.
	newBucket func() Bucket[K, V]
	// The bucket array. Its length is fixed after construction; only
	// Clear and TransferFrom replace it wholesale.
	buckets []Bucket[K, V]
	// The number of pairs across all buckets. Maintained so that Len is
	// O(1); always equals the sum of the individual bucket lengths.
	size int
}

// New constructs an empty Map. The hash function is used with a
// per-instance random seed to route keys to buckets; it should
// distribute well across its 64-bit range. New returns
// ErrInvalidBucketCount if a WithBucketCount option requested a
// non-positive bucket count.
func New[K comparable, V any](
	hash func(maphash.Seed, K) uint64, options ...option[K, V],
) (*Map[K, V], error) {
	if hash == nil {
		panic("bucketmap: New called with a nil hash function")
	}
	m := &Map[K, V]{
		hash:      hash,
		seed:      maphash.MakeSeed(),
		newBucket: NewListBucket[K, V],
	}
	n := DefaultBucketCount
	for _, op := range options {
		op.apply(m, &n)
	}
	if n <= 0 {
		return nil, ErrInvalidBucketCount
	}
	m.buckets = m.makeBuckets(n)
	return m, nil
}

func (m *Map[K, V]) makeBuckets(n int) []Bucket[K, V] {
	buckets := make([]Bucket[K, V], n)
	for i := range buckets {
		buckets[i] = m.newBucket()
	}
	return buckets
}

// bucketIndex reduces hash(key) into [0, len(m.buckets)). It is the
// single source of truth for which bucket holds a key. Hash values are
// unsigned, so plain modular reduction already lands in range.
func (m *Map[K, V]) bucketIndex(key K) int {
	n := len(m.buckets)
	if n <= 0 {
		panic("bucketmap: bucket count must be positive")
	}
	return int(m.hash(m.seed, key) % uint64(n))
}

// Add inserts a pair into the map. It returns ErrDuplicateKey if key is
// already present; Add never overwrites.
func (m *Map[K, V]) Add(key K, value V) error {
	if err := m.buckets[m.bucketIndex(key)].Add(key, value); err != nil {
		return err
	}
	m.size++
	return nil
}

// Remove removes the pair stored under key and returns it. It returns
// ErrKeyNotFound if key is not present.
func (m *Map[K, V]) Remove(key K) (Pair[K, V], error) {
	p, err := m.buckets[m.bucketIndex(key)].Remove(key)
	if err != nil {
		return Pair[K, V]{}, err
	}
	m.size--
	return p, nil
}

// RemoveAny removes and returns an arbitrary pair. It returns ErrEmpty
// if the map holds no pairs.
//
// "Arbitrary" is implementation-defined but deterministic for a given
// bucket layout: the pair comes from the lowest-index non-empty bucket,
// and which of that bucket's pairs is removed is up to the bucket
// container. Callers must not rely on any fairness across calls.
func (m *Map[K, V]) RemoveAny() (Pair[K, V], error) {
	if m.size == 0 {
		return Pair[K, V]{}, ErrEmpty
	}
	for _, b := range m.buckets {
		if b.Len() == 0 {
			continue
		}
		p, err := b.RemoveAny()
		if err != nil {
			return Pair[K, V]{}, err
		}
		m.size--
		return p, nil
	}
	// size > 0 yet every bucket was empty: the running total and the
	// bucket contents disagree.
	panic("bucketmap: size disagrees with bucket contents")
}

// Value returns the value stored under key without removing it. It
// returns ErrKeyNotFound if key is not present.
func (m *Map[K, V]) Value(key K) (V, error) {
	return m.buckets[m.bucketIndex(key)].Value(key)
}

// HasKey reports whether key is present.
func (m *Map[K, V]) HasKey(key K) bool {
	return m.buckets[m.bucketIndex(key)].HasKey(key)
}

// Len returns the number of pairs in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Clear discards all pairs and resets the map to an empty bucket array
// of DefaultBucketCount buckets. The hash function, seed, and bucket
// factory are retained.
func (m *Map[K, V]) Clear() {
	m.size = 0
	m.buckets = m.makeBuckets(DefaultBucketCount)
}

// TransferFrom moves the entire contents of src into m, discarding m's
// prior contents, and leaves src as a fresh empty map with
// DefaultBucketCount buckets. The bucket array changes hands as-is: no
// pair is copied or re-hashed, so the hash function and seed travel
// with it (the placement invariant would not survive re-routing src's
// pairs through m's hash).
//
// TransferFrom returns ErrSelfTransfer if src is m itself.
func (m *Map[K, V]) TransferFrom(src *Map[K, V]) error {
	if src == m {
		return ErrSelfTransfer
	}
	m.buckets = src.buckets
	m.size = src.size
	m.hash = src.hash
	m.seed = src.seed
	m.newBucket = src.newBucket
	src.size = 0
	src.buckets = src.makeBuckets(DefaultBucketCount)
	return nil
}

// All calls yield sequentially for each key and value present in the
// map, in the same order as an Iterator. If yield returns false, All
// stops. The map must not be mutated during the iteration.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	for it := m.Iter(); it.HasNext(); {
		p, err := it.Next()
		if err != nil {
			return
		}
		if !yield(p.Key, p.Value) {
			return
		}
	}
}
