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

package bucketmap

// Pair holds a key and its associated value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// PairIter is a pull iterator over a bucket's pairs. Next advances the
// iterator and reports whether a pair is available; Key and Value are
// only valid after a call to Next that returned true. A PairIter must
// enumerate each pair in its bucket exactly once, in any order.
type PairIter[K comparable, V any] interface {
	Next() bool
	Key() K
	Value() V
}

// Bucket is the associative-container capability a Map delegates each
// bucket slot to. Implementations must keep keys unique, and they need
// no hashing of their own: the Map only hands a bucket the keys that
// routed to it.
//
// The error contract mirrors the Map's: Add returns ErrDuplicateKey for
// a present key, Remove and Value return ErrKeyNotFound for an absent
// one, RemoveAny returns ErrEmpty on an empty bucket.
type Bucket[K comparable, V any] interface {
	Add(key K, value V) error
	Remove(key K) (Pair[K, V], error)
	RemoveAny() (Pair[K, V], error)
	Value(key K) (V, error)
	HasKey(key K) bool
	Len() int
	Iter() PairIter[K, V]
}

// listBucket is the default Bucket: a slice of pairs searched linearly.
// Buckets stay small when the hash function distributes well, so the
// linear scan is cheap and the representation has no per-pair overhead
// beyond the pair itself.
type listBucket[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// NewListBucket returns an empty slice-backed Bucket. It is the factory
// a Map uses unless WithBucketFunc substitutes another container.
func NewListBucket[K comparable, V any]() Bucket[K, V] {
	return &listBucket[K, V]{}
}

// index returns the position of key in b.pairs, or -1.
func (b *listBucket[K, V]) index(key K) int {
	for i := range b.pairs {
		if b.pairs[i].Key == key {
			return i
		}
	}
	return -1
}

func (b *listBucket[K, V]) Add(key K, value V) error {
	if b.index(key) >= 0 {
		return ErrDuplicateKey
	}
	b.pairs = append(b.pairs, Pair[K, V]{Key: key, Value: value})
	return nil
}

func (b *listBucket[K, V]) Remove(key K) (Pair[K, V], error) {
	i := b.index(key)
	if i < 0 {
		return Pair[K, V]{}, ErrKeyNotFound
	}
	return b.removeAt(i), nil
}

func (b *listBucket[K, V]) RemoveAny() (Pair[K, V], error) {
	if len(b.pairs) == 0 {
		return Pair[K, V]{}, ErrEmpty
	}
	return b.removeAt(len(b.pairs) - 1), nil
}

// removeAt removes and returns the pair at index i. The last pair is
// swapped into the hole; a bucket promises no order.
func (b *listBucket[K, V]) removeAt(i int) Pair[K, V] {
	p := b.pairs[i]
	last := len(b.pairs) - 1
	b.pairs[i] = b.pairs[last]
	// Clear the vacated slot in case K or V hold pointers.
	b.pairs[last] = Pair[K, V]{}
	b.pairs = b.pairs[:last]
	return p
}

func (b *listBucket[K, V]) Value(key K) (V, error) {
	i := b.index(key)
	if i < 0 {
		var zero V
		return zero, ErrKeyNotFound
	}
	return b.pairs[i].Value, nil
}

func (b *listBucket[K, V]) HasKey(key K) bool {
	return b.index(key) >= 0
}

func (b *listBucket[K, V]) Len() int {
	return len(b.pairs)
}

func (b *listBucket[K, V]) Iter() PairIter[K, V] {
	return &listIter[K, V]{pairs: b.pairs, i: -1}
}

// listIter walks a snapshot of the bucket's pair slice.
type listIter[K comparable, V any] struct {
	pairs []Pair[K, V]
	i     int
}

func (it *listIter[K, V]) Next() bool {
	it.i++
	return it.i < len(it.pairs)
}

func (it *listIter[K, V]) Key() K {
	return it.pairs[it.i].Key
}

func (it *listIter[K, V]) Value() V {
	return it.pairs[it.i].Value
}
