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

// Iterator is a single-pass, forward-only cursor over a Map. It yields
// bucket 0's pairs in that bucket's own order, then bucket 1's, and so
// on; there is no guarantee beyond ascending bucket index. The
// traversal lazily opens one bucket iterator at a time and counts pairs
// yielded so far against the map-level total, so empty buckets cost one
// skip each and nothing more.
//
// An Iterator is bound to the state of its Map at the time Iter was
// called. Structurally mutating the map while an iterator is live is
// undefined behavior.
type Iterator[K comparable, V any] struct {
	m *Map[K, V]
	// Pairs yielded so far. HasNext compares this against the map's
	// running size rather than asking the current bucket, which is what
	// lets the walk cross bucket boundaries lazily.
	seen   int
	bucket int
	cur    PairIter[K, V]
}

// Iter returns an iterator positioned before the first pair. The
// cursor starts on bucket 0 even when bucket 0 is empty.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m, cur: m.buckets[0].Iter()}
}

// HasNext reports whether Next will yield another pair.
func (it *Iterator[K, V]) HasNext() bool {
	return it.seen < it.m.size
}

// Next returns the next pair in the traversal. It returns ErrIterDone
// once every pair has been yielded.
func (it *Iterator[K, V]) Next() (Pair[K, V], error) {
	if !it.HasNext() {
		return Pair[K, V]{}, ErrIterDone
	}
	it.seen++
	for !it.cur.Next() {
		it.bucket++
		if it.bucket >= len(it.m.buckets) {
			// HasNext promised another pair but the buckets ran dry: the
			// map's size and its bucket contents disagree.
			panic("bucketmap: size disagrees with bucket contents")
		}
		it.cur = it.m.buckets[it.bucket].Iter()
	}
	return Pair[K, V]{Key: it.cur.Key(), Value: it.cur.Value()}, nil
}

// Remove always returns ErrIterRemove. Pairs are removed through
// Map.Remove or Map.RemoveAny, never through an iterator.
func (it *Iterator[K, V]) Remove() error {
	return ErrIterRemove
}
