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

import "hash/maphash"

// option provides an interface to do work on a Map while it is being
// created. The bucket count is applied last by New, which validates it.
type option[K comparable, V any] interface {
	apply(m *Map[K, V], bucketCount *int)
}

type bucketCountOption[K comparable, V any] struct {
	n int
}

func (op bucketCountOption[K, V]) apply(m *Map[K, V], bucketCount *int) {
	*bucketCount = op.n
}

// WithBucketCount is an option to set the length of the bucket array.
// The count is fixed for the lifetime of the Map (Clear resets it to
// DefaultBucketCount). New rejects a non-positive count with
// ErrInvalidBucketCount.
func WithBucketCount[K comparable, V any](n int) option[K, V] {
	return bucketCountOption[K, V]{n}
}

type bucketFuncOption[K comparable, V any] struct {
	newBucket func() Bucket[K, V]
}

func (op bucketFuncOption[K, V]) apply(m *Map[K, V], bucketCount *int) {
	m.newBucket = op.newBucket
}

// WithBucketFunc is an option to substitute the container used for each
// bucket. The factory must return a new empty Bucket on every call. The
// routing logic is untouched by the substitution.
func WithBucketFunc[K comparable, V any](newBucket func() Bucket[K, V]) option[K, V] {
	return bucketFuncOption[K, V]{newBucket}
}

type seedOption[K comparable, V any] struct {
	seed maphash.Seed
}

func (op seedOption[K, V]) apply(m *Map[K, V], bucketCount *int) {
	m.seed = op.seed
}

// WithSeed is an option to fix the seed passed to the hash function
// instead of drawing a random one. Sharing a seed between maps makes
// their bucket placement reproducible, which tests rely on.
func WithSeed[K comparable, V any](seed maphash.Seed) option[K, V] {
	return seedOption[K, V]{seed}
}
