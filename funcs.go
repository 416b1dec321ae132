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

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Equal reports whether m1 and m2 hold the same set of keys with equal
// values. Values are compared with ==. The maps may differ in bucket
// count, bucket container, and hash function.
func Equal[K, V comparable](m1, m2 *Map[K, V]) bool {
	return EqualFunc(m1, m2, func(a, b V) bool { return a == b })
}

// EqualFunc reports whether m1 and m2 hold the same set of keys with
// values equal under eq.
func EqualFunc[K comparable, V any](m1, m2 *Map[K, V], eq func(V, V) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	equal := true
	m1.All(func(k K, v V) bool {
		v2, err := m2.Value(k)
		if err != nil || !eq(v, v2) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// String converts m to a string representation using K's and V's String
// methods.
func String[K interface {
	comparable
	fmt.Stringer
}, V fmt.Stringer](m *Map[K, V]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(value V) string { return value.String() },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts m to a string representation with the help of
// strK and strV functions to stringify m's keys and values. Pairs are
// sorted by stringified key so the output is deterministic regardless
// of bucket placement.
func StringFunc[K comparable, V any](m *Map[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if m == nil || m.Len() == 0 {
		return "bucketmap.Map[]"
	}
	strs := make([]strKV, 0, m.Len())
	s := 0
	m.All(func(k K, v V) bool {
		kv := strKV{k: strK(k), v: strV(v)}
		s += len(kv.k) + len(kv.v)
		strs = append(strs, kv)
		return true
	})
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("bucketmap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("bucketmap.Map[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}
