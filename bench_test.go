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
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"io"
	"strconv"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"
)

type benchTypes interface {
	int64 | string
}

func benchHash[T benchTypes]() func(maphash.Seed, T) uint64 {
	return func(seed maphash.Seed, key T) uint64 {
		switch k := any(key).(type) {
		case int64:
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(k))
			return maphash.Bytes(seed, buf[:])
		case string:
			return maphash.String(seed, k)
		default:
			panic("not reached")
		}
	}
}

func genKeys[T benchTypes](start, end int) []T {
	var t T
	switch any(t).(type) {
	case int64:
		keys := make([]int64, end-start)
		for i := range keys {
			keys[i] = int64(start + i)
		}
		return any(keys).([]T)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return any(keys).([]T)
	default:
		panic("not reached")
	}
}

func benchSizes[T benchTypes](
	f func(b *testing.B, n int, genKeys func(start, end int) []T), genKeys func(start, end int) []T,
) func(*testing.B) {
	var cases = []int{
		16,
		128,
		1024,
		8192,
		1 << 16,
	}

	return func(b *testing.B) {
		for _, n := range cases {
			b.Run("len="+strconv.Itoa(n), func(b *testing.B) { f(b, n, genKeys) })
		}
	}
}

// newBench builds a map sized so the average bucket holds a handful of
// pairs, roughly how a caller picks a bucket count for a known load.
func newBench[T benchTypes](n int) *Map[T, T] {
	m, err := New[T, T](benchHash[T](), WithBucketCount[T, T](1+n/4))
	if err != nil {
		panic(err)
	}
	return m
}

func BenchmarkMapValueHit(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapValueHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapValueHit[string], genKeys[string]))
	})
	b.Run("impl=bucketMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkBucketMapValueHit[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkBucketMapValueHit[string], genKeys[string]))
	})
}

func BenchmarkMapValueMiss(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapValueMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapValueMiss[string], genKeys[string]))
	})
	b.Run("impl=bucketMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkBucketMapValueMiss[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkBucketMapValueMiss[string], genKeys[string]))
	})
}

func BenchmarkMapAdd(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapAdd[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkRuntimeMapAdd[string], genKeys[string]))
	})
	b.Run("impl=bucketMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkBucketMapAdd[int64], genKeys[int64]))
		b.Run("t=String", benchSizes(benchmarkBucketMapAdd[string], genKeys[string]))
	})
}

func BenchmarkMapIter(b *testing.B) {
	b.Run("impl=runtimeMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkRuntimeMapIter[int64], genKeys[int64]))
	})
	b.Run("impl=bucketMap", func(b *testing.B) {
		b.Run("t=Int64", benchSizes(benchmarkBucketMapIter[int64], genKeys[int64]))
	})
}

func benchmarkRuntimeMapValueHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	keys := genKeys(0, n)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%n]]
	}
}

func benchmarkBucketMapValueHit[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := newBench[T](n)
	keys := genKeys(0, n)
	for _, k := range keys {
		if err := m.Add(k, k); err != nil {
			b.Fatal(err)
		}
	}
	cs := perfbench.Open(b)
	b.ResetTimer()
	var err error
	for i := 0; i < b.N; i++ {
		_, err = m.Value(keys[i%n])
	}
	cs.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, err)
}

func benchmarkRuntimeMapValueMiss[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[miss[i%n]]
	}
}

func benchmarkBucketMapValueMiss[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := newBench[T](n)
	keys := genKeys(0, n)
	miss := genKeys(-n, 0)
	for _, k := range keys {
		if err := m.Add(k, k); err != nil {
			b.Fatal(err)
		}
	}
	cs := perfbench.Open(b)
	b.ResetTimer()
	var err error
	for i := 0; i < b.N; i++ {
		_, err = m.Value(miss[i%n])
	}
	cs.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, err)
}

func benchmarkRuntimeMapAdd[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[T]T, n)
		for _, k := range keys {
			m[k] = k
		}
	}
}

func benchmarkBucketMapAdd[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	keys := genKeys(0, n)
	cs := perfbench.Open(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := newBench[T](n)
		for _, k := range keys {
			if err := m.Add(k, k); err != nil {
				b.Fatal(err)
			}
		}
	}
	cs.Stop()
}

func benchmarkRuntimeMapIter[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := make(map[T]T, n)
	for _, k := range genKeys(0, n) {
		m[k] = k
	}
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		for k, v := range m {
			tmp += k + v
		}
	}
	b.StopTimer()
	fmt.Fprint(io.Discard, tmp)
}

func benchmarkBucketMapIter[T benchTypes](
	b *testing.B, n int, genKeys func(start, end int) []T,
) {
	m := newBench[T](n)
	for _, k := range genKeys(0, n) {
		if err := m.Add(k, k); err != nil {
			b.Fatal(err)
		}
	}
	cs := perfbench.Open(b)
	b.ResetTimer()
	var tmp T
	for i := 0; i < b.N; i++ {
		m.All(func(k, v T) bool {
			tmp += k + v
			return true
		})
	}
	cs.Stop()
	b.StopTimer()
	fmt.Fprint(io.Discard, tmp)
}
