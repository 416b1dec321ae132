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
	"hash/maphash"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	// Different bucket counts on purpose: equality is about contents,
	// not layout.
	m1, err := New[string, int](maphash.String, WithBucketCount[string, int](4))
	require.NoError(t, err)
	m2, err := New[string, int](maphash.String, WithBucketCount[string, int](64))
	require.NoError(t, err)

	require.True(t, Equal(m1, m2))

	require.NoError(t, m1.Add("a", 1))
	require.False(t, Equal(m1, m2))

	require.NoError(t, m2.Add("a", 1))
	require.True(t, Equal(m1, m2))

	require.NoError(t, m1.Add("b", 2))
	require.NoError(t, m2.Add("b", 3))
	require.False(t, Equal(m1, m2))

	require.True(t, EqualFunc(m1, m2, func(a, b int) bool { return true }))
}

func TestStringFunc(t *testing.T) {
	m, err := New[string, int](maphash.String)
	require.NoError(t, err)
	require.Equal(t, "bucketmap.Map[]", StringFunc(m, nil, nil))

	for i, k := range []string{"c", "a", "b"} {
		require.NoError(t, m.Add(k, i))
	}
	got := StringFunc(m,
		func(k string) string { return k },
		strconv.Itoa)
	require.Equal(t, "bucketmap.Map[a:1 b:2 c:0]", got)
}
