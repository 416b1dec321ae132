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

// Package wordfreq tokenizes text into words and accumulates per-word
// counts in a bucketmap.Map.
package wordfreq

import (
	"bufio"
	"fmt"
	"hash/maphash"
	"io"
	"strings"

	"github.com/bucketmap/bucketmap"
)

// Separators is the set of runes that delimit words.
type Separators map[rune]struct{}

// DefaultSeparators returns the standard separator set: whitespace plus
// common punctuation.
func DefaultSeparators() Separators {
	s := make(Separators)
	s.Add("\n\t\r ,-.!?[]:;_*\"")
	return s
}

// Add inserts every rune of runes into the set.
func (s Separators) Add(runes string) {
	for _, r := range runes {
		s[r] = struct{}{}
	}
}

// Contains reports whether r is a separator. Its signature fits
// strings.FieldsFunc.
func (s Separators) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Count reads r line by line, splits each line into words at the given
// separators, and returns a map from word to occurrence count. Words
// are counted case-sensitively. buckets sizes the map's bucket array.
func Count(r io.Reader, seps Separators, buckets int) (*bucketmap.Map[string, int], error) {
	m, err := bucketmap.New[string, int](maphash.String,
		bucketmap.WithBucketCount[string, int](buckets))
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		for _, word := range strings.FieldsFunc(sc.Text(), seps.Contains) {
			if err := bump(m, word); err != nil {
				return nil, fmt.Errorf("counting %q: %w", word, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return m, nil
}

// bump increments word's count. Keys are unique in the map, so an
// increment is a remove followed by a re-add.
func bump(m *bucketmap.Map[string, int], word string) error {
	if !m.HasKey(word) {
		return m.Add(word, 1)
	}
	p, err := m.Remove(word)
	if err != nil {
		return err
	}
	return m.Add(word, p.Value+1)
}
