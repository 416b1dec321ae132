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

import "errors"

// Every error returned by this package is one of the sentinels below and
// indicates a violated precondition at the call site, not a transient
// condition. Callers should treat them as bugs to fix rather than states
// to retry; test for them with errors.Is.
var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	ErrDuplicateKey = errors.New("bucketmap: duplicate key")

	// ErrKeyNotFound is returned by Remove and Value when the key is not
	// present.
	ErrKeyNotFound = errors.New("bucketmap: key not found")

	// ErrEmpty is returned by RemoveAny when the map holds no pairs.
	ErrEmpty = errors.New("bucketmap: map is empty")

	// ErrIterDone is returned by Iterator.Next after every pair has been
	// yielded.
	ErrIterDone = errors.New("bucketmap: iterator exhausted")

	// ErrIterRemove is returned by Iterator.Remove; removal through an
	// iterator is not supported.
	ErrIterRemove = errors.New("bucketmap: remove through iterator not supported")

	// ErrInvalidBucketCount is returned by New when WithBucketCount
	// requested a non-positive bucket count.
	ErrInvalidBucketCount = errors.New("bucketmap: bucket count must be positive")

	// ErrSelfTransfer is returned by TransferFrom when the source is the
	// destination.
	ErrSelfTransfer = errors.New("bucketmap: cannot transfer a map from itself")
)
