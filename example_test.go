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

package bucketmap_test

import (
	"fmt"
	"hash/maphash"
	"strconv"

	"github.com/bucketmap/bucketmap"
)

func ExampleMap() {
	m, err := bucketmap.New[string, string](maphash.String)
	if err != nil {
		panic(err)
	}
	m.Add("Avenue", "AVE")
	m.Add("Street", "ST")
	m.Add("Court", "CT")

	fmt.Println(bucketmap.StringFunc(m,
		func(k string) string { return k },
		func(v string) string { return v }))
	// Output: bucketmap.Map[Avenue:AVE Court:CT Street:ST]
}

func ExampleMap_Iter() {
	m, err := bucketmap.New[string, int](maphash.String)
	if err != nil {
		panic(err)
	}
	m.Add("apples", 4)
	m.Add("pears", 2)

	total := 0
	for it := m.Iter(); it.HasNext(); {
		p, err := it.Next()
		if err != nil {
			panic(err)
		}
		total += p.Value
	}
	fmt.Println(strconv.Itoa(total) + " pieces of fruit")
	// Output: 6 pieces of fruit
}
