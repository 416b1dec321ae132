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

// Package cloud renders word counts as a static HTML tag cloud.
package cloud

import (
	"html/template"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/bucketmap/bucketmap"
)

// Font sizes span fontOffset..fontOffset+maxFont, scaled linearly
// between the smallest and largest count in the cloud.
const (
	maxFont    = 37
	fontOffset = 11
)

// Entry is one word of the cloud with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Top selects the n most frequent words from m (ties broken
// alphabetically, case-insensitively) and returns them in alphabetical
// order, which is how the cloud lays words out. It returns fewer than n
// entries when the map holds fewer words, and none when n is not
// positive.
func Top(m *bucketmap.Map[string, int], n int) []Entry {
	if n < 0 {
		n = 0
	}
	entries := make([]Entry, 0, m.Len())
	m.All(func(word string, count int) bool {
		entries = append(entries, Entry{Word: word, Count: count})
		return true
	})

	slices.SortFunc(entries, func(a, b Entry) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return lowerLess(a.Word, b.Word)
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	slices.SortFunc(entries, func(a, b Entry) bool {
		return lowerLess(a.Word, b.Word)
	})
	return entries
}

func lowerLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

var cloudTmpl = template.Must(template.New("cloud").Parse(`<html>
<head>
<title>Top {{len .Entries}} word(s) in {{.Title}}</title>
<link href="data/tagcloud.css" rel="stylesheet" type="text/css">
</head>
<body>
<h2>Top {{len .Entries}} word(s) in {{.Title}}</h2>
<hr>
<div class="cdiv">
<p class="cbox">
{{range .Entries}}<span style="cursor:default" class="f{{.Font}}" title="count:{{.Count}}">{{.Word}}</span>
{{end}}</p>
</div>
</body>
</html>
`))

type span struct {
	Word  string
	Count int
	Font  int
}

// Render writes entries as an HTML tag cloud to w. Words are sized
// relative to the count spread within entries.
func Render(w io.Writer, title string, entries []Entry) error {
	min, max := countRange(entries)
	spread := max - min
	if spread == 0 {
		// A flat cloud renders everything at the base font.
		spread = 1
	}

	data := struct {
		Title   string
		Entries []span
	}{Title: title}
	for _, e := range entries {
		data.Entries = append(data.Entries, span{
			Word:  e.Word,
			Count: e.Count,
			Font:  maxFont*(e.Count-min)/spread + fontOffset,
		})
	}
	return cloudTmpl.Execute(w, data)
}

func countRange(entries []Entry) (min, max int) {
	for i, e := range entries {
		if i == 0 || e.Count < min {
			min = e.Count
		}
		if i == 0 || e.Count > max {
			max = e.Count
		}
	}
	return min, max
}
