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

// Command tagcloud reads a text file, counts word occurrences, and
// writes the most frequent words as a static HTML tag cloud.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bucketmap/bucketmap/internal/cloud"
	"github.com/bucketmap/bucketmap/internal/config"
	"github.com/bucketmap/bucketmap/internal/wordfreq"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	if len(os.Args) != 3 {
		log.Fatal().Msgf("usage: %s <input.txt> <output.html>", filepath.Base(os.Args[0]))
	}
	inPath, outPath := os.Args[1], os.Args[2]

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}

	seps := wordfreq.DefaultSeparators()
	seps.Add(cfg.ExtraSeparators)

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open the input file")
	}
	defer in.Close()

	counts, err := wordfreq.Count(in, seps, cfg.BucketCount)
	if err != nil {
		log.Fatal().Err(err).Msg("could not count words")
	}
	log.Info().Int("distinct_words", counts.Len()).Str("input", inPath).Msg("counted words")

	title := cfg.Title
	if title == "" {
		title = filepath.Base(inPath)
	}
	entries := cloud.Top(counts, cfg.TopN)

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the output file")
	}
	if err := cloud.Render(out, title, entries); err != nil {
		out.Close()
		log.Fatal().Err(err).Msg("could not render the tag cloud")
	}
	if err := out.Close(); err != nil {
		log.Fatal().Err(err).Msg("could not finish writing the output file")
	}
	log.Info().Int("words", len(entries)).Str("output", outPath).Msg("wrote tag cloud")
}
