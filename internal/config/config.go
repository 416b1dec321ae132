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

package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the tagcloud application configuration structure
type Config struct {
	// TopN is how many of the most frequent words end up in the cloud.
	TopN int `split_words:"true" default:"100"`
	// Title overrides the page title; the input file name is used when
	// empty.
	Title string `default:""`
	// ExtraSeparators are runes treated as word separators in addition
	// to the built-in set.
	ExtraSeparators string `split_words:"true" default:""`
	// BucketCount sizes the word-count map's bucket array.
	BucketCount int `split_words:"true" default:"1024"`
}

// LoadFromEnv loads a new configuration structure using environment
// variables (prefix TAGCLOUD_) and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("tagcloud", config); err != nil {
		return nil, err
	}
	return config, nil
}
