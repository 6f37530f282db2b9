// Copyright 2026 Skein Labs
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


// Package splitter chunks ingested documents for downstream indexing.
//
// Readers produce one document per channel or file, which is usually far too
// large to index as a unit. The Splitter cuts document bodies into
// overlapping chunks and emits them as langchaingo schema.Document values,
// the currency of the indexing pipelines this module feeds. Source metadata
// tags are copied onto every chunk, and chunks can optionally be annotated
// with extracted keywords.
package splitter

import (
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/skeinlabs/skein/core"
	"github.com/skeinlabs/skein/keyword"
)

const (
	defaultChunkSize    = 512
	defaultChunkOverlap = 64
)

// Splitter cuts documents into indexable chunks.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	maxKeywords  int
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithChunkSize sets the target chunk size in characters. Default 512.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between adjacent chunks. Default 64.
func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.chunkOverlap = overlap
		}
	}
}

// WithKeywords annotates every chunk with up to max extracted keywords under
// the "keywords" metadata key.
func WithKeywords(max int) Option {
	return func(s *Splitter) {
		s.maxKeywords = max
	}
}

// New creates a Splitter.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split chunks every document body and returns the chunks in document order.
// Each chunk carries the source document's extra-info tags; chunks of an
// incomplete document are additionally tagged with "truncated": true.
func (s *Splitter) Split(docs ...core.Document) ([]schema.Document, error) {
	ts := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(s.chunkSize),
		textsplitter.WithChunkOverlap(s.chunkOverlap),
	)

	var out []schema.Document
	for _, doc := range docs {
		chunks, err := ts.SplitText(doc.Body)
		if err != nil {
			return nil, err
		}

		for _, chunk := range chunks {
			metadata := make(map[string]any, len(doc.ExtraInfo)+2)
			for k, v := range doc.ExtraInfo {
				metadata[k] = v
			}
			if !doc.Complete {
				metadata["truncated"] = true
			}
			if s.maxKeywords > 0 {
				metadata["keywords"] = keyword.Extract(chunk, s.maxKeywords, true)
			}

			out = append(out, schema.Document{
				PageContent: chunk,
				Metadata:    metadata,
			})
		}
	}

	return out, nil
}
