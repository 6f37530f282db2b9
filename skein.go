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


// Package skein ingests conversational and file data into documents for
// downstream indexing pipelines. This root package offers convenience
// functions that wire configuration, source bindings, and readers together;
// the subpackages expose the individual pieces.
package skein

import (
	"context"

	"github.com/skeinlabs/skein/config"
	"github.com/skeinlabs/skein/core"
	"github.com/skeinlabs/skein/reader/conversation"
	"github.com/skeinlabs/skein/reader/directory"
	"github.com/skeinlabs/skein/source/slack"
)

// LoadSlackDocuments connects to Slack with the given configuration and
// ingests the configured channels, returning one document per channel.
func LoadSlackDocuments(ctx context.Context, cfg *config.Config) ([]core.Document, error) {
	client, err := slack.NewClient(ctx, slack.NewConfig(
		cfg.Slack.Token,
		slack.WithPageSize(cfg.Slack.PageSize),
	))
	if err != nil {
		return nil, err
	}

	reader, err := conversation.NewReader(client, conversation.WithPoolSize(cfg.Reader.Workers))
	if err != nil {
		return nil, err
	}
	defer reader.Release()

	return reader.LoadDocuments(ctx, cfg.Slack.Channels)
}

// LoadDirectoryDocuments reads the regular files of dir, either concatenated
// into a single document or one document per file.
func LoadDirectoryDocuments(dir string, concatenate bool, opts ...directory.Option) ([]core.Document, error) {
	reader, err := directory.NewReader(dir, opts...)
	if err != nil {
		return nil, err
	}
	return reader.LoadDocuments(concatenate)
}
