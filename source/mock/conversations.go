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


package mock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/skeinlabs/skein/source"
)

// ErrPageFailure is the error served for pages registered via
// FailHistoryPage or FailRepliesPage.
var ErrPageFailure = errors.New("injected page failure")

const defaultPageSize = 100

// Conversations is a scripted test double for source.Conversations.
// It allows custom behavior injection via function fields.
type Conversations struct {
	// FetchHistoryFunc is called by FetchHistory if set.
	// If nil, scripted channel data is paginated instead.
	FetchHistoryFunc func(ctx context.Context, channelID, cursor string) (source.Page, error)

	// FetchRepliesFunc is called by FetchReplies if set.
	// If nil, scripted thread data is paginated instead.
	FetchRepliesFunc func(ctx context.Context, channelID, anchorTS, cursor string) (source.Page, error)

	mu           sync.Mutex
	pageSize     int
	channels     map[string][]source.Message
	threads      map[string][]source.Message
	failHistory  map[string]int
	failReplies  map[string]int
	historyCalls int
	repliesCalls int
}

// NewConversations creates an empty scripted source.
// Note: Returns concrete type to allow scripting and test assertions.
func NewConversations() *Conversations {
	return &Conversations{
		pageSize:    defaultPageSize,
		channels:    make(map[string][]source.Message),
		threads:     make(map[string][]source.Message),
		failHistory: make(map[string]int),
		failReplies: make(map[string]int),
	}
}

// SetPageSize sets how many messages each served page holds.
// Values below 1 are ignored.
func (c *Conversations) SetPageSize(size int) {
	if size < 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pageSize = size
}

// AddChannel registers a channel's full message history in server order.
func (c *Conversations) AddChannel(channelID string, messages ...source.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[channelID] = append(c.channels[channelID], messages...)
}

// AddThread registers the reply sequence for the message anchored at
// anchorTS. The sequence must include the anchor message as its first
// element, mirroring the wire behavior of conversation APIs.
//
// Messages without a registered thread serve a single-element thread
// containing just the anchor, like a message that was never replied to.
func (c *Conversations) AddThread(channelID, anchorTS string, replies ...source.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threads[threadKey(channelID, anchorTS)] = replies
}

// FailHistoryPage makes the given 1-based history page of a channel fail
// with ErrPageFailure.
func (c *Conversations) FailHistoryPage(channelID string, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failHistory[channelID] = page
}

// FailRepliesPage makes the given 1-based replies page of a thread fail
// with ErrPageFailure.
func (c *Conversations) FailRepliesPage(channelID, anchorTS string, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failReplies[threadKey(channelID, anchorTS)] = page
}

// FetchHistory serves one page of the scripted channel history.
func (c *Conversations) FetchHistory(ctx context.Context, channelID, cursor string) (source.Page, error) {
	c.mu.Lock()
	c.historyCalls++
	c.mu.Unlock()

	if c.FetchHistoryFunc != nil {
		return c.FetchHistoryFunc(ctx, channelID, cursor)
	}

	page, err := pageNumber(cursor)
	if err != nil {
		return source.Page{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if failAt, ok := c.failHistory[channelID]; ok && failAt == page {
		return source.Page{}, fmt.Errorf("%w: channel %s page %d", ErrPageFailure, channelID, page)
	}
	return paginate(c.channels[channelID], page, c.pageSize), nil
}

// FetchReplies serves one page of the scripted thread anchored at anchorTS.
func (c *Conversations) FetchReplies(ctx context.Context, channelID, anchorTS, cursor string) (source.Page, error) {
	c.mu.Lock()
	c.repliesCalls++
	c.mu.Unlock()

	if c.FetchRepliesFunc != nil {
		return c.FetchRepliesFunc(ctx, channelID, anchorTS, cursor)
	}

	page, err := pageNumber(cursor)
	if err != nil {
		return source.Page{}, err
	}

	key := threadKey(channelID, anchorTS)

	c.mu.Lock()
	defer c.mu.Unlock()
	if failAt, ok := c.failReplies[key]; ok && failAt == page {
		return source.Page{}, fmt.Errorf("%w: thread %s page %d", ErrPageFailure, key, page)
	}

	thread, ok := c.threads[key]
	if !ok {
		// No scripted replies: the thread is just the anchor itself.
		for _, m := range c.channels[channelID] {
			if m.TS == anchorTS {
				thread = []source.Message{m}
				break
			}
		}
	}
	return paginate(thread, page, c.pageSize), nil
}

// HistoryCalls returns the number of times FetchHistory was called.
func (c *Conversations) HistoryCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.historyCalls
}

// RepliesCalls returns the number of times FetchReplies was called.
func (c *Conversations) RepliesCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.repliesCalls
}

// Reset clears call counts, scripted data, and custom functions.
func (c *Conversations) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.historyCalls = 0
	c.repliesCalls = 0
	c.channels = make(map[string][]source.Message)
	c.threads = make(map[string][]source.Message)
	c.failHistory = make(map[string]int)
	c.failReplies = make(map[string]int)
	c.FetchHistoryFunc = nil
	c.FetchRepliesFunc = nil
}

func threadKey(channelID, anchorTS string) string {
	return channelID + "/" + anchorTS
}

// pageNumber maps a cursor token to a 1-based page index.
// The empty token addresses the first page; continuation tokens are "page-N".
func pageNumber(cursor string) (int, error) {
	if cursor == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(cursor, "page-"))
	if err != nil {
		return 0, fmt.Errorf("malformed cursor %q: %w", cursor, err)
	}
	return n, nil
}

func paginate(messages []source.Message, page, size int) source.Page {
	start := (page - 1) * size
	if start >= len(messages) {
		return source.Page{}
	}

	end := start + size
	if end > len(messages) {
		end = len(messages)
	}

	p := source.Page{Messages: messages[start:end]}
	if end < len(messages) {
		p.HasMore = true
		p.NextCursor = fmt.Sprintf("page-%d", page+1)
	}
	return p
}
