// Package slack implements source.Conversations over the Slack Web API.
//
// Channel history is read with conversations.history and threads with
// conversations.replies, both driven by the caller's cursor. The client
// verifies the token with auth.test at construction, so a misconfigured
// binding fails before any pagination begins.
package slack

import (
	"context"
	"fmt"
	"log/slog"

	api "github.com/slack-go/slack"

	"github.com/skeinlabs/skein/source"
)

// Client implements source.Conversations using the Slack Web API.
type Client struct {
	api      *api.Client
	pageSize int
	logger   *slog.Logger
}

// NewClient creates a Slack-backed conversation source and verifies the
// configured token with an auth.test call.
//
// Returns source.Conversations to enforce abstraction; readers never see the
// concrete binding.
func NewClient(ctx context.Context, config *Config) (source.Conversations, error) {
	return newClient(ctx, config)
}

func newClient(ctx context.Context, config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []api.Option{}
	if config.APIURL != "" {
		opts = append(opts, api.OptionAPIURL(config.APIURL))
	}
	client := api.New(config.Token, opts...)

	if _, err := client.AuthTestContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	return &Client{
		api:      client,
		pageSize: config.PageSize,
		logger:   slog.Default().With("component", "slack-source"),
	}, nil
}

// FetchHistory returns one page of a channel's message history.
func (c *Client) FetchHistory(ctx context.Context, channelID, cursor string) (source.Page, error) {
	c.logger.Debug("fetching history page", "channel", channelID, "cursor", cursor)

	resp, err := c.api.GetConversationHistoryContext(ctx, &api.GetConversationHistoryParameters{
		ChannelID: channelID,
		Cursor:    cursor,
		Limit:     c.pageSize,
	})
	if err != nil {
		return source.Page{}, err
	}

	return source.Page{
		Messages:   toMessages(resp.Messages),
		HasMore:    resp.HasMore,
		NextCursor: resp.ResponseMetaData.NextCursor,
	}, nil
}

// FetchReplies returns one page of the thread anchored at anchorTS.
func (c *Client) FetchReplies(ctx context.Context, channelID, anchorTS, cursor string) (source.Page, error) {
	c.logger.Debug("fetching replies page", "channel", channelID, "anchor", anchorTS, "cursor", cursor)

	msgs, hasMore, nextCursor, err := c.api.GetConversationRepliesContext(ctx, &api.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: anchorTS,
		Cursor:    cursor,
		Limit:     c.pageSize,
	})
	if err != nil {
		return source.Page{}, err
	}

	return source.Page{
		Messages:   toMessages(msgs),
		HasMore:    hasMore,
		NextCursor: nextCursor,
	}, nil
}

func toMessages(msgs []api.Message) []source.Message {
	out := make([]source.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, source.Message{
			TS:   m.Timestamp,
			Text: m.Text,
		})
	}
	return out
}
