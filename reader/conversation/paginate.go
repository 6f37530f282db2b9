package conversation

import (
	"context"
	"strings"

	"github.com/skeinlabs/skein/source"
)

// readChannel fetches a channel's entire message history page by page.
// The returned flag is false when the sequence was truncated by a page
// failure. A non-nil error is only ever the context's error.
func (r *Reader) readChannel(ctx context.Context, channelID string) ([]source.Message, bool, error) {
	return r.paginate(ctx, func(cursor string) (source.Page, error) {
		return r.conversations.FetchHistory(ctx, channelID, cursor)
	}, "channel", channelID)
}

// readThread fetches the reply thread anchored at anchorTS and joins the
// reply texts with blank lines. The anchor's own text arrives as the first
// reply from the source.
func (r *Reader) readThread(ctx context.Context, channelID, anchorTS string) (string, bool, error) {
	replies, complete, err := r.paginate(ctx, func(cursor string) (source.Page, error) {
		return r.conversations.FetchReplies(ctx, channelID, anchorTS, cursor)
	}, "channel", channelID, "anchor", anchorTS)
	if err != nil {
		return "", false, err
	}

	texts := make([]string, 0, len(replies))
	for _, reply := range replies {
		texts = append(texts, reply.Text)
	}
	return strings.Join(texts, "\n\n"), complete, nil
}

// paginate drives one cursor loop to exhaustion. Every page's records are
// appended in page order; a fetch or continuation failure logs the position
// and ends the sequence early, keeping what was accumulated. Cancellation is
// checked before each fetch, the only blocking point, and is returned rather
// than swallowed.
func (r *Reader) paginate(ctx context.Context, fetch func(cursor string) (source.Page, error), logAttrs ...any) ([]source.Message, bool, error) {
	var messages []source.Message

	cursor := source.Start()
	for !cursor.Done() {
		if err := ctx.Err(); err != nil {
			return messages, false, err
		}

		page, err := fetch(cursor.Token())
		if err != nil {
			if ctx.Err() != nil {
				return messages, false, ctx.Err()
			}
			r.logger.Error("page fetch failed, truncating sequence",
				append(logAttrs, "cursor", cursor.Token(), "err", err)...)
			return messages, false, nil
		}

		messages = append(messages, page.Messages...)

		next, err := cursor.Advance(page)
		if err != nil {
			r.logger.Error("invalid page continuation, truncating sequence",
				append(logAttrs, "cursor", cursor.Token(), "err", err)...)
			return messages, false, nil
		}
		cursor = next
	}

	return messages, true, nil
}
