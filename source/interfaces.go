package source

import "context"

// Conversations is the capability a conversational backend must provide.
// Implementations must be safe for concurrent use; readers may fetch several
// channels at once.
type Conversations interface {
	// FetchHistory returns one page of a channel's message history.
	// An empty cursor requests the first page; subsequent pages are
	// requested with the NextCursor token of the previous page.
	FetchHistory(ctx context.Context, channelID, cursor string) (Page, error)

	// FetchReplies returns one page of the reply thread anchored at the
	// message with timestamp anchorTS in the given channel. The anchor
	// message itself is included as the first reply of the thread.
	FetchReplies(ctx context.Context, channelID, anchorTS, cursor string) (Page, error)
}

// Message is a raw message record as returned by a conversational source.
type Message struct {
	// TS is the timestamp-like identifier of the message. It doubles as
	// the anchor key for the message's reply thread.
	TS string

	// Text is the message body.
	Text string
}

// Page is one bounded batch of messages plus continuation metadata.
type Page struct {
	// Messages holds the records of this page in server order.
	Messages []Message

	// HasMore reports whether further pages exist.
	HasMore bool

	// NextCursor is the continuation token for the next page. It must be
	// non-empty whenever HasMore is true.
	NextCursor string
}
