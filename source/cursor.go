package source

import "fmt"

type cursorState int

const (
	cursorStart cursorState = iota
	cursorContinue
	cursorDone
)

// Cursor tracks progress through a paginated sequence. The zero value is not
// meaningful; obtain one from Start and advance it with each fetched Page.
//
// A Cursor is in exactly one of three states: start (no page fetched yet),
// continue (a token for the next page is held), or done (the sequence is
// exhausted). This keeps the terminal condition of a pagination loop distinct
// from its initial condition, which a bare nullable token cannot do.
type Cursor struct {
	state cursorState
	token string
}

// Start returns a cursor positioned before the first page of a sequence.
func Start() Cursor {
	return Cursor{state: cursorStart}
}

// Token returns the wire-level continuation token for the next fetch.
// It is empty in the start state.
func (c Cursor) Token() string {
	return c.token
}

// Done reports whether the sequence is exhausted.
func (c Cursor) Done() bool {
	return c.state == cursorDone
}

// Advance consumes one fetched page and returns the cursor for the page after
// it. A page with HasMore false ends the sequence. A page that claims more
// pages exist but carries no continuation token violates the pagination
// contract and yields ErrMissingCursor; callers must treat that page as a
// terminal error.
func (c Cursor) Advance(p Page) (Cursor, error) {
	if c.state == cursorDone {
		return c, fmt.Errorf("%w: token %q", ErrCursorExhausted, c.token)
	}

	if !p.HasMore {
		return Cursor{state: cursorDone}, nil
	}
	if p.NextCursor == "" {
		return Cursor{state: cursorDone}, ErrMissingCursor
	}
	return Cursor{state: cursorContinue, token: p.NextCursor}, nil
}
