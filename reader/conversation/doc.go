// Package conversation turns channel-based message histories into documents.
//
// The Reader pages through each requested channel's history and, for every
// message it finds, pages through that message's reply thread. Reply texts
// are joined with blank lines into one block per message, and the blocks are
// joined with blank lines into one document per channel, preserving the
// server's chronological ordering throughout.
//
// Page fetches are best-effort: a failed page is logged and terminates its
// sequence early, keeping everything fetched so far. Documents assembled
// after such a failure are marked incomplete rather than raising an error.
// Context cancellation is the exception; it aborts the whole load.
//
// Channels fan out across a worker pool, but each channel's own pagination
// runs strictly sequentially, so the output text is identical to a fully
// sequential run.
package conversation
