package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/skeinlabs/skein/core"
	"github.com/skeinlabs/skein/source"
)

// Reader ingests channel conversations into per-channel documents.
// It fans channel loads out across a worker pool.
type Reader struct {
	conversations source.Conversations
	pool          *ants.Pool
	logger        *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader) error

// WithPoolSize sets the worker pool size for concurrent channel loading.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Reader) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewReader creates a conversation reader over the given source.
func NewReader(conversations source.Conversations, opts ...Option) (*Reader, error) {
	if conversations == nil {
		return nil, ErrConversationsRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		conversations: conversations,
		pool:          pool,
		logger:        slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// LoadDocuments ingests every requested channel and returns one document per
// channel ID, in input order. A document's body is the channel's full
// thread-expanded text; its extra info carries the channel ID under the
// "channel" key.
//
// Page-level fetch failures do not fail the load: the affected channel's
// document holds whatever was fetched before the failure and is marked
// incomplete. Cancelling the context aborts the whole call with the context
// error and no documents.
func (r *Reader) LoadDocuments(ctx context.Context, channelIDs []string) ([]core.Document, error) {
	if len(channelIDs) == 0 {
		return nil, core.ErrNoChannels
	}
	for i, id := range channelIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: index %d", core.ErrEmptyChannelID, i)
		}
	}

	docs := make([]core.Document, len(channelIDs))
	errs := make([]error, len(channelIDs))

	var wg sync.WaitGroup
	for i, id := range channelIDs {
		wg.Add(1)
		if err := r.pool.Submit(func() {
			defer wg.Done()
			docs[i], errs[i] = r.loadChannel(ctx, id)
		}); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// Release releases the worker pool.
// The reader should not be used after calling Release.
func (r *Reader) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// loadChannel assembles the full thread-expanded document for one channel.
func (r *Reader) loadChannel(ctx context.Context, channelID string) (core.Document, error) {
	messages, complete, err := r.readChannel(ctx, channelID)
	if err != nil {
		return core.Document{}, err
	}

	texts := make([]string, 0, len(messages))
	for _, message := range messages {
		text, threadComplete, err := r.readThread(ctx, channelID, message.TS)
		if err != nil {
			return core.Document{}, err
		}
		complete = complete && threadComplete
		texts = append(texts, text)
	}

	doc := core.NewDocument(strings.Join(texts, "\n\n"), map[string]string{"channel": channelID})
	if !complete {
		doc = doc.Truncated()
	}
	return doc, nil
}
