package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for ingested documents.
// It is derived deterministically from document content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which makes
// repeated ingestion runs against unchanged sources comparable.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is the output unit of every reader: one text body plus a mapping
// of metadata tags describing where the body came from.
//
// A Document is constructed once by a reader and should be treated as
// immutable by callers afterwards.
type Document struct {
	// Id is derived from Body via IDFromContent.
	Id ID

	// Body is the full ingested text.
	Body string

	// ExtraInfo carries metadata tags, e.g. {"channel": "C04DC2VUY3F"}.
	// May be nil when the reader has nothing to attach.
	ExtraInfo map[string]string

	// Complete is false when an upstream page fetch failed and the body is
	// a truncated best-effort result rather than the full source content.
	Complete bool
}

// NewDocument constructs a complete Document from a body and metadata tags.
// The extraInfo map is copied so later mutation by the caller cannot leak
// into the document.
func NewDocument(body string, extraInfo map[string]string) Document {
	var info map[string]string
	if extraInfo != nil {
		info = make(map[string]string, len(extraInfo))
		for k, v := range extraInfo {
			info[k] = v
		}
	}

	return Document{
		Id:        IDFromContent(body),
		Body:      body,
		ExtraInfo: info,
		Complete:  true,
	}
}

// Truncated returns a copy of the document marked incomplete.
// Readers use it to flag best-effort bodies assembled after a page failure.
func (d Document) Truncated() Document {
	d.Complete = false
	return d
}
