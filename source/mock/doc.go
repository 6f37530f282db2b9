// Package mock provides a test double implementation of source.Conversations.
//
// The double serves scripted channels and threads from memory, paginating
// them with a configurable page size so tests can exercise multi-page cursor
// loops without a remote API. Behavior can be overridden per method via
// function fields, and individual pages can be made to fail to test the
// best-effort truncation policy of the readers.
//
// # Usage in Tests
//
//	conv := mock.NewConversations()
//	conv.SetPageSize(2)
//	conv.AddChannel("C1",
//	    source.Message{TS: "1", Text: "first"},
//	    source.Message{TS: "2", Text: "second"},
//	)
//	conv.FailHistoryPage("C1", 2)
//
// Pages are addressed with deterministic "page-N" cursor tokens, so a test
// can target the Nth page of a sequence directly.
package mock
