package slack

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer serves canned JSON per Slack Web API method name.
func newAPIServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for method, body := range responses {
		body := body
		mux.HandleFunc("/"+method, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		_, err := NewClient(ctx, NewConfig(""))
		assert.ErrorIs(t, err, ErrTokenRequired)
	})

	t.Run("negative page size", func(t *testing.T) {
		_, err := NewClient(ctx, NewConfig("xoxb-test", WithPageSize(-1)))
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("auth test failure", func(t *testing.T) {
		server := newAPIServer(t, map[string]string{
			"auth.test": `{"ok":false,"error":"invalid_auth"}`,
		})

		_, err := NewClient(ctx, NewConfig("xoxb-bad", WithAPIURL(server.URL+"/")))
		assert.ErrorIs(t, err, ErrInitFailed)
	})

	t.Run("auth test success", func(t *testing.T) {
		server := newAPIServer(t, map[string]string{
			"auth.test": `{"ok":true,"user":"ingest-bot","team":"skein"}`,
		})

		conv, err := NewClient(ctx, NewConfig("xoxb-good", WithAPIURL(server.URL+"/")))
		require.NoError(t, err)
		assert.NotNil(t, conv)
	})
}

func TestFetchHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("maps messages and continuation", func(t *testing.T) {
		server := newAPIServer(t, map[string]string{
			"auth.test": `{"ok":true,"user":"ingest-bot"}`,
			"conversations.history": `{
				"ok": true,
				"messages": [
					{"type":"message","ts":"1671491234.000100","text":"first"},
					{"type":"message","ts":"1671491300.000200","text":"second"}
				],
				"has_more": true,
				"response_metadata": {"next_cursor": "bmV4dDo="}
			}`,
		})

		conv, err := NewClient(ctx, NewConfig("xoxb-good", WithAPIURL(server.URL+"/")))
		require.NoError(t, err)

		page, err := conv.FetchHistory(ctx, "C04DC2VUY3F", "")
		require.NoError(t, err)
		require.Len(t, page.Messages, 2)
		assert.Equal(t, "1671491234.000100", page.Messages[0].TS)
		assert.Equal(t, "first", page.Messages[0].Text)
		assert.True(t, page.HasMore)
		assert.Equal(t, "bmV4dDo=", page.NextCursor)
	})

	t.Run("api error surfaces", func(t *testing.T) {
		server := newAPIServer(t, map[string]string{
			"auth.test":             `{"ok":true,"user":"ingest-bot"}`,
			"conversations.history": `{"ok":false,"error":"channel_not_found"}`,
		})

		conv, err := NewClient(ctx, NewConfig("xoxb-good", WithAPIURL(server.URL+"/")))
		require.NoError(t, err)

		_, err = conv.FetchHistory(ctx, "C-missing", "")
		assert.Error(t, err)
	})
}

func TestFetchReplies(t *testing.T) {
	ctx := context.Background()

	server := newAPIServer(t, map[string]string{
		"auth.test": `{"ok":true,"user":"ingest-bot"}`,
		"conversations.replies": `{
			"ok": true,
			"messages": [
				{"type":"message","ts":"1671491234.000100","text":"anchor"},
				{"type":"message","ts":"1671491400.000300","text":"reply"}
			],
			"has_more": false
		}`,
	})

	conv, err := NewClient(ctx, NewConfig("xoxb-good", WithAPIURL(server.URL+"/")))
	require.NoError(t, err)

	page, err := conv.FetchReplies(ctx, "C04DC2VUY3F", "1671491234.000100", "")
	require.NoError(t, err)
	require.Len(t, page.Messages, 2)
	assert.Equal(t, "anchor", page.Messages[0].Text)
	assert.Equal(t, "reply", page.Messages[1].Text)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}
