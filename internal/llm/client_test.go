package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelp/internal/config"
)

func TestComplete(t *testing.T) {
	t.Run("returns first choice content", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.False(t, body.Stream)

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "ls -la"}},
				},
			})
		}))

		got, err := client.Complete(context.Background(), config.TaskAsk, "list files")
		require.NoError(t, err)
		assert.Equal(t, "ls -la", got)
	})

	t.Run("empty choices is a decode error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))

		_, err := client.Complete(context.Background(), config.TaskAsk, "x")
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("non-200 is a transport error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))

		_, err := client.Complete(context.Background(), config.TaskAsk, "x")
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusUnauthorized, transportErr.Status)
	})
}
