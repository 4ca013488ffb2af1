package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shelp/internal/config"
)

// doneSentinel is the literal frame payload that marks successful
// end-of-stream.
const doneSentinel = "[DONE]"

// Fragment is one item of the streamed response sequence: either a piece of
// answer text or the terminal error of the stream, never both.
type Fragment struct {
	Text string
	Err  error
}

// streamChunk mirrors one JSON object carried by an event frame. Only the
// first choice's delta is inspected; a delta holding a role preamble or an
// empty stop marker contributes no text.
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Role    string `json:"role,omitempty"`
			Content string `json:"content,omitempty"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *streamChunk) content() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Delta.Content
}

// Stream issues the chat request with stream=true and returns a channel of
// fragments in frame arrival order. Setup failures (malformed request,
// connection failure, non-200 status) are returned synchronously and no
// channel is created. Mid-stream failures arrive as the channel's final
// fragment; the channel is then closed. Cancelling ctx aborts the underlying
// connection.
func (c *Client) Stream(ctx context.Context, task config.Task, userContent string) (<-chan Fragment, error) {
	req, err := c.newRequest(ctx, task, userContent, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}

	id := uuid.NewString()
	c.logger.Info("stream opened",
		zap.String("request_id", id),
		zap.String("task", task.String()),
		zap.String("model", c.model))

	fragments := make(chan Fragment, 64)
	go c.readStream(ctx, id, resp.Body, fragments)
	return fragments, nil
}

// readStream decodes server-sent-event frames from body until the done
// sentinel, an error, or cancellation. It owns closing both the body and the
// fragment channel.
func (c *Client) readStream(ctx context.Context, id string, body io.ReadCloser, fragments chan<- Fragment) {
	defer close(fragments)
	defer body.Close()

	emit := func(f Fragment) bool {
		select {
		case fragments <- f:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var delivered strings.Builder
	reader := bufio.NewReader(body)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stream cancelled", zap.String("request_id", id))
			return
		default:
		}

		line, err := reader.ReadBytes('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.logger.Info("stream ended without sentinel",
					zap.String("request_id", id), zap.Int("chars", delivered.Len()))
				return
			}
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("stream read failed", zap.String("request_id", id), zap.Error(err))
			emit(Fragment{Err: &StreamError{Partial: delivered.String(), Err: err}})
			return
		}

		data, ok := eventData(line)
		if !ok {
			continue
		}
		if string(data) == doneSentinel {
			c.logger.Info("stream finished",
				zap.String("request_id", id), zap.Int("chars", delivered.Len()))
			return
		}
		if !utf8.Valid(data) {
			emit(Fragment{Err: &DecodeError{Data: string(data), Err: errors.New("payload is not valid UTF-8")}})
			return
		}

		var chunk streamChunk
		if err := json.Unmarshal(data, &chunk); err != nil {
			c.logger.Warn("stream decode failed", zap.String("request_id", id), zap.Error(err))
			emit(Fragment{Err: &DecodeError{Data: string(data), Err: err}})
			return
		}

		// Role preambles and stop markers carry no content and are filtered
		// here, before the accumulator ever sees them.
		if content := chunk.content(); content != "" {
			delivered.WriteString(content)
			if !emit(Fragment{Text: content}) {
				return
			}
		}
	}
}

// eventData extracts the payload of a "data:" field line. Other SSE fields
// (event:, id:, retry:, comments) and blank separator lines yield no payload.
func eventData(line []byte) ([]byte, bool) {
	line = bytes.TrimRight(line, "\r\n")
	rest, found := bytes.CutPrefix(line, []byte("data:"))
	if !found {
		return nil, false
	}
	return bytes.TrimSpace(rest), true
}
