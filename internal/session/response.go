package session

import "strings"

// Progress is the cyclic spinner shown in a pane title while its request is
// outstanding. It is purely cosmetic.
type Progress int

const (
	ProgressIdle Progress = iota
	ProgressSpin0
	ProgressSpin1
	ProgressSpin2
	ProgressSpin3
)

// Next advances the spinner one phase; idle enters the cycle at the first
// spin phase.
func (p Progress) Next() Progress {
	if p >= ProgressSpin3 {
		return ProgressSpin0
	}
	return p + 1
}

func (p Progress) String() string {
	switch p {
	case ProgressSpin0:
		return "-"
	case ProgressSpin1:
		return `\`
	case ProgressSpin2:
		return "|"
	case ProgressSpin3:
		return "/"
	default:
		return ""
	}
}

// Response is one side of a conversation turn: the growing answer text plus
// the view state attached to it. Only the session's Update goroutine mutates
// it.
type Response struct {
	buf       strings.Builder
	offset    int
	progress  Progress
	streaming bool
}

// Append concatenates a fragment onto the accumulated text.
func (r *Response) Append(fragment string) {
	r.buf.WriteString(fragment)
}

// Text returns the accumulated text.
func (r *Response) Text() string {
	return r.buf.String()
}

// Empty reports whether no text has accumulated.
func (r *Response) Empty() bool {
	return r.buf.Len() == 0
}

// Reset clears text and scroll offset; used when a new request begins on this
// slot.
func (r *Response) Reset() {
	r.buf.Reset()
	r.offset = 0
}

// LineCount returns the number of lines in the accumulated text.
func (r *Response) LineCount() int {
	return strings.Count(r.buf.String(), "\n") + 1
}

// ScrollBy moves the scroll offset by delta, clamped to
// [0, max(1, lines-1)].
func (r *Response) ScrollBy(delta int) {
	max := r.LineCount() - 1
	if max < 1 {
		max = 1
	}
	r.offset += delta
	if r.offset < 0 {
		r.offset = 0
	}
	if r.offset > max {
		r.offset = max
	}
}

// Offset returns the current scroll offset.
func (r *Response) Offset() int {
	return r.offset
}

// Streaming reports whether a request for this slot is outstanding.
func (r *Response) Streaming() bool {
	return r.streaming
}

// Progress returns the current spinner phase.
func (r *Response) Progress() Progress {
	return r.progress
}

// begin marks the slot mid-stream and clears the previous answer.
func (r *Response) begin() {
	r.Reset()
	r.streaming = true
	r.progress = ProgressSpin0
}

// finish returns the slot to idle regardless of how the request ended.
func (r *Response) finish() {
	r.streaming = false
	r.progress = ProgressIdle
}

// tick advances the spinner once per UI tick while the request is
// outstanding.
func (r *Response) tick() {
	if r.streaming {
		r.progress = r.progress.Next()
	}
}
