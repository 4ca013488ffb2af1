package session

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shelp/internal/config"
	"shelp/internal/contextinfo"
	"shelp/internal/llm"
)

// tickInterval bounds how long the UI goes without a redraw while a request
// is outstanding.
const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Stream lifecycle messages. Every message carries the sequence number of the
// request that produced it so leftovers from superseded requests are dropped.
type streamStartedMsg struct {
	seq       int
	slot      Slot
	fragments <-chan llm.Fragment
}

type fragmentMsg struct {
	seq  int
	slot Slot
	text string
}

type streamDoneMsg struct {
	seq  int
	slot Slot
}

type streamFailedMsg struct {
	seq   int
	slot  Slot
	err   error
	setup bool // the request never opened a stream
}

// startRequest begins a request for slot. The prompt for the main slot is the
// input field text; the auxiliary slot explains the main response. The
// network call runs in the command goroutine so the Update loop is never
// blocked by I/O.
func (m *Model) startRequest(slot Slot, prompt string) tea.Cmd {
	// Starting a new request supersedes any outstanding one; the superseded
	// slot returns to idle since the seq guard will drop its done message.
	if m.cancel != nil {
		m.cancel()
		m.slot(m.activeSlot).finish()
	}
	m.seq++
	m.activeSlot = slot
	m.slot(slot).begin()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	seq := m.seq
	cfg := m.cfg
	client := m.client
	task := requestTask(cfg.Task, slot)

	return func() tea.Msg {
		info := contextinfo.Collect(cfg)
		fragments, err := client.Stream(ctx, task, contextinfo.BuildRequest(prompt, info))
		if err != nil {
			return streamFailedMsg{seq: seq, slot: slot, err: err, setup: true}
		}
		return streamStartedMsg{seq: seq, slot: slot, fragments: fragments}
	}
}

// requestTask selects the system instruction: in Ask mode the main slot
// generates a command and the auxiliary slot explains it; Explain mode always
// explains.
func requestTask(task config.Task, slot Slot) config.Task {
	if task == config.TaskAsk && slot == SlotMain {
		return config.TaskAsk
	}
	return config.TaskExplain
}

// awaitFragment pulls the next item off the fragment channel. It re-arms
// itself from Update after every delivery, which preserves arrival order.
func awaitFragment(seq int, slot Slot, fragments <-chan llm.Fragment) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-fragments
		if !ok {
			return streamDoneMsg{seq: seq, slot: slot}
		}
		if f.Err != nil {
			return streamFailedMsg{seq: seq, slot: slot, err: f.Err}
		}
		return fragmentMsg{seq: seq, slot: slot, text: f.Text}
	}
}
