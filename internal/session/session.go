package session

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shelp/internal/config"
	"shelp/internal/llm"
)

// Slot names one of the two response buffers.
type Slot int

const (
	SlotMain Slot = iota
	SlotAux
)

func (s Slot) String() string {
	if s == SlotAux {
		return "auxiliary"
	}
	return "main"
}

// Phase is what the user currently sees. It is derived from the session
// contents on demand and never stored.
type Phase int

const (
	PhaseStarted Phase = iota
	PhaseProcessing
	PhaseCommandGenerated
	PhaseExplanationGenerated
	PhaseAuxExplanationGenerated
)

// Layout selects between the single response pane and the split view with
// the auxiliary explanation.
type Layout int

const (
	LayoutSingle Layout = iota
	LayoutSplit
)

// Focus names the pane that scroll intents apply to.
type Focus int

const (
	FocusMain Focus = iota
	FocusAux
)

// Disposition is the final decision about what to write when the session
// ends.
type Disposition int

const (
	DispositionDiscard Disposition = iota
	DispositionWriteRendered
	DispositionWriteRaw
)

const (
	inputHeight       = 3 // one text row plus the border
	statusHeight      = 1
	minMainPaneHeight = 3
	minAuxPaneHeight  = 3
)

// Model is the interactive session: it owns the input field, both response
// slots, layout and focus state, and the single outstanding request.
type Model struct {
	cfg    *config.Config
	client *llm.Client
	logger *zap.Logger
	keys   KeyMap

	input textarea.Model
	main  Response
	aux   Response

	layout         Layout
	focus          Focus
	mainPaneHeight int
	width          int
	height         int

	status      string
	disposition Disposition

	// Request bookkeeping. seq invalidates messages from superseded or
	// cancelled requests; cancel aborts the underlying connection.
	seq        int
	activeSlot Slot
	cancel     context.CancelFunc
	fragments  <-chan llm.Fragment
}

// New builds a session for the resolved configuration. When an edit file is
// configured its contents seed the input field, trimmed of surrounding
// whitespace.
func New(cfg *config.Config, client *llm.Client, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textarea.New()
	input.SetHeight(1)
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.CharLimit = 0
	if cfg.Task == config.TaskExplain {
		input.Placeholder = "What command should be explained?"
	} else {
		input.Placeholder = "What should the command do?"
	}
	input.Focus()

	if cfg.EditFile != "" {
		if data, err := os.ReadFile(cfg.EditFile); err == nil {
			input.SetValue(strings.TrimSpace(string(data)))
		}
	}

	return &Model{
		cfg:    cfg,
		client: client,
		logger: logger,
		keys:   DefaultKeyMap(),
		input:  input,
		layout: LayoutSingle,
		focus:  FocusMain,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tickCmd())
}

// Phase derives the displayed state from the task mode, the slot contents
// and whether either slot is mid-stream.
func (m *Model) Phase() Phase {
	if m.main.Streaming() || m.aux.Streaming() {
		return PhaseProcessing
	}
	if m.main.Empty() {
		return PhaseStarted
	}
	if m.cfg.Task == config.TaskExplain {
		return PhaseExplanationGenerated
	}
	if m.aux.Empty() {
		return PhaseCommandGenerated
	}
	return PhaseAuxExplanationGenerated
}

// Disposition returns the decision recorded by the accept or exit binding
// that ended the session.
func (m *Model) Disposition() Disposition {
	return m.disposition
}

// MainText returns the accumulated main response.
func (m *Model) MainText() string {
	return m.main.Text()
}

// auxVisible reports whether the auxiliary pane is on screen.
func (m *Model) auxVisible() bool {
	return m.layout == LayoutSplit
}

// focused returns the pane scroll intents apply to. With a single pane the
// main slot is always the target.
func (m *Model) focused() *Response {
	if m.auxVisible() && m.focus == FocusAux {
		return &m.aux
	}
	return &m.main
}

func (m *Model) slot(s Slot) *Response {
	if s == SlotAux {
		return &m.aux
	}
	return &m.main
}
