package session

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tickMsg:
		m.main.tick()
		m.aux.tick()
		return m, tickCmd()
	case streamStartedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.fragments = msg.fragments
		return m, awaitFragment(msg.seq, msg.slot, msg.fragments)
	case fragmentMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.slot(msg.slot).Append(msg.text)
		return m, awaitFragment(msg.seq, msg.slot, m.fragments)
	case streamDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.finishRequest(msg.slot)
		m.logger.Info("request finished", zap.String("slot", msg.slot.String()))
		return m, nil
	case streamFailedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.finishRequest(msg.slot)
		if msg.setup {
			// Failed submission: the slot stays in its pre-request state.
			m.slot(msg.slot).Reset()
		}
		m.status = msg.err.Error()
		m.logger.Warn("request failed",
			zap.String("slot", msg.slot.String()),
			zap.Bool("setup", msg.setup),
			zap.Error(msg.err))
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch ResolveIntent(m.keys, m.Phase(), m.auxVisible(), msg) {
	case IntentSubmit:
		prompt := m.input.Value()
		if strings.TrimSpace(prompt) == "" {
			return nil
		}
		m.status = ""
		return m.startRequest(SlotMain, prompt)

	case IntentExplain:
		m.layout = LayoutSplit
		m.status = ""
		return m.startRequest(SlotAux, m.main.Text())

	case IntentCancel:
		m.cancelActive()
		m.status = "request cancelled"
		return nil

	case IntentForceExit:
		m.disposition = DispositionDiscard
		m.cancelActive()
		return tea.Quit

	case IntentAccept:
		m.disposition = DispositionWriteRendered
		return tea.Quit

	case IntentAcceptRaw:
		m.disposition = DispositionWriteRaw
		return tea.Quit

	case IntentScrollUp:
		m.focused().ScrollBy(-m.halfPage())
		return nil

	case IntentScrollDown:
		m.focused().ScrollBy(m.halfPage())
		return nil

	case IntentGrowMain:
		m.resizeMainPane(1)
		return nil

	case IntentShrinkMain:
		m.resizeMainPane(-1)
		return nil

	case IntentToggleFocus:
		if m.focus == FocusMain {
			m.focus = FocusAux
		} else {
			m.focus = FocusMain
		}
		return nil

	case IntentEdit:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// cancelActive stops the foreground wait and aborts the underlying
// connection. Text already appended stays; a request that was still only
// accepted leaves its slot empty.
func (m *Model) cancelActive() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	m.seq++ // drop anything the dying request still delivers
	m.fragments = nil
	m.slot(m.activeSlot).finish()
	m.logger.Info("request cancelled", zap.String("slot", m.activeSlot.String()))
}

func (m *Model) finishRequest(slot Slot) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.fragments = nil
	m.slot(slot).finish()
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.input.SetWidth(msg.Width - 2)
	if m.mainPaneHeight == 0 {
		avail := m.contentHeight()
		m.mainPaneHeight = avail / 4
	}
	m.clampMainPane()
}

// contentHeight is the vertical space shared by the response panes.
func (m *Model) contentHeight() int {
	h := m.height - inputHeight - statusHeight
	if h < 0 {
		return 0
	}
	return h
}

func (m *Model) resizeMainPane(delta int) {
	m.mainPaneHeight += delta
	m.clampMainPane()
}

func (m *Model) clampMainPane() {
	if m.mainPaneHeight < minMainPaneHeight {
		m.mainPaneHeight = minMainPaneHeight
	}
	if max := m.contentHeight() - minAuxPaneHeight; m.auxVisible() && m.mainPaneHeight > max && max >= minMainPaneHeight {
		m.mainPaneHeight = max
	}
}

// paneHeights splits the content area between the two panes.
func (m *Model) paneHeights() (mainH, auxH int) {
	avail := m.contentHeight()
	if !m.auxVisible() {
		return avail, 0
	}
	mainH = m.mainPaneHeight
	if mainH > avail {
		mainH = avail
	}
	return mainH, avail - mainH
}

// halfPage is the scroll step for the focused pane.
func (m *Model) halfPage() int {
	mainH, auxH := m.paneHeights()
	h := mainH
	if m.auxVisible() && m.focus == FocusAux {
		h = auxH
	}
	if h/2 < 1 {
		return 1
	}
	return h / 2
}
