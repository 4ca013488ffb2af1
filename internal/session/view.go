package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"shelp/ui/styles"
)

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputStyle(m.width).Render(m.input.View()))
	b.WriteString("\n")

	mainH, auxH := m.paneHeights()
	mainFocused := !m.auxVisible() || m.focus == FocusMain
	b.WriteString(m.renderPane(&m.main, m.paneTitle(SlotMain), mainH, mainFocused))
	if m.auxVisible() {
		b.WriteString("\n")
		b.WriteString(m.renderPane(&m.aux, m.paneTitle(SlotAux), auxH, m.focus == FocusAux))
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusStyle(m.width).Render(m.statusLine()))
	return b.String()
}

func (m *Model) paneTitle(slot Slot) string {
	r := m.slot(slot)
	name := "shelp"
	if slot == SlotAux {
		name = "explanation"
	}
	if r.Streaming() {
		return fmt.Sprintf("%s %s", name, r.Progress())
	}
	return name
}

func (m *Model) renderPane(r *Response, title string, height int, focused bool) string {
	lines := strings.Split(r.Text(), "\n")
	offset := r.Offset()
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	content := strings.Join(lines[offset:], "\n")

	body := styles.PaneTitleStyle().Render(title) + "\n" + content
	return styles.PaneStyle(m.width, height, focused).Render(body)
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return styles.ErrorStyle().Render(m.status)
	}

	var bindings []key.Binding
	switch m.Phase() {
	case PhaseStarted:
		bindings = []key.Binding{m.keys.Submit, m.keys.ForceExit}
	case PhaseProcessing:
		bindings = []key.Binding{m.keys.Cancel, m.keys.ForceExit}
	case PhaseCommandGenerated:
		bindings = []key.Binding{m.keys.Accept, m.keys.AcceptRaw, m.keys.Explain, m.keys.Submit, m.keys.ForceExit}
	case PhaseExplanationGenerated:
		bindings = []key.Binding{m.keys.ScrollUp, m.keys.ScrollDown, m.keys.Submit, m.keys.ForceExit}
	case PhaseAuxExplanationGenerated:
		bindings = []key.Binding{m.keys.Accept, m.keys.AcceptRaw, m.keys.ToggleFocus, m.keys.ScrollUp, m.keys.ScrollDown, m.keys.GrowMain, m.keys.ShrinkMain, m.keys.ForceExit}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  •  ")
}
