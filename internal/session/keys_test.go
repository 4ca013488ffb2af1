package session

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestResolveIntent(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name       string
		key        string
		phase      Phase
		auxVisible bool
		want       Intent
	}{
		{"submit is legal everywhere", "enter", PhaseStarted, false, IntentSubmit},
		{"submit while processing supersedes", "enter", PhaseProcessing, false, IntentSubmit},
		{"force exit is legal everywhere", "ctrl+c", PhaseAuxExplanationGenerated, true, IntentForceExit},

		{"cancel only while processing", "esc", PhaseProcessing, false, IntentCancel},
		{"cancel illegal when idle", "esc", PhaseStarted, false, IntentNone},
		{"cancel illegal after generation", "esc", PhaseCommandGenerated, false, IntentNone},

		{"accept after command", "ctrl+a", PhaseCommandGenerated, false, IntentAccept},
		{"accept after aux explanation", "ctrl+a", PhaseAuxExplanationGenerated, true, IntentAccept},
		{"accept illegal while processing", "ctrl+a", PhaseProcessing, false, IntentNone},
		{"accept illegal in explain mode", "ctrl+a", PhaseExplanationGenerated, false, IntentNone},

		{"accept raw after command", "ctrl+r", PhaseCommandGenerated, false, IntentAcceptRaw},
		{"accept raw illegal at start", "ctrl+r", PhaseStarted, false, IntentNone},

		{"explain only after command", "ctrl+e", PhaseCommandGenerated, false, IntentExplain},
		{"explain illegal once aux exists", "ctrl+e", PhaseAuxExplanationGenerated, true, IntentNone},
		{"explain illegal at start", "ctrl+e", PhaseStarted, false, IntentNone},

		{"scroll up in explanation", "ctrl+u", PhaseExplanationGenerated, false, IntentScrollUp},
		{"scroll down in aux view", "ctrl+d", PhaseAuxExplanationGenerated, true, IntentScrollDown},
		{"scroll illegal after command", "ctrl+u", PhaseCommandGenerated, false, IntentNone},

		{"resize only with aux view", "shift+down", PhaseAuxExplanationGenerated, true, IntentGrowMain},
		{"shrink only with aux view", "shift+up", PhaseAuxExplanationGenerated, true, IntentShrinkMain},
		{"resize illegal without aux", "shift+down", PhaseCommandGenerated, false, IntentNone},

		{"tab toggles focus when aux visible", "tab", PhaseAuxExplanationGenerated, true, IntentToggleFocus},
		{"tab swallowed without aux", "tab", PhaseStarted, false, IntentNone},

		{"plain rune edits input", "x", PhaseStarted, false, IntentEdit},
		{"rune edits input even while processing", "x", PhaseProcessing, false, IntentEdit},
		{"unmatched control chord is swallowed", "ctrl+q", PhaseStarted, false, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIntent(keys, tt.phase, tt.auxVisible, keyMsg(tt.key)))
		})
	}
}
