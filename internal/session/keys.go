package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Intent is the recognized key action derived from the displayed state and a
// raw key event.
type Intent int

const (
	IntentNone Intent = iota
	IntentEdit
	IntentSubmit
	IntentForceExit
	IntentCancel
	IntentAccept
	IntentAcceptRaw
	IntentExplain
	IntentScrollUp
	IntentScrollDown
	IntentGrowMain
	IntentShrinkMain
	IntentToggleFocus
)

// KeyMap holds the session key bindings.
type KeyMap struct {
	Submit      key.Binding
	ForceExit   key.Binding
	Cancel      key.Binding
	Accept      key.Binding
	AcceptRaw   key.Binding
	Explain     key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	GrowMain    key.Binding
	ShrinkMain  key.Binding
	ToggleFocus key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		ForceExit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Accept: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "accept"),
		),
		AcceptRaw: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "accept raw"),
		),
		Explain: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "explain"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "scroll down"),
		),
		GrowMain: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "grow pane"),
		),
		ShrinkMain: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "shrink pane"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
	}
}

// ResolveIntent maps the displayed state plus a raw key event to an intent.
// Pure: it never touches the session. Bindings that are not legal in the
// current phase fall through; unmatched control chords resolve to nothing
// while ordinary keys become input-field edits.
func ResolveIntent(keys KeyMap, phase Phase, auxVisible bool, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, keys.ForceExit):
		return IntentForceExit
	case key.Matches(msg, keys.Submit):
		return IntentSubmit
	case key.Matches(msg, keys.Cancel):
		if phase == PhaseProcessing {
			return IntentCancel
		}
		return IntentNone
	case key.Matches(msg, keys.Accept):
		if phase == PhaseCommandGenerated || phase == PhaseAuxExplanationGenerated {
			return IntentAccept
		}
		return IntentNone
	case key.Matches(msg, keys.AcceptRaw):
		if phase == PhaseCommandGenerated || phase == PhaseAuxExplanationGenerated {
			return IntentAcceptRaw
		}
		return IntentNone
	case key.Matches(msg, keys.Explain):
		if phase == PhaseCommandGenerated {
			return IntentExplain
		}
		return IntentNone
	case key.Matches(msg, keys.ScrollUp):
		if phase == PhaseExplanationGenerated || phase == PhaseAuxExplanationGenerated {
			return IntentScrollUp
		}
		return IntentNone
	case key.Matches(msg, keys.ScrollDown):
		if phase == PhaseExplanationGenerated || phase == PhaseAuxExplanationGenerated {
			return IntentScrollDown
		}
		return IntentNone
	case key.Matches(msg, keys.GrowMain):
		if phase == PhaseAuxExplanationGenerated {
			return IntentGrowMain
		}
		return IntentNone
	case key.Matches(msg, keys.ShrinkMain):
		if phase == PhaseAuxExplanationGenerated {
			return IntentShrinkMain
		}
		return IntentNone
	case key.Matches(msg, keys.ToggleFocus):
		if auxVisible {
			return IntentToggleFocus
		}
		return IntentNone
	}

	// Unrecognized control chords are swallowed; everything else edits the
	// input field.
	s := msg.String()
	if strings.HasPrefix(s, "ctrl+") || strings.HasPrefix(s, "alt+") ||
		strings.HasPrefix(s, "shift+") || s == "esc" || s == "tab" {
		return IntentNone
	}
	return IntentEdit
}
