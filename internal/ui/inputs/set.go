package inputs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the keys every form understands.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

var Keys = KeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
}

// Spec describes one input of a Set.
type Spec struct {
	ID          string
	Label       string
	Placeholder string
	Secret      bool
	CharLimit   int
}

// Set is an ordered group of labelled text inputs, one of which has focus.
// It implements forms.Fields.
type Set struct {
	specs  []Spec
	inputs []textinput.Model
	focus  int
}

// New builds a Set with the first input focused.
func New(specs ...Spec) *Set {
	s := &Set{specs: specs, inputs: make([]textinput.Model, len(specs))}
	for i, sp := range specs {
		ti := textinput.New()
		ti.Placeholder = sp.Placeholder
		ti.Width = 30
		if sp.CharLimit > 0 {
			ti.CharLimit = sp.CharLimit
		}
		if sp.Secret {
			ti.EchoMode = textinput.EchoPassword
		}
		s.inputs[i] = ti
	}
	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	}
	return s
}

// Value returns the current value of the input with the given id.
func (s *Set) Value(id string) string {
	if i := s.index(id); i >= 0 {
		return s.inputs[i].Value()
	}
	return ""
}

// SetValue replaces the value of the input with the given id.
func (s *Set) SetValue(id, value string) {
	if i := s.index(id); i >= 0 {
		s.inputs[i].SetValue(value)
	}
}

// Focused returns the id of the focused input.
func (s *Set) Focused() string {
	if len(s.specs) == 0 {
		return ""
	}
	return s.specs[s.focus].ID
}

// SetWidth sizes every input to fit w columns next to its label.
func (s *Set) SetWidth(w int) {
	fw := w - 14
	if fw > 60 {
		fw = 60
	}
	if fw < 10 {
		fw = 10
	}
	for i := range s.inputs {
		s.inputs[i].Width = fw
	}
}

// Update moves focus on Next/Prev and forwards everything else to the
// focused input. Submit is left to the owning form.
func (s *Set) Update(msg tea.Msg) tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, Keys.Next):
			return s.setFocus((s.focus + 1) % len(s.inputs))
		case key.Matches(km, Keys.Prev):
			return s.setFocus((s.focus + len(s.inputs) - 1) % len(s.inputs))
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

// View renders one "label input" row per input.
func (s *Set) View(label lipgloss.Style) string {
	var sb strings.Builder
	for i, sp := range s.specs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(label.Render(sp.Label) + " " + s.inputs[i].View())
	}
	return sb.String()
}

func (s *Set) setFocus(i int) tea.Cmd {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	s.focus = i
	return s.inputs[i].Focus()
}

func (s *Set) index(id string) int {
	for i, sp := range s.specs {
		if sp.ID == id {
			return i
		}
	}
	return -1
}
