package register

import (
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/eventengine/internal/api"
	"github.com/fragmede/eventengine/internal/forms"
	"github.com/fragmede/eventengine/internal/ui/messages"
)

type sink struct{ text string }

func (s *sink) SetText(text string) { s.text = text }

func typeInto(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_TypedFieldsArePosted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := api.RegistrationRequest{
		Email:    "jan@szkola.pl",
		Password: "tajne",
		Imie:     "Jan",
		Nazwisko: "Kowalski",
		Klasa:    "3B",
	}
	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), want).
		Return(&api.RegisterResponse{Message: "User jan@szkola.pl registered successfully"}, nil)

	m := New(mockSvc, &sink{})
	tab := tea.KeyMsg{Type: tea.KeyTab}
	for i, v := range []string{"Jan", "Kowalski", "3B", "jan@szkola.pl", "tajne"} {
		if i > 0 {
			m, _ = m.Update(tab)
		}
		m = typeInto(m, v)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, "Jan", m.Fields().Value(forms.FieldImie), "submit keeps the typed values")
	assert.Equal(t, forms.FieldPassword, m.Fields().Focused())

	res := cmd().(messages.SubmitResultMsg)
	assert.Equal(t, messages.RegisterForm, res.Form)
	assert.Equal(t, forms.Outcome{Text: "User jan@szkola.pl registered successfully", Display: true}, res.Outcome)
}

func TestModel_FailureDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, &api.HTTPError{StatusCode: http.StatusConflict, Body: []byte(`{"detail":"User already exists"}`)})

	m := New(mockSvc, &sink{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	res := cmd().(messages.SubmitResultMsg)
	assert.Equal(t, "User already exists", res.Outcome.Text)

	m, _ = m.Update(res)
	assert.Equal(t, 0, m.Pending())
}

func TestModel_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := New(forms.NewMockPoster(ctrl), &sink{})
	m.SetSize(100, 30)

	view := m.View()
	for _, label := range []string{"imię", "nazwisko", "klasa", "email", "hasło"} {
		assert.Contains(t, view, label)
	}
}
