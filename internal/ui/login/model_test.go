package login

import (
	"encoding/json"
	"errors"
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

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestModel_SubmitPostsCurrentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), api.Credentials{Email: "jan@szkola.pl", Password: "tajne"}).
		Return(json.RawMessage(`{"token":"t"}`), nil)

	m := New(mockSvc, &sink{})
	m.Fields().SetValue(forms.FieldUsername, "jan@szkola.pl")
	m.Fields().SetValue(forms.FieldPassword, "tajne")

	m, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.Pending())

	// The form is not reset by a submit.
	assert.Equal(t, "jan@szkola.pl", m.Fields().Value(forms.FieldUsername))

	res, ok := cmd().(messages.SubmitResultMsg)
	require.True(t, ok)
	assert.Equal(t, messages.LoginForm, res.Form)
	assert.False(t, res.Outcome.Display)

	m, _ = m.Update(res)
	assert.Equal(t, 0, m.Pending())
}

func TestModel_FailureOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	m := New(mockSvc, &sink{})
	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)

	res := cmd().(messages.SubmitResultMsg)
	assert.Equal(t, forms.Outcome{Text: "Login failed", Display: true}, res.Outcome)
}

func TestModel_DoubleSubmitIsNotGuarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(json.RawMessage(`{}`), nil).
		Times(2)

	m := New(mockSvc, &sink{})
	m, first := m.Update(enter)
	m, second := m.Update(enter)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, 2, m.Pending())

	first()
	second()
}

func TestModel_IgnoresOtherFormResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := forms.NewMockPoster(ctrl)
	mockSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{}`), nil)

	m := New(mockSvc, &sink{})
	m, cmd := m.Update(enter)
	m, _ = m.Update(messages.SubmitResultMsg{Form: messages.RegisterForm})
	assert.Equal(t, 1, m.Pending())

	m, _ = m.Update(cmd())
	assert.Equal(t, 0, m.Pending())
}

func TestModel_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := New(forms.NewMockPoster(ctrl), &sink{})
	m.SetSize(80, 20)
	m.Fields().SetValue(forms.FieldPassword, "tajne")

	view := m.View()
	assert.Contains(t, view, "Log in to EventEngine")
	assert.Contains(t, view, "Email:")
	assert.NotContains(t, view, "tajne")
}
