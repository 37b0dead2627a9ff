package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commitfmt/internal/prompt"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainStyles() *Styles {
	return NewStyles(io.Discard, true)
}

var testChoices = []prompt.Choice{
	{Value: "feat", Description: "A new feature"},
	{Value: "fix", Description: "A bug fix"},
	{Value: "docs", Description: "Documentation only changes"},
}

// press feeds msgs to m in order and returns the final model and last command.
func press(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSelectNavigation(t *testing.T) {
	m, cmd := press(newSelectModel("Type:", testChoices, plainStyles()), keyDown, runes("j"), keyDown, keyUp)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, 1, m.(selectModel).cursor)

	m, cmd = press(m, keyEnter)
	assert.True(t, isQuit(cmd))
	sm := m.(selectModel)
	assert.True(t, sm.done)
	assert.Equal(t, "fix", sm.value())
	assert.Contains(t, sm.View(), "fix")
}

func TestSelectClampsCursor(t *testing.T) {
	m, _ := press(newSelectModel("Type:", testChoices, plainStyles()), keyUp, runes("k"))
	assert.Equal(t, 0, m.(selectModel).cursor)

	m, _ = press(m, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.(selectModel).cursor)
}

func TestSelectView(t *testing.T) {
	view := newSelectModel("Type:", testChoices, plainStyles()).View()
	assert.Contains(t, view, "? Type:")
	assert.Contains(t, view, "> feat  A new feature")
	assert.Contains(t, view, "  fix   A bug fix")
}

func TestSelectCancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, keyCtrlC} {
		m, cmd := press(newSelectModel("Type:", testChoices, plainStyles()), k)
		assert.True(t, isQuit(cmd))
		assert.True(t, m.(selectModel).cancelled)
	}
}

func TestTextSubmit(t *testing.T) {
	m, cmd := press(newTextModel(prompt.TextRequest{Title: "Scope:"}, plainStyles()), runes("auth"), keyEnter)
	assert.True(t, isQuit(cmd))
	tm := m.(textModel)
	assert.True(t, tm.done)
	assert.Equal(t, "auth", tm.value)
}

func TestTextYesAndNoAreTyped(t *testing.T) {
	m, _ := press(newTextModel(prompt.TextRequest{Title: "Scope:"}, plainStyles()), runes("y"), runes("n"), keyEnter)
	assert.Equal(t, "yn", m.(textModel).value)
}

func TestTextDefault(t *testing.T) {
	m, _ := press(newTextModel(prompt.TextRequest{Title: "Line 1:", Default: "none"}, plainStyles()), keyEnter)
	assert.Equal(t, "none", m.(textModel).value)
}

func TestTextValidationKeepsPromptOpen(t *testing.T) {
	errShort := errors.New("too short")
	req := prompt.TextRequest{
		Title: "Description:",
		Validate: func(s string) error {
			if len(s) < 3 {
				return errShort
			}
			return nil
		},
	}

	m, cmd := press(newTextModel(req, plainStyles()), runes("ab"), keyEnter)
	assert.False(t, isQuit(cmd))
	tm := m.(textModel)
	assert.False(t, tm.done)
	assert.Equal(t, errShort, tm.err)
	assert.Contains(t, tm.View(), "too short")

	m, cmd = press(m, runes("c"), keyEnter)
	assert.True(t, isQuit(cmd))
	tm = m.(textModel)
	assert.True(t, tm.done)
	assert.NoError(t, tm.err)
	assert.Equal(t, "abc", tm.value)
}

func TestTextShowsHelp(t *testing.T) {
	view := newTextModel(prompt.TextRequest{Title: "Scope:", Help: "affected module"}, plainStyles()).View()
	assert.Contains(t, view, "? Scope:")
	assert.Contains(t, view, "affected module")
}

func TestTextCancel(t *testing.T) {
	m, cmd := press(newTextModel(prompt.TextRequest{Title: "Scope:"}, plainStyles()), runes("x"), keyEsc)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(textModel).cancelled)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		def  bool
		key  tea.KeyMsg
		want bool
	}{
		{name: "yes", key: runes("y"), want: true},
		{name: "upper yes", key: runes("Y"), want: true},
		{name: "no overrides default", def: true, key: runes("n"), want: false},
		{name: "enter takes default no", key: keyEnter, want: false},
		{name: "enter takes default yes", def: true, key: keyEnter, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(newConfirmModel("Continue?", tt.def, plainStyles()), tt.key)
			assert.True(t, isQuit(cmd))
			cm := m.(confirmModel)
			assert.True(t, cm.done)
			assert.Equal(t, tt.want, cm.value)
		})
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m, cmd := press(newConfirmModel("Continue?", false, plainStyles()), runes("x"))
	assert.Nil(t, cmd)
	assert.False(t, m.(confirmModel).done)
	assert.Contains(t, m.View(), "(y/N)")
}

func TestConfirmCancel(t *testing.T) {
	m, cmd := press(newConfirmModel("Continue?", false, plainStyles()), keyCtrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, m.(confirmModel).cancelled)
}

func testPrompter(input string) *Prompter {
	return NewPrompter(plainStyles(),
		tea.WithInput(strings.NewReader(input)),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutSignalHandler(),
	)
}

func TestPrompterConfirm(t *testing.T) {
	ok, err := testPrompter("y").Confirm("Continue?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrompterSelectRejectsEmptyChoices(t *testing.T) {
	_, err := testPrompter("").Select("Type:", nil)
	assert.Error(t, err)
}

func TestNoColorStylesArePlain(t *testing.T) {
	s := plainStyles()
	assert.Equal(t, "feat: x", s.Message.Render("feat: x"))
	assert.Equal(t, "ok", s.Success.Render("ok"))
}
