package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/schmarsch/taginput"
)

func typeString(t *testing.T, m Model, s string) (Model, []tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return m, cmds
}

func TestWidget_New(t *testing.T) {
	m := New(Config{Placeholder: "type here"})

	require.NotNil(t, m.config.Parser, "expected a fallback dynamic parser")
	require.Equal(t, "", m.Value(), "expected empty initial value")
	require.Empty(t, m.Result().Tags, "expected empty initial result")
}

func TestWidget_SetValue(t *testing.T) {
	m := New(Config{})

	m, cmd := m.SetValue("hello x:1")
	require.NotNil(t, cmd, "expected a change command for a new result")

	msg := cmd()
	changed, ok := msg.(ChangedMsg)
	require.True(t, ok, "expected a ChangedMsg")
	require.Equal(t, "hello", changed.Result.DefaultText)
	require.Equal(t, taginput.String("1"), changed.Result.Tags["x"])

	// Same text, same result: no notification.
	m, cmd = m.SetValue("hello x:1")
	require.Nil(t, cmd, "expected no change command for an equal result")
	require.Equal(t, "hello x:1", m.Value())
}

func TestWidget_TypingReparses(t *testing.T) {
	reg := taginput.NewRegistry()
	require.NoError(t, reg.RegisterName("email"))
	m := New(Config{Parser: taginput.NewParser(reg)})
	m, _ = m.Focus()

	m, _ = typeString(t, m, "foo:bar email:a@b.com")

	res := m.Result()
	require.Equal(t, []string{"email"}, res.DetectedOrder)
	require.Equal(t, taginput.String("a@b.com"), res.Tags["email"])
	require.Equal(t, "foo:bar", res.DefaultText, "unregistered colon token stays default text")
}

func TestWidget_OnChange(t *testing.T) {
	type gotMsg struct{ res taginput.Result }
	m := New(Config{
		OnChange: func(res taginput.Result) tea.Msg { return gotMsg{res: res} },
	})

	_, cmd := m.SetValue("a:1")
	require.NotNil(t, cmd)
	msg, ok := cmd().(gotMsg)
	require.True(t, ok, "expected the custom message")
	require.Equal(t, taginput.String("1"), msg.res.Tags["a"])
}

func TestWidget_View(t *testing.T) {
	m := New(Config{})
	m, _ = m.SetValue("hello x:1 y:2")

	view := m.View()
	require.True(t, strings.Contains(view, "x:1"), "expected badge for x")
	require.True(t, strings.Contains(view, "y:2"), "expected badge for y")
}

func TestWidget_Focus(t *testing.T) {
	m := New(Config{})
	require.False(t, m.Focused())

	m, _ = m.Focus()
	require.True(t, m.Focused())

	m = m.Blur()
	require.False(t, m.Focused())
}
