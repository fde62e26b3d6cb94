package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestStatusLines(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	Success(&buf, "Commit %s", "successful!")
	Failure(&buf, "Push failed: %s", "rejected")
	Info(&buf, "Working tree clean")
	Warning(&buf, "Invalid option")

	assert.Equal(t, "✓ Commit successful!\n✗ Push failed: rejected\nℹ Working tree clean\n! Invalid option\n", buf.String())
}

func TestEditDiff_PlainMarkers(t *testing.T) {
	withoutColor(t)

	got := EditDiff("feat: add nav to login", "feat: add navigation to login")

	assert.Contains(t, got, "feat: add nav")
	assert.Contains(t, got, "{+igation+}")
	assert.NotContains(t, got, "[-")
}

func TestEditDiff_Identical(t *testing.T) {
	withoutColor(t)
	assert.Equal(t, "fix: x", EditDiff("fix: x", "fix: x"))
}

func TestPrintDiff_PlainWithoutColor(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	PrintDiff(&buf, "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new")

	assert.Equal(t, "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n", buf.String())
}

func TestNewTable_Renders(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "Key", "Count")
	tbl.AppendRow([]interface{}{"feat-20240101", 3})
	tbl.Render()

	assert.Contains(t, buf.String(), "feat-20240101")
	assert.Contains(t, buf.String(), "COUNT")
}

func TestCommitModel_SubmitJoinsFields(t *testing.T) {
	m := NewCommitModel("feat", "add nav to login", "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	got := next.(CommitModel)

	assert.True(t, got.Submitted())
	assert.Equal(t, "feat: add nav to login", got.Message())
}

func TestCommitModel_TabMovesFocusAndTyping(t *testing.T) {
	m := NewCommitModel("fix", "", "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("typo")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	got := next.(CommitModel)

	assert.Equal(t, "fix: typo", got.Message())
}

func TestCommitModel_EscCancels(t *testing.T) {
	m := NewCommitModel("fix", "x", "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(CommitModel)

	assert.False(t, got.Submitted())
	assert.Equal(t, "Edit cancelled.\n", got.View())
}
