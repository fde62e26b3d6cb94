package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gca/src/catalog"
)

const (
	idxType = iota
	idxSubject
	idxBody
)

var (
	helpStyleTUI = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// CommitModel is a three field form (type, subject, body) for editing a
// suggested message.
type CommitModel struct {
	typeInput    textinput.Model
	subjectInput textinput.Model
	bodyInput    textarea.Model

	focusIndex int
	submitted  bool
	quitting   bool

	CommitType string
	Subject    string
	Body       string
}

func NewCommitModel(initialType, initialSubject, initialBody string) CommitModel {
	typeTI := textinput.New()
	typeTI.Placeholder = "feat, fix, docs(api)"
	typeTI.Focus()
	typeTI.CharLimit = 50
	typeTI.Width = 50
	typeTI.Prompt = "Type: "
	typeTI.SetValue(initialType)

	subjectTI := textinput.New()
	subjectTI.Placeholder = "Concise explanation of the change"
	subjectTI.CharLimit = 100
	subjectTI.Width = 70
	subjectTI.Prompt = "Subject: "
	subjectTI.SetValue(initialSubject)

	bodyTA := textarea.New()
	bodyTA.Placeholder = "Optional details. Ctrl+D to submit."
	bodyTA.SetWidth(70)
	bodyTA.SetHeight(5)
	bodyTA.SetValue(initialBody)

	return CommitModel{
		typeInput:    typeTI,
		subjectInput: subjectTI,
		bodyInput:    bodyTA,
		focusIndex:   idxType,
		CommitType:   initialType,
		Subject:      initialSubject,
		Body:         initialBody,
	}
}

// Submitted reports whether the form was completed with Ctrl+D.
func (m CommitModel) Submitted() bool {
	return m.submitted
}

// Message joins the submitted fields back into one commit message.
func (m CommitModel) Message() string {
	return catalog.JoinMessage(m.CommitType, m.Subject, m.Body)
}

func (m CommitModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CommitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			return m.submit()
		case tea.KeyTab:
			return m.focus((m.focusIndex + 1) % 3)
		case tea.KeyShiftTab:
			return m.focus((m.focusIndex + 2) % 3)
		case tea.KeyEnter:
			if m.focusIndex != idxBody {
				return m.focus(m.focusIndex + 1)
			}
		}

		var cmd tea.Cmd
		switch m.focusIndex {
		case idxType:
			m.typeInput, cmd = m.typeInput.Update(msg)
		case idxSubject:
			m.subjectInput, cmd = m.subjectInput.Update(msg)
		case idxBody:
			m.bodyInput, cmd = m.bodyInput.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		inputWidth := min(70, msg.Width-len(m.subjectInput.Prompt)-4)
		if inputWidth < 10 {
			inputWidth = 10
		}
		m.typeInput.Width = min(50, inputWidth)
		m.subjectInput.Width = inputWidth
		m.bodyInput.SetWidth(inputWidth)
		m.bodyInput.SetHeight(max(3, min(10, msg.Height-12)))
	}
	return m, nil
}

func (m CommitModel) focus(idx int) (tea.Model, tea.Cmd) {
	m.typeInput.Blur()
	m.subjectInput.Blur()
	m.bodyInput.Blur()
	m.focusIndex = idx

	switch idx {
	case idxType:
		m.typeInput.Focus()
	case idxSubject:
		m.subjectInput.Focus()
	case idxBody:
		return m, m.bodyInput.Focus()
	}
	return m, textinput.Blink
}

func (m CommitModel) submit() (tea.Model, tea.Cmd) {
	m.CommitType = strings.TrimSpace(m.typeInput.Value())
	m.Subject = strings.TrimSpace(m.subjectInput.Value())
	m.Body = m.bodyInput.Value()
	m.submitted = true
	m.quitting = true
	return m, tea.Quit
}

func (m CommitModel) View() string {
	if m.quitting && m.submitted {
		return ""
	}
	if m.quitting {
		return "Edit cancelled.\n"
	}

	var s strings.Builder
	s.WriteString(labelStyle.Render("Edit commit message") + "\n\n")
	s.WriteString(m.typeInput.View() + "\n\n")
	s.WriteString(m.subjectInput.View() + "\n\n")

	bodyLabel := "Body (Ctrl+D to submit when done):"
	if m.focusIndex == idxBody {
		s.WriteString(focusStyle.Render(bodyLabel) + "\n")
	} else {
		s.WriteString(labelStyle.Render(bodyLabel) + "\n")
	}
	s.WriteString(m.bodyInput.View() + "\n\n")
	s.WriteString(helpStyleTUI.Render("Tab/Shift+Tab: Navigate | Enter: Next field | Ctrl+D: Submit | Esc: Cancel"))
	s.WriteString("\n")
	return s.String()
}

// TUIEditor edits a message in a full screen CommitModel form.
type TUIEditor struct {
	Options []tea.ProgramOption
}

func (e TUIEditor) Edit(ctx context.Context, message string) (string, error) {
	cType, subject, body := catalog.ParseMessage(message)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, e.Options...)
	finalModel, err := tea.NewProgram(NewCommitModel(cType, subject, body), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("error running editor: %w", err)
	}

	m, ok := finalModel.(CommitModel)
	if !ok || !m.Submitted() || m.Subject == "" {
		return "", ErrCancelled
	}
	return m.Message(), nil
}
