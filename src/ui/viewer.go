package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyleViewer = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				Padding(0, 1)

	helpStyleViewer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 1)

	copiedStyleViewer = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")).
				Padding(1, 1).
				Bold(true)
)

type copiedMessage struct{}

// ViewerModel shows rendered markdown in a scrollable viewport. Pressing c
// copies CopyText to the clipboard.
type ViewerModel struct {
	viewport      viewport.Model
	title         string
	copyText      string
	showingCopied bool
	copyErr       error
}

func NewViewerModel(title, markdown, copyText string) ViewerModel {
	vp := viewport.New(100, 20)

	rendered, err := glamour.Render(markdown, "dark")
	if err != nil {
		rendered = markdown
	}
	vp.SetContent(rendered)

	return ViewerModel{viewport: vp, title: title, copyText: copyText}
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case copiedMessage:
		m.showingCopied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "c":
			if !m.showingCopied && m.copyText != "" {
				m.showingCopied = true
				m.copyErr = clipboard.WriteAll(m.copyText)
				cmds = append(cmds, tea.Tick(time.Second, func(time.Time) tea.Msg {
					return copiedMessage{}
				}))
			}
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m ViewerModel) View() string {
	footer := m.footerView()
	if m.showingCopied {
		footer = m.copiedView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), footer)
}

func (m ViewerModel) headerView() string {
	return titleStyleViewer.Render(m.title)
}

func (m ViewerModel) footerView() string {
	return helpStyleViewer.Render("Scroll: ↑/↓ • Copy top suggestion: c • Quit: q")
}

func (m ViewerModel) copiedView() string {
	if m.copyErr != nil {
		return copiedStyleViewer.Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("✗ Copy failed: %v", m.copyErr))
	}
	return copiedStyleViewer.Render("✓ Copied to clipboard!")
}

// RunViewer opens a ViewerModel full screen and blocks until it is closed.
func RunViewer(title, markdown, copyText string) error {
	_, err := tea.NewProgram(NewViewerModel(title, markdown, copyText), tea.WithAltScreen()).Run()
	return err
}
