package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"edusync/internal/adapters/tui/styles"
	"edusync/internal/application"
	"edusync/internal/application/commands"
	"edusync/internal/domain"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel confirms and runs a counterpart delete
type DeleteModel struct {
	ViewState

	engine *application.Engine
	target *domain.TreeNode
	keys   ConfirmKeyMap
}

// NewDeleteModel creates a new delete confirmation model
func NewDeleteModel(engine *application.Engine) *DeleteModel {
	return &DeleteModel{
		engine: engine,
		keys:   DefaultConfirmKeys,
	}
}

// SetTarget sets the node whose counterpart will be deleted
func (m *DeleteModel) SetTarget(node *domain.TreeNode) {
	m.target = node
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, m.keys.Confirm):
			return m, m.deleteCounterpart
		}
	}

	return m, nil
}

func (m *DeleteModel) deleteCounterpart() tea.Msg {
	if m.target == nil {
		return SwitchToBrowserMsg{}
	}
	_, err := commands.NewDeleteCommand(m.engine, m.target.DocType, m.target.Name).Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}
	return SwitchToBrowserMsg{}
}

// DeleteErrMsg reports a failed counterpart delete
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Learning counterpart"))
	b.WriteString("\n\n")

	if m.target != nil {
		b.WriteString(styles.InputLabel.Render("Target:"))
		b.WriteString("\n  ")
		b.WriteString(m.target.DocType)
		b.WriteString(" ")
		b.WriteString(m.target.Title)
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("Sync-owned children are deleted with it; manually created rows stay."))
		b.WriteString("\n\n")
	}

	if notice := m.RenderMessage(); notice != "" {
		b.WriteString(notice)
		b.WriteString("\n\n")
	}

	b.WriteString("Delete? ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
