package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"edusync/internal/adapters/tui/styles"
	"edusync/internal/application"
	"edusync/internal/application/commands"
	"edusync/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Side     key.Binding
	Sync     key.Binding
	Backfill key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Side: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch side"),
	),
	Sync: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sync"),
	),
	Backfill: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "backfill"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete counterpart"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy name"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// syncableDocTypes marks the document types a sync can start from.
var syncableDocTypes = map[string]bool{
	domain.DocTypeProgram: true,
	domain.DocTypeCourse:  true,
	domain.DocTypeTopic:   true,
	domain.DocTypeArticle: true,
	domain.DocTypeVideo:   true,
}

// BrowserModel is the model for the two-sided tree browser view
type BrowserModel struct {
	ViewState

	engine    *application.Engine
	side      string
	root      *domain.TreeNode
	flatNodes []*domain.TreeNode
	cursor    int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(engine *application.Engine) *BrowserModel {
	return &BrowserModel{
		engine: engine,
		side:   commands.SideEducation,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	var (
		root *domain.TreeNode
		err  error
	)
	if m.side == commands.SideEducation {
		root, err = m.engine.EducationTree()
	} else {
		root, err = m.engine.LearningTree()
	}
	if err != nil {
		return errMsg{err}
	}
	root.ExpandAll()
	return treeLoadedMsg{root}
}

type treeLoadedMsg struct {
	root *domain.TreeNode
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.refreshFlatNodes()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && len(node.Children) > 0 {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.DocType != "root" {
					for i, n := range m.flatNodes {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				if node.IsExpanded {
					node.Collapse()
				} else {
					node.Expand()
				}
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Side):
			if m.side == commands.SideEducation {
				m.side = commands.SideLearning
			} else {
				m.side = commands.SideEducation
			}
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Sync):
			if node := m.selectedNode(); node != nil && syncableDocTypes[node.DocType] {
				return m, m.syncNode(node)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Backfill):
			return m, m.backfill

		case key.Matches(msg, BrowserKeys.Delete):
			if node := m.selectedNode(); node != nil && syncableDocTypes[node.DocType] && node.Linked {
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{TargetNode: node}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if node := m.selectedNode(); node != nil {
				clipboard.WriteAll(node.Name)
				m.SetMessage(fmt.Sprintf("Copied %s", node.Name), false)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) syncNode(node *domain.TreeNode) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewSyncCommand(m.engine, node.DocType, node.Name).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) backfill() tea.Msg {
	result, err := commands.NewBackfillCommand(m.engine).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	total := 0
	for _, count := range result.Report.Counts {
		total += count.Synced
	}
	return successMsg{fmt.Sprintf("Backfill complete: %d synced, %d failed", total, len(result.Report.Errors))}
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Edusync"))
	b.WriteString("\n")
	sideTitle := styles.Subtitle.Foreground(styles.SideColor(m.side))
	b.WriteString(sideTitle.Render(m.root.Title + " hierarchy"))
	b.WriteString("\n\n")

	// Tree
	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("(empty)"))
		b.WriteString("\n")
	}
	for i, node := range m.flatNodes {
		b.WriteString(m.renderNode(node, i == m.cursor))
		b.WriteString("\n")
	}

	// Outcome notice
	if notice := m.RenderMessage(); notice != "" {
		b.WriteString("\n")
		b.WriteString(notice)
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	depth := node.Depth()
	indent := strings.Repeat("  ", depth-1)

	var prefix string
	switch {
	case len(node.Children) == 0:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := fmt.Sprintf("%s (%s)", node.Title, node.DocType)

	style := styles.NodeLeaf
	if len(node.Children) > 0 {
		style = styles.NodeContainer
	}
	if !node.Linked {
		style = styles.NodeUnlinked
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	var badges string
	if node.Linked {
		badges += " " + styles.BadgeLinked.Render("[linked]")
	}
	if node.SyncOwned {
		badges += " " + styles.BadgeSynced.Render("[synced]")
	}

	return fmt.Sprintf("%s%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText, badges)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"tab", "side"},
		{"s", "sync"},
		{"S", "backfill"},
		{"d", "delete"},
		{"c", "copy"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload reloads the tree from the store
func (m *BrowserModel) Reload() tea.Cmd {
	m.root = nil
	m.flatNodes = nil
	m.cursor = 0
	return m.loadTree
}

// Messages for view switching
type SwitchToDeleteMsg struct {
	TargetNode *domain.TreeNode
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
