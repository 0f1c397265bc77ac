package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Alp4ka/showmore"
)

// defaultWidth is used until the first tea.WindowSizeMsg arrives.
const defaultWidth = 80

// Model is the Bubble Tea host for a showmore.Controller. Key presses on the
// "more" binding are forwarded to a showmore.Trigger, which the controller
// subscribes to.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	cards      []*Card
	trigger    *showmore.Trigger
	controller *showmore.Controller[*Card]
	keys       keyMap
	help       help.Model
	width      int
}

// NewModel builds the controller over cards and runs its page-ready step.
func NewModel(cards []*Card, opts ...showmore.Option) Model {
	trigger := showmore.NewTrigger()
	controller := showmore.New(cards, trigger, opts...)
	controller.Initialize()

	return Model{
		cards:      cards,
		trigger:    trigger,
		controller: controller,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
	}
}

// Init - implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update - implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.More):
			m.trigger.Activate()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// View - implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	width := max(m.width-2, 10)
	for _, c := range m.cards {
		if c.Hidden() {
			continue
		}
		b.WriteString(renderCard(c, width))
		b.WriteString("\n")
	}

	if m.trigger.Visible() {
		b.WriteString(buttonStyle.Render(fmt.Sprintf("Show more (%d left)", m.controller.Remaining())))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("Showing %d of %d", m.controller.Cursor(), m.controller.Len())))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Controller exposes the underlying paging controller.
func (m Model) Controller() *showmore.Controller[*Card] {
	return m.controller
}

// ButtonVisible reports whether the "show more" button is rendered.
func (m Model) ButtonVisible() bool {
	return m.trigger.Visible()
}

func renderCard(c *Card, width int) string {
	content := titleStyle.Render(c.Title)
	if c.Body != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, c.Body)
	}

	return cardStyle.Width(width).Render(content)
}
