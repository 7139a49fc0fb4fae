package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/fingroup"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) browseCommand() *cobra.Command {
	var maxOrder int

	cmd := &cobra.Command{
		Use:   "browse [ORDER]",
		Short: "Browse the groups of each order interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := 1
			if len(args) == 1 {
				var err error
				if order, err = parsePositive("order", args[0]); err != nil {
					return err
				}
			}
			if maxOrder < 1 {
				maxOrder = c.cfg.Server.MaxOrder
			}
			if order > maxOrder {
				return fmt.Errorf("order %d above --max-order %d", order, maxOrder)
			}

			ctx := cmd.Context()
			cat, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			m := NewGroupListModel(order, maxOrder, func(n int) ([]*fingroup.Group, error) {
				return cat.Groups(ctx, n)
			})
			p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(c.out))
			_, err = p.Run()

			return err
		},
	}

	cmd.Flags().IntVar(&maxOrder, "max-order", 0, "largest order to browse (default server.max_order)")

	return cmd
}

// =============================================================================
// GroupListModel - interactive group browser
// =============================================================================

// groupsLoadedMsg carries the groups of one order into the model.
type groupsLoadedMsg struct {
	order  int
	groups []*fingroup.Group
	err    error
}

// GroupListModel is the bubbletea model of the browser: a list of the
// groups of one order, with the selected group's table shown on demand.
type GroupListModel struct {
	Order     int
	MaxOrder  int
	Groups    []*fingroup.Group
	Cursor    int
	ShowTable bool
	Loading   bool
	Err       error

	load func(order int) ([]*fingroup.Group, error)
}

// NewGroupListModel creates a browser starting at order, loading groups
// through load.
func NewGroupListModel(order, maxOrder int, load func(int) ([]*fingroup.Group, error)) GroupListModel {
	return GroupListModel{Order: order, MaxOrder: maxOrder, Loading: true, load: load}
}

func (m GroupListModel) loadCmd(order int) tea.Cmd {
	return func() tea.Msg {
		groups, err := m.load(order)
		return groupsLoadedMsg{order: order, groups: groups, err: err}
	}
}

func (m GroupListModel) Init() tea.Cmd {
	return m.loadCmd(m.Order)
}

func (m GroupListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case groupsLoadedMsg:
		if msg.order != m.Order {
			return m, nil // stale
		}
		m.Loading = false
		m.Groups, m.Err = msg.groups, msg.err
		m.Cursor = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Groups)-1 {
				m.Cursor++
			}
		case "enter", " ":
			m.ShowTable = !m.ShowTable
		case "right", "l":
			if m.Order < m.MaxOrder {
				return m.switchOrder(m.Order + 1)
			}
		case "left", "h":
			if m.Order > 1 {
				return m.switchOrder(m.Order - 1)
			}
		}
	}
	return m, nil
}

func (m GroupListModel) switchOrder(order int) (tea.Model, tea.Cmd) {
	m.Order = order
	m.Groups = nil
	m.Cursor = 0
	m.Loading = true
	m.Err = nil

	return m, m.loadCmd(order)
}

func (m GroupListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Groups of order %d", m.Order)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ order  ⏎ table  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.Loading:
		b.WriteString(listDimStyle.Render("Enumerating..."))
		return b.String()
	case m.Err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		return b.String()
	}

	rows := make([][]string, len(m.Groups))
	for i, g := range m.Groups {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, strconv.Itoa(i), strconv.FormatBool(g.IsAbelian()), elementOrders(g)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Abelian", "Element orders").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Groups))))
	if m.ShowTable && len(m.Groups) > 0 {
		b.WriteString("\n\n")
		b.WriteString(renderTable(m.Groups[m.Cursor]))
	}

	return b.String()
}
