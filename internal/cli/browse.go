package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/debtree/pkg/control"
	"github.com/matzehuels/debtree/pkg/depgraph"
	"github.com/matzehuels/debtree/pkg/tree"
)

// List styles.
var (
	listNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive package browser.
func (c *CLI) browseCommand() *cobra.Command {
	opts := treeOpts{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a package interactively and print its dependency tree",
		Long: `Browse the packages of an index interactively.

Navigate with the arrow keys (or j/k), press enter to print the dependency
tree of the selected package, or q to quit without selecting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(c)
			repo, err := c.loadRepository(cmd.Context(), opts)
			if err != nil {
				return err
			}

			model := newPackageListModel(repo)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			m := final.(packageListModel)
			if m.selected == "" {
				return nil
			}

			g := depgraph.Build(m.selected, repo, opts.filter)
			return tree.Render(os.Stdout, m.selected, g)
		},
	}

	opts.register(cmd)
	return cmd
}

// packageListModel is the bubbletea model for interactive package selection.
type packageListModel struct {
	repo     *control.Repository
	names    []string
	cursor   int
	offset   int
	height   int
	selected string
}

func newPackageListModel(repo *control.Repository) packageListModel {
	return packageListModel{
		repo:   repo,
		names:  repo.Names(),
		height: 15,
	}
}

func (m packageListModel) Init() tea.Cmd {
	return nil
}

func (m packageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if len(m.names) > 0 {
				m.selected = m.names[m.cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m packageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Package"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.names) {
		end = len(m.names)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		name := m.names[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		rec, _ := m.repo.Lookup(name)
		preview := "—"
		if len(rec.Depends) > 0 {
			preview = strings.Join(rec.Depends, ", ")
			if len(preview) > 60 {
				preview = preview[:57] + "..."
			}
		}

		rows = append(rows, []string{cursor, name, fmt.Sprintf("%d", len(rec.Depends)), preview})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Package", "Deps", "Depends on").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listNormalStyle.Bold(true).Foreground(colorGreen)
			}
			if col == 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.names))))

	return b.String()
}
