package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	viewTitleStyle  = lipgloss.NewStyle().Bold(true)
	viewStatusStyle = lipgloss.NewStyle().Faint(true)
)

// newViewCmd creates the view command, an interactive scrollable viewer
// for tables too large for one screen.
func newViewCmd() *cobra.Command {
	opts := renderOpts{style: defaultStyle, align: "left"}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a table interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: csv, json (default: inferred from extension)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "border style")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file (overrides --style)")
	cmd.Flags().BoolVar(&opts.noHeader, "no-header", false, "treat the first CSV record as data")

	return cmd
}

func runView(cmd *cobra.Command, path string, opts *renderOpts) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}
	style, err := resolveStyle(opts.style, opts.theme)
	if err != nil {
		return err
	}
	tbl, err := buildTable(data, format, !opts.noHeader)
	if err != nil {
		return err
	}
	tbl.SetStyle(style)

	model := newViewModel(path, tbl.String())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// viewModel is the bubbletea model for the table viewer: a line buffer with
// a vertical scroll offset.
type viewModel struct {
	title  string
	lines  []string
	offset int
	height int
	width  int
}

func newViewModel(title, content string) viewModel {
	return viewModel{
		title:  title,
		lines:  strings.Split(content, "\n"),
		height: 24,
		width:  80,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset = max(m.offset-1, 0)
		case "down", "j":
			m.offset = min(m.offset+1, m.maxOffset())
		case "pgup", "b":
			m.offset = max(m.offset-m.viewHeight(), 0)
		case "pgdown", "f", " ":
			m.offset = min(m.offset+m.viewHeight(), m.maxOffset())
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.offset = min(m.offset, m.maxOffset())
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(viewTitleStyle.Render(m.title))
	b.WriteString("\n")

	end := min(m.offset+m.viewHeight(), len(m.lines))
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - m.offset; i < m.viewHeight(); i++ {
		b.WriteString("\n")
	}

	status := fmt.Sprintf("lines %d-%d of %d  ↑/↓ scroll  q quit", m.offset+1, end, len(m.lines))
	b.WriteString(viewStatusStyle.Render(status))
	return b.String()
}

// viewHeight is the number of content lines: the window minus the title and
// status lines.
func (m viewModel) viewHeight() int {
	return max(m.height-2, 1)
}

func (m viewModel) maxOffset() int {
	return max(len(m.lines)-m.viewHeight(), 0)
}
