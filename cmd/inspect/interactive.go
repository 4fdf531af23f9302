package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/packed/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputWidths = iota
	inputValue
	inputCount
)

type inspectModel struct {
	inputs   [inputCount]textinput.Model
	focusIdx int
}

func newInspectModel(widthsStr, valueStr string) *inspectModel {
	m := &inspectModel{}

	wi := textinput.New()
	wi.Prompt = "widths: "
	wi.Placeholder = "3,4,5"
	wi.Width = 40
	wi.SetValue(widthsStr)
	wi.Focus()
	m.inputs[inputWidths] = wi

	vi := textinput.New()
	vi.Prompt = "value:  "
	vi.Placeholder = "0x1234"
	vi.Width = 40
	vi.SetValue(valueStr)
	m.inputs[inputValue] = vi

	return m
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Packed Register Inspector"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString(m.renderDecode())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch field • esc quit"))
	return b.String()
}

func (m *inspectModel) renderDecode() string {
	widthsStr := strings.TrimSpace(m.inputs[inputWidths].Value())
	if widthsStr == "" {
		return helpStyle.Render("enter field widths to decode")
	}

	widths, err := parseWidths(widthsStr)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	l, err := layout.Compile(widths...)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var word uint64
	if v := strings.TrimSpace(m.inputs[inputValue].Value()); v != "" {
		word, err = parseWord(v)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
	}

	header := fmt.Sprintf("Layout: %s (%d fields, %d of 64 bits)\n\n",
		l, l.FieldCount(), l.TotalBits())
	return header + renderBreakdown(l, word)
}

func runInteractive(widthsStr, valueStr string) error {
	p := tea.NewProgram(newInspectModel(widthsStr, valueStr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
