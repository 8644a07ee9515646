// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlscope/avl"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput     textinput.Model
	treeViewport  viewport.Model
	statsViewport viewport.Model

	shell *Shell

	// Last command output shown under the input box
	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles builds the styles from the current color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Title).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(sh *Shell) Model {
	scheme := GetColorScheme()

	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30 · delete 20 · verify · help"
	ti.Prompt = "avl> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(scheme.Prompt).Bold(true)
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	statsViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)

	m := Model{
		textInput:       ti,
		treeViewport:    treeViewport,
		statsViewport:   statsViewport,
		shell:           sh,
		styles:          NewStyles(scheme),
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("Keys are %s values. Type 'help' for commands.", sh.session.Kind()),
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := m.textInput.Value()
			m.textInput.SetValue("")
			if m.runLine(line) {
				return m, tea.Quit
			}
			return m, nil
		case "ctrl+y":
			m.copyKeys()
			return m, nil
		case "pgup", "pgdown", "up", "down":
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// runLine executes a command line and reports whether the user asked to quit.
func (m *Model) runLine(line string) bool {
	var out bytes.Buffer
	quit, err := m.shell.Exec(line, &out)
	if quit {
		return true
	}
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
	} else {
		m.status = lastLines(out.String(), 3)
		m.statusErr = false
	}
	m.refresh()
	return false
}

// lastLines keeps the tail of multi-line command output for the status bar
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = append([]string{"…"}, lines[len(lines)-n:]...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) copyKeys() {
	keys := strings.Join(m.shell.session.Keys(), " ")
	if err := clipboard.WriteAll(keys); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("📋 Copied %d keys to clipboard.", m.shell.session.Len())
	m.statusErr = false
}

// refresh re-renders the tree and the stats panel
func (m *Model) refresh() {
	m.treeViewport.SetContent(m.shell.Render())

	stats := statsMarkdown(m.shell.session)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(stats); err == nil {
			m.statsViewport.SetContent(rendered)
			return
		}
	}
	// Fall back to plain text
	m.statsViewport.SetContent(stats)
}

// statsMarkdown summarises the session as a markdown table.
func statsMarkdown(s Session) string {
	var b strings.Builder
	b.WriteString("## Tree\n\n| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| key kind | %s |\n", s.Kind())
	fmt.Fprintf(&b, "| keys | %d |\n", s.Len())
	fmt.Fprintf(&b, "| height | %d |\n", s.Height())
	fmt.Fprintf(&b, "| height bound | %.2f |\n", avl.HeightBound(s.Len()))
	if k, ok := s.Min(); ok {
		fmt.Fprintf(&b, "| min | %s |\n", k)
	}
	if k, ok := s.Max(); ok {
		fmt.Fprintf(&b, "| max | %s |\n", k)
	}
	if err := s.Verify(); err != nil {
		fmt.Fprintf(&b, "\n**invariants broken:** %v\n", err)
	} else {
		b.WriteString("\n*order, balance and heights verified*\n")
	}
	return b.String()
}

func (m *Model) updateLayout() {
	treeWidth := m.width*2/3 - 2
	statsWidth := m.width - treeWidth - 6
	bodyHeight := m.height - 12

	m.textInput.Width = m.width - 12
	m.treeViewport.Width = treeWidth - 2
	m.treeViewport.Height = bodyHeight
	m.statsViewport.Width = statsWidth - 2
	m.statsViewport.Height = bodyHeight
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.width < 40 || m.height < 16 {
		return "Terminal too small. Please resize your terminal."
	}

	treeWidth := m.width*2/3 - 2
	statsWidth := m.width - treeWidth - 6
	bodyHeight := m.height - 12

	inputBox := m.styles.BorderFocused.
		Width(m.width - 4).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🌳 Command"),
			m.textInput.View(),
		))

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := statusStyle.Padding(0, 1).Render(m.status)

	treeBox := m.styles.BorderBlurred.
		Width(treeWidth).
		Height(bodyHeight + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Tree (right subtree on top)"),
			m.treeViewport.View(),
		))

	statsBox := m.styles.BorderBlurred.
		Width(statsWidth).
		Height(bodyHeight + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Stats"),
			m.statsViewport.View(),
		))

	body := lipgloss.JoinHorizontal(lipgloss.Top, treeBox, statsBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		status,
		body,
		m.renderHelp(),
	)
}

// renderHelp renders the key binding footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "↑/↓ pgup/pgdown", "ctrl+y", "esc"}
	descs := []string{"run command", "scroll tree", "copy keys", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(sh *Shell) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(sh),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
