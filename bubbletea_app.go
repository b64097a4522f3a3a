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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstree/bst"
	"github.com/patrickmn/go-cache"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready  bool
	width  int
	height int

	textInput    textinput.Model
	treeViewport viewport.Model

	tree        *bst.Tree[int]
	revision    int // bumped on every change to tree
	renderCache *cache.Cache
	config      *Config
	styles      *Styles
	keysHelp    string

	status    string
	statusErr bool

	// overridable in tests
	copyText func(string) error
}

// InitialModel creates the initial model around an existing tree
func InitialModel(tree *bst.Tree[int], config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Values to insert (e.g. 15 6 18) or ?N to search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeViewport := viewport.New(0, 0)

	keysHelp := tuiKeysMarkdown
	if renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	); err == nil {
		if out, err := renderer.Render(tuiKeysMarkdown); err == nil {
			keysHelp = out
		}
	}

	model := Model{
		textInput:    ti,
		treeViewport: treeViewport,
		tree:         tree,
		renderCache:  NewRenderCache(time.Duration(config.TUI.CacheMinutes) * time.Minute),
		config:       config,
		styles:       NewStyles(),
		keysHelp:     keysHelp,
		copyText:     clipboard.WriteAll,
	}
	model.refreshTree()

	return model
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
			m.submit(strings.TrimSpace(m.textInput.Value()))
			m.textInput.Reset()
			return m, nil
		case "ctrl+r":
			m.tree = bst.New[int]()
			m.revision++
			m.setStatus("Tree reset", false)
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			text := joinValues(m.tree.Values())
			if err := m.copyText(text); err != nil {
				m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
			} else {
				m.setStatus("Copied in-order traversal to clipboard", false)
			}
			return m, nil
		case "pgup", "pgdown", "up", "down":
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit inserts the typed values, or searches when the input starts with '?'
func (m *Model) submit(input string) {
	if input == "" {
		return
	}

	if query, ok := strings.CutPrefix(input, "?"); ok {
		v, err := strconv.Atoi(strings.TrimSpace(query))
		if err != nil {
			m.setStatus(fmt.Sprintf("Invalid search value %q", query), true)
			return
		}
		m.setStatus(strings.TrimSpace(searchReport(m.tree, v)), false)
		return
	}

	values, err := parseValues([]string{input})
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(values) == 0 {
		m.setStatus("No values to insert", true)
		return
	}

	defer m.refreshTree()
	m.revision++
	for _, v := range values {
		if err := m.tree.Insert(v); err != nil {
			m.setStatus(err.Error(), true)
			return
		}
	}
	m.setStatus(fmt.Sprintf("Inserted %s (height %d)", joinValues(values), m.tree.Height()), false)
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// renderTree returns the grid text for the current revision, using the cache
func (m *Model) renderTree() string {
	if rendered, ok := GetRender(m.renderCache, m.revision); ok {
		return rendered
	}

	rendered := "Empty tree"
	if !m.tree.IsEmpty() {
		rendered = formatGrid(m.tree.Render(), m.config.Render.CellPadding)
		if m.tree.IsUnbalanced() {
			rendered += "\n(root is still unbalanced)"
		}
	}
	CacheRender(m.renderCache, m.revision, rendered)
	return rendered
}

func (m *Model) refreshTree() {
	m.treeViewport.SetContent(m.renderTree())
}

func (m *Model) updateLayout() {
	// title + input + status + borders
	chrome := 8 + lipgloss.Height(m.keysHelp)
	m.textInput.Width = max(m.width-6, 10)
	m.treeViewport.Width = max(m.width-4, 10)
	m.treeViewport.Height = max(m.height-chrome, 3)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("bstree  values: %d  height: %d", m.tree.Len(), m.tree.Height()))
	input := m.styles.InputPrompt.Render("> ") + m.textInput.View()
	tree := m.styles.Border.Render(m.treeViewport.View())

	status := m.styles.Status.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, input, tree, status, m.keysHelp)
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *bst.Tree[int], config *Config) error {
	program := tea.NewProgram(
		InitialModel(tree, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
