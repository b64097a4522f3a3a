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
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/bstree/bst"
)

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T; want Model", updated)
	}
	return model
}

func typeAndSubmit(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.textInput.SetValue(input)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func newTestModel(t *testing.T) Model {
	m := InitialModel(bst.New[int](), plainConfig())
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func TestModelInsertAndSearch(t *testing.T) {
	m := newTestModel(t)

	m = typeAndSubmit(t, m, "1 2 3")
	if got := m.tree.Values(); len(got) != 3 {
		t.Fatalf("tree values = %v; want 3 values", got)
	}
	if m.tree.Root().Value() != 2 {
		t.Errorf("root = %d; want 2", m.tree.Root().Value())
	}
	if m.statusErr || !strings.Contains(m.status, "Inserted 1 2 3") {
		t.Errorf("status = %q (error %v); want insert confirmation", m.status, m.statusErr)
	}
	if m.textInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.textInput.Value())
	}

	m = typeAndSubmit(t, m, "?3")
	if !strings.Contains(m.status, "Node with value 3 is found") {
		t.Errorf("status = %q; want found report", m.status)
	}

	m = typeAndSubmit(t, m, "?42")
	if !strings.Contains(m.status, "is NOT found") {
		t.Errorf("status = %q; want not found report", m.status)
	}

	m = typeAndSubmit(t, m, "?x")
	if !m.statusErr {
		t.Errorf("invalid search did not set an error status")
	}

	if !strings.Contains(m.View(), "height: 2") {
		t.Errorf("View() does not show the tree height")
	}
}

func TestModelRejectsBadInput(t *testing.T) {
	m := newTestModel(t)
	revision := m.revision

	m = typeAndSubmit(t, m, "1 banana")
	if !m.statusErr {
		t.Errorf("bad input did not set an error status")
	}
	if !m.tree.IsEmpty() || m.revision != revision {
		t.Errorf("bad input modified the tree")
	}
}

func TestModelRenderCacheFollowsRevision(t *testing.T) {
	m := newTestModel(t)
	if got := m.renderTree(); got != "Empty tree" {
		t.Errorf("renderTree() = %q; want Empty tree", got)
	}

	m = typeAndSubmit(t, m, "1 2 3")
	rendered, ok := GetRender(m.renderCache, m.revision)
	if !ok {
		t.Fatalf("no cached render for revision %d", m.revision)
	}
	if rendered != formatGrid(m.tree.Render(), m.config.Render.CellPadding) {
		t.Errorf("cached render = %q", rendered)
	}
}

func TestModelCopyAndReset(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.copyText = func(text string) error {
		copied = text
		return nil
	}

	m = typeAndSubmit(t, m, "5 3 8")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "3 5 8" {
		t.Errorf("copied %q; want %q", copied, "3 5 8")
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !m.statusErr {
		t.Errorf("failed copy did not set an error status")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.tree.IsEmpty() {
		t.Errorf("ctrl+r did not reset the tree")
	}
}
