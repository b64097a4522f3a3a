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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstree/bst"
)

// rootMarker returns the configured marker, styled when color is enabled
func rootMarker(config *Config, styles *Styles) string {
	if !config.Display.Color || config.Display.RootMarker == "" {
		return config.Display.RootMarker
	}
	// keep the leading space outside the styled span
	trimmed := strings.TrimLeft(config.Display.RootMarker, " ")
	lead := config.Display.RootMarker[:len(config.Display.RootMarker)-len(trimmed)]
	return lead + styles.RootMarker.Render(trimmed)
}

// printTree writes the in-order traversal followed by the height line
func printTree(w io.Writer, tree *bst.Tree[int], config *Config, styles *Styles) error {
	if err := tree.Display(w, rootMarker(config, styles)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nHeight: %d\n", tree.Height())
	return err
}

// searchReport describes the node holding v together with its neighbours
func searchReport(tree *bst.Tree[int], v int) string {
	node := tree.Search(v)
	if node == nil {
		return fmt.Sprintf("Node with value %d is NOT found\n", v)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Node with value %d is found\n", v)
	fmt.Fprintf(&sb, "Parent's node = %s\n", node.Parent().String())
	fmt.Fprintf(&sb, "Left-child's node = %s\n", node.Left().String())
	fmt.Fprintf(&sb, "Right-child's node = %s\n", node.Right().String())
	return sb.String()
}

// formatGrid aligns a render grid into columns separated by padding spaces.
// Widths are terminal cells, so wide and multi-byte values line up.
// Trailing blanks are trimmed from every row.
func formatGrid(grid [][]string, padding int) string {
	if len(grid) == 0 {
		return ""
	}

	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for col, cell := range row {
			widths[col] = max(widths[col], lipgloss.Width(cell))
		}
	}

	gap := strings.Repeat(" ", padding)
	var sb strings.Builder
	for _, row := range grid {
		var line strings.Builder
		for col, cell := range row {
			if col > 0 {
				line.WriteString(gap)
			}
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", widths[col]-lipgloss.Width(cell)))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
