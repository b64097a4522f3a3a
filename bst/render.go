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

package bst

// Render lays the subtree rooted at n out on a grid. Row r holds the nodes at
// distance r from n and column c holds the c-th node in order, so every
// column has exactly one non-empty cell.
func (n *Node[T]) Render() [][]string {
	if n == nil {
		return nil
	}

	grid := make([][]string, n.Depth())
	width := 0
	n.walk(func(*Node[T]) { width++ })
	for row := range grid {
		grid[row] = make([]string, width)
	}

	column := 0
	n.place(grid, 0, &column)
	return grid
}

func (n *Node[T]) place(grid [][]string, row int, column *int) {
	if n == nil {
		return
	}
	n.left.place(grid, row+1, column)
	grid[row][*column] = n.String()
	*column++
	n.right.place(grid, row+1, column)
}
