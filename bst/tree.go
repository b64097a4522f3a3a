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

// Package bst implements a binary search tree that corrects imbalance with a
// single rotation at the root after every insert.
//
// This is not a self-balancing tree in the AVL or red-black sense. Balance
// only ever looks at the two subtrees of the root and rotates at most once,
// so deep imbalance further down is left alone and the root itself may stay
// unbalanced until the next insert.
package bst

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// DefaultRootMarker is appended to the root's line by Display.
const DefaultRootMarker = " <-"

// Tree is not safe for concurrent use. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{root: nil}
}

func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Insert adds v to the tree and then calls Balance. Duplicates are ignored,
// but Balance still runs. The only possible error is a broken rotation
// precondition reported by Balance.
func (t *Tree[T]) Insert(v T) error {
	t.insert(v)
	return t.Balance()
}

func (t *Tree[T]) insert(v T) {
	if t.root == nil {
		t.root = NewNode(v)
		return
	}

	current := t.root
	for {
		switch {
		case v == current.value:
			return
		case v < current.value:
			if current.left == nil {
				child := NewNode(v)
				child.parent = current
				current.left = child
				return
			}
			current = current.left
		default:
			if current.right == nil {
				child := NewNode(v)
				child.parent = current
				current.right = child
				return
			}
			current = current.right
		}
	}
}

// Search returns the node holding v, or nil.
func (t *Tree[T]) Search(v T) *Node[T] {
	node := t.root
	for node != nil && node.value != v {
		if v < node.value {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// Height is the depth of the root, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.Depth()
}

// IsUnbalanced reports whether the root's subtrees differ in depth by more
// than one.
func (t *Tree[T]) IsUnbalanced() bool {
	if t.root == nil {
		return false
	}
	diff := t.root.left.Depth() - t.root.right.Depth()
	return diff > 1 || diff < -1
}

// Balance rotates once at the root when IsUnbalanced is true.
func (t *Tree[T]) Balance() error {
	if !t.IsUnbalanced() {
		return nil
	}

	newRoot, err := t.root.Rotate()
	if err != nil {
		return errors.Wrap(err, "unable to balance root")
	}
	t.root = newRoot
	return nil
}

// Traverse visits every node in order.
func (t *Tree[T]) Traverse(visit func(n *Node[T])) {
	t.root.walk(visit)
}

// Values returns the in-order sequence of values.
func (t *Tree[T]) Values() []T {
	var values []T
	t.Traverse(func(n *Node[T]) {
		values = append(values, n.value)
	})
	return values
}

func (t *Tree[T]) Len() int {
	count := 0
	t.Traverse(func(*Node[T]) {
		count++
	})
	return count
}

// Display writes one value per line in order, appending marker to the root's
// line.
func (t *Tree[T]) Display(w io.Writer, marker string) error {
	var err error
	t.Traverse(func(n *Node[T]) {
		if err != nil {
			return
		}
		suffix := ""
		if n == t.root {
			suffix = marker
		}
		_, err = fmt.Fprintf(w, "%v%s\n", n.value, suffix)
	})
	return err
}

// Render returns the grid described by Node.Render, or nil for an empty tree.
func (t *Tree[T]) Render() [][]string {
	if t.root == nil {
		return nil
	}
	return t.root.Render()
}
