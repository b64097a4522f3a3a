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

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrMissingRotationChild is returned by Rotate when the child that would be
// promoted does not exist.
var ErrMissingRotationChild = errors.New("rotation child is missing")

// Node is a single vertex of the tree. A nil *Node stands for "no node".
type Node[T constraints.Ordered] struct {
	value  T
	parent *Node[T] // back-reference only, never owns
	left   *Node[T]
	right  *Node[T]
}

// NewNode creates a detached node holding v
func NewNode[T constraints.Ordered](v T) *Node[T] {
	return &Node[T]{value: v}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// SetLeft replaces the left link. Nothing is validated; keeping the
// ordering invariant is up to the caller.
func (n *Node[T]) SetLeft(child *Node[T]) {
	n.left = child
}

func (n *Node[T]) SetRight(child *Node[T]) {
	n.right = child
}

func (n *Node[T]) SetParent(parent *Node[T]) {
	n.parent = parent
}

// Depth returns the number of nodes on the longest path from n down to a
// leaf. A nil node has depth 0 and a leaf has depth 1.
func (n *Node[T]) Depth() int {
	if n == nil {
		return 0
	}
	return max(n.left.Depth(), n.right.Depth()) + 1
}

// Rotate performs a single rotation towards the shallower side and returns
// the promoted node, which becomes the new local root with no parent.
//
// The promoted node is never attached to n's former parent, so Rotate is only
// meaningful on a tree root. Calling it on an interior node detaches that
// subtree.
func (n *Node[T]) Rotate() (*Node[T], error) {
	if n.left.Depth() > n.right.Depth() {
		return n.rotateRight()
	}
	return n.rotateLeft()
}

func (n *Node[T]) rotateRight() (*Node[T], error) {
	pivot := n.left
	if pivot == nil {
		return nil, errors.Wrapf(ErrMissingRotationChild, "rotate right at %v", n.value)
	}

	n.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent = n
	}
	pivot.right = n
	n.parent = pivot
	pivot.parent = nil

	return pivot, nil
}

func (n *Node[T]) rotateLeft() (*Node[T], error) {
	pivot := n.right
	if pivot == nil {
		return nil, errors.Wrapf(ErrMissingRotationChild, "rotate left at %v", n.value)
	}

	n.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent = n
	}
	pivot.left = n
	n.parent = pivot
	pivot.parent = nil

	return pivot, nil
}

// String formats the node value, or "NULL" for an absent node.
func (n *Node[T]) String() string {
	if n == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", n.value)
}

func (n *Node[T]) walk(visit func(*Node[T])) {
	if n == nil {
		return
	}
	n.left.walk(visit)
	visit(n)
	n.right.walk(visit)
}
