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

package avl

import (
	"cmp"
	"fmt"
)

// rotateRight lifts z.Left into z's place.
//
//	    z            y
//	   / \          / \
//	  y   D  ==>   A   z
//	 / \              / \
//	A   T3           T3  D
func rotateRight[K cmp.Ordered](z *Node[K]) *Node[K] {
	if z == nil || z.Left == nil {
		panic(fmt.Sprintf("avl: rotateRight needs a left child (node %v)", keyOf(z)))
	}
	pivot := z.Left

	z.Left = pivot.Right
	pivot.Right = z

	// z is now below pivot, so it goes first
	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K cmp.Ordered](z *Node[K]) *Node[K] {
	if z == nil || z.Right == nil {
		panic(fmt.Sprintf("avl: rotateLeft needs a right child (node %v)", keyOf(z)))
	}
	pivot := z.Right

	z.Right = pivot.Left
	pivot.Left = z

	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

func keyOf[K cmp.Ordered](n *Node[K]) any {
	if n == nil {
		return "<nil>"
	}
	return n.Key
}

// rebalance restores |bf| <= 1 at n. The children of n must already be
// balanced and n.Height must be current; |bf| never exceeds 2 here.
func rebalance[K cmp.Ordered](n *Node[K]) *Node[K] {
	balanceFactor := BalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if BalanceFactor(n.Left) < 0 {
			// Left-Right case
			n.Left = rotateLeft(n.Left)
		}
		return rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if BalanceFactor(n.Right) > 0 {
			// Right-Left case
			n.Right = rotateRight(n.Right)
		}
		return rotateLeft(n)
	}

	return n
}

// Insert adds key to the subtree rooted at n and returns the new subtree root.
// The returned root replaces n; n itself may no longer be the root.
// Inserting a key that is already present leaves the tree untouched.
func Insert[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	n, _ = insert(n, key)
	return n
}

func insert[K cmp.Ordered](n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return newLeaf(key), true
	}

	var inserted bool
	switch {
	case key < n.Key:
		n.Left, inserted = insert(n.Left, key)
	case key > n.Key:
		n.Right, inserted = insert(n.Right, key)
	default:
		// duplicate
		return n, false
	}
	if !inserted {
		return n, false
	}

	updateHeight(n)
	return rebalance(n), true
}

// Delete removes key from the subtree rooted at n and returns the new subtree
// root, which is nil once the last key is gone. Deleting an absent key is a no-op.
func Delete[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	n, _ = remove(n, key)
	return n
}

func remove[K cmp.Ordered](n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false // Key not found
	}

	var removed bool
	switch {
	case key < n.Key:
		n.Left, removed = remove(n.Left, key)
	case key > n.Key:
		n.Right, removed = remove(n.Right, key)
	default:
		if n.Left == nil {
			return n.Right, true
		}
		if n.Right == nil {
			return n.Left, true
		}
		// Two children: take over the in-order successor's key, then drop
		// the successor, which has no left child.
		successor := minValueNode(n.Right)
		n.Key = successor.Key
		n.Right, _ = remove(n.Right, successor.Key)
		removed = true
	}
	if !removed {
		return n, false
	}

	updateHeight(n)
	return rebalance(n), true
}

func minValueNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func maxValueNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// search returns the node holding key, or nil.
func search[K cmp.Ordered](n *Node[K], key K) *Node[K] {
	for n != nil {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// Tree owns a root reference and keeps a key count alongside it.
//
// Tree is not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Insert adds key and reports whether it was not already present.
func (t *Tree[K]) Insert(key K) bool {
	var inserted bool
	t.root, inserted = insert(t.root, key)
	if inserted {
		t.size++
	}
	return inserted
}

// Delete removes key and reports whether it was present.
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) Contains(key K) bool {
	return search(t.root, key) != nil
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	return minValueNode(t.root).Key, true
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	return maxValueNode(t.root).Key, true
}

func (t *Tree[K]) Len() int {
	return t.size
}

func (t *Tree[K]) Height() int {
	return Height(t.root)
}

// Keys returns every key in ascending order.
func (t *Tree[K]) Keys() []K {
	return InorderList(t.root)
}

// Root exposes the root node for read-only inspection.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// String renders the tree sideways. Should not be used to print out large trees.
func (t *Tree[K]) String() string {
	if t == nil {
		return Render[K](nil, DefaultRenderOptions)
	}
	return Render(t.root, DefaultRenderOptions)
}
