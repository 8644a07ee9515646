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

import "cmp"

// Node is a single key in an AVL tree. A nil *Node is the empty subtree.
type Node[K cmp.Ordered] struct {
	Key    K
	Height int // 1 for a leaf
	Left   *Node[K]
	Right  *Node[K]
}

func newLeaf[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key, Height: 1}
}

// Height returns the cached height of n, or 0 when n is nil.
func Height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.Height = max(Height(n.Left), Height(n.Right)) + 1
}

// BalanceFactor returns height(left) - height(right). Positive means left-heavy.
func BalanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}
