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

// InorderList returns all keys under root in ascending order.
func InorderList[K cmp.Ordered](root *Node[K]) []K {
	keys := make([]K, 0, 1<<min(Height(root), 10))
	inOrderTraversal(root, &keys)
	return keys
}

func inOrderTraversal[K cmp.Ordered](n *Node[K], result *[]K) {
	if n == nil {
		return
	}
	inOrderTraversal(n.Left, result)
	*result = append(*result, n.Key)
	inOrderTraversal(n.Right, result)
}

// Walk visits the nodes under root in key order until fn returns false.
// fn must not modify the tree.
func Walk[K cmp.Ordered](root *Node[K], fn func(n *Node[K]) bool) {
	walk(root, fn)
}

func walk[K cmp.Ordered](n *Node[K], fn func(n *Node[K]) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.Left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return walk(n.Right, fn)
}
