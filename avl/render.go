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
	"hash/fnv"
	"strings"
)

const emptyTree = "(empty tree)\n"

// RenderOptions controls the per-node annotations printed by Render.
type RenderOptions struct {
	ShowHeight  bool
	ShowBalance bool
}

var DefaultRenderOptions = RenderOptions{ShowHeight: true, ShowBalance: true}

// Render draws the tree sideways: right subtree above, left subtree below.
//
//	    ┌── 40 [h=1, bf=0]
//	─── 30 [h=2, bf=0]
//	    └── 20 [h=1, bf=0]
func Render[K cmp.Ordered](root *Node[K], opts RenderOptions) string {
	if root == nil {
		return emptyTree
	}
	var b strings.Builder
	render(&b, root, "", false, true, opts)
	return b.String()
}

func render[K cmp.Ordered](b *strings.Builder, n *Node[K], prefix string, tail, isRoot bool, opts RenderOptions) {
	if n.Right != nil {
		render(b, n.Right, rightNodePrefix(prefix, tail), false, false, opts)
	}
	fmt.Fprintf(b, "%s %v%s\n", connector(prefix, isRoot, tail), n.Key, annotation(n, opts))
	if n.Left != nil {
		render(b, n.Left, leftNodePrefix(prefix, tail, isRoot), true, false, opts)
	}
}

func connector(prefix string, isRoot, tail bool) string {
	if isRoot {
		return prefix + "───"
	} else if tail {
		return prefix + "└──"
	}
	return prefix + "┌──"
}

func rightNodePrefix(prefix string, tail bool) string {
	if tail {
		return prefix + "│   "
	}
	return prefix + "    "
}

func leftNodePrefix(prefix string, tail, isRoot bool) string {
	if tail || isRoot {
		return prefix + "    "
	}
	return prefix + "│   "
}

func annotation[K cmp.Ordered](n *Node[K], opts RenderOptions) string {
	switch {
	case opts.ShowHeight && opts.ShowBalance:
		return fmt.Sprintf(" [h=%d, bf=%d]", n.Height, BalanceFactor(n))
	case opts.ShowHeight:
		return fmt.Sprintf(" [h=%d]", n.Height)
	case opts.ShowBalance:
		return fmt.Sprintf(" [bf=%d]", BalanceFactor(n))
	}
	return ""
}

// Fingerprint hashes the pre-order sequence of (key, height) pairs, with a
// marker for every empty slot, so it changes whenever the rendered shape does.
// Keys are length-prefixed so no key text can mimic the separators.
func Fingerprint[K cmp.Ordered](root *Node[K]) uint64 {
	h := fnv.New64a()
	var visit func(n *Node[K])
	visit = func(n *Node[K]) {
		if n == nil {
			h.Write([]byte{'#'})
			return
		}
		key := fmt.Sprint(n.Key)
		fmt.Fprintf(h, "%d:%s|%d;", len(key), key, n.Height)
		visit(n.Left)
		visit(n.Right)
	}
	visit(root)
	return h.Sum64()
}
