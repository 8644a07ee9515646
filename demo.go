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

	"github.com/cybrota/avlscope/avl"
)

var (
	// Triggers RR, RR and RL rotations in turn; the final root is 30.
	demoInserts = []int{10, 20, 30, 40, 50, 25}
	demoDeletes = []int{50, 40, 10}
)

// runDemo walks through the classic rotation cascade and prints the tree
// after the inserts and after every delete.
func runDemo(w io.Writer, opts avl.RenderOptions) error {
	var root *avl.Node[int]
	for _, k := range demoInserts {
		root = avl.Insert(root, k)
	}

	fmt.Fprintf(w, "%sAVL after inserting %v:%s\n", Green, demoInserts, Reset)
	fmt.Fprint(w, avl.Render(root, opts))
	fmt.Fprintf(w, "Inorder (sorted): %v\n\n", avl.InorderList(root))

	for _, k := range demoDeletes {
		root = avl.Delete(root, k)
		if err := avl.Verify(root); err != nil {
			return fmt.Errorf("tree broken after deleting %d: %w", k, err)
		}
		fmt.Fprintf(w, "%sAVL after deleting %d:%s\n", Green, k, Reset)
		fmt.Fprint(w, avl.Render(root, opts))
		fmt.Fprintf(w, "Inorder (sorted): %v\n\n", avl.InorderList(root))
	}
	return nil
}

// buildTree inserts then deletes the given tokens and prints the result.
func buildTree(w io.Writer, s Session, inserts, deletes []string, opts avl.RenderOptions) error {
	for _, tok := range inserts {
		if _, err := s.Insert(tok); err != nil {
			return err
		}
	}
	for _, tok := range deletes {
		if _, err := s.Delete(tok); err != nil {
			return err
		}
	}

	fmt.Fprint(w, s.Render(opts))
	fmt.Fprintf(w, "Inorder (sorted): %v\n", s.Keys())
	fmt.Fprintf(w, "Keys: %d, height: %d\n", s.Len(), s.Height())
	if err := s.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%sInvariants hold.%s\n", Green, Reset)
	return nil
}
