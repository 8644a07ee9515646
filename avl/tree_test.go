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
	"slices"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Right)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Left-Right)",
			InitialKeys:   []string{"cherry", "apple"},
			KeysToInsert:  []string{"banana"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Left)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToDelete:  []string{"zebra"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"b", "a", "c"},
			KeysToDelete:  []string{"a", "b", "c"},
			ExpectedOrder: []string{},
		},
		{
			Name:          "Duplicate Insert",
			InitialKeys:   []string{"b", "a"},
			KeysToInsert:  []string{"a", "b"},
			ExpectedOrder: []string{"a", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var root *Node[string]
			for _, key := range tc.InitialKeys {
				root = Insert(root, key)
			}
			for _, key := range tc.KeysToInsert {
				root = Insert(root, key)
			}
			for _, key := range tc.KeysToDelete {
				root = Delete(root, key)
			}
			if got := InorderList(root); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("InorderList() = %v; want %v", got, tc.ExpectedOrder)
			}
			if err := Verify(root); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

func TestRotationCascade(t *testing.T) {
	var root *Node[int]
	for _, k := range []int{10, 20, 30, 40, 50, 25} {
		root = Insert(root, k)
	}

	if got, want := InorderList(root), []int{10, 20, 25, 30, 40, 50}; !slices.Equal(got, want) {
		t.Fatalf("InorderList() = %v; want %v", got, want)
	}
	if root.Key != 30 {
		t.Fatalf("root = %d; want 30", root.Key)
	}
	if root.Height != 3 {
		t.Errorf("root height = %d; want 3", root.Height)
	}

	steps := []struct {
		del      int
		wantRoot int
		want     []int
	}{
		{50, 30, []int{10, 20, 25, 30, 40}},
		{40, 20, []int{10, 20, 25, 30}},
		{10, 25, []int{20, 25, 30}},
	}
	for _, s := range steps {
		root = Delete(root, s.del)
		if err := Verify(root); err != nil {
			t.Fatalf("after deleting %d: %v", s.del, err)
		}
		if got := InorderList(root); !slices.Equal(got, s.want) {
			t.Errorf("after deleting %d: InorderList() = %v; want %v", s.del, got, s.want)
		}
		if root.Key != s.wantRoot {
			t.Errorf("after deleting %d: root = %d; want %d", s.del, root.Key, s.wantRoot)
		}
	}
}

func TestDeleteTwoChildrenUsesSuccessor(t *testing.T) {
	var root *Node[int]
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		root = Insert(root, k)
	}
	root = Delete(root, 50)

	if root.Key != 60 {
		t.Errorf("root = %d; want successor 60", root.Key)
	}
	if got, want := InorderList(root), []int{20, 30, 40, 60, 70, 80}; !slices.Equal(got, want) {
		t.Errorf("InorderList() = %v; want %v", got, want)
	}
	if err := Verify(root); err != nil {
		t.Error(err)
	}
}

func TestDuplicateInsertKeepsStructure(t *testing.T) {
	var root *Node[int]
	for _, k := range []int{8, 4, 12, 2, 6, 10, 14, 1} {
		root = Insert(root, k)
	}
	before := cloneNode(root)

	for _, k := range []int{8, 1, 6, 14} {
		root = Insert(root, k)
		if !sameShape(before, root) {
			t.Fatalf("inserting duplicate %d changed the tree:\n%s", k, Render(root, DefaultRenderOptions))
		}
	}
}

func TestEmptyTree(t *testing.T) {
	var root *Node[float64]

	if Height(root) != 0 {
		t.Errorf("Height(nil) = %d; want 0", Height(root))
	}
	if BalanceFactor(root) != 0 {
		t.Errorf("BalanceFactor(nil) = %d; want 0", BalanceFactor(root))
	}
	if got := InorderList(root); len(got) != 0 {
		t.Errorf("InorderList(nil) = %v; want empty", got)
	}
	if Delete(root, 1.5) != nil {
		t.Error("Delete on an empty tree should return nil")
	}
	if err := Verify(root); err != nil {
		t.Errorf("Verify(nil) = %v", err)
	}

	leaf := Insert(root, 1.5)
	if leaf.Height != 1 || leaf.Left != nil || leaf.Right != nil {
		t.Errorf("first insert should produce a leaf of height 1, got %+v", leaf)
	}
}

func TestTreeHandle(t *testing.T) {
	tree := New[int]()

	if _, ok := tree.Min(); ok {
		t.Error("Min() on empty tree should report false")
	}
	if _, ok := tree.Max(); ok {
		t.Error("Max() on empty tree should report false")
	}

	for _, k := range []int{5, 3, 8, 1, 4} {
		if !tree.Insert(k) {
			t.Errorf("Insert(%d) = false; want true", k)
		}
	}
	if tree.Insert(3) {
		t.Error("Insert(3) twice should report false")
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d; want 5", tree.Len())
	}
	if !tree.Contains(4) || tree.Contains(7) {
		t.Error("Contains() gave the wrong answer")
	}
	if k, _ := tree.Min(); k != 1 {
		t.Errorf("Min() = %d; want 1", k)
	}
	if k, _ := tree.Max(); k != 8 {
		t.Errorf("Max() = %d; want 8", k)
	}
	if tree.Height() != 3 {
		t.Errorf("Height() = %d; want 3", tree.Height())
	}

	if !tree.Delete(5) {
		t.Error("Delete(5) = false; want true")
	}
	if tree.Delete(5) {
		t.Error("Delete(5) twice should report false")
	}
	if got, want := tree.Keys(), []int{1, 3, 4, 8}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v; want %v", got, want)
	}
	if tree.Len() != 4 {
		t.Errorf("Len() = %d; want 4", tree.Len())
	}

	tree.Clear()
	if tree.Len() != 0 || tree.Root() != nil {
		t.Error("Clear() should leave an empty tree")
	}
}

func TestWalkStopsEarly(t *testing.T) {
	var root *Node[int]
	for k := 1; k <= 10; k++ {
		root = Insert(root, k)
	}

	var seen []int
	Walk(root, func(n *Node[int]) bool {
		seen = append(seen, n.Key)
		return n.Key < 4
	})
	if want := []int{1, 2, 3, 4}; !slices.Equal(seen, want) {
		t.Errorf("Walk visited %v; want %v", seen, want)
	}
}

func cloneNode[K int | string](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	return &Node[K]{Key: n.Key, Height: n.Height, Left: cloneNode(n.Left), Right: cloneNode(n.Right)}
}

func sameShape[K int | string](a, b *Node[K]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key == b.Key && a.Height == b.Height && sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}
