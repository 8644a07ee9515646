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
	"math/rand"
	"slices"
	"sort"
	"testing"
)

// recomputeHeight measures the longest root-to-leaf path without looking at
// the cached Height fields.
func recomputeHeight[K int | string](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return 1 + max(recomputeHeight(n.Left), recomputeHeight(n.Right))
}

func checkInvariants(t *testing.T, root *Node[int]) {
	t.Helper()

	keys := InorderList(root)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("in-order keys not strictly ascending at %d: %v >= %v", i, keys[i-1], keys[i])
		}
	}

	Walk(root, func(n *Node[int]) bool {
		if bf := BalanceFactor(n); bf < -1 || bf > 1 {
			t.Fatalf("node %d has balance factor %d", n.Key, bf)
		}
		if n.Height != 1+max(Height(n.Left), Height(n.Right)) {
			t.Fatalf("node %d caches height %d, children say %d", n.Key, n.Height, 1+max(Height(n.Left), Height(n.Right)))
		}
		if h := recomputeHeight(n); n.Height != h {
			t.Fatalf("node %d caches height %d, actual %d", n.Key, n.Height, h)
		}
		return true
	})

	if err := Verify(root); err != nil {
		t.Fatal(err)
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		rng := rand.New(rand.NewSource(seed))
		var root *Node[int]
		present := map[int]bool{}

		for i := 0; i < 2000; i++ {
			k := rng.Intn(500)
			before := len(InorderList(root))

			if rng.Intn(3) == 0 {
				root = Delete(root, k)
				want := before
				if present[k] {
					want--
				}
				delete(present, k)
				if got := len(InorderList(root)); got != want {
					t.Fatalf("seed %d: delete %d: size %d; want %d", seed, k, got, want)
				}
			} else {
				root = Insert(root, k)
				want := before
				if !present[k] {
					want++
				}
				present[k] = true
				if got := len(InorderList(root)); got != want {
					t.Fatalf("seed %d: insert %d: size %d; want %d", seed, k, got, want)
				}
			}

			if i%50 == 0 {
				checkInvariants(t, root)
			}
		}
		checkInvariants(t, root)

		want := make([]int, 0, len(present))
		for k := range present {
			want = append(want, k)
		}
		sort.Ints(want)
		if got := InorderList(root); !slices.Equal(got, want) {
			t.Fatalf("seed %d: tree keys diverged from reference set", seed)
		}
	}
}

func TestInsertAllDeleteAll(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	keys := rng.Perm(1000)

	var root *Node[int]
	for _, k := range keys {
		root = Insert(root, k)
	}
	if got := len(InorderList(root)); got != len(keys) {
		t.Fatalf("size after inserts = %d; want %d", got, len(keys))
	}
	checkInvariants(t, root)

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		root = Delete(root, k)
		if i%100 == 0 {
			checkInvariants(t, root)
		}
	}
	if root != nil {
		t.Fatalf("root should be nil after deleting every key, got %d", root.Key)
	}
}

func TestHeightStaysLogarithmic(t *testing.T) {
	tests := []struct {
		name string
		keys func(n int) []int
	}{
		{"Ascending", func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = i
			}
			return keys
		}},
		{"Descending", func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = n - i
			}
			return keys
		}},
		{"Random", func(n int) []int {
			return rand.New(rand.NewSource(3)).Perm(n)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, n := range []int{1, 2, 10, 100, 1000, 10000} {
				var root *Node[int]
				for _, k := range tc.keys(n) {
					root = Insert(root, k)
				}
				if h := float64(Height(root)); h > HeightBound(n) {
					t.Errorf("n=%d: height %v exceeds bound %.2f", n, h, HeightBound(n))
				}
			}
		})
	}
}
