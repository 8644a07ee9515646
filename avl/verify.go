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
	"errors"
	"fmt"
	"math"
)

var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrBalance = errors.New("avl: balance factor out of range")
	ErrHeight  = errors.New("avl: cached height is stale")
)

// Verify walks the whole tree and checks key order, balance and cached
// heights. Heights are recomputed from scratch rather than trusted.
func Verify[K cmp.Ordered](root *Node[K]) error {
	_, err := verify(root, nil, nil)
	return err
}

func verify[K cmp.Ordered](n *Node[K], low, high *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && n.Key <= *low {
		return 0, fmt.Errorf("key %v not above %v: %w", n.Key, *low, ErrOrder)
	}
	if high != nil && n.Key >= *high {
		return 0, fmt.Errorf("key %v not below %v: %w", n.Key, *high, ErrOrder)
	}

	lh, err := verify(n.Left, low, &n.Key)
	if err != nil {
		return 0, err
	}
	rh, err := verify(n.Right, &n.Key, high)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.Height != h {
		return 0, fmt.Errorf("key %v has height %d, want %d: %w", n.Key, n.Height, h, ErrHeight)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("key %v has balance factor %d: %w", n.Key, bf, ErrBalance)
	}
	return h, nil
}

// HeightBound is the worst-case AVL height for n keys, 1.44*log2(n+2).
func HeightBound(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}
