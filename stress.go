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
	"log"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/cybrota/avlscope/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

const (
	// Random keys are drawn from [0, Size*stressKeySpaceFactor) so that
	// duplicates show up and exercise the no-op insert path.
	stressKeySpaceFactor = 4
	stressBloomFPRate    = 0.01
)

type StressOptions struct {
	Size         int
	DeleteRatio  float64
	Seed         int64 // 0 picks a time-based seed
	ShowProgress bool
}

type StressReport struct {
	Seed                int64
	Inserted            int
	Duplicates          int // random draws rejected as already present
	BloomFalsePositives int
	Deleted             int
	Remaining           int
	Height              int
	HeightBound         float64
	InsertTime          time.Duration
	DeleteTime          time.Duration
}

// RunStress inserts Size distinct random keys, deletes a DeleteRatio share of
// them in random order, and checks the tree against a reference set after
// each phase.
func RunStress(opts StressOptions) (*StressReport, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("stress: size must be positive, got %d", opts.Size)
	}
	if opts.DeleteRatio < 0 || opts.DeleteRatio > 1 {
		return nil, fmt.Errorf("stress: delete ratio must be within [0, 1], got %v", opts.DeleteRatio)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting stress run: %d keys, delete ratio %.2f, seed %d", opts.Size, opts.DeleteRatio, seed)

	rng := rand.New(rand.NewSource(seed))
	report := &StressReport{Seed: seed}
	tree := avl.New[int]()
	filter := bloom.NewWithEstimates(uint(opts.Size), stressBloomFPRate)
	keys := make([]int, 0, opts.Size)
	keySpace := opts.Size * stressKeySpaceFactor

	bar := newStressBar(opts.Size, "🌱 Inserting keys...", opts.ShowProgress)
	start := time.Now()
	for len(keys) < opts.Size {
		k := rng.Intn(keySpace)
		s := strconv.Itoa(k)
		// A bloom miss proves k is new. On a hit the tree decides, and a
		// present key must come back as a no-op insert.
		if filter.TestString(s) {
			if !tree.Insert(k) {
				if tree.Len() != len(keys) {
					return nil, fmt.Errorf("stress: duplicate insert of %d changed the size", k)
				}
				report.Duplicates++
				continue
			}
			report.BloomFalsePositives++
		} else if !tree.Insert(k) {
			return nil, fmt.Errorf("stress: insert of new key %d reported a duplicate", k)
		}
		filter.AddString(s)
		keys = append(keys, k)
		if bar != nil {
			bar.Add(1)
		}
	}
	report.InsertTime = time.Since(start)
	report.Inserted = len(keys)
	if bar != nil {
		bar.Finish()
	}

	if err := checkStressTree(tree, keys); err != nil {
		return nil, fmt.Errorf("stress: after inserts: %w", err)
	}

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	toDelete := int(float64(len(keys)) * opts.DeleteRatio)

	bar = newStressBar(toDelete, "🪓 Deleting keys...", opts.ShowProgress && toDelete > 0)
	start = time.Now()
	for i, k := range keys[:toDelete] {
		if !tree.Delete(k) {
			return nil, fmt.Errorf("stress: delete of present key %d reported a miss", k)
		}
		// Keys at or above keySpace were never drawn
		if tree.Delete(keySpace + i) {
			return nil, fmt.Errorf("stress: delete of absent key %d reported a hit", keySpace+i)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	report.DeleteTime = time.Since(start)
	report.Deleted = toDelete
	if bar != nil {
		bar.Finish()
	}

	remaining := keys[toDelete:]
	if err := checkStressTree(tree, remaining); err != nil {
		return nil, fmt.Errorf("stress: after deletes: %w", err)
	}

	report.Remaining = tree.Len()
	report.Height = tree.Height()
	report.HeightBound = avl.HeightBound(report.Remaining)
	log.Printf("Stress run completed in %v", report.InsertTime+report.DeleteTime)
	return report, nil
}

// checkStressTree compares tree against the expected key set and checks the
// structural invariants and the logarithmic height bound.
func checkStressTree(tree *avl.Tree[int], expected []int) error {
	if err := avl.Verify(tree.Root()); err != nil {
		return err
	}
	if tree.Len() != len(expected) {
		return fmt.Errorf("tree holds %d keys, expected %d", tree.Len(), len(expected))
	}
	want := slices.Clone(expected)
	slices.Sort(want)
	if !slices.Equal(tree.Keys(), want) {
		return fmt.Errorf("tree keys diverged from the reference set")
	}
	if bound := avl.HeightBound(tree.Len()); float64(tree.Height()) > bound {
		return fmt.Errorf("height %d exceeds bound %.2f for %d keys", tree.Height(), bound, tree.Len())
	}
	return nil
}

func newStressBar(total int, description string, show bool) *progressbar.ProgressBar {
	if !show {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

func (r *StressReport) Print(w io.Writer) {
	fmt.Fprintf(w, "Seed:                  %d\n", r.Seed)
	fmt.Fprintf(w, "Inserted:              %d in %v\n", r.Inserted, r.InsertTime)
	fmt.Fprintf(w, "Duplicate draws:       %d\n", r.Duplicates)
	fmt.Fprintf(w, "Bloom false positives: %d\n", r.BloomFalsePositives)
	fmt.Fprintf(w, "Deleted:               %d in %v\n", r.Deleted, r.DeleteTime)
	fmt.Fprintf(w, "Remaining:             %d\n", r.Remaining)
	fmt.Fprintf(w, "Height:                %d (bound %.2f)\n", r.Height, r.HeightBound)
	fmt.Fprintf(w, "%sAll invariants held.%s\n", Green, Reset)
}
