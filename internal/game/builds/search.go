package builds

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/vkarev/modopt/internal/model"
)

// Search enumerates every way to fill the free slots from the available pool,
// scores each candidate and returns the topN builds by total damage,
// descending. Ties keep enumeration order (pool names sorted ascending).
//
// A pool smaller than the free slot count yields no candidates and an empty
// result; more fixed mods than slots is ErrTooManyFixedMods. Cancellation is
// checked between candidates.
func (o *Optimizer) Search(ctx context.Context, topN int) ([]model.Build, error) {
	slots, err := o.checkSlots()
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	var ranked []model.Build
	err = forEachCombination(len(o.poolOrder), slots, func(idx []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ranked = append(ranked, o.Evaluate(o.pick(idx)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByDamage(ranked)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// SearchParallel runs the same exhaustive search fanned out across workers.
// Candidate scoring is pure, so workers only share the result slice, each
// writing its own index range. The ranking is identical to Search.
func (o *Optimizer) SearchParallel(ctx context.Context, topN, workers int) ([]model.Build, error) {
	slots, err := o.checkSlots()
	if err != nil {
		return nil, err
	}
	if workers <= 1 {
		return o.Search(ctx, topN)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	var combos [][]string
	_ = forEachCombination(len(o.poolOrder), slots, func(idx []int) error {
		combos = append(combos, o.pick(idx))
		return nil
	})

	ranked := make([]model.Build, len(combos))
	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(combos) + workers - 1) / workers
	for start := 0; start < len(combos); start += chunk {
		start := start
		end := min(start+chunk, len(combos))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				ranked[i] = o.Evaluate(combos[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByDamage(ranked)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

func (o *Optimizer) checkSlots() (int, error) {
	slots := o.FreeSlots()
	if slots < 0 {
		return 0, fmt.Errorf("%w: %d fixed mods, %d slots",
			ErrTooManyFixedMods, len(o.fixed), o.settings.MaxSlots)
	}
	return slots, nil
}

// pick maps combination indices to pool mod names.
func (o *Optimizer) pick(idx []int) []string {
	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = o.poolOrder[j]
	}
	return names
}

func sortByDamage(builds []model.Build) {
	slices.SortStableFunc(builds, func(a, b model.Build) int {
		return cmp.Compare(b.Stats.TotalDamage, a.Stats.TotalDamage)
	})
}

// forEachCombination calls fn with every k-element index combination of
// [0, n) in lexicographic order. k = 0 yields the single empty combination;
// k > n yields nothing. The index slice is reused between calls.
func forEachCombination(n, k int, fn func([]int) error) error {
	if k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
