package runner

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/gopherlings/internal/curriculum"
)

// ProgressFunc is called after each exercise finishes during a check.
// Calls are serialised.
type ProgressFunc func(index int, success bool)

// CheckAll runs every exercise with at most jobs runs in flight and returns
// the success of each, indexed like exercises.
func CheckAll(ctx context.Context, r Runner, exercises []curriculum.Exercise, jobs int, progress ProgressFunc) ([]bool, error) {
	results := make([]bool, len(exercises))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	var mu sync.Mutex
	for i, ex := range exercises {
		g.Go(func() error {
			res, err := r.Run(ctx, ex)
			if err != nil {
				return fmt.Errorf("check %s: %w", ex.Name, err)
			}

			mu.Lock()
			defer mu.Unlock()
			results[i] = res.Success
			if progress != nil {
				progress(i, res.Success)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
