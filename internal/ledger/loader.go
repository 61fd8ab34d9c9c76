package ledger

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/taxlens/internal/model"
)

// LoadResult holds the merged output of several ledger files.
type LoadResult struct {
	Rows    []model.Row
	Files   []ParseResult
	Dropped int
}

// LoadFiles parses paths concurrently and concatenates their rows in the
// order the paths were given. The first failure cancels the remaining work.
func LoadFiles(ctx context.Context, paths []string) (*LoadResult, error) {
	results := make([]ParseResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pr, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = pr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &LoadResult{Files: results}
	for _, pr := range results {
		out.Rows = append(out.Rows, pr.Rows...)
		out.Dropped += pr.Dropped
	}
	return out, nil
}
