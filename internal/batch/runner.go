package batch

import (
	"context"
	"fmt"
	"strings"

	"WeightLossDataGenerator/internal/dataset"
	"WeightLossDataGenerator/internal/observability"
	"WeightLossDataGenerator/internal/sink"
)

// Result reports where one plan entry ended up.
type Result struct {
	Rows     int
	Seed     int64
	Location string
}

// Run generates every entry of plan in order and hands each to dst.
// Entries sharing a row count get the seed appended to their filename, and
// a counter on top of that when the seed repeats too, so no file is overwritten.
// It stops at the first sink error, returning the results so far.
func Run(ctx context.Context, plan *Plan, dst sink.Sink) ([]Result, error) {
	results := make([]Result, 0, len(plan.Datasets))
	used := make(map[string]bool, len(plan.Datasets))

	for i, entry := range plan.Datasets {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		ds := dataset.Build(observability.ChannelCLI, entry.Rows, dataset.ResolveSeed(entry.Seed))
		filename := ds.Filename
		if used[filename] {
			base := fmt.Sprintf("%s_seed%d", strings.TrimSuffix(ds.Filename, ".csv"), ds.Seed)
			filename = base + ".csv"
			for n := 2; used[filename]; n++ {
				filename = fmt.Sprintf("%s_%d.csv", base, n)
			}
		}
		used[filename] = true

		location, err := dst.Save(ctx, ds.Data, filename)
		if err != nil {
			return results, fmt.Errorf("dataset %d (%d rows): %w", i+1, ds.Rows, err)
		}
		results = append(results, Result{Rows: ds.Rows, Seed: ds.Seed, Location: location})
	}
	return results, nil
}
