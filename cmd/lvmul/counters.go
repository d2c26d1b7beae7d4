// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvmul/metrics"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// counterDemo drives a store with simulated task workers and page requesters.
type counterDemo struct {
	store      string
	workers    int
	requesters int
	pages      int
	duration   time.Duration
	maxPause   time.Duration
	seed       int64
}

func newCountersCmd(c *cli) *cobra.Command {
	d := counterDemo{
		store:      "atomic",
		workers:    2,
		requesters: 4,
		pages:      5,
		duration:   2 * time.Second,
		maxPause:   50 * time.Millisecond,
	}
	cmd := &cobra.Command{
		Use:   "counters",
		Short: "Exercise a counter store from concurrent goroutines and print the totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if d.seed == 0 {
				d.seed = time.Now().UnixNano()
			}
			return d.run(cmd.Context(), c.logger, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.store, "store", d.store, "counter store: lock, sharded or atomic")
	f.IntVar(&d.workers, "workers", d.workers, "simulated task workers")
	f.IntVar(&d.requesters, "requesters", d.requesters, "simulated page requesters")
	f.IntVar(&d.pages, "pages", d.pages, "distinct pages requested")
	f.DurationVar(&d.duration, "duration", d.duration, "how long to run")
	f.DurationVar(&d.maxPause, "max-pause", d.maxPause, "upper bound of the random pause between updates")
	f.Int64Var(&d.seed, "seed", 0, "random seed (0 = time based)")

	return cmd
}

func (d counterDemo) keys() []string {
	keys := make([]string, 0, d.workers+d.pages)
	for i := 0; i < d.workers; i++ {
		keys = append(keys, fmt.Sprintf("call.thread.worker.%d", i))
	}
	for p := 1; p <= d.pages; p++ {
		keys = append(keys, fmt.Sprintf("req.page.%d", p))
	}

	return keys
}

func (d counterDemo) newStore() (metrics.Store, error) {
	switch d.store {
	case "lock":
		return metrics.NewLockMap(), nil
	case "sharded":
		return metrics.NewShardedMap(), nil
	case "atomic":
		return metrics.NewAtomicMap(d.keys()...), nil
	default:
		return nil, errors.Newf("unknown store %q (want lock, sharded or atomic)", d.store)
	}
}

func (d counterDemo) run(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	if d.workers < 0 || d.requesters < 0 || d.pages < 1 || d.maxPause <= 0 {
		return errors.New("counters: workers/requesters must be >= 0, pages >= 1, max-pause > 0")
	}
	store, err := d.newStore()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, d.duration)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	loop := func(id int, key func(*rand.Rand) string) func() error {
		return func() error {
			rng := rand.New(rand.NewSource(d.seed + int64(id)))
			for {
				pause := time.Duration(rng.Int63n(int64(d.maxPause))) + 1
				select {
				case <-gctx.Done():
					return nil
				case <-time.After(pause):
				}
				if err := store.Inc(key(rng)); err != nil {
					return err
				}
			}
		}
	}
	for i := 0; i < d.workers; i++ {
		name := fmt.Sprintf("call.thread.worker.%d", i)
		g.Go(loop(i, func(*rand.Rand) string { return name }))
	}
	for r := 0; r < d.requesters; r++ {
		g.Go(loop(d.workers+r, func(rng *rand.Rand) string {
			return fmt.Sprintf("req.page.%d", rng.Intn(d.pages)+1)
		}))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	snap, err := store.Snapshot()
	if err != nil {
		return err
	}
	logger.Info("counters done", slog.String("store", d.store), slog.Int("keys", len(snap)))
	renderTable(out, snap)

	return nil
}

// renderTable prints snap as a two-column table sorted by key.
func renderTable(out io.Writer, snap map[string]int64) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	var total int64
	for _, k := range metrics.SortedKeys(snap) {
		table.Append([]string{k, humanize.Comma(snap[k])})
		total += snap[k]
	}
	table.SetFooter([]string{"total", humanize.Comma(total)})
	table.Render()
}
