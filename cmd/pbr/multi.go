package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/panjf2000/ants/v2"
	log "github.com/schollz/logger"
	"github.com/spf13/cobra"
	"github.com/vbauerster/pbr"
	"golang.org/x/sync/errgroup"
)

func newMultiCmd() *cobra.Command {
	var (
		numBars int
		count   uint64
		threads int
		delay   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Draw several bars driven by a worker pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if numBars <= 0 {
				return fmt.Errorf("invalid number of bars: %d", numBars)
			}
			if threads <= 0 {
				threads = numBars
			}
			return runMulti(cmd.Context(), numBars, threads, count, delay)
		},
	}

	cmd.Flags().IntVarP(&numBars, "bars", "b", 4, "number of bars")
	cmd.Flags().Uint64VarP(&count, "count", "n", 100, "total of every bar")
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "size of the worker pool, defaults to number of bars")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 50*time.Millisecond, "max delay between increments")

	return cmd
}

func runMulti(ctx context.Context, numBars, threads int, count uint64, delay time.Duration) error {
	m := pbr.NewMulti(pbr.WithDebugOutput(debugOutput()))
	m.Println("Multiple bars:")

	bars := make([]*pbr.Bar, numBars)
	for i := range bars {
		bars[i] = m.CreateBar(count,
			pbr.BarMessage(fmt.Sprintf("Bar#%d: ", i)),
			pbr.BarMaxRefreshRate(100*time.Millisecond),
		)
	}

	pool, err := ants.NewPool(threads)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	g, ctx := errgroup.WithContext(ctx)
	for i, bar := range bars {
		g.Go(func() error {
			done := make(chan struct{})
			if err := pool.Submit(func() {
				defer close(done)
				work(ctx, bar, count, delay)
			}); err != nil {
				_ = bar.FinishPrint(err.Error())
				return fmt.Errorf("submit task: %w", err)
			}
			<-done
			log.Debugf("bar %d done", i)
			return nil
		})
	}
	g.Go(func() error {
		return m.ListenContext(ctx)
	})
	return g.Wait()
}

func work(ctx context.Context, bar *pbr.Bar, count uint64, delay time.Duration) {
	for i := uint64(0); i < count; i++ {
		select {
		case <-ctx.Done():
			_ = bar.FinishPrint("canceled")
			return
		case <-time.After(time.Duration(rand.Int63n(int64(delay) + 1))):
		}
		bar.Inc()
	}
	_ = bar.Finish()
}
