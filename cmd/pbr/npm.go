package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/vbauerster/pbr"
)

func newNpmCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "npm",
		Short: "Draw npm like bar with a tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			bar := pbr.New(uint64(count*10),
				pbr.BarTickFormat("\\|/-"),
				pbr.BarFormat("|#--|"),
				pbr.BarShow(pbr.SegmentTick),
				pbr.BarHide(pbr.SegmentSpeed, pbr.SegmentPercent, pbr.SegmentCounter, pbr.SegmentTimeLeft),
			)
			bar.Inc()
			ctx := cmd.Context()
			for i := 0; i < count; i++ {
				bar.SetMessage("normalize -> thing ")
				for j := 0; j < 10; j++ {
					if err := sleep(ctx.Done(), 80*time.Millisecond); err != nil {
						return err
					}
					bar.Tick()
				}
				bar.SetMessage("fuzz -> tree       ")
				for j := 0; j < 10; j++ {
					if err := sleep(ctx.Done(), 80*time.Millisecond); err != nil {
						return err
					}
					bar.Inc()
				}
			}
			return bar.FinishPrintln("done!")
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 30, "number of rounds")
	return cmd
}

var errInterrupted = errors.New("interrupted")

func sleep(done <-chan struct{}, d time.Duration) error {
	select {
	case <-done:
		return errInterrupted
	case <-time.After(d):
		return nil
	}
}
