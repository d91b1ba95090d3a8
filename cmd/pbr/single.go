package main

import (
	"time"

	log "github.com/schollz/logger"
	"github.com/spf13/cobra"
	"github.com/vbauerster/pbr"
)

func newSingleCmd() *cobra.Command {
	var (
		count   uint64
		delay   time.Duration
		format  string
		rate    time.Duration
		width   int
		message string
	)
	cmd := &cobra.Command{
		Use:   "single",
		Short: "Draw a single bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			bar := pbr.New(count,
				pbr.BarFormat(format),
				pbr.BarMaxRefreshRate(rate),
				pbr.BarWidth(width),
				pbr.BarOptOn(pbr.BarMessage(message), func() bool { return message != "" }),
			)
			log.Debugf("count %d, delay %s, refresh rate %s", count, delay, rate)
			ctx := cmd.Context()
			for i := uint64(0); i < count; i++ {
				select {
				case <-ctx.Done():
					_ = bar.FinishPrintln("interrupted")
					return ctx.Err()
				case <-time.After(delay):
				}
				bar.Inc()
			}
			return bar.FinishPrintln("The end!")
		},
	}

	cmd.Flags().Uint64VarP(&count, "count", "n", 1000, "total of the bar")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 3*time.Millisecond, "delay between increments")
	cmd.Flags().StringVarP(&format, "format", "f", pbr.DefaultFormat, "bar glyphs: start, fill, tip, empty and end")
	cmd.Flags().DurationVarP(&rate, "rate", "r", 0, "max refresh rate of the bar, 0 means every increment")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "width of the line, 0 means terminal width")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message in front of the bar")

	return cmd
}
