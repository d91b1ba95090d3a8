package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/schollz/logger"
	"github.com/spf13/cobra"
	"github.com/vbauerster/pbr"
	"github.com/vbauerster/pbr/decor"
)

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy a file showing transferred bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return copyFile(args[0], args[1])
		},
	}
	return cmd
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	log.Debugf("copying %d bytes from %s to %s", fi.Size(), src, dst)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if e := out.Close(); err == nil && e != nil {
			err = fmt.Errorf("close destination: %w", e)
		}
	}()

	bar := pbr.New(uint64(fi.Size()),
		pbr.BarUnits(decor.UnitsBytes),
		pbr.BarMaxRefreshRate(100*time.Millisecond),
		pbr.BarSpeedAverage(decor.NewMedianEwma()),
		pbr.BarMessage(filepath.Base(src)+" "),
	)
	if _, err := io.Copy(out, bar.ProxyReader(in)); err != nil {
		_ = bar.FinishPrintln("failed")
		return fmt.Errorf("copy: %w", err)
	}
	return bar.FinishPrintln(fmt.Sprintf("copied %s to %s", src, dst))
}
