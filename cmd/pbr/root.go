package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	log "github.com/schollz/logger"
	"github.com/spf13/cobra"
)

var (
	rootCmd *cobra.Command
	debug   bool
)

func init() {
	cobra.EnableCommandSorting = false

	rootCmd = &cobra.Command{
		Use:           "pbr",
		Short:         "Draw terminal progress bars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel("debug")
			} else {
				log.SetLevel("warn")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print debug messages and errors of the bars")

	rootCmd.AddCommand(
		newSingleCmd(),
		newMultiCmd(),
		newCopyCmd(),
		newNpmCmd(),
	)
}

func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// debugOutput is where Multi reports its errors.
func debugOutput() io.Writer {
	if debug {
		return os.Stderr
	}
	return io.Discard
}
