package cli

import (
	"fmt"
	"os"

	"github.com/interpretive-systems/delog/internal/filter"
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "delog",
		Short: "Clean cursor-position codes from terminal captures",
		Long:  "Delog: Strip ESC[row;colH cursor moves from captured terminal output and trim each line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return filter.Run(os.Stdin, os.Stdout)
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}
