// Package commands holds the complexdemo command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/complexnum/pkg/complexnum"
	"github.com/mmynk/complexnum/pkg/logging"
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the root command. It prints 1 - (1+2i).
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "complexdemo",
		Short:         "Print 1 - Complex(1, 2)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupWriter(cmd.ErrOrStderr(), logging.LevelFromEnv())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := complexnum.New(1, 2)
			result, err := c.ReverseSub(1)
			if err != nil {
				return err
			}
			slog.Debug("Computed result", "lhs", 1, "rhs", c.GoString(), "result", result.String())
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	return cmd
}
