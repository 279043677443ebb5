package main

import (
	"github.com/spf13/cobra"

	"github.com/tenheadedlion/contemplate/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}
