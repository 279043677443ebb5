package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tenheadedlion/contemplate/internal/messages"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := defaultRegistry()
			if err != nil {
				return fmt.Errorf(messages.NewRegistryLoadError, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			header := color.New(color.Bold)
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				header.Sprint(messages.ListHeaderName),
				header.Sprint(messages.ListHeaderURL),
				header.Sprint(messages.ListHeaderBranch),
				header.Sprint(messages.ListHeaderSubdir))

			for _, id := range reg.Names() {
				entry, err := reg.Resolve(id)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, entry.URL, entry.Branch, entry.Subdir)
			}
			return w.Flush()
		},
	}
}
