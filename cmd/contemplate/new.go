package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tenheadedlion/contemplate/internal/gitfetch"
	"github.com/tenheadedlion/contemplate/internal/messages"
	"github.com/tenheadedlion/contemplate/internal/pipeline"
	"github.com/tenheadedlion/contemplate/internal/progress"
	"github.com/tenheadedlion/contemplate/internal/registry"
	"github.com/tenheadedlion/contemplate/internal/terminal"
	"github.com/tenheadedlion/contemplate/internal/wizard"
)

// Seams for tests; production values are the real implementations.
var (
	defaultRegistry  = registry.Default
	runPipeline      = pipeline.Run
	isInteractive    = terminal.IsInteractive
	stderrIsTerminal = terminal.StderrIsTerminal

	newFetcher = func() pipeline.Fetcher { return gitfetch.New() }
	runPicker  = func(reg *registry.Registry) (string, string, error) {
		return wizard.Run(reg, wizard.NewHuhUI())
	}
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Long:  messages.NewLong,
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := defaultRegistry()
			if err != nil {
				return fmt.Errorf(messages.NewRegistryLoadError, err)
			}

			var id, dest string
			switch len(args) {
			case 2:
				id, dest = args[0], args[1]
			case 0:
				if !isInteractive() {
					return errors.New(messages.NewRequiresTerminal)
				}
				id, dest, err = runPicker(reg)
				if err != nil {
					return err
				}
			default:
				return errors.New(messages.NewArgsRequired)
			}

			var sink progress.Sink = progress.Discard{}
			rendering := stderrIsTerminal()
			if rendering {
				sink = progress.NewRenderer(cmd.ErrOrStderr())
			}

			err = runPipeline(cmd.Context(), id, dest, pipeline.Deps{
				Registry: reg,
				Fetcher:  newFetcher(),
				Sink:     sink,
				Info:     cmd.OutOrStdout(),
			})
			if rendering {
				// The renderer leaves the cursor on an overwritten line.
				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), messages.NewDoneFmt, dest)
			return nil
		},
	}
}
