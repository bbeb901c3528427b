package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/aoc/pkg/observability"
)

func newListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			s, err := openSession(ctx, cmd, opts, observability.ModeList)
			if err != nil {
				return err
			}

			defer func() { err = s.close(ctx, err) }()

			return s.renderer.Days(cmd.OutOrStdout(), s.registry.All())
		},
	}
}
