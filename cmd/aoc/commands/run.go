package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/aoc/pkg/observability"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

func newRunCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve puzzles",
		Long:  "Solve the given days, or every registered day when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			return runDays(cmd, opts, days)
		},
	}
}

func runDays(cmd *cobra.Command, opts *Options, days []int) (err error) {
	ctx := cmd.Context()

	s, err := openSession(ctx, cmd, opts, observability.ModeRun)
	if err != nil {
		return err
	}

	defer func() { err = s.close(ctx, err) }()

	results, err := s.solve(ctx, days)
	if err != nil {
		return err
	}

	return s.renderer.Results(cmd.OutOrStdout(), results)
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))

	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day <= 0 {
			return nil, fmt.Errorf("%w: %q", puzzle.ErrInvalidDay, arg)
		}

		days = append(days, day)
	}

	return days, nil
}
