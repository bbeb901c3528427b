package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/aoc/pkg/answers"
	"github.com/Sumatoshi-tech/aoc/pkg/observability"
)

// ErrAnswerMismatch is returned when at least one answer differs.
var ErrAnswerMismatch = errors.New("answers differ")

func newCheckCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <answers.yaml>",
		Short: "Compare answers with an expected answers file",
		Long: `Solve every day listed in the answers file and compare each part.

The file is YAML:

  answers:
    - day: 1
      part1: 3
      part2: 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, opts *Options, path string) (err error) {
	expected, err := answers.Load(path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	s, err := openSession(ctx, cmd, opts, observability.ModeCheck)
	if err != nil {
		return err
	}

	defer func() { err = s.close(ctx, err) }()

	results, err := s.solve(ctx, expected.Days())
	if err != nil {
		return err
	}

	outcomes := answers.Compare(expected, results)

	err = printOutcomes(cmd.OutOrStdout(), outcomes, !s.cfg.Output.NoColor)
	if err != nil {
		return err
	}

	failed := answers.Failed(outcomes)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrAnswerMismatch, failed, len(outcomes))
	}

	return nil
}

func printOutcomes(w io.Writer, outcomes []answers.Outcome, colored bool) error {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	if !colored {
		pass.DisableColor()
		fail.DisableColor()
	} else {
		pass.EnableColor()
		fail.EnableColor()
	}

	for _, o := range outcomes {
		var err error

		label := fmt.Sprintf("Day %d part %d", o.Day, o.Part)

		switch {
		case o.Pass():
			_, err = pass.Fprintf(w, "%s: ok (%d)\n", label, o.Got)
		case !o.Found:
			_, err = fail.Fprintf(w, "%s: missing, want %d\n", label, o.Want)
		default:
			want := strconv.FormatInt(o.Want, 10)
			got := strconv.FormatInt(o.Got, 10)
			_, err = fail.Fprintf(w, "%s: want %s, got %s (%s)\n", label, want, got, answers.Diff(want, got, colored))
		}

		if err != nil {
			return fmt.Errorf("write outcome: %w", err)
		}
	}

	return nil
}
