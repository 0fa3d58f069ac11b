package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ratapprox/farey"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// searchFlags are the flags common to bracket and nearest.
type searchFlags struct {
	maxDen uint64
	mixed  bool
}

// newRootCmd builds the command tree. A non-nil logger replaces the one
// normally built from the --verbose flag.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "ratapprox",
		Short: "Best rational approximations with a bounded denominator",
		Long: `ratapprox finds the fractions with denominator ≤ --max-den that lie
closest below and above a target NUM/DEN, by walking the Stern–Brocot tree.

Targets must lie in [0, 1] unless --mixed is given, in which case the integer
part is split off first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every search round")

	root.AddCommand(a.bracketCmd(), a.nearestCmd())
	return root
}

func bindSearchFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().Uint64Var(&f.maxDen, "max-den", 0, "largest allowed denominator (required)")
	cmd.Flags().BoolVar(&f.mixed, "mixed", false, "allow targets above one by splitting off the integer part")
	_ = cmd.MarkFlagRequired("max-den")
}

// bracketCmd prints both neighbours of the target.
func (a *app) bracketCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "bracket NUM DEN",
		Short: "Print the closest fractions below and above NUM/DEN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, den, err := parseTarget(args)
			if err != nil {
				return err
			}

			closest := farey.Closest[uint64]
			if f.mixed {
				closest = farey.ClosestMixed[uint64]
			}
			lo, hi, err := closest(num, den, f.maxDen, a.traceRounds())
			if err != nil {
				return fmt.Errorf("bracket %d/%d: %w", num, den, err)
			}

			a.logger.Debug("bracket found",
				zap.String("target", formatFraction(farey.Fraction[uint64]{Num: num, Den: den})),
				zap.Uint64("max_den", f.maxDen),
				zap.String("lower", formatFraction(lo)),
				zap.String("upper", formatFraction(hi)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "lower=%s upper=%s\n", formatFraction(lo), formatFraction(hi))
			return err
		},
	}
	bindSearchFlags(cmd, &f)
	return cmd
}

// nearestCmd prints the single closest fraction.
func (a *app) nearestCmd() *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "nearest NUM DEN",
		Short: "Print the fraction closest to NUM/DEN (ties go to the lower one)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, den, err := parseTarget(args)
			if err != nil {
				return err
			}

			nearest := farey.Nearest[uint64]
			if f.mixed {
				nearest = farey.NearestMixed[uint64]
			}
			got, err := nearest(num, den, f.maxDen, a.traceRounds())
			if err != nil {
				return fmt.Errorf("nearest %d/%d: %w", num, den, err)
			}

			a.logger.Debug("nearest found",
				zap.String("target", formatFraction(farey.Fraction[uint64]{Num: num, Den: den})),
				zap.Uint64("max_den", f.maxDen),
				zap.String("result", formatFraction(got)),
				zap.Float64("error", got.Float64()-float64(num)/float64(den)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatFraction(got))
			return err
		},
	}
	bindSearchFlags(cmd, &f)
	return cmd
}

// traceRounds logs each squeeze round at debug level.
func (a *app) traceRounds() farey.Option[uint64] {
	return farey.WithOnRound(func(round int, lo, hi farey.Fraction[uint64]) {
		a.logger.Debug("squeeze round",
			zap.Int("round", round),
			zap.String("lower", formatFraction(lo)),
			zap.String("upper", formatFraction(hi)))
	})
}

func parseTarget(args []string) (num, den uint64, err error) {
	if num, err = strconv.ParseUint(args[0], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid NUM %q: %w", args[0], err)
	}
	if den, err = strconv.ParseUint(args[1], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid DEN %q: %w", args[1], err)
	}
	return num, den, nil
}

func formatFraction(f farey.Fraction[uint64]) string {
	return strconv.FormatUint(f.Num, 10) + "/" + strconv.FormatUint(f.Den, 10)
}
