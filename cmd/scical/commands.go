package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gosci/gosci/special"
	"github.com/gosci/gosci/special/cmplx"
)

type options struct {
	verbose bool
	digits  int
	log     *zap.Logger
}

func (o *options) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', o.digits, 64)
}

func (o *options) formatComplex(v complex128) string {
	return strconv.FormatComplex(v, 'g', o.digits, 128)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "scical",
		Short:         "Evaluate special mathematical functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			opts.log = log
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&opts.digits, "digits", "d", -1, "significant digits in output (-1 for shortest exact)")

	root.AddCommand(
		newRealCmd(opts, "gamma", "Gamma function Γ(x)", special.Gamma[float64]),
		newRealCmd(opts, "lngamma", "Natural log of |Γ(x)|", special.LnGamma[float64]),
		newRealCmd(opts, "gammasgn", "Sign of Γ(x)", special.GammaSgn[float64]),
		newRealCmd(opts, "rgamma", "Reciprocal Gamma 1/Γ(x)", special.RGamma[float64]),
		newRealCmd(opts, "erf", "Error function erf(x)", special.Erf[float64]),
		newRealCmd(opts, "erfc", "Complementary error function erfc(x)", special.Erfc[float64]),
		newPochCmd(opts),
		newComplexCmd(opts, "cgamma", "Complex Gamma Γ(z)", cmplx.Gamma[complex128]),
		newComplexCmd(opts, "clngamma", "Complex principal log-Gamma", cmplx.LnGamma[complex128]),
		newFactorialCmd(opts),
		newChooseCmd(opts),
		newPermCmd(opts),
		newSequenceCmd(opts, "bernoulli", "First n+1 Bernoulli numbers as exact rationals",
			func(n int) []fmt.Stringer {
				rats := special.Bernoulli(n)
				out := make([]fmt.Stringer, len(rats))
				for i, r := range rats {
					out[i] = r
				}
				return out
			}),
		newSequenceCmd(opts, "tangent", "First n tangent (zag) numbers", bigSeq(special.Tangent)),
		newSequenceCmd(opts, "secant", "Secant (zig) numbers S_0..S_n", bigSeq(special.Secant)),
	)
	return root
}

func bigSeq(gen func(int) []*big.Int) func(int) []fmt.Stringer {
	return func(n int) []fmt.Stringer {
		ints := gen(n)
		out := make([]fmt.Stringer, len(ints))
		for i, v := range ints {
			out[i] = v
		}
		return out
	}
}

func newRealCmd(opts *options, use, short string, fn func(float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use + " x [x...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				y := fn(x)
				opts.log.Debug("evaluated", zap.String("fn", use), zap.Float64("x", x), zap.Float64("y", y))
				fmt.Fprintln(cmd.OutOrStdout(), opts.formatFloat(y))
			}
			return nil
		},
	}
}

func newComplexCmd(opts *options, use, short string, fn func(complex128) complex128) *cobra.Command {
	return &cobra.Command{
		Use:   use + " z [z...]",
		Short: short + " (z as a+bi, e.g. 1.5+2i)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				z, err := strconv.ParseComplex(arg, 128)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), opts.formatComplex(fn(z)))
			}
			return nil
		},
	}
}

func newPochCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "poch x m",
		Short: "Pochhammer symbol Γ(x+m)/Γ(x)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			m, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.formatFloat(special.Poch(x, m)))
			return nil
		},
	}
}

func newFactorialCmd(opts *options) *cobra.Command {
	var step uint64
	var exact bool
	cmd := &cobra.Command{
		Use:   "factorial n",
		Short: "Factorial n!, double factorial, or k-step factorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			if step == 0 {
				return fmt.Errorf("--step must be positive")
			}
			if exact {
				if step != 1 {
					return fmt.Errorf("--big supports only --step 1")
				}
				fmt.Fprintln(cmd.OutOrStdout(), special.BigFactorial(n).String())
				return nil
			}
			v, ok := special.CheckedFactorialK(n, step)
			if !ok {
				return fmt.Errorf("factorial of %d with step %d overflows uint64 (try --big)", n, step)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().Uint64VarP(&step, "step", "k", 1, "factorial step (1 plain, 2 double)")
	cmd.Flags().BoolVar(&exact, "big", false, "exact arbitrary-precision result")
	return cmd
}

func newChooseCmd(opts *options) *cobra.Command {
	var rep bool
	cmd := &cobra.Command{
		Use:   "choose n k",
		Short: "Binomial coefficient C(n, k)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, k, err := parseInt64Pair(args)
			if err != nil {
				return err
			}
			var v int64
			var ok bool
			if rep {
				v, ok = special.CheckedChooseRep(n, k)
			} else {
				v, ok = special.CheckedChoose(n, k)
			}
			if !ok {
				return fmt.Errorf("choose(%d, %d) overflows int64", n, k)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rep, "rep", false, "count multisets (combinations with repetition)")
	return cmd
}

func newPermCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "perm n k",
		Short: "Number of k-permutations of n items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, k, err := parseInt64Pair(args)
			if err != nil {
				return err
			}
			v, ok := special.CheckedPerm(n, k)
			if !ok {
				return fmt.Errorf("perm(%d, %d) overflows int64", n, k)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newSequenceCmd(opts *options, use, short string, gen func(int) []fmt.Stringer) *cobra.Command {
	return &cobra.Command{
		Use:   use + " n",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			if n < 0 {
				return fmt.Errorf("sequence length must be non-negative, got %d", n)
			}
			for _, v := range gen(n) {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}
}

func parseInt64Pair(args []string) (int64, int64, error) {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", args[0], err)
	}
	k, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing %q: %w", args[1], err)
	}
	return n, k, nil
}
