package main

import (
	"fmt"
	"strconv"

	"numcore/internal/domain"
	"numcore/internal/util"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type percentResult struct {
	Input   string  `json:"input"`
	Percent string  `json:"percent"`
	Ratio   float64 `json:"ratio"`
}

type arithmeticResult struct {
	Numerator string `json:"numerator"`
	Percent   string `json:"percent"`
	Result    string `json:"result"`
}

type statsResult struct {
	Count  int    `json:"count"`
	Mean   string `json:"mean"`
	Median string `json:"median"`
	Stdev  string `json:"stdev"`
}

func percentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percent",
		Short: "Parse percents and apply them to numbers",
	}
	cmd.AddCommand(
		percentParseCmd(a),
		percentArithmeticCmd(a, "div", "Divide a number by a percent", domain.Div[float64], domain.DivDecimal),
		percentArithmeticCmd(a, "add", "Increase a number by a percent of itself", domain.Add[float64], domain.AddDecimal),
		percentArithmeticCmd(a, "sub", "Decrease a number by a percent of itself", domain.Sub[float64], domain.SubDecimal),
		percentStatsCmd(a),
	)
	return cmd
}

func percentParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <percent>",
		Short: "Parse a percent such as 2.35%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.Parse(args[0], a.format)
			if err != nil {
				return err
			}
			return util.Pprint(cmd.OutOrStdout(), percentResult{
				Input:   args[0],
				Percent: p.FormatWith(a.format),
				Ratio:   p.Ratio(),
			})
		},
	}
}

func percentArithmeticCmd(
	a *app,
	use, short string,
	floatOp func(float64, domain.Percent) float64,
	decimalOp func(decimal.Decimal, domain.Percent) (decimal.Decimal, error),
) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   use + " <number> <percent>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.Parse(args[1], a.format)
			if err != nil {
				return err
			}

			var result string
			if exact {
				n, err := decimal.NewFromString(args[0])
				if err != nil {
					return fmt.Errorf("invalid decimal %q: %w", args[0], err)
				}
				out, err := decimalOp(n, p)
				if err != nil {
					return fmt.Errorf("failed to %s %s by %s: %w", use, args[0], args[1], err)
				}
				result = out.String()
			} else {
				n, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", args[0], err)
				}
				result = strconv.FormatFloat(floatOp(n, p), 'f', -1, 64)
			}

			a.logger.Debug().
				Str("op", use).
				Bool("decimal", exact).
				Str("result", result).
				Msg("computed")

			return util.Pprint(cmd.OutOrStdout(), arithmeticResult{
				Numerator: args[0],
				Percent:   p.FormatWith(a.format),
				Result:    result,
			})
		},
	}
	cmd.Flags().BoolVar(&exact, "decimal", false, "use exact decimal arithmetic")
	return cmd
}

func percentStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <percent>...",
		Short: "Summarize a series of percents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make(domain.PercentData, 0, len(args))
			for _, arg := range args {
				p, err := domain.Parse(arg, a.format)
				if err != nil {
					return err
				}
				data = append(data, p)
			}

			mean, err := data.Mean()
			if err != nil {
				return err
			}
			median, err := data.Median()
			if err != nil {
				return err
			}
			out := statsResult{
				Count:  len(data),
				Mean:   mean.FormatWith(a.format),
				Median: median.FormatWith(a.format),
			}
			if len(data) > 1 {
				stdev, err := data.StandardDeviation()
				if err != nil {
					return err
				}
				out.Stdev = stdev.FormatWith(a.format)
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
}
