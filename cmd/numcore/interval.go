package main

import (
	"fmt"

	"numcore/internal/interval"
	"numcore/internal/util"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type classification struct {
	Value   string  `json:"value"`
	Region  string  `json:"region"`
	Closest *string `json:"closest"`
}

type classifyResult struct {
	Interval string           `json:"interval"`
	Kind     string           `json:"kind"`
	Values   []classification `json:"values"`
}

func intervalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Classify numbers against an interval",
	}
	cmd.AddCommand(intervalClassifyCmd(a))
	return cmd
}

func intervalClassifyCmd(a *app) *cobra.Command {
	var kind, lower, upper string
	cmd := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Report where each value falls and its closest point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := buildInterval(kind, lower, upper)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("interval", i.String()).Msg("built interval")

			out := classifyResult{
				Interval: i.String(),
				Kind:     i.Kind().String(),
			}
			for _, arg := range args {
				v, err := decimal.NewFromString(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				c := classification{
					Value:  v.String(),
					Region: interval.Classify(i, v).String(),
				}
				if closest, ok := interval.ClosestOK(i, v); ok {
					c.Closest = util.StringPtr(closest.String())
				}
				out.Values = append(out.Values, c)
			}
			return util.Pprint(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", interval.KindBounded.String(), "bounded, unbounded-below (below), unbounded-above (above), degenerate, any or none")
	cmd.Flags().StringVar(&lower, "lower", "", "lower endpoint of bounded, unbounded-above and degenerate intervals")
	cmd.Flags().StringVar(&upper, "upper", "", "upper endpoint of bounded and unbounded-below intervals")
	return cmd
}

func buildInterval(kind, lower, upper string) (interval.Interval[decimal.Decimal], error) {
	endpoint := func(name, s string) (decimal.Decimal, error) {
		if s == "" {
			return decimal.Zero, fmt.Errorf("--%s is required for %s intervals", name, kind)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, s, err)
		}
		return d, nil
	}

	switch kind {
	case interval.KindAny.String():
		return interval.Any[decimal.Decimal]{}, nil
	case interval.KindNone.String():
		return interval.None[decimal.Decimal]{}, nil
	case interval.KindBounded.String():
		lo, err := endpoint("lower", lower)
		if err != nil {
			return nil, err
		}
		hi, err := endpoint("upper", upper)
		if err != nil {
			return nil, err
		}
		return interval.NewBoundedFunc(lo, hi, interval.DecimalOrder), nil
	case interval.KindUnboundedBelow.String(), "below":
		// (-∞,e] is bounded by its upper end
		e, err := endpoint("upper", upper)
		if err != nil {
			return nil, err
		}
		return interval.NewUnboundedBelowFunc(e, interval.DecimalOrder), nil
	case interval.KindUnboundedAbove.String(), "above":
		e, err := endpoint("lower", lower)
		if err != nil {
			return nil, err
		}
		return interval.NewUnboundedAboveFunc(e, interval.DecimalOrder), nil
	case interval.KindDegenerate.String():
		e, err := endpoint("lower", lower)
		if err != nil {
			return nil, err
		}
		return interval.NewDegenerateFunc(e, interval.DecimalOrder), nil
	default:
		return nil, fmt.Errorf("unknown interval kind %q", kind)
	}
}
