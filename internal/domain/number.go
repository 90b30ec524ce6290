package domain

import (
	"math"

	numcore_errors "numcore/internal"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// typed numbers that carry the unit they represent.
// a Percent stores the percentage itself, so
// Percent(25) is 25% and its ratio is 0.25

type Percent float64

const Zero Percent = 0

// differences below this are floating point noise
const percentEpsilon = 1e-9

var hundred = decimal.NewFromInt(100)

type Number interface {
	constraints.Integer | constraints.Float
}

// FromDecimal builds a percent from a ratio, so 0.25 becomes 25%.
func FromDecimal(ratio float64) Percent {
	return Percent(ratio * 100)
}

// FromCoefficient turns a growth coefficient into the
// percent increase it represents, so 1.3 becomes 30%.
func FromCoefficient(coefficient float64) Percent {
	return Percent((coefficient - 1) * 100)
}

func FromDecimalRatio(ratio decimal.Decimal) Percent {
	f, _ := ratio.Mul(hundred).Float64()
	return Percent(f)
}

func (p Percent) Ratio() float64 {
	return float64(p) / 100
}

func (p Percent) AsPercent() float64 {
	return float64(p)
}

// Decimal fails for infinite and NaN magnitudes, which
// decimals cannot hold.
func (p Percent) Decimal() (decimal.Decimal, error) {
	if math.IsInf(float64(p), 0) || math.IsNaN(float64(p)) {
		return decimal.Zero, numcore_errors.ErrNotFinite
	}
	return decimal.NewFromFloat(float64(p)), nil
}

func (p Percent) Abs() Percent {
	return Percent(math.Abs(float64(p)))
}

func (p Percent) IsZero() bool {
	return p.Equal(Zero)
}

// Equal compares magnitudes within percentEpsilon.
func (p Percent) Equal(o Percent) bool {
	return math.Abs(float64(p)-float64(o)) < percentEpsilon
}

// Compare orders raw magnitudes, no tolerance applied.
func (p Percent) Compare(o Percent) int {
	switch {
	case p < o:
		return -1
	case p > o:
		return 1
	default:
		return 0
	}
}

func (p Percent) Less(o Percent) bool {
	return p < o
}

func (p Percent) Greater(o Percent) bool {
	return p > o
}

// Div computes n / p treating p as its ratio. Dividing by
// Zero follows float division and yields an infinity.
func Div[N Number](n N, p Percent) float64 {
	return float64(n) / p.Ratio()
}

// Add returns n increased by p percent of itself.
func Add[N Number](n N, p Percent) float64 {
	x := float64(n)
	return x + x*p.Ratio()
}

// Sub returns n decreased by p percent of itself.
func Sub[N Number](n N, p Percent) float64 {
	x := float64(n)
	return x - x*p.Ratio()
}

// Of returns p percent of n.
func Of[N Number](n N, p Percent) float64 {
	return float64(n) * p.Ratio()
}

// DivDecimal is the exact counterpart of Div. Decimals have
// no infinity so dividing by Zero is an error.
func DivDecimal(n decimal.Decimal, p Percent) (decimal.Decimal, error) {
	d, err := p.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsZero() {
		return decimal.Zero, numcore_errors.ErrDivideByZero
	}
	return n.Mul(hundred).Div(d), nil
}

func AddDecimal(n decimal.Decimal, p Percent) (decimal.Decimal, error) {
	of, err := OfDecimal(n, p)
	if err != nil {
		return decimal.Zero, err
	}
	return n.Add(of), nil
}

func SubDecimal(n decimal.Decimal, p Percent) (decimal.Decimal, error) {
	of, err := OfDecimal(n, p)
	if err != nil {
		return decimal.Zero, err
	}
	return n.Sub(of), nil
}

func OfDecimal(n decimal.Decimal, p Percent) (decimal.Decimal, error) {
	d, err := p.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	return n.Mul(d).Div(hundred), nil
}

type PercentData []Percent

func (pd PercentData) ToStatsData() stats.Float64Data {
	out := make(stats.Float64Data, len(pd))
	for i, n := range pd {
		out[i] = n.AsPercent()
	}
	return out
}

func (pd PercentData) Mean() (Percent, error) {
	m, err := stats.Mean(pd.ToStatsData())
	return Percent(m), err
}

func (pd PercentData) Median() (Percent, error) {
	m, err := stats.Median(pd.ToStatsData())
	return Percent(m), err
}

func (pd PercentData) StandardDeviation() (Percent, error) {
	s, err := stats.StandardDeviationSample(pd.ToStatsData())
	return Percent(s), err
}
