package domain

import (
	"errors"
	"math"
	"testing"

	numcore_errors "numcore/internal"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func Test_Div(t *testing.T) {
	t.Run("2 divided by 8 percent", func(t *testing.T) {
		require.InDelta(t, 25, Div(2, Percent(8)), 0.0000000000001)
		require.InDelta(t, 25, Div(2.0, Percent(8)), 0.000001)
		require.InDelta(t, 25, Div(float32(2), Percent(8)), 0.000001)

		out, err := DivDecimal(dec(2), Percent(8))
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(25)), out.String())
	})

	t.Run("zero percent", func(t *testing.T) {
		require.True(t, math.IsInf(Div(2, Zero), 1))
		require.True(t, math.IsInf(Div(2.0, Zero), 1))

		_, err := DivDecimal(dec(2), Zero)
		require.ErrorIs(t, err, numcore_errors.ErrDivideByZero)
	})

	t.Run("large numerator", func(t *testing.T) {
		out := Div(1e307, Percent(1000))
		require.False(t, math.IsInf(out, 0))
		require.InEpsilon(t, 1e306, out, 1e-12)
		require.InEpsilon(t, math.MaxFloat64/2, Div(math.MaxFloat64, Percent(200)), 1e-12)
	})

	t.Run("matches ratio division", func(t *testing.T) {
		for _, n := range []float64{1, 3.7, -12, 1000} {
			for _, p := range []Percent{0.5, 8, 50, 130} {
				require.InDelta(t, n/(float64(p)/100), Div(n, p), 1e-9)
			}
		}
	})
}

func Test_Add(t *testing.T) {
	require.InDelta(t, 13, Add(10, Percent(30)), 0.000001)
	require.InDelta(t, 8.625, Add(7.5, Percent(15)), 0.000001)
	require.InDelta(t, 7, Sub(10, Percent(30)), 0.000001)
	require.InDelta(t, 3, Of(10, Percent(30)), 0.000001)

	out, err := AddDecimal(dec(10), Percent(30))
	require.NoError(t, err)
	require.True(t, out.Equal(dec(13)))

	out, err = SubDecimal(dec(10), Percent(30))
	require.NoError(t, err)
	require.True(t, out.Equal(dec(7)))

	out, err = OfDecimal(dec(7.5), Percent(15))
	require.NoError(t, err)
	require.True(t, out.Equal(dec(1.125)))
}

func Test_DecimalNotFinite(t *testing.T) {
	huge := FromDecimal(math.MaxFloat64)
	require.True(t, math.IsInf(float64(huge), 1))

	for _, p := range []Percent{huge, Percent(math.Inf(-1)), Percent(math.NaN())} {
		_, err := p.Decimal()
		require.ErrorIs(t, err, numcore_errors.ErrNotFinite)

		_, err = DivDecimal(dec(2), p)
		require.ErrorIs(t, err, numcore_errors.ErrNotFinite)
		_, err = AddDecimal(dec(2), p)
		require.ErrorIs(t, err, numcore_errors.ErrNotFinite)
		_, err = SubDecimal(dec(2), p)
		require.ErrorIs(t, err, numcore_errors.ErrNotFinite)
		_, err = OfDecimal(dec(2), p)
		require.ErrorIs(t, err, numcore_errors.ErrNotFinite)
	}
}

func Test_FromDecimal(t *testing.T) {
	t.Run("ratio times 100", func(t *testing.T) {
		for _, x := range []float64{0, 0.08, 0.25, 1, 1.3, 42} {
			require.True(t, FromDecimal(x).Equal(Percent(x*100)), x)
		}
	})

	t.Run("coefficient", func(t *testing.T) {
		require.True(t, FromCoefficient(1.3).Equal(Percent(30)))
		require.True(t, FromCoefficient(0.75).Equal(Percent(-25)))
	})

	t.Run("decimal ratio", func(t *testing.T) {
		require.True(t, FromDecimalRatio(dec(0.0235)).Equal(Percent(2.35)))
	})
}

func Test_Equal(t *testing.T) {
	require.True(t, Percent(10.0000000002).Equal(Percent(10)))
	require.False(t, Percent(10.002).Equal(Percent(10)))
	require.True(t, Percent(0.1+0.2).Equal(Percent(0.3)))
	require.True(t, Zero.IsZero())
}

func Test_Compare(t *testing.T) {
	require.True(t, Percent(25).Less(Percent(50)))
	require.True(t, Percent(7).Greater(Percent(-10)))
	require.Equal(t, -1, Percent(25).Compare(Percent(50)))
	require.Equal(t, 1, Percent(7).Compare(Percent(-10)))
	require.Equal(t, 0, Percent(3).Compare(Percent(3)))

	// ordering ignores the equality tolerance
	require.True(t, Percent(10).Less(Percent(10.0000000002)))
	require.Equal(t, Percent(12), Percent(-12).Abs())
}

func Test_PercentData(t *testing.T) {
	data := PercentData{1, 2, 3, 4}

	require.Equal(t, "", cmp.Diff([]float64{1, 2, 3, 4}, []float64(data.ToStatsData())))

	mean, err := data.Mean()
	require.NoError(t, err)
	require.True(t, mean.Equal(Percent(2.5)))

	median, err := data.Median()
	require.NoError(t, err)
	require.True(t, median.Equal(Percent(2.5)))

	stdev, err := data.StandardDeviation()
	require.NoError(t, err)
	require.InDelta(t, 1.2909944, stdev.AsPercent(), 0.000001)

	_, err = PercentData{}.Mean()
	require.Error(t, err)
	require.False(t, errors.Is(err, numcore_errors.ErrFormat))
}
