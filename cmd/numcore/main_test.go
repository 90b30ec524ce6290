package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	numcore_errors "numcore/internal"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	cmd := rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return out.Bytes(), err
}

func Test_percentCmd(t *testing.T) {
	t.Setenv("NUMCORE_LOCALE", "en")

	t.Run("parse", func(t *testing.T) {
		out, err := run(t, "percent", "parse", "2.35%")
		require.NoError(t, err)

		result := percentResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "2.35%", result.Percent)
		require.InDelta(t, 0.0235, result.Ratio, 1e-12)
	})

	t.Run("parse rejects missing digits", func(t *testing.T) {
		_, err := run(t, "percent", "parse", ".5%")
		require.ErrorIs(t, err, numcore_errors.ErrFormat)
	})

	t.Run("div", func(t *testing.T) {
		out, err := run(t, "percent", "div", "2", "8%")
		require.NoError(t, err)
		result := arithmeticResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "25", result.Result)

		out, err = run(t, "percent", "div", "2", "0%")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "+Inf", result.Result)

		_, err = run(t, "percent", "div", "--decimal", "2", "0%")
		require.ErrorIs(t, err, numcore_errors.ErrDivideByZero)
	})

	t.Run("add", func(t *testing.T) {
		out, err := run(t, "percent", "add", "--decimal", "7.5", "15%")
		require.NoError(t, err)
		result := arithmeticResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "8.625", result.Result)
	})

	t.Run("stats", func(t *testing.T) {
		out, err := run(t, "percent", "stats", "1%", "2%", "3%", "4%")
		require.NoError(t, err)
		result := statsResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, 4, result.Count)
		require.Equal(t, "2.5%", result.Mean)
		require.Equal(t, "2.5%", result.Median)
	})
}

func Test_percentCmd_locale(t *testing.T) {
	t.Setenv("NUMCORE_LOCALE", "de")

	out, err := run(t, "percent", "parse", "2,35%")
	require.NoError(t, err)
	result := percentResult{}
	require.NoError(t, json.Unmarshal(out, &result))
	require.Equal(t, "2,35%", result.Percent)

	_, err = run(t, "percent", "parse", "2.35%")
	require.ErrorIs(t, err, numcore_errors.ErrFormat)
}

func Test_intervalCmd(t *testing.T) {
	t.Setenv("NUMCORE_LOCALE", "en")

	t.Run("bounded", func(t *testing.T) {
		out, err := run(t, "interval", "classify", "--lower", "10", "--upper", "1", "0", "5", "11")
		require.NoError(t, err)

		result := classifyResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "", cmp.Diff(classifyResult{
			Interval: "[1,10]",
			Kind:     "bounded",
			Values: []classification{
				{Value: "0", Region: "before", Closest: strPtr("1")},
				{Value: "5", Region: "inside", Closest: strPtr("5")},
				{Value: "11", Region: "after", Closest: strPtr("10")},
			},
		}, result))
	})

	t.Run("none has no closest point", func(t *testing.T) {
		out, err := run(t, "interval", "classify", "--kind", "none", "3")
		require.NoError(t, err)

		result := classifyResult{}
		require.NoError(t, json.Unmarshal(out, &result))
		require.Equal(t, "", cmp.Diff([]classification{
			{Value: "3", Region: "outside"},
		}, result.Values))
	})

	t.Run("one sided aliases", func(t *testing.T) {
		for _, kind := range []string{"below", "unbounded-below"} {
			out, err := run(t, "interval", "classify", "--kind", kind, "--upper", "4", "9")
			require.NoError(t, err)

			result := classifyResult{}
			require.NoError(t, json.Unmarshal(out, &result))
			require.Equal(t, "(-∞,4]", result.Interval)
			require.Equal(t, "unbounded-below", result.Kind)
			require.Equal(t, "after", result.Values[0].Region)
		}

		for _, kind := range []string{"above", "unbounded-above"} {
			out, err := run(t, "interval", "classify", "--kind", kind, "--lower", "4", "1")
			require.NoError(t, err)

			result := classifyResult{}
			require.NoError(t, json.Unmarshal(out, &result))
			require.Equal(t, "[4,∞)", result.Interval)
			require.Equal(t, "before", result.Values[0].Region)
			require.Equal(t, "4", *result.Values[0].Closest)
		}
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := run(t, "interval", "classify", "--kind", "degenerate", "3")
		require.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := run(t, "interval", "classify", "--kind", "open", "3")
		require.Error(t, err)
	})
}

func strPtr(s string) *string {
	return &s
}
