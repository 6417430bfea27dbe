// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/funk"
)

func TestResultAccessors(t *testing.T) {
	ok := funk.Ok[int, string](5)
	bad := funk.Err[int]("boom")

	require.True(t, ok.IsOk())
	require.False(t, ok.IsErr())
	require.False(t, bad.IsOk())
	require.True(t, bad.IsErr())

	v, present := ok.Get()
	require.True(t, present)
	require.Equal(t, 5, v)

	_, present = bad.Get()
	require.False(t, present)

	e, present := bad.GetErr()
	require.True(t, present)
	require.Equal(t, "boom", e)

	_, present = ok.GetErr()
	require.False(t, present)
}

func TestResultMatch(t *testing.T) {
	describe := func(r funk.Result[int, string]) string {
		return funk.MatchResult(r,
			func(x int) string { return strconv.Itoa(x) },
			func(e string) string { return "error: " + e },
		)
	}

	require.Equal(t, "5", describe(funk.Ok[int, string](5)))
	require.Equal(t, "error: boom", describe(funk.Err[int]("boom")))
}

func TestResultMap(t *testing.T) {
	require.Equal(t, funk.Ok[int, string](6), funk.MapResult(funk.Ok[int, string](5), addOne))
	require.Equal(t, funk.Err[int]("boom"), funk.MapResult(funk.Err[int]("boom"), addOne))
}

func TestResultMapErr(t *testing.T) {
	require.Equal(t, funk.Err[int]("BOOM"), funk.MapErrResult(funk.Err[int]("boom"), strings.ToUpper))
	require.Equal(t, funk.Ok[int, string](5), funk.MapErrResult(funk.Ok[int, string](5), strings.ToUpper))
}

func TestResultApply(t *testing.T) {
	require.Equal(t, funk.Ok[int, string](6),
		funk.ApplyResult(funk.Ok[int, string](5), funk.Ok[func(int) int, string](addOne)))

	require.Equal(t, funk.Err[int]("no value"),
		funk.ApplyResult(funk.Err[int]("no value"), funk.Ok[func(int) int, string](addOne)))

	require.Equal(t, funk.Err[int]("no function"),
		funk.ApplyResult(funk.Ok[int, string](5), funk.Err[func(int) int]("no function")))

	// With errors on both sides the value side is checked first.
	require.Equal(t, funk.Err[int]("no value"),
		funk.ApplyResult(funk.Err[int]("no value"), funk.Err[func(int) int]("no function")))
}

func TestResultBindChain(t *testing.T) {
	got := funk.BindResult(
		funk.BindResult(funk.Ok[int, string](5), func(x int) funk.Result[int, string] {
			return funk.Ok[int, string](x * 2)
		}),
		func(int) funk.Result[int, string] { return funk.Err[int]("boom") },
	)
	require.Equal(t, funk.Err[int]("boom"), got)

	// The error propagates without running later steps.
	ran := false
	got = funk.BindResult(got, func(x int) funk.Result[int, string] {
		ran = true
		return funk.Ok[int, string](x)
	})
	require.Equal(t, funk.Err[int]("boom"), got)
	require.False(t, ran)
}

func TestResultBimap(t *testing.T) {
	double := funk.BimapResult(funk.Ok[int, string](5), multiplyByTwo, strings.ToUpper)
	require.Equal(t, funk.Ok[int, string](10), double)

	upper := funk.BimapResult(funk.Err[int]("boom"), multiplyByTwo, strings.ToUpper)
	require.Equal(t, funk.Err[int]("BOOM"), upper)
}

func TestResultFirstSecond(t *testing.T) {
	require.Equal(t, funk.Ok[int, string](10), funk.FirstResult(funk.Ok[int, string](5), multiplyByTwo))
	require.Equal(t, funk.Err[int]("boom"), funk.FirstResult(funk.Err[int]("boom"), multiplyByTwo))

	require.Equal(t, funk.Ok[int, string](5), funk.SecondResult(funk.Ok[int, string](5), strings.ToUpper))
	require.Equal(t, funk.Err[int]("BOOM"), funk.SecondResult(funk.Err[int]("boom"), strings.ToUpper))
}

func TestResultWitness(t *testing.T) {
	w := funk.ResultKind[int, int, string]{}

	require.Equal(t, funk.Ok[int, string](5), w.Pure(5))
	require.Equal(t, funk.Ok[int, string](6), w.Fmap(funk.Ok[int, string](5), addOne))
	require.Equal(t, funk.Err[int]("boom"), w.Fmap(funk.Err[int]("boom"), addOne))
	require.Equal(t, funk.Ok[int, string](10), w.Bind(funk.Ok[int, string](5), func(x int) funk.Result[int, string] {
		return funk.Ok[int, string](x * 2)
	}))
}

func TestResultBifunctorWitness(t *testing.T) {
	w := funk.ResultBikind[int, string, int, string]{}

	require.Equal(t, funk.Ok[int, string](10), w.Bimap(funk.Ok[int, string](5), multiplyByTwo, strings.ToUpper))
	require.Equal(t, funk.Err[int]("BOOM"), w.Bimap(funk.Err[int]("boom"), multiplyByTwo, strings.ToUpper))
	require.Equal(t, funk.Ok[int, string](10), w.First(funk.Ok[int, string](5), multiplyByTwo))
	require.Equal(t, funk.Err[int]("BOOM"), w.Second(funk.Err[int]("boom"), strings.ToUpper))
}
