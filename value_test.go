package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{IntFromInt64(0), false},
		{IntFromInt64(1), true},
		{Float(0), false},
		{Float(0.5), true},
		{Str(""), false},
		{Str("x"), true},
		{Bool(false), false},
		{Bool(true), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.v.Truthy(), "%v.Truthy()", c.v)
	}
}

func TestEqualCrossCaseNumeric(t *testing.T) {
	assert.True(t, IntFromInt64(2).Equal(Float(2.0)), "Integer 2 should equal Float 2.0")
	assert.False(t, IntFromInt64(2).Equal(Str("2")), "Integer 2 should not equal String \"2\"")
}

func TestFloorDivNegative(t *testing.T) {
	// floor division toward negative infinity: -7 / 2 == -4
	got, err := IntFromInt64(-7).FloorDiv(IntFromInt64(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(IntFromInt64(-4)), "-7 / 2 = %v, want -4", got)
}

func TestFloorDivByZero(t *testing.T) {
	_, err := IntFromInt64(1).FloorDiv(IntFromInt64(0))
	assert.ErrorIs(t, err, errDivideByZero)
}

func TestModSignOfDivisor(t *testing.T) {
	// -7 % 2 should be 1 (sign of divisor, positive)
	got, err := IntFromInt64(-7).Mod(IntFromInt64(2))
	require.NoError(t, err)
	assert.True(t, got.Equal(IntFromInt64(1)), "-7 %% 2 = %v, want 1", got)

	// 7 % -2 should be -1
	got, err = IntFromInt64(7).Mod(IntFromInt64(-2))
	require.NoError(t, err)
	assert.True(t, got.Equal(IntFromInt64(-1)), "7 %% -2 = %v, want -1", got)
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	s := Str("hello")
	assert.True(t, s.Invert().Invert().Equal(s), "~~ on String should be identity")

	b := Bool(true)
	assert.True(t, b.Invert().Invert().Equal(b), "~~ on Boolean should be identity")

	i := IntFromInt64(42)
	assert.True(t, i.Invert().Invert().Equal(i), "~~ on Integer should be identity")
}

func TestAddStringConcatenation(t *testing.T) {
	got := Str("foo").Add(Str("bar"))
	s, ok := got.RawString()
	require.True(t, ok)
	assert.Equal(t, "foobar", s)
}

func TestPowNegativeExponentYieldsFloat(t *testing.T) {
	got := IntFromInt64(2).Pow(IntFromInt64(-1))
	assert.Equal(t, KindFloat, got.Kind())
}

func TestToIntegerFallsBackToZeroOnFailure(t *testing.T) {
	got := Str("not a number").ToInteger()
	assert.True(t, got.Equal(IntFromInt64(0)))
}

func TestSumFloatShortestRoundTrip(t *testing.T) {
	assert.Equal(t, "1.5", Float(1.5).String())
}

func TestBigIntUnbounded(t *testing.T) {
	big100 := new(big.Int).Exp(big.NewInt(2), big.NewInt(100), nil)
	v := Int(big100)
	require.Equal(t, KindInteger, v.Kind())

	doubled := v.Add(v)
	want := new(big.Int).Mul(big100, big.NewInt(2))
	assert.Equal(t, want.String(), doubled.String())
}
