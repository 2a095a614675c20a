package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopEmptyNonStickyYieldsZeroAndStaysEmpty(t *testing.T) {
	s := &Stack{}
	v := s.Pop()
	assert.True(t, v.Equal(IntFromInt64(0)))
	assert.Equal(t, 0, s.Len())
}

func TestPopStickyIsIdempotent(t *testing.T) {
	s := &Stack{}
	s.SetSticky(true)
	s.Push(IntFromInt64(7))
	first := s.Pop()
	second := s.Pop()
	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, s.Len())
}

func TestSwap(t *testing.T) {
	s := &Stack{}
	s.Push(IntFromInt64(1))
	s.Push(IntFromInt64(2))
	s.Swap()
	assert.True(t, s.Pop().Equal(IntFromInt64(1)))
}

func TestDupOnEmptyPushesZero(t *testing.T) {
	s := &Stack{}
	s.Dup()
	require.Equal(t, 1, s.Len())
	assert.True(t, s.Peek().Equal(IntFromInt64(0)))
}

func TestHeadDropsAllButTop(t *testing.T) {
	s := &Stack{}
	for _, n := range []int64{1, 2, 3} {
		s.Push(IntFromInt64(n))
	}
	s.Head()
	require.Equal(t, 1, s.Len())
	assert.True(t, s.Peek().Equal(IntFromInt64(3)))
}

func TestReverse(t *testing.T) {
	s := &Stack{}
	for _, n := range []int64{1, 2, 3} {
		s.Push(IntFromInt64(n))
	}
	s.Reverse()
	for i, w := range []int64{3, 2, 1} {
		assert.True(t, s.vals[i].Equal(IntFromInt64(w)), "vals[%d] = %v, want %v", i, s.vals[i], w)
	}
}

func TestMultiplyByTopLength(t *testing.T) {
	s := &Stack{}
	s.Push(IntFromInt64(1))
	s.Push(IntFromInt64(2))
	origLen := s.Len()
	s.Push(IntFromInt64(3)) // k = 3
	require.NoError(t, s.MultiplyByTop())
	assert.Equal(t, origLen*3, s.Len())
}

func TestPushRangeDescendingLengthAndTop(t *testing.T) {
	s := &Stack{}
	pushRange(s, big.NewInt(5), false)
	require.Equal(t, 5, s.Len())
	assert.True(t, s.Peek().Equal(IntFromInt64(1)))
}

func TestPushRangeNegative(t *testing.T) {
	s := &Stack{}
	pushRange(s, big.NewInt(-3), false)
	require.Equal(t, 3, s.Len())
	assert.True(t, s.Peek().Equal(IntFromInt64(-1)))
}

func TestSortAscDesc(t *testing.T) {
	s := &Stack{}
	for _, n := range []int64{3, 1, 2} {
		s.Push(IntFromInt64(n))
	}
	s.SortAsc()
	for i, w := range []int64{1, 2, 3} {
		assert.True(t, s.vals[i].Equal(IntFromInt64(w)), "asc vals[%d] = %v, want %v", i, s.vals[i], w)
	}
	s.SortDesc()
	for i, w := range []int64{3, 2, 1} {
		assert.True(t, s.vals[i].Equal(IntFromInt64(w)), "desc vals[%d] = %v, want %v", i, s.vals[i], w)
	}
}

func TestContains(t *testing.T) {
	s := &Stack{}
	s.Push(IntFromInt64(5))
	assert.True(t, s.Contains(IntFromInt64(5)))
	assert.False(t, s.Contains(IntFromInt64(6)))
}
