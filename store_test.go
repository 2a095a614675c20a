package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreDefaultActiveIsZero(t *testing.T) {
	st := NewStore()
	assert.Equal(t, 0, st.ActiveIndex())
}

func TestStoreUntouchedIndexIsEmptyNonSticky(t *testing.T) {
	st := NewStore()
	s := st.At(-7)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Sticky())
}

func TestStoreSetActiveByDelta(t *testing.T) {
	st := NewStore()
	st.SetActive(1)
	assert.Equal(t, 1, st.ActiveIndex())
	st.SetActive(-3)
	assert.Equal(t, -2, st.ActiveIndex())
}

func TestStoreMoveToNeighborDoesNotChangeActive(t *testing.T) {
	st := NewStore()
	st.Active().Push(IntFromInt64(9))
	st.MoveToNeighbor(1)
	assert.Equal(t, 0, st.ActiveIndex())
	assert.Equal(t, 0, st.Active().Len())
	assert.True(t, st.At(1).Peek().Equal(IntFromInt64(9)))
}

func TestStoreShiftAndMoveChangesActive(t *testing.T) {
	st := NewStore()
	st.Active().Push(IntFromInt64(4))
	st.ShiftAndMove(1)
	assert.Equal(t, 1, st.ActiveIndex())
	assert.True(t, st.Active().Peek().Equal(IntFromInt64(4)))
	assert.Equal(t, 0, st.At(0).Len())
}
