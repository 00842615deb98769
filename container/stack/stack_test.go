package stack

import (
	"testing"

	"github.com/matthewoestreich/dsa-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Parallel()

	s := NewStack[string]()
	assert.True(t, s.IsEmpty())

	_, exists := s.Pop()
	assert.False(t, exists)
	_, exists = s.Peek()
	assert.False(t, exists)
	_, exists = s.Bottom()
	assert.False(t, exists)

	for _, v := range []string{"a", "b", "c"} {
		s.Push(v)
	}
	require.Equal(t, 3, s.Size())

	top, _ := s.Peek()
	bottom, _ := s.Bottom()
	assert.Equal(t, "c", top)
	assert.Equal(t, "a", bottom)

	assert.Equal(t, []string{"c", "b", "a"}, util.Collect(s.All()))
	assert.Equal(t, []string{"a", "b", "c"}, util.Collect(s.Backward()))

	t.Run("pop is last in first out", func(t *testing.T) {
		for _, expected := range []string{"c", "b", "a"} {
			v, exists := s.Pop()
			assert.True(t, exists)
			assert.Equal(t, expected, v)
		}
		assert.True(t, s.IsEmpty())
	})
}

func TestStack_PopClearsSlot(t *testing.T) {
	t.Parallel()

	var s Stack[*int]
	v := 1
	s.Push(&v)
	s.Push(&v)
	_, _ = s.Pop()

	assert.Nil(t, s.items[:2][1])
	assert.Equal(t, 1, s.Size())
}
