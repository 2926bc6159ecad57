package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChoiceCombinators(t *testing.T) {
	one := Choice(1)
	zero := Choice(0)

	require.True(t, one.Bool())
	require.False(t, zero.Bool())

	require.Equal(t, one, one.And(one))
	require.Equal(t, zero, one.And(zero))
	require.Equal(t, zero, zero.And(zero))

	require.Equal(t, one, one.Or(zero))
	require.Equal(t, one, zero.Or(one))
	require.Equal(t, zero, zero.Or(zero))

	require.Equal(t, zero, one.Not())
	require.Equal(t, one, zero.Not())
}

func TestChoiceMask(t *testing.T) {
	require.Equal(t, byte(0xff), Choice(1).mask())
	require.Equal(t, byte(0x00), Choice(0).mask())
}

func TestEqualBytes(t *testing.T) {
	require.True(t, EqualBytes([]byte("abc"), []byte("abc")).Bool())
	require.False(t, EqualBytes([]byte("abc"), []byte("abd")).Bool())
	require.False(t, EqualBytes([]byte("abc"), []byte("abcd")).Bool())
	require.True(t, EqualBytes(nil, nil).Bool())
}
