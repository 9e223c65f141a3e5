package tpcc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_boundString(t *testing.T) {
	require.Equal(t, "hello", boundString("hello", 10))
	require.Equal(t, "hel", boundString("hello", 3))
	require.Equal(t, "", boundString("hello", 0))
}
