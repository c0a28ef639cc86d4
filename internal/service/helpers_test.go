package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskEmailAddress(t *testing.T) {
	require.Equal(t, "j***e@example.com", maskEmailAddress("jane@example.com"))
	require.Equal(t, "a***@example.com", maskEmailAddress("ab@example.com"))
	require.Equal(t, "***", maskEmailAddress("no-at-sign"))
	require.Equal(t, "***@example.com", maskEmailAddress("@example.com"))
	require.Equal(t, "", maskEmailAddress("  "))
}
