package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringNotEmptyCoalesce(t *testing.T) {
	require.Equal(t, "a", StringNotEmptyCoalesce("a", "b"))
	require.Equal(t, "b", StringNotEmptyCoalesce("", "b"))
	require.Equal(t, "c", StringNotEmptyCoalesce("", "", "c"))
	require.Empty(t, StringNotEmptyCoalesce("", ""))
	require.Empty(t, StringNotEmptyCoalesce())
}

func TestSanitizeFileName(t *testing.T) {
	require.Equal(t, "a_b_c", SanitizeFileName(`a/b\c`))
	require.Equal(t, "x_y_", SanitizeFileName(`x?y*`))
	require.Equal(t, "plain-name_123", SanitizeFileName("plain-name_123"))
}
