package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGravatarURL(t *testing.T) {
	// md5("steve@example.com")
	want := "//www.gravatar.com/avatar/3c98114d8e479f5da382f3401a832375"
	require.Equal(t, want, GravatarURL("steve@example.com"))

	// Address is lower-cased and trimmed before hashing.
	require.Equal(t, want, GravatarURL("Steve@Example.COM"))
	require.Equal(t, want, GravatarURL("  steve@example.com "))
}

func TestGravatarURLEmpty(t *testing.T) {
	require.Equal(t, "", GravatarURL(""))
	require.Equal(t, "", GravatarURL("   "))
}
