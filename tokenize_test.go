package kameloso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNom(t *testing.T) {
	s := "PRIVMSG #chan :hello"
	tok, ok := nom(&s, ' ')
	require.True(t, ok)
	require.Equal(t, "PRIVMSG", tok)
	require.Equal(t, "#chan :hello", s)
}

func TestNomNoDelim(t *testing.T) {
	s := "NOSPACE"
	tok, ok := nom(&s, ' ')
	require.False(t, ok)
	require.Equal(t, "", tok)
	require.Equal(t, "NOSPACE", s, "s is untouched on failure")
}

func TestNomSpace(t *testing.T) {
	s := "a b c"
	tok, ok := nomSpace(&s)
	require.True(t, ok)
	require.Equal(t, "a", tok)
	require.Equal(t, "b c", s)
}

func TestStartsWithAny(t *testing.T) {
	require.True(t, startsWithAny("#channel", "#&"))
	require.False(t, startsWithAny("channel", "#&"))
	require.False(t, startsWithAny("", "#&"))
}

func TestContains(t *testing.T) {
	require.True(t, contains("abc", 'b'))
	require.False(t, contains("abc", 'z'))
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "hi there", unquote(`"hi there"`))
	require.Equal(t, "no quotes", unquote("no quotes"))
	require.Equal(t, `"`, unquote(`"`))
}
