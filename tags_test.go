package kameloso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeTagValueIdempotentWithoutBackslash(t *testing.T) {
	raw := "hello;world=1"
	once := decodeTagValue(raw)
	twice := decodeTagValue(once)
	require.Equal(t, once, twice, "decode should be idempotent absent backslash escapes")
}

func TestDecodeTagValueTrailingBackslashDropped(t *testing.T) {
	require.Equal(t, "test", decodeTagValue(`test\`), "lone trailing backslash is dropped")
}

func TestDecodeTagValueEscapes(t *testing.T) {
	require.Equal(t, "a;b", decodeTagValue(`a\:b`))
	require.Equal(t, "a b", decodeTagValue(`a\sb`))
	require.Equal(t, "a\\b", decodeTagValue(`a\\b`))
	require.Equal(t, "a\r\nb", decodeTagValue(`a\r\nb`))
}

func TestParseTags(t *testing.T) {
	tags := parseTags("time=2021-01-01T00:00:00.000Z;account=shachar")
	require.Equal(t, "2021-01-01T00:00:00.000Z", tags["time"])
	require.Equal(t, "shachar", tags["account"])
}

func TestParseTagsEmpty(t *testing.T) {
	require.Empty(t, parseTags(""))
}

func TestIsCTCPFramed(t *testing.T) {
	require.True(t, isCTCPFramed("\x01ACTION waves\x01"))
	require.False(t, isCTCPFramed("just text"))
}

func TestStripCTCP(t *testing.T) {
	require.Equal(t, "ACTION waves", stripCTCP("\x01ACTION waves\x01"))
}
