package kameloso

import "strings"

// decodeTagValue runs the single-pass IRCv3 escape automaton over a tag
// value: \\ -> \, \: -> ;, \s -> space, \n -> LF, \r -> CR, \t -> TAB,
// \0 -> NUL. A lone trailing backslash is dropped (produces no output
// character). Any other escaped character passes through literally. The
// decoder is idempotent on input containing no backslash.
func decodeTagValue(raw string) string {
	if !contains(raw, '\\') {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		// Lone trailing backslash: drop it, nothing more to read.
		if i+1 >= len(raw) {
			break
		}

		i++
		switch raw[i] {
		case '\\':
			b.WriteByte('\\')
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		default:
			// Not a recognised escape: the escaped character passes through
			// literally (the backslash itself is dropped).
			b.WriteByte(raw[i])
		}
	}

	return b.String()
}

// parseTags decodes an IRCv3 tag block (without the leading '@'), returning
// the key=value pairs with values escape-decoded. A bare key (no '=') is
// recorded with an empty value.
func parseTags(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}

	tags := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		if pair == "" {
			continue
		}

		key, value, hasValue := strings.Cut(pair, "=")
		if hasValue {
			tags[key] = decodeTagValue(value)
		} else {
			tags[key] = ""
		}
	}
	return tags
}

// stripCTCP removes a single 0x01 byte from each end of an already-detected
// CTCP-framed body. Callers must check isCTCPFramed first.
func stripCTCP(content string) string {
	return content[1 : len(content)-1]
}

// isCTCPFramed reports whether content begins and ends with byte 0x01. A
// bare "\x01\x01" counts as framed, with an empty body between the markers.
func isCTCPFramed(content string) bool {
	return len(content) >= 2 && content[0] == 0x01 && content[len(content)-1] == 0x01
}
