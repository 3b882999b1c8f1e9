package kameloso

import "strings"

// nom advances *s past the first occurrence of delim and returns the prefix
// before it. It never allocates: the returned token and the updated *s are
// both views into the original backing array.
//
// Calling nom when delim is absent is an error the caller must handle; it
// returns ok=false and leaves *s untouched.
func nom(s *string, delim byte) (token string, ok bool) {
	idx := strings.IndexByte(*s, delim)
	if idx == -1 {
		return "", false
	}

	token = (*s)[:idx]
	*s = (*s)[idx+1:]
	return token, true
}

// nomSpace is nom specialised for the common case of splitting on a single
// space, used throughout the typestring and dispatcher parsing.
func nomSpace(s *string) (token string, ok bool) {
	return nom(s, ' ')
}

// startsWithAny reports whether s begins with any byte in charset.
func startsWithAny(s string, charset string) bool {
	if len(s) == 0 {
		return false
	}
	return strings.IndexByte(charset, s[0]) != -1
}

// contains reports whether b occurs anywhere in s.
func contains(s string, b byte) bool {
	return strings.IndexByte(s, b) != -1
}

// trimTrailingSpace right-trims ASCII spaces only, matching IRC's use of
// 0x20 as the sole inter-token delimiter.
func trimTrailingSpace(s string) string {
	return strings.TrimRight(s, " ")
}

// unquote strips a single pair of surrounding double quotes, if present on
// both ends. Used by PART's optional reason field.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
