package kameloso

import "strings"

// parsePrefix splits an IRC message prefix into a User record, per RFC
// 2812 §2.3's prefix grammar: a prefix containing '!' is a full
// nick!user@host mask; one containing '.' but no '!' is a bare server
// address (servername always contains a dot); anything else is a bare
// nickname.
func parsePrefix(raw string) User {
	if raw == "" {
		return User{}
	}

	if idx := strings.IndexByte(raw, '!'); idx != -1 {
		nick := raw[:idx]
		rest := raw[idx+1:]
		ident, host, _ := strings.Cut(rest, "@")
		return User{Nickname: nick, Ident: ident, Address: host}
	}

	if strings.Contains(raw, ".") {
		return User{Address: raw}
	}

	return User{Nickname: raw}
}
