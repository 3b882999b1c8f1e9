package kameloso

import (
	"sort"
	"strings"
)

// CaseMapping is the server-advertised nickname/channel comparison rule.
type CaseMapping int

const (
	CaseMappingASCII CaseMapping = iota
	CaseMappingRFC1459
	CaseMappingRFC1459Strict
)

func parseCaseMapping(s string) CaseMapping {
	switch strings.ToLower(s) {
	case "rfc1459":
		return CaseMappingRFC1459
	case "rfc1459-strict":
		return CaseMappingRFC1459Strict
	default:
		return CaseMappingASCII
	}
}

// Client holds the connected session's own identity.
type Client struct {
	Nickname    string
	User        string
	Ident       string
	OrigNick    string // nickname prior to the most recent SELFNICK
	Modes       []byte // sorted, deduplicated user mode letters
}

// setModes replaces Client.Modes with a sorted, deduplicated copy of modes.
func (c *Client) setModes(modes []byte) {
	seen := make(map[byte]bool, len(modes))
	var out []byte
	for _, m := range modes {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	c.Modes = out
}

// applyUserModeChange adds or removes a single mode letter, keeping
// Client.Modes sorted and deduplicated.
func (c *Client) applyUserModeChange(letter byte, add bool) {
	if add {
		for _, m := range c.Modes {
			if m == letter {
				return
			}
		}
		c.Modes = append(c.Modes, letter)
		sort.Slice(c.Modes, func(i, j int) bool { return c.Modes[i] < c.Modes[j] })
		return
	}

	out := c.Modes[:0:0]
	for _, m := range c.Modes {
		if m != letter {
			out = append(out, m)
		}
	}
	c.Modes = out
}

// Server holds the advertised capabilities of the remote daemon.
type Server struct {
	Address         string
	ResolvedAddress string

	Daemon       Daemon
	DaemonString string
	Network      string

	MaxNickLength    int
	MaxChannelLength int

	Chantypes string

	// Prefixes is the ordered mode letters (e.g. "ov"); Prefixchars is the
	// matching ordered sigils (e.g. "@+"). len(Prefixes) == len(Prefixchars).
	Prefixes    string
	Prefixchars string

	AModes string
	BModes string
	CModes string
	DModes string

	ExtbanPrefix byte
	ExtbanTypes  string
	ExceptsChar  byte
	// ExceptsAdvertised records whether EXCEPTS was seen on the wire, as
	// opposed to merely defaulted. The Mode Engine does not read it:
	// ExceptsChar (and InvexChar) are treated as exception-list letters
	// whether advertised or defaulted.
	ExceptsAdvertised bool
	InvexChar         byte
	InvexAdvertised   bool

	CaseMapping CaseMapping
}

// prefixLetterForChar returns the mode letter for a sigil character, e.g.
// '@' -> 'o'.
func (s *Server) prefixLetterForChar(c byte) (byte, bool) {
	idx := strings.IndexByte(s.Prefixchars, c)
	if idx == -1 {
		return 0, false
	}
	return s.Prefixes[idx], true
}

// Session is the process-wide, mutable state the parser maintains: the
// connected client's identity, the server's advertised capabilities, and
// the dirty flag the embedder polls and clears after each line.
type Session struct {
	Client Client
	Server Server

	// Updated is set on any state mutation and cleared by the embedder.
	Updated bool

	numericTable NumericTable
}

// NewSession returns a Session initialized to RFC 1459/2812 defaults, as if
// no ISUPPORT/MYINFO had yet been seen.
func NewSession() *Session {
	s := &Session{
		Server: Server{
			Chantypes:        "#",
			MaxNickLength:    9,
			MaxChannelLength: 50,
			Prefixes:         "ov",
			Prefixchars:      "@+",
			AModes:           "b",
			BModes:           "k",
			CModes:           "l",
			DModes:           "imnpst",
			ExtbanPrefix:     '$',
			ExceptsChar:      'e',
			InvexChar:        'I',
			CaseMapping:      CaseMappingRFC1459,
			Daemon:           DaemonUnset,
		},
	}
	s.rebuildNumericTable()
	return s
}

// rebuildNumericTable recomputes Session.numericTable from Server.Daemon.
// Called whenever Daemon changes (onMyInfo, NETWORK= in onISUPPORT).
func (s *Session) rebuildNumericTable() {
	s.numericTable = typenumsOf(s.Server.Daemon)
}

// setDaemon changes the inferred daemon and rebuilds the numeric table if
// it actually changed.
func (s *Session) setDaemon(d Daemon) {
	if s.Server.Daemon == d {
		return
	}
	s.Server.Daemon = d
	s.rebuildNumericTable()
	s.Updated = true
}

// canonicalizeChannel lower-cases a channel name with strings.ToLower,
// whatever the session's CaseMapping; the rfc1459 extra {}|^ <-> []\~
// folding is not applied.
func (s *Session) canonicalizeChannel(name string) string {
	return strings.ToLower(name)
}

// isValidNickname reports whether n matches the RFC nickname alphabet and
// is shorter than Server.MaxNickLength.
func isValidNickname(n string, maxLen int) bool {
	if len(n) == 0 || len(n) >= maxLen {
		return false
	}
	for i := 0; i < len(n); i++ {
		if !isNickChar(n[i]) {
			return false
		}
	}
	return true
}

func isNickChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '-', '\\', '[', ']', '{', '}', '^', '`', '|':
		return true
	}
	return false
}

// isValidChannel reports whether c is a structurally valid channel name:
// starts with a chantypes character, length in [2, maxLen], no
// space/comma/0x07, and is not a run of three-or-more chantypes
// characters.
func isValidChannel(c string, chantypes string, maxLen int) bool {
	if len(c) < 2 || len(c) > maxLen {
		return false
	}
	if !startsWithAny(c, chantypes) {
		return false
	}
	if strings.ContainsAny(c, " ,\x07") {
		return false
	}

	allChantype := true
	for i := 0; i < len(c); i++ {
		if !contains(chantypes, c[i]) {
			allChantype = false
			break
		}
	}
	if allChantype && len(c) >= 3 {
		return false
	}

	return true
}
