package kameloso

// Mode is a single channel mode entry, as tracked in Channel.Modes. Not
// every field applies to every mode: User/Channel/Data are extban-derived
// refinements of Argument (mode.go). An account-selector extban
// ($a:account) populates User.Account, not a separate top-level field.
type Mode struct {
	Letter   byte
	Argument string

	Negated bool // extban '~' negation
	User    User
	Channel string
	Data    string

	// Exceptions carried from EXCEPTS/INVEX arguments that preceded this
	// mode in the (already-reversed) argument stream.
	Exceptions []string
}

// equalKey reports whether two Modes are the "same" mode for overwrite/
// remove purposes: same letter, and for A-class modes, same argument too.
func (m Mode) equalKey(other Mode, aClass bool) bool {
	if m.Letter != other.Letter {
		return false
	}
	if aClass {
		return m.Argument == other.Argument
	}
	return true
}

// Channel is the per-channel record owned by the embedder and mutated by
// the Mode Engine (mode.go) and the dispatcher (dispatch_membership.go) on
// demand. Created on first reference, destroyed by the embedder on
// SELFPART or disconnect.
type Channel struct {
	Name  string
	Topic string

	// CreatedUnix is the channel creation time from RPL_CREATIONTIME (329),
	// zero if never seen.
	CreatedUnix int64

	// Modechars holds D-class (flag-only) mode letters currently enabled,
	// plus any unknown letter set with no argument.
	Modechars []byte

	// Modes holds A/B/C-class mode entries (lists, and settings with
	// arguments).
	Modes []Mode

	// Mods maps a prefix mode letter (e.g. 'o', 'v') to the set of member
	// nicknames holding it.
	Mods map[byte]map[string]struct{}
}

// NewChannel returns an empty Channel record for the given (already
// canonicalized) name.
func NewChannel(name string) *Channel {
	return &Channel{
		Name: name,
		Mods: make(map[byte]map[string]struct{}),
	}
}

func (c *Channel) hasModechar(letter byte) bool {
	for _, m := range c.Modechars {
		if m == letter {
			return true
		}
	}
	return false
}

func (c *Channel) addModechar(letter byte) {
	if c.hasModechar(letter) {
		return
	}
	c.Modechars = append(c.Modechars, letter)
}

func (c *Channel) removeModechar(letter byte) {
	out := c.Modechars[:0:0]
	for _, m := range c.Modechars {
		if m != letter {
			out = append(out, m)
		}
	}
	c.Modechars = out
}

func (c *Channel) addMember(letter byte, nick string) {
	set, ok := c.Mods[letter]
	if !ok {
		set = make(map[string]struct{})
		c.Mods[letter] = set
	}
	set[nick] = struct{}{}
}

func (c *Channel) removeMember(letter byte, nick string) {
	set, ok := c.Mods[letter]
	if !ok {
		return
	}
	delete(set, nick)
}
