package kameloso

import "strings"

// modeClass classifies a single channel mode letter against the server's
// advertised CHANMODES groups and PREFIX letters.
type modeClass int

const (
	classUnknownOrD modeClass = iota
	classPrefix
	classA
	classB
	classC
)

func classify(srv *Server, letter byte) modeClass {
	if contains(srv.Prefixes, letter) {
		return classPrefix
	}
	if contains(srv.AModes, letter) {
		return classA
	}
	if contains(srv.BModes, letter) {
		return classB
	}
	if contains(srv.CModes, letter) {
		return classC
	}
	return classUnknownOrD
}

// needsArgument reports whether a (letter, add) change consumes an
// argument token, per the ISUPPORT CHANMODES A/B/C/D class rules.
func needsArgument(srv *Server, letter byte, add bool) bool {
	if letter == srv.ExceptsChar || letter == srv.InvexChar {
		return true
	}
	switch classify(srv, letter) {
	case classPrefix, classA, classB:
		return true
	case classC:
		return add
	default:
		return false
	}
}

type signedLetter struct {
	letter byte
	add    bool
}

// OnMode applies a signed mode string (e.g. "+oo", "-bv", or "CLPcnprtf"
// treated as an implicit "+") plus its argument list to a channel record.
//
// Arguments bind to letters right-to-left: the mode string's letters and
// the argument list are each walked from their own end, in lockstep. This
// is a deliberate design choice, not an implementation accident; it is
// what lets a carried EXCEPTS/INVEX argument attach to the A-class mode
// that precedes it on the wire.
func OnMode(sess *Session, ch *Channel, modeString string, args []string) error {
	srv := &sess.Server

	letters := make([]signedLetter, 0, len(modeString))
	add := true
	for i := 0; i < len(modeString); i++ {
		switch modeString[i] {
		case '+':
			add = true
		case '-':
			add = false
		default:
			letters = append(letters, signedLetter{letter: modeString[i], add: add})
		}
	}

	// Reverse both sequences, then zip: letters dominate, arguments default
	// to empty when exhausted.
	reversedLetters := make([]signedLetter, len(letters))
	for i, l := range letters {
		reversedLetters[len(letters)-1-i] = l
	}
	reversedArgs := make([]string, len(args))
	for i, a := range args {
		reversedArgs[len(args)-1-i] = a
	}

	var carried []string
	var localNew []Mode
	argCursor := 0

	for _, sl := range reversedLetters {
		var argument string
		if argCursor < len(reversedArgs) {
			argument = reversedArgs[argCursor]
			argCursor++
		}

		if sl.letter == srv.ExceptsChar || sl.letter == srv.InvexChar {
			carried = append(carried, argument)
			continue
		}

		class := classify(srv, sl.letter)

		switch {
		case class == classPrefix:
			if sl.add {
				ch.addMember(sl.letter, argument)
			} else {
				ch.removeMember(sl.letter, argument)
			}

		case class == classA:
			m := buildMode(srv, sl.letter, argument)
			if sl.add {
				if existing := findMode(ch.Modes, localNew, m, true); existing != nil {
					existing.Exceptions = append(existing.Exceptions, carried...)
					carried = nil
					continue
				}
				m.Exceptions = append(m.Exceptions, carried...)
				carried = nil
				// We are walking letters in reverse wire order, so a newly
				// created entry belongs before whatever we already created
				// this call: prepend to restore wire order once merged.
				localNew = prependMode(localNew, m)
			} else {
				ch.Modes = removeModes(ch.Modes, m, true)
				carried = nil
			}

		case class == classB || class == classC:
			m := buildMode(srv, sl.letter, argument)
			if sl.add {
				ch.Modes = removeModes(ch.Modes, m, false)
				localNew = removeModesSlice(localNew, m, false)
				localNew = prependMode(localNew, m)
			} else {
				ch.Modes = removeModes(ch.Modes, m, false)
				localNew = removeModesSlice(localNew, m, false)
			}

		default:
			if sl.add {
				ch.addModechar(sl.letter)
			} else {
				ch.removeModechar(sl.letter)
			}
		}
	}

	ch.Modes = append(ch.Modes, localNew...)
	sess.Updated = true
	return nil
}

// buildMode constructs a Mode for (letter, argument), parsing an extban or
// a full user mask out of the argument where applicable. It never errors:
// an unrecognised extban selector is kept as raw Data rather than dropped.
func buildMode(srv *Server, letter byte, argument string) Mode {
	m := Mode{Letter: letter, Argument: argument}

	if len(argument) > 0 && argument[0] == srv.ExtbanPrefix {
		rest := argument[1:]
		if len(rest) > 0 && rest[0] == '~' {
			m.Negated = true
			rest = rest[1:]
		}
		if len(rest) >= 2 && rest[1] == ':' {
			selector := rest[0]
			value := rest[2:]
			switch selector {
			case 'a', 'R':
				m.User.Account = value
			case 'j', 'c':
				m.Channel = value
			default:
				m.Data = value
			}
		} else {
			m.Data = rest
		}
		return m
	}

	if strings.Contains(argument, "!") && strings.Contains(argument, "@") {
		nick, rest, ok := strings.Cut(argument, "!")
		if ok {
			ident, host, ok2 := strings.Cut(rest, "@")
			if ok2 {
				m.User = User{Nickname: nick, Ident: ident, Address: host}
			}
		}
	}

	return m
}

// findMode looks for an existing Mode matching m by (letter[, argument])
// across both a channel's committed Modes and the in-progress localNew
// buffer for this call, returning a pointer into whichever slice holds it
// so callers can mutate it in place.
func findMode(existing []Mode, localNew []Mode, m Mode, aClass bool) *Mode {
	for i := range existing {
		if existing[i].equalKey(m, aClass) {
			return &existing[i]
		}
	}
	for i := range localNew {
		if localNew[i].equalKey(m, aClass) {
			return &localNew[i]
		}
	}
	return nil
}

func removeModes(modes []Mode, m Mode, aClass bool) []Mode {
	out := modes[:0:0]
	for _, existing := range modes {
		if existing.equalKey(m, aClass) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

func removeModesSlice(modes []Mode, m Mode, aClass bool) []Mode {
	return removeModes(modes, m, aClass)
}

func prependMode(modes []Mode, m Mode) []Mode {
	out := make([]Mode, 0, len(modes)+1)
	out = append(out, m)
	out = append(out, modes...)
	return out
}
