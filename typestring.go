package kameloso

import "strconv"

// parseTypestring resolves a command token (already split out by the
// tokenizer) into an EventType and, for numerics, the integer code.
//
// If the token begins with a digit it is parsed as an unsigned integer n;
// num is set to n and the type comes from the session's numeric table. A
// table miss (UNSET) deliberately falls back to NUMERIC, signalling
// "unrecognised numeric, no specialcasing" rather than an error.
//
// Otherwise the token is looked up by exact string match in the named-event
// enumeration. A miss is a parse error.
func parseTypestring(sess *Session, token string) (EventType, int, error) {
	if len(token) > 0 && token[0] >= '0' && token[0] <= '9' {
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n >= numericTableSize {
			return UNSET, 0, ErrBadNumeric
		}

		kind := sess.numericTable[n]
		if kind == UNSET {
			kind = NUMERIC
		}
		return kind, n, nil
	}

	kind, ok := namedCommands[token]
	if !ok {
		return UNSET, 0, ErrUnknownNamedCommand
	}
	return kind, 0, nil
}
