package kameloso

import (
	"strings"
	"time"

	horghirc "github.com/horgh/irc"
)

// ToEvent parses one inbound IRC line into an Event, mutating sess and the
// referenced Channel records as a side effect where the line's semantics
// call for it. Synchronous and single-threaded: callers own serializing
// their own calls.
//
// A non-nil error is always one of the sentinel errors in errors.go,
// wrapped via github.com/pkg/errors; the partially-built Event rides along
// on the returned error value (see parseError.Event) as well as in the
// first return value. Non-fatal diagnostics never produce an error: they
// accumulate in the returned Event's Errors field instead (sanity.go).
func ToEvent(line string, sess *Session, channels map[string]*Channel) (Event, error) {
	clean := strings.TrimRight(line, "\r\n")
	if clean == "" {
		return Event{}, wrapErr(ErrEmptyLine, line, Event{})
	}

	ev := Event{
		Raw:  clean,
		Time: time.Now().Unix(),
	}

	rest := clean

	if strings.HasPrefix(rest, "@") {
		tagToken, ok := nomSpace(&rest)
		if !ok {
			return ev, wrapErr(ErrMalformedToken, clean, ev)
		}
		ev.TagsRaw = tagToken[1:]
	}
	ev.Tags = parseTags(ev.TagsRaw)

	hasPrefix := strings.HasPrefix(rest, ":")

	wireLine := rest
	if !strings.HasSuffix(wireLine, "\n") {
		wireLine += "\r\n"
	}
	msg, err := horghirc.ParseMessage(wireLine)
	if err != nil {
		return ev, wrapErr(ErrMalformedToken, clean, ev)
	}

	if hasPrefix {
		ev.Sender = parsePrefix(msg.Prefix)
	}

	command := strings.ToUpper(msg.Command)

	if !hasPrefix {
		switch command {
		case "PING", "ERROR", "PONG", "NOTICE", "AUTHENTICATE":
		default:
			return ev, wrapErr(ErrUnknownBasicCommand, clean, ev)
		}
	}

	kind, num, err := parseTypestring(sess, command)
	if err != nil {
		return ev, wrapErr(err, clean, ev)
	}
	ev.Type = kind
	ev.Num = num

	if kind == PING || kind == PONG {
		if len(msg.Params) > 0 {
			ev.Content = msg.Params[0]
		}
		sanityPostpass(sess, &ev)
		return ev, nil
	}
	if kind == ERROR {
		if len(msg.Params) > 0 {
			ev.Content = msg.Params[len(msg.Params)-1]
		}
		sanityPostpass(sess, &ev)
		return ev, nil
	}
	if kind == AUTHENTICATE {
		if len(msg.Params) > 0 {
			ev.Content = msg.Params[0]
		}
		sanityPostpass(sess, &ev)
		return ev, nil
	}

	if derr := dispatch(sess, channels, &ev, msg.Params); derr != nil {
		return ev, derr
	}

	sanityPostpass(sess, &ev)
	return ev, nil
}
