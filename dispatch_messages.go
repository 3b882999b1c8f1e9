package kameloso

import "strings"

// authChallengePhrases/authSuccessPhrases/authFailurePhrases are lowercase
// substrings onNotice matches against an auth-service NOTICE's content to
// decide which of AUTH_CHALLENGE/RPL_LOGGEDIN/AUTH_FAILURE it promotes to.
// Order matters: success and failure are checked before the more general
// challenge phrasing.
var authSuccessPhrases = []string{
	"you are now identified",
	"password accepted",
	"you have successfully identified",
}

var authFailurePhrases = []string{
	"password incorrect",
	"invalid password",
	"authentication failed",
}

var authChallengePhrases = []string{
	"this nickname is registered",
	"please identify",
	"please choose a different nick",
}

func onPrivmsg(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) < 2 {
		return nil
	}
	target := params[0]
	content := params[1]
	self := isSelf(sess, ev.Sender.Nickname)

	if isValidChannel(target, sess.Server.Chantypes, sess.Server.MaxChannelLength) {
		ev.Channel = sess.canonicalizeChannel(target)
		ev.Type = CHAN
		if self {
			ev.Type = SELFCHAN
		}
	} else {
		ev.Target.Nickname = target
		ev.Type = QUERY
		if self {
			ev.Type = SELFQUERY
		}
	}

	if !isCTCPFramed(content) {
		ev.Content = content
		return nil
	}

	inner := stripCTCP(content)
	if inner == "" {
		return wrapErr(ErrUnknownCTCP, ev.Raw, *ev)
	}
	verb, ok := nomSpace(&inner)
	if !ok {
		verb = inner
		inner = ""
	}
	rest := inner
	if verb == "" {
		return wrapErr(ErrUnknownCTCP, ev.Raw, *ev)
	}

	if verb == "ACTION" {
		ev.Type = EMOTE
		if self {
			ev.Type = SELFEMOTE
		}
		ev.Content = rest
		return nil
	}

	ev.Type = CTCP_GENERIC
	ev.Aux = verb
	ev.Content = rest
	if ev.Content == ev.Aux {
		ev.Content = ""
	}
	return nil
}

func onNotice(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) < 2 {
		return nil
	}
	target := params[0]
	content := params[1]

	if isValidChannel(target, sess.Server.Chantypes, sess.Server.MaxChannelLength) {
		ev.Channel = sess.canonicalizeChannel(target)
	} else {
		ev.Target.Nickname = target
	}
	ev.Content = content

	if !IsFromAuthService(ev.Sender) {
		return nil
	}

	lower := strings.ToLower(content)
	switch {
	case containsAny(lower, authSuccessPhrases):
		ev.Type = RPL_LOGGEDIN
	case containsAny(lower, authFailurePhrases):
		ev.Type = AUTH_FAILURE
	case containsAny(lower, authChallengePhrases):
		ev.Type = AUTH_CHALLENGE
	}
	return nil
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func onSimpleMessage(ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}
