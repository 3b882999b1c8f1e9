package kameloso

import "strings"

func onJoin(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	canonical := sess.canonicalizeChannel(params[0])
	ev.Channel = canonical
	getOrCreateChannel(channels, canonical)

	if len(params) > 1 && params[1] != "*" {
		ev.Sender.Account = params[1]
	}

	if isSelf(sess, ev.Sender.Nickname) {
		ev.Type = SELFJOIN
	}
	return nil
}

func onPart(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[0])
	if len(params) > 1 {
		ev.Content = unquote(params[1])
	}

	if isSelf(sess, ev.Sender.Nickname) {
		ev.Type = SELFPART
	}
	return nil
}

func onNick(sess *Session, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	newNick := params[0]
	ev.Target.Nickname = newNick

	if isSelf(sess, ev.Sender.Nickname) {
		ev.Type = SELFNICK
		sess.Client.OrigNick = sess.Client.Nickname
		sess.Client.Nickname = newNick
		sess.Updated = true
	}
	return nil
}

func onQuit(sess *Session, ev *Event, params []string) error {
	if len(params) > 0 {
		reason := params[0]
		reason = strings.TrimPrefix(reason, "Quit: ")
		ev.Content = reason
	}

	if isSelf(sess, ev.Sender.Nickname) {
		ev.Type = SELFQUIT
	}
	return nil
}

func onKick(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[0])
	if len(params) > 1 {
		ev.Target.Nickname = params[1]
	}
	if len(params) > 2 {
		ev.Content = params[2]
	}

	if isSelf(sess, ev.Sender.Nickname) {
		ev.Type = SELFKICK
	}
	return nil
}

func onInvite(sess *Session, ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Target.Nickname = params[0]
	}
	if len(params) > 1 {
		ev.Channel = sess.canonicalizeChannel(params[1])
	}
	return nil
}

func onTopic(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	canonical := sess.canonicalizeChannel(params[0])
	ev.Channel = canonical
	if len(params) > 1 {
		ev.Content = params[1]
		if ch, ok := channels[canonical]; ok {
			ch.Topic = params[1]
		}
	}
	return nil
}

// onModeDispatch splits MODE into the channel-mode path (delegated to the
// Mode Engine, mode.go) and the user-mode path: the target of a MODE
// command the server sends us is always our own nickname, so that branch
// is unconditionally a self-event.
func onModeDispatch(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	target := params[0]

	if isValidChannel(target, sess.Server.Chantypes, sess.Server.MaxChannelLength) {
		canonical := sess.canonicalizeChannel(target)
		ev.Channel = canonical
		if len(params) < 2 {
			return nil
		}
		ch := getOrCreateChannel(channels, canonical)
		ev.Aux = params[1]
		return OnMode(sess, ch, params[1], params[2:])
	}

	ev.Type = SELFMODE
	ev.Target.Nickname = target
	if len(params) < 2 {
		return nil
	}
	ev.Aux = params[1]
	applySelfModeString(sess, params[1])
	return nil
}

// applySelfModeString applies a "+i-w" style user-mode change string to
// Session.Client.Modes. Additive is the default sign, matching the Mode
// Engine's own default.
func applySelfModeString(sess *Session, modeString string) {
	add := true
	for i := 0; i < len(modeString); i++ {
		c := modeString[i]
		switch c {
		case '+':
			add = true
		case '-':
			add = false
		case ':':
			// leading colon on a user-mode string is stripped, not meaningful.
		default:
			sess.Client.applyUserModeChange(c, add)
		}
	}
	sess.Updated = true
}
