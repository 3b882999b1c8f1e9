package kameloso

import "strings"

// isSelf reports whether nick is the connected client's own nickname.
// Self-ness is always computed from the sender, once, at the top of the
// relevant specialcase — never re-derived per-field.
func isSelf(sess *Session, nick string) bool {
	return nick != "" && nick == sess.Client.Nickname
}

func getOrCreateChannel(channels map[string]*Channel, canonical string) *Channel {
	ch, ok := channels[canonical]
	if !ok {
		ch = NewChannel(canonical)
		channels[canonical] = ch
	}
	return ch
}

// dispatch is the specialcase dispatcher: a closed switch over ev.Type,
// falling back to generalHeuristics for anything not explicitly handled.
// It may rewrite ev.Type (self-detection, NOTICE auth-service promotion).
func dispatch(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	ev.Sender.Class = boolToClass(IsSpecial(sess, ev.Sender))

	switch ev.Type {
	case JOIN:
		return onJoin(sess, channels, ev, params)
	case PART:
		return onPart(sess, channels, ev, params)
	case NICK:
		return onNick(sess, ev, params)
	case QUIT:
		return onQuit(sess, ev, params)
	case KICK:
		return onKick(sess, channels, ev, params)
	case INVITE:
		return onInvite(sess, ev, params)
	case TOPIC:
		return onTopic(sess, channels, ev, params)
	case MODE:
		return onModeDispatch(sess, channels, ev, params)

	case PRIVMSG:
		return onPrivmsg(sess, channels, ev, params)
	case NOTICE:
		return onNotice(sess, channels, ev, params)

	case CAP:
		return onCap(ev, params)
	case ACCOUNT:
		return onAccount(ev, params)
	case CHGHOST:
		return onChghost(ev, params)
	case AWAY:
		return onAway(ev, params)
	case HELLO:
		return onHello(sess, ev, params)
	case WALLOPS, SILENCE, KNOCK:
		return onSimpleMessage(ev, params)
	case ERR_NEEDPONG:
		return onNeedPong(ev, params)

	case RPL_WELCOME:
		return onWelcome(sess, ev, params)
	case RPL_MYINFO:
		return onMyInfoDispatch(sess, ev, params)
	case RPL_ISUPPORT:
		return onISupportDispatch(sess, ev, params)
	case RPL_NAMREPLY:
		return onNamReply(sess, ev, params)
	case RPL_ENDOFNAMES:
		return onChannelNumericWithTrailing(sess, ev, params, 1)
	case RPL_WHOREPLY:
		return onWhoReply(sess, ev, params)
	case RPL_ENDOFWHO:
		return onChannelNumericWithTrailing(sess, ev, params, 1)
	case RPL_WHOISUSER:
		return onWhoisUser(ev, params)
	case RPL_WHOISSERVER:
		return onWhoisServer(ev, params)
	case RPL_WHOISCHANNELS:
		return onWhoisSimple(ev, params)
	case RPL_WHOISIDLE:
		return onWhoisIdle(ev, params)
	case RPL_WHOISACCOUNT:
		return onWhoisAccount(ev, params)
	case RPL_WHOISREGNICK:
		return onWhoisSimple(ev, params)
	case RPL_WHOISHOST:
		return onWhoisSimple(ev, params)
	case RPL_ENDOFWHOIS:
		return onWhoisSimple(ev, params)
	case RPL_LOGGEDIN:
		return onLoggedIn(ev, params)
	case RPL_LIST:
		return onList(sess, ev, params)
	case RPL_LISTSTART, RPL_LISTEND:
		return onSimpleMessage(ev, params)
	case RPL_TOPIC:
		return onTopicReply(sess, channels, ev, params)
	case RPL_NOTOPIC:
		return onChannelNumericWithTrailing(sess, ev, params, 1)
	case RPL_CREATIONTIME:
		return onCreationTime(sess, channels, ev, params)
	case RPL_CHANNELMODEIS:
		return onChannelModeIs(sess, ev, params)
	case RPL_BANLIST, RPL_EXCEPTLIST, RPL_INVITELIST:
		return onListModeEntry(sess, ev, params)
	case RPL_ENDOFBANLIST, RPL_ENDOFEXCEPTLIST, RPL_ENDOFINVITELIST:
		return onChannelNumericWithTrailing(sess, ev, params, 1)
	case ERR_NOSUCHCHANNEL:
		return onChannelNumericWithTrailing(sess, ev, params, 1)
	case ERR_NOSUCHNICK:
		return onNoSuchNick(ev, params)

	case TWITCH_HOSTSTART:
		return onHostTarget(ev, params)
	case TWITCH_USERSTATE:
		return onTwitchUserState(ev, params)
	case TWITCH_ROOMSTATE:
		return onTwitchRoomState(ev, params)
	case TWITCH_CLEARCHAT:
		return onTwitchClearChat(ev, params)

	default:
		generalHeuristics(sess, ev, params)
		return nil
	}
}

func boolToClass(special bool) SenderClass {
	if special {
		return ClassSpecial
	}
	return ClassAnyone
}

// generalHeuristics runs when a type has no explicit specialcase (NUMERIC
// fallback, or a named command parse.go didn't enumerate). It never
// throws — structural surprises fall back here rather than erroring.
func generalHeuristics(sess *Session, ev *Event, params []string) {
	if len(params) == 0 {
		return
	}

	for _, p := range params {
		if ev.Channel == "" && isValidChannel(p, sess.Server.Chantypes, sess.Server.MaxChannelLength) {
			ev.Channel = sess.canonicalizeChannel(p)
		}
	}

	ev.Content = params[len(params)-1]
	if len(params) > 1 {
		ev.Aux = strings.Join(params[:len(params)-1], " ")
	}
}
