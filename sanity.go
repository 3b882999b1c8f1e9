package kameloso

import "strings"

// channelFieldAllowlist is the set of event kinds permitted to carry a
// Channel value that doesn't start with a chantypes character. New
// numerics that legitimately reuse the channel field for something else
// must be added here explicitly rather than silently passing the check.
var channelFieldAllowlist = map[EventType]bool{
	ERR_NOSUCHCHANNEL: true,
	RPL_ENDOFWHO:      true,
	RPL_NAMREPLY:      true,
	RPL_ENDOFNAMES:    true,
	SELFJOIN:          true,
	SELFPART:          true,
	RPL_LIST:          true,
}

// targetSelfAllowlist is the set of event kinds where Target.Nickname
// legitimately equals the client's own nickname (a recipient echo, not a
// redundant one).
var targetSelfAllowlist = map[EventType]bool{
	MODE:             true,
	QUERY:            true,
	JOIN:             true,
	SELFNICK:         true,
	RPL_WHOREPLY:     true,
	RPL_WHOISUSER:    true,
	RPL_WHOISCHANNELS: true,
	RPL_WHOISSERVER:  true,
	RPL_WHOISHOST:    true,
	RPL_WHOISIDLE:    true,
	RPL_LOGGEDIN:     true,
	RPL_WHOISACCOUNT: true,
	RPL_WHOISREGNICK: true,
	RPL_ENDOFWHOIS:   true,
	RPL_WELCOME:      true,
}

// sanityPostpass scans an assembled Event and records diagnostic strings in
// Errors. It never drops or downgrades the event.
func sanityPostpass(sess *Session, ev *Event) {
	if strings.Contains(ev.Target.Nickname, " ") {
		ev.AddError("target nickname contains a space")
	}
	if strings.Contains(ev.Channel, " ") {
		ev.AddError("channel contains a space")
	}

	if ev.Target.Nickname != "" && startsWithAny(ev.Target.Nickname, sess.Server.Chantypes) {
		ev.AddError("target nickname starts with a chantypes character")
	}

	if ev.Channel != "" && !startsWithAny(ev.Channel, sess.Server.Chantypes) {
		if !channelFieldAllowlist[ev.Type] {
			ev.AddError("channel does not start with a chantypes character")
		}
	}

	if ev.Target.Nickname != "" && ev.Target.Nickname == sess.Client.Nickname {
		if !targetSelfAllowlist[ev.Type] {
			ev.Target.Nickname = ""
		}
	}
}
