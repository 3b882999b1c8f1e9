package kameloso

import (
	"strconv"
	"strings"
)

func onCap(ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Target.Nickname = params[0]
	}
	if len(params) > 1 {
		ev.Aux = params[1]
	}
	if len(params) > 2 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onAccount(ev *Event, params []string) error {
	if len(params) == 0 {
		return nil
	}
	if params[0] == "*" {
		ev.Sender.Account = ""
		return nil
	}
	ev.Sender.Account = params[0]
	ev.Content = params[0]
	return nil
}

func onChghost(ev *Event, params []string) error {
	if len(params) < 2 {
		return nil
	}
	ev.Sender.Ident = params[0]
	ev.Sender.Address = params[1]
	ev.Aux = params[0] + "@" + params[1]
	return nil
}

func onAway(ev *Event, params []string) error {
	if len(params) == 0 || params[0] == "" {
		ev.Type = BACK
		return nil
	}
	ev.Content = params[0]
	return nil
}

// onHello handles the pre-registration server greeting (020) and primes
// Server.ResolvedAddress the first time we see a server-sourced line, since
// this is typically the earliest line with a usable server prefix.
func onHello(sess *Session, ev *Event, params []string) error {
	if sess.Server.ResolvedAddress == "" && ev.Sender.Nickname == "" && ev.Sender.Address != "" {
		sess.Server.ResolvedAddress = ev.Sender.Address
		if sess.Server.Address == "" {
			sess.Server.Address = ev.Sender.Address
		}
		sess.Updated = true
	}
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

// onNeedPong extracts the reconnect PONG token from ERR_NEEDPONG's
// (513) conventional phrasing: "To connect, type /QUOTE PONG <token>".
func onNeedPong(ev *Event, params []string) error {
	if len(params) == 0 {
		return wrapErr(ErrUnknownConnectHint, ev.Raw, *ev)
	}
	text := params[len(params)-1]
	idx := strings.Index(text, "PONG ")
	if idx == -1 {
		return wrapErr(ErrUnknownConnectHint, ev.Raw, *ev)
	}
	token := strings.TrimSpace(text[idx+len("PONG "):])
	if token == "" {
		return wrapErr(ErrUnknownConnectHint, ev.Raw, *ev)
	}
	ev.Aux = token
	return nil
}

// onHostTarget resolves Twitch's HOSTTARGET into TWITCH_HOSTSTART or
// TWITCH_HOSTEND depending on whether the payload's first token is the
// hyphen that signals a host ending.
func onHostTarget(ev *Event, params []string) error {
	if len(params) < 2 {
		return nil
	}
	ev.Channel = strings.ToLower(params[0])
	payload := params[1]
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return nil
	}

	if fields[0] == "-" {
		ev.Type = TWITCH_HOSTEND
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				ev.Count = n
			}
		}
		return nil
	}

	ev.Type = TWITCH_HOSTSTART
	ev.Target.Nickname = fields[0]
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			ev.Count = n
		}
	}
	return nil
}

// onTwitchUserState handles Twitch's per-channel USERSTATE, sent after
// JOIN and after every own PRIVMSG: channel plus the connecting user's
// badges/mod/subscriber status, carried entirely in tags. Aux holds the
// raw undecoded tag blob since the badge set has no fixed IRC shape.
func onTwitchUserState(ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Channel = strings.ToLower(params[0])
	}
	ev.Aux = ev.TagsRaw
	return nil
}

// onTwitchRoomState handles Twitch's per-channel ROOMSTATE: slow-mode,
// followers-only, sub-only, r9k and emote-only settings, again tag-carried
// rather than expressed as IRC channel modes since Twitch has no mode
// engine of its own.
func onTwitchRoomState(ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Channel = strings.ToLower(params[0])
	}
	ev.Aux = ev.TagsRaw
	return nil
}

// onTwitchClearChat handles Twitch's CLEARCHAT: a full-channel clear with
// no further params, or a single user's ban/timeout with the target's
// nickname as the trailing param and a tag-carried ban-duration (absent
// for a permanent ban, present in seconds for a timeout).
func onTwitchClearChat(ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Channel = strings.ToLower(params[0])
	}
	if len(params) > 1 {
		ev.Target.Nickname = params[1]
	}
	ev.Aux = ev.TagsRaw
	if dur, ok := ev.Tags["ban-duration"]; ok {
		if n, err := strconv.Atoi(dur); err == nil {
			ev.Count = n
		}
	}
	return nil
}
