package kameloso

import (
	"strconv"
	"strings"
)

// onISUPPORT mutates Session State from a 005 RPL_ISUPPORT line's full
// parameter list. Tokens without '=' (capability flags, and also the
// leading nickname and the trailing "are supported" text) are ignored;
// unknown keys are silently ignored.
func onISUPPORT(sess *Session, params []string) {
	srv := &sess.Server

	for _, tok := range params {
		key, value, hasValue := strings.Cut(tok, "=")
		if !hasValue {
			continue
		}

		switch key {
		case "PREFIX":
			if modes, chars, ok := parsePrefixToken(value); ok {
				srv.Prefixes = modes
				srv.Prefixchars = chars
				sess.Updated = true
			}

		case "CHANTYPES":
			if value != "" {
				srv.Chantypes = value
				sess.Updated = true
			}

		case "CHANMODES":
			groups := strings.SplitN(value, ",", 4)
			for len(groups) < 4 {
				groups = append(groups, "")
			}
			srv.AModes = groups[0]
			srv.BModes = groups[1]
			srv.CModes = groups[2]
			srv.DModes = strings.ReplaceAll(groups[3], ",", "")
			sess.Updated = true

		case "NETWORK":
			srv.Network = value
			switch value {
			case "RusNet":
				sess.setDaemon(DaemonRusnet)
			case "IRCnet":
				sess.setDaemon(DaemonIrcnet)
			case "Rizon":
				sess.setDaemon(DaemonRizon)
			}
			sess.Updated = true

		case "NICKLEN":
			if n, err := strconv.Atoi(value); err == nil {
				srv.MaxNickLength = n
				sess.Updated = true
			}

		case "CHANNELLEN":
			if n, err := strconv.Atoi(value); err == nil {
				srv.MaxChannelLength = n
				sess.Updated = true
			}

		case "CASEMAPPING":
			srv.CaseMapping = parseCaseMapping(value)
			sess.Updated = true

		case "EXTBAN":
			prefix, types, ok := strings.Cut(value, ",")
			if !ok {
				prefix, types = value, ""
			}
			if len(prefix) > 0 {
				srv.ExtbanPrefix = prefix[0]
			} else {
				srv.ExtbanPrefix = '$'
			}
			srv.ExtbanTypes = types
			sess.Updated = true

		case "EXCEPTS":
			if len(value) > 0 {
				srv.ExceptsChar = value[0]
			} else {
				srv.ExceptsChar = 'e'
			}
			srv.ExceptsAdvertised = true
			sess.Updated = true

		case "INVEX":
			if len(value) > 0 {
				srv.InvexChar = value[0]
			} else {
				srv.InvexChar = 'I'
			}
			srv.InvexAdvertised = true
			sess.Updated = true
		}
	}
}

// parsePrefixToken parses a PREFIX=(ov)@+ style token into its mode letters
// and sigil characters.
func parsePrefixToken(raw string) (modes, chars string, ok bool) {
	if len(raw) == 0 || raw[0] != '(' {
		return "", "", false
	}
	close := strings.IndexByte(raw, ')')
	if close == -1 {
		return "", "", false
	}
	modes = raw[1:close]
	chars = raw[close+1:]
	if len(modes) != len(chars) {
		return "", "", false
	}
	return modes, chars, true
}

// daemonInfixes maps a lower-cased substring of a 004 daemon-version string
// to the daemon it identifies, checked in onMyInfo.
var daemonInfixes = []struct {
	infix  string
	daemon Daemon
}{
	{"unreal", DaemonUnreal},
	{"inspircd", DaemonInspIRCd},
	{"snircd", DaemonSnircd},
	{"u2.", DaemonU2},
	{"bahamut", DaemonBahamut},
	{"hybrid", DaemonHybrid},
	{"ratbox", DaemonRatbox},
	{"charybdis", DaemonCharybdis},
	{"ircd-seven", DaemonIrcdSeven},
}

// onMyInfo mutates Session State from a 004 RPL_MYINFO line. params is the
// full parameter list including the nickname in params[0].
func onMyInfo(sess *Session, serverAddress string, params []string) {
	srv := &sess.Server

	if len(params) < 3 {
		return
	}
	daemonString := params[2]
	srv.DaemonString = daemonString
	sess.Updated = true

	if daemonString == "-" && strings.HasSuffix(serverAddress, ".twitch.tv") {
		srv.MaxNickLength = 25
		srv.Prefixes = "o"
		srv.Prefixchars = "@"
		srv.Network = "Twitch"
		sess.setDaemon(DaemonTwitch)
		return
	}

	lower := strings.ToLower(daemonString)
	for _, entry := range daemonInfixes {
		if strings.Contains(lower, entry.infix) {
			daemon := entry.daemon
			if daemon == DaemonHybrid && strings.Contains(serverAddress, ".rizon.") {
				daemon = DaemonRizon
			}
			sess.setDaemon(daemon)
			return
		}
	}
}
