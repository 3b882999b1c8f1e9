package kameloso

import "strconv"

// Numeric replies carry the recipient's own nickname as their first
// parameter (RFC 1459/2812 §2.4), ahead of whatever the reply is actually
// about. The handlers below skip that leading echo, except onWelcome, which
// reads it as the target nickname, and the MYINFO/ISUPPORT wrappers, which
// hand the full list on to onMyInfo/onISUPPORT.

func onWelcome(sess *Session, ev *Event, params []string) error {
	if len(params) > 0 {
		ev.Target.Nickname = params[0]
		if sess.Client.Nickname == "" {
			sess.Client.Nickname = params[0]
		}
	}
	if len(params) > 1 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onMyInfoDispatch(sess *Session, ev *Event, params []string) error {
	onMyInfo(sess, ev.Sender.Address, params)
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onISupportDispatch(sess *Session, ev *Event, params []string) error {
	onISUPPORT(sess, params)
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onNamReply(sess *Session, ev *Event, params []string) error {
	// <client> <symbol> <channel> :<names>
	if len(params) < 3 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[2])
	ev.Content = params[len(params)-1]
	return nil
}

// onChannelNumericWithTrailing handles the common shape "<client> <channel>
// ... :<trailing>", where chanIdx is the index of the channel parameter
// (1 for every numeric using this helper).
func onChannelNumericWithTrailing(sess *Session, ev *Event, params []string, chanIdx int) error {
	if len(params) > chanIdx {
		ev.Channel = sess.canonicalizeChannel(params[chanIdx])
	}
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onWhoReply(sess *Session, ev *Event, params []string) error {
	// <client> <channel> <user> <host> <server> <nick> <flags> :<hopcount> <real name>
	if len(params) < 6 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[1])
	ev.Target = User{
		Nickname: params[5],
		Ident:    params[2],
		Address:  params[3],
	}
	if len(params) > 6 {
		ev.Aux = params[6]
	}
	if len(params) > 7 {
		tail := params[len(params)-1]
		nomSpace(&tail)
		ev.Content = tail
	}
	return nil
}

func onWhoisUser(ev *Event, params []string) error {
	// <client> <nick> <user> <host> * :<real name>
	if len(params) < 5 {
		return nil
	}
	ev.Target = User{
		Nickname: params[1],
		Ident:    params[2],
		Address:  params[3],
	}
	ev.Content = params[len(params)-1]
	return nil
}

func onWhoisServer(ev *Event, params []string) error {
	// <client> <nick> <server> :<server info>
	if len(params) < 3 {
		return nil
	}
	ev.Target.Nickname = params[1]
	ev.Aux = params[2]
	ev.Content = params[len(params)-1]
	return nil
}

func onWhoisSimple(ev *Event, params []string) error {
	// <client> <nick> ... :<trailing>
	if len(params) > 1 {
		ev.Target.Nickname = params[1]
	}
	if len(params) > 2 {
		ev.Content = params[len(params)-1]
	}
	return nil
}

func onWhoisIdle(ev *Event, params []string) error {
	// <client> <nick> <integer> :seconds idle
	if len(params) < 3 {
		return nil
	}
	ev.Target.Nickname = params[1]
	if n, err := strconv.Atoi(params[2]); err == nil {
		ev.Count = n
	}
	ev.Content = params[len(params)-1]
	return nil
}

func onWhoisAccount(ev *Event, params []string) error {
	// <client> <nick> <account> :is logged in as
	if len(params) < 3 {
		return nil
	}
	ev.Target.Nickname = params[1]
	ev.Target.Account = params[2]
	ev.Content = params[len(params)-1]
	return nil
}

func onLoggedIn(ev *Event, params []string) error {
	// <client> <nick>!<ident>@<host> <account> :You are now logged in as ...
	if len(params) < 4 {
		return nil
	}
	ev.Target = parsePrefix(params[1])
	ev.Target.Account = params[2]
	ev.Content = params[len(params)-1]
	return nil
}

func onList(sess *Session, ev *Event, params []string) error {
	// <client> <channel> <# visible> :<topic>
	if len(params) < 2 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[1])
	if len(params) > 2 {
		if n, err := strconv.Atoi(params[2]); err == nil {
			ev.Count = n
		}
	}
	ev.Content = params[len(params)-1]
	return nil
}

func onTopicReply(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	// <client> <channel> :<topic>
	if len(params) < 3 {
		return nil
	}
	canonical := sess.canonicalizeChannel(params[1])
	ev.Channel = canonical
	ev.Content = params[len(params)-1]
	if ch, ok := channels[canonical]; ok {
		ch.Topic = ev.Content
	}
	return nil
}

func onCreationTime(sess *Session, channels map[string]*Channel, ev *Event, params []string) error {
	// <client> <channel> <creation time>
	if len(params) < 3 {
		return nil
	}
	canonical := sess.canonicalizeChannel(params[1])
	ev.Channel = canonical
	n, err := strconv.ParseInt(params[2], 10, 64)
	if err != nil {
		return nil
	}
	ev.Count = int(n)
	if ch, ok := channels[canonical]; ok {
		ch.CreatedUnix = n
	}
	return nil
}

func onChannelModeIs(sess *Session, ev *Event, params []string) error {
	// <client> <channel> <modestring> [modeargs...]
	if len(params) < 3 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[1])
	ev.Aux = params[2]
	ev.Content = params[len(params)-1]
	return nil
}

func onListModeEntry(sess *Session, ev *Event, params []string) error {
	// <client> <channel> <mask> <who set it> <timestamp>
	if len(params) < 4 {
		return nil
	}
	ev.Channel = sess.canonicalizeChannel(params[1])
	ev.Aux = params[2]
	ev.Target.Nickname = params[3]
	if len(params) > 4 {
		if n, err := strconv.Atoi(params[4]); err == nil {
			ev.Count = n
		}
	}
	return nil
}

func onNoSuchNick(ev *Event, params []string) error {
	// <client> <nickname> :No such nick/channel
	if len(params) > 1 {
		ev.Target.Nickname = params[1]
	}
	if len(params) > 0 {
		ev.Content = params[len(params)-1]
	}
	return nil
}
