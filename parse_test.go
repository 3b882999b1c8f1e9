package kameloso

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	sess := NewSession()
	sess.Client.Nickname = "kameloso^"
	return sess
}

func TestToEventEmptyLine(t *testing.T) {
	sess := newTestSession()
	_, err := ToEvent("", sess, map[string]*Channel{})
	require.True(t, errors.Is(err, ErrEmptyLine))
}

func TestToEventUnknownUnprefixedCommand(t *testing.T) {
	sess := newTestSession()
	_, err := ToEvent("FROBNICATE foo", sess, map[string]*Channel{})
	require.True(t, errors.Is(err, ErrUnknownBasicCommand))
}

// TestToEventWelcomeClassifiesServerSenderAsSpecial checks RPL_WELCOME
// (001) parsing end to end: the numeric resolves to its dedicated type,
// the server prefix is classified special, and the echoed nickname lands
// in Target.
func TestToEventWelcomeClassifiesServerSenderAsSpecial(t *testing.T) {
	sess := NewSession()
	sess.Server.Address = "adams.freenode.net"
	line := ":adams.freenode.net 001 kameloso^ :Welcome to the freenode Internet Relay Chat Network kameloso^"

	ev, err := ToEvent(line, sess, map[string]*Channel{})
	require.NoError(t, err)
	require.Equal(t, RPL_WELCOME, ev.Type)
	require.Equal(t, 1, ev.Num)
	require.Equal(t, "adams.freenode.net", ev.Sender.Address)
	require.Equal(t, ClassSpecial, ev.Sender.Class)
	require.Equal(t, "kameloso^", ev.Target.Nickname)
	require.Equal(t, "Welcome to the freenode Internet Relay Chat Network kameloso^", ev.Content)
}

// TestToEventActionFromChannelMessage checks that a CTCP ACTION framed
// inside a channel PRIVMSG promotes to EMOTE with the action text as
// Content, stripped of its CTCP framing.
func TestToEventActionFromChannelMessage(t *testing.T) {
	sess := newTestSession()
	line := ":zorael!~NaN@ns3363704.ip-94-23-253.eu PRIVMSG #flerrp :\x01ACTION 123 test test content\x01"

	ev, err := ToEvent(line, sess, map[string]*Channel{})
	require.NoError(t, err)
	require.Equal(t, EMOTE, ev.Type)
	require.Equal(t, "zorael", ev.Sender.Nickname)
	require.Equal(t, "#flerrp", ev.Channel)
	require.Equal(t, "123 test test content", ev.Content)
}

// TestToEventTwitchHostEndAfterDaemonInferred checks that once MYINFO has
// inferred a Twitch session, a HOSTTARGET with a leading "-" resolves to
// TWITCH_HOSTEND with the trailing viewer count parsed into Count.
func TestToEventTwitchHostEndAfterDaemonInferred(t *testing.T) {
	sess := newTestSession()
	channels := map[string]*Channel{}

	_, err := ToEvent(":tmi.twitch.tv 004 kameloso^ tmi.twitch.tv -", sess, channels)
	require.NoError(t, err)
	require.Equal(t, DaemonTwitch, sess.Server.Daemon)

	ev, err := ToEvent(":tmi.twitch.tv HOSTTARGET #lirik :- 178", sess, channels)
	require.NoError(t, err)
	require.Equal(t, TWITCH_HOSTEND, ev.Type)
	require.Equal(t, "#lirik", ev.Channel)
	require.Equal(t, 178, ev.Count)
}

// TestToEventSelfNickUpdatesClientNickname checks that a NICK change whose
// sender is the connected client promotes to SELFNICK and updates
// Session.Client.Nickname in place.
func TestToEventSelfNickUpdatesClientNickname(t *testing.T) {
	sess := newTestSession()
	line := ":kameloso^!~NaN@81-233-105-62-no80.tbcn.telia.com NICK :kameloso_"

	ev, err := ToEvent(line, sess, map[string]*Channel{})
	require.NoError(t, err)
	require.Equal(t, SELFNICK, ev.Type)
	require.Equal(t, "kameloso_", ev.Target.Nickname)
	require.Equal(t, "kameloso_", sess.Client.Nickname)
	require.True(t, sess.Updated)
}

func TestToEventChannelJoinCreatesChannel(t *testing.T) {
	sess := newTestSession()
	channels := map[string]*Channel{}

	ev, err := ToEvent(":newguy!u@h JOIN #chan", sess, channels)
	require.NoError(t, err)
	require.Equal(t, JOIN, ev.Type)
	require.Contains(t, channels, "#chan")
}

func TestToEventSelfJoin(t *testing.T) {
	sess := newTestSession()
	channels := map[string]*Channel{}

	ev, err := ToEvent(":kameloso^!u@h JOIN #chan", sess, channels)
	require.NoError(t, err)
	require.Equal(t, SELFJOIN, ev.Type)
}

func TestToEventCreationTimePersistsAcrossTopicReply(t *testing.T) {
	sess := newTestSession()
	channels := map[string]*Channel{"#chan": NewChannel("#chan")}

	ev, err := ToEvent(":irc.example.net 329 kameloso^ #chan 1577836800", sess, channels)
	require.NoError(t, err)
	require.Equal(t, RPL_CREATIONTIME, ev.Type)

	_, err = ToEvent(":irc.example.net 332 kameloso^ #chan :some topic", sess, channels)
	require.NoError(t, err)
	require.Equal(t, int64(1577836800), channels["#chan"].CreatedUnix)
	require.Equal(t, "some topic", channels["#chan"].Topic)
}

func TestToEventExtbanAccountSelector(t *testing.T) {
	sess := newTestSession()
	sess.Server.ExtbanPrefix = '$'
	channels := map[string]*Channel{}

	ev, err := ToEvent(":irc.example.net MODE #chan +b $a:shachar", sess, channels)
	require.NoError(t, err)
	require.Equal(t, MODE, ev.Type)

	ch := channels["#chan"]
	require.Len(t, ch.Modes, 1)
	require.Equal(t, byte('b'), ch.Modes[0].Letter)
	require.Equal(t, "shachar", ch.Modes[0].User.Account)
}

func TestToEventHostTargetDefaultsCountWhenMissing(t *testing.T) {
	sess := newTestSession()
	channels := map[string]*Channel{}
	_, err := ToEvent(":tmi.twitch.tv 004 kameloso^ tmi.twitch.tv -", sess, channels)
	require.NoError(t, err)

	ev, err := ToEvent(":tmi.twitch.tv HOSTTARGET #lirik :othertarget", sess, channels)
	require.NoError(t, err)
	require.Equal(t, TWITCH_HOSTSTART, ev.Type)
	require.Equal(t, "othertarget", ev.Target.Nickname)
	require.Equal(t, 0, ev.Count)
}

func TestToEventTagsDecoded(t *testing.T) {
	sess := newTestSession()
	line := "@account=shachar;time=2021-01-01T00:00:00.000Z :zorael!u@h PRIVMSG #chan :hello"
	ev, err := ToEvent(line, sess, map[string]*Channel{})
	require.NoError(t, err)
	require.Equal(t, "shachar", ev.Tags["account"])
	require.Equal(t, "hello", ev.Content)
}

func TestToEventRawRoundTrip(t *testing.T) {
	sess := newTestSession()
	line := ":zorael!u@h PRIVMSG #chan :hello there"
	first, err := ToEvent(line, sess, map[string]*Channel{})
	require.NoError(t, err)

	second, err := ToEvent(first.Raw, NewSession(), map[string]*Channel{})
	require.NoError(t, err)

	require.Equal(t, first.Type, second.Type)
	require.Equal(t, first.Sender.Nickname, second.Sender.Nickname)
	require.Equal(t, first.Content, second.Content)
}
