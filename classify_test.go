package kameloso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSpecialServerAddressMatch(t *testing.T) {
	sess := NewSession()
	sess.Server.Address = "adams.freenode.net"
	require.True(t, IsSpecial(sess, User{Address: "adams.freenode.net"}))
}

func TestIsSpecialServicesNickname(t *testing.T) {
	sess := NewSession()
	require.True(t, IsSpecial(sess, User{Nickname: "ChanServ"}))
}

func TestIsSpecialStaffAddress(t *testing.T) {
	sess := NewSession()
	require.True(t, IsSpecial(sess, User{Address: "unaffiliated/staff/bob"}))
}

func TestIsSpecialSharedTrailingDomain(t *testing.T) {
	sess := NewSession()
	sess.Server.Address = "irc.freenode.net"
	require.True(t, IsSpecial(sess, User{Address: "services.freenode.net"}))
}

func TestIsSpecialSharedDomainExemptOnTwitch(t *testing.T) {
	sess := NewSession()
	sess.Server.Address = "irc.twitch.tv"
	sess.Server.Daemon = DaemonTwitch
	require.False(t, IsSpecial(sess, User{Address: "tmi.twitch.tv"}))
}

func TestIsSpecialOrdinaryUserIsNotSpecial(t *testing.T) {
	sess := NewSession()
	sess.Server.Address = "irc.freenode.net"
	require.False(t, IsSpecial(sess, User{Nickname: "zorael", Address: "ns3363704.ip-94-23-253.eu"}))
}

func TestIsSpecialStandaloneCNickname(t *testing.T) {
	sess := NewSession()
	require.True(t, IsSpecial(sess, User{Nickname: "C"}))
}

// TestChanServIsSpecialButNotAuthService pins the deliberate asymmetry
// between IsSpecial and IsFromAuthService: ChanServ is always special,
// but never an auth-service NOTICE sender.
func TestChanServIsSpecialButNotAuthService(t *testing.T) {
	sess := NewSession()
	sender := User{Nickname: "ChanServ"}
	require.True(t, IsSpecial(sess, sender))
	require.False(t, IsFromAuthService(sender))
}

func TestNickServIsBothSpecialAndAuthService(t *testing.T) {
	sess := NewSession()
	sender := User{Nickname: "NickServ"}
	require.True(t, IsSpecial(sess, sender))
	require.True(t, IsFromAuthService(sender))
}

func TestCompoundServiceQAtQuakeNet(t *testing.T) {
	sess := NewSession()
	sender := User{Nickname: "Q", Ident: "TheQBot", Address: "CServe.quakenet.org"}
	require.True(t, IsSpecial(sess, sender))
	require.True(t, IsFromAuthService(sender))
}

func TestCompoundServiceRequiresExactMatch(t *testing.T) {
	sess := NewSession()
	sender := User{Nickname: "Q", Ident: "SomeOtherIdent", Address: "example.com"}
	require.False(t, IsFromAuthService(sender))
}
