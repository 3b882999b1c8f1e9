package kameloso

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOnISUPPORTFreenodeLineParsesAllFields is an end-to-end check against
// a real freenode 005 line, covering every ISUPPORT field this parser
// understands in one pass.
func TestOnISUPPORTFreenodeLineParsesAllFields(t *testing.T) {
	sess := NewSession()
	params := []string{
		"kameloso^",
		"CHANTYPES=#",
		"PREFIX=(ov)@+",
		"CHANMODES=eIbq,k,flj,CFLMPQScgimnprstz",
		"NETWORK=freenode",
		"NICKLEN=16",
		"CASEMAPPING=rfc1459",
		"are supported",
	}

	onISUPPORT(sess, params)

	srv := sess.Server
	require.Equal(t, "#", srv.Chantypes)
	require.Equal(t, "ov", srv.Prefixes)
	require.Equal(t, "@+", srv.Prefixchars)
	require.Equal(t, "eIbq", srv.AModes)
	require.Equal(t, "k", srv.BModes)
	require.Equal(t, "flj", srv.CModes)
	require.Equal(t, "CFLMPQScgimnprstz", srv.DModes)
	require.Equal(t, "freenode", srv.Network)
	require.Equal(t, 16, srv.MaxNickLength)
	require.Equal(t, CaseMappingRFC1459, srv.CaseMapping)

	letter, ok := srv.prefixLetterForChar('@')
	require.True(t, ok)
	require.Equal(t, byte('o'), letter)
	letter, ok = srv.prefixLetterForChar('+')
	require.True(t, ok)
	require.Equal(t, byte('v'), letter)
}

func TestOnISUPPORTInvariantPrefixLengthsMatch(t *testing.T) {
	sess := NewSession()
	onISUPPORT(sess, []string{"PREFIX=(ohv)@%+"})
	require.Equal(t, len(sess.Server.Prefixes), len(sess.Server.Prefixchars))
	require.Greater(t, len(sess.Server.Chantypes), 0)
}

func TestOnISUPPORTNetworkInfersDaemon(t *testing.T) {
	sess := NewSession()
	onISUPPORT(sess, []string{"NETWORK=Rizon"})
	require.Equal(t, DaemonRizon, sess.Server.Daemon)
}

func TestOnMyInfoInfersTwitchFromHyphenAndAddress(t *testing.T) {
	sess := NewSession()
	onMyInfo(sess, "tmi.twitch.tv", []string{"kameloso^", "tmi.twitch.tv", "-"})
	require.Equal(t, DaemonTwitch, sess.Server.Daemon)
	require.Equal(t, "@", sess.Server.Prefixchars)
}

func TestOnMyInfoInfersRizonOverHybrid(t *testing.T) {
	sess := NewSession()
	onMyInfo(sess, "irc.rizon.net", []string{"kameloso^", "irc.rizon.net", "hybrid-8.2.5+rizon"})
	require.Equal(t, DaemonRizon, sess.Server.Daemon)
}

func TestOnMyInfoInfersUnreal(t *testing.T) {
	sess := NewSession()
	onMyInfo(sess, "irc.example.net", []string{"kameloso^", "irc.example.net", "UnrealIRCd-5.2.1"})
	require.Equal(t, DaemonUnreal, sess.Server.Daemon)
}

func TestNumericTableMeldPicksOverlayOverBase(t *testing.T) {
	table := typenumsOf(DaemonUnreal)
	require.Equal(t, RPL_WHOISREGNICK, table[307])
	require.Equal(t, RPL_WELCOME, table[1], "base entries survive melding untouched")
}

func TestNumericTableRizonDerivesFromHybrid(t *testing.T) {
	table := typenumsOf(DaemonRizon)
	require.Equal(t, RPL_WHOISACCOUNT, table[330], "inherited from the hybrid overlay")
	require.Equal(t, RPL_WHOISREGNICK, table[307], "rizon's own overlay entry")
}

func TestNumericTableSorircdHasNoWhoisRegnick(t *testing.T) {
	table := typenumsOf(DaemonSorircd)
	require.Equal(t, UNSET, table[307], "sorircd has no documented 307 overlay")
}
