package kameloso

// Daemon is a closed enumeration of the IRC server software this session
// has been inferred to be talking to. It starts at Unset/Unknown and is
// refined by onMyInfo/onISUPPORT (isupport.go).
type Daemon int

const (
	DaemonUnset Daemon = iota
	DaemonUnknown
	DaemonUnreal
	DaemonInspIRCd
	DaemonBahamut
	DaemonRatbox
	DaemonHybrid
	DaemonIrcu
	DaemonSnircd
	DaemonNefarious
	DaemonRusnet
	DaemonCharybdis
	DaemonIrcdSeven
	DaemonSorircd
	DaemonIrcnet
	DaemonTwitch
	DaemonU2
	DaemonRizon
)

var daemonNames = map[Daemon]string{
	DaemonUnset:     "unset",
	DaemonUnknown:   "unknown",
	DaemonUnreal:    "unreal",
	DaemonInspIRCd:  "inspircd",
	DaemonBahamut:   "bahamut",
	DaemonRatbox:    "ratbox",
	DaemonHybrid:    "hybrid",
	DaemonIrcu:      "ircu",
	DaemonSnircd:    "snircd",
	DaemonNefarious: "nefarious",
	DaemonRusnet:    "rusnet",
	DaemonCharybdis: "charybdis",
	DaemonIrcdSeven: "ircdseven",
	DaemonSorircd:   "sorircd",
	DaemonIrcnet:    "ircnet",
	DaemonTwitch:    "twitch",
	DaemonU2:        "u2",
	DaemonRizon:     "rizon",
}

func (d Daemon) String() string {
	if name, ok := daemonNames[d]; ok {
		return name
	}
	return "unknown"
}

// numericTableSize is an artefact of IRC numerics being three digits; treat
// it as a contract.
const numericTableSize = 1024

// NumericTable maps a three-digit numeric to its event kind.
type NumericTable [numericTableSize]EventType

// baseNumerics is the RFC 1459/2812-plus-common-extensions table every
// daemon table starts from.
var baseNumerics = map[int]EventType{
	1:   RPL_WELCOME,
	4:   RPL_MYINFO,
	5:   RPL_ISUPPORT,
	20:  HELLO,
	311: RPL_WHOISUSER,
	312: RPL_WHOISSERVER,
	315: RPL_ENDOFWHO,
	317: RPL_WHOISIDLE,
	318: RPL_ENDOFWHOIS,
	319: RPL_WHOISCHANNELS,
	321: RPL_LISTSTART,
	322: RPL_LIST,
	323: RPL_LISTEND,
	324: RPL_CHANNELMODEIS,
	329: RPL_CREATIONTIME,
	331: RPL_NOTOPIC,
	332: RPL_TOPIC,
	346: RPL_INVITELIST,
	347: RPL_ENDOFINVITELIST,
	348: RPL_EXCEPTLIST,
	349: RPL_ENDOFEXCEPTLIST,
	352: RPL_WHOREPLY,
	353: RPL_NAMREPLY,
	366: RPL_ENDOFNAMES,
	367: RPL_BANLIST,
	368: RPL_ENDOFBANLIST,
	401: ERR_NOSUCHNICK,
	403: ERR_NOSUCHCHANNEL,
	513: ERR_NEEDPONG,
	900: RPL_LOGGEDIN,
}

// Per-daemon overlays: only a daemon's divergences from the base table.
// sorircd's real-world siblings (bdqircd, chatircd, irch, ithildin,
// anothernet) have no overlay here deliberately: they fall through to the
// "unknown" daemon's base-only table until a real overlay is sourced. Do
// not invent one.
var (
	overlayUnreal = map[int]EventType{
		307: RPL_WHOISREGNICK,
		330: RPL_WHOISACCOUNT,
		378: RPL_WHOISHOST,
	}
	overlayInspIRCd = map[int]EventType{
		330: RPL_WHOISACCOUNT,
		378: RPL_WHOISHOST,
	}
	overlayBahamut = map[int]EventType{
		307: RPL_WHOISREGNICK,
	}
	overlayRatbox = map[int]EventType{
		330: RPL_WHOISACCOUNT,
	}
	overlayHybrid = map[int]EventType{
		330: RPL_WHOISACCOUNT,
	}
	overlayIrcu      = map[int]EventType{}
	overlaySnircd    = map[int]EventType{}
	overlayNefarious = map[int]EventType{}
	overlayRusnet    = map[int]EventType{}
	overlayCharybdis = map[int]EventType{
		330: RPL_WHOISACCOUNT,
		378: RPL_WHOISHOST,
	}
	overlaySorircd = map[int]EventType{}
	overlayIrcnet  = map[int]EventType{}
	overlayTwitch  = map[int]EventType{}
	overlayU2      = map[int]EventType{}
	overlayRizon   = map[int]EventType{
		307: RPL_WHOISREGNICK,
	}
)

// meld copies base and overwrites with every non-UNSET entry of overlay.
// This is an aggressive, asymmetric merge: the overlay always wins where it
// has an opinion. A symmetric merge would let a later, less-specific
// overlay clobber an earlier daemon-specific one (see typenumsOf's
// multi-overlay cases below), so this must stay one-directional.
func meld(base map[int]EventType, overlays ...map[int]EventType) NumericTable {
	var table NumericTable
	for k, v := range base {
		table[k] = v
	}
	for _, overlay := range overlays {
		for k, v := range overlay {
			table[k] = v
		}
	}
	return table
}

// typenumsOf returns the fully-melded numeric table for a daemon. It is a
// pure function: rebuilding it costs O(1024) and is not hot, so callers
// rebuild eagerly whenever Session.Server.Daemon changes.
func typenumsOf(daemon Daemon) NumericTable {
	switch daemon {
	case DaemonUnreal:
		return meld(baseNumerics, overlayUnreal)
	case DaemonInspIRCd:
		return meld(baseNumerics, overlayInspIRCd)
	case DaemonBahamut:
		return meld(baseNumerics, overlayBahamut)
	case DaemonRatbox:
		return meld(baseNumerics, overlayRatbox)
	case DaemonHybrid:
		return meld(baseNumerics, overlayHybrid)
	case DaemonIrcu:
		return meld(baseNumerics, overlayIrcu)
	case DaemonSnircd:
		// snircd <- ircu U snircd overlay
		return meld(baseNumerics, overlayIrcu, overlaySnircd)
	case DaemonNefarious:
		// nefarious <- ircu U nefarious overlay
		return meld(baseNumerics, overlayIrcu, overlayNefarious)
	case DaemonRusnet:
		return meld(baseNumerics, overlayRusnet)
	case DaemonCharybdis:
		return meld(baseNumerics, overlayCharybdis)
	case DaemonIrcdSeven:
		// ircdseven <- hybrid U ratbox U charybdis
		return meld(baseNumerics, overlayHybrid, overlayRatbox, overlayCharybdis)
	case DaemonSorircd:
		// sorircd <- charybdis U sorircd overlay
		return meld(baseNumerics, overlayCharybdis, overlaySorircd)
	case DaemonIrcnet:
		return meld(baseNumerics, overlayIrcnet)
	case DaemonTwitch:
		return meld(baseNumerics, overlayTwitch)
	case DaemonU2:
		return meld(baseNumerics, overlayU2)
	case DaemonRizon:
		// rizon <- hybrid U rizon overlay
		return meld(baseNumerics, overlayHybrid, overlayRizon)
	default:
		return meld(baseNumerics)
	}
}
