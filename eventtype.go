package kameloso

// EventType is a closed enumeration of event kinds: named IRC commands,
// their self-variants, CTCP variants, and RFC/daemon numerics (via the
// Numeric Table, numerics.go).
type EventType int

const (
	// UNSET is the sentinel zero value: "nothing assigned yet".
	UNSET EventType = iota

	// NUMERIC is the fallback for a recognised-as-numeric line whose code
	// has no specialcase: "unrecognised numeric, no specialcasing".
	NUMERIC

	// Named commands.
	PRIVMSG
	NOTICE
	JOIN
	PART
	MODE
	NICK
	QUIT
	KICK
	INVITE
	TOPIC
	AWAY
	BACK
	CAP
	ACCOUNT
	CHGHOST
	PING
	PONG
	ERROR
	AUTHENTICATE
	HELLO
	WALLOPS
	SILENCE
	KNOCK

	// PRIVMSG/NOTICE target classification.
	CHAN
	QUERY

	// CTCP.
	EMOTE
	CTCP_GENERIC // verb carried in Event.Aux, per spec's dynamic "CTCP_X"

	// Self-variants: the sender nickname equals Session.Client.Nickname.
	SELFJOIN
	SELFPART
	SELFNICK
	SELFQUIT
	SELFKICK
	SELFMODE
	SELFCHAN
	SELFQUERY
	SELFEMOTE

	// Auth-service NOTICE promotions, decided by phrase-matching an
	// auth service's NOTICE content (see onNotice).
	AUTH_CHALLENGE
	AUTH_FAILURE

	// Twitch TMI dialect.
	TWITCH_HOSTSTART
	TWITCH_HOSTEND
	TWITCH_USERSTATE
	TWITCH_ROOMSTATE
	TWITCH_CLEARCHAT

	// RFC/daemon numerics with a dedicated specialcase. Numerics without a
	// specialcase resolve to NUMERIC (see numerics.go's base/overlay
	// tables) even though they have a concrete three-digit code.
	RPL_WELCOME
	RPL_MYINFO
	RPL_ISUPPORT
	RPL_LISTSTART
	RPL_LIST
	RPL_LISTEND
	RPL_TOPIC
	RPL_NOTOPIC
	RPL_CREATIONTIME
	RPL_NAMREPLY
	RPL_ENDOFNAMES
	RPL_WHOREPLY
	RPL_ENDOFWHO
	RPL_WHOISUSER
	RPL_WHOISSERVER
	RPL_WHOISCHANNELS
	RPL_WHOISIDLE
	RPL_WHOISACCOUNT
	RPL_WHOISREGNICK
	RPL_WHOISHOST
	RPL_ENDOFWHOIS
	RPL_LOGGEDIN
	RPL_BANLIST
	RPL_ENDOFBANLIST
	RPL_EXCEPTLIST
	RPL_ENDOFEXCEPTLIST
	RPL_INVITELIST
	RPL_ENDOFINVITELIST
	RPL_CHANNELMODEIS
	ERR_NOSUCHCHANNEL
	ERR_NOSUCHNICK
	ERR_NEEDPONG

	eventTypeCount // sentinel for table sizing; not a valid event kind
)

var eventTypeNames = map[EventType]string{
	UNSET:                "UNSET",
	NUMERIC:              "NUMERIC",
	PRIVMSG:              "PRIVMSG",
	NOTICE:               "NOTICE",
	JOIN:                 "JOIN",
	PART:                 "PART",
	MODE:                 "MODE",
	NICK:                 "NICK",
	QUIT:                 "QUIT",
	KICK:                 "KICK",
	INVITE:               "INVITE",
	TOPIC:                "TOPIC",
	AWAY:                 "AWAY",
	BACK:                 "BACK",
	CAP:                  "CAP",
	ACCOUNT:              "ACCOUNT",
	CHGHOST:              "CHGHOST",
	PING:                 "PING",
	PONG:                 "PONG",
	ERROR:                "ERROR",
	AUTHENTICATE:         "AUTHENTICATE",
	HELLO:                "HELLO",
	WALLOPS:              "WALLOPS",
	SILENCE:              "SILENCE",
	KNOCK:                "KNOCK",
	CHAN:                 "CHAN",
	QUERY:                "QUERY",
	EMOTE:                "EMOTE",
	CTCP_GENERIC:         "CTCP_GENERIC",
	SELFJOIN:             "SELFJOIN",
	SELFPART:             "SELFPART",
	SELFNICK:             "SELFNICK",
	SELFQUIT:             "SELFQUIT",
	SELFKICK:             "SELFKICK",
	SELFMODE:             "SELFMODE",
	SELFCHAN:             "SELFCHAN",
	SELFQUERY:            "SELFQUERY",
	SELFEMOTE:            "SELFEMOTE",
	AUTH_CHALLENGE:       "AUTH_CHALLENGE",
	AUTH_FAILURE:         "AUTH_FAILURE",
	TWITCH_HOSTSTART:     "TWITCH_HOSTSTART",
	TWITCH_HOSTEND:       "TWITCH_HOSTEND",
	TWITCH_USERSTATE:     "TWITCH_USERSTATE",
	TWITCH_ROOMSTATE:     "TWITCH_ROOMSTATE",
	TWITCH_CLEARCHAT:     "TWITCH_CLEARCHAT",
	RPL_WELCOME:          "RPL_WELCOME",
	RPL_MYINFO:           "RPL_MYINFO",
	RPL_ISUPPORT:         "RPL_ISUPPORT",
	RPL_LISTSTART:        "RPL_LISTSTART",
	RPL_LIST:             "RPL_LIST",
	RPL_LISTEND:          "RPL_LISTEND",
	RPL_TOPIC:            "RPL_TOPIC",
	RPL_NOTOPIC:          "RPL_NOTOPIC",
	RPL_CREATIONTIME:     "RPL_CREATIONTIME",
	RPL_NAMREPLY:         "RPL_NAMREPLY",
	RPL_ENDOFNAMES:       "RPL_ENDOFNAMES",
	RPL_WHOREPLY:         "RPL_WHOREPLY",
	RPL_ENDOFWHO:         "RPL_ENDOFWHO",
	RPL_WHOISUSER:        "RPL_WHOISUSER",
	RPL_WHOISSERVER:      "RPL_WHOISSERVER",
	RPL_WHOISCHANNELS:    "RPL_WHOISCHANNELS",
	RPL_WHOISIDLE:        "RPL_WHOISIDLE",
	RPL_WHOISACCOUNT:     "RPL_WHOISACCOUNT",
	RPL_WHOISREGNICK:     "RPL_WHOISREGNICK",
	RPL_WHOISHOST:        "RPL_WHOISHOST",
	RPL_ENDOFWHOIS:       "RPL_ENDOFWHOIS",
	RPL_LOGGEDIN:         "RPL_LOGGEDIN",
	RPL_BANLIST:          "RPL_BANLIST",
	RPL_ENDOFBANLIST:     "RPL_ENDOFBANLIST",
	RPL_EXCEPTLIST:       "RPL_EXCEPTLIST",
	RPL_ENDOFEXCEPTLIST:  "RPL_ENDOFEXCEPTLIST",
	RPL_INVITELIST:       "RPL_INVITELIST",
	RPL_ENDOFINVITELIST:  "RPL_ENDOFINVITELIST",
	RPL_CHANNELMODEIS:    "RPL_CHANNELMODEIS",
	ERR_NOSUCHCHANNEL:    "ERR_NOSUCHCHANNEL",
	ERR_NOSUCHNICK:       "ERR_NOSUCHNICK",
	ERR_NEEDPONG:         "ERR_NEEDPONG",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// namedCommands maps a wire command token (already upper-cased) to its
// EventType, for parseTypestring's exact-match lookup. Only commands that
// are not three-digit numerics live here.
var namedCommands = map[string]EventType{
	"PRIVMSG":      PRIVMSG,
	"NOTICE":       NOTICE,
	"JOIN":         JOIN,
	"PART":         PART,
	"MODE":         MODE,
	"NICK":         NICK,
	"QUIT":         QUIT,
	"KICK":         KICK,
	"INVITE":       INVITE,
	"TOPIC":        TOPIC,
	"AWAY":         AWAY,
	"CAP":          CAP,
	"ACCOUNT":      ACCOUNT,
	"CHGHOST":      CHGHOST,
	"PING":         PING,
	"PONG":         PONG,
	"ERROR":        ERROR,
	"AUTHENTICATE": AUTHENTICATE,
	"HELLO":        HELLO,
	"WALLOPS":      WALLOPS,
	"SILENCE":      SILENCE,
	"KNOCK":        KNOCK,
	"HOSTTARGET":   TWITCH_HOSTSTART, // resolved to start/end in dispatch
	"USERSTATE":    TWITCH_USERSTATE,
	"ROOMSTATE":    TWITCH_ROOMSTATE,
	"CLEARCHAT":    TWITCH_CLEARCHAT,
}
