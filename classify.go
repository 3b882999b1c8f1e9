package kameloso

import "strings"

// servicesNicknames is the known-services set for IsSpecial's lowercased
// nickname check. Compound cases with an ident/address refinement
// (Q@QuakeNet, AuthServ@GameSurge) are modeled separately in
// compoundServices rather than hard-coded into control flow.
var servicesNicknames = map[string]bool{
	"nickserv":   true,
	"chanserv":   true,
	"operserv":   true,
	"saslserv":   true,
	"memoserv":   true,
	"hostserv":   true,
	"botserv":    true,
	"alis":       true,
	"c":          true,
	"chanfix":    true,
	"spamserv":   true,
	"global":     true,
	"helpserv":   true,
	"statserv":   true,
	"userserv":   true,
	"gameserv":   true,
	"groupserv":  true,
	"infoserv":   true,
	"reportserv": true,
	"moraleserv": true,
}

// compoundService is a (nick, ident, address suffix) triple identifying a
// services bot whose nickname alone is ambiguous with an ordinary user
// (e.g. a lone "Q" or "AuthServ").
type compoundService struct {
	nick         string
	ident        string
	addressSuffx string
}

var compoundServices = []compoundService{
	{nick: "q", ident: "TheQBot", addressSuffx: "CServe.quakenet.org"},
	{nick: "authserv", ident: "AuthServ", addressSuffx: "Services.GameSurge.net"},
}

// authServiceNicknames is the narrower set IsFromAuthService recognises.
// Deliberately smaller than servicesNicknames: ChanServ, for instance, is
// IsSpecial but never an auth service — this asymmetry is load-bearing for
// NOTICE promotion and must not be "fixed".
var authServiceNicknames = map[string]bool{
	"nickserv": true,
	"saslserv": true,
}

func matchesCompound(nick, ident, address string, compounds []compoundService) bool {
	lowerNick := strings.ToLower(nick)
	for _, c := range compounds {
		if lowerNick != c.nick {
			continue
		}
		if ident != c.ident {
			continue
		}
		if !strings.HasSuffix(address, c.addressSuffx) {
			continue
		}
		return true
	}
	return false
}

// sharesTrailingDomainLabels reports whether a and b share at least two
// trailing dot-separated labels, e.g. "irc.freenode.net" and
// "services.freenode.net" both end in "freenode.net".
func sharesTrailingDomainLabels(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	if len(as) < 2 || len(bs) < 2 {
		return false
	}
	return as[len(as)-1] == bs[len(bs)-1] && as[len(as)-2] == bs[len(bs)-2]
}

// IsSpecial implements the sender classifier: a sender is
// "special" if its address matches the server or the literal "services.",
// its nickname is a known services nickname (or a matching compound
// case), it shares a trailing domain with the server (daemon != twitch),
// or its address contains "/staff/".
func IsSpecial(sess *Session, sender User) bool {
	srv := &sess.Server

	if sender.Address != "" {
		if sender.Address == srv.Address || sender.Address == srv.ResolvedAddress {
			return true
		}
		if sender.Address == "services." {
			return true
		}
		if strings.Contains(sender.Address, "/staff/") {
			return true
		}
	}

	if servicesNicknames[strings.ToLower(sender.Nickname)] {
		return true
	}
	if matchesCompound(sender.Nickname, sender.Ident, sender.Address, compoundServices) {
		return true
	}

	if srv.Daemon != DaemonTwitch && sender.Address != "" {
		if sharesTrailingDomainLabels(sender.Address, srv.Address) ||
			sharesTrailingDomainLabels(sender.Address, srv.ResolvedAddress) {
			return true
		}
	}

	return false
}

// IsFromAuthService is the narrower classifier used only by onNotice: it
// recognises only nickserv/saslserv and the Q@QuakeNet/AuthServ@GameSurge
// compound cases. Generic services like ChanServ return false even though
// IsSpecial would return true for them.
func IsFromAuthService(sender User) bool {
	if authServiceNicknames[strings.ToLower(sender.Nickname)] {
		return true
	}
	return matchesCompound(sender.Nickname, sender.Ident, sender.Address, compoundServices)
}
