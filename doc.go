// Package kameloso implements an IRC wire-protocol parser and the session
// state machine it maintains as a side effect of parsing.
//
// Call ToEvent once per inbound line. It never performs I/O: it is a pure
// function of (line, *Session, map[string]*Channel) to (Event, error). The
// caller owns the network connection, the Session and the Channel table;
// this package only mutates them.
package kameloso
