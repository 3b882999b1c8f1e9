package kameloso

import (
	"github.com/horgh/config"
	"github.com/pkg/errors"
)

// SessionPreset is the set of fields an embedder typically wants to seed a
// Session with before registration completes — the identity it will
// introduce itself with, and the server address used for IsSpecial's
// address-match heuristic. Every field is required: horgh/config.GetConfig
// rejects a config file missing any of them.
type SessionPreset struct {
	Nickname      string
	Username      string
	RealName      string
	ServerAddress string
}

// LoadSessionPreset reads a "key = value" config file at path (the format
// github.com/horgh/config understands) and applies it to sess.
func LoadSessionPreset(path string, sess *Session) error {
	var preset SessionPreset
	if err := config.GetConfig(path, &preset); err != nil {
		return errors.Wrap(err, "kameloso: loading session preset")
	}

	sess.Client.Nickname = preset.Nickname
	sess.Client.User = preset.Username
	sess.Client.Ident = preset.Username
	sess.Server.Address = preset.ServerAddress
	sess.Updated = true
	return nil
}
