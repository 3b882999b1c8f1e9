package kameloso

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSessionPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kameloso.conf")
	contents := "nickname = kameloso^\n" +
		"username = kameloso\n" +
		"realname = kameloso bot\n" +
		"serveraddress = irc.freenode.net\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	sess := NewSession()
	require.NoError(t, LoadSessionPreset(path, sess))

	require.Equal(t, "kameloso^", sess.Client.Nickname)
	require.Equal(t, "kameloso", sess.Client.User)
	require.Equal(t, "irc.freenode.net", sess.Server.Address)
	require.True(t, sess.Updated)
}

func TestLoadSessionPresetMissingFieldErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kameloso.conf")
	require.NoError(t, os.WriteFile(path, []byte("nickname = kameloso^\n"), 0o644))

	sess := NewSession()
	require.Error(t, LoadSessionPreset(path, sess))
}
