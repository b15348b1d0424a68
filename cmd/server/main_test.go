package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kitten/backend/internal/service"
)

func TestHashPasswordCommand_Argument(t *testing.T) {
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"hash-password", "meow"})

	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("meow")))
}

func TestHashPasswordCommand_Stdin(t *testing.T) {
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("purr\n"))
	cmd.SetArgs([]string{"hash-password"})

	require.NoError(t, cmd.Execute())

	hash := strings.TrimSpace(out.String())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("purr")))
}

func TestHashPasswordCommand_Empty(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"hash-password"})

	require.ErrorIs(t, cmd.Execute(), service.ErrPasswordRequired)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "serve")
	require.Contains(t, names, "hash-password")
	require.NotNil(t, cmd.Flags().Lookup("node-id"))
}
