package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Banup3/TaskManager/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	file := filepath.Join(t.TempDir(), "secret")

	secret, err := loadOrGenerateSecret(file)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(secret), jwtx.MinSecretSize)

	// A second load must return the same secret, not generate a new one.
	again, err := loadOrGenerateSecret(file)
	require.NoError(t, err)
	require.Equal(t, secret, again)
}

func TestLoadOrGenerateSecret_RejectsShortSecret(t *testing.T) {
	file := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(file, []byte("too-short"), 0600))

	_, err := loadOrGenerateSecret(file)
	require.Error(t, err)
}
