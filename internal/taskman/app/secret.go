package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Banup3/TaskManager/pkg/cryptox"
	"github.com/Banup3/TaskManager/pkg/jwtx"
)

// loadOrGenerateSecret loads the HS256 signing secret from the given file or
// generates one on first boot. The generated secret is stored as base64url
// text so it survives editors and copy-paste. Regenerating the secret
// invalidates every outstanding token, so the file should live on persistent
// storage.
func loadOrGenerateSecret(file string) ([]byte, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, err
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize512)
		if err != nil {
			return nil, err
		}
		secret := []byte(token)
		if err := os.WriteFile(file, secret, 0600); err != nil {
			return nil, err
		}
		return secret, nil
	}

	secret, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(secret) < jwtx.MinSecretSize {
		return nil, fmt.Errorf("signing secret in %s is too short: need at least %d bytes", file, jwtx.MinSecretSize)
	}
	return secret, nil
}
