package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TokenFile persists the session token between process runs, the local
// counterpart of the browser's localStorage entry.
type TokenFile struct {
	path string
}

type tokenPayload struct {
	Token string `json:"token"`
}

func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// DefaultTokenFile places the token under the user config directory.
func DefaultTokenFile() (*TokenFile, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return NewTokenFile(filepath.Join(dir, "contactform", "token.json")), nil
}

// Load returns the persisted token, or empty when none is stored.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}

	var payload tokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode token file: %w", err)
	}
	return payload.Token, nil
}

func (f *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}

	data, err := json.Marshal(tokenPayload{Token: token})
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (f *TokenFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
