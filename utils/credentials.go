package utils

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
)

// CredentialStore maps shop names to their passwords, backed by a
// single JSON file. Passwords are stored and compared in the clear, and
// a shop name that has never logged in before is silently registered
// with the default password. Both are documented product decisions for
// this low-stakes admin tool, not oversights.
type CredentialStore struct {
	path            string
	defaultPassword string
	mu              sync.Mutex
}

// NewCredentialStore creates a store backed by the given JSON file
func NewCredentialStore(path, defaultPassword string) *CredentialStore {
	return &CredentialStore{path: path, defaultPassword: defaultPassword}
}

// DefaultPassword returns the password assigned to auto-registered shops
func (s *CredentialStore) DefaultPassword() string {
	return s.defaultPassword
}

// Authenticate checks a shop's password. An unknown shop is registered
// with the default password and admitted; registered tells the caller
// to surface that to the user.
func (s *CredentialStore) Authenticate(shopName, password string) (ok bool, registered bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shopName = strings.ToLower(shopName)
	creds, err := s.load()
	if err != nil {
		return false, false, err
	}

	stored, exists := creds[shopName]
	if !exists {
		creds[shopName] = s.defaultPassword
		if err := s.save(creds); err != nil {
			return false, false, err
		}
		LogInfo("Auto-registered shop %s with default password", shopName)
		return true, true, nil
	}
	return stored == password, false, nil
}

func (s *CredentialStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	creds := map[string]string{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (s *CredentialStore) save(creds map[string]string) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
