// Package store provides the key-value persistence layer for workspace
// drafts. Each key maps to one JSON file under the store directory; core
// transformation code never touches it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Fixed keys for the two draft documents a workspace carries.
const (
	KeyRepoDraft     = "repo_draft"
	KeyDeviceProfile = "device_profile"
)

// Store persists JSON values keyed by fixed string keys.
type Store struct {
	dir string
}

// New creates a store rooted at the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save marshals the value and writes it under the key, creating the store
// directory on first use.
func (s *Store) Save(key string, value interface{}) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// Load unmarshals the value stored under the key into out. It returns
// (false, nil) when nothing is stored yet.
func (s *Store) Load(key string, out interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return true, nil
}

// Delete removes the value stored under the key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
