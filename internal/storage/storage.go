// Package storage provides file system operations for the .shopctl/ directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nslux/shopctl/internal/model"
)

const (
	// shopctlDir is the name of the shopctl directory.
	shopctlDir = ".shopctl"
	// sessionFile holds tokens and the cart snapshot within .shopctl/.
	sessionFile = "session.json"
)

// Storage provides access to a .shopctl/ directory.
type Storage struct {
	root string // path to directory containing .shopctl/
}

// New returns a Storage rooted at the given directory. The .shopctl/
// directory is created lazily on first write, so New never fails on a
// fresh machine.
func New(dir string) *Storage {
	return &Storage{root: dir}
}

// DefaultDir returns the directory the session lives under: SHOPCTL_HOME if
// set, otherwise the user's home directory.
func DefaultDir() string {
	if dir := os.Getenv("SHOPCTL_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Root returns the root directory containing .shopctl/.
func (s *Storage) Root() string {
	return s.root
}

func (s *Storage) dirPath() string {
	return filepath.Join(s.root, shopctlDir)
}

func (s *Storage) sessionPath() string {
	return filepath.Join(s.dirPath(), sessionFile)
}

// LoadSession reads the persisted session. A missing or malformed file is
// not an error: startup must survive a corrupt cart snapshot, so both cases
// fall back to an anonymous session with an empty cart.
func (s *Storage) LoadSession() model.Session {
	data, err := os.ReadFile(s.sessionPath())
	if err != nil {
		return model.Session{}
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return model.Session{}
	}
	return sess
}

// writeSession serializes the full session record, creating .shopctl/ if
// needed. Every save is an unconditional overwrite.
func (s *Storage) writeSession(sess model.Session) error {
	if err := os.MkdirAll(s.dirPath(), 0755); err != nil {
		return fmt.Errorf("failed to create %s/: %w", shopctlDir, err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.sessionPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// SaveCart overwrites the cart snapshot, preserving any stored tokens.
func (s *Storage) SaveCart(cart model.Cart) error {
	sess := s.LoadSession()
	sess.Cart = cart
	return s.writeSession(sess)
}

// SaveUserToken stores the user bearer token.
func (s *Storage) SaveUserToken(token string) error {
	sess := s.LoadSession()
	sess.UserToken = token
	return s.writeSession(sess)
}

// SaveAdminToken stores the admin bearer token. The user token key is left
// alone; the two credential kinds are stored independently.
func (s *Storage) SaveAdminToken(token string) error {
	sess := s.LoadSession()
	sess.AdminToken = token
	return s.writeSession(sess)
}

// ClearUserToken removes only the user credential, keeping the cart.
func (s *Storage) ClearUserToken() error {
	sess := s.LoadSession()
	sess.UserToken = ""
	return s.writeSession(sess)
}

// ClearTokens removes both credentials. The cart is cleared separately by
// the caller; logout discards it through the cart manager.
func (s *Storage) ClearTokens() error {
	sess := s.LoadSession()
	sess.UserToken = ""
	sess.AdminToken = ""
	return s.writeSession(sess)
}
