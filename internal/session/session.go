package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"
)

const (
	keyUserID = "userId"
	keyTheme  = "theme"

	// ThemeLight and ThemeDark are the two supported preferences.
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// fileState is the on-disk shape of a session.
type fileState struct {
	UserID string `json:"userId"`
	Theme  string `json:"theme"`
}

// Session is the explicit caller context: the identity sent with every API
// request and the theme preference. It is loaded once at startup and
// persisted on every change, replacing ambient global state.
type Session struct {
	path  string
	store *cache.Cache
}

// Load reads the session file at path, creating state from defaultUserID
// when the file does not exist yet. The identity must be set somewhere: an
// empty resolved user id is an error, never silently defaulted.
func Load(path, defaultUserID string) (*Session, error) {
	s := &Session{
		path:  path,
		store: cache.New(cache.NoExpiration, 0),
	}

	state := fileState{UserID: defaultUserID, Theme: ThemeLight}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// first run, keep defaults
	case err != nil:
		return nil, fmt.Errorf("read session file: %w", err)
	default:
		if err := json.Unmarshal(raw, &state); err != nil {
			return nil, fmt.Errorf("parse session file %s: %w", path, err)
		}
	}

	if state.UserID == "" {
		return nil, fmt.Errorf("no caller identity configured in %s or config", path)
	}
	if state.Theme != ThemeLight && state.Theme != ThemeDark {
		state.Theme = ThemeLight
	}

	s.store.Set(keyUserID, state.UserID, cache.NoExpiration)
	s.store.Set(keyTheme, state.Theme, cache.NoExpiration)
	return s, nil
}

// UserID returns the caller identity.
func (s *Session) UserID() string {
	return s.get(keyUserID)
}

// Theme returns the theme preference.
func (s *Session) Theme() string {
	return s.get(keyTheme)
}

// SetUserID changes the caller identity and persists immediately.
func (s *Session) SetUserID(id string) error {
	if id == "" {
		return errors.New("caller identity cannot be empty")
	}
	s.store.Set(keyUserID, id, cache.NoExpiration)
	return s.persist()
}

// SetTheme changes the theme preference and persists immediately.
func (s *Session) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	s.store.Set(keyTheme, theme, cache.NoExpiration)
	return s.persist()
}

func (s *Session) get(key string) string {
	if v, ok := s.store.Get(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func (s *Session) persist() error {
	state := fileState{UserID: s.get(keyUserID), Theme: s.get(keyTheme)}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
