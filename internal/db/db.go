// Package db persists the hook list, the active hook and the owner name in a
// single JSON document (db.json) inside the micbot data directory.
//
// The whole document is rewritten after every mutation. There is no file
// locking; concurrent writers race and the last write wins.
package db

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"slices"

	"github.com/samhoang/micbot/internal/config"
	mberrors "github.com/samhoang/micbot/internal/errors"
	"github.com/samhoang/micbot/internal/hook"
)

// Store is the in-memory view of one db.json document
type Store struct {
	dir    string
	hooks  []hook.Hook
	active *hook.Hook
	name   string
}

// Entry is a hook as listed, with its active flag
type Entry struct {
	hook.Hook
	Active bool
}

// document is the on-disk shape
type document struct {
	Hooks      []hook.Hook `json:"hooks"`
	ActiveHook *hook.Hook  `json:"active_hook"`
	Name       string      `json:"name"`
}

// rawDocument is used on load so missing keys can be told apart from zero values
type rawDocument struct {
	Hooks      *[]rawHook `json:"hooks"`
	ActiveHook *rawHook   `json:"active_hook"`
	Name       *string    `json:"name"`
}

type rawHook struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

func (r rawHook) toHook() (hook.Hook, bool) {
	if r.Name == nil || r.URL == nil {
		return hook.Hook{}, false
	}
	return hook.Hook{Name: *r.Name, URL: *r.URL}, true
}

// Open loads the store kept in dir. A missing db.json yields an empty store
// owned by the current OS user; nothing is written until the first mutation.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			s.hooks = []hook.Hook{}
			s.name = currentUser()
			slog.Debug("db: no document, using defaults", "path", s.Path(), "name", s.name)
			return s, nil
		}
		return nil, mberrors.NewStoreError("read", s.Path(), err)
	}

	if err := s.decode(data); err != nil {
		return nil, mberrors.NewStoreError("load", s.Path(), err)
	}

	slog.Debug("db: loaded", "path", s.Path(), "hooks", len(s.hooks))
	return s, nil
}

// OpenDefault opens the store in the resolved micbot directory
func OpenDefault() (*Store, error) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, err
	}
	return Open(paths.Dir)
}

func (s *Store) decode(data []byte) error {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", mberrors.ErrCorruptDocument, err)
	}

	if raw.Hooks == nil {
		return fmt.Errorf(`%w: missing "hooks"`, mberrors.ErrCorruptDocument)
	}
	if raw.Name == nil {
		return fmt.Errorf(`%w: missing "name"`, mberrors.ErrCorruptDocument)
	}

	hooks := make([]hook.Hook, 0, len(*raw.Hooks))
	for i, rh := range *raw.Hooks {
		h, ok := rh.toHook()
		if !ok {
			return fmt.Errorf("%w: hook %d needs name and url", mberrors.ErrCorruptDocument, i)
		}
		hooks = append(hooks, h)
	}

	var active *hook.Hook
	if raw.ActiveHook != nil {
		h, ok := raw.ActiveHook.toHook()
		if !ok {
			return fmt.Errorf("%w: active_hook needs name and url", mberrors.ErrCorruptDocument)
		}
		active = &h
	}

	s.hooks = hooks
	s.active = active
	s.name = *raw.Name
	return nil
}

// Dir returns the directory holding the document
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path to db.json
func (s *Store) Path() string {
	return filepath.Join(s.dir, config.DBFile)
}

// Name returns the owner display name
func (s *Store) Name() string {
	return s.name
}

// ListHooks returns all hooks in insertion order. Only the first hook
// matching the active name is flagged active.
func (s *Store) ListHooks() []Entry {
	entries := make([]Entry, 0, len(s.hooks))
	marked := false
	for _, h := range s.hooks {
		active := !marked && s.active != nil && h.Same(*s.active)
		if active {
			marked = true
		}
		entries = append(entries, Entry{Hook: h, Active: active})
	}
	return entries
}

// HookNames returns hook names in insertion order
func (s *Store) HookNames() []string {
	names := make([]string, 0, len(s.hooks))
	for _, h := range s.hooks {
		names = append(names, h.Name)
	}
	return names
}

// GetHook returns the first hook named name
func (s *Store) GetHook(name string) (hook.Hook, bool) {
	i := s.index(name)
	if i < 0 {
		return hook.Hook{}, false
	}
	return s.hooks[i], true
}

// ActiveHook returns the active hook, if any
func (s *Store) ActiveHook() (hook.Hook, bool) {
	if s.active == nil {
		return hook.Hook{}, false
	}
	return *s.active, true
}

// AddHook appends a hook and persists the store. It returns false without
// changing anything when the name is empty or taken, or when url is not a
// webhook URL. The first hook added to an empty store becomes active.
func (s *Store) AddHook(name, url string) (bool, error) {
	if hook.Validate(name, url) != nil {
		return false, nil
	}
	if s.index(name) >= 0 {
		return false, nil
	}

	prevHooks, prevActive := s.hooks, s.active

	h := hook.Hook{Name: name, URL: url}
	s.hooks = append(slices.Clip(s.hooks), h)
	if len(s.hooks) == 1 {
		s.active = &h
	}

	if err := s.Save(); err != nil {
		s.hooks, s.active = prevHooks, prevActive
		return false, err
	}

	slog.Debug("db: added hook", "name", name, "active", s.active != nil && s.active.Same(h))
	return true, nil
}

// RemoveHook deletes the first hook named name and persists the store.
// If that hook was active, the first remaining hook becomes active, or
// none when the store is now empty.
func (s *Store) RemoveHook(name string) (bool, error) {
	i := s.index(name)
	if i < 0 {
		return false, nil
	}

	prevHooks, prevActive := s.hooks, s.active

	removed := s.hooks[i]
	s.hooks = append(append([]hook.Hook(nil), s.hooks[:i]...), s.hooks[i+1:]...) // slices.Concat needs go1.22

	if s.active != nil && s.active.Same(removed) {
		if j := s.index(removed.Name); j >= 0 {
			next := s.hooks[j]
			s.active = &next
		} else if len(s.hooks) > 0 {
			next := s.hooks[0]
			s.active = &next
		} else {
			s.active = nil
		}
	}

	if err := s.Save(); err != nil {
		s.hooks, s.active = prevHooks, prevActive
		return false, err
	}

	slog.Debug("db: removed hook", "name", name, "remaining", len(s.hooks))
	return true, nil
}

// SetActiveHook marks h as active and persists the store. h is not checked
// against the stored hooks; callers look it up with GetHook first.
func (s *Store) SetActiveHook(h hook.Hook) error {
	prev := s.active
	s.active = &h

	if err := s.Save(); err != nil {
		s.active = prev
		return err
	}

	slog.Debug("db: active hook set", "name", h.Name)
	return nil
}

// Save writes the full document, creating the directory if needed
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return mberrors.NewStoreError("create directory", s.dir, err)
	}

	doc := document{
		Hooks:      s.hooks,
		ActiveHook: s.active,
		Name:       s.name,
	}
	if doc.Hooks == nil {
		doc.Hooks = []hook.Hook{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return mberrors.NewStoreError("encode", s.Path(), err)
	}

	if err := os.WriteFile(s.Path(), append(data, '\n'), 0600); err != nil {
		return mberrors.NewStoreError("write", s.Path(), err)
	}

	slog.Debug("db: saved", "path", s.Path(), "hooks", len(s.hooks))
	return nil
}

func (s *Store) index(name string) int {
	return slices.IndexFunc(s.hooks, func(h hook.Hook) bool {
		return h.Name == name
	})
}

// currentUser returns the login name of the current OS user
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}
