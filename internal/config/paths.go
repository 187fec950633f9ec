package config

import (
	"os"
	"path/filepath"
)

const (
	// DirEnv overrides the micbot data directory
	DirEnv = "MICBOT_DIR"

	DBFile     = "db.json"
	ConfigFile = "micbot.toml"
)

// Paths holds all resolved paths for micbot operations
type Paths struct {
	Dir string // ~/.micbot (micbot data directory)
}

// ResolvePaths resolves all paths based on environment and defaults
func ResolvePaths() (*Paths, error) {
	// Data directory (can be overridden)
	if dir := os.Getenv(DirEnv); dir != "" {
		return &Paths{Dir: dir}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Paths{Dir: filepath.Join(home, ".micbot")}, nil
}

// DBPath returns the path to the hook database
func (p *Paths) DBPath() string {
	return filepath.Join(p.Dir, DBFile)
}

// ConfigPath returns the path to micbot.toml
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.Dir, ConfigFile)
}

// DirExists checks if the micbot directory exists
func (p *Paths) DirExists() bool {
	info, err := os.Stat(p.Dir)
	if err != nil {
		return false
	}
	return info.IsDir()
}
