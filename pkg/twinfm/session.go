package twinfm

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Session is the process-wide display configuration, mutated only by
// explicit toggle commands and persisted between runs.
type Session struct {
	Dual     bool `yaml:"dual"`
	Preview  bool `yaml:"preview"`
	Metadata bool `yaml:"metadata"`

	path string
}

// LoadSession reads the saved session from configDir, falling back to
// defaults (dual pane on, metadata on) when absent or malformed.
func LoadSession(configDir string) *Session {
	s := &Session{Dual: true, Metadata: true}
	if configDir == "" {
		return s
	}
	s.path = filepath.Join(configDir, "session.yaml")
	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		logrus.WithError(err).Warnf("session file %s ignored", s.path)
		return &Session{Dual: true, Metadata: true, path: s.path}
	}
	return s
}

// Save writes the session back. Failures are logged, never fatal.
func (s *Session) Save() {
	if s.path == "" {
		return
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		logrus.WithError(err).Warn("saving session")
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logrus.WithError(err).Warn("saving session")
	}
}

func (s *Session) ToggleDual() { s.Dual = !s.Dual }

func (s *Session) TogglePreview() { s.Preview = !s.Preview }

func (s *Session) ToggleMetadata() { s.Metadata = !s.Metadata }
