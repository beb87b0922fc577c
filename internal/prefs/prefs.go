// Package prefs persists user preferences that outlive a session.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/unitcircle/internal/logger"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// FileName is the preferences file inside the store directory.
const FileName = "prefs.yaml"

type document struct {
	UnitCircleMode string `yaml:"unitCircleMode"`
}

// Store reads and writes the preferences file.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore returns a store backed by <dir>/prefs.yaml.
func NewStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, FileName),
		log:  logger.Named("prefs"),
	}
}

// Path returns the preferences file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved unit mode. A missing, unreadable or invalid file
// yields degrees.
func (s *Store) Load() trig.Unit {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("read preferences", zap.String("path", s.path), zap.Error(err))
		}
		return trig.Degrees
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.log.Warn("decode preferences", zap.String("path", s.path), zap.Error(err))
		return trig.Degrees
	}
	if doc.UnitCircleMode == "" {
		return trig.Degrees
	}

	u, err := trig.ParseUnit(doc.UnitCircleMode)
	if err != nil {
		s.log.Warn("unknown unit mode", zap.String("value", doc.UnitCircleMode))
		return trig.Degrees
	}
	return u
}

// Save writes the unit mode, creating the directory if needed.
func (s *Store) Save(u trig.Unit) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := yaml.Marshal(document{UnitCircleMode: u.String()})
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	s.log.Debug("unit mode saved", zap.Stringer("unit", u))
	return nil
}
