package service

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-tabgroups/pkg/models"
	"github.com/mattsolo1/grove-tabgroups/pkg/snapshot"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// Backend persists string values under string keys.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Refresher redraws the host's display after a mutation.
type Refresher interface {
	Refresh(t *tree.Tree, settings models.ViewSettings)
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(t *tree.Tree, settings models.ViewSettings)

func (f RefreshFunc) Refresh(t *tree.Tree, settings models.ViewSettings) { f(t, settings) }

// Config holds session configuration
type Config struct {
	RestoreWindow time.Duration
	DefaultColor  tree.Color
	// ExcerptLength caps the display width of the line text captured for line nodes.
	ExcerptLength int
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() *Config {
	return &Config{
		RestoreWindow: 10 * time.Second,
		DefaultColor:  tree.ColorDefault,
		ExcerptLength: 80,
	}
}

// Session owns the tree of one workspace and is the only writer to it. Every
// mutating operation persists a snapshot and refreshes the display exactly once.
type Session struct {
	Tree     *tree.Tree
	Settings models.ViewSettings
	Config   *Config
	Logger   *logrus.Entry

	backend   Backend
	refresher Refresher
	now       func() time.Time
}

// New creates a session with an empty tree. Call Load to read persisted state.
func New(config *Config, backend Backend, refresher Refresher, logger *logrus.Entry) *Session {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		base := logrus.New()
		base.SetOutput(io.Discard)
		logger = logrus.NewEntry(base)
	}
	return &Session{
		Tree:      tree.New(),
		Settings:  models.DefaultViewSettings(),
		Config:    config,
		Logger:    logger,
		backend:   backend,
		refresher: refresher,
		now:       time.Now,
	}
}

// SetRefresher replaces the display notified after each mutation.
func (s *Session) SetRefresher(r Refresher) {
	s.refresher = r
}

// Load reads the view settings and the tree snapshot. An unreadable snapshot leaves
// the tree empty, persists the empty tree and returns the decode error.
func (s *Session) Load() error {
	for _, f := range s.Settings.Fields() {
		raw, ok, err := s.backend.Get(f.Key)
		if err != nil {
			return fmt.Errorf("load %s: %w", f.Key, err)
		}
		if ok {
			*f.Value = models.ParseBool(raw, *f.Value)
		}
	}

	raw, ok, err := s.backend.Get(models.KeyTree)
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}
	if !ok || raw == "" {
		s.Tree.Reset()
		s.refresh()
		return nil
	}

	if err := snapshot.Unmarshal([]byte(raw), snapshot.FormatJSON, s.Tree); err != nil {
		s.Logger.WithError(err).Warn("Discarding unreadable tab group state")
		if cerr := s.commit(); cerr != nil {
			s.Logger.WithError(cerr).Error("Failed to persist reset state")
		}
		return fmt.Errorf("load tree: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{
		"nodes": s.Tree.Size(),
	}).Debug("Loaded tab groups")
	s.refresh()
	return nil
}

// Save persists the tree and the view settings without refreshing.
func (s *Session) Save() error {
	if err := s.saveTree(); err != nil {
		return err
	}
	return s.saveSettings()
}

func (s *Session) saveTree() error {
	data, err := snapshot.Marshal(s.Tree, snapshot.FormatJSON)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if err := s.backend.Set(models.KeyTree, string(data)); err != nil {
		return fmt.Errorf("persist tree: %w", err)
	}
	return nil
}

func (s *Session) saveSettings() error {
	for _, f := range s.Settings.Fields() {
		if err := s.backend.Set(f.Key, models.FormatBool(*f.Value)); err != nil {
			return fmt.Errorf("persist %s: %w", f.Key, err)
		}
	}
	return nil
}

// commit ends every mutation: one snapshot, one refresh.
func (s *Session) commit() error {
	if err := s.saveTree(); err != nil {
		return err
	}
	s.refresh()
	return nil
}

func (s *Session) refresh() {
	if s.refresher != nil {
		s.refresher.Refresh(s.Tree, s.Settings)
	}
}

// Reset clears the tree.
func (s *Session) Reset() error {
	s.Tree.Reset()
	s.Logger.Info("Reset tab groups")
	return s.commit()
}

// Export encodes the tree in the given format.
func (s *Session) Export(format snapshot.Format) ([]byte, error) {
	return snapshot.Marshal(s.Tree, format)
}

// Import replaces the tree with an exported snapshot. The current tree is kept when
// the data cannot be decoded.
func (s *Session) Import(data []byte, format snapshot.Format) error {
	staging := tree.New()
	if err := snapshot.Unmarshal(data, format, staging); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	s.Tree.Reset()
	for _, c := range staging.Root().Children() {
		s.Tree.Root().AddChild(c)
	}
	return s.commit()
}
