package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Store keeps the current configuration and reloads it when the file
// changes, so callers reading Snapshot per operation observe runtime
// edits without a restart.
type Store struct {
	loader *Loader
	log    zerolog.Logger

	mu  sync.RWMutex
	cfg *Config

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewStore loads the configuration once. A load failure is logged and
// falls back to defaults rather than failing the caller.
func NewStore(loader *Loader, log zerolog.Logger) *Store {
	cfg, err := loader.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = New()
	}
	return &Store{
		loader: loader,
		log:    log,
		cfg:    cfg,
		done:   make(chan struct{}),
	}
}

// Snapshot returns the current configuration. The returned value must
// be treated as read-only.
func (s *Store) Snapshot() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Watch starts reloading the configuration whenever its file changes.
// Without a config file there is nothing to watch and Watch is a no-op.
func (s *Store) Watch() error {
	path := s.loader.ConfigPath()
	if path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory rather than the file: most editors replace
	// the file on save, which would invalidate a file-level watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return err
	}
	s.watcher = w
	s.wg.Add(1)
	go s.loop(path)
	return nil
}

func (s *Store) loop(path string) {
	defer s.wg.Done()
	base := filepath.Base(path)
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.reload(path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("config watch error")
		case <-s.done:
			return
		}
	}
}

func (s *Store) reload(path string) {
	f, err := os.Open(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("config reload failed, keeping previous")
		return
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("config reload failed, keeping previous")
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.log.Debug().Str("path", path).Msg("configuration reloaded")
}

// Close stops watching.
func (s *Store) Close() error {
	close(s.done)
	var err error
	if s.watcher != nil {
		err = s.watcher.Close()
	}
	s.wg.Wait()
	return err
}
