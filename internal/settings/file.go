package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// fileContents is the on-disk layout of a YAML settings file:
//
//	users:
//	  0:
//	    accessibility_display_magnification_scale: 3.0
type fileContents struct {
	Users map[int]map[string]float64 `yaml:"users"`
}

// File is a Source backed by a YAML file. Once Watch is called, edits to the file are picked up
// without reopening it.
type File struct {
	path      string
	logger    bslogger.Logger
	mu        sync.RWMutex
	values    map[int]map[string]float64
	watcher   *fsnotify.Watcher
	bounce    *debouncer
	done      chan struct{}
	closeOnce sync.Once

	// OnReload is called after a successful reload triggered by a file change.
	OnReload func()
}

// OpenFile loads the YAML settings file at path. Watch problems are reported to logger.
func OpenFile(path string, logger bslogger.Logger) (*File, error) {
	f := &File{
		path:   path,
		logger: logger,
		bounce: newDebouncer(0),
		done:   make(chan struct{}),
	}
	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// Float implements Source.
func (f *File) Float(key string, user int) (float64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	value, ok := f.values[user][key]
	if !ok {
		return 0, fmt.Errorf("%w: %s for user %d", ErrSettingNotFound, key, user)
	}
	return value, nil
}

// Path returns the file the source reads.
func (f *File) Path() string {
	return f.path
}

// Reload re-reads the file. On failure the previously loaded values are kept.
func (f *File) Reload() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var contents fileContents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSetting, f.path, err)
	}
	if contents.Users == nil {
		contents.Users = make(map[int]map[string]float64)
	}

	f.mu.Lock()
	f.values = contents.Users
	f.mu.Unlock()

	return nil
}

// Watch starts reloading the file whenever it changes on disk. The parent directory is watched
// so editors that replace the file atomically are handled.
func (f *File) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch settings directory: %w", err)
	}
	f.watcher = watcher

	go f.watchLoop()
	return nil
}

// Close stops watching the file.
func (f *File) Close() error {
	var err error
	f.closeOnce.Do(func() {
		close(f.done)
		f.bounce.cancel()
		if f.watcher != nil {
			err = f.watcher.Close()
		}
	})
	return err
}

func (f *File) watchLoop() {
	target := filepath.Clean(f.path)
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			f.bounce.trigger(f.reloadFromEvent)
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warningf("Watching %s: %s", f.path, err)
		}
	}
}

func (f *File) reloadFromEvent() {
	if err := f.Reload(); err != nil {
		f.logger.Warningf("Reloading %s: %s", f.path, err)
		return
	}
	f.logger.Debugf("Reloaded %s", f.path)
	if f.OnReload != nil {
		f.OnReload()
	}
}
