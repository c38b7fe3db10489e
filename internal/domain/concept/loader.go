package concept

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/veritaslex/arbilens/internal/infrastructure/monitoring/logging"
	"github.com/veritaslex/arbilens/pkg/errors"
	"github.com/veritaslex/arbilens/pkg/types/analysis"
)

// seedFile is the YAML shape of a concept seed file:
//
//	concepts:
//	  - name: force majeure
//	    variations: [act of god, unforeseeable circumstances]
type seedFile struct {
	Concepts []struct {
		Name       string   `yaml:"name"`
		Variations []string `yaml:"variations"`
	} `yaml:"concepts"`
}

// LoadFile parses a YAML concept seed file.  A file with no usable concepts
// is rejected rather than silently emptying the registry.
func LoadFile(path string) ([]analysis.Concept, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSeedFileInvalid, "failed to read concept file").
			WithDetail("path=" + path)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSeedFileInvalid, "failed to parse concept file").
			WithDetail("path=" + path)
	}

	out := make([]analysis.Concept, 0, len(f.Concepts))
	for _, c := range f.Concepts {
		cleaned := cleanVariations(c.Variations)
		if c.Name == "" || len(cleaned) == 0 {
			continue
		}
		out = append(out, analysis.Concept{Name: c.Name, Variations: cleaned})
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeSeedFileInvalid, "concept file contains no usable concepts").
			WithDetail("path=" + path)
	}
	return out, nil
}

// SeedFromFile replaces the registry's contents with the concepts in path.
func SeedFromFile(r *Registry, path string) error {
	concepts, err := LoadFile(path)
	if err != nil {
		return err
	}
	r.Replace(concepts)
	return nil
}

// Watcher reloads a registry whenever its seed file changes on disk.
type Watcher struct {
	registry *Registry
	path     string
	logger   logging.Logger
	fw       *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher starts watching path and atomically replaces the registry's
// concept set on every successful reload.  A change that fails to parse
// leaves the running registry untouched.
//
// The parent directory is watched rather than the file itself so that
// editors and config systems that replace the file (rename-over-write)
// keep triggering events.
func NewWatcher(r *Registry, path string, logger logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create concept file watcher")
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to watch concept file directory").
			WithDetail("path=" + path)
	}

	w := &Watcher{
		registry: r,
		path:     path,
		logger:   logger.Named("concepts"),
		fw:       fw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := SeedFromFile(w.registry, w.path); err != nil {
				w.logger.Warn("concept file changed but reload failed; keeping previous concepts",
					logging.String("path", w.path), logging.Err(err))
				continue
			}
			w.logger.Info("concept registry reloaded",
				logging.String("path", w.path), logging.Int("concepts", w.registry.Len()))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("concept file watcher error", logging.Err(err))
		}
	}
}

// Close stops the watcher.  Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
