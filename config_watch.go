package orbitview

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig reloads path whenever it changes and sends every config that
// parses and validates. Bad edits are logged and skipped. The channel closes
// when ctx is done.
func WatchConfig(ctx context.Context, path string, log Logger) (<-chan Config, error) {
	if log == nil {
		log = NewNopLogger()
	}
	log = componentLogger(log, "config")
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	updates := make(chan Config, 1)
	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					log.Warnf("config reload skipped: %v", err)
					continue
				}
				log.Infof("config reloaded from %s", path)
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("config watcher: %v", err)
			}
		}
	}()
	return updates, nil
}

// ConfigReloadModule applies configs from Updates to the Viewer between frames.
type ConfigReloadModule struct {
	Updates <-chan Config
}

func (m ConfigReloadModule) Install(app *App, cmd *Commands) {
	updates := m.Updates
	cmd.UseSystem(
		System(func(v *Viewer) {
			for {
				select {
				case cfg, ok := <-updates:
					if !ok {
						return
					}
					v.ApplyConfig(cfg)
				default:
					return
				}
			}
		}).InStage(Prelude),
	)
}
