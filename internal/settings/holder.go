package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"collviz/internal/logging"
)

const defaultDebounce = 250 * time.Millisecond

// Holder publishes the current Options to concurrent readers. A reload
// replaces the value only after the whole file loaded successfully.
type Holder struct {
	path     string
	logger   *slog.Logger
	debounce time.Duration

	current atomic.Pointer[Options]
	reloads singleflight.Group

	mu          sync.Mutex
	subscribers []chan<- Options
}

// HolderOption customizes a Holder.
type HolderOption func(*Holder)

// WithDebounce sets how long Watch waits after the last file event before
// reloading.
func WithDebounce(d time.Duration) HolderOption {
	return func(h *Holder) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// NewHolder publishes initial and reloads from path.
func NewHolder(initial Options, path string, logger *slog.Logger, opts ...HolderOption) *Holder {
	h := &Holder{
		path:     path,
		logger:   logging.NewComponentLogger(logger, "settings"),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.current.Store(&initial)
	return h
}

// Path returns the settings file the holder reloads from.
func (h *Holder) Path() string {
	return h.path
}

// Get returns the published options.
func (h *Holder) Get() Options {
	return *h.current.Load()
}

// Reload reads the settings file again. On failure the published options
// stay as they were and the load error is returned. Concurrent calls share
// one read of the file.
func (h *Holder) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err, _ := h.reloads.Do(h.path, func() (any, error) {
		return nil, h.reload()
	})
	return err
}

func (h *Holder) reload() error {
	opts, err := Load(NewReader(NewFile(h.path), h.logger))
	if err != nil {
		h.logger.Error("settings reload failed; keeping previous options",
			logging.String(logging.FieldEventType, "settings.reload_failed"),
			logging.String(logging.FieldPath, h.path),
			logging.Error(err),
		)
		return fmt.Errorf("reload settings: %w", err)
	}
	h.current.Store(&opts)
	h.notify(opts)
	h.logger.Info("settings reloaded",
		logging.String(logging.FieldEventType, "settings.reloaded"),
		logging.String(logging.FieldPath, h.path),
	)
	return nil
}

// Subscribe registers ch to receive options after each successful reload.
// Delivery never blocks; a full channel misses that update.
func (h *Holder) Subscribe(ch chan<- Options) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, ch)
}

func (h *Holder) notify(opts Options) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- opts:
		default:
			h.logger.Warn("settings subscriber not ready; update dropped",
				logging.String(logging.FieldEventType, "settings.notify_dropped"),
			)
		}
	}
}

// Watch reloads whenever the settings file is written or created, until ctx
// is cancelled. The parent directory is watched so editors and atomic
// writers that rename a new file into place are seen too.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch settings directory: %w", err)
	}
	h.logger.Info("watching settings file",
		logging.String(logging.FieldEventType, "settings.watch_started"),
		logging.String(logging.FieldPath, h.path),
	)

	target := filepath.Clean(h.path)
	timer := time.NewTimer(h.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("settings watcher stopped",
				logging.String(logging.FieldEventType, "settings.watch_stopped"),
			)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.logger.Debug("settings file changed",
				logging.String(logging.FieldEventType, "settings.file_changed"),
				logging.String("op", event.Op.String()),
			)
			timer.Reset(h.debounce)
		case <-timer.C:
			// Failures are logged by Reload and leave the published value alone.
			_ = h.Reload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn("settings watcher error",
				logging.String(logging.FieldEventType, "settings.watch_error"),
				logging.Error(err),
			)
		}
	}
}
