// Package wm implements the window management core: an event-driven
// manager that owns all window state and drives the X server through
// the Server interface. The manager is single-threaded; every state
// mutation happens on its Serve goroutine.
package wm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

// ErrShutdown is returned by Dispatch when the user confirmed exit.
var ErrShutdown = errors.New("wm: shutdown requested")

// ExecFunc launches a shell command and returns its process id.
type ExecFunc func(command string) (int, error)

// Options tune the manager. Zero values select defaults.
type Options struct {
	// SnapThreshold is the edge-snap distance for moves, in pixels.
	SnapThreshold int
	// MinWindowSize is the smallest width and height a resize allows.
	MinWindowSize int
	// Exec launches runner commands.
	Exec ExecFunc
	// Logger receives the manager's structured logs.
	Logger *slog.Logger
}

// Manager owns all window manager state and consumes the event stream.
type Manager struct {
	srv    Server
	events <-chan xgb.Event
	log    *slog.Logger

	registry *Registry
	cache    *GeometryCache
	drag     *DragController
	modal    *ModalController

	savedGeometry map[xproto.Window]Geometry
	exec          ExecFunc
}

// New creates a manager over srv consuming events.
func New(srv Server, events <-chan xgb.Event, opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	exec := opts.Exec
	if exec == nil {
		exec = func(string) (int, error) {
			return 0, errors.New("command execution disabled")
		}
	}
	sw, sh := srv.ScreenSize()
	return &Manager{
		srv:           srv,
		events:        events,
		log:           log,
		registry:      NewRegistry(),
		cache:         NewGeometryCache(srv.Geometry),
		drag:          NewDragController(sw, sh, opts.SnapThreshold, opts.MinWindowSize),
		modal:         NewModalController(),
		savedGeometry: make(map[xproto.Window]Geometry),
		exec:          exec,
	}
}

func (m *Manager) String() string {
	return "wm"
}

// Serve consumes events until the context is cancelled, the event
// channel closes, or a dispatch asks to shut down.
func (m *Manager) Serve(ctx context.Context) error {
	m.log.Info("window manager running")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-m.events:
			if !ok {
				m.log.Info("event stream closed, stopping")
				return suture.ErrTerminateSupervisorTree
			}
			if err := m.Dispatch(ev); err != nil {
				if errors.Is(err, ErrShutdown) {
					m.log.Info("exit confirmed, stopping")
					return suture.ErrTerminateSupervisorTree
				}
				return err
			}
		}
	}
}
