// Command cp437server is a demo of the external-collaborator contract
// spec.md §6 describes for the core engine: it owns the network and
// process I/O the core explicitly stays out of, feeding engines over
// websockets from either a live PTY process (grounded on vibetunnel's
// gorilla/websocket + creack/pty server) or a watched directory of .ans
// files (grounded on tuios's fsnotify-based config watching).
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
)

// Server holds the process-wide state: the art directory being watched and
// the logger every session shares.
type Server struct {
	Logger     *log.Logger
	WatchDir   string
	Shell      string
	DefaultBPS int

	mu    sync.RWMutex
	files []string
}

// NewServer constructs a Server and performs an initial scan of watchDir.
func NewServer(logger *log.Logger, watchDir, shell string, defaultBPS int) (*Server, error) {
	s := &Server{Logger: logger, WatchDir: watchDir, Shell: shell, DefaultBPS: defaultBPS}
	if watchDir != "" {
		if err := s.rescan(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Server) rescan() error {
	entries, err := os.ReadDir(s.WatchDir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".ans" {
			files = append(files, e.Name())
		}
	}
	s.mu.Lock()
	s.files = files
	s.mu.Unlock()
	return nil
}

// Files returns the .ans files found by the most recent scan, in directory
// (file name) order.
func (s *Server) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Watch runs an fsnotify watch loop over s.WatchDir until done is closed,
// rescanning and logging on every create/remove/rename event.
func (s *Server) Watch(done <-chan struct{}) error {
	if s.WatchDir == "" {
		<-done
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(s.WatchDir); err != nil {
		return err
	}
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := s.rescan(); err != nil {
					s.Logger.Warn("rescan failed", "err", err)
					continue
				}
				s.Logger.Info("watch dir changed", "event", ev.Op.String(), "files", len(s.Files()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.Logger.Warn("watcher error", "err", err)
		}
	}
}

// Router builds the HTTP route table: a file listing, a static file
// viewer websocket, and a live PTY websocket.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/files", s.handleListFiles).Methods(http.MethodGet)
	r.HandleFunc("/ws/file/{name}", s.handleFileSession)
	r.HandleFunc("/ws/pty", s.handlePTYSession)
	return r
}
