package main

import (
	"encoding/json"
	"image/png"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/creack/pty"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	term437 "github.com/cp437term/cp437term"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Files())
}

// handleFileSession streams one watched .ans file's playback as a sequence
// of PNG frames, pacing delivery with the server's default baud rate.
func (s *Server) handleFileSession(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	path := filepath.Join(s.WatchDir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	eng, err := term437.New(term437.Options{BPS: s.DefaultBPS})
	if err != nil {
		s.Logger.Error("engine create failed", "err", err)
		return
	}

	paint := func() {
		if err := sendFrame(conn, eng); err != nil {
			s.Logger.Warn("send frame failed", "err", err)
		}
	}
	eng.Play(r.Context(), data, paint)
	eng.Dispose()
	paint()
}

// handlePTYSession spawns the server's configured shell under a PTY,
// feeding its output into an Engine and streaming frames to the browser,
// while forwarding the browser's keystrokes and the engine's outbound
// DSR/DA responses back into the PTY's stdin.
func (s *Server) handlePTYSession(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	shell := s.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		s.Logger.Error("pty start failed", "err", err)
		return
	}
	defer ptmx.Close()
	defer cmd.Process.Kill()

	eng, err := term437.New(term437.Options{})
	if err != nil {
		s.Logger.Error("engine create failed", "err", err)
		return
	}

	go forwardClientInput(conn, ptmx)

	buf := make([]byte, 4096)
	ticker := time.NewTicker(term437.DefaultFrameInterval)
	defer ticker.Stop()
	dirty := false
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			eng.Feed(buf[:n])
			if resp := eng.TakeResponses(); len(resp) > 0 {
				_, _ = ptmx.Write(resp)
			}
			dirty = true
		}
		if err != nil {
			break
		}
		select {
		case <-ticker.C:
			if dirty {
				if sendErr := sendFrame(conn, eng); sendErr != nil {
					s.Logger.Warn("send frame failed", "err", sendErr)
					return
				}
				dirty = false
			}
		default:
		}
	}
	eng.Dispose()
	_ = sendFrame(conn, eng)
}

func forwardClientInput(conn *websocket.Conn, ptmx *os.File) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if _, err := ptmx.Write(data); err != nil {
			return
		}
	}
}

func sendFrame(conn *websocket.Conn, eng *term437.Engine) error {
	img := eng.NewImage()
	eng.Render(img)
	w, err := conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	defer w.Close()
	return png.Encode(w, img)
}
