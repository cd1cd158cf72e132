package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	term437 "github.com/cp437term/cp437term"
)

// newTestServer writes a single .ans file into a temp watch dir and returns
// a Server backed by it, the way the teacher's examples spin up fixtures
// under t.TempDir() rather than a checked-in testdata tree.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	content := []byte("\x1b[31mHELLO\x1b[0m")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greeting.ans"), content, 0o644))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cp437server-test"})
	srv, err := NewServer(logger, dir, "/bin/sh", 0)
	require.NoError(t, err)
	return srv
}

func TestHandleListFiles(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/files")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var files []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&files))
	assert.Contains(t, files, "greeting.ans")
}

func TestHandleFileSessionStreamsPNGFrame(t *testing.T) {
	srv := newTestServer(t)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/file/greeting.ans"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, term437.ImageWidth, img.Bounds().Dx())
	assert.Equal(t, term437.ImageHeight, img.Bounds().Dy())
}
