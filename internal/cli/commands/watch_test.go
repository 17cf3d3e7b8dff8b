package commands

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocklua-lang/blocklua/internal/web/reload"
	"github.com/blocklua-lang/blocklua/internal/web/server"
)

// The watch command serves /ws through the shared server wrapper so a
// signal shuts the endpoint down cleanly instead of abandoning it.
func TestWatchReloadEndpointShutsDown(t *testing.T) {
	hub := reload.NewHub(nil)
	defer hub.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.Handler)
	srv, err := server.New(server.DefaultConfig("127.0.0.1:0", mux))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	deadline := time.Now().Add(2 * time.Second)
	var conn *websocket.Conn
	for {
		conn, _, err = websocket.DefaultDialer.Dial("ws://"+srv.Addr()+"/ws", nil)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("reload endpoint never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Equal(t, http.ErrServerClosed, <-done)
}

func TestWatchCommandFlags(t *testing.T) {
	cmd := NewWatchCommand()
	flag := cmd.Flags().Lookup("ws-addr")
	require.NotNil(t, flag)
	assert.True(t, strings.HasPrefix(flag.DefValue, "localhost:"))
}
