package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikasavnish/helloservice/internal/api"
	"github.com/vikasavnish/helloservice/internal/config"
)

func testConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ShutdownTimeout: 2 * time.Second,
	}
}

func TestRun_ServesAndShutsDown(t *testing.T) {
	srv := New(testConfig(), api.SetupRouter())
	var out bytes.Buffer
	srv.SetOutput(&out)

	require.NoError(t, srv.Listen())
	port := srv.Port()
	require.NotZero(t, port)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	client := &http.Client{Timeout: time.Second}
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)

	var body api.HealthResponse
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return false
		}
		return json.NewDecoder(resp.Body).Decode(&body) == nil
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, "healthy", body.Status)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	assert.Equal(t, fmt.Sprintf("Server listening at http://localhost:%d\n", port), out.String())

	_, err := client.Get(url)
	assert.Error(t, err, "server should no longer accept connections")
}

func TestListen_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	srv := New(cfg, api.SetupRouter())
	err = srv.Listen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestRun_ListenErrorIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	srv := New(cfg, api.SetupRouter())
	var out bytes.Buffer
	srv.SetOutput(&out)

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, out.String(), "nothing is announced when the socket cannot be bound")
}

func TestPort_BeforeListen(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 3000
	srv := New(cfg, api.SetupRouter())
	assert.Equal(t, 3000, srv.Port())
}
