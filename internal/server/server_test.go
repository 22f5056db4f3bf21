package server

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/dlfelps/hello-go-claude/internal/handlers"
)

// startServer serves the real router on a random loopback port and returns
// its base URL plus a function that stops it and returns Serve's result.
func startServer(t *testing.T) (string, func() error) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	srv := New(ln.Addr().String(), handlers.NewRouter(logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(ShutdownTimeout + time.Second):
			t.Fatal("server did not stop")
			return nil
		}
	}
	return "http://" + ln.Addr().String(), stop
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Errorf("GET %s: %v", url, err)
		return 0, ""
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Errorf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServe_Endpoints(t *testing.T) {
	base, stop := startServer(t)
	defer stop()

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "Hello, World! 1234567"},
		{"/health", http.StatusOK, "OK"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			status, body := get(t, base+tc.path)
			if status != tc.wantStatus {
				t.Errorf("status: got %d, want %d", status, tc.wantStatus)
			}
			if tc.wantBody != "" && body != tc.wantBody {
				t.Errorf("body: got %q, want %q", body, tc.wantBody)
			}
		})
	}
}

func TestServe_ConcurrentRequests(t *testing.T) {
	base, stop := startServer(t)
	defer stop()

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			path, want := "/", "Hello, World! 1234567"
			if i%2 == 1 {
				path, want = "/health", "OK"
			}

			status, body := get(t, base+path)
			if status != http.StatusOK || body != want {
				t.Errorf("GET %s: got %d %q, want 200 %q", path, status, body, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestServe_CleanShutdown(t *testing.T) {
	base, stop := startServer(t)

	if status, _ := get(t, base+"/health"); status != http.StatusOK {
		t.Fatalf("status: got %d, want 200", status)
	}

	if err := stop(); err != nil {
		t.Fatalf("Serve returned %v after cancel, want nil", err)
	}

	if _, err := http.Get(base + "/health"); err == nil {
		t.Error("expected connection error after shutdown")
	}
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	// Reserve a free port, then release it so Run can bind it itself.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	logger := log.New(io.Discard, "", 0)
	srv := New(addr, handlers.NewRouter(logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// Run binds in the background; retry until it accepts connections.
	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get("http://" + addr + "/health")
		if err == nil || time.Now().After(deadline) {
			break
		}
		select {
		case err := <-done:
			t.Fatalf("Run returned early: %v", err)
		case <-time.After(20 * time.Millisecond):
		}
	}
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Errorf("GET /health: got %d %q, want 200 %q", resp.StatusCode, body, "OK")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after cancel, want nil", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	// Hold a port so Run can't bind it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	logger := log.New(io.Discard, "", 0)
	srv := New(ln.Addr().String(), handlers.NewRouter(logger), logger)

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error for an address already in use")
	}
}
