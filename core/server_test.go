package core

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	servHost = "127.0.0.1"
	servPort = 8000
)

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":      "<html><body><div class=\"supporters-bar\"></div></body></html>",
		"supporters.list": "Alice\nBob\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestServerStatic(t *testing.T) {
	server := NewServer(servHost, servPort, writeSite(t))

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/supporters.list", http.StatusOK, "Alice\nBob\n"},
		{"/index.html", http.StatusOK, "<html><body><div class=\"supporters-bar\"></div></body></html>"},
		{"/", http.StatusOK, "<html><body><div class=\"supporters-bar\"></div></body></html>"},
		{"/missing.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := server.app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			if err != nil {
				t.Fatalf("request %s: %s", tt.path, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Fatalf("want status %d, got %d", tt.status, resp.StatusCode)
			}
			if tt.body == "" {
				return
			}
			b, _ := io.ReadAll(resp.Body)
			if string(b) != tt.body {
				t.Fatalf("want body %q, got %q", tt.body, b)
			}
		})
	}
}

func TestServerServeListener(t *testing.T) {
	ln, err := net.Listen("tcp", servHost+":0")
	if err != nil {
		t.Fatal(err)
	}

	server := NewServer(servHost, servPort, writeSite(t))
	done := make(chan error, 1)
	go func() { done <- server.Serve(ln) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/supporters.list", ln.Addr()))
	if err != nil {
		t.Fatalf("GET: %s", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	if err := server.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %s", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %s", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
