package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rickorty/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func setupTestServer(t *testing.T, charSnapEndpoint string) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"index.html":       "<html>rickorty</html>",
		"script.js":        "console.log('game');",
		"assets/style.css": "body { color: green; }",
		"health":           "not the health route",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	cfg := &config.Config{
		StaticDir:        dir,
		IndexFile:        "index.html",
		ChutesAPIKey:     "chutes-key",
		CharSnapEndpoint: charSnapEndpoint,
		CharSnapToken:    "snap-token",
		CharSnapTimeout:  2 * time.Second,
	}

	return New(cfg, prometheus.NewRegistry())
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	return resp, string(body)
}

func TestStatic_IndexDocument(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	resp, body := get(t, app, "/")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if body != "<html>rickorty</html>" {
		t.Errorf("Expected index document, got %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html content type, got %q", ct)
	}
}

func TestStatic_Files(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	resp, body := get(t, app, "/script.js")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if body != "console.log('game');" {
		t.Errorf("Unexpected script body %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("Expected javascript content type, got %q", ct)
	}

	resp, body = get(t, app, "/assets/style.css")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if body != "body { color: green; }" {
		t.Errorf("Unexpected stylesheet body %q", body)
	}
}

func TestStatic_NotFound(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	for _, target := range []string{"/missing.png", "/assets/nope.css", "/api/unknown"} {
		resp, _ := get(t, app, target)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", target, resp.StatusCode)
		}
	}
}

// Files are read from disk per request: edits show up at once and deletes 404
func TestStatic_ReadsFreshFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.js")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	app := New(&config.Config{
		StaticDir:       dir,
		IndexFile:       "index.html",
		CharSnapTimeout: time.Second,
	}, prometheus.NewRegistry())

	resp, body := get(t, app, "/script.js")
	if resp.StatusCode != fiber.StatusOK || body != "v1" {
		t.Fatalf("Expected 200 \"v1\", got %d %q", resp.StatusCode, body)
	}

	if err := os.WriteFile(path, []byte("v2-edited"), 0o644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}
	resp, body = get(t, app, "/script.js")
	if resp.StatusCode != fiber.StatusOK || body != "v2-edited" {
		t.Errorf("Expected 200 \"v2-edited\" after edit, got %d %q", resp.StatusCode, body)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to delete file: %v", err)
	}
	resp, body = get(t, app, "/script.js")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d %q", resp.StatusCode, body)
	}
}

// A file named like a route must not shadow it
func TestRoutes_TakePrecedenceOverStatic(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	resp, body := get(t, app, "/health?probe=1")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if body != `{"status":"healthy"}` {
		t.Errorf("Expected health payload, got %q", body)
	}
}

func TestAPIConfig(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	resp, body := get(t, app, "/api/config")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard CORS header, got %q", got)
	}
	if !strings.Contains(body, `"chutesApiKey":"chutes-key"`) {
		t.Errorf("Expected chutes key in payload, got %s", body)
	}
	if !strings.Contains(body, `"groqApiKey":""`) {
		t.Errorf("Expected empty groq key in payload, got %s", body)
	}
}

func TestAPICharSnap_Preflight(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	req := httptest.NewRequest("OPTIONS", "/api/charsnap", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard CORS header, got %q", got)
	}
}

func TestAPICharSnap_Relay(t *testing.T) {
	var gotBody, gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	app := setupTestServer(t, upstream.URL)

	req := httptest.NewRequest("POST", "/api/charsnap", strings.NewReader(`{"msg":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Expected upstream body, got %s", body)
	}
	if gotBody != `{"msg":"hi"}` {
		t.Errorf("Expected exact body forwarded, got %s", gotBody)
	}
	if gotAuth != "Bearer snap-token" {
		t.Errorf("Expected bearer token, got %q", gotAuth)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := setupTestServer(t, "http://127.0.0.1:1")

	// Generate at least one observed request
	get(t, app, "/health")

	resp, body := get(t, app, "/metrics")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "# HELP") {
		t.Errorf("Expected Prometheus exposition format, got %q", body)
	}
}
