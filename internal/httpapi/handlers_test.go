package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confkit/internal/config"
)

func newTestServer(items map[string]string) *httptest.Server {
	return httptest.NewServer(NewServer(config.New(items)).Router())
}

func TestGetKey(t *testing.T) {
	ts := newTestServer(map[string]string{"host": "localhost"})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/config/host")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "localhost" {
		t.Errorf("body = %q, want %q", body, "localhost")
	}
}

func TestGetMissingKey(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/config/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestHeadKey(t *testing.T) {
	ts := newTestServer(map[string]string{"host": "localhost"})
	defer ts.Close()

	resp, err := http.Head(ts.URL + "/config/host")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("HEAD present key status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}

	resp, err = http.Head(ts.URL + "/config/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("HEAD missing key status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestPutThenGet(t *testing.T) {
	ts := newTestServer(map[string]string{"host": "localhost"})
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/config/host", strings.NewReader("example.com"))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("PUT status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}

	resp, err = http.Get(ts.URL + "/config/host")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "example.com" {
		t.Errorf("value after PUT = %q, want %q", body, "example.com")
	}
}

func TestGetAll(t *testing.T) {
	ts := newTestServer(map[string]string{"a": "1", "b": "2"})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/config")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got["a"] != "1" || got["b"] != "2" || len(got) != 2 {
		t.Errorf("GET /config = %v, want {a:1 b:2}", got)
	}
}
