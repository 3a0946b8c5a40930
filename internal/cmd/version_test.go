package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := newVersionCmd(&AppProvider{Out: &out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	want := "confkit version " + Version
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("version output = %q, want %q", got, want)
	}
}

func TestVersion_JSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newVersionCmd(&AppProvider{Out: &out, JSONOutput: true})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version --json failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result["version"] != Version {
		t.Errorf("version = %q, want %q", result["version"], Version)
	}
}
