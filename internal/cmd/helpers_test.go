package cmd

import (
	"bytes"
	"testing"

	"confkit/internal/config"
)

// setupTestApp creates an App with an in-memory store for command testing.
func setupTestApp(t *testing.T, items map[string]string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := &App{
		Store: config.New(items),
		Out:   &out,
	}
	return app, &out
}
