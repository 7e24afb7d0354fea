package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	kaolin "github.com/grindlemire/go-kaolin"
	"github.com/grindlemire/go-kaolin/internal/config"
)

const cardScene = `
width = 200
height = 80
background = "#ffffff"
justify = "center"
align = "center"

[[children]]
kind = "box"
id = "card"
background = "#313244"
color = "#cdd6f4"
padding = 8

  [[children.children]]
  kind = "text"
  text = "Hi"
`

const brokenScene = `
width = 200
height = 80

[[children]]
kind = "blob"
`

func testConfig() config.Config {
	return config.Config{
		Viewport: config.ViewportConfig{Width: 320, Height: 240},
		Render:   config.RenderConfig{Backend: config.BackendPNG, OutDir: ".", Concurrency: 2, Cache: true},
		Log:      config.LogConfig{Level: "info"},
	}
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { kaolin.SetLogger(nil) })

	c := New(io.Discard, LogInfo, testConfig())
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// writeScene writes body to dir/name and returns the path.
func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
