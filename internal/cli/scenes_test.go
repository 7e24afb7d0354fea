package cli

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCollectScenes(t *testing.T) {
	dir := t.TempDir()
	a := writeScene(t, dir, "a.toml", cardScene)
	b := writeScene(t, dir, "sub/b.toml", cardScene)
	writeScene(t, dir, "notes.txt", "not a scene")

	type tc struct {
		paths    []string
		expected []string
		wantErr  bool
	}

	tests := map[string]tc{
		"file":         {paths: []string{a}, expected: []string{a}},
		"directory":    {paths: []string{dir}, expected: []string{a}},
		"recursive":    {paths: []string{dir + "/..."}, expected: []string{a, b}},
		"deduplicated": {paths: []string{a, dir, a}, expected: []string{a}},
		"missing":      {paths: []string{filepath.Join(dir, "nope.toml")}, wantErr: true},
		"empty dir":    {paths: []string{t.TempDir()}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := collectScenes(tt.paths)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("collectScenes() = %v, expected an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("collectScenes() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("collectScenes() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	sized := writeScene(t, dir, "sized.toml", cardScene)
	unsized := writeScene(t, dir, "unsized.toml", "[[children]]\nkind = \"box\"\n")
	broken := writeScene(t, dir, "broken.toml", brokenScene)

	type tc struct {
		path          string
		override      viewport
		width, height float64
		wantErr       string
	}

	fallback := viewport{width: 640, height: 480}
	tests := map[string]tc{
		"scene size":     {path: sized, width: 200, height: 80},
		"override width": {path: sized, override: viewport{width: 50}, width: 50, height: 80},
		"fallback":       {path: unsized, width: 640, height: 480},
		"override wins":  {path: unsized, override: viewport{width: 10, height: 20}, width: 10, height: 20},
		"invalid":        {path: broken, wantErr: "broken.toml"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := loadScene(tt.path, tt.override, fallback)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("loadScene() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadScene() error = %v", err)
			}
			if doc.Width != tt.width || doc.Height != tt.height {
				t.Errorf("viewport = %gx%g, want %gx%g", doc.Width, doc.Height, tt.width, tt.height)
			}
		})
	}
}
