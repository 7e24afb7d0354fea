package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-kaolin/pkg/scene"
)

const sceneExt = ".toml"

// collectScenes expands paths into scene files. A directory contributes its
// .toml files and "dir/..." walks it recursively. Duplicates are dropped.
func collectScenes(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range paths {
		if base, ok := strings.CutSuffix(p, "..."); ok {
			base = filepath.Clean(base)
			err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && filepath.Ext(path) == sceneExt {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && filepath.Ext(e.Name()) == sceneExt {
				add(filepath.Join(p, e.Name()))
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s scene files found", sceneExt)
	}
	return files, nil
}

// viewport overrides a scene's size. Zero fields leave the scene's value.
type viewport struct {
	width, height float64
}

// loadScene reads a scene, applies the override and fills a missing size
// from fallback, then validates it.
func loadScene(path string, override, fallback viewport) (*scene.Document, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if override.width > 0 {
		doc.Width = override.width
	}
	if override.height > 0 {
		doc.Height = override.height
	}
	if doc.Width == 0 {
		doc.Width = fallback.width
	}
	if doc.Height == 0 {
		doc.Height = fallback.height
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
