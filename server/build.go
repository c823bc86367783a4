package server

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/natefinch/atomic"
)

// WriteOutput builds the root index.html and writes it into outDir, which is
// relative to the working dir. It returns the written file.
func (app *App) WriteOutput(outDir string) (string, error) {
	build, err := app.Build(path.Join(app.wd, indexFile), true)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", indexFile, err)
	}

	dir := outDir
	if !path.IsAbs(dir) {
		dir = path.Join(app.wd, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := path.Join(dir, indexFile)
	if err := atomic.WriteFile(filename, bytes.NewReader(build.Content)); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}
