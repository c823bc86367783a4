package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaloading/loading"
)

const testIndex = `<!DOCTYPE html>
<html>
<body>
  <div id="app"></div>
  <script type="module" src="/main.js"></script>
</body>
</html>
`

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFile), []byte(testIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loading.css"), []byte(".first{}"), 0o644))
	return dir
}

func TestAppBuild(t *testing.T) {
	dir := writeProject(t)
	plugin := loading.New(loading.KindText, loading.Settings{CSSPath: "loading.css"})
	app := NewApp(dir, "serve", plugin)
	filename := filepath.Join(dir, indexFile)

	build, err := app.Build(filename, false)
	require.NoError(t, err)
	assert.Contains(t, string(build.Content), `<div id="spa-loading"`)
	assert.Contains(t, string(build.Content), ".first{}")
	assert.Contains(t, build.Deps, filepath.Join(dir, "loading.css"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "loading.css"), []byte(".second{}"), 0o644))

	cached, err := app.Build(filename, false)
	require.NoError(t, err)
	assert.Equal(t, build.Content, cached.Content)

	rebuilt, err := app.Build(filename, true)
	require.NoError(t, err)
	assert.Contains(t, string(rebuilt.Content), ".second{}")
}

func TestAppBuildDevDisabled(t *testing.T) {
	dir := writeProject(t)
	devEnable := false
	plugin := loading.New(loading.KindText, loading.Settings{DevEnable: &devEnable})

	build, err := NewApp(dir, "serve", plugin).Build(filepath.Join(dir, indexFile), false)
	require.NoError(t, err)
	assert.Equal(t, testIndex, string(build.Content))

	build, err = NewApp(dir, "build", plugin).Build(filepath.Join(dir, indexFile), false)
	require.NoError(t, err)
	assert.Contains(t, string(build.Content), "spa-loading")
}

func TestAppBuildDirectory(t *testing.T) {
	dir := writeProject(t)
	app := NewApp(dir, "serve", loading.New(loading.KindText, loading.Settings{}))

	_, err := app.Build(dir, false)
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	dir := writeProject(t)
	app := NewApp(dir, "build", loading.New(loading.KindText, loading.Settings{}))

	filename, err := app.WriteOutput("dist")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dist", indexFile), filename)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "spa-loading")
	assert.Contains(t, out, `<script type="module" src="/main.js"></script>`)
}

func TestWatcherCheckModtime(t *testing.T) {
	dir := writeProject(t)
	app := NewApp(dir, "serve", loading.New(loading.KindText, loading.Settings{CSSPath: "loading.css"}))
	filename := filepath.Join(dir, indexFile)
	_, err := app.Build(filename, false)
	require.NoError(t, err)

	w := &watcher{app: app}
	dirty, _ := w.checkModtime(filename)
	assert.False(t, dirty)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "loading.css"), later, later))
	dirty, modtime := w.checkModtime(filename)
	assert.True(t, dirty)
	assert.False(t, modtime.IsZero())

	require.NoError(t, os.Remove(filename))
	dirty, modtime = w.checkModtime(filename)
	assert.True(t, dirty)
	assert.True(t, modtime.IsZero())

	dirty, _ = w.checkModtime(filepath.Join(dir, "other.html"))
	assert.False(t, dirty)
}

func TestAppLookup(t *testing.T) {
	dir := writeProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "main.js"), []byte("1"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", indexFile), []byte(testIndex), 0o644))
	app := NewApp(dir, "serve", loading.New(loading.KindText, loading.Settings{}))

	tests := []struct {
		pathname string
		kind     resourceKind
		filename string
	}{
		{"/", targetIndex, filepath.Join(dir, indexFile)},
		{"/index.html", targetIndex, filepath.Join(dir, indexFile)},
		{"/users/42", targetIndex, filepath.Join(dir, indexFile)},
		{"/docs/", targetIndex, filepath.Join(dir, "docs", indexFile)},
		{"/docs/index.html", targetIndex, filepath.Join(dir, "docs", indexFile)},
		{"/assets/main.js", targetFile, filepath.Join(dir, "assets", "main.js")},
		{"/loading.css", targetFile, filepath.Join(dir, "loading.css")},
		{"/assets/missing.js", targetNotFound, ""},
		{"/missing.css", targetNotFound, ""},
		{"/favicon.ico", targetNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.pathname, func(t *testing.T) {
			kind, filename := app.lookup(tt.pathname)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.filename, filename)
		})
	}
}

func TestAppLookupStaysInWorkingDir(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "web")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFile), []byte(testIndex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), 0o644))
	app := NewApp(dir, "serve", loading.New(loading.KindText, loading.Settings{}))

	for _, pathname := range []string{"/../secret.txt", "../secret.txt", "/assets/../../secret.txt"} {
		kind, filename := app.lookup(pathname)
		assert.Equal(t, targetNotFound, kind, pathname)
		assert.Empty(t, filename, pathname)
	}

	kind, filename := app.lookup("/../")
	assert.Equal(t, targetIndex, kind)
	assert.Equal(t, filepath.Join(dir, indexFile), filename)
}
