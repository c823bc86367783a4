package server

import (
	"bytes"
	"errors"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ije/rex"

	"spaloading/loading"
)

// FileContent caches a transformed entry document in memory.
type FileContent struct {
	Modtime time.Time
	Content []byte
	// Deps holds the modtime of every file the transform read, zero if missing.
	Deps map[string]time.Time
}

type App struct {
	lock   sync.RWMutex
	wd     string
	plugin *loading.Plugin
	ctx    *loading.BuildContext
	builds map[string]FileContent
}

// NewApp creates an app for the working dir. command is the host command the
// build mode is derived from.
func NewApp(wd string, command string, plugin *loading.Plugin) *App {
	return &App{
		wd:     wd,
		plugin: plugin,
		ctx:    plugin.Configure(command, wd),
		builds: map[string]FileContent{},
	}
}

// Build returns the entry document at filename with the loading placeholder
// injected. The document is untouched when the plugin has nothing to inject.
func (app *App) Build(filename string, rebuild bool) (out FileContent, err error) {
	if !rebuild {
		app.lock.RLock()
		record, ok := app.builds[filename]
		app.lock.RUnlock()
		if ok {
			out = record
			return
		}
	}

	fi, err := os.Lstat(filename)
	if err != nil {
		return
	}
	if fi.IsDir() {
		err = errors.New("can't build a directory")
		return
	}

	deps := map[string]time.Time{}
	for _, dep := range app.plugin.Dependencies(app.ctx) {
		deps[dep] = modtimeOf(dep)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	start := time.Now()
	if html, ok := app.plugin.TransformIndexHTML(app.ctx, string(data)); ok {
		data = []byte(html)
	}
	log.Debugf("Build %s (%s) in %v", strings.TrimPrefix(strings.TrimPrefix(filename, app.wd), "/"), app.ctx.Mode, time.Since(start))

	out = FileContent{
		Modtime: fi.ModTime(),
		Content: data,
		Deps:    deps,
	}
	app.lock.Lock()
	app.builds[filename] = out
	app.lock.Unlock()
	return
}

func (app *App) Watch() *watcher {
	w := &watcher{
		app:      app,
		interval: 50 * time.Millisecond,
	}
	w.start(func(filename string, exists bool) {
		if exists {
			_, err := app.Build(filename, true)
			if err != nil {
				app.removeBuild(filename)
				log.Error(err)
			}
		} else {
			app.removeBuild(filename)
		}
	})
	log.Debug("Watching file for changes...")
	return w
}

func (app *App) Handle() rex.Handle {
	return func(ctx *rex.Context) interface{} {
		// in dev mode, we use `Last-Modified` header to control cache
		if app.ctx.Mode != loading.Production {
			ctx.SetHeader("Cache-Control", "max-age=0")
		}

		switch kind, filename := app.lookup(ctx.R.URL.Path); kind {
		case targetFile:
			return rex.File(filename)
		case targetIndex:
			build, err := app.Build(filename, false)
			if err != nil {
				return err
			}
			return rex.Content(indexFile, build.Modtime, bytes.NewReader(build.Content))
		default:
			return rex.Status(404, "not found")
		}
	}
}

type resourceKind int

const (
	targetNotFound resourceKind = iota
	targetFile
	targetIndex
)

// lookup maps a request path to a file in the working dir. Missing paths with
// an extension are not found, so a failed asset never gets the entry document.
// Other missing paths fall back to the nearest index.html.
func (app *App) lookup(pathname string) (resourceKind, string) {
	pathname = path.Clean("/" + pathname)
	filename := path.Join(app.wd, pathname)
	if fileExists(filename) && path.Base(filename) != indexFile {
		return targetFile, filename
	}

	dir := pathname
	if path.Base(pathname) == indexFile {
		dir = path.Dir(pathname)
	} else if path.Ext(pathname) != "" {
		return targetNotFound, ""
	}

	filename = path.Join(app.wd, dir, indexFile)
	if !fileExists(filename) {
		// fallback to root index.html
		filename = path.Join(app.wd, indexFile)
	}
	if fileExists(filename) {
		return targetIndex, filename
	}
	return targetNotFound, ""
}

func (app *App) removeBuild(filename string) {
	app.lock.Lock()
	defer app.lock.Unlock()

	delete(app.builds, filename)
}

func modtimeOf(filename string) time.Time {
	fi, err := os.Lstat(filename)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}
