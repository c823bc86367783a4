package loading

import (
	"path/filepath"

	logx "github.com/ije/gox/log"
)

// Plugin injects a loading placeholder into the mount element of an SPA entry
// document. Hosts call Configure once per build and TransformIndexHTML for
// every HTML document of that build.
type Plugin struct {
	opts     Options
	log      *logx.Logger
	minifier Minifier
}

// Option customizes a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger used for non-fatal problems.
func WithLogger(log *logx.Logger) Option {
	return func(p *Plugin) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMinifier replaces the production minifier.
func WithMinifier(m Minifier) Option {
	return func(p *Plugin) {
		if m != nil {
			p.minifier = m
		}
	}
}

// New creates a plugin rendering the given kind of placeholder.
func New(kind Kind, s Settings, options ...Option) *Plugin {
	p := &Plugin{
		opts: Normalize(kind, s),
		log:  &logx.Logger{},
	}
	for _, o := range options {
		o(p)
	}
	if p.minifier == nil {
		p.minifier = NewMinifier()
	}
	return p
}

func (p *Plugin) Name() string {
	return pluginName
}

// Options returns a copy of the normalized options.
func (p *Plugin) Options() Options {
	return p.opts
}

// Configure is the build mode hook. command is the host command name, root
// the directory relative file options are resolved against.
func (p *Plugin) Configure(command string, root string) *BuildContext {
	return &BuildContext{
		Mode: ModeFromCommand(command),
		Root: root,
	}
}

// TransformIndexHTML returns doc with the placeholder injected. The second
// return is false when the document should be left unchanged.
func (p *Plugin) TransformIndexHTML(ctx *BuildContext, doc string) (string, bool) {
	if ctx == nil {
		ctx = &BuildContext{}
	}
	if !p.opts.DevEnable && ctx.Mode != Production {
		return "", false
	}

	rc := RenderContext{
		Graphic: p.opts.Content,
		Mode:    ctx.Mode,
	}
	if p.opts.Kind == KindSvg && p.opts.Path != "" {
		rc.Graphic = p.readText(p.resolve(ctx, p.opts.Path))
	}
	if p.opts.CSSPath != "" {
		rc.CSS = p.readText(p.resolve(ctx, p.opts.CSSPath))
	}

	out, ok := injectIntoMount(doc, p.opts.RootElementID, p.compose(rc).String())
	if !ok {
		p.log.Warnf("[%s] no <div id=%q> mount element found, document left unchanged", pluginName, p.opts.RootElementID)
		return "", false
	}
	return out, true
}

// Dependencies lists the files a transform reads, resolved against ctx.Root.
func (p *Plugin) Dependencies(ctx *BuildContext) []string {
	var deps []string
	if p.opts.Kind == KindSvg && p.opts.Path != "" {
		deps = append(deps, p.resolve(ctx, p.opts.Path))
	}
	if p.opts.CSSPath != "" {
		deps = append(deps, p.resolve(ctx, p.opts.CSSPath))
	}
	return deps
}

func (p *Plugin) resolve(ctx *BuildContext, path string) string {
	if filepath.IsAbs(path) || ctx == nil || ctx.Root == "" {
		return path
	}
	return filepath.Join(ctx.Root, path)
}
