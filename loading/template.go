package loading

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderContext holds what a single transform resolved before composing.
type RenderContext struct {
	// CSS is the content loaded from Options.CSSPath.
	CSS string
	// Graphic is the svg markup, from Options.Path or Options.Content.
	Graphic string
	Mode    Mode
}

// Unit is the composed placeholder markup and its error capture script.
type Unit struct {
	Markup string
	Script string
}

func (u Unit) String() string {
	return u.Markup + "\n      <script>" + u.Script + "</script>"
}

// animationTiming returns the fade-in duration and delay for a debounce.
func animationTiming(debounce int) (duration string, delay string) {
	half := float64(debounce) / 2
	return formatMillis(half + 100), formatMillis(half)
}

func formatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64)
}

func (p *Plugin) compose(rc RenderContext) Unit {
	opts := p.opts
	duration, delay := animationTiming(opts.Debounce)

	var b strings.Builder
	fmt.Fprintf(&b, internalCSS, duration, delay)
	if opts.CSS != "" {
		b.WriteString("\n      <style id=\"user-css\">" + opts.CSS + "</style>")
	}
	if rc.CSS != "" {
		b.WriteString("\n      <style id=\"external-css\">" + rc.CSS + "</style>")
	}
	fmt.Fprintf(&b, "\n      <div id=\"%s\" class=\"loading-container %s-loading\">", ContainerID, opts.Kind)
	b.WriteString("\n        <div class=\"loading-ani\">" + renderVariant(opts.Kind, opts, rc.Graphic) + "</div>")
	if opts.TipText != "" {
		b.WriteString("\n        <div class=\"loading-text\">" + opts.TipText + "</div>")
	}
	b.WriteString("\n      </div>")

	script, err := synthesizeScript(opts)
	if err != nil {
		p.log.Warnf("[%s] %v, using a no-op callback", pluginName, err)
	}

	unit := Unit{Markup: b.String(), Script: script}
	if rc.Mode != Production {
		return unit
	}

	if markup, err := p.minifier.MinifyMarkup(unit.Markup); err != nil {
		p.log.Warnf("[%s] minify markup: %v", pluginName, err)
	} else {
		unit.Markup = markup
	}
	if script, err := p.minifier.MinifyScript(unit.Script); err != nil {
		p.log.Warnf("[%s] minify script: %v", pluginName, err)
	} else {
		unit.Script = script
	}
	return unit
}
