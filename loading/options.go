package loading

import (
	"fmt"
	"strings"
)

// Kind selects the loading animation rendered inside the placeholder.
type Kind string

const (
	KindText Kind = "text"
	KindImg  Kind = "img"
	KindSvg  Kind = "svg"
)

// ParseKind converts a configured name into a Kind. An empty name selects text.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case "", KindText:
		return KindText, nil
	case KindImg:
		return KindImg, nil
	case KindSvg:
		return KindSvg, nil
	}
	return "", fmt.Errorf("unknown loading type %q, must be one of: text, img, svg", name)
}

// Settings is the caller supplied configuration. Nil pointers take defaults.
type Settings struct {
	// RootElementID is the app mount element id, "app" for vue or "root" for react.
	RootElementID string `json:"rootElementId" yaml:"rootElementId"`
	// DevEnable injects the placeholder outside of production builds too.
	DevEnable *bool `json:"devEnable" yaml:"devEnable"`
	// CSS is appended after the internal stylesheet.
	CSS string `json:"css" yaml:"css"`
	// CSSPath is like CSS but read from a file on every transform.
	CSSPath string `json:"cssPath" yaml:"cssPath"`
	// TipText is shown under the animation, an empty string hides it.
	TipText *string `json:"tipText" yaml:"tipText"`
	// Debounce keeps the placeholder invisible on fast networks, in milliseconds.
	Debounce *int `json:"debounce" yaml:"debounce"`
	// ErrorTip heads the error view.
	ErrorTip *string `json:"errorTip" yaml:"errorTip"`
	// OnError is the JavaScript source of a function receiving the error list.
	// It runs in the browser, so it cannot refer to anything but its argument
	// and browser globals.
	OnError string `json:"onError" yaml:"onError"`
	// Retry reloads the page up to Retry times when OnError is empty.
	Retry int `json:"retry" yaml:"retry"`

	// Src is the image source for the img type. Prefer a data URI.
	Src string `json:"src" yaml:"src"`
	// Content is the inline markup for the svg type.
	Content string `json:"content" yaml:"content"`
	// Path is read into Content for the svg type.
	Path string `json:"path" yaml:"path"`
}

// Options is the normalized configuration of a plugin instance.
type Options struct {
	Kind          Kind
	RootElementID string
	DevEnable     bool
	CSS           string
	CSSPath       string
	TipText       string
	Debounce      int
	ErrorTip      string
	OnError       string
	Retry         int
	Src           string
	Content       string
	Path          string
}

const (
	defaultTipText       = "Loading..."
	defaultRootElementID = "app"
	defaultDebounce      = 150
	defaultErrorTip      = "ERROR: "
)

// Normalize merges s with the defaults. Missing variant fields are not an error,
// they render as empty fragments.
func Normalize(kind Kind, s Settings) Options {
	if kind == "" {
		kind = KindText
	}
	opts := Options{
		Kind:          kind,
		RootElementID: defaultRootElementID,
		DevEnable:     true,
		CSS:           s.CSS,
		CSSPath:       s.CSSPath,
		TipText:       defaultTipText,
		Debounce:      defaultDebounce,
		ErrorTip:      defaultErrorTip,
		OnError:       s.OnError,
		Retry:         s.Retry,
		Src:           s.Src,
		Content:       s.Content,
		Path:          s.Path,
	}
	if s.RootElementID != "" {
		opts.RootElementID = s.RootElementID
	}
	if s.DevEnable != nil {
		opts.DevEnable = *s.DevEnable
	}
	if s.TipText != nil {
		opts.TipText = *s.TipText
	}
	if s.Debounce != nil {
		opts.Debounce = *s.Debounce
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	if s.ErrorTip != nil {
		opts.ErrorTip = *s.ErrorTip
	}
	return opts
}
