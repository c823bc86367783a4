package loading

import (
	"errors"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// Minifier compresses the composed unit for production builds.
type Minifier interface {
	MinifyScript(src string) (string, error)
	MinifyMarkup(src string) (string, error)
}

type minifier struct {
	m *minify.M
}

// NewMinifier returns a Minifier using esbuild for scripts and minify for
// markup, with inline stylesheets minified too.
func NewMinifier() Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &mhtml.Minifier{
		KeepDefaultAttrVals: true,
		KeepEndTags:         true,
		KeepQuotes:          true,
	})
	return &minifier{m: m}
}

func (mf *minifier) MinifyScript(src string) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
	})
	if l := len(result.Errors); l > 0 {
		texts := make([]string, l)
		for i, e := range result.Errors {
			texts[i] = e.Text
		}
		return "", errors.New(strings.Join(texts, "\n"))
	}
	return strings.TrimSpace(string(result.Code)), nil
}

func (mf *minifier) MinifyMarkup(src string) (string, error) {
	return mf.m.String("text/html", src)
}
