package loading

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var (
	functionKeyword = regexp.MustCompile(`^(async\s+)?function\b`)
	leadingName     = regexp.MustCompile(`^(async\s+)?([A-Za-z_$][\w$]*)\s*\(`)
)

// callbackExpr turns the configured callback source into a function expression.
// Function expressions and arrow functions are used as they are. A method
// shorthand such as `onError(errors) { ... }` gets its name replaced by the
// function keyword.
func callbackExpr(opts Options) (string, error) {
	src := strings.TrimSpace(opts.OnError)
	if src == "" {
		if opts.Retry > 0 {
			return fmt.Sprintf(retryHandler, opts.Retry), nil
		}
		return noopHandler, nil
	}

	err := checkExpr(src)
	if err == nil {
		return src, nil
	}
	if !functionKeyword.MatchString(src) {
		if m := leadingName.FindStringSubmatchIndex(src); m != nil {
			rewritten := src[:m[4]] + "function " + src[m[5]:]
			if checkExpr(rewritten) == nil {
				return rewritten, nil
			}
		}
	}
	return noopHandler, fmt.Errorf("invalid onError callback: %w", err)
}

func checkExpr(src string) error {
	result := api.Transform("("+src+");", api.TransformOptions{
		Loader: api.LoaderJS,
	})
	if l := len(result.Errors); l > 0 {
		texts := make([]string, l)
		for i, e := range result.Errors {
			texts[i] = e.Text
		}
		return errors.New(strings.Join(texts, "; "))
	}
	return nil
}

// synthesizeScript returns the error capture script. When the callback can't be
// used the script is still returned, with a no-op callback, along with the error.
func synthesizeScript(opts Options) (string, error) {
	callback, err := callbackExpr(opts)
	containerID, jsonErr := json.Marshal(ContainerID)
	if jsonErr != nil {
		return "", jsonErr
	}
	errorTip, jsonErr := json.Marshal(opts.ErrorTip)
	if jsonErr != nil {
		return "", jsonErr
	}
	// the script is inlined, so "</" must not close the script element
	callback = strings.ReplaceAll(callback, "</", `<\/`)
	script := fmt.Sprintf(errorCapture, callback, containerID, errorTip)
	return script, err
}
