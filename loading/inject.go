package loading

import (
	"strings"

	"golang.org/x/net/html"
)

// injectIntoMount appends unit to the children of the first div whose id is
// rootID. Everything outside the insertion point is kept byte for byte. The
// document is returned unchanged, with false, if there is no such div or it is
// never closed.
func injectIntoMount(doc, rootID, unit string) (string, bool) {
	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	depth := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return doc, false
		}
		size := len(z.Raw())
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			// browsers ignore the slash of <div/>, so it opens an element too
			name, hasAttr := z.TagName()
			if string(name) != "div" {
				break
			}
			if depth > 0 {
				depth++
			} else if hasAttr && hasID(z, rootID) {
				depth = 1
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if depth > 0 && string(name) == "div" {
				depth--
				if depth == 0 {
					return doc[:offset] + unit + doc[offset:], true
				}
			}
		}
		offset += size
	}
}

func hasID(z *html.Tokenizer, id string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" {
			return strings.EqualFold(string(val), id)
		}
		if !more {
			return false
		}
	}
}
