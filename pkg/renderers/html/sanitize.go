package html

import "github.com/microcosm-cc/bluemonday"

// richText strips scripts and event handlers from author-supplied copy
// (form and field descriptions) while keeping basic formatting tags.
var richText = bluemonday.UGCPolicy()

func sanitizeHTML(s string) string {
	if s == "" {
		return ""
	}
	return richText.Sanitize(s)
}
