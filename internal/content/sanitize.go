package content

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy allows the block and inline elements the encoder produces and
// restricts link targets to http, https and mailto.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize strips disallowed elements, attributes and URL schemes from an
// HTML fragment.
func Sanitize(html string) string {
	return ugcPolicy.Sanitize(html)
}
