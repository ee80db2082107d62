// Package sanitize strips active markup from user supplied HTML.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer keeps benign formatting (paragraphs, emphasis, lists, links,
// images) and drops scripts, event handler attributes and javascript: URLs.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &HTMLSanitizer{
		policy: policy,
	}
}

func (s *HTMLSanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}
