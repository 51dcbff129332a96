package chatmark

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// classNames also admits the '/', ':', '.' and brackets of utility classes.
var classNames = regexp.MustCompile(`^[\p{L}\p{N}\s_:/.\[\]-]+$`)

// linkTypes matches the rel values appendLinkAttrs produces.
var linkTypes = regexp.MustCompile(`^(noopener|noreferrer|nofollow)( (noopener|noreferrer|nofollow))*$`)

// policy is bluemonday's user generated content policy, widened to keep the
// class, id, target and rel attributes the renderer emits. rel is kept as
// rendered, so nofollow only appears with NofollowLinks; noreferrer is
// required on every link.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classNames).Globally()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[\p{L}\p{N}_:.-]+$`)).OnElements("h1", "h2", "h3")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(linkTypes).OnElements("a")
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// Sanitize strips everything from html that is not plain user generated
// content, keeping the class, id, target and rel attributes Render emits.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
