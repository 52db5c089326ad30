// Package csp builds Content-Security-Policy header values.
package csp

import (
	"strings"
)

// Header names for enforced and report-only policies.
const (
	HeaderName           = "Content-Security-Policy"
	ReportOnlyHeaderName = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the output order so headers are stable across builds.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
}

// Builder provides a fluent interface for constructing a policy.
// A Builder is not safe for concurrent mutation; build once and share the string.
//
// Example:
//
//	policy := csp.NewBuilder().
//	    DefaultSrc("'none'").
//	    FrameAncestors("'none'").
//	    Build()
//	// "default-src 'none'; frame-ancestors 'none'"
type Builder struct {
	directives map[string][]string
}

// NewBuilder returns an empty policy.
func NewBuilder() *Builder {
	return &Builder{directives: make(map[string][]string)}
}

func (b *Builder) set(directive string, sources []string) *Builder {
	b.directives[directive] = sources
	return b
}

// DefaultSrc sets default-src, the fallback for every fetch directive.
func (b *Builder) DefaultSrc(sources ...string) *Builder { return b.set("default-src", sources) }

// ScriptSrc sets script-src.
func (b *Builder) ScriptSrc(sources ...string) *Builder { return b.set("script-src", sources) }

// StyleSrc sets style-src.
func (b *Builder) StyleSrc(sources ...string) *Builder { return b.set("style-src", sources) }

// ImgSrc sets img-src.
func (b *Builder) ImgSrc(sources ...string) *Builder { return b.set("img-src", sources) }

// FontSrc sets font-src.
func (b *Builder) FontSrc(sources ...string) *Builder { return b.set("font-src", sources) }

// ConnectSrc sets connect-src (fetch, XHR, WebSocket, EventSource).
func (b *Builder) ConnectSrc(sources ...string) *Builder { return b.set("connect-src", sources) }

// FrameAncestors sets frame-ancestors; "'none'" prevents clickjacking.
func (b *Builder) FrameAncestors(sources ...string) *Builder {
	return b.set("frame-ancestors", sources)
}

// FormAction sets form-action.
func (b *Builder) FormAction(sources ...string) *Builder { return b.set("form-action", sources) }

// BaseURI sets base-uri.
func (b *Builder) BaseURI(sources ...string) *Builder { return b.set("base-uri", sources) }

// ObjectSrc sets object-src.
func (b *Builder) ObjectSrc(sources ...string) *Builder { return b.set("object-src", sources) }

// Build renders the header value. Directives are separated by "; " and
// directives without sources are skipped.
func (b *Builder) Build() string {
	parts := make([]string, 0, len(b.directives))
	for _, directive := range directiveOrder {
		if sources := b.directives[directive]; len(sources) > 0 {
			parts = append(parts, directive+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// APIPolicy is the policy for JSON endpoints: nothing may be loaded and the
// response may not be framed.
func APIPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'none'").
		FrameAncestors("'none'").
		BaseURI("'none'").
		FormAction("'none'")
}

// SwaggerUIPolicy allows what the bundled Swagger UI needs: inline scripts
// and styles, data: images, and the OpenAPI document from the same origin.
func SwaggerUIPolicy() *Builder {
	return NewBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'", "'unsafe-inline'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseURI("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}
