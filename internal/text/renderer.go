// Package text renders the free-text templates (RFI subjects, change order
// descriptions, field notes). It is a capability-free formatting concern
// kept out of the numeric generators.
package text

import "strings"

// Context carries the placeholder values for one rendering.
type Context map[string]string

// Renderer turns a template with {name} placeholders into a final string.
type Renderer interface {
	Render(template string, ctx Context) string
}

// TemplateRenderer substitutes {name} placeholders from the context.
// Placeholders without a context value are left as-is.
type TemplateRenderer struct{}

func NewRenderer() TemplateRenderer {
	return TemplateRenderer{}
}

func (TemplateRenderer) Render(template string, ctx Context) string {
	if len(ctx) == 0 {
		return template
	}
	pairs := make([]string, 0, len(ctx)*2)
	for key, value := range ctx {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
