// Package richtext renders Contentful rich text documents (the JSON node
// tree delivered on rich text fields) into HTML fragments. Rendering rules
// are keyed by node type and can be overridden per renderer instance, as can
// the tag used for each text mark.
package richtext

import (
	"fmt"
	"html"
	"strings"
)

// RenderFunc produces the HTML for a single node. Implementations call
// r.RenderChildren for nested content.
type RenderFunc func(r *Renderer, node map[string]any) (string, error)

// Renderer walks a rich text document applying per-node-type rules.
type Renderer struct {
	rules    map[string]RenderFunc
	markTags map[string]string
}

// Option customises renderer rules.
type Option func(*Renderer)

// WithMarkTag overrides the HTML tag emitted for a text mark, e.g. rendering
// bold runs as <strong> instead of <b>.
func WithMarkTag(mark, tag string) Option {
	return func(r *Renderer) {
		r.markTags[mark] = tag
	}
}

// WithNodeRule overrides the rendering rule for a node type.
func WithNodeRule(nodeType string, fn RenderFunc) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.rules[nodeType] = fn
		}
	}
}

// New constructs a renderer with the default rule set.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		rules: map[string]RenderFunc{
			"document":       renderChildrenOnly,
			"paragraph":      wrapChildren("p"),
			"heading-1":      wrapChildren("h1"),
			"heading-2":      wrapChildren("h2"),
			"heading-3":      wrapChildren("h3"),
			"heading-4":      wrapChildren("h4"),
			"heading-5":      wrapChildren("h5"),
			"heading-6":      wrapChildren("h6"),
			"unordered-list": wrapChildren("ul"),
			"ordered-list":   wrapChildren("ol"),
			"list-item":      wrapChildren("li"),
			"blockquote":     wrapChildren("blockquote"),
			"hr":             renderRule,
			"hyperlink":      renderHyperlink,
			"text":           renderText,
		},
		markTags: map[string]string{
			"bold":      "b",
			"italic":    "i",
			"underline": "u",
			"code":      "code",
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render converts a document into HTML. A nil or empty document renders as
// the empty string so callers never fail on an absent rich text field.
func (r *Renderer) Render(doc map[string]any) (string, error) {
	if len(doc) == 0 {
		return "", nil
	}
	return r.renderNode(doc)
}

// RenderChildren renders the node's content sequence in source order.
func (r *Renderer) RenderChildren(node map[string]any) (string, error) {
	content, _ := node["content"].([]any)
	if len(content) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, child := range content {
		childNode, ok := child.(map[string]any)
		if !ok {
			continue
		}
		rendered, err := r.renderNode(childNode)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

func (r *Renderer) renderNode(node map[string]any) (string, error) {
	nodeType, _ := node["nodeType"].(string)
	if rule, ok := r.rules[nodeType]; ok {
		return rule(r, node)
	}
	// Unknown node types render their children so new CMS node types
	// degrade gracefully instead of dropping copy.
	return r.RenderChildren(node)
}

func renderChildrenOnly(r *Renderer, node map[string]any) (string, error) {
	return r.RenderChildren(node)
}

func wrapChildren(tag string) RenderFunc {
	return func(r *Renderer, node map[string]any) (string, error) {
		children, err := r.RenderChildren(node)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("<%s>%s</%s>", tag, children, tag), nil
	}
}

func renderRule(*Renderer, map[string]any) (string, error) {
	return "<hr/>", nil
}

func renderHyperlink(r *Renderer, node map[string]any) (string, error) {
	children, err := r.RenderChildren(node)
	if err != nil {
		return "", err
	}
	uri := ""
	if data, ok := node["data"].(map[string]any); ok {
		uri, _ = data["uri"].(string)
	}
	return fmt.Sprintf("<a href=%q>%s</a>", uri, children), nil
}

func renderText(r *Renderer, node map[string]any) (string, error) {
	value, _ := node["value"].(string)
	rendered := html.EscapeString(value)

	marks, _ := node["marks"].([]any)
	for i := len(marks) - 1; i >= 0; i-- {
		mark, ok := marks[i].(map[string]any)
		if !ok {
			continue
		}
		markType, _ := mark["type"].(string)
		tag, ok := r.markTags[markType]
		if !ok {
			continue
		}
		rendered = fmt.Sprintf("<%s>%s</%s>", tag, rendered, tag)
	}
	return rendered, nil
}
