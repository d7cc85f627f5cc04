package markdown

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previews longer than this are cut and shown with a fade in the feed
const DefaultPreviewRunes = 600

var blankLines = regexp.MustCompile(`\n{3,}`)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	md := goldmark.New(
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	)

	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &TextProcessor{md: md, policy: p}
}

// Render converts post markdown into sanitized HTML ready for templates.
func (tp *TextProcessor) Render(text string) template.HTML {
	rendered, err := tp.renderText(text)
	if err != nil {
		// fall back to the escaped source rather than dropping the post
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(tp.sanitizeText(rendered))
}

// Preview renders at most limit runes of text and reports whether it was cut.
func (tp *TextProcessor) Preview(text string, limit int) (template.HTML, bool) {
	text = blankLines.ReplaceAllString(strings.TrimSpace(text), "\n\n")
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return tp.Render(text), false
	}
	runes := []rune(text)
	return tp.Render(string(runes[:limit]) + "…"), true
}

func (tp *TextProcessor) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return text, err
	}
	return strings.TrimSpace(buf.String()), nil
}

func (tp *TextProcessor) sanitizeText(text string) string {
	return strings.TrimSpace(tp.policy.Sanitize(text))
}
