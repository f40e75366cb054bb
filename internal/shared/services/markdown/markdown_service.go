package markdown

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownService renders notification bodies and cleans user-submitted text.
type MarkdownService interface {
	// ToHTMLSanitized renders markdown and strips anything outside the UGC policy.
	ToHTMLSanitized(markdown string) (string, error)
	// StripTags removes all markup from user input, keeping text content.
	StripTags(input string) string
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &markdownServiceImpl{
		md:     md,
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.ugc.Sanitize(buf.String()), nil
}

func (s *markdownServiceImpl) StripTags(input string) string {
	// The strict policy entity-encodes text; stored messages keep plain characters.
	return strings.TrimSpace(stdhtml.UnescapeString(s.strict.Sanitize(input)))
}
