package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("Complaint **#12** moved to `RESOLVED`<script>alert(1)</script>")
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>#12</strong>")
	assert.Contains(t, out, "<code>RESOLVED</code>")
	assert.NotContains(t, out, "<script>")
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "The build is broken", svc.StripTags("  <b>The build</b> is <img src=x onerror=alert(1)>broken "))
	assert.Equal(t, "", svc.StripTags("<script>alert(1)</script>"))
}

func TestStripTags_KeepsPlainPunctuation(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "it's late & broken", svc.StripTags("it's late & broken"))
}
