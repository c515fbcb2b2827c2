package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareResumeTextPlainTextPassesThrough(t *testing.T) {
	raw := "Ada Lovelace\nSoftware Engineer\nhttps://example.com"
	assert.Equal(t, raw, PrepareResumeText(raw))
}

func TestPrepareResumeTextExtractsHyperlinks(t *testing.T) {
	raw := `<html><body>
		<p>Analytical Engine project <a href="https://github.com/ada/engine">demo</a></p>
		<p>Portfolio at <a href="https://ada.dev">https://ada.dev</a></p>
		<p>Internal link <a href="#section">jump</a></p>
	</body></html>`

	got := PrepareResumeText(raw)

	idx := strings.Index(got, HyperlinkSectionMarker)
	require.GreaterOrEqual(t, idx, 0, "hyperlink section must be appended")

	section := got[idx:]
	assert.Contains(t, section, "demo: https://github.com/ada/engine")
	assert.Contains(t, section, "https://ada.dev")
	assert.NotContains(t, section, "#section")

	body := got[:idx]
	assert.Contains(t, body, "Analytical Engine project")
	assert.NotContains(t, body, "<a href")
}

func TestPrepareResumeTextDeduplicatesLinks(t *testing.T) {
	raw := `<div>
		<a href="https://github.com/ada/engine">code</a>
		<a href="https://github.com/ada/engine">source</a>
	</div>`

	got := PrepareResumeText(raw)
	assert.Equal(t, 1, strings.Count(got, "https://github.com/ada/engine"))
}

func TestPrepareResumeTextHTMLWithoutLinks(t *testing.T) {
	raw := `<html><body><p>Just text, no links.</p></body></html>`

	got := PrepareResumeText(raw)
	assert.Equal(t, "Just text, no links.", got)
	assert.NotContains(t, got, HyperlinkSectionMarker)
}
