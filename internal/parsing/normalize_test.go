package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsTagsAndSymbols(t *testing.T) {
	got := Normalize("<b>Senior</b> Go & Python dev (remote) — 5+ yrs!")
	assert.Equal(t, "senior go python dev remote 5 yrs", got)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  foo\t\tbar\n\nbaz  ")
	assert.Equal(t, "foo bar baz", got)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<div>HTML <span>nested</span></div>",
		"MIXED Case\twith\nSYMBOLS #$%^",
		"   already   messy    input ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"résumé with accénts",
		"tabs\tand\nnewlines",
		"symbols !@#$%^&*()_+{}|:<>?",
		"<a href='x'>link</a> text",
	}
	for _, in := range inputs {
		out := Normalize(in)
		for _, r := range out {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' '
			assert.True(t, valid, "unexpected rune %q in output %q", r, out)
		}
		assert.NotContains(t, out, "  ", "double space in %q", out)
		assert.Equal(t, strings.TrimSpace(out), out, "untrimmed output %q", out)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t\n  "))
	assert.Equal(t, "", Normalize("<br><hr>"))
}
