package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Go is a C2-like systems language, v1.22")
	assert.Equal(t, []string{"like", "systems", "language"}, tokens)
}

func TestTopKeywords_ExcludesStopwords(t *testing.T) {
	keywords := TopKeywords("Experienced Python developer with AWS and Docker skills", 5)
	assert.NotContains(t, keywords, "with")
	assert.NotContains(t, keywords, "and")
	assert.NotContains(t, keywords, "experienced")
	assert.Contains(t, keywords, "python")
	assert.Contains(t, keywords, "docker")
	assert.Contains(t, keywords, "aws")
}

func TestTopKeywords_FrequencyThenFirstOccurrence(t *testing.T) {
	text := "kubernetes terraform kubernetes golang terraform kubernetes"
	keywords := TopKeywords(text, 3)
	require.Len(t, keywords, 3)
	assert.Equal(t, "kubernetes", keywords[0])
	assert.Equal(t, "terraform", keywords[1])
	assert.Equal(t, "golang", keywords[2])
}

func TestTopKeywords_CapsAtK(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel"
	assert.Len(t, TopKeywords(text, 4), 4)
	assert.Empty(t, TopKeywords(text, 0))
}

func TestDeriveKeywords_FallsBackToRole(t *testing.T) {
	// All-stopword resume yields no tokens, so the inferred role is used.
	got := DeriveKeywords("the and for with", 10)
	assert.Equal(t, defaultRole, got)
}

func TestInferRole(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		want   string
	}{
		{
			name:   "first match wins in canonical order",
			resume: "I am a Backend Developer and Software Engineer",
			want:   "backend developer",
		},
		{
			name:   "case insensitive",
			resume: "SENIOR DATA SCIENTIST with ML background",
			want:   "data scientist",
		},
		{
			name:   "no match falls back to default",
			resume: "barista and part-time illustrator",
			want:   defaultRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRole(tt.resume))
		})
	}
}
