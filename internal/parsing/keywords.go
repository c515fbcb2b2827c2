package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches alphabetic tokens of length >= 3. Shorter tokens carry
// almost no signal for search-keyword purposes.
var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// stopwords is the fixed exclusion set for keyword derivation. Matching is
// done on lowercased tokens.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "have": {}, "has": {}, "had": {}, "was": {}, "were": {},
	"are": {}, "been": {}, "being": {}, "will": {}, "would": {}, "can": {},
	"could": {}, "should": {}, "into": {}, "over": {}, "under": {}, "about": {},
	"also": {}, "than": {}, "then": {}, "them": {}, "they": {}, "their": {},
	"our": {}, "your": {}, "you": {}, "all": {}, "any": {}, "each": {},
	"more": {}, "most": {}, "other": {}, "some": {}, "such": {}, "not": {},
	"only": {}, "own": {}, "same": {}, "while": {}, "where": {}, "when": {},
	"who": {}, "which": {}, "what": {}, "how": {}, "work": {}, "worked": {},
	"working": {}, "experience": {}, "experienced": {}, "years": {}, "year": {},
	"using": {}, "used": {}, "use": {}, "skills": {}, "skill": {},
	"including": {}, "various": {}, "strong": {}, "ability": {}, "well": {},
	"team": {}, "new": {}, "per": {}, "via": {}, "etc": {},
}

// canonicalRoles is the ordered list of role phrases scanned against resume
// text to infer a search role. Order matters: the first match wins, so more
// specific phrases come first.
var canonicalRoles = []string{
	"machine learning engineer",
	"data scientist",
	"data engineer",
	"devops engineer",
	"full stack developer",
	"frontend developer",
	"backend developer",
	"mobile developer",
	"software engineer",
	"software developer",
	"product manager",
	"project manager",
	"business analyst",
	"qa engineer",
	"ux designer",
}

// defaultRole is used when no canonical role phrase appears in the resume.
const defaultRole = "software developer"

// Tokenize splits text into lowercased alphabetic tokens of length >= 3.
func Tokenize(text string) []string {
	matches := wordPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// IsStopword reports whether the lowercased token is in the fixed stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[strings.ToLower(token)]
	return ok
}

// TopKeywords returns the topK most frequent non-stopword tokens in text.
// Ties are broken by first occurrence so the result is deterministic.
func TopKeywords(text string, topK int) []string {
	if topK <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, token := range Tokenize(text) {
		if IsStopword(token) {
			continue
		}
		counts[token]++
		if _, seen := firstSeen[token]; !seen {
			firstSeen[token] = i
		}
	}

	keywords := make([]string, 0, len(counts))
	for token := range counts {
		keywords = append(keywords, token)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})

	if len(keywords) > topK {
		keywords = keywords[:topK]
	}
	return keywords
}

// DeriveKeywords builds a search-keyword string from resume text: the topK
// frequent tokens joined by spaces, falling back to the inferred role when the
// resume yields nothing usable.
func DeriveKeywords(resumeText string, topK int) string {
	keywords := TopKeywords(resumeText, topK)
	if len(keywords) == 0 {
		return InferRole(resumeText)
	}
	return strings.Join(keywords, " ")
}

// InferRole scans the resume text case-insensitively against the canonical
// role list and returns the first match, or defaultRole when none match.
func InferRole(resumeText string) string {
	lower := strings.ToLower(resumeText)
	for _, role := range canonicalRoles {
		if strings.Contains(lower, role) {
			return role
		}
	}
	return defaultRole
}
