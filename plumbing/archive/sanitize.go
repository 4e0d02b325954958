package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans archived HTML (post bodies, bios) before it is inlined.
// A nil *Sanitizer passes HTML through untouched.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer based on the UGC policy. Classes are kept
// on the elements servers use for mentions, hashtags and hidden URL parts.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("a", "span", "p")
	return &Sanitizer{policy: policy}
}

// Sanitize cleans HTML content to prevent XSS attacks.
func (s *Sanitizer) Sanitize(input string) string {
	if s == nil || s.policy == nil {
		return input
	}
	return s.policy.Sanitize(input)
}

// plainText extracts the whitespace-normalized text of an HTML fragment.
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	// Keep paragraphs and line breaks apart
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p").AppendHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}
