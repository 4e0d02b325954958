package main

import "html/template"

// render_types.go contains data structures used for template rendering.
// These are pre-computed, template-ready versions of the archive types.
// Fields typed template.HTML have already been escaped or are trusted archive
// HTML; template.URL fields come from the media resolver, which may hand out
// the data: placeholder. Plain string fields are escaped by html/template.

// PageData contains everything needed to render one page document.
type PageData struct {
	Title       string // Plain text, escaped by the template
	Description string // Plain text of the bio
	Profile     RenderedProfile
	Nav         *Navigation // nil when the archive fits on a single page
	Posts       []template.HTML
}

// RenderedProfile is the account block at the top of every page.
type RenderedProfile struct {
	Name     template.HTML // Display name with emoji
	Username string
	Bio      template.HTML
}

// Navigation holds the links to the neighbouring pages.
type Navigation struct {
	Previous string // File name of the page before, empty on the first page
	Next     string // File name of the page after, empty on the last page
}

// RenderedPost represents a post ready for templating.
type RenderedPost struct {
	// Boost byline (if this is a boost)
	BoostedBy *RenderedBooster

	// Author info
	Avatar     template.URL
	AuthorURL  string
	AuthorName template.HTML // Display name with emoji, or the username
	Acct       string

	// Metadata
	URL  string
	Time string // YYYY-MM-DD HH:MM

	// Content, spoiler paragraph included
	Content template.HTML

	// Media; Card is only set when Attachments is empty
	Attachments []RenderedAttachment
	Card        *RenderedCard
}

// RenderedBooster is the account credited in a "boosted" byline.
type RenderedBooster struct {
	URL  string
	Name template.HTML
}

// RenderedAttachment represents one cell of the media grid.
type RenderedAttachment struct {
	URL         template.URL // Full-resolution file
	Preview     template.URL // Preview file, or the full-resolution one
	Size        string       // "", "tall" or "small"
	Padding     string
	Description string
}

// RenderedCard represents a link preview card.
type RenderedCard struct {
	URL   string
	Image template.URL
	Title string
	Host  string
}
