package main

import (
	"html"
	"html/template"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Renderer turns archived posts into HTML fragments. It never fails on
// missing or malformed post data; absent fields render as empty content or
// placeholder images.
type Renderer struct {
	media     *MediaResolver
	sanitizer *Sanitizer
	log       *zap.Logger
}

// NewRenderer creates a renderer. sanitizer may be nil.
func NewRenderer(media *MediaResolver, sanitizer *Sanitizer, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{media: media, sanitizer: sanitizer, log: log}
}

// cell is one position in the media grid
type cell struct {
	Size    string
	Padding string
}

// attachmentGrid lays out two to four attachments. Any other count uses
// defaultCell for every attachment.
var attachmentGrid = map[int][]cell{
	2: {
		{"tall", "0 1px 0 0"},
		{"tall", "0 0 0 1px"},
	},
	3: {
		{"tall", "0 1px 0 0"},
		{"small", "0 0 1px 1px"},
		{"small", "1px 0 0 1px"},
	},
	4: {
		{"small", "0 1px 1px 0"},
		{"small", "0 0 1px 1px"},
		{"small", "1px 1px 0 0"},
		{"small", "1px 0 0 1px"},
	},
}

var defaultCell = cell{Size: "", Padding: "0"}

// attachmentLayout returns the grid cell for attachment idx of count
func attachmentLayout(count, idx int) cell {
	if cells, ok := attachmentGrid[count]; ok && idx >= 0 && idx < len(cells) {
		return cells[idx]
	}
	return defaultCell
}

// timeLayouts are tried in order when reading a post's timestamp
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// formatPostTime formats a stored timestamp as "YYYY-MM-DD HH:MM" in the
// offset it was written with. Unparseable values are shown as stored.
func formatPostTime(createdAt string) string {
	createdAt = strings.TrimSpace(createdAt)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return createdAt
}

// extractHost extracts the host from a URL for display
func extractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// RenderPost renders the HTML fragment for one post.
func (r *Renderer) RenderPost(post Post) (template.HTML, error) {
	fragment, err := execute("post.html.tmpl", r.BuildPost(post))
	if err != nil {
		return "", err
	}
	return template.HTML(fragment), nil
}

// BuildPost builds the template data for a post, unwrapping boosts.
func (r *Renderer) BuildPost(post Post) *RenderedPost {
	ep := Unwrap(post)
	author := ep.Account

	rendered := &RenderedPost{
		Avatar:     r.resolve(author.Avatar, "", WithPlaceholder),
		AuthorURL:  author.URL,
		AuthorName: r.displayName(author),
		Acct:       author.Acct,
		URL:        ep.URL,
		Time:       formatPostTime(ep.CreatedAt),
		Content:    template.HTML(r.withEmoji(r.composeBody(ep.Post), ep.Emojis)),
	}
	if rendered.Acct == "" {
		rendered.Acct = author.Username
	}

	if ep.Booster != nil {
		rendered.BoostedBy = &RenderedBooster{
			URL:  ep.Booster.URL,
			Name: r.displayName(*ep.Booster),
		}
	}

	// Attachments take precedence over the card
	if len(ep.Media) > 0 {
		rendered.Attachments = r.buildAttachments(ep.Media)
	} else if ep.Card != nil {
		rendered.Card = r.buildCard(*ep.Card)
	}

	return rendered
}

// BuildProfile builds the account block shown at the top of every page.
func (r *Renderer) BuildProfile(account Account) RenderedProfile {
	return RenderedProfile{
		Name:     r.displayName(account),
		Username: account.Username,
		Bio:      template.HTML(r.withEmoji(r.sanitizer.Sanitize(account.Note), account.Emojis)),
	}
}

// displayName returns the escaped display name with emoji, falling back to
// the username when nothing is left.
func (r *Renderer) displayName(account Account) template.HTML {
	name := r.withEmoji(html.EscapeString(account.DisplayName), account.Emojis)
	if strings.TrimSpace(name) == "" {
		name = html.EscapeString(account.Username)
	}
	return template.HTML(name)
}

// composeBody puts the content warning, if any, ahead of the body
func (r *Renderer) composeBody(post Post) string {
	body := r.sanitizer.Sanitize(post.Content)
	if spoiler := optional(post.SpoilerText); spoiler != "" {
		return "<p>" + html.EscapeString(spoiler) + "</p>" + body
	}
	return body
}

func (r *Renderer) buildAttachments(media []Attachment) []RenderedAttachment {
	attachments := make([]RenderedAttachment, 0, len(media))
	for i, m := range media {
		layout := attachmentLayout(len(media), i)
		attachments = append(attachments, RenderedAttachment{
			URL:         r.resolve(m.URL, "", WithPlaceholder),
			Preview:     r.resolve(m.PreviewURL, m.URL, WithPlaceholder),
			Size:        layout.Size,
			Padding:     layout.Padding,
			Description: optional(m.Description),
		})
	}
	return attachments
}

func (r *Renderer) buildCard(card Card) *RenderedCard {
	return &RenderedCard{
		URL:   card.URL,
		Image: r.resolve(optional(card.Image), "", WithPlaceholder),
		Title: optional(card.Title),
		Host:  extractHost(card.URL),
	}
}

// resolve marks resolved media as a safe URL; the placeholder is a data: URL
// that html/template would otherwise reject.
func (r *Renderer) resolve(primary, fallback string, allowPlaceholder bool) template.URL {
	return template.URL(r.media.Resolve(primary, fallback, allowPlaceholder))
}
