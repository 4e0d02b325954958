package main

// Archive is the exported state of one account: its profile plus one list of
// posts per collection (statuses, favourites, mentions, bookmarks, ...).
// Every collection is ordered newest-first.
type Archive struct {
	Account     Account
	Collections map[string][]Post
}

// Collection returns the posts of a named collection, or nil if the archive
// doesn't carry it.
func (a *Archive) Collection(name string) []Post {
	if a == nil {
		return nil
	}
	return a.Collections[name]
}

// Account represents a profile as stored in the archive
type Account struct {
	Username    string  `json:"username"`
	Acct        string  `json:"acct"`
	DisplayName string  `json:"display_name"`
	Note        string  `json:"note"` // Bio, HTML
	URL         string  `json:"url"`
	Avatar      string  `json:"avatar"`
	Emojis      []Emoji `json:"emojis,omitempty"`
}

// Post represents a status in storage format. Optional fields are pointers
// so that absent and empty can be told apart.
type Post struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	CreatedAt   string       `json:"created_at"` // Kept verbatim so the original offset survives
	Content     string       `json:"content"`    // HTML
	SpoilerText *string      `json:"spoiler_text,omitempty"`
	Account     Account      `json:"account"`
	Reblog      *Post        `json:"reblog,omitempty"`
	Media       []Attachment `json:"media_attachments,omitempty"`
	Card        *Card        `json:"card,omitempty"`
	Emojis      []Emoji      `json:"emojis,omitempty"`
}

// Attachment represents a media attachment
type Attachment struct {
	URL         string  `json:"url"`
	PreviewURL  string  `json:"preview_url,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Card represents a link preview
type Card struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
	Image *string `json:"image,omitempty"`
}

// Emoji is a custom emoji definition; Shortcode is stored without colons
type Emoji struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
}

// EffectivePost is a post after boost unwrapping: the content to show plus
// the account that boosted it, if any.
type EffectivePost struct {
	Post
	Booster *Account
}

// Unwrap resolves a boost. Content comes entirely from the wrapped post;
// the wrapper only contributes its author as the booster.
func Unwrap(p Post) EffectivePost {
	if p.Reblog == nil {
		return EffectivePost{Post: p}
	}
	booster := p.Account
	return EffectivePost{Post: *p.Reblog, Booster: &booster}
}

// optional returns the value behind s, or "" when absent
func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
