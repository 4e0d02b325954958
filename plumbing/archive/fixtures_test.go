package main

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// Test helpers

const testMediaDir = "example.org.user.alice"

var testHandle = Handle{Username: "alice", Domain: "example.org"}

func strPtr(s string) *string { return &s }

// testMedia is a media cache holding an avatar, two attachments (the first
// with a preview), a card image and one emoji.
func testMedia() fstest.MapFS {
	return fstest.MapFS{
		"accounts/avatars/alice.png":       {Data: []byte("png")},
		"media_attachments/1/original.jpg": {Data: []byte("jpg")},
		"media_attachments/1/small.jpg":    {Data: []byte("jpg")},
		"media_attachments/2/original.jpg": {Data: []byte("jpg")},
		"preview_cards/1.png":              {Data: []byte("png")},
		"custom_emojis/smile.png":          {Data: []byte("png")},
	}
}

func newTestRenderer(fsys fstest.MapFS) *Renderer {
	return NewRenderer(NewMediaResolver(fsys, testMediaDir, nil), nil, nil)
}

func testAccount() Account {
	return Account{
		Username:    "alice",
		Acct:        "alice",
		DisplayName: "Alice",
		Note:        "<p>Archivist</p>",
		URL:         "https://example.org/@alice",
		Avatar:      "https://example.org/accounts/avatars/alice.png",
	}
}

func testPost(id string) Post {
	return Post{
		ID:        id,
		URL:       "https://example.org/@alice/" + id,
		CreatedAt: "2017-11-20T17:52:35.000Z",
		Content:   fmt.Sprintf("<p>Post %s</p>", id),
		Account:   testAccount(),
	}
}

func testAttachments(n int) []Attachment {
	media := make([]Attachment, n)
	for i := range media {
		media[i] = Attachment{
			URL:        fmt.Sprintf("https://example.org/media_attachments/%d/original.jpg", i+1),
			PreviewURL: fmt.Sprintf("https://example.org/media_attachments/%d/small.jpg", i+1),
		}
	}
	return media
}

// testArchive builds an archive whose statuses are numbered newest-first
func testArchive(statuses int) *Archive {
	posts := make([]Post, statuses)
	for i := range posts {
		posts[i] = testPost(fmt.Sprintf("%03d", statuses-i))
	}
	return &Archive{
		Account:     testAccount(),
		Collections: map[string][]Post{"statuses": posts},
	}
}

func parseHTML(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}
