package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// memWriter keeps pages in memory and can fail on a given page
type memWriter struct {
	pages  map[string]string
	order  []string
	failOn string
}

func newMemWriter() *memWriter {
	return &memWriter{pages: make(map[string]string)}
}

func (w *memWriter) WritePage(name string, content []byte) error {
	if name == w.failOn {
		return errors.New("disk full")
	}
	w.pages[name] = string(content)
	w.order = append(w.order, name)
	return nil
}

func compileOptions(w PageWriter, pageSize int) CompileOptions {
	return CompileOptions{
		Handle:     testHandle,
		Collection: "statuses",
		PageSize:   pageSize,
		Renderer:   newTestRenderer(testMedia()),
		Writer:     w,
	}
}

func TestCompileArchive_Pages(t *testing.T) {
	w := newMemWriter()

	written, err := CompileArchive(testArchive(250), compileOptions(w, 100))
	require.NoError(t, err)

	expected := []string{
		"example.org.user.alice.statuses.0.html",
		"example.org.user.alice.statuses.1.html",
		"example.org.user.alice.statuses.2.html",
	}
	assert.Equal(t, expected, written)
	assert.Equal(t, expected, w.order, "pages are written in order")

	// Page 0 holds the 50 newest posts, the others 100 each
	first := parseHTML(t, w.pages[expected[0]])
	assert.Equal(t, 50, first.Find(".wrapper").Length())
	assert.Equal(t, "https://example.org/@alice/250", first.Find(".wrapper").First().Find("a.time").AttrOr("href", ""))
	assert.Equal(t, 100, parseHTML(t, w.pages[expected[1]]).Find(".wrapper").Length())
	last := parseHTML(t, w.pages[expected[2]])
	assert.Equal(t, 100, last.Find(".wrapper").Length())
	assert.Equal(t, "https://example.org/@alice/001", last.Find(".wrapper").Last().Find("a.time").AttrOr("href", ""))
}

func TestCompileArchive_Navigation(t *testing.T) {
	w := newMemWriter()

	written, err := CompileArchive(testArchive(250), compileOptions(w, 100))
	require.NoError(t, err)
	require.Len(t, written, 3)

	tests := []struct {
		page     string
		previous string
		next     string
	}{
		{written[0], "", written[1]},
		{written[1], written[0], written[2]},
		{written[2], written[1], ""},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			doc := parseHTML(t, w.pages[tt.page])

			// Header and footer carry the same links
			assert.Equal(t, 2, doc.Find("nav").Length())
			if tt.previous == "" {
				assert.Equal(t, 0, doc.Find("nav a.previous").Length())
			} else {
				assert.Equal(t, 2, doc.Find("nav a.previous").Length())
				assert.Equal(t, tt.previous, doc.Find("nav a.previous").AttrOr("href", ""))
				assert.Equal(t, "Later", doc.Find("nav a.previous").First().Text())
			}
			if tt.next == "" {
				assert.Equal(t, 0, doc.Find("nav a.next").Length())
			} else {
				assert.Equal(t, 2, doc.Find("nav a.next").Length())
				assert.Equal(t, tt.next, doc.Find("nav a.next").AttrOr("href", ""))
				assert.Equal(t, "Earlier", doc.Find("nav a.next").First().Text())
			}
		})
	}
}

func TestCompileArchive_SinglePageHasNoNavigation(t *testing.T) {
	w := newMemWriter()

	written, err := CompileArchive(testArchive(10), compileOptions(w, 100))
	require.NoError(t, err)
	require.Len(t, written, 1)

	doc := parseHTML(t, w.pages[written[0]])
	assert.Equal(t, 0, doc.Find("nav").Length())
	assert.Equal(t, 10, doc.Find(".wrapper").Length())
	assert.Equal(t, 1, doc.Find("footer").Length())
}

func TestCompileArchive_ExactMultipleWritesEmptyFirstPage(t *testing.T) {
	w := newMemWriter()

	written, err := CompileArchive(testArchive(200), compileOptions(w, 100))
	require.NoError(t, err)
	require.Len(t, written, 3)

	assert.Equal(t, 0, parseHTML(t, w.pages[written[0]]).Find(".wrapper").Length())
	assert.Equal(t, 100, parseHTML(t, w.pages[written[1]]).Find(".wrapper").Length())
	assert.Equal(t, 100, parseHTML(t, w.pages[written[2]]).Find(".wrapper").Length())
}

func TestCompileArchive_EmptyCollection(t *testing.T) {
	w := newMemWriter()

	written, err := CompileArchive(testArchive(0), compileOptions(w, 100))
	require.NoError(t, err)
	assert.Empty(t, written)
	assert.Empty(t, w.pages)

	opts := compileOptions(w, 100)
	opts.Collection = "favourites"
	written, err = CompileArchive(testArchive(5), opts)
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestCompileArchive_InvalidPageSize(t *testing.T) {
	_, err := CompileArchive(testArchive(5), compileOptions(newMemWriter(), 0))
	require.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestCompileArchive_WriteFailureStopsRun(t *testing.T) {
	w := newMemWriter()
	w.failOn = "example.org.user.alice.statuses.1.html"

	written, err := CompileArchive(testArchive(250), compileOptions(w, 100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), w.failOn)

	assert.Equal(t, []string{"example.org.user.alice.statuses.0.html"}, written)
	assert.NotContains(t, w.pages, "example.org.user.alice.statuses.2.html", "no page is written after a failure")
}

func TestCompileArchive_ProfileHeader(t *testing.T) {
	w := newMemWriter()
	archive := testArchive(1)
	archive.Account.Note = "<p>Keeps <a href=\"https://example.org/tags/things\">#things</a></p><p>forever</p>"

	written, err := CompileArchive(archive, compileOptions(w, 100))
	require.NoError(t, err)

	doc := parseHTML(t, w.pages[written[0]])
	assert.Equal(t, "Alice", doc.Find("title").Text())
	assert.Equal(t, "Keeps #things forever", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Equal(t, "Alice", doc.Find("h1.name").Text())
	assert.Equal(t, "@alice", doc.Find(".account .nick").Text())
	assert.Equal(t, 1, doc.Find(".bio a").Length())
	assert.Contains(t, doc.Find("style").Text(), ".media")
}

func TestCompileArchive_TitleFallsBackToUsername(t *testing.T) {
	w := newMemWriter()
	archive := testArchive(1)
	archive.Account.DisplayName = ""

	written, err := CompileArchive(archive, compileOptions(w, 100))
	require.NoError(t, err)

	doc := parseHTML(t, w.pages[written[0]])
	assert.Equal(t, "alice", doc.Find("title").Text())
	assert.Equal(t, "alice", doc.Find("h1.name").Text())
}

func TestCompileArchive_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	archive := testArchive(130)
	archive.Collections["statuses"][3].Media = testAttachments(3)
	archive.Collections["statuses"][4].Card = &Card{URL: "https://news.example.com/", Title: strPtr("News")}

	writtenA, err := CompileArchive(archive, compileOptions(DirWriter{Dir: dirA}, 50))
	require.NoError(t, err)
	writtenB, err := CompileArchive(archive, compileOptions(DirWriter{Dir: dirB}, 50))
	require.NoError(t, err)
	require.Equal(t, writtenA, writtenB)

	for _, name := range writtenA {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between runs", name)
	}
}

func TestCompileArchive_LogsEveryPage(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	opts := compileOptions(newMemWriter(), 100)
	opts.Log = zap.New(core)

	_, err := CompileArchive(testArchive(150), opts)
	require.NoError(t, err)

	entries := logs.FilterMessage("wrote page").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "example.org.user.alice.statuses.0.html", entries[0].ContextMap()["file"])
	assert.Equal(t, int64(50), entries[0].ContextMap()["posts"])
	assert.Equal(t, int64(100), entries[1].ContextMap()["posts"])
}

func TestCompileArchive_NoPlaceholderText(t *testing.T) {
	w := newMemWriter()
	archive := testArchive(1)
	archive.Collections["statuses"][0].Content = "<p>:missing:</p>"
	archive.Collections["statuses"][0].Emojis = []Emoji{{Shortcode: "missing", URL: "https://example.org/custom_emojis/missing.png"}}

	written, err := CompileArchive(archive, compileOptions(w, 100))
	require.NoError(t, err)

	page := w.pages[written[0]]
	assert.Contains(t, page, "<p>:missing:</p>")
	assert.Equal(t, 0, strings.Count(page, `class="emoji"`))
}
