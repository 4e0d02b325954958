package main

import (
	"fmt"
	"html/template"

	"go.uber.org/zap"
)

// CompileOptions describes one rendering run
type CompileOptions struct {
	Handle     Handle
	Collection string
	PageSize   int
	Renderer   *Renderer
	Writer     PageWriter
	Log        *zap.Logger
}

// BuildPageData builds the template data for one page of posts.
func BuildPageData(account Account, posts []Post, nav *Navigation, r *Renderer) (*PageData, error) {
	data := &PageData{
		Title:       account.DisplayName,
		Description: plainText(account.Note),
		Profile:     r.BuildProfile(account),
		Nav:         nav,
		Posts:       make([]template.HTML, 0, len(posts)),
	}
	if data.Title == "" {
		data.Title = account.Username
	}

	for _, post := range posts {
		fragment, err := r.RenderPost(post)
		if err != nil {
			return nil, fmt.Errorf("rendering post %s: %w", post.ID, err)
		}
		data.Posts = append(data.Posts, fragment)
	}

	return data, nil
}

// CompileArchive renders a collection into page documents, in page order,
// and returns the names of the pages written. An empty collection writes
// nothing. The first failed write stops the run.
func CompileArchive(archive *Archive, opts CompileOptions) ([]string, error) {
	if opts.PageSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, opts.PageSize)
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	posts := archive.Collection(opts.Collection)
	pages := Paginate(len(posts), opts.PageSize)
	pageName := func(i int) string {
		return opts.Handle.PageFile(opts.Collection, i)
	}

	var written []string
	for _, page := range pages {
		name := pageName(page.Index)
		nav := buildNavigation(page, len(pages), pageName)

		data, err := BuildPageData(archive.Account, posts[page.Start:page.End], nav, opts.Renderer)
		if err != nil {
			return written, fmt.Errorf("building %s: %w", name, err)
		}

		html, err := RenderPage(data)
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", name, err)
		}

		if err := opts.Writer.WritePage(name, []byte(html)); err != nil {
			return written, fmt.Errorf("writing %s: %w", name, err)
		}

		log.Info("wrote page",
			zap.String("file", name),
			zap.Int("page", page.Index),
			zap.Int("posts", page.Len()))
		written = append(written, name)
	}

	return written, nil
}
