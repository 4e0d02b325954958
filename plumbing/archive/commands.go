package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// applyRunFlags folds per-command flags into cfg and validates the result
func applyRunFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Lookup("collection") != nil && flags.Changed("collection") {
		cfg.Collection, _ = flags.GetString("collection")
	}
	if flags.Lookup("per-page") != nil && flags.Changed("per-page") {
		cfg.PageSize, _ = flags.GetInt("per-page")
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Lookup("sanitize") != nil && flags.Changed("sanitize") {
		cfg.Sanitize, _ = flags.GetBool("sanitize")
	}
	return cfg.Validate()
}

// openArchive parses the handle argument and loads its archive
func openArchive(arg string) (Handle, *Archive, error) {
	handle, err := ParseHandle(arg)
	if err != nil {
		return Handle{}, nil, err
	}
	archive, err := LoadArchive(cfg.Dir, handle)
	if err != nil {
		return Handle{}, nil, err
	}
	return handle, archive, nil
}

// mediaPrefix returns how documents in output refer to the media directory
// of handle in dir.
func mediaPrefix(dir, output string, h Handle) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving archive directory: %w", err)
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	rel, err := filepath.Rel(absOut, filepath.Join(absDir, h.MediaDir()))
	if err != nil {
		return "", fmt.Errorf("locating media directory: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// newRenderer wires the media cache of handle into a renderer
func newRenderer(h Handle) (*Renderer, error) {
	prefix, err := mediaPrefix(cfg.Dir, cfg.Output(), h)
	if err != nil {
		return nil, err
	}
	media := NewMediaResolver(os.DirFS(filepath.Join(cfg.Dir, h.MediaDir())), prefix, logger)

	var sanitizer *Sanitizer
	if cfg.Sanitize {
		sanitizer = NewSanitizer()
	}
	return NewRenderer(media, sanitizer, logger), nil
}

// archive-html html
var htmlCmd = &cobra.Command{
	Use:   "html <user@domain>",
	Short: "Write the HTML pages of a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyRunFlags(cmd); err != nil {
			return err
		}

		handle, archive, err := openArchive(args[0])
		if err != nil {
			return err
		}
		renderer, err := newRenderer(handle)
		if err != nil {
			return err
		}

		written, err := CompileArchive(archive, CompileOptions{
			Handle:     handle,
			Collection: cfg.Collection,
			PageSize:   cfg.PageSize,
			Renderer:   renderer,
			Writer:     DirWriter{Dir: cfg.Output()},
			Log:        logger,
		})
		for _, name := range written {
			fmt.Printf("Wrote %s\n", filepath.Join(cfg.Output(), name))
		}
		if err != nil {
			return err
		}

		if len(written) == 0 {
			fmt.Printf("No %s to write for %s\n", cfg.Collection, handle)
		}
		return nil
	},
}

// archive-html pages
var pagesCmd = &cobra.Command{
	Use:   "pages <user@domain>",
	Short: "Show how a collection would be split into pages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyRunFlags(cmd); err != nil {
			return err
		}

		handle, archive, err := openArchive(args[0])
		if err != nil {
			return err
		}

		posts := archive.Collection(cfg.Collection)
		pages := Paginate(len(posts), cfg.PageSize)
		fmt.Printf("%s: %d %s, %d per page, %d pages\n", handle, len(posts), cfg.Collection, cfg.PageSize, len(pages))

		for _, page := range pages {
			nav := buildNavigation(page, len(pages), func(i int) string {
				return handle.PageFile(cfg.Collection, i)
			})
			prev, next := "-", "-"
			if nav != nil && nav.Previous != "" {
				prev = nav.Previous
			}
			if nav != nil && nav.Next != "" {
				next = nav.Next
			}
			fmt.Printf("  %s  posts [%d, %d)  later: %s  earlier: %s\n",
				handle.PageFile(cfg.Collection, page.Index), page.Start, page.End, prev, next)
		}

		return nil
	},
}

// archive-html show
var showCmd = &cobra.Command{
	Use:   "show <user@domain> <post-id>",
	Short: "Print the HTML fragment of a single post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyRunFlags(cmd); err != nil {
			return err
		}

		handle, archive, err := openArchive(args[0])
		if err != nil {
			return err
		}
		renderer, err := newRenderer(handle)
		if err != nil {
			return err
		}

		for _, post := range archive.Collection(cfg.Collection) {
			if post.ID != args[1] {
				continue
			}
			fragment, err := renderer.RenderPost(post)
			if err != nil {
				return err
			}
			fmt.Print(fragment)
			return nil
		}

		return fmt.Errorf("post not found in %s: %s", cfg.Collection, args[1])
	},
}

func init() {
	for _, cmd := range []*cobra.Command{htmlCmd, pagesCmd, showCmd} {
		cmd.Flags().String("collection", "statuses", "Collection to render: statuses, favourites, bookmarks, mentions (env ARCHIVE_COLLECTION)")
	}

	// html flags
	htmlCmd.Flags().Int("per-page", 100, "Posts per page (env ARCHIVE_PAGE_SIZE)")
	htmlCmd.Flags().String("output", "", "Directory to write pages to (default: --dir; env ARCHIVE_OUTPUT_DIR)")
	htmlCmd.Flags().Bool("sanitize", false, "Sanitize post and bio HTML (env ARCHIVE_SANITIZE)")

	// pages flags
	pagesCmd.Flags().Int("per-page", 100, "Posts per page (env ARCHIVE_PAGE_SIZE)")

	// show flags
	showCmd.Flags().Bool("sanitize", false, "Sanitize post HTML (env ARCHIVE_SANITIZE)")
}
