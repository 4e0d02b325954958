package main

// Page is one output document's window into a collection.
type Page struct {
	Index       int
	Start       int // Inclusive
	End         int // Exclusive
	HasPrevious bool
	HasNext     bool
}

// Len returns the number of posts on the page
func (p Page) Len() int {
	return p.End - p.Start
}

// Paginate splits total posts into pages of pageSize.
//
// Posts are newest-first. Page 0 takes the remainder and every later page a
// full window, so the last page always ends exactly at total. When total is
// a multiple of pageSize page 0 is empty; it is still emitted so that page
// numbering and navigation stay stable.
func Paginate(total, pageSize int) []Page {
	if total <= 0 || pageSize <= 0 {
		return nil
	}

	full := total / pageSize
	remainder := total % pageSize

	pages := make([]Page, 0, full+1)
	for p := 0; p <= full; p++ {
		pages = append(pages, Page{
			Index:       p,
			Start:       max(0, pageSize*(p-1)+remainder),
			End:         pageSize*p + remainder,
			HasPrevious: p > 0,
			HasNext:     p < full,
		})
	}
	return pages
}

// buildNavigation returns the navigation block for a page, or nil when the
// whole collection fits on one page.
func buildNavigation(page Page, pageCount int, name func(int) string) *Navigation {
	if pageCount <= 1 {
		return nil
	}

	nav := &Navigation{}
	if page.HasPrevious {
		nav.Previous = name(page.Index - 1)
	}
	if page.HasNext {
		nav.Next = name(page.Index + 1)
	}
	return nav
}
