package pagination

// Page is one page of an in-memory result set.
// Total is the length of the full (filtered) list, not of Items.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	PageSize int
}

// Paginate returns items[(page-1)*pageSize : page*pageSize], clamped to the
// list, with the page metadata. Items is a fresh non-nil slice, so it
// encodes as [] and writes to it never reach items.
func Paginate[T any](items []T, p Params) Page[T] {
	start, end := bounds(len(items), p)

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:    out,
		Total:    len(items),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

// bounds returns the half-open range of page p within total items.
// A page past the end yields an empty range at total.
func bounds(total int, p Params) (start, end int) {
	if p.Page < 1 || p.PageSize < 1 || total <= 0 {
		return 0, 0
	}
	// division only, so neither a huge page nor a huge page size can overflow
	pages := (total-1)/p.PageSize + 1
	if p.Page > pages {
		return total, total
	}

	start = (p.Page - 1) * p.PageSize
	return start, start + min(p.PageSize, total-start)
}
