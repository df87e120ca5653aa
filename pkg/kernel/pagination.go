package kernel

// PaginationOptions carries offset pagination parameters from the boundary
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset returns the SQL offset for these options
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Normalized clamps the options to sane values
func (p PaginationOptions) Normalized() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}
	return p
}

// Page describes the position of a result page within the whole collection
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// NewPage computes page metadata; Pages is ceil(total/size)
func NewPage(number, size, total int) Page {
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Page{
		Number: number,
		Size:   size,
		Total:  total,
		Pages:  pages,
	}
}

// Paginated wraps a page of items with its metadata. Requesting a page past
// the end yields empty Items, never an error.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// NewPaginated builds a Paginated result from a page of items
func NewPaginated[T any](items []T, opts PaginationOptions, total int) *Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return &Paginated[T]{
		Items: items,
		Page:  NewPage(opts.Page, opts.PageSize, total),
		Empty: len(items) == 0,
	}
}
