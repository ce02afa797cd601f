package shared

// Filter describes common list query parameters passed to repositories
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string // asc, desc
	Search   string
}

// Offset returns the number of documents to skip for the current page
func (f Filter) Offset() int64 {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}
	return int64((f.Page - 1) * f.PageSize)
}

// Limit returns the page size, or 0 for no limit
func (f Filter) Limit() int64 {
	if f.PageSize <= 0 {
		return 0
	}
	return int64(f.PageSize)
}
