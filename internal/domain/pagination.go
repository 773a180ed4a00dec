package domain

// PaginationParams holds offset-based pagination parameters for list slicing.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the item offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Slice returns the [Offset, Offset+PageSize) window of total items as
// (start, end) indexes, clamped to the list bounds.
func (p PaginationParams) Slice(total int) (start, end int) {
	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.PageSize
	if end > total {
		end = total
	}
	return start, end
}
