package listutil

import "errors"

// ErrInvalidPerPage signals a programmer error: a non-positive page size.
// Unlike out-of-range page numbers (which clamp silently), this is a contract
// violation and fails fast.
var ErrInvalidPerPage = errors.New("per-page size must be positive")

// Paginate computes pagination metadata for total rows with the page clamped
// into the valid range. Zero rows still yield one (empty) page, so TotalPages
// is never below 1.
// PRE: perPage > 0; total >= 0
// POST: returns PageInfo with Page in [1, TotalPages], or ErrInvalidPerPage
func Paginate(total, perPage, page int) (PageInfo, error) {
	if perPage <= 0 {
		return PageInfo{}, ErrInvalidPerPage
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// PageBounds returns the half-open slice bounds [lo, hi) for the current page
// of a sequence with PageInfo.Total elements, in the caller's pre-sorted
// order.
// PRE: PageInfo came from Paginate
// POST: 0 <= lo <= hi <= Total
func (p PageInfo) PageBounds() (lo, hi int) {
	lo = p.Offset()
	if lo > p.Total {
		lo = p.Total
	}
	hi = lo + p.PerPage
	if hi > p.Total {
		hi = p.Total
	}
	return lo, hi
}
